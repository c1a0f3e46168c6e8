package internal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var approxPoint = cmpopts.EquateApprox(0, 1e-12)

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Point{x1, y1}, Point{x2, y2}}
}

func TestLineIntersection(t *testing.T) {
	cases := []struct {
		name         string
		line1, line2 Segment
		want         Point
	}{
		{"diagonals of the unit square", seg(0, 0, 1, 1), seg(0, 1, 1, 0), Point{0.5, 0.5}},
		{"axes", seg(-3, 0, 5, 0), seg(0, 7, 0, 9), Point{0, 0}},
		{"crossing beyond both segments", seg(0, 0, 1, 0), seg(5, 1, 5, 2), Point{5, 0}},
		{"reversed direction", seg(1, 1, 0, 0), seg(1, 0, 0, 1), Point{0.5, 0.5}},
		{"far from origin", seg(1e6, 1e6, 1e6+1, 1e6+1), seg(1e6, 1e6+1, 1e6+1, 1e6), Point{1e6 + 0.5, 1e6 + 0.5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := LineIntersection(c.line1, c.line2)
			assert.True(t, ok)
			if diff := cmp.Diff(c.want, got, approxPoint); diff != "" {
				t.Errorf("LineIntersection() mismatch (-want +got):\n%s", diff)
			}
			// Order of the lines does not matter
			swapped, ok := LineIntersection(c.line2, c.line1)
			assert.True(t, ok)
			if diff := cmp.Diff(got, swapped, approxPoint); diff != "" {
				t.Errorf("LineIntersection() not symmetric (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineIntersection_NoSingleCrossing(t *testing.T) {
	cases := []struct {
		name         string
		line1, line2 Segment
	}{
		{"parallel horizontal", seg(0, 0, 1, 0), seg(0, 1, 1, 1)},
		{"parallel diagonal", seg(0, 0, 2, 2), seg(5, 0, 6, 1)},
		{"coincident", seg(0, 0, 1, 1), seg(2, 2, 3, 3)},
		{"same line", seg(0, 0, 1, 1), seg(0, 0, 1, 1)},
		{"zero length first", seg(1, 1, 1, 1), seg(0, 1, 1, 0)},
		{"zero length both", seg(1, 1, 1, 1), seg(2, 2, 2, 2)},
		{"nearly parallel", seg(0, 0, 1, 0), seg(0, 1, 1, 1+1e-12)},
		{"nan", seg(math.NaN(), 0, 1, 1), seg(0, 1, 1, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := LineIntersection(c.line1, c.line2)
			assert.False(t, ok)
			assert.True(t, got.IsNaN())
			if diff := cmp.Diff(NaNPoint(), got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("expected NaN sentinel (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	p, ok := SegmentIntersection(seg(0, 0, 2, 2), seg(0, 2, 2, 0))
	assert.True(t, ok)
	assert.Empty(t, cmp.Diff(Point{1, 1}, p, approxPoint))

	// Touching at an endpoint counts
	p, ok = SegmentIntersection(seg(0, 0, 1, 0), seg(1, -1, 1, 1))
	assert.True(t, ok)
	assert.Empty(t, cmp.Diff(Point{1, 0}, p, approxPoint))

	// The lines cross, but outside the segments
	_, ok = SegmentIntersection(seg(0, 0, 1, 0), seg(5, 1, 5, 2))
	assert.False(t, ok)
	_, ok = SegmentIntersection(seg(0, 0, 1, 1), seg(3, 0, 2, 1))
	assert.False(t, ok)

	// Overlapping collinear segments have no single crossing
	_, ok = SegmentIntersection(seg(0, 0, 2, 0), seg(1, 0, 3, 0))
	assert.False(t, ok)
}

func TestSegmentMethods(t *testing.T) {
	s := seg(1, 1, 4, 5)
	assert.Equal(t, Point{3, 4}, s.Direction())
	assert.Equal(t, 5.0, s.Length())
	assert.False(t, s.IsDegenerate())
	assert.True(t, seg(2, 2, 2, 2).IsDegenerate())
	assert.True(t, seg(0, 3, 9, 3).IsHorizontal())

	assert.Equal(t, 2.5, s.SolveForX(3))
	assert.Equal(t, 0.0, seg(0, 3, 9, 3).SolveForX(100))

	assert.Greater(t, s.Side(Point{0, 5}), 0.0)
	assert.Less(t, s.Side(Point{5, 0}), 0.0)
	assert.Equal(t, 0.0, s.Side(Point{7, 9}))
	assert.True(t, s.IsLeftOf(Point{5, 0}))
	assert.True(t, s.IsRightOf(Point{0, 5}))

	assert.True(t, s.ContainsPoint(Point{1, 1}))
	assert.True(t, s.ContainsPoint(Point{4, 5}))
	assert.True(t, seg(0, 0, 4, 0).ContainsPoint(Point{2, 0}))
	assert.False(t, s.ContainsPoint(Point{7, 9}), "collinear but past the end")
	assert.False(t, s.ContainsPoint(Point{2, 2}))
}
