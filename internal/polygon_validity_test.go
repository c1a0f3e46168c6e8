package internal

// This contains no actual tests. It holds helpers for checking point in
// polygon results against independent rules.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Compare the nonzero winding classification of the list against the even-odd
// crossing count over a grid covering the list's bounding box plus 10%. For
// lists of simple, non-overlapping polygons with holes wound opposite to their
// containers, the two rules must agree everywhere off the boundary.
func validateWindingBySampling(t *testing.T, list PolygonList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, poly := range list {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size
	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			if list.onBoundary(p) {
				continue
			}

			actual := list.ContainsPoint(p, false)
			if list.ContainsPointByEvenOdd(p) {
				assert.True(t, actual, "point %v should be inside", p)
			} else {
				assert.False(t, actual, "point %v should be outside", p)
			}
		}
	}
}

// Translate both the polygon and a grid of query points by offset and check
// that no classification changes. The offset should be exactly representable
// relative to the coordinates so that boundary points stay on the boundary.
func validateTranslationInvariance(t *testing.T, poly Polygon, offset Point) {
	moved := poly.Translate(offset)
	for _, p := range poly.Points {
		for _, nudge := range []Point{{0, 0}, {0.25, 0.25}, {-0.25, 0.5}, {0.5, -0.25}} {
			q := p.Add(nudge)
			for _, boundary := range []bool{true, false} {
				assert.Equal(t,
					poly.ContainsPoint(q, boundary),
					moved.ContainsPoint(q.Add(offset), boundary),
					"classification of %v changed under translation by %v", q, offset,
				)
			}
		}
	}
}
