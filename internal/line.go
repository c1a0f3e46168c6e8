package internal

import "math"

func (s Segment) Direction() Point {
	return s.End.Sub(s.Start)
}

func (s Segment) Length() float64 {
	return s.Direction().Hypot()
}

// A zero-length segment does not define a line.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

// Solve for the x value of the line through the segment at the given y. For
// horizontal segments there is no single answer, and the start x is returned.
func (s Segment) SolveForX(y float64) float64 {
	if s.IsHorizontal() {
		return s.Start.X
	}
	t := (y - s.Start.Y) / (s.End.Y - s.Start.Y)
	return s.Start.X + t*(s.End.X-s.Start.X)
}

// Positive when p is left of the directed line Start->End, negative when it is
// right of it, and zero when the three points are collinear. This is twice the
// signed area of the triangle (Start, End, p).
func (s Segment) Side(p Point) float64 {
	return s.Direction().Cross(p.Sub(s.Start))
}

func (s Segment) IsLeftOf(p Point) bool {
	return s.Side(p) < 0
}

func (s Segment) IsRightOf(p Point) bool {
	return s.Side(p) > 0
}

// Exact test for p lying on the closed segment.
func (s Segment) ContainsPoint(p Point) bool {
	if s.Side(p) != 0 {
		return false
	}
	return math.Min(s.Start.X, s.End.X) <= p.X && p.X <= math.Max(s.Start.X, s.End.X) &&
		math.Min(s.Start.Y, s.End.Y) <= p.Y && p.Y <= math.Max(s.Start.Y, s.End.Y)
}

// Point where the infinite lines through the two segments cross.
//
// Parallel and coincident lines have no single crossing. They are detected
// when the determinant is within Tolerance of zero, relative to the lengths of
// both direction vectors, and reported as (NaNPoint(), false). A zero-length
// segment is treated the same way, since it does not define a line.
func LineIntersection(line1, line2 Segment) (Point, bool) {
	t, _, ok := lineParameters(line1, line2)
	if !ok {
		return NaNPoint(), false
	}
	return line1.Start.Add(line1.Direction().Scale(t)), true
}

// Like LineIntersection, but the crossing must lie on both closed segments.
// Overlapping collinear segments report false.
func SegmentIntersection(s1, s2 Segment) (Point, bool) {
	t, u, ok := lineParameters(s1, s2)
	if !ok {
		return NaNPoint(), false
	}
	if t < -Tolerance || t > 1+Tolerance || u < -Tolerance || u > 1+Tolerance {
		return NaNPoint(), false
	}
	return s1.Start.Add(s1.Direction().Scale(t)), true
}

// Solves line1.Start + t*d1 == line2.Start + u*d2 by Cramer's rule.
func lineParameters(line1, line2 Segment) (t, u float64, ok bool) {
	d1 := line1.Direction()
	d2 := line2.Direction()
	det := d1.Cross(d2)
	scale := d1.Hypot() * d2.Hypot()
	// Written so that NaN determinants also fail.
	if !(math.Abs(det) > Tolerance*scale) {
		return 0, 0, false
	}
	offset := line2.Start.Sub(line1.Start)
	t = offset.Cross(d2) / det
	u = offset.Cross(d1) / det
	return t, u, true
}
