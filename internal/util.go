package internal

import "math"

const Tolerance = 1e-9

// Used by tests to compare computed areas and coordinates.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. Note
// that boundary detection in the winding test does NOT use this; it compares
// exactly.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Z component of the cross product of p and other, treated as vectors.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Sentinel for results that do not exist, such as the crossing of two
// parallel lines.
func NaNPoint() Point {
	return Point{math.NaN(), math.NaN()}
}
