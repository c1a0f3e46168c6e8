package internal

// Points are plain values. Nothing in the kernel keeps a reference to a
// caller's vertices, so two calls on the same slice never interfere.
type Point struct {
	X float64
	Y float64
}

// A segment between two points. The kernel also uses a segment to describe
// the infinite line through its endpoints.
type Segment struct {
	Start Point
	End   Point
}

type Triangle struct {
	A, B, C Point
}

// Polygons are implicitly closed: the last point connects back to the first.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

// Anything with an ordered, closed vertex ring.
type Shape interface {
	Vertices() []Point
}

func (poly Polygon) Vertices() []Point {
	return poly.Points
}

func (tri Triangle) Vertices() []Point {
	return []Point{tri.A, tri.B, tri.C}
}
