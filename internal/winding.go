package internal

// Point in polygon by winding number, following Hormann and Agathos, "The
// point in polygon problem for arbitrary polygons" (2001).
//
// Edges are tested against the horizontal ray from the query point towards
// +x. An edge crossing the ray upwards adds one, downwards subtracts one, so a
// counterclockwise ring around the point has winding number +1 and a clockwise
// ring -1. Self-intersecting rings can wind more than once. The point is
// inside when the winding number is nonzero.
//
// Points exactly on an edge or a vertex are detected on the way, with exact
// float comparisons, and reported separately. Their winding number is not
// meaningful and is reported as zero.

// Winding number of the polygon around p. When p lies on the boundary, omega is
// zero and onBoundary is true. Degenerate polygons (fewer than three distinct
// vertices, or all vertices on one line) never contain anything, and report
// (0, false).
func (poly Polygon) WindingNumber(p Point) (omega int, onBoundary bool) {
	if poly.IsDegenerate() {
		return 0, false
	}
	points := poly.Points
	n := len(points)
	for i := 0; i < n; i++ {
		current := points[i]
		next := points[CircularIndex(i+1, n)]

		if next.Y == p.Y {
			if next.X == p.X {
				// On a vertex
				return 0, true
			}
			if current.Y == p.Y && (next.X > p.X) == (current.X < p.X) {
				// On a horizontal edge
				return 0, true
			}
		}

		if (current.Y < p.Y) == (next.Y < p.Y) {
			// Edge does not cross the ray's line
			continue
		}

		direction := -1
		if next.Y > current.Y {
			direction = 1
		}

		if current.X >= p.X {
			if next.X > p.X {
				// Both ends are right of p, so the edge crosses the ray
				omega += direction
				continue
			}
		} else if next.X <= p.X {
			// Both ends are left of p
			continue
		}

		// The edge straddles p horizontally. Which side of the edge is p on?
		det := (current.X-p.X)*(next.Y-p.Y) - (next.X-p.X)*(current.Y-p.Y)
		if det == 0 {
			return 0, true
		}
		if (det > 0) == (next.Y > current.Y) {
			omega += direction
		}
	}
	return omega, false
}

// Reports whether p is inside the polygon. Points on the boundary count as
// inside only when boundaryIsImportant is set.
func (poly Polygon) ContainsPoint(p Point, boundaryIsImportant bool) bool {
	omega, onBoundary := poly.WindingNumber(p)
	if onBoundary {
		return boundaryIsImportant
	}
	return omega != 0
}

func (poly Polygon) OnBoundary(p Point) bool {
	_, onBoundary := poly.WindingNumber(p)
	return onBoundary
}

// A polygon is degenerate if it has fewer than three distinct consecutive
// vertices (a repeated closing vertex does not count), or if all of its
// vertices lie on one line.
func (poly Polygon) IsDegenerate() bool {
	return distinctVertexCount(poly.Points) < 3 || isCollinear(poly.Points)
}

// Counts vertices that differ from their successor around the ring.
func distinctVertexCount(points []Point) int {
	count := 0
	for i, p := range points {
		if p != points[CircularIndex(i+1, len(points))] {
			count++
		}
	}
	return count
}

type Location int

const (
	Outside Location = iota
	Boundary
	Inside
)

func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	case Inside:
		return "inside"
	}
	return "unknown"
}

// Three way classification of p against the polygon, for callers that need
// more than ContainsPoint's boolean.
func (poly Polygon) Locate(p Point) Location {
	omega, onBoundary := poly.WindingNumber(p)
	switch {
	case onBoundary:
		return Boundary
	case omega != 0:
		return Inside
	}
	return Outside
}
