// A small planar geometry kernel for Go.
//
// This package answers three questions about 2D geometry in plain float64
// arithmetic: is a point inside a polygon (by winding number, with an explicit
// choice for points on the boundary), where do two lines cross, and what is the
// signed area of a polygon.
//
// Conventions: the y axis points up, so counterclockwise rings have positive
// signed area and wind +1 around the points they contain. The signed area
// includes the factor of 1/2, so the unit square has area exactly 1. Polygons
// are implicitly closed, and may be non-convex or self-intersecting; containment
// follows the nonzero winding rule.
//
// Every function is pure and safe for concurrent use.
package planar

import "github.com/naushad-rahman/planar/internal"

type Point = internal.Point
type Segment = internal.Segment
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList
type Triangle = internal.Triangle
type Location = internal.Location

const (
	Outside  = internal.Outside
	Boundary = internal.Boundary
	Inside   = internal.Inside
)

// Returned (wrapped) by the flat variants when given an odd number of
// coordinates.
var ErrOddCoordinates = internal.ErrOddCoordinates

// Report whether the query point is inside the polygon given by its vertices,
// along with the polygon's winding number around it.
//
// Points exactly on an edge or vertex count as inside only if
// boundaryIsImportant is set; their winding number is reported as 0.
// Degenerate polygons (fewer than three distinct vertices, or all vertices on
// one line) contain nothing.
func PointIsInPolygon(vertices []Point, query Point, boundaryIsImportant bool) (inside bool, omega int) {
	poly := Polygon{Points: vertices}
	omega, onBoundary := poly.WindingNumber(query)
	if onBoundary {
		return boundaryIsImportant, 0
	}
	return omega != 0, omega
}

// Find the point where the infinite lines through line1 and line2 cross.
//
// Parallel or coincident lines, and lines given by a zero-length segment, have
// no single crossing. For those the result is a point with NaN coordinates and
// ok is false.
func TwoLineIntersectionPoint2D(line1, line2 Segment) (point Point, ok bool) {
	return internal.LineIntersection(line1, line2)
}

// Signed area of the polygon by the shoelace formula, including the factor of
// 1/2. Counterclockwise polygons are positive, clockwise ones negative.
// Fewer than three vertices, or collinear vertices, give exactly 0.
func SignedPolygonArea(vertices []Point) float64 {
	return internal.SignedArea(Polygon{Points: vertices})
}

// Like PointIsInPolygon, with the vertices as flat [x0, y0, x1, y1, ...]
// coordinates and the query as [x, y].
func PointIsInPolygonFlat(vertices []float64, query []float64, boundaryIsImportant bool) (inside bool, omega int, err error) {
	points, err := internal.PointsFromFlat(vertices)
	if err != nil {
		return false, 0, err
	}
	q, err := internal.PointFromFlat(query)
	if err != nil {
		return false, 0, err
	}
	inside, omega = PointIsInPolygon(points, q, boundaryIsImportant)
	return inside, omega, nil
}

// Like TwoLineIntersectionPoint2D, with each line as four flat coordinates
// [x1, y1, x2, y2]. The crossing is written to point[0] and point[1]; for
// parallel lines both are set to NaN and false is returned. point must have
// room for two values, and lines must have four; otherwise point is left alone
// and false is returned.
func TwoLineIntersectionPoint2DFlat(line1, line2 []float64, point []float64) bool {
	if len(point) < 2 {
		return false
	}
	l1, err := internal.SegmentFromFlat(line1)
	if err != nil {
		return false
	}
	l2, err := internal.SegmentFromFlat(line2)
	if err != nil {
		return false
	}
	p, ok := TwoLineIntersectionPoint2D(l1, l2)
	point[0], point[1] = p.X, p.Y
	return ok
}

// Like SignedPolygonArea, with the vertices as flat coordinates.
func SignedPolygonAreaFlat(vertices []float64) (float64, error) {
	points, err := internal.PointsFromFlat(vertices)
	if err != nil {
		return 0, err
	}
	return SignedPolygonArea(points), nil
}
