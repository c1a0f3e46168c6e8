package internal

// Winding rule point-in-polygon is in winding.go. The even-odd crossing count
// here is kept as an independent check: for simple polygons both rules agree
// on every point off the boundary.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts edges crossing the
// horizontal ray from p towards +x, using a half-open rule on y so a ray
// through a vertex is counted once.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		segment := Segment{vertex, nextVertex}
		if segment.SolveForX(p.Y) > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	crossingCount := 0
	for _, poly := range list {
		crossingCount += poly.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

// Nonzero winding over all polygons in the list. Holes wind clockwise and
// cancel the winding of the polygon around them.
func (list PolygonList) ContainsPoint(p Point, boundaryIsImportant bool) bool {
	omega := 0
	for _, poly := range list {
		polyOmega, onBoundary := poly.WindingNumber(p)
		if onBoundary {
			return boundaryIsImportant
		}
		omega += polyOmega
	}
	return omega != 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Cyclically shift the vertex list so that vertex k becomes the first. The
// ring itself does not change.
func (poly Polygon) Rotate(k int) Polygon {
	n := len(poly.Points)
	newPoly := Polygon{Points: make([]Point, n)}
	for i := range poly.Points {
		newPoly.Points[i] = poly.Points[CircularIndex(i+k, n)]
	}
	return newPoly
}

func (poly Polygon) Translate(offset Point) Polygon {
	newPoly := Polygon{Points: make([]Point, len(poly.Points))}
	for i, p := range poly.Points {
		newPoly.Points[i] = p.Add(offset)
	}
	return newPoly
}

func (poly Polygon) EnsureCCW() Polygon {
	if IsCW(poly) {
		return poly.Reverse()
	}
	return poly
}

// Area centroid of the ring. For rings with zero signed area (collinear, or
// self-intersecting lobes that cancel) there is no area centroid, and the
// vertex average is returned instead.
func (poly Polygon) Centroid() Point {
	if len(poly.Points) == 0 {
		return NaNPoint()
	}
	area := SignedArea(poly)
	origin := poly.Points[0]
	if area == 0 {
		var sum Point
		for _, p := range poly.Points {
			sum = sum.Add(p.Sub(origin))
		}
		return origin.Add(sum.Scale(1 / float64(len(poly.Points))))
	}
	var c Point
	for i := 1; i < len(poly.Points)-1; i++ {
		a := poly.Points[i].Sub(origin)
		b := poly.Points[i+1].Sub(origin)
		cross := a.Cross(b)
		c = c.Add(a.Add(b).Scale(cross))
	}
	return origin.Add(c.Scale(1 / (6 * area)))
}
