package internal

// Signed area by the shoelace formula, including the factor of 1/2. Counter
// clockwise rings are positive, clockwise rings negative. Fewer than three
// vertices, or vertices that all lie on one line, give exactly zero.
//
// Every vertex is taken relative to the first one before the cross products
// are summed. This keeps the magnitudes small for rings that sit far from the
// origin, which is where the raw formula loses the most precision.
func SignedArea(shape Shape) float64 {
	points := shape.Vertices()
	if len(points) < 3 || isCollinear(points) {
		return 0
	}
	origin := points[0]
	var sum float64
	for i := 1; i < len(points)-1; i++ {
		sum += points[i].Sub(origin).Cross(points[i+1].Sub(origin))
	}
	return sum / 2
}

func Area(shape Shape) float64 {
	area := SignedArea(shape)
	if area < 0 {
		return -area
	}
	return area
}

func IsCCW(shape Shape) bool {
	return SignedArea(shape) > 0
}

func IsCW(shape Shape) bool {
	return SignedArea(shape) < 0
}

func (tri Triangle) SignedArea() float64 {
	return SignedArea(tri)
}

// Reports whether every point lies on the line through the first two distinct
// points. Comparison is exact. A ring of identical points is collinear.
func isCollinear(points []Point) bool {
	if len(points) == 0 {
		return true
	}
	origin := points[0]
	var direction Point
	found := false
	for _, p := range points[1:] {
		d := p.Sub(origin)
		if !found {
			if d.X != 0 || d.Y != 0 {
				direction = d
				found = true
			}
			continue
		}
		if direction.Cross(d) != 0 {
			return false
		}
	}
	return true
}
