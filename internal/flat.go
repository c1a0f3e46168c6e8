package internal

import "github.com/pkg/errors"

var ErrOddCoordinates = errors.New("flat coordinate list has an odd number of values")

// Convert flat [x0, y0, x1, y1, ...] coordinates to points.
func PointsFromFlat(coords []float64) ([]Point, error) {
	if len(coords)%2 != 0 {
		return nil, errors.Wrapf(ErrOddCoordinates, "got %d values", len(coords))
	}
	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return points, nil
}

// Read a single point from the front of a flat coordinate list.
func PointFromFlat(coords []float64) (Point, error) {
	if len(coords) < 2 {
		return Point{}, errors.Errorf("point needs 2 coordinates, got %d", len(coords))
	}
	return Point{X: coords[0], Y: coords[1]}, nil
}

// Read a line given as four flat coordinates: two points on the line.
func SegmentFromFlat(coords []float64) (Segment, error) {
	if len(coords) < 4 {
		return Segment{}, errors.Errorf("line needs 4 coordinates, got %d", len(coords))
	}
	return Segment{
		Start: Point{X: coords[0], Y: coords[1]},
		End:   Point{X: coords[2], Y: coords[3]},
	}, nil
}

func (poly Polygon) Flat() []float64 {
	coords := make([]float64, 0, 2*len(poly.Points))
	for _, p := range poly.Points {
		coords = append(coords, p.X, p.Y)
	}
	return coords
}
