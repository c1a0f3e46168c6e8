package internal

import (
	"embed"
	"log"
	"math"
)

// Fixtures are SVG files in the fixtures/ directory, available by name sans
// extension. Each holds a single polygon, which is returned counterclockwise.
// If anything goes wrong, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	polygons, err := ReadSVGPolygons(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}

	// Ensure that the polygon is CCW
	result := polygons[0].EnsureCCW()
	return &result
}

// Some ad hoc code specified fixtures

func UnitSquare() Polygon {
	return Polygon{[]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
}

func makeStar(x, y, outerRadius, innerRadius float64) Polygon {
	points := []Point{}
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return Polygon{points}
}

// Regular convex polygon with n vertices, counterclockwise.
func RegularPolygon(n int, x, y, radius float64) Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: x + radius*math.Cos(angle), Y: y + radius*math.Sin(angle)}
	}
	return Polygon{points}
}

func SimpleStar() PolygonList {
	return PolygonList{makeStar(0, 0, 5, 2)}
}

func SquareWithHole() PolygonList {
	outerPoints := []Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}

	holePoints := []Point{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
	}

	return PolygonList{
		Polygon{outerPoints},
		Polygon{holePoints},
	}
}

func StarOutline() PolygonList {
	return PolygonList{
		makeStar(0, 0, 10, 5),
		makeStar(0, 0, 8, 3).Reverse(),
	}
}

func MultiLayeredHoles() PolygonList {
	// Multiple holes which contain filled shapes inside.
	return PolygonList{
		// Outer star
		makeStar(0, 0, 10, 7),
		// Top hole
		makeStar(1.5, 5, 3, 2).Reverse(),
		// Top inner
		makeStar(1.5, 5, 2, 1),
		// Bottom hole
		makeStar(1.8, -5, 3, 2).Reverse(),
		// Bottom inner
		makeStar(1.8, -5, 2, 1),
		// Left hole
		makeStar(-3, 0, 4, 2).Reverse(),
		// Left inner
		makeStar(-3, 0, 3, 1),
	}
}
