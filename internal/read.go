package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read polygons from text. Input should be newline separated points in the
// form "x y", with each polygon separated by an extra newline. Lines starting
// with "#" are comments.
func ReadPolygons(in io.Reader) (polygons PolygonList, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			polygons = nil
			err = recoveredErr
		}
	}()

	scanner := bufio.NewScanner(in)
	var points []Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, Polygon{Points: points})
				points = nil
			}
			continue
		}

		points = append(points, parsePointLine(line, lineNumber))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, Polygon{Points: points})
	}
	return polygons, nil
}

func parsePointLine(line string, lineNumber int) Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fatalf("line %d: expected \"x y\", got %q", lineNumber, line)
	}
	return Point{
		X: parseCoordinate(parts[0], lineNumber),
		Y: parseCoordinate(parts[1], lineNumber),
	}
}

func parseCoordinate(s string, lineNumber int) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("line %d: invalid coordinate %q: %v", lineNumber, s, err)
	}
	return v
}

// Read every <polygon> element of an SVG document. This is not a full (or
// even correct) SVG reader: only the points attribute is used, transforms and
// other shapes are ignored. Note that SVG's y axis points down, so a ring that
// looks counterclockwise on screen has negative signed area here.
func ReadSVGPolygons(in io.Reader) (polygons PolygonList, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			polygons = nil
			err = recoveredErr
		}
	}()

	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	walkSVG(rootEl, func(el *svgparser.Element) {
		if el.Name == "polygon" {
			polygons = append(polygons, Polygon{Points: parseSVGPoints(el.Attributes["points"])})
		}
	})
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	return polygons, nil
}

// Visit el and all of its descendants in document order.
func walkSVG(el *svgparser.Element, visit func(*svgparser.Element)) {
	visit(el)
	for _, child := range el.Children {
		walkSVG(child, visit)
	}
}

// Parses "x1,y1 x2,y2 ...". Commas and whitespace are interchangeable
// separators, as SVG allows.
func parseSVGPoints(pointString string) []Point {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		fatalf("odd number of coordinates in points %q", pointString)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			fatalf("invalid x value %q: %v", fields[i], err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			fatalf("invalid y value %q: %v", fields[i+1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}
