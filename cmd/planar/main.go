// Command planar runs planar geometry queries against polygons read from a
// file or stdin.
//
// Polygon input is text by default: newline separated points in the form
// "x y", with each polygon separated by an extra newline. With --format=svg,
// every <polygon> element of an SVG document is read instead.
//
// Coordinates may be negative ("planar contains -3 3") as long as every flag
// comes before them. Otherwise end the flags with "--", or give render
// points as --point=-3,3.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/naushad-rahman/planar"
	"github.com/naushad-rahman/planar/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "planar: %v\n", err)
		os.Exit(1)
	}
}

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	log    *logrus.Logger
	color  aurora.Aurora

	verbose *bool
	noColor *bool
	format  *string

	areaFile *os.File

	containsX        *float64
	containsY        *float64
	containsFile     *os.File
	containsBoundary *bool

	intersectCoords *[]float64

	renderOut    *string
	renderScale  *float64
	renderPoints *[]string
	renderImgcat *bool
	renderFile   *os.File

	scenePath *string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c := &cli{stdin: stdin, stdout: stdout}

	app := kingpin.New("planar", "Planar geometry queries: point in polygon, line intersection, signed area.")
	// kingpin keeps parsing after printing help, so remember that it asked to
	// exit cleanly.
	helped := false
	app.Terminate(func(status int) { helped = helped || status == 0 })
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	c.verbose = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()
	c.noColor = app.Flag("no-color", "Disable coloured output.").Bool()
	c.format = app.Flag("format", "Polygon input format.").Default("text").Enum("text", "svg")

	areaCmd := app.Command("area", "Print the signed area and orientation of each polygon.")
	areaCmd.Arg("file", "Polygon file. Reads stdin if omitted.").FileVar(&c.areaFile)

	containsCmd := app.Command("contains", "Classify a point against each polygon.")
	c.containsX = containsCmd.Arg("x", "Query x.").Required().Float64()
	c.containsY = containsCmd.Arg("y", "Query y.").Required().Float64()
	containsCmd.Arg("file", "Polygon file. Reads stdin if omitted.").FileVar(&c.containsFile)
	c.containsBoundary = containsCmd.Flag("boundary", "Count points on the boundary as inside.").Bool()

	intersectCmd := app.Command("intersect", "Intersect the line through (X1,Y1),(X2,Y2) with the line through (X3,Y3),(X4,Y4).")
	c.intersectCoords = intersectCmd.Arg("coords", "X1 Y1 X2 Y2 X3 Y3 X4 Y4").Required().Float64List()

	renderCmd := app.Command("render", "Render polygons and query points to a PNG.")
	c.renderOut = renderCmd.Flag("out", "Output PNG path.").Short('o').Required().String()
	c.renderScale = renderCmd.Flag("scale", "Pixels per unit.").Default("20").Float64()
	c.renderPoints = renderCmd.Flag("point", "Query point as X,Y. Repeatable.").Short('p').Strings()
	c.renderImgcat = renderCmd.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()
	renderCmd.Arg("file", "Polygon file. Reads stdin if omitted.").FileVar(&c.renderFile)

	sceneCmd := app.Command("scene", "Evaluate a YAML scene of polygons, query points and line pairs.")
	c.scenePath = sceneCmd.Arg("file", "Scene file.").Required().ExistingFile()

	command, err := app.Parse(escapeNegativeNumbers(args))
	if helped {
		return nil
	}
	if err != nil {
		return err
	}

	c.log = logrus.New()
	c.log.Out = stderr
	c.log.Formatter = &logrus.TextFormatter{DisableColors: *c.noColor}
	if *c.verbose {
		c.log.SetLevel(logrus.DebugLevel)
	}
	c.color = aurora.NewAurora(!*c.noColor)

	switch command {
	case areaCmd.FullCommand():
		return c.area()
	case containsCmd.FullCommand():
		return c.contains()
	case intersectCmd.FullCommand():
		return c.intersect()
	case renderCmd.FullCommand():
		return c.render()
	case sceneCmd.FullCommand():
		return c.scene()
	}
	return errors.Errorf("unknown command %q", command)
}

// kingpin reads "-3" as a short flag. When no flag follows the first negative
// number, flag parsing is ended right before it.
func escapeNegativeNumbers(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isNegativeNumber(arg) {
			continue
		}
		for _, rest := range args[i+1:] {
			if strings.HasPrefix(rest, "-") && !isNegativeNumber(rest) {
				return args
			}
		}
		escaped := make([]string, 0, len(args)+1)
		escaped = append(escaped, args[:i]...)
		escaped = append(escaped, "--")
		return append(escaped, args[i:]...)
	}
	return args
}

func isNegativeNumber(s string) bool {
	if !strings.HasPrefix(s, "-") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Read polygons from file, or stdin when file is nil, in the selected format.
func (c *cli) readPolygons(file *os.File) (planar.PolygonList, error) {
	in := c.stdin
	name := "stdin"
	if file != nil {
		defer file.Close()
		in = file
		name = file.Name()
	}

	var (
		polygons planar.PolygonList
		err      error
	)
	switch *c.format {
	case "svg":
		polygons, err = internal.ReadSVGPolygons(in)
	default:
		polygons, err = internal.ReadPolygons(in)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	c.log.WithFields(logrus.Fields{
		"source":   name,
		"format":   *c.format,
		"polygons": len(polygons),
	}).Debug("read polygons")
	return polygons, nil
}

func orientation(area float64) string {
	switch {
	case area > 0:
		return "ccw"
	case area < 0:
		return "cw"
	}
	return "degenerate"
}

func (c *cli) area() error {
	polygons, err := c.readPolygons(c.areaFile)
	if err != nil {
		return err
	}
	for i := range polygons {
		area := planar.SignedPolygonArea(polygons[i].Points)
		c.log.WithField("polygon", polygons[i].DbgName()).Debugf("%d vertices", len(polygons[i].Points))
		fmt.Fprintf(c.stdout, "%d\t%g\t%s\n", i, area, orientation(area))
	}
	return nil
}

func (c *cli) colorLocation(l planar.Location) string {
	switch l {
	case planar.Inside:
		return c.color.Green(l.String()).String()
	case planar.Boundary:
		return c.color.Yellow(l.String()).String()
	}
	return c.color.Red(l.String()).String()
}

func (c *cli) contains() error {
	polygons, err := c.readPolygons(c.containsFile)
	if err != nil {
		return err
	}
	query := planar.Point{X: *c.containsX, Y: *c.containsY}
	for i, poly := range polygons {
		inside, omega := planar.PointIsInPolygon(poly.Points, query, *c.containsBoundary)
		fmt.Fprintf(c.stdout, "%d\t%t\t%d\t%s\n", i, inside, omega, c.colorLocation(poly.Locate(query)))
	}
	return nil
}

func (c *cli) intersect() error {
	coords := *c.intersectCoords
	if len(coords) != 8 {
		return errors.Errorf("intersect needs 8 coordinates, got %d", len(coords))
	}
	point := make([]float64, 2)
	if !planar.TwoLineIntersectionPoint2DFlat(coords[:4], coords[4:], point) {
		fmt.Fprintln(c.stdout, c.color.Red("parallel").String())
		return nil
	}
	fmt.Fprintf(c.stdout, "%g %g\n", point[0], point[1])
	return nil
}

// Parse "X,Y".
func parsePoint(s string) (planar.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return planar.Point{}, errors.Errorf("point %q is not of the form X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return planar.Point{}, errors.Wrapf(err, "point %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return planar.Point{}, errors.Wrapf(err, "point %q", s)
	}
	return planar.Point{X: x, Y: y}, nil
}

func (c *cli) render() error {
	polygons, err := c.readPolygons(c.renderFile)
	if err != nil {
		return err
	}
	var queries []planar.Point
	for _, s := range *c.renderPoints {
		p, err := parsePoint(s)
		if err != nil {
			return err
		}
		queries = append(queries, p)
	}
	if err := polygons.Draw(*c.renderOut, *c.renderScale, queries); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{
		"out":     *c.renderOut,
		"scale":   *c.renderScale,
		"queries": len(queries),
	}).Info("rendered")
	if *c.renderImgcat {
		return polygons.Show(c.stdout, *c.renderScale, queries...)
	}
	return nil
}
