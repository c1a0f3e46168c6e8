package internal

import (
	"io"
	"io/ioutil"
	"math"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/naushad-rahman/planar/internal/dbg"
	"github.com/pkg/errors"
)

// Padding around the shape so that points on the edge of the bounds are visible
const drawPadding = 40

// Largest image side, in pixels.
const maxDrawSize = 1 << 14

// Readable name for a polygon, coloured by orientation: green for
// counterclockwise, yellow for clockwise (holes), red for degenerate rings.
func (poly *Polygon) DbgName() string {
	name := dbg.Name(poly)
	switch {
	case poly.IsDegenerate():
		return aurora.Red(name).String()
	case IsCW(*poly):
		return aurora.Yellow(name).String()
	}
	return aurora.Green(name).String()
}

// Render the polygons to a PNG file, filled by the nonzero winding rule, along
// with query points coloured by their classification against the whole list:
// green inside, yellow on a boundary, red outside.
func (pl PolygonList) Draw(path string, scale float64, queries []Point) error {
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", scale)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, poly := range pl {
		for _, p := range poly.Points {
			extend(p)
		}
	}
	for _, p := range queries {
		extend(p)
	}
	for _, v := range []float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("nothing finite to draw")
		}
	}
	spanX, spanY := scale*(maxX-minX), scale*(maxY-minY)
	if !(spanX <= maxDrawSize && spanY <= maxDrawSize) {
		return errors.Errorf("image would be %gx%g pixels, limit is %d", spanX, spanY, maxDrawSize)
	}

	// Set up the context
	width := int(spanX) + drawPadding*2
	height := int(spanY) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleWinding()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range pl {
		if len(poly.Points) == 0 {
			continue
		}
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	radius := 4 / scale
	for _, p := range queries {
		switch {
		case pl.onBoundary(p):
			c.SetRGB(1, 1, 0)
		case pl.ContainsPoint(p, false):
			c.SetRGB(0, 1, 0)
		default:
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

func (pl PolygonList) onBoundary(p Point) bool {
	for _, poly := range pl {
		if poly.OnBoundary(p) {
			return true
		}
	}
	return false
}

// Draw and print the polygons to w as an inline terminal image (iTerm only).
// The image is left in the temp directory.
func (pl PolygonList) Show(w io.Writer, scale float64, queries ...Point) error {
	f, err := ioutil.TempFile("", "polygon_list-*.png")
	if err != nil {
		return errors.Wrap(err, "creating image file")
	}
	path := f.Name()
	f.Close()
	if err := pl.Draw(path, scale, queries); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing image")
}
