package main

import (
	"fmt"
	"io/ioutil"

	"github.com/kr/pretty"
	"github.com/naushad-rahman/planar"
	"github.com/naushad-rahman/planar/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A scene file evaluates several queries in one go. Coordinates are flat
// lists, as everywhere else:
//
//	boundary: true
//	polygons:
//	  - name: square
//	    points: [0, 0, 1, 0, 1, 1, 0, 1]
//	points: [0.5, 0.5, 2, 2]
//	lines:
//	  - [0, 0, 1, 1, 0, 1, 1, 0]
type Scene struct {
	// Count points on a polygon boundary as inside.
	Boundary bool           `yaml:"boundary"`
	Polygons []ScenePolygon `yaml:"polygons"`
	Points   []float64      `yaml:"points"`
	// Each entry is two lines, four coordinates each.
	Lines [][]float64 `yaml:"lines"`
}

type ScenePolygon struct {
	Name   string    `yaml:"name"`
	Points []float64 `yaml:"points"`
}

func LoadScene(data []byte) (*Scene, error) {
	scene := new(Scene)
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	if len(scene.Polygons) == 0 && len(scene.Lines) == 0 {
		return nil, errors.New("scene has no polygons and no lines")
	}
	for i, line := range scene.Lines {
		if len(line) != 8 {
			return nil, errors.Errorf("line pair %d needs 8 coordinates, got %d", i, len(line))
		}
	}
	return scene, nil
}

func (c *cli) scene() error {
	data, err := ioutil.ReadFile(*c.scenePath)
	if err != nil {
		return errors.Wrap(err, "reading scene")
	}
	scene, err := LoadScene(data)
	if err != nil {
		return errors.Wrap(err, *c.scenePath)
	}
	c.log.Debugf("scene: %# v", pretty.Formatter(scene))
	return c.evaluateScene(scene)
}

func (c *cli) evaluateScene(scene *Scene) error {
	queries, err := internal.PointsFromFlat(scene.Points)
	if err != nil {
		return errors.Wrap(err, "points")
	}

	for i, sp := range scene.Polygons {
		vertices, err := internal.PointsFromFlat(sp.Points)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		poly := planar.Polygon{Points: vertices}
		name := sp.Name
		if name == "" {
			name = fmt.Sprintf("polygon%d", i)
		}
		c.log.WithField("polygon", poly.DbgName()).Debugf("evaluating %s", name)

		area := planar.SignedPolygonArea(vertices)
		fmt.Fprintf(c.stdout, "%s\tarea\t%g\t%s\n", name, area, orientation(area))
		for _, q := range queries {
			inside, omega := planar.PointIsInPolygon(vertices, q, scene.Boundary)
			fmt.Fprintf(c.stdout, "%s\tpoint\t%g %g\t%t\t%d\t%s\n",
				name, q.X, q.Y, inside, omega, c.colorLocation(poly.Locate(q)))
		}
	}

	for i, line := range scene.Lines {
		point := make([]float64, 2)
		if planar.TwoLineIntersectionPoint2DFlat(line[:4], line[4:], point) {
			fmt.Fprintf(c.stdout, "line%d\tintersect\t%g %g\n", i, point[0], point[1])
		} else {
			fmt.Fprintf(c.stdout, "line%d\tintersect\t%s\n", i, c.color.Red("parallel").String())
		}
	}
	return nil
}
