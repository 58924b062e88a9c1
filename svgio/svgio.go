// Package svgio reads sites and boundary polygons out of SVG documents.
//
// This is not a full (or even correct) svg parser. Every <circle> becomes a site
// at its centre, and the first <polygon>, if any, becomes the boundary, turned
// counterclockwise if it was drawn clockwise. Coordinates are taken as written,
// so the y axis points the way the document's does.
package svgio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/mosaic/geom"
	"github.com/pkg/errors"
)

type Scene struct {
	Sites    []geom.Point2D
	Boundary []geom.Point2D
}

func Read(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	scene := &Scene{}
	for _, circle := range root.FindAll("circle") {
		x, err := parseFloat(circle.Attributes, "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(circle.Attributes, "cy")
		if err != nil {
			return nil, err
		}
		scene.Sites = append(scene.Sites, geom.Point2D{X: x, Y: y})
	}

	polygons := root.FindAll("polygon")
	if len(polygons) > 1 {
		return nil, errors.Errorf("expected at most one polygon, found %d", len(polygons))
	}
	if len(polygons) == 1 {
		boundary, err := ParsePoints(polygons[0].Attributes["points"])
		if err != nil {
			return nil, err
		}
		if !geom.IsCCW(boundary) {
			reverse(boundary)
		}
		scene.Boundary = boundary
	}
	return scene, nil
}

// Parse an svg points list, "x1,y1 x2,y2 ...".
func ParsePoints(pointString string) ([]geom.Point2D, error) {
	points := []geom.Point2D{}
	for _, pair := range strings.Fields(pointString) {
		coordinates := strings.Split(pair, ",")
		if len(coordinates) != 2 {
			return nil, errors.Errorf("invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coordinates[0])
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coordinates[1])
		}
		points = append(points, geom.Point2D{X: x, Y: y})
	}
	return points, nil
}

func parseFloat(attributes map[string]string, name string) (float64, error) {
	value, ok := attributes[name]
	if !ok {
		return 0, errors.Errorf("missing attribute %q", name)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", name, value)
	}
	return f, nil
}

func reverse(points []geom.Point2D) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
