package main

import (
	"os"

	"github.com/osuushi/mosaic/delaunay"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/svgio"
	"github.com/osuushi/mosaic/voronoi"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings read from the --config file. Flags given on the command line win
// over the file.
//
//	tolerance: 1e-9
//	super_scale: 100
//	super_sizing: fixed        # or circumsphere
//	validate_intersections: false
//	workers: 4
//	boundary: "200,200 -200,200 -200,-200 200,-200"
//	png:
//	  path: out.png
//	  scale: 1
type config struct {
	Tolerance             float64   `yaml:"tolerance"`
	SuperScale            float64   `yaml:"super_scale"`
	SuperSizing           string    `yaml:"super_sizing"`
	ValidateIntersections bool      `yaml:"validate_intersections"`
	Workers               int       `yaml:"workers"`
	Boundary              string    `yaml:"boundary"`
	PNG                   pngConfig `yaml:"png"`
}

type pngConfig struct {
	Path  string  `yaml:"path"`
	Scale float64 `yaml:"scale"`
}

func defaultConfig() config {
	return config{
		Tolerance:   geom.DefaultTolerance,
		SuperScale:  delaunay.DefaultSuperScale,
		SuperSizing: "fixed",
		PNG:         pngConfig{Scale: 1},
	}
}

func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return c, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, errors.Wrapf(err, "decoding %s", path)
	}
	return c, nil
}

func (c config) delaunayOptions() ([]delaunay.Option, error) {
	opts := []delaunay.Option{
		delaunay.WithTolerance(c.Tolerance),
		delaunay.WithSuperScale(c.SuperScale),
		delaunay.WithIntersectionValidation(c.ValidateIntersections),
	}
	switch c.SuperSizing {
	case "", "fixed":
		opts = append(opts, delaunay.WithSuperSizing(delaunay.SuperFixedScale))
	case "circumsphere":
		opts = append(opts, delaunay.WithSuperSizing(delaunay.SuperCircumsphere))
	default:
		return nil, errors.Errorf("unknown super_sizing %q", c.SuperSizing)
	}
	return opts, nil
}

func (c config) voronoiOptions() []voronoi.Option {
	return []voronoi.Option{voronoi.WithWorkers(c.Workers)}
}

func (c config) boundary() ([]geom.Point2D, error) {
	if c.Boundary == "" {
		return nil, nil
	}
	boundary, err := svgio.ParsePoints(c.Boundary)
	if err != nil {
		return nil, errors.Wrap(err, "parsing boundary")
	}
	if !geom.IsCCW(boundary) {
		return nil, errors.New("boundary must wind counterclockwise")
	}
	return boundary, nil
}
