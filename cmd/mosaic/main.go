package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/mosaic"
	"github.com/osuushi/mosaic/draw"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/svgio"
	"github.com/osuushi/mosaic/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of tessellation. Reads points from an SVG file (circles are sites, the
// polygon is the boundary) or from stdin as "x y" lines, with an optional
// boundary block after an empty line. Prints a summary, and optionally renders
// the result to PNG.
var (
	app        = kingpin.New("mosaic", "Delaunay triangulation and Voronoi tessellation.")
	configPath = app.Flag("config", "YAML config file.").Short('c').String()
	verbose    = app.Flag("verbose", "Log diagnostics to stderr.").Short('v').Bool()
	workers    = optionalIntFlag(app.Flag("workers", "Cells meshed concurrently, 0 for one per CPU."))
	tolerance  = optionalFloatFlag(app.Flag("tolerance", "Relative tolerance of circumcircle tests."))

	cmd2D      = app.Command("2d", "Tessellate 2D points, optionally clipped to a boundary.")
	input2D    = cmd2D.Arg("input", "SVG file. Reads stdin when omitted.").ExistingFile()
	boundary2D = cmd2D.Flag("boundary", `Counterclockwise boundary, "x,y x,y ...".`).String()
	pngPath    = cmd2D.Flag("png", "Render to this PNG file.").String()
	pngScale   = optionalFloatFlag(cmd2D.Flag("scale", "Pixels per unit in the PNG."))
	preview    = cmd2D.Flag("preview", "Print the PNG in the terminal (iTerm only).").Bool()

	cmd3D      = app.Command("3d", `Tessellate 3D points read from stdin as "x y z" lines.`)
	validate3D = cmd3D.Flag("validate-intersections", "Reject tetrahedra that cross existing faces.").Bool()
	sizing3D   = cmd3D.Flag("super-sizing", "Bootstrap tetrahedra sizing.").Enum("fixed", "circumsphere")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()
	mosaic.SetLogger(logger)

	c, err := loadConfig(*configPath)
	app.FatalIfError(err, "")
	applyFlags(&c)

	switch command {
	case cmd2D.FullCommand():
		err = run2D(context.Background(), c, os.Stdout)
	case cmd3D.FullCommand():
		err = run3D(context.Background(), c, os.Stdin, os.Stdout)
	}
	app.FatalIfError(err, command)
}

// Flags override the config file when given.
func applyFlags(c *config) {
	if workers.set {
		c.Workers = workers.value
	}
	if tolerance.set {
		c.Tolerance = tolerance.value
	}
	if *boundary2D != "" {
		c.Boundary = *boundary2D
	}
	if *pngPath != "" {
		c.PNG.Path = *pngPath
	}
	if pngScale.set {
		c.PNG.Scale = pngScale.value
	}
	if *validate3D {
		c.ValidateIntersections = true
	}
	if *sizing3D != "" {
		c.SuperSizing = *sizing3D
	}
}

func read2D() (sites, boundary []geom.Point2D, err error) {
	if *input2D != "" && strings.EqualFold(filepath.Ext(*input2D), ".svg") {
		f, err := os.Open(*input2D)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		scene, err := svgio.Read(f)
		if err != nil {
			return nil, nil, err
		}
		return scene.Sites, scene.Boundary, nil
	}

	in := io.Reader(os.Stdin)
	if *input2D != "" {
		f, err := os.Open(*input2D)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		in = f
	}
	blocks, err := readBlocks(in)
	if err != nil {
		return nil, nil, err
	}
	if len(blocks) == 0 {
		return nil, nil, errors.New("no points given")
	}
	sites, err = points2D(blocks[0])
	if err != nil {
		return nil, nil, err
	}
	if len(blocks) > 1 {
		boundary, err = points2D(blocks[1])
		if err != nil {
			return nil, nil, err
		}
	}
	return sites, boundary, nil
}

func run2D(ctx context.Context, c config, out io.Writer) error {
	sites, boundary, err := read2D()
	if err != nil {
		return err
	}
	if configured, err := c.boundary(); err != nil {
		return err
	} else if configured != nil {
		boundary = configured
	}
	return tessellate2D(ctx, c, sites, boundary, out)
}

func tessellate2D(ctx context.Context, c config, sites, boundary []geom.Point2D, out io.Writer) error {
	delaunayOptions, err := c.delaunayOptions()
	if err != nil {
		return err
	}
	m, err := mosaic.Tessellate2D(sites, delaunayOptions...)
	if err != nil {
		return err
	}

	voronoiOptions := append(c.voronoiOptions(), voronoi.WithDelaunayOptions(delaunayOptions...))
	var meshes []voronoi.CellMesh
	if boundary != nil {
		meshes, err = m.Voronoi.ClippedMeshes(ctx, boundary, voronoiOptions...)
	} else {
		meshes, err = m.Voronoi.Meshes(ctx, voronoiOptions...)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Read %d sites\n", len(sites))
	fmt.Fprintf(out, "%d triangles, %d cells, %d meshes\n", len(m.Delaunay.Triangles), len(m.Voronoi.Cells), len(meshes))

	if c.PNG.Path == "" {
		return nil
	}
	scene := draw.Scene{Meshes: meshes, Diagram: m.Voronoi, Triangulation: m.Delaunay, Boundary: boundary}
	if err := draw.SavePNG(scene, c.PNG.Scale, c.PNG.Path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", c.PNG.Path)
	if *preview {
		return draw.Cat(c.PNG.Path, out)
	}
	return nil
}

func run3D(ctx context.Context, c config, in io.Reader, out io.Writer) error {
	blocks, err := readBlocks(in)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return errors.New("no points given")
	}
	points, err := points3D(blocks[0])
	if err != nil {
		return err
	}
	return tessellate3D(ctx, c, points, out)
}

func tessellate3D(ctx context.Context, c config, points []geom.Point3D, out io.Writer) error {
	delaunayOptions, err := c.delaunayOptions()
	if err != nil {
		return err
	}
	m, err := mosaic.Tessellate3D(points, delaunayOptions...)
	if err != nil {
		return err
	}
	meshes, err := m.Voronoi.Meshes(ctx, c.voronoiOptions()...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Read %d points\n", len(points))
	fmt.Fprintf(out, "%d tetrahedra, %d skipped points, %d cells, %d closed cell meshes\n",
		len(m.Delaunay.Tetrahedra), len(m.Delaunay.Skipped), len(m.Voronoi.Cells), len(meshes))
	for _, id := range m.Delaunay.Skipped {
		p := m.Delaunay.Vertices[id]
		fmt.Fprintf(out, "skipped %d: %g %g %g\n", id, p.X, p.Y, p.Z)
	}
	return nil
}
