// Package draw renders triangulations, Voronoi diagrams and cell meshes to PNG
// for debugging, and prints them in the terminal (iTerm only).
package draw

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/mosaic/delaunay"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/voronoi"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Padding around the drawing, in pixels
const padding = 40

var palette = []color.RGBA{
	colornames.Cornflowerblue,
	colornames.Salmon,
	colornames.Mediumseagreen,
	colornames.Goldenrod,
	colornames.Orchid,
	colornames.Lightslategray,
	colornames.Coral,
	colornames.Turquoise,
}

// Everything is optional. Layers are drawn bottom to top in field order.
type Scene struct {
	Meshes        []voronoi.CellMesh
	Diagram       *voronoi.Diagram2D
	Triangulation *delaunay.Triangulation2D
	Boundary      []geom.Point2D
}

func (s Scene) points() []geom.Point2D {
	points := []geom.Point2D{}
	if s.Triangulation != nil {
		points = append(points, s.Triangulation.Vertices...)
	}
	if s.Diagram != nil {
		points = append(points, s.Diagram.Triangulation.Vertices...)
	}
	points = append(points, s.Boundary...)
	for _, cellMesh := range s.Meshes {
		mesh := cellMesh.Mesh
		for _, p := range mesh.Positions {
			points = append(points, geom.Point2D{X: p.X + mesh.Origin.X, Y: p.Y + mesh.Origin.Y})
		}
	}
	return points
}

// Render at scale pixels per unit. The y axis points up.
func Render(scene Scene, scale float64) (image.Image, error) {
	points := scene.points()
	if len(points) == 0 {
		return nil, errors.New("nothing to draw")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Line widths are in user space, so undo the scale
	lineWidth := 1 / scale

	drawMeshes(c, scene.Meshes)
	if scene.Diagram != nil {
		drawDiagram(c, scene.Diagram, lineWidth)
	}
	if scene.Triangulation != nil {
		drawTriangulation(c, scene.Triangulation, lineWidth)
	}
	if len(scene.Boundary) > 0 {
		c.SetColor(colornames.White)
		c.SetLineWidth(2 * lineWidth)
		tracePolygon(c, scene.Boundary)
		c.Stroke()
	}
	return c.Image(), nil
}

func drawMeshes(c *gg.Context, meshes []voronoi.CellMesh) {
	for _, cellMesh := range meshes {
		mesh := cellMesh.Mesh
		base := palette[cellMesh.Cell%len(palette)]
		c.SetColor(color.NRGBA{R: base.R, G: base.G, B: base.B, A: 0xa0})
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			triangle := make([]geom.Point2D, 3)
			for j := range triangle {
				p := mesh.Positions[mesh.Indices[i+j]]
				triangle[j] = geom.Point2D{X: p.X + mesh.Origin.X, Y: p.Y + mesh.Origin.Y}
			}
			tracePolygon(c, triangle)
			c.Fill()
		}
	}
}

func drawDiagram(c *gg.Context, diagram *voronoi.Diagram2D, lineWidth float64) {
	c.SetLineWidth(lineWidth)
	for _, cell := range diagram.Cells {
		polygon := diagram.Polygon(cell)
		if len(polygon) < 2 {
			continue
		}
		if cell.Open {
			c.SetColor(colornames.Yellow)
		} else {
			c.SetColor(colornames.Lime)
		}
		tracePolygon(c, polygon)
		c.Stroke()

		site := diagram.Site(cell)
		c.DrawCircle(site.X, site.Y, 3*lineWidth)
		c.Fill()
	}
}

func drawTriangulation(c *gg.Context, triangulation *delaunay.Triangulation2D, lineWidth float64) {
	c.SetLineWidth(lineWidth)
	c.SetColor(colornames.Gray)
	for _, edge := range triangulation.Edges() {
		a, _ := triangulation.Vertex(edge[0])
		b, _ := triangulation.Vertex(edge[1])
		c.DrawLine(a.X, a.Y, b.X, b.Y)
		c.Stroke()
	}
	c.SetColor(colornames.White)
	for _, p := range triangulation.Vertices {
		c.DrawCircle(p.X, p.Y, 2*lineWidth)
		c.Fill()
	}
}

func tracePolygon(c *gg.Context, polygon []geom.Point2D) {
	c.NewSubPath()
	for i, p := range polygon {
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
}

func SavePNG(scene Scene, scale float64, path string) error {
	img, err := Render(scene, scale)
	if err != nil {
		return err
	}
	return errors.Wrapf(gg.SavePNG(path, img), "saving %s", path)
}

// Print a PNG in the terminal. Only iTerm understands the escape codes.
func Cat(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "printing %s", path)
}
