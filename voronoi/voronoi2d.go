// Package voronoi derives Voronoi tessellations from Delaunay triangulations,
// clips 2D cells to a boundary, and turns cells into render meshes.
package voronoi

import (
	"fmt"
	"sort"

	"github.com/osuushi/mosaic/delaunay"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A 2D cell needs at least three triangles around its site to enclose anything.
const minSimplicesPerCell2D = 3

type Diagram2D struct {
	Triangulation *delaunay.Triangulation2D
	// Circumcentres of the triangles. Vertex i belongs to triangle Simplex[i];
	// collinear triangles have no vertex.
	Vertices []geom.Point2D
	Simplex  []int
	Cells    []Cell2D
}

type Cell2D struct {
	Site delaunay.VertexID
	// Indices into Triangulation.Triangles, ascending.
	Simplices []int
	// Indices into Diagram2D.Vertices, counterclockwise around their centroid.
	Vertices []int
	// The site is on the hull of the triangulation, so the cell's true extent
	// is unbounded and the polygon only covers part of it. Clip before using.
	Open bool
}

func (d *Diagram2D) Site(cell Cell2D) geom.Point2D {
	p, ok := d.Triangulation.Vertex(cell.Site)
	if !ok {
		internal.Fatalf("cell site %d does not resolve", cell.Site)
	}
	return p
}

func (d *Diagram2D) Polygon(cell Cell2D) []geom.Point2D {
	polygon := make([]geom.Point2D, len(cell.Vertices))
	for i, id := range cell.Vertices {
		polygon[i] = d.Vertices[id]
	}
	return polygon
}

// Build the dual of a triangulation. Every vertex shared by at least three
// triangles becomes the site of a cell whose corners are the circumcentres of
// those triangles.
func FromDelaunay2D(triangulation *delaunay.Triangulation2D) (result *Diagram2D, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	d := &Diagram2D{Triangulation: triangulation}

	vertexOf := make([]int, len(triangulation.Triangles))
	incidence := make(map[delaunay.VertexID][]int)
	edgeUse := make(map[delaunay.Edge]int)
	for i, tri := range triangulation.Triangles {
		vertexOf[i] = -1
		circle, err := triangulation.Circumcircle(tri)
		if err != nil {
			internal.Logger().Warn("triangle has no circumcentre", zap.Error(err))
		} else {
			vertexOf[i] = len(d.Vertices)
			d.Vertices = append(d.Vertices, circle.Center)
			d.Simplex = append(d.Simplex, i)
		}

		for _, id := range tri {
			incidence[id] = append(incidence[id], i)
		}
		for _, edge := range tri.Edges() {
			edgeUse[edge]++
		}
	}

	seen := make(map[string]struct{})
	for site := range triangulation.Vertices {
		site := delaunay.VertexID(site)
		simplices := incidence[site]
		if len(simplices) < minSimplicesPerCell2D {
			continue
		}
		// Two sites with the same triangles would describe the same cell
		key := fmt.Sprint(simplices)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		cell := Cell2D{Site: site, Simplices: simplices}
		for _, i := range simplices {
			if vertexOf[i] >= 0 {
				cell.Vertices = append(cell.Vertices, vertexOf[i])
			}
			for _, edge := range triangulation.Triangles[i].Edges() {
				if (edge[0] == site || edge[1] == site) && edgeUse[edge] == 1 {
					cell.Open = true
				}
			}
		}
		if len(cell.Vertices) > 0 {
			center := geom.Centroid2D(d.Polygon(cell))
			geom.SortIndicesCounterClockwise(cell.Vertices, d.Vertices, center)
		}
		d.Cells = append(d.Cells, cell)
	}

	if len(d.Cells) == 0 {
		return nil, errors.Wrapf(ErrNoTessellationFound, "no vertex of %d triangles has %d neighbours", len(triangulation.Triangles), minSimplicesPerCell2D)
	}
	sort.Slice(d.Cells, func(i, j int) bool { return d.Cells[i].Site < d.Cells[j].Site })

	internal.Logger().Debug("built voronoi diagram",
		zap.Int("vertices", len(d.Vertices)),
		zap.Int("cells", len(d.Cells)),
	)
	return d, nil
}
