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

const minSimplicesPerCell3D = 4

type Diagram3D struct {
	Triangulation *delaunay.Triangulation3D
	// Circumcentres of the tetrahedra. Vertex i belongs to tetrahedron
	// Simplex[i].
	Vertices []geom.Point3D
	Simplex  []int
	Cells    []Cell3D
}

// Cell faces in 3D are not trivially orderable, so a cell is a vertex set plus
// the edges between circumcentres of tetrahedra that share a face.
type Cell3D struct {
	Site      delaunay.VertexID
	Simplices []int
	// Indices into Diagram3D.Vertices, ascending.
	Vertices []int
	// Pairs of indices into Diagram3D.Vertices.
	Edges [][2]int
	Open  bool
}

func (d *Diagram3D) Site(cell Cell3D) geom.Point3D {
	p, ok := d.Triangulation.Vertex(cell.Site)
	if !ok {
		internal.Fatalf("cell site %d does not resolve", cell.Site)
	}
	return p
}

func (d *Diagram3D) Points(cell Cell3D) []geom.Point3D {
	points := make([]geom.Point3D, len(cell.Vertices))
	for i, id := range cell.Vertices {
		points[i] = d.Vertices[id]
	}
	return points
}

func FromDelaunay3D(triangulation *delaunay.Triangulation3D) (result *Diagram3D, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	d := &Diagram3D{Triangulation: triangulation}

	vertexOf := make([]int, len(triangulation.Tetrahedra))
	incidence := make(map[delaunay.VertexID][]int)
	faceUse := make(map[delaunay.Face]int)
	for i, tet := range triangulation.Tetrahedra {
		vertexOf[i] = -1
		sphere, err := triangulation.Circumsphere(tet)
		if err != nil {
			internal.Logger().Warn("tetrahedron has no circumcentre", zap.Error(err))
		} else {
			vertexOf[i] = len(d.Vertices)
			d.Vertices = append(d.Vertices, sphere.Center)
			d.Simplex = append(d.Simplex, i)
		}

		for _, id := range tet {
			incidence[id] = append(incidence[id], i)
		}
		for _, face := range tet.Faces() {
			faceUse[face]++
		}
	}

	seen := make(map[string]struct{})
	for site := range triangulation.Vertices {
		site := delaunay.VertexID(site)
		simplices := incidence[site]
		if len(simplices) < minSimplicesPerCell3D {
			continue
		}
		key := fmt.Sprint(simplices)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		cell := Cell3D{Site: site, Simplices: simplices}
		for _, i := range simplices {
			if vertexOf[i] >= 0 {
				cell.Vertices = append(cell.Vertices, vertexOf[i])
			}
			for _, face := range triangulation.Tetrahedra[i].Faces() {
				if face.Contains(site) && faceUse[face] == 1 {
					cell.Open = true
				}
			}
		}
		cell.Edges = cellEdges(triangulation.Tetrahedra, simplices, vertexOf)
		d.Cells = append(d.Cells, cell)
	}

	if len(d.Cells) == 0 {
		return nil, errors.Wrapf(ErrNoTessellationFound, "no vertex of %d tetrahedra has %d neighbours", len(triangulation.Tetrahedra), minSimplicesPerCell3D)
	}
	sort.Slice(d.Cells, func(i, j int) bool { return d.Cells[i].Site < d.Cells[j].Site })

	internal.Logger().Debug("built voronoi diagram",
		zap.Int("vertices", len(d.Vertices)),
		zap.Int("cells", len(d.Cells)),
	)
	return d, nil
}

// Tetrahedra sharing a face are neighbours, and the segment between their
// circumcentres is an edge of every cell around that face.
func cellEdges(tetrahedra []delaunay.Tetrahedron, simplices []int, vertexOf []int) [][2]int {
	edges := [][2]int{}
	for a := 0; a < len(simplices); a++ {
		for b := a + 1; b < len(simplices); b++ {
			i, j := simplices[a], simplices[b]
			if vertexOf[i] < 0 || vertexOf[j] < 0 {
				continue
			}
			if sharesFace(tetrahedra[i], tetrahedra[j]) {
				edges = append(edges, [2]int{vertexOf[i], vertexOf[j]})
			}
		}
	}
	return edges
}

func sharesFace(a, b delaunay.Tetrahedron) bool {
	shared := 0
	for _, id := range a {
		if b.Contains(id) {
			shared++
		}
	}
	return shared == 3
}
