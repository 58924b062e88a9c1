package voronoi

import (
	"context"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/osuushi/mosaic/delaunay"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Triangle list geometry for one cell, centred on the origin. Origin is where
// the mesh belongs in the diagram's coordinates.
type RenderMesh struct {
	Positions []r3.Vector
	Normals   []r3.Vector
	UVs       []r2.Point
	Indices   []uint32
	Origin    r3.Vector
}

type CellMesh struct {
	// Index into the diagram's Cells
	Cell int
	Mesh *RenderMesh
}

var planeNormal = r3.Vector{X: 0, Y: 0, Z: 1}

// Triangulate a convex polygon for rendering. The polygon is moved so that its
// centroid sits at the origin, and the centroid becomes the mesh's Origin.
func Triangulate(polygon []geom.Point2D, opts ...Option) (*RenderMesh, error) {
	options := newOptions(opts)
	if len(polygon) == 0 {
		return nil, errors.Wrap(delaunay.ErrInsufficientPoints, "empty polygon")
	}

	center := geom.Centroid2D(polygon)
	local := make([]geom.Point2D, len(polygon))
	for i, p := range polygon {
		local[i] = p.Sub(center)
	}
	return triangulateLocal(local, r3.Vector{X: center.X, Y: center.Y}, options)
}

func triangulateLocal(local []geom.Point2D, origin r3.Vector, options Options) (*RenderMesh, error) {
	triangulation, err := delaunay.Triangulate2D(local, options.Delaunay...)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating cell polygon")
	}

	mesh := &RenderMesh{Origin: origin}
	index := make(map[geom.Point2D]uint32, len(local))
	for _, p := range triangulation.Vertices {
		if _, ok := index[p]; ok {
			continue
		}
		index[p] = uint32(len(mesh.Positions))
		mesh.Positions = append(mesh.Positions, r3.Vector{X: p.X, Y: p.Y})
		mesh.Normals = append(mesh.Normals, planeNormal)
	}
	mesh.UVs = planarUVs(mesh.Positions)

	for _, tri := range triangulation.Triangles {
		corners := triangulation.Corners(tri)
		// Counterclockwise, so the faces point along the normal
		if geom.IsLeft(corners[0], corners[1], corners[2]) < 0 {
			corners[1], corners[2] = corners[2], corners[1]
		}
		for _, corner := range corners {
			mesh.Indices = append(mesh.Indices, index[corner])
		}
	}
	return mesh, nil
}

// Map positions linearly onto [0,1]² by their bounding box. The box always
// includes the origin, which is the polygon's centroid. A flat axis maps to 1.
func planarUVs(positions []r3.Vector) []r2.Point {
	var min, max r2.Point
	for _, p := range positions {
		min = r2.Point{X: minf(min.X, p.X), Y: minf(min.Y, p.Y)}
		max = r2.Point{X: maxf(max.X, p.X), Y: maxf(max.Y, p.Y)}
	}
	uvs := make([]r2.Point, len(positions))
	for i, p := range positions {
		uvs[i] = r2.Point{X: remap(p.X, min.X, max.X), Y: remap(p.Y, min.Y, max.Y)}
	}
	return uvs
}

func remap(v, min, max float64) float64 {
	if max == min {
		return 1
	}
	return (v - min) / (max - min)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Mesh every cell as it is. Open cells produce meshes too, covering only the
// part of the cell bounded by circumcentres. Cells that fail to triangulate are
// logged and left out.
func (d *Diagram2D) Meshes(ctx context.Context, opts ...Option) ([]CellMesh, error) {
	return d.meshCells(ctx, newOptions(opts), func(cell Cell2D) ([]geom.Point2D, geom.Point2D, bool) {
		polygon := d.Polygon(cell)
		if len(polygon) == 0 {
			return nil, geom.Point2D{}, false
		}
		return polygon, geom.Centroid2D(polygon), true
	})
}

// Clip every cell to a counterclockwise boundary polygon, then mesh what
// remains. Meshes are placed relative to the centroid of the unclipped cell,
// so cells keep a stable origin whether or not the boundary cuts them.
func (d *Diagram2D) ClippedMeshes(ctx context.Context, boundary []geom.Point2D, opts ...Option) ([]CellMesh, error) {
	if len(boundary) < 3 {
		return nil, errors.Wrapf(delaunay.ErrInsufficientPoints, "boundary needs 3 points, got %d", len(boundary))
	}
	if !geom.IsCCW(boundary) {
		return nil, errors.New("boundary must wind counterclockwise")
	}
	return d.meshCells(ctx, newOptions(opts), func(cell Cell2D) ([]geom.Point2D, geom.Point2D, bool) {
		polygon := d.Polygon(cell)
		if len(polygon) == 0 {
			return nil, geom.Point2D{}, false
		}
		center := geom.Centroid2D(polygon)
		clipped, ok := Clip(polygon, boundary)
		return clipped, center, ok
	})
}

// Cells are independent, so they are meshed concurrently. Each worker writes
// only its own slot, and results come back in cell order.
func (d *Diagram2D) meshCells(
	ctx context.Context,
	options Options,
	polygonFor func(cell Cell2D) (polygon []geom.Point2D, center geom.Point2D, ok bool),
) ([]CellMesh, error) {
	slots := make([]*RenderMesh, len(d.Cells))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(options.Workers)
	for i := range d.Cells {
		i := i
		group.Go(func() (err error) {
			// Panics do not cross goroutines, so each worker is its own boundary
			defer func() {
				if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			polygon, center, ok := polygonFor(d.Cells[i])
			if !ok {
				return nil
			}
			local := make([]geom.Point2D, len(polygon))
			for j, p := range polygon {
				local[j] = p.Sub(center)
			}
			mesh, err := triangulateLocal(local, r3.Vector{X: center.X, Y: center.Y}, options)
			if err != nil {
				internal.Logger().Warn("skipping cell that does not triangulate",
					zap.Int("cell", i),
					zap.Int("site", int(d.Cells[i].Site)),
					zap.Error(err),
				)
				return nil
			}
			slots[i] = mesh
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	meshes := []CellMesh{}
	for i, mesh := range slots {
		if mesh != nil {
			meshes = append(meshes, CellMesh{Cell: i, Mesh: mesh})
		}
	}
	return meshes, nil
}
