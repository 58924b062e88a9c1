package voronoi

import (
	"context"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Hull epsilon handed to quickhull, relative to nothing in particular. Cell
// coordinates are circumcentres, so anything flatter than this is a sliver.
const hullEpsilon = 1e-9

// Mesh the convex hull of a 3D point set, centred on its centroid. Normals are
// per vertex and point away from the centroid. UVs are a box projection onto
// the xy plane.
func TriangulateHull(points []geom.Point3D) (*RenderMesh, error) {
	points = uniquePoints3D(points)
	if len(points) < 4 {
		return nil, errors.Errorf("hull needs 4 distinct points, got %d", len(points))
	}
	center := geom.Centroid3D(points)
	local := make([]r3.Vector, len(points))
	for i, p := range points {
		local[i] = p.Sub(center)
	}

	hull := new(quickhull.QuickHull).ConvexHull(local, true, false, hullEpsilon)
	if len(hull.Indices) < 12 {
		// Fewer than four faces: the points are coplanar
		return nil, errors.Errorf("flat hull over %d points", len(points))
	}

	mesh := &RenderMesh{Origin: center}
	var min, max r2.Point
	for _, v := range hull.Vertices {
		mesh.Positions = append(mesh.Positions, v)
		mesh.Normals = append(mesh.Normals, v.Normalize())
		min = r2.Point{X: minf(min.X, v.X), Y: minf(min.Y, v.Y)}
		max = r2.Point{X: maxf(max.X, v.X), Y: maxf(max.Y, v.Y)}
	}
	for _, v := range hull.Vertices {
		mesh.UVs = append(mesh.UVs, r2.Point{X: remap(v.X, min.X, max.X), Y: remap(v.Y, min.Y, max.Y)})
	}
	for _, i := range hull.Indices {
		mesh.Indices = append(mesh.Indices, uint32(i))
	}
	return mesh, nil
}

// Neighbouring tetrahedra often share a circumcentre exactly, for instance
// around cospherical points.
func uniquePoints3D(points []geom.Point3D) []geom.Point3D {
	seen := make(map[geom.Point3D]struct{}, len(points))
	unique := make([]geom.Point3D, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

// Hull meshes of the closed cells. Open cells extend to infinity and are left
// out. This is advisory output: cells are not clipped.
func (d *Diagram3D) Meshes(ctx context.Context, opts ...Option) ([]CellMesh, error) {
	options := newOptions(opts)
	slots := make([]*RenderMesh, len(d.Cells))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(options.Workers)
	for i := range d.Cells {
		i := i
		if d.Cells[i].Open {
			continue
		}
		group.Go(func() (err error) {
			defer func() {
				if recoveredErr := internal.HandlePanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			mesh, err := TriangulateHull(d.Points(d.Cells[i]))
			if err != nil {
				internal.Logger().Warn("skipping cell without a hull",
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

// Clipping polyhedral cells against a boundary is not supported.
func (d *Diagram3D) ClippedMeshes(ctx context.Context, boundary []geom.Point3D, opts ...Option) ([]CellMesh, error) {
	return nil, errors.Wrap(ErrNotImplemented, "3D clipping")
}
