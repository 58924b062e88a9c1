// Delaunay triangulations and Voronoi tessellations for Go.
//
// This package builds the Delaunay triangulation (2D) or tetrahedralization
// (3D) of a set of distinct points, and the Voronoi diagram dual to it. 2D cells
// can be clipped to a boundary polygon and turned into render meshes. See the
// delaunay and voronoi packages for the individual stages.
package mosaic

import (
	"github.com/osuushi/mosaic/delaunay"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/internal"
	"github.com/osuushi/mosaic/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Point2D = geom.Point2D
type Point3D = geom.Point3D
type Triangulation2D = delaunay.Triangulation2D
type Triangulation3D = delaunay.Triangulation3D
type Diagram2D = voronoi.Diagram2D
type Diagram3D = voronoi.Diagram3D
type RenderMesh = voronoi.RenderMesh
type CellMesh = voronoi.CellMesh
type Option = delaunay.Option

var (
	ErrInsufficientPoints   = delaunay.ErrInsufficientPoints
	ErrNoTriangulationFound = delaunay.ErrNoTriangulationFound
	ErrNoTessellationFound  = voronoi.ErrNoTessellationFound
)

// A triangulation together with its dual.
type Mosaic2D struct {
	Delaunay *Triangulation2D
	Voronoi  *Diagram2D
}

type Mosaic3D struct {
	Delaunay *Triangulation3D
	Voronoi  *Diagram3D
}

// Triangulate the points and build the Voronoi diagram around them. Points must
// be distinct.
func Tessellate2D(points []Point2D, opts ...Option) (*Mosaic2D, error) {
	triangulation, err := delaunay.Triangulate2D(points, opts...)
	if err != nil {
		return nil, err
	}
	diagram, err := voronoi.FromDelaunay2D(triangulation)
	if err != nil {
		return nil, err
	}
	return &Mosaic2D{Delaunay: triangulation, Voronoi: diagram}, nil
}

// Same as Tessellate2D. Points that the tetrahedralization could not place are
// listed in Delaunay.Skipped.
func Tessellate3D(points []Point3D, opts ...Option) (*Mosaic3D, error) {
	triangulation, err := delaunay.Triangulate3D(points, opts...)
	if err != nil {
		return nil, err
	}
	diagram, err := voronoi.FromDelaunay3D(triangulation)
	if err != nil {
		return nil, errors.Wrapf(err, "%d points skipped", len(triangulation.Skipped))
	}
	return &Mosaic3D{Delaunay: triangulation, Voronoi: diagram}, nil
}

// By default, nothing is logged. Pass nil to go back to that.
func SetLogger(l *zap.Logger) {
	internal.SetLogger(l)
}
