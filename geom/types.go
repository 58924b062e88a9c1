// Package geom holds the geometric predicates shared by the Delaunay engines,
// the Voronoi builders and the clipper.
package geom

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Points are plain values. Equality is exact floating point comparison, so
// callers must deduplicate their input.
type Point2D = r2.Point
type Point3D = r3.Vector

type Circle struct {
	Center Point2D
	// Squared radius. Containment tests never need the root.
	RadiusSq float64
}

type Sphere struct {
	Center   Point3D
	RadiusSq float64
}
