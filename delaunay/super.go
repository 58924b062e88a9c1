package delaunay

import (
	"math"

	"github.com/osuushi/mosaic/geom"
)

// The super triangle has to contain every point, and also every circumcircle a
// real triangle might end up with. Too tight and the removal of the super
// vertices leaves holes along the hull of small point sets.
//
// Points are triangulated relative to the middle of their box, so the triangle
// is built around the origin: a square of half width scale times the largest
// side of the box, extrapolated as in superTriangleFromBox.
func superTriangle(size geom.Point2D, scale float64) [3]geom.Point2D {
	half := math.Max(size.X, size.Y) * scale
	return superTriangleFromBox(geom.Point2D{X: -half, Y: -half}, geom.Point2D{X: half, Y: half})
}

// Put the apex below the box by its own height, then extend the lines from the
// apex through the bottom corners until they reach the top of the box:
//
//	 b--------+-------c
//	   \      |      /
//	    \ +---+---+ /
//	     \|  box  |/
//	      +-------+
//	       \     /
//	        \   /
//	         \ /
//	          a
func superTriangleFromBox(min, max geom.Point2D) [3]geom.Point2D {
	bottomLeft := min
	bottomRight := geom.Point2D{X: max.X, Y: min.Y}
	apex := geom.Point2D{
		X: bottomLeft.X + (bottomRight.X-bottomLeft.X)/2,
		Y: min.Y - (max.Y - min.Y),
	}
	return [3]geom.Point2D{
		apex,
		extendToHeight(apex, bottomLeft, max.Y),
		extendToHeight(apex, bottomRight, max.Y),
	}
}

// Point where the line through a and b reaches the height y.
func extendToHeight(a, b geom.Point2D, y float64) geom.Point2D {
	gradient := (a.Y - b.Y) / (a.X - b.X)
	intercept := b.Y - gradient*b.X
	return geom.Point2D{X: (y - intercept) / gradient, Y: y}
}

// Six bootstrap vertices on the axes through the bounds midpoint, in the order
// up, down, top, bottom, left, right (±y, ±z, ±x). Four tetrahedra around the
// up/down axis fill the octahedron they span:
//
//	       up
//	     / | \
//	left---+---right     (top and bottom are in front and behind)
//	     \ | /
//	      down
func superVertices(min, max geom.Point3D, delta geom.Point3D) [6]geom.Point3D {
	mid := min.Add(max).Mul(0.5)
	return [6]geom.Point3D{
		{X: mid.X, Y: mid.Y + delta.Y, Z: mid.Z},
		{X: mid.X, Y: mid.Y - delta.Y, Z: mid.Z},
		{X: mid.X, Y: mid.Y, Z: mid.Z + delta.Z},
		{X: mid.X, Y: mid.Y, Z: mid.Z - delta.Z},
		{X: mid.X - delta.X, Y: mid.Y, Z: mid.Z},
		{X: mid.X + delta.X, Y: mid.Y, Z: mid.Z},
	}
}

const (
	superUp = iota
	superDown
	superTop
	superBottom
	superLeft
	superRight
	superVertexCount
)

// Tetrahedra over the six bootstrap vertices, relative to the first super id.
var superTetrahedra = [4][4]VertexID{
	{superUp, superRight, superTop, superLeft},
	{superUp, superRight, superBottom, superLeft},
	{superDown, superRight, superTop, superLeft},
	{superDown, superRight, superBottom, superLeft},
}

func superFixedScale(min, max geom.Point3D, scale float64) [6]geom.Point3D {
	size := max.Sub(min)
	extent := math.Max(size.X, math.Max(size.Y, size.Z)) * scale
	return superVertices(min, max, geom.Point3D{X: extent, Y: extent, Z: extent})
}

// Grow the bounds by the largest circumsphere any four input points can
// produce, then use the grown box's own size as the offset on each axis.
func superCircumsphere(points []geom.Point3D, min, max geom.Point3D) [6]geom.Point3D {
	var largest float64
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					sphere, ok := geom.Circumsphere(points[i], points[j], points[k], points[l])
					if ok && sphere.RadiusSq > largest {
						largest = sphere.RadiusSq
					}
				}
			}
		}
	}
	radius := math.Sqrt(largest)
	grow := geom.Point3D{X: radius, Y: radius, Z: radius}
	min = min.Sub(grow)
	max = max.Add(grow)
	return superVertices(min, max, max.Sub(min))
}
