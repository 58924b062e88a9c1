package geom

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Bounds always contain the origin, and are padded by one unit on every side so
// that no input point ever sits on the edge of the box.
const boundsMargin = 1

func Bounds2D(points []Point2D) r2.Rect {
	rect := r2.RectFromPoints(Point2D{})
	for _, p := range points {
		rect = rect.AddPoint(p)
	}
	return rect.Expanded(Point2D{X: boundsMargin, Y: boundsMargin})
}

func Bounds3D(points []Point3D) (min, max Point3D) {
	for _, p := range points {
		min = Point3D{X: minf(min.X, p.X), Y: minf(min.Y, p.Y), Z: minf(min.Z, p.Z)}
		max = Point3D{X: maxf(max.X, p.X), Y: maxf(max.Y, p.Y), Z: maxf(max.Z, p.Z)}
	}
	margin := r3.Vector{X: boundsMargin, Y: boundsMargin, Z: boundsMargin}
	return min.Sub(margin), max.Add(margin)
}

// Box around the points alone, with the same padding. Unlike the bounds it does
// not stretch to the origin, so its middle is a good place to do arithmetic on
// a cluster far from it.
func Box2D(points []Point2D) r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(p)
	}
	if rect.IsEmpty() {
		rect = r2.RectFromPoints(Point2D{})
	}
	return rect.Expanded(Point2D{X: boundsMargin, Y: boundsMargin})
}

func Box3D(points []Point3D) (min, max Point3D) {
	if len(points) > 0 {
		min, max = points[0], points[0]
	}
	for _, p := range points {
		min = Point3D{X: minf(min.X, p.X), Y: minf(min.Y, p.Y), Z: minf(min.Z, p.Z)}
		max = Point3D{X: maxf(max.X, p.X), Y: maxf(max.Y, p.Y), Z: maxf(max.Z, p.Z)}
	}
	margin := r3.Vector{X: boundsMargin, Y: boundsMargin, Z: boundsMargin}
	return min.Sub(margin), max.Add(margin)
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
