package geom

import "math"

// Default relative tolerance for circumcircle and circumsphere containment. A
// point is inside when its squared distance is below r²(1-eps).
const DefaultTolerance = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func Centroid2D(points []Point2D) Point2D {
	var sum Point2D
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

func Centroid3D(points []Point3D) Point3D {
	var sum Point3D
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// Angle of p around center, measured from +Y and increasing counterclockwise.
//
//	        +Y (0)
//	         |
//	 (π/2) --c-- (-π/2)
//	         |
//	      (±π)
func angleFrom(center, p Point2D) float64 {
	d := p.Sub(center)
	return math.Atan2(-d.X, d.Y)
}
