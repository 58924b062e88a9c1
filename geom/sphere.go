package geom

import "github.com/go-gl/mathgl/mgl64"

// Sphere through four points, from the 4x4 determinant expansion of the sphere
// equation:
//
//	| x²+y²+z²  x  y  z  1 |
//	| ...                   | = 0
//
// Returns false when the points are coplanar. As with Circumcircle, everything
// is relative to a.
func Circumsphere(a, b, c, d Point3D) (Sphere, bool) {
	origin := a
	points := [4]Point3D{{}, b.Sub(origin), c.Sub(origin), d.Sub(origin)}

	rows := func(f func(p Point3D) mgl64.Vec4) mgl64.Mat4 {
		return mgl64.Mat4FromRows(f(points[0]), f(points[1]), f(points[2]), f(points[3]))
	}

	leading := rows(func(p Point3D) mgl64.Vec4 { return mgl64.Vec4{p.X, p.Y, p.Z, 1} }).Det()
	if leading == 0 {
		return Sphere{}, false
	}

	detX := rows(func(p Point3D) mgl64.Vec4 { return mgl64.Vec4{p.Norm2(), p.Y, p.Z, 1} }).Det()
	detY := -rows(func(p Point3D) mgl64.Vec4 { return mgl64.Vec4{p.Norm2(), p.X, p.Z, 1} }).Det()
	detZ := rows(func(p Point3D) mgl64.Vec4 { return mgl64.Vec4{p.Norm2(), p.X, p.Y, 1} }).Det()
	constant := rows(func(p Point3D) mgl64.Vec4 { return mgl64.Vec4{p.Norm2(), p.X, p.Y, p.Z} }).Det()

	center := Point3D{X: detX, Y: detY, Z: detZ}.Mul(1 / (2 * leading))
	radiusSq := (detX*detX + detY*detY + detZ*detZ - 4*leading*constant) / (4 * leading * leading)
	return Sphere{Center: center.Add(origin), RadiusSq: radiusSq}, true
}

func (s Sphere) Contains(p Point3D, eps float64) bool {
	return p.Sub(s.Center).Norm2() < s.RadiusSq*(1-eps)
}
