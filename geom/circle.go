package geom

// Circle through three points. Returns false when the points are collinear,
// since no finite circle passes through them.
//
// The arithmetic is done relative to a, so clusters far from the origin keep
// their precision.
func Circumcircle(a, b, c Point2D) (Circle, bool) {
	origin := a
	b = b.Sub(origin)
	c = c.Sub(origin)
	d := 2 * (b.X*c.Y - c.X*b.Y)
	if d == 0 {
		return Circle{}, false
	}
	bSq := b.Dot(b)
	cSq := c.Dot(c)
	center := Point2D{
		X: (c.Y*bSq - b.Y*cSq) / d,
		Y: (b.X*cSq - c.X*bSq) / d,
	}
	return Circle{Center: center.Add(origin), RadiusSq: center.Dot(center)}, true
}

// Strict containment. Points on the circle (within the relative tolerance eps)
// are outside.
func (c Circle) Contains(p Point2D, eps float64) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) < c.RadiusSq*(1-eps)
}
