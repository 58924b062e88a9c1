package geom

// Whether the open segment s->e passes through the triangle abc. Touching the
// triangle at either endpoint of the segment does not count, so edges that
// share a vertex with a face are not reported.
//
// Solves s + t(e-s) = a + u(b-a) + v(c-a) with Cramer's rule:
//
//	      c
//	     / \
//	    / x \    x = a + u·ab + v·ac, with u, v >= 0 and u+v <= 1
//	   a-----b
func SegmentIntersectsTriangle(a, b, c, s, e Point3D) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	reversed := s.Sub(e)

	normal := ab.Cross(ac)
	denominator := reversed.Dot(normal)
	if denominator == 0 {
		// Segment parallel to the triangle's plane
		return false
	}

	w := s.Sub(a)
	t := normal.Dot(w) / denominator
	u := ac.Cross(reversed).Dot(w) / denominator
	v := reversed.Cross(ab).Dot(w) / denominator

	return t > 0 && t < 1 &&
		u >= 0 && u <= 1 &&
		v >= 0 && v <= 1 &&
		u+v <= 1
}
