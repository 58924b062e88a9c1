package geom

import "sort"

// Cross product of (b-a) and (p-a). Positive when p is left of the directed
// line a->b, negative when it is right, zero when collinear.
func IsLeft(a, b, p Point2D) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

// Winding number of polygon around p. Each edge that crosses p's horizontal
// upward with p on its left adds one, each edge that crosses downward with p on
// its right subtracts one.
func WindingNumber(p Point2D, polygon []Point2D) int {
	winding := 0
	for i, a := range polygon {
		b := polygon[CircularIndex(i+1, len(polygon))]
		if a.Y <= p.Y {
			if b.Y > p.Y && IsLeft(a, b, p) > 0 {
				winding++
			}
		} else if b.Y <= p.Y && IsLeft(a, b, p) < 0 {
			winding--
		}
	}
	return winding
}

func Within(p Point2D, polygon []Point2D) bool {
	return WindingNumber(p, polygon) != 0
}

// Intersection of the segment s->e with the line through bs->be. The result
// must lie within the bounding box of s->e (inclusive). Only s->e is bounded:
// the line through bs->be is infinite, so a hit can land beyond bs or be.
//
// Lines are solved in slope-intercept form, so vertical lines get their own
// cases. Parallel lines never intersect, even when they overlap.
func SegmentIntersection(s, e, bs, be Point2D) (Point2D, bool) {
	delta := e.Sub(s)
	boundaryDelta := be.Sub(bs)

	var x, y float64
	switch {
	case delta.X == 0:
		if boundaryDelta.X == 0 {
			return Point2D{}, false
		}
		gradient := boundaryDelta.Y / boundaryDelta.X
		intercept := bs.Y - gradient*bs.X
		x = s.X
		y = gradient*x + intercept
	case boundaryDelta.X == 0:
		gradient := delta.Y / delta.X
		intercept := s.Y - gradient*s.X
		x = bs.X
		y = gradient*x + intercept
	default:
		gradient := delta.Y / delta.X
		boundaryGradient := boundaryDelta.Y / boundaryDelta.X
		if gradient == boundaryGradient {
			return Point2D{}, false
		}
		intercept := s.Y - gradient*s.X
		boundaryIntercept := bs.Y - boundaryGradient*bs.X
		x = (boundaryIntercept - intercept) / (gradient - boundaryGradient)
		y = gradient*x + intercept
	}

	p := Point2D{X: x, Y: y}
	if !inRange(p, s, e) {
		return Point2D{}, false
	}
	return p, true
}

func inRange(p, s, e Point2D) bool {
	return minf(s.X, e.X) <= p.X && p.X <= maxf(s.X, e.X) &&
		minf(s.Y, e.Y) <= p.Y && p.Y <= maxf(s.Y, e.Y)
}

// Sort points counterclockwise around center in place, starting from the +Y
// direction.
func SortCounterClockwise(points []Point2D, center Point2D) {
	sort.SliceStable(points, func(i, j int) bool {
		return angleFrom(center, points[i]) < angleFrom(center, points[j])
	})
}

// Same ordering, applied to indices into a point table.
func SortIndicesCounterClockwise(indices []int, table []Point2D, center Point2D) {
	sort.SliceStable(indices, func(i, j int) bool {
		return angleFrom(center, table[indices[i]]) < angleFrom(center, table[indices[j]])
	})
}

// Twice the signed area. Positive for counterclockwise polygons.
func SignedArea2(polygon []Point2D) float64 {
	var sum float64
	for i, a := range polygon {
		b := polygon[CircularIndex(i+1, len(polygon))]
		sum += a.Cross(b)
	}
	return sum
}

func IsCCW(polygon []Point2D) bool {
	return SignedArea2(polygon) > 0
}
