package voronoi

import "github.com/osuushi/mosaic/geom"

// Clip a convex cell polygon to a boundary polygon, which must wind
// counterclockwise. Returns false when the cell lies entirely outside.
//
// A cell entirely inside is returned unchanged. Otherwise the result is made
// of three kinds of points, then sorted counterclockwise around their
// centroid:
//
//	+--------------+ boundary
//	|     cell     |
//	|   o------o   |
//	|  /        \  |
//	| o          o |
//	|  \        /  |
//	+---x------x---B
//	     \    /
//	      o--o
//
//	o inside the boundary: cell vertices that survive
//	x where a cell edge crosses the boundary
//	B boundary vertices inside the cell (none here)
func Clip(cell, boundary []geom.Point2D) ([]geom.Point2D, bool) {
	inside := make([]bool, len(cell))
	outsideCount := 0
	for i, v := range cell {
		inside[i] = geom.Within(v, boundary)
		if !inside[i] {
			outsideCount++
		}
	}
	if outsideCount == len(cell) {
		return nil, false
	}
	if outsideCount == 0 {
		return cell, true
	}

	clipped := newPointSet()
	for _, b := range boundary {
		if geom.Within(b, cell) {
			clipped.add(b)
		}
	}

	for i, start := range cell {
		next := geom.CircularIndex(i+1, len(cell))
		if inside[i] == inside[next] {
			continue
		}
		end := cell[next]
		for j, boundaryStart := range boundary {
			boundaryEnd := boundary[geom.CircularIndex(j+1, len(boundary))]
			if p, ok := geom.SegmentIntersection(start, end, boundaryStart, boundaryEnd); ok {
				clipped.add(p)
			}
		}
	}

	for i, v := range cell {
		if inside[i] {
			clipped.add(v)
		}
	}

	points := clipped.points
	geom.SortCounterClockwise(points, geom.Centroid2D(points))
	return points, true
}

// Insertion ordered set of points, deduplicated by exact equality.
type pointSet struct {
	points []geom.Point2D
	seen   map[geom.Point2D]struct{}
}

func newPointSet() *pointSet {
	return &pointSet{seen: make(map[geom.Point2D]struct{})}
}

func (s *pointSet) add(p geom.Point2D) {
	if _, ok := s.seen[p]; ok {
		return
	}
	s.seen[p] = struct{}{}
	s.points = append(s.points, p)
}
