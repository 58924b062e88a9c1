package delaunay

import (
	"sort"

	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Triangulation2D struct {
	// Indexed by VertexID. Only real points; the super triangle is gone.
	Vertices  []geom.Point2D
	Triangles []Triangle
}

func (t *Triangulation2D) Vertex(id VertexID) (geom.Point2D, bool) {
	if id < 0 || int(id) >= len(t.Vertices) {
		return geom.Point2D{}, false
	}
	return t.Vertices[id], true
}

// Corner positions of a triangle from this triangulation.
func (t *Triangulation2D) Corners(tri Triangle) [3]geom.Point2D {
	var corners [3]geom.Point2D
	for i, id := range tri {
		p, ok := t.Vertex(id)
		if !ok {
			internal.Fatalf("%s references unknown vertex %d", tri, id)
		}
		corners[i] = p
	}
	return corners
}

func (t *Triangulation2D) Circumcircle(tri Triangle) (geom.Circle, error) {
	corners := t.Corners(tri)
	circle, ok := geom.Circumcircle(corners[0], corners[1], corners[2])
	if !ok {
		return geom.Circle{}, errors.Wrapf(ErrDegenerate, "%s is collinear", tri)
	}
	return circle, nil
}

// Unique edges across all triangles, sorted.
func (t *Triangulation2D) Edges() []Edge {
	seen := make(map[Edge]struct{})
	edges := []Edge{}
	for _, tri := range t.Triangles {
		for _, edge := range tri.Edges() {
			if _, ok := seen[edge]; ok {
				continue
			}
			seen[edge] = struct{}{}
			edges = append(edges, edge)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return lessIDs(edges[i][:], edges[j][:]) })
	return edges
}

// Triangulate a set of distinct points. Points are inserted in the order given;
// the result does not depend on it beyond ties between cocircular points.
func Triangulate2D(points []geom.Point2D, opts ...Option) (result *Triangulation2D, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "triangulation needs 3 points, got %d", len(points))
	}

	b := newBuilder2D(points, newOptions(opts))
	for i := range points {
		b.insert(VertexID(i))
	}
	return b.finalize()
}

// Circumcircle cached alongside each live triangle. Collinear triangles have
// none and can never be invalidated.
type cachedCircle struct {
	circle geom.Circle
	ok     bool
}

type builder2D struct {
	options Options
	points  []geom.Point2D
	// Real points relative to the middle of their box, followed by the three
	// super vertices
	vertices   []geom.Point2D
	firstSuper VertexID
	live       map[Triangle]cachedCircle
}

func newBuilder2D(points []geom.Point2D, options Options) *builder2D {
	n := len(points)
	b := &builder2D{
		options:    options,
		points:     append([]geom.Point2D(nil), points...),
		vertices:   make([]geom.Point2D, n, n+3),
		firstSuper: VertexID(n),
		live:       make(map[Triangle]cachedCircle),
	}

	box := geom.Box2D(points)
	center := box.Center()
	for i, p := range points {
		b.vertices[i] = p.Sub(center)
	}

	super := superTriangle(box.Size(), options.SuperScale)
	b.vertices = append(b.vertices, super[:]...)
	b.add(NewTriangle(b.firstSuper, b.firstSuper+1, b.firstSuper+2))
	return b
}

func (b *builder2D) add(tri Triangle) {
	circle, ok := geom.Circumcircle(b.vertices[tri[0]], b.vertices[tri[1]], b.vertices[tri[2]])
	b.live[tri] = cachedCircle{circle, ok}
}

// Remove every triangle whose circumcircle contains the point, then fan the
// hole's boundary edges out to the new point. Edges shared by two removed
// triangles are inside the hole:
//
//	  +-----+            +-----+
//	  |\ x /|            |\   /|
//	  | \ / |    ==>     | \ / |
//	  |  +  |            |  p  |
//	  +-----+            +-----+
func (b *builder2D) insert(id VertexID) {
	p := b.vertices[id]

	bad := []Triangle{}
	for tri, cached := range b.live {
		if cached.ok && cached.circle.Contains(p, b.options.Tolerance) {
			bad = append(bad, tri)
		}
	}
	if len(bad) == 0 {
		// Only happens for duplicates and points on every circle around them
		internal.Logger().Warn("point did not invalidate any triangle",
			zap.Int("vertex", int(id)),
			zap.Float64("x", b.points[id].X), zap.Float64("y", b.points[id].Y),
		)
		return
	}

	edgeCounts := make(map[Edge]int)
	for _, tri := range bad {
		delete(b.live, tri)
		for _, edge := range tri.Edges() {
			edgeCounts[edge]++
		}
	}

	for edge, count := range edgeCounts {
		if count == 1 {
			b.add(NewTriangle(edge[0], edge[1], id))
		}
	}
}

func (b *builder2D) finalize() (*Triangulation2D, error) {
	triangles := []Triangle{}
	for tri := range b.live {
		if tri[2] < b.firstSuper {
			triangles = append(triangles, tri)
		}
	}
	if len(triangles) == 0 {
		return nil, errors.Wrapf(ErrNoTriangulationFound, "all triangles of %d points touched the super triangle", b.firstSuper)
	}
	sort.Slice(triangles, func(i, j int) bool { return lessIDs(triangles[i][:], triangles[j][:]) })

	internal.Logger().Debug("triangulated",
		zap.Int("points", int(b.firstSuper)),
		zap.Int("triangles", len(triangles)),
	)
	return &Triangulation2D{
		Vertices:  b.points,
		Triangles: triangles,
	}, nil
}
