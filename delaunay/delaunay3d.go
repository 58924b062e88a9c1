package delaunay

import (
	"sort"

	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/internal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Triangulation3D struct {
	// Indexed by VertexID, in input order. Skipped points keep their slot but
	// do not resolve through Vertex.
	Vertices   []geom.Point3D
	Tetrahedra []Tetrahedron
	// Points that could not be merged into the tetrahedra, in input order.
	Skipped []VertexID

	skipped map[VertexID]struct{}
}

func (t *Triangulation3D) Vertex(id VertexID) (geom.Point3D, bool) {
	if id < 0 || int(id) >= len(t.Vertices) {
		return geom.Point3D{}, false
	}
	if _, skipped := t.skipped[id]; skipped {
		return geom.Point3D{}, false
	}
	return t.Vertices[id], true
}

func (t *Triangulation3D) Corners(tet Tetrahedron) [4]geom.Point3D {
	var corners [4]geom.Point3D
	for i, id := range tet {
		p, ok := t.Vertex(id)
		if !ok {
			internal.Fatalf("%s references unknown vertex %d", tet, id)
		}
		corners[i] = p
	}
	return corners
}

func (t *Triangulation3D) Circumsphere(tet Tetrahedron) (geom.Sphere, error) {
	c := t.Corners(tet)
	sphere, ok := geom.Circumsphere(c[0], c[1], c[2], c[3])
	if !ok {
		return geom.Sphere{}, errors.Wrapf(ErrDegenerate, "%s is coplanar", tet)
	}
	return sphere, nil
}

// Tetrahedralize a set of distinct points.
//
// Unlike the 2D case, a point may fail to invalidate any tetrahedron, in which
// case it is recorded in Skipped rather than retried. This is a known limitation
// of the incremental construction.
func Triangulate3D(points []geom.Point3D, opts ...Option) (result *Triangulation3D, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if len(points) < 4 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "tetrahedralization needs 4 points, got %d", len(points))
	}

	b := newBuilder3D(points, newOptions(opts))
	for i := range points {
		b.insert(VertexID(i))
	}
	return b.finalize()
}

type cachedSphere struct {
	sphere geom.Sphere
	ok     bool
}

type builder3D struct {
	options Options
	points  []geom.Point3D
	// Real points relative to the middle of their box, followed by the six
	// super vertices
	vertices   []geom.Point3D
	firstSuper VertexID
	live       map[Tetrahedron]cachedSphere
	skipped    []VertexID
}

func newBuilder3D(points []geom.Point3D, options Options) *builder3D {
	n := len(points)
	b := &builder3D{
		options:    options,
		points:     append([]geom.Point3D(nil), points...),
		vertices:   make([]geom.Point3D, n, n+superVertexCount),
		firstSuper: VertexID(n),
		live:       make(map[Tetrahedron]cachedSphere),
	}

	min, max := geom.Box3D(points)
	center := min.Add(max).Mul(0.5)
	for i, p := range points {
		b.vertices[i] = p.Sub(center)
	}
	min, max = min.Sub(center), max.Sub(center)

	var super [6]geom.Point3D
	switch options.SuperSizing {
	case SuperCircumsphere:
		super = superCircumsphere(b.vertices[:n], min, max)
	default:
		super = superFixedScale(min, max, options.SuperScale)
	}
	b.vertices = append(b.vertices, super[:]...)

	for _, ids := range superTetrahedra {
		f := b.firstSuper
		tet := NewTetrahedron(f+ids[0], f+ids[1], f+ids[2], f+ids[3])
		b.live[tet] = b.sphere(tet)
	}
	return b
}

func (b *builder3D) sphere(tet Tetrahedron) cachedSphere {
	v := b.vertices
	sphere, ok := geom.Circumsphere(v[tet[0]], v[tet[1]], v[tet[2]], v[tet[3]])
	return cachedSphere{sphere, ok}
}

func (b *builder3D) insert(id VertexID) {
	p := b.vertices[id]

	bad := []Tetrahedron{}
	for tet, cached := range b.live {
		if cached.ok && cached.sphere.Contains(p, b.options.Tolerance) {
			bad = append(bad, tet)
		}
	}
	if len(bad) == 0 {
		original := b.points[id]
		internal.Logger().Warn("skipping point that invalidates no tetrahedron",
			zap.Int("vertex", int(id)),
			zap.Float64("x", original.X), zap.Float64("y", original.Y), zap.Float64("z", original.Z),
		)
		b.skipped = append(b.skipped, id)
		return
	}

	faceCounts := make(map[Face]int)
	for _, tet := range bad {
		delete(b.live, tet)
		for _, face := range tet.Faces() {
			faceCounts[face]++
		}
	}

	// Sorted so that intersection validation, which depends on what has been
	// added so far, gives the same answer on every run.
	boundary := []Face{}
	for face, count := range faceCounts {
		if count == 1 {
			boundary = append(boundary, face)
		}
	}
	sort.Slice(boundary, func(i, j int) bool { return lessIDs(boundary[i][:], boundary[j][:]) })

	for _, face := range boundary {
		tet := NewTetrahedron(face[0], face[1], face[2], id)
		cached := b.sphere(tet)
		if !cached.ok {
			// Coplanar with the face. Filling the hole with it would add a flat
			// tetrahedron.
			internal.Logger().Debug("discarding coplanar tetrahedron", zap.Stringer("tetrahedron", tet))
			continue
		}
		if b.options.ValidateIntersections && b.intersectsLive(tet) {
			internal.Logger().Debug("discarding intersecting tetrahedron", zap.Stringer("tetrahedron", tet))
			continue
		}
		b.live[tet] = cached
	}
}

// Whether any edge of tet passes through a face of a live tetrahedron.
func (b *builder3D) intersectsLive(tet Tetrahedron) bool {
	v := b.vertices
	edges := tet.Edges()
	for other := range b.live {
		for _, face := range other.Faces() {
			for _, edge := range edges {
				if geom.SegmentIntersectsTriangle(v[face[0]], v[face[1]], v[face[2]], v[edge[0]], v[edge[1]]) {
					return true
				}
			}
		}
	}
	return false
}

func (b *builder3D) finalize() (*Triangulation3D, error) {
	tetrahedra := []Tetrahedron{}
	for tet := range b.live {
		if tet[3] < b.firstSuper {
			tetrahedra = append(tetrahedra, tet)
		}
	}
	if len(b.skipped) > 0 {
		internal.Logger().Warn("points skipped during tetrahedralization", zap.Int("count", len(b.skipped)))
	}
	if len(tetrahedra) == 0 {
		return nil, errors.Wrapf(ErrNoTriangulationFound, "all tetrahedra of %d points touched the super tetrahedra", b.firstSuper)
	}
	sort.Slice(tetrahedra, func(i, j int) bool { return lessIDs(tetrahedra[i][:], tetrahedra[j][:]) })

	skipped := make(map[VertexID]struct{}, len(b.skipped))
	for _, id := range b.skipped {
		skipped[id] = struct{}{}
	}

	internal.Logger().Debug("tetrahedralized",
		zap.Int("points", int(b.firstSuper)),
		zap.Int("tetrahedra", len(tetrahedra)),
		zap.Int("skipped", len(b.skipped)),
	)
	return &Triangulation3D{
		Vertices:   b.points,
		Tetrahedra: tetrahedra,
		Skipped:    b.skipped,
		skipped:    skipped,
	}, nil
}
