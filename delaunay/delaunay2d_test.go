package delaunay

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/osuushi/mosaic/geom"
	"github.com/osuushi/mosaic/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var ninePoints = []geom.Point2D{
	{X: -190, Y: 90}, {X: -145, Y: 120}, {X: -120, Y: -45},
	{X: -60, Y: -120}, {X: -20, Y: 190}, {X: 60, Y: -10},
	{X: 80, Y: -190}, {X: 100, Y: 140}, {X: 190, Y: -60},
}

func TestMinimalTriangle(t *testing.T) {
	result, err := Triangulate2D([]geom.Point2D{{X: 50, Y: 0}, {X: -50, Y: 0}, {X: 0, Y: 50}})
	require.NoError(t, err)
	require.Len(t, result.Triangles, 1)
	assert.Equal(t, NewTriangle(0, 1, 2), result.Triangles[0])
	assert.Len(t, result.Edges(), 3)
	assert.Len(t, result.Vertices, 3)
}

func TestTooFewPoints(t *testing.T) {
	for _, points := range [][]geom.Point2D{
		nil,
		{{X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 2, Y: 2}},
	} {
		_, err := Triangulate2D(points)
		assert.True(t, errors.Is(err, ErrInsufficientPoints), "%d points: %v", len(points), err)
	}
}

func TestCollinearPoints(t *testing.T) {
	_, err := Triangulate2D([]geom.Point2D{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}})
	assert.True(t, errors.Is(err, ErrNoTriangulationFound), "%v", err)
}

func TestNinePoints(t *testing.T) {
	result, err := Triangulate2D(ninePoints)
	require.NoError(t, err)
	assert.Len(t, result.Triangles, 8)
	assertDelaunay2D(t, result)
}

func TestVertexLookup(t *testing.T) {
	result, err := Triangulate2D(ninePoints)
	require.NoError(t, err)

	p, ok := result.Vertex(4)
	assert.True(t, ok)
	assert.Equal(t, geom.Point2D{X: -20, Y: 190}, p)

	_, ok = result.Vertex(VertexID(len(ninePoints)))
	assert.False(t, ok, "super vertices must not resolve")
	_, ok = result.Vertex(-1)
	assert.False(t, ok)
}

func TestCircumcircleOfTriangle(t *testing.T) {
	result, err := Triangulate2D([]geom.Point2D{{X: 5, Y: 0}, {X: 7, Y: 3}, {X: 2, Y: 5}})
	require.NoError(t, err)
	circle, err := result.Circumcircle(result.Triangles[0])
	require.NoError(t, err)
	assert.InDelta(t, 8.876732, circle.RadiusSq, 1e-5)
}

func TestInsertionOrderDoesNotChangeTriangleCount(t *testing.T) {
	reversed := make([]geom.Point2D, len(ninePoints))
	for i, p := range ninePoints {
		reversed[len(ninePoints)-1-i] = p
	}
	result, err := Triangulate2D(reversed)
	require.NoError(t, err)
	assert.Len(t, result.Triangles, 8)
}

func TestTolerance(t *testing.T) {
	// A zero tolerance is the plain strict test
	result, err := Triangulate2D(ninePoints, WithTolerance(0))
	require.NoError(t, err)
	assert.Len(t, result.Triangles, 8)
}

// A small cluster a long way from the origin, wider than it is tall
func TestClusterFarFromOrigin(t *testing.T) {
	points := []geom.Point2D{
		{X: 1821.6, Y: 50363.4}, {X: -1184.9, Y: 50378.7}, {X: -1456.3, Y: 50655.6}, {X: 389.8, Y: 51551.8},
	}
	result, err := Triangulate2D(points)
	require.NoError(t, err)
	assert.Equal(t, []Triangle{NewTriangle(0, 1, 3), NewTriangle(1, 2, 3)}, result.Triangles)
	assert.Equal(t, points, result.Vertices)
	assertDelaunay2D(t, result)
}

func TestDuplicatePointIsLogged(t *testing.T) {
	defer internal.SetLogger(nil)
	core, logs := observer.New(zap.WarnLevel)
	internal.SetLogger(zap.New(core))

	points := append(append([]geom.Point2D{}, ninePoints...), ninePoints[0])
	result, err := Triangulate2D(points)
	require.NoError(t, err)
	assert.Len(t, result.Triangles, 8)
	for _, tri := range result.Triangles {
		assert.False(t, tri.Contains(9), "%s", tri)
	}

	warnings := logs.FilterMessage("point did not invalidate any triangle").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(9), warnings[0].ContextMap()["vertex"])
}

// No input point may lie strictly inside the circumcircle of any triangle, and
// nothing may reference a super vertex.
func assertDelaunay2D(t *testing.T, result *Triangulation2D) {
	t.Helper()
	for _, tri := range result.Triangles {
		for _, id := range tri {
			require.Less(t, int(id), len(result.Vertices), "%s references a super vertex", tri)
		}
		circle, err := result.Circumcircle(tri)
		require.NoError(t, err)
		for id, p := range result.Vertices {
			if tri.Contains(VertexID(id)) {
				continue
			}
			assert.False(t, circle.Contains(p, 1e-6), "%v is inside %s", p, tri)
		}
	}
}

func isDelaunay2D(result *Triangulation2D) bool {
	for _, tri := range result.Triangles {
		if int(tri[2]) >= len(result.Vertices) {
			return false
		}
		circle, err := result.Circumcircle(tri)
		if err != nil {
			return false
		}
		for id, p := range result.Vertices {
			if !tri.Contains(VertexID(id)) && circle.Contains(p, 1e-6) {
				return false
			}
		}
	}
	return true
}

func genPoint2D() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(-500, 500),
		gen.IntRange(-500, 500),
	).Map(func(values []interface{}) geom.Point2D {
		return geom.Point2D{X: float64(values[0].(int)), Y: float64(values[1].(int))}
	})
}

// Points scattered over a few hundred units, somewhere within 1e5 of the
// origin, with fractional coordinates.
func genCluster2D() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-1e5, 1e5),
		gen.Float64Range(-1e5, 1e5),
		gen.SliceOfN(30, gopter.CombineGens(
			gen.Float64Range(-500, 500),
			gen.Float64Range(-500, 500),
		)),
	).Map(func(values []interface{}) []geom.Point2D {
		offset := geom.Point2D{X: values[0].(float64), Y: values[1].(float64)}
		points := []geom.Point2D{}
		for _, v := range values[2].([][]interface{}) {
			points = append(points, offset.Add(geom.Point2D{X: v[0].(float64), Y: v[1].(float64)}))
		}
		return points
	})
}

func dedupe2D(points []geom.Point2D) []geom.Point2D {
	seen := map[geom.Point2D]struct{}{}
	result := []geom.Point2D{}
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}

func TestDelaunayProperty2D(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("no point inside any circumcircle", prop.ForAll(
		func(points []geom.Point2D) bool {
			points = dedupe2D(points)
			result, err := Triangulate2D(points)
			if err != nil {
				// Random sets may be entirely collinear only when tiny
				return errors.Is(err, ErrNoTriangulationFound) || errors.Is(err, ErrInsufficientPoints)
			}
			return isDelaunay2D(result)
		},
		gen.SliceOfN(30, genPoint2D()),
	))

	properties.TestingRun(t)
}

func TestDelaunayPropertyOffsetClusters2D(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("no point inside any circumcircle, nothing dropped", prop.ForAll(
		func(points []geom.Point2D) bool {
			points = dedupe2D(points)
			result, err := Triangulate2D(points)
			if err != nil {
				return false
			}
			used := map[VertexID]struct{}{}
			for _, tri := range result.Triangles {
				for _, id := range tri {
					used[id] = struct{}{}
				}
			}
			return len(used) == len(points) && isDelaunay2D(result)
		},
		genCluster2D(),
	))

	properties.TestingRun(t)
}
