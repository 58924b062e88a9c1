package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleEquality(t *testing.T) {
	expected := NewTriangle(1, 2, 3)
	for _, tri := range []Triangle{
		NewTriangle(1, 2, 3),
		NewTriangle(2, 3, 1),
		NewTriangle(3, 1, 2),
		NewTriangle(3, 2, 1),
		NewTriangle(1, 3, 2),
	} {
		assert.Equal(t, expected, tri)
	}
	assert.NotEqual(t, expected, NewTriangle(1, 2, 4))

	set := map[Triangle]struct{}{}
	set[NewTriangle(5, 6, 7)] = struct{}{}
	set[NewTriangle(7, 5, 6)] = struct{}{}
	assert.Len(t, set, 1)
}

func TestTetrahedronEquality(t *testing.T) {
	expected := NewTetrahedron(0, 1, 2, 3)
	assert.Equal(t, expected, NewTetrahedron(3, 2, 1, 0))
	assert.Equal(t, expected, NewTetrahedron(1, 3, 0, 2))
	assert.NotEqual(t, expected, NewTetrahedron(0, 1, 2, 4))
}

func TestTriangleEdges(t *testing.T) {
	tri := NewTriangle(9, 4, 6)
	assert.Equal(t, [3]Edge{{4, 6}, {6, 9}, {4, 9}}, tri.Edges())
	assert.True(t, tri.Contains(9))
	assert.False(t, tri.Contains(5))
}

func TestTetrahedronFaces(t *testing.T) {
	tet := NewTetrahedron(1, 2, 3, 4)
	assert.Equal(t, [4]Face{{1, 2, 3}, {1, 3, 4}, {1, 2, 4}, {2, 3, 4}}, tet.Faces())

	// Each edge belongs to exactly two faces
	counts := map[Edge]int{}
	for _, face := range tet.Faces() {
		for _, edge := range face.Edges() {
			counts[edge]++
		}
	}
	assert.Len(t, counts, 6)
	for _, edge := range tet.Edges() {
		assert.Equal(t, 2, counts[edge], "edge %v", edge)
	}
}
