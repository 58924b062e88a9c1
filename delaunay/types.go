// Package delaunay builds Delaunay triangulations (2D) and tetrahedralizations
// (3D) with the Bowyer-Watson algorithm.
package delaunay

import (
	"fmt"
	"sort"
)

// Dense vertex id. Real points use their index in the input slice; the
// bootstrap vertices of the super simplex take the range directly after them.
type VertexID int

// Simplex keys are kept sorted, so any permutation of the same ids produces an
// equal value and can be used directly as a map key.
type Edge [2]VertexID
type Triangle [3]VertexID
type Face = Triangle
type Tetrahedron [4]VertexID

func NewEdge(a, b VertexID) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{a, b}
}

func NewTriangle(a, b, c VertexID) Triangle {
	t := Triangle{a, b, c}
	sortIDs(t[:])
	return t
}

func NewTetrahedron(a, b, c, d VertexID) Tetrahedron {
	t := Tetrahedron{a, b, c, d}
	sortIDs(t[:])
	return t
}

func sortIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(t[0], t[1]),
		NewEdge(t[1], t[2]),
		NewEdge(t[0], t[2]),
	}
}

func (t Triangle) Contains(id VertexID) bool {
	return t[0] == id || t[1] == id || t[2] == id
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle(%d, %d, %d)", t[0], t[1], t[2])
}

// The four faces, each opposite one vertex:
//
//	(a,b,c) (a,c,d) (a,d,b) (b,c,d)
func (t Tetrahedron) Faces() [4]Face {
	a, b, c, d := t[0], t[1], t[2], t[3]
	return [4]Face{
		NewTriangle(a, b, c),
		NewTriangle(a, c, d),
		NewTriangle(a, d, b),
		NewTriangle(b, c, d),
	}
}

func (t Tetrahedron) Edges() [6]Edge {
	a, b, c, d := t[0], t[1], t[2], t[3]
	return [6]Edge{
		NewEdge(a, b),
		NewEdge(a, c),
		NewEdge(a, d),
		NewEdge(b, c),
		NewEdge(c, d),
		NewEdge(d, b),
	}
}

func (t Tetrahedron) Contains(id VertexID) bool {
	return t[0] == id || t[1] == id || t[2] == id || t[3] == id
}

func (t Tetrahedron) String() string {
	return fmt.Sprintf("Tetrahedron(%d, %d, %d, %d)", t[0], t[1], t[2], t[3])
}

// Lexicographic ordering, for deterministic output.
func lessIDs(a, b []VertexID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
