package delaunay

import "github.com/pkg/errors"

var (
	// Fewer than 3 (2D) or 4 (3D) input points.
	ErrInsufficientPoints = errors.New("insufficient points")
	// Every simplex referenced a super vertex, so nothing is left.
	ErrNoTriangulationFound = errors.New("no triangulation found")
	// Collinear or coplanar input where a circle or sphere is required.
	ErrDegenerate = errors.New("degenerate configuration")
)
