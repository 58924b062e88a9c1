package voronoi

import "github.com/pkg/errors"

var (
	// No vertex of the triangulation is shared by enough simplices to
	// surround a cell.
	ErrNoTessellationFound = errors.New("no tessellation found")
	ErrNotImplemented      = errors.New("not implemented")
)
