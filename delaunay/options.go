package delaunay

import "github.com/osuushi/mosaic/geom"

// How the 3D bootstrap tetrahedra are sized.
type SuperSizing int

const (
	// Place the bootstrap vertices at the largest side of the points' box
	// times Options.SuperScale from its middle.
	SuperFixedScale SuperSizing = iota
	// Grow the bounds by the largest circumsphere radius among all quadruples
	// of input points. Quartic in the number of points, and prone to leaving
	// points unresolved on large inputs.
	SuperCircumsphere
)

const DefaultSuperScale = 100

type Options struct {
	// Relative tolerance for containment tests, see geom.Circle.Contains.
	Tolerance float64
	// Size of the super triangle, and of the fixed scale super tetrahedra, in
	// multiples of the largest side of the points' box.
	SuperScale  float64
	SuperSizing SuperSizing
	// 3D only. Reject new tetrahedra whose edges pass through faces of the
	// existing ones.
	ValidateIntersections bool
}

type Option func(*Options)

func WithTolerance(eps float64) Option {
	return func(o *Options) {
		o.Tolerance = eps
	}
}

func WithSuperScale(scale float64) Option {
	return func(o *Options) {
		o.SuperScale = scale
	}
}

func WithSuperSizing(sizing SuperSizing) Option {
	return func(o *Options) {
		o.SuperSizing = sizing
	}
}

func WithIntersectionValidation(enabled bool) Option {
	return func(o *Options) {
		o.ValidateIntersections = enabled
	}
}

func DefaultOptions() Options {
	return Options{
		Tolerance:   geom.DefaultTolerance,
		SuperScale:  DefaultSuperScale,
		SuperSizing: SuperFixedScale,
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
