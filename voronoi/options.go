package voronoi

import (
	"runtime"

	"github.com/osuushi/mosaic/delaunay"
)

type Options struct {
	// Cells meshed concurrently. Values below 1 mean GOMAXPROCS.
	Workers  int
	Delaunay []delaunay.Option
}

type Option func(*Options)

func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// Options for the triangulation each cell polygon goes through.
func WithDelaunayOptions(opts ...delaunay.Option) Option {
	return func(o *Options) {
		o.Delaunay = append(o.Delaunay, opts...)
	}
}

func newOptions(opts []Option) Options {
	o := Options{Workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}
