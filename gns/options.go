package gns

import (
	"context"
	"log/slog"
	"math"
)

const (
	// DefaultEpsilon stops the bounding-box series once ‖M⁻ᵏ‖ falls below it.
	DefaultEpsilon = 1e-9

	// DefaultMaxVolume caps the number of lattice points a cycle search may enumerate.
	DefaultMaxVolume uint64 = 1 << 34

	// DefaultProgressEvery is the number of steps between context checks and progress logs.
	DefaultProgressEvery uint64 = 1 << 20

	// DefaultMaxOrbit caps the length of Orbit and the steps of Expansion when no limit is given.
	DefaultMaxOrbit = 1 << 20

	// DefaultMaxBoundTerms caps the number of series terms in Bounds.
	DefaultMaxBoundTerms = 1 << 16
)

const (
	panicEpsilonInvalid  = "gns: WithEpsilon: eps must be finite and in (0, 1)"
	panicVolumeInvalid   = "gns: WithMaxVolume: volume must be positive"
	panicProgressInvalid = "gns: WithProgressEvery: n must be positive"
	panicOrbitInvalid    = "gns: WithMaxOrbit: n must be positive"
)

// Option configures a NumberSystem.
type Option func(*options)

type options struct {
	eps           float64
	maxVolume     uint64
	progressEvery uint64
	maxOrbit      int
	ctx           context.Context
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		eps:           DefaultEpsilon,
		maxVolume:     DefaultMaxVolume,
		progressEvery: DefaultProgressEvery,
		maxOrbit:      DefaultMaxOrbit,
		ctx:           context.Background(),
		logger:        slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the truncation threshold of the bounding-box series.
func WithEpsilon(eps float64) Option {
	if !(eps > 0 && eps < 1) || math.IsNaN(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithMaxVolume caps the bounding-box volume accepted by Cycles.
func WithMaxVolume(v uint64) Option {
	if v == 0 {
		panic(panicVolumeInvalid)
	}

	return func(o *options) { o.maxVolume = v }
}

// WithProgressEvery sets how many steps pass between context checks and progress logs.
func WithProgressEvery(n uint64) Option {
	if n == 0 {
		panic(panicProgressInvalid)
	}

	return func(o *options) { o.progressEvery = n }
}

// WithMaxOrbit caps Orbit length and unlimited Expansion steps.
func WithMaxOrbit(n int) Option {
	if n <= 0 {
		panic(panicOrbitInvalid)
	}

	return func(o *options) { o.maxOrbit = n }
}

// WithContext makes long-running operations stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
