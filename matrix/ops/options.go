package ops

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative deflation tolerance of the Schur iteration.
	DefaultEpsilon = 1e-13

	// DefaultClusterEpsilon is the eigenvalue clustering radius (half-width) used by
	// Jordan; eigenvalues closer than 2*DefaultClusterEpsilon are treated as one.
	// It also scales the rank tolerance of the nested null spaces.
	DefaultClusterEpsilon = 1e-6

	// DefaultMaxIterations bounds the shifted QR rounds per deflation.
	DefaultMaxIterations = 100

	// DefaultFallbackRounds bounds the random-shift rounds after a stalled deflation.
	DefaultFallbackRounds = 10

	// DefaultSeed seeds the random fallback shift so results are reproducible.
	DefaultSeed = 1
)

const (
	panicEpsilonInvalid = "ops: WithEpsilon: eps must be finite and positive"
	panicClusterInvalid = "ops: WithClusterEpsilon: eps must be finite and positive"
	panicIterInvalid    = "ops: WithMaxIterations: n must be positive"
)

// Option configures the spectral routines (Schur, Jordan).
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	eps            float64
	clusterEps     float64
	maxIter        int
	fallbackRounds int
	seed           int64
}

func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		clusterEps:     DefaultClusterEpsilon,
		maxIter:        DefaultMaxIterations,
		fallbackRounds: DefaultFallbackRounds,
		seed:           DefaultSeed,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the relative deflation tolerance. Panics on non-positive or non-finite eps.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithClusterEpsilon sets the eigenvalue clustering tolerance used by Jordan.
func WithClusterEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicClusterInvalid)
	}

	return func(o *Options) { o.clusterEps = eps }
}

// WithMaxIterations bounds the shifted QR rounds per deflated eigenvalue.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithFallbackRounds sets the number of random-shift rounds (0 disables the fallback).
func WithFallbackRounds(n int) Option {
	if n < 0 {
		n = 0
	}

	return func(o *Options) { o.fallbackRounds = n }
}

// WithSeed seeds the random fallback shift.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}
