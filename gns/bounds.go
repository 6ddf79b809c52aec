package gns

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/norm"
	"github.com/katalvlaran/gns/ring"
)

// boundSlack widens the box relative to each coordinate to absorb rounding.
const boundSlack = 1e-7

// boundLimit caps box coordinates where float64 still represents every integer.
// Bounds also keeps the box within PointLimit.
const boundLimit = 1 << 52

// Bounds returns an axis-aligned box that contains every point of every cycle of φ.
//
// A cycle point satisfies z = -Σ_{j≥1} Aʲ·dⱼ with A = M⁻¹ and dⱼ ∈ D, so
// coordinate i lies within the sums of the per-term minima and maxima of
// (-Aʲ·d)ᵢ over the digits. The series is cut at the first K with
// ‖Aᴷ‖ ≤ eps (adapted norm); the remainder is bounded by
//
//	‖S⁻¹‖∞ · ‖Aᴷ‖ · c·δ/(1-c),   c = ‖A‖, δ = max ‖d‖.
//
// Returns ErrNotExpanding when c ≥ 1 and ErrVolumeTooLarge when a coordinate
// would leave min(2⁵², PointLimit).
func (ns *NumberSystem) Bounds() ([]int64, []int64, error) {
	c := ns.props.Contraction()
	if !(c < 1) {
		return nil, nil, gnsErrorf(opBounds, fmt.Errorf("‖M⁻¹‖ = %g: %w", c, ErrNotExpanding))
	}
	on := ns.props.Norm()
	n := ns.n
	digits := ns.table.digits

	delta := 0.0
	for _, d := range digits {
		v, err := on.IntVector(d)
		if err != nil {
			return nil, nil, gnsErrorf(opBounds, err)
		}
		delta = math.Max(delta, v)
	}
	remainder := norm.InfNorm(on.SInv()) * c * delta / (1 - c)

	ff := ring.Float64{}
	a := matrix.Map(ns.props.InverseComplex(), func(v complex128) float64 { return real(v) })
	p := a.Clone()
	lo := make([]float64, n)
	hi := make([]float64, n)
	var (
		tail   float64
		i, j   int
		sum    float64
		mn, mx float64
	)
	for k := 1; ; k++ {
		// Stage 1: extreme contributions of term k
		for i = 0; i < n; i++ {
			mn, mx = math.Inf(1), math.Inf(-1)
			for _, d := range digits {
				sum = 0
				for j = 0; j < n; j++ {
					sum -= p.Get(i, j) * float64(d[j])
				}
				mn = math.Min(mn, sum)
				mx = math.Max(mx, sum)
			}
			lo[i] += mn
			hi[i] += mx
		}

		// Stage 2: stop once the remainder is negligible
		pk, err := on.Matrix(matrix.Map(p, func(v float64) complex128 { return complex(v, 0) }))
		if err != nil {
			return nil, nil, gnsErrorf(opBounds, err)
		}
		if pk <= ns.opts.eps || k >= DefaultMaxBoundTerms {
			tail = pk * remainder
			break
		}
		if p, err = matrix.Mul[float64](ff, p, a); err != nil {
			return nil, nil, gnsErrorf(opBounds, err)
		}
	}

	limit := math.Min(boundLimit, float64(ns.limit))
	lower := make([]int64, n)
	upper := make([]int64, n)
	for i = 0; i < n; i++ {
		l := lo[i] - tail - boundSlack*(1+math.Abs(lo[i]))
		u := hi[i] + tail + boundSlack*(1+math.Abs(hi[i]))
		if math.IsNaN(l) || math.IsNaN(u) || l < -limit || u > limit {
			return nil, nil, gnsErrorf(opBounds, fmt.Errorf("axis %d [%g, %g]: %w", i, l, u, ErrVolumeTooLarge))
		}
		lower[i] = int64(math.Floor(l))
		upper[i] = int64(math.Ceil(u))
	}
	ns.opts.logger.Debug("bounding box computed", "lower", lower, "upper", upper, "tail", tail)

	return lower, upper, nil
}
