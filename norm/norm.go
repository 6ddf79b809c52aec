package norm

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/matrix/ops"
	"github.com/katalvlaran/gns/ring"
)

// OperatorNorm is the pair (S, S⁻¹) of the adapted norm ‖v‖ = ‖S·v‖∞. Immutable.
type OperatorNorm struct {
	s, sInv *matrix.Dense[complex128]
	weights []float64
	n       int
}

// New builds the adapted norm from a Jordan form P·A·P⁻¹ = J.
//
// Weights are assigned per block from its last row upward as μ⁰, μ¹, …
// with μ = (1-|λ|)/2, or μ = 1 when |λ| ≥ 1. S = D·P and S⁻¹ = P⁻¹·D⁻¹.
func New(j *ops.JordanForm) (*OperatorNorm, error) {
	if j == nil {
		return nil, ErrNilJordan
	}
	if err := matrix.ValidateSquare(j.P); err != nil {
		return nil, fmt.Errorf("norm.New: %w", err)
	}
	n := j.P.Rows()
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	for _, b := range j.Blocks {
		mu := BlockDecay(b.Eigenvalue)
		w := 1.0
		for i := b.Start + b.Size - 1; i >= b.Start; i-- {
			weights[i] = w
			w *= mu
		}
	}

	s := j.P.Clone()
	sInv := j.PInv.Clone()
	var r, c int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			s.Put(r, c, s.Get(r, c)*complex(weights[r], 0))
			sInv.Put(r, c, sInv.Get(r, c)/complex(weights[c], 0))
		}
	}

	return &OperatorNorm{s: s, sInv: sInv, weights: weights, n: n}, nil
}

// BlockDecay returns μ = (1-|λ|)/2, or 1 when that is not positive.
func BlockDecay(lambda complex128) float64 {
	mu := (1 - cmplx.Abs(lambda)) / 2
	if mu <= 0 {
		return 1
	}

	return mu
}

// Dim is the dimension of the underlying space.
func (o *OperatorNorm) Dim() int { return o.n }

// S returns a copy of the transform S = D·P.
func (o *OperatorNorm) S() *matrix.Dense[complex128] { return o.s.Clone() }

// SInv returns a copy of S⁻¹.
func (o *OperatorNorm) SInv() *matrix.Dense[complex128] { return o.sInv.Clone() }

// Weights returns a copy of the diagonal of D.
func (o *OperatorNorm) Weights() []float64 { return append([]float64(nil), o.weights...) }

// Vector returns ‖S·v‖∞.
func (o *OperatorNorm) Vector(v []complex128) (float64, error) {
	if err := matrix.ValidateVecLen(len(v), o.n); err != nil {
		return 0, fmt.Errorf("norm.Vector: %w", err)
	}
	out := 0.0
	var sum complex128
	for i := 0; i < o.n; i++ {
		sum = 0
		for k := 0; k < o.n; k++ {
			sum += o.s.Get(i, k) * v[k]
		}
		out = math.Max(out, cmplx.Abs(sum))
	}

	return out, nil
}

// IntVector returns the norm of a lattice vector.
func (o *OperatorNorm) IntVector(v []int64) (float64, error) {
	c := make([]complex128, len(v))
	for i, x := range v {
		c[i] = complex(float64(x), 0)
	}

	return o.Vector(c)
}

// Matrix returns the induced norm ‖S·m·S⁻¹‖∞ (maximum absolute row sum).
func (o *OperatorNorm) Matrix(m *matrix.Dense[complex128]) (float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("norm.Matrix: %w", err)
	}
	if m.Rows() != o.n {
		return 0, fmt.Errorf("norm.Matrix: %d vs %d: %w", m.Rows(), o.n, matrix.ErrDimensionMismatch)
	}
	cc := ring.Complex128{}
	sm, err := matrix.Mul[complex128](cc, o.s, m)
	if err != nil {
		return 0, fmt.Errorf("norm.Matrix: %w", err)
	}
	sms, err := matrix.Mul[complex128](cc, sm, o.sInv)
	if err != nil {
		return 0, fmt.Errorf("norm.Matrix: %w", err)
	}

	return InfNorm(sms), nil
}

// InfNorm returns the maximum absolute row sum of m.
func InfNorm(m *matrix.Dense[complex128]) float64 {
	out := 0.0
	for i := 0; i < m.Rows(); i++ {
		row := 0.0
		for j := 0; j < m.Cols(); j++ {
			row += cmplx.Abs(m.Get(i, j))
		}
		out = math.Max(out, row)
	}

	return out
}
