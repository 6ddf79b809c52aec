package ops

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/gns/matrix"
)

// SchurForm is a complex Schur decomposition A = Q·T·Q* with Q unitary and T upper triangular.
type SchurForm struct {
	Q, T *matrix.Dense[complex128]
	// Forced counts positions that did not meet the deflation tolerance within the
	// iteration budget and were accepted as they stood.
	Forced int
}

// Eigenvalues returns the diagonal of T in order.
func (s *SchurForm) Eigenvalues() []complex128 {
	n := s.T.Rows()
	out := make([]complex128, n)
	for i := 0; i < n; i++ {
		out[i] = s.T.Get(i, i)
	}

	return out
}

// Schur computes the complex Schur form of a square matrix.
//
// Implementation:
//   - Stage 1: reduce to Hessenberg form, A = Q·H·Q*.
//   - Stage 2: for end = n-1 down to 1, run shifted QR steps on the active block
//     H[0:end+1, 0:end+1] with the eigenvalue of the trailing 2×2 block nearest to
//     H[end][end] as shift, until |H[end][end-1]| ≤ eps·(|H[end-1][end-1]|+|H[end][end]|).
//     Every exceptionalEvery rounds without deflation the shift is replaced by
//     H[end][end] + 0.75·|H[end][end-1]|, which breaks the cycling of
//     zero-diagonal (companion-like) matrices.
//   - Stage 3: when the budget (WithMaxIterations) is exhausted, run a few rounds
//     with a random complex shift of magnitude up to ‖H‖F (WithFallbackRounds,
//     WithSeed); if that still fails the sub-diagonal entry is dropped and Forced
//     is incremented.
//   - Stage 4: zero the strictly lower triangle and validate finiteness.
//
// Every QR step is applied to the full matrix (off-block columns and Q), so the
// similarity A = Q·T·Q* holds up to rounding throughout.
//
// Complexity: O(iterations·n³).
func Schur(m *matrix.Dense[complex128], opts ...Option) (*SchurForm, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opSchur, err)
	}
	o := gatherOptions(opts...)
	Q, H, err := Hessenberg(m)
	if err != nil {
		return nil, opsErrorf(opSchur, err)
	}
	n := m.Rows()
	it := &schurIteration{H: H, Q: Q, n: n, eps: o.eps, rnd: rand.New(rand.NewSource(o.seed))}
	it.scale = frobenius(H)

	forced := 0
	var end, iter int
	for end = n - 1; end > 0; end-- {
		converged := false
		for iter = 0; iter < o.maxIter && !converged; iter++ {
			if it.deflated(end) {
				converged = true
				break
			}
			mu := it.wilkinsonShift(end)
			if iter > 0 && iter%exceptionalEvery == 0 {
				mu = it.exceptionalShift(end)
			}
			if err = it.step(end, mu); err != nil {
				return nil, opsErrorf(opSchur, err)
			}
		}
		for iter = 0; iter < o.fallbackRounds && !converged; iter++ {
			if it.deflated(end) {
				converged = true
				break
			}
			if err = it.step(end, it.randomShift()); err != nil {
				return nil, opsErrorf(opSchur, err)
			}
		}
		if !converged && !it.deflated(end) {
			forced++
		}
		H.Put(end, end-1, 0)
	}

	// Stage 4: tidy and validate
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := H.Get(i, j)
			if j < i {
				H.Put(i, j, 0)
				continue
			}
			if cmplx.IsNaN(v) || cmplx.IsInf(v) {
				return nil, opsErrorf(opSchur, fmt.Errorf("T[%d][%d] = %v: %w", i, j, v, ErrEigenFailed))
			}
		}
	}

	return &SchurForm{Q: Q, T: H, Forced: forced}, nil
}

const (
	// exceptionalEvery is the number of stalled rounds between exceptional shifts.
	exceptionalEvery = 10

	// exceptionalFactor scales the sub-diagonal in the exceptional shift.
	exceptionalFactor = 0.75
)

// schurIteration carries the state of one Schur run.
type schurIteration struct {
	H, Q  *matrix.Dense[complex128]
	n     int
	eps   float64
	scale float64
	rnd   *rand.Rand
}

// deflated reports whether H[end][end-1] is negligible relative to its diagonal neighbours.
func (s *schurIteration) deflated(end int) bool {
	h := cmplx.Abs(s.H.Get(end, end-1))
	ref := cmplx.Abs(s.H.Get(end, end)) + cmplx.Abs(s.H.Get(end-1, end-1))
	if ref < s.eps*s.scale {
		ref = s.eps * s.scale
	}

	return h <= s.eps*ref
}

// wilkinsonShift returns the eigenvalue of the trailing 2×2 block of the active
// window nearest to H[end][end] (quadratic formula).
func (s *schurIteration) wilkinsonShift(end int) complex128 {
	a := s.H.Get(end-1, end-1)
	b := s.H.Get(end-1, end)
	c := s.H.Get(end, end-1)
	d := s.H.Get(end, end)
	half := (a + d) / 2
	disc := cmplx.Sqrt((a-d)*(a-d)/4 + b*c)
	l1, l2 := half+disc, half-disc
	if cmplx.Abs(l1-d) <= cmplx.Abs(l2-d) {
		return l1
	}

	return l2
}

// exceptionalShift returns H[end][end] + 0.75·|H[end][end-1]|.
func (s *schurIteration) exceptionalShift(end int) complex128 {
	return s.H.Get(end, end) + complex(exceptionalFactor*cmplx.Abs(s.H.Get(end, end-1)), 0)
}

// randomShift draws a complex shift uniformly from the square of half-width ‖H‖F.
func (s *schurIteration) randomShift() complex128 {
	scale := s.scale
	if scale == 0 {
		scale = 1
	}

	return complex(scale*(2*s.rnd.Float64()-1), scale*(2*s.rnd.Float64()-1))
}

// step performs one explicit shifted QR step on the window [0, end].
// Active block:   H₁₁ ← R·Q₁ + μI where H₁₁ - μI = Q₁·R.
// Off-block rows: H₁₂ ← Q₁*·H₁₂.  Accumulator: Q[:, 0:end+1] ← Q[:, 0:end+1]·Q₁.
func (s *schurIteration) step(end int, mu complex128) error {
	m := end + 1
	block, err := s.H.Sub(0, m, 0, m)
	if err != nil {
		return err
	}
	for i := 0; i < m; i++ {
		block.Put(i, i, block.Get(i, i)-mu)
	}
	q1, r, err := QR(block)
	if err != nil {
		return err
	}

	var i, j, k int
	var sum complex128
	// H₁₁ = R·Q₁ + μI (R is upper triangular)
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			sum = 0
			for k = i; k < m; k++ {
				sum += r.Get(i, k) * q1.Get(k, j)
			}
			if i == j {
				sum += mu
			}
			s.H.Put(i, j, sum)
		}
	}
	// H₁₂ = Q₁*·H₁₂
	col := make([]complex128, m)
	for j = m; j < s.n; j++ {
		for i = 0; i < m; i++ {
			sum = 0
			for k = 0; k < m; k++ {
				sum += cmplx.Conj(q1.Get(k, i)) * s.H.Get(k, j)
			}
			col[i] = sum
		}
		for i = 0; i < m; i++ {
			s.H.Put(i, j, col[i])
		}
	}
	// Q[:, 0:m] = Q[:, 0:m]·Q₁
	row := make([]complex128, m)
	for i = 0; i < s.n; i++ {
		for j = 0; j < m; j++ {
			sum = 0
			for k = 0; k < m; k++ {
				sum += s.Q.Get(i, k) * q1.Get(k, j)
			}
			row[j] = sum
		}
		for j = 0; j < m; j++ {
			s.Q.Put(i, j, row[j])
		}
	}

	return nil
}

// frobenius returns the Frobenius norm of m.
func frobenius(m *matrix.Dense[complex128]) float64 {
	sum := NormZero
	for _, v := range m.Raw() {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum)
}

// schurResidual returns ‖Q·T·Q* − m‖F.
func schurResidual(sf *SchurForm, m *matrix.Dense[complex128]) float64 {
	n := m.Rows()
	sum := NormZero
	var i, j, k, l int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var v complex128
			for k = 0; k < n; k++ {
				qik := sf.Q.Get(i, k)
				for l = k; l < n; l++ {
					v += qik * sf.T.Get(k, l) * cmplx.Conj(sf.Q.Get(j, l))
				}
			}
			d := v - m.Get(i, j)
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}

	return math.Sqrt(sum)
}
