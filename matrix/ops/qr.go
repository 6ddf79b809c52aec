// Package ops provides advanced matrix operations for the gns/matrix package.
// QR computes the QR decomposition of a square complex matrix using Householder
// reflections, returning unitary Q and upper-triangular R such that m = Q×R.
package ops

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/gns/matrix"
)

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// householder builds the reflector H = I - 2vv*/(v*v) with H·x = α·e₀ and returns (v, v*v).
// α = -e^{i·arg(x₀)}·‖x‖ avoids cancellation in v₀ = x₀ - α.
// A zero x yields beta == 0 (identity reflector).
func householder(x []complex128) ([]complex128, float64) {
	norm := NormZero
	for _, xi := range x {
		norm += real(xi)*real(xi) + imag(xi)*imag(xi)
	}
	norm = math.Sqrt(norm)
	v := make([]complex128, len(x))
	if norm == NormZero {
		return v, NormZero
	}
	phase := complex(1, 0)
	if a := cmplx.Abs(x[0]); a != 0 {
		phase = x[0] / complex(a, 0)
	}
	alpha := -phase * complex(norm, 0)
	copy(v, x)
	v[0] -= alpha
	beta := NormZero
	for _, vi := range v {
		beta += real(vi)*real(vi) + imag(vi)*imag(vi)
	}

	return v, beta
}

// reflectLeft applies H = I - 2vv*/beta to rows [off, off+len(v)) of a, columns [c0, c1).
func reflectLeft(a *matrix.Dense[complex128], v []complex128, beta float64, off, c0, c1 int) {
	if beta == NormZero {
		return
	}
	tau := complex(2/beta, 0)
	var s complex128
	for j := c0; j < c1; j++ {
		s = 0
		for l, vl := range v {
			s += cmplx.Conj(vl) * a.Get(off+l, j)
		}
		if s == 0 {
			continue
		}
		s *= tau
		for l, vl := range v {
			a.Put(off+l, j, a.Get(off+l, j)-vl*s)
		}
	}
}

// reflectRight applies H = I - 2vv*/beta to columns [off, off+len(v)) of a, rows [r0, r1).
func reflectRight(a *matrix.Dense[complex128], v []complex128, beta float64, off, r0, r1 int) {
	if beta == NormZero {
		return
	}
	tau := complex(2/beta, 0)
	var s complex128
	for i := r0; i < r1; i++ {
		s = 0
		for l, vl := range v {
			s += a.Get(i, off+l) * vl
		}
		if s == 0 {
			continue
		}
		s *= tau
		for l, vl := range v {
			a.Put(i, off+l, a.Get(i, off+l)-s*cmplx.Conj(vl))
		}
	}
}

// QR returns Q and R for the decomposition m = Q×R.
// It returns matrix.ErrNonSquare if m is not square.
// Complexity: O(n³) time, O(n²) memory where n = m.Rows().
func QR(m *matrix.Dense[complex128]) (*matrix.Dense[complex128], *matrix.Dense[complex128], error) {
	// Stage 1: Validate input dimensions
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}
	n := m.Rows()

	// Stage 2: Prepare working matrices
	R := m.Clone()
	Q, err := identityC(n)
	if err != nil {
		return nil, nil, opsErrorf(opQR, err)
	}

	// Stage 3: Execute Householder reflections column by column
	x := make([]complex128, n)
	var i, k int
	for k = 0; k < n-1; k++ {
		for i = k; i < n; i++ {
			x[i-k] = R.Get(i, k)
		}
		v, beta := householder(x[:n-k])
		reflectLeft(R, v, beta, k, k, n)  // R ← H R
		reflectRight(Q, v, beta, k, 0, n) // Q ← Q H
		for i = k + 1; i < n; i++ {
			R.Put(i, k, 0) // exact zeros below the diagonal
		}
	}

	// Stage 4: Finalize
	return Q, R, nil
}

// identityC is the complex identity used by the spectral routines.
func identityC(n int) (*matrix.Dense[complex128], error) {
	m, err := matrix.New[complex128](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.Put(i, i, 1)
	}

	return m, nil
}
