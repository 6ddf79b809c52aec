// Package ops provides advanced matrix operations for the gns/matrix package.
package ops

import (
	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

// LUResult holds a partially pivoted factorization P·A = L·U.
// Perm[i] is the row of A that became row i; Sign is the permutation parity (±1).
type LUResult[T any] struct {
	L, U *matrix.Dense[T]
	Perm []int
	Sign int
	// Singular is true when some column had no non-zero pivot; U then has a zero diagonal entry.
	Singular bool
}

// LU performs Doolittle elimination with magnitude partial pivoting on a square matrix.
// It returns L (unit lower triangular), U (upper triangular) and the row permutation.
// A singular input is factorized as far as possible and flagged, not rejected.
//
// Time Complexity: O(n³); Memory: O(n²).
func LU[T any](f ring.Field[T], m *matrix.Dense[T]) (*LUResult[T], error) {
	// Stage 1: Validate input is square
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opLU, err)
	}
	n := m.Rows()

	// Stage 2: Prepare working copy, L and permutation
	U := m.Clone()
	L, err := matrix.Identity[T](f, n)
	if err != nil {
		return nil, opsErrorf(opLU, err)
	}
	res := &LUResult[T]{L: L, U: U, Perm: make([]int, n), Sign: 1}
	for i := range res.Perm {
		res.Perm[i] = i
	}

	// Stage 3: Execute elimination column by column
	var (
		i, j, k int
		factor  T
	)
	for k = 0; k < n; k++ {
		p := pivotRow(f, U, k, k)
		if p < 0 {
			res.Singular = true
			continue // nothing to eliminate in this column
		}
		if p != k {
			U.SwapRows(p, k)
			res.Perm[p], res.Perm[k] = res.Perm[k], res.Perm[p]
			res.Sign = -res.Sign
			// swap the already computed multipliers (columns < k) of L
			for j = 0; j < k; j++ {
				lp, lk := L.Get(p, j), L.Get(k, j)
				L.Put(p, j, lk)
				L.Put(k, j, lp)
			}
		}
		pivot := U.Get(k, k)
		for i = k + 1; i < n; i++ {
			if f.IsZero(U.Get(i, k)) {
				U.Put(i, k, f.Zero())
				continue
			}
			factor = f.Quo(U.Get(i, k), pivot)
			L.Put(i, k, factor)
			for j = k; j < n; j++ {
				U.Put(i, j, f.Sub(U.Get(i, j), f.Mul(factor, U.Get(k, j))))
			}
			U.Put(i, k, f.Zero())
		}
	}

	// Stage 4: Finalize
	return res, nil
}

// PermutedRows returns P·A for the permutation recorded in r.
func (r *LUResult[T]) PermutedRows(a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opsErrorf(opLU, err)
	}
	if err := matrix.ValidateVecLen(a.Rows(), len(r.Perm)); err != nil {
		return nil, opsErrorf(opLU, err)
	}
	out := a.Clone()
	for i, src := range r.Perm {
		for j := 0; j < a.Cols(); j++ {
			out.Put(i, j, a.Get(src, j))
		}
	}

	return out, nil
}
