// Package ops provides advanced matrix operations for the gns/matrix package.
// Determinant, Inverse and Adjugate run Gaussian elimination with magnitude
// (absolute value) partial pivoting over a field.
package ops

import (
	"fmt"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

// pivotRow returns the row index in [from, n) holding the entry of largest
// magnitude in column col, or -1 when the whole sub-column is zero.
func pivotRow[T any](f ring.Field[T], a *matrix.Dense[T], from, col int) int {
	best := -1
	for i := from; i < a.Rows(); i++ {
		v := a.Get(i, col)
		if f.IsZero(v) {
			continue
		}
		if best < 0 || f.AbsLess(a.Get(best, col), v) {
			best = i
		}
	}

	return best
}

// Determinant returns det(m) by forward elimination.
// A matrix without a non-zero pivot has determinant zero (not an error).
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Execute): for each column select the largest pivot, swap (flip sign),
//	                   eliminate below, multiply the pivot into the product.
//
// Complexity: O(n³) time, O(n²) memory.
func Determinant[T any](f ring.Field[T], m *matrix.Dense[T]) (T, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		var zero T
		return zero, opsErrorf(opDeterminant, err)
	}
	n := m.Rows()
	a := m.Clone()
	det := f.One()
	var (
		i, j, k int
		factor  T
	)
	for k = 0; k < n; k++ {
		p := pivotRow(f, a, k, k)
		if p < 0 {
			return f.Zero(), nil
		}
		if p != k {
			a.SwapRows(p, k)
			det = f.Neg(det)
		}
		pivot := a.Get(k, k)
		det = f.Mul(det, pivot)
		for i = k + 1; i < n; i++ {
			if f.IsZero(a.Get(i, k)) {
				continue
			}
			factor = f.Quo(a.Get(i, k), pivot)
			for j = k; j < n; j++ {
				a.Put(i, j, f.Sub(a.Get(i, j), f.Mul(factor, a.Get(k, j))))
			}
		}
	}

	return det, nil
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination on [m | I].
// Returns matrix.ErrSingular when no pivot is found.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Prepare): work = clone(m), inv = I.
//	Stage 3 (Execute): pivot, normalize the pivot row, eliminate the column everywhere.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse[T any](f ring.Field[T], m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	n := m.Rows()
	a := m.Clone()
	inv, err := matrix.Identity[T](f, n)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	var (
		i, j, k int
		factor  T
		pinv    T
	)
	for k = 0; k < n; k++ {
		p := pivotRow(f, a, k, k)
		if p < 0 {
			return nil, opsErrorf(opInverse, fmt.Errorf("column %d: %w", k, matrix.ErrSingular))
		}
		a.SwapRows(p, k)
		inv.SwapRows(p, k)

		pinv = f.Inv(a.Get(k, k))
		for j = 0; j < n; j++ {
			a.Put(k, j, f.Mul(a.Get(k, j), pinv))
			inv.Put(k, j, f.Mul(inv.Get(k, j), pinv))
		}
		for i = 0; i < n; i++ {
			if i == k || f.IsZero(a.Get(i, k)) {
				continue
			}
			factor = a.Get(i, k)
			for j = 0; j < n; j++ {
				a.Put(i, j, f.Sub(a.Get(i, j), f.Mul(factor, a.Get(k, j))))
				inv.Put(i, j, f.Sub(inv.Get(i, j), f.Mul(factor, inv.Get(k, j))))
			}
		}
	}

	return inv, nil
}

// Adjugate returns adj(m) with m·adj(m) = det(m)·I.
// Non-singular inputs use det·m⁻¹; singular inputs fall back to cofactors.
func Adjugate[T any](f ring.Field[T], m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opAdjugate, err)
	}
	det, err := Determinant(f, m)
	if err != nil {
		return nil, opsErrorf(opAdjugate, err)
	}
	if !f.IsZero(det) {
		inv, err := Inverse(f, m)
		if err != nil {
			return nil, opsErrorf(opAdjugate, err)
		}
		adj, err := matrix.Scale[T](f, inv, det)
		if err != nil {
			return nil, opsErrorf(opAdjugate, err)
		}

		return adj, nil
	}

	return cofactorAdjugate(f, m)
}

// cofactorAdjugate computes adj(m)[j][i] = (-1)^(i+j)·det(minor(i,j)).
// O(n⁵); only reached for singular inputs.
func cofactorAdjugate[T any](f ring.Field[T], m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	n := m.Rows()
	adj, err := matrix.Zeros[T](f, n, n)
	if err != nil {
		return nil, opsErrorf(opAdjugate, err)
	}
	if n == 1 {
		adj.Put(0, 0, f.One())
		return adj, nil
	}
	minor, err := matrix.Zeros[T](f, n-1, n-1)
	if err != nil {
		return nil, opsErrorf(opAdjugate, err)
	}
	var i, j, r, c, mr, mc int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			mr = 0
			for r = 0; r < n; r++ {
				if r == i {
					continue
				}
				mc = 0
				for c = 0; c < n; c++ {
					if c == j {
						continue
					}
					minor.Put(mr, mc, m.Get(r, c))
					mc++
				}
				mr++
			}
			d, err := Determinant(f, minor)
			if err != nil {
				return nil, opsErrorf(opAdjugate, err)
			}
			if (i+j)%2 == 1 {
				d = f.Neg(d)
			}
			adj.Put(j, i, d)
		}
	}

	return adj, nil
}
