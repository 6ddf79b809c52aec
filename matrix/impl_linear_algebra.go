// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense matrices over any ring:
// element-wise addition and subtraction, multiplication, matrix-vector product,
// transpose, scaling and structural predicates. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - The ring is passed explicitly (ring.Int64{}, ring.Rat{}, ...), never inferred.
//   - Inputs are never mutated; every result is freshly allocated.
//   - Loop orders are fixed so results are bitwise reproducible for float rings.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gns/ring"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opPower     = "Power"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b. Shared by Add and Sub.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub[T any](rg ring.Ring[T], a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range a.data {
		if subtract {
			res.data[idx] = rg.Sub(a.data[idx], b.data[idx])
		} else {
			res.data[idx] = rg.Add(a.data[idx], b.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T any](rg ring.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	return addSub(rg, a, b, false, opAdd)
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T any](rg ring.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	return addSub(rg, a, b, true, opSub)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero entries of A are skipped.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T any](rg ring.Ring[T], a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := Zeros(rg, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k    int
		av         T
		rowA, rowB int
		rowR       int
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if rg.IsZero(av) {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] = rg.Add(res.data[rowR+j], rg.Mul(av, b.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec[T any](rg ring.Ring[T], m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(len(x), m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]T, m.r)
	MatVecInto(rg, m, x, y)

	return y, nil
}

// MatVecInto writes m*x into y without validation or allocation.
// Hot path of the digit-stripping map; callers guarantee len(x)==Cols, len(y)==Rows.
func MatVecInto[T any](rg ring.Ring[T], m *Dense[T], x, y []T) {
	var sum T
	for i := 0; i < m.r; i++ {
		sum = rg.Zero()
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			if rg.IsZero(v) {
				continue
			}
			sum = rg.Add(sum, rg.Mul(v, x[j]))
		}
		y[i] = sum
	}
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// ConjTranspose returns the conjugate transpose m* (equal to mᵀ for real rings).
func ConjTranspose[T any](rg ring.Ring[T], m *Dense[T]) (*Dense[T], error) {
	res, err := Transpose(m)
	if err != nil {
		return nil, err
	}
	for idx, v := range res.data {
		res.data[idx] = rg.Conj(v)
	}

	return res, nil
}

// Scale returns alpha * m.
func Scale[T any](rg ring.Ring[T], m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = rg.Mul(alpha, v)
	}

	return res, nil
}

// Power returns m^k for k >= 0 by repeated squaring.
func Power[T any](rg ring.Ring[T], m *Dense[T], k int) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPower, fmt.Errorf("negative exponent %d: %w", k, ErrOutOfRange))
	}
	result, err := Identity(rg, m.r)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	base := m
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(rg, result, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(rg, base, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return result, nil
}

// Equal reports whether a and b have the same shape and equal entries under rg.
// Nil matrices are never equal.
func Equal[T any](rg ring.Ring[T], a, b *Dense[T]) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	for idx := range a.data {
		if !rg.Equal(a.data[idx], b.data[idx]) {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal entry is zero under rg.
func IsDiagonal[T any](rg ring.Ring[T], m *Dense[T]) bool {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if i != j && !rg.IsZero(m.data[i*m.c+j]) {
				return false
			}
		}
	}

	return true
}

// Map converts every element with f, e.g. int64 → complex128.
func Map[S, T any](m *Dense[S], f func(S) T) *Dense[T] {
	res := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res
}
