// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in matrix and matrix/ops returns these sentinels (possibly
// wrapped with an operation tag) and tests match them via errors.Is.
// No kernel panics on caller-supplied data.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ...". Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context helps; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> numeric (singular).

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or when row data is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix or vector was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when no non-zero pivot exists during elimination.
	ErrSingular = errors.New("matrix: singular matrix")
)
