// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Elements are values of an exact or approximate ring (see package ring). Pointer
// based elements (*big.Int, *big.Rat) are never mutated in place by this package,
// so Clone may share them.
//
// Complexity quicksheet:
//   - New/Zeros: O(r*c); At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gns/ring"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// Invariant: len(data) == r*c; the shape never changes after construction.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// New allocates an r×c Dense with Go zero values.
// Use Zeros for pointer based rings whose zero value is not a valid element.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New[T any](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Zeros allocates an r×c Dense filled with rg.Zero().
func Zeros[T any](rg ring.Ring[T], rows, cols int) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = rg.Zero()
	}

	return m, nil
}

// Identity returns the n×n identity over rg.
func Identity[T any](rg ring.Ring[T], n int) (*Dense[T], error) {
	m, err := Zeros(rg, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = rg.One()
	}

	return m, nil
}

// FromRows builds a Dense from a rectangular slice of rows (copied).
// Returns ErrBadShape when rows is empty or ragged.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// MustFromRows is FromRows for literals known to be well formed (tests, examples).
// It panics on a malformed literal.
func MustFromRows[T any](rows [][]T) *Dense[T] {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Get is the unchecked accessor used by kernels after validation.
// It panics on out-of-range indices like a slice access.
func (m *Dense[T]) Get(row, col int) T { return m.data[row*m.c+col] }

// Put is the unchecked writer paired with Get.
func (m *Dense[T]) Put(row, col int, v T) { m.data[row*m.c+col] = v }

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Raw exposes the row-major backing slice. Callers must not change its length.
func (m *Dense[T]) Raw() []T { return m.data }

// Clone returns a copy with independent storage.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// SwapRows exchanges rows i and k in place.
func (m *Dense[T]) SwapRows(i, k int) {
	if i == k {
		return
	}
	ri, rk := m.data[i*m.c:(i+1)*m.c], m.data[k*m.c:(k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// SwapCols exchanges columns j and k in place.
func (m *Dense[T]) SwapCols(j, k int) {
	if j == k {
		return
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+j], m.data[base+k] = m.data[base+k], m.data[base+j]
	}
}

// Sub returns a copy of the block rows [r0,r1) × cols [c0,c1).
func (m *Dense[T]) Sub(r0, r1, c0, c1 int) (*Dense[T], error) {
	if r0 < 0 || c0 < 0 || r1 > m.r || c1 > m.c || r0 >= r1 || c0 >= c1 {
		return nil, denseErrorf("Sub", r0, c0, ErrOutOfRange)
	}
	out := &Dense[T]{r: r1 - r0, c: c1 - c0, data: make([]T, 0, (r1-r0)*(c1-c0))}
	for i := r0; i < r1; i++ {
		out.data = append(out.data, m.data[i*m.c+c0:i*m.c+c1]...)
	}

	return out, nil
}

// String implements fmt.Stringer using %v per element.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
