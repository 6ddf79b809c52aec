package ops

import (
	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

// SmithForm is a Smith normal form U·A·V = S with U, V unimodular and S diagonal,
// S[i][i] ≥ 0 and S[i][i] | S[i+1][i+1].
type SmithForm[T any] struct {
	S, U, V *matrix.Dense[T]
}

// Invariants returns the diagonal of S (the invariant factors).
func (f *SmithForm[T]) Invariants() []T {
	n := f.S.Rows()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = f.S.Get(i, i)
	}

	return out
}

// Smith computes the Smith normal form of a square matrix over a Euclidean ring.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square; S = clone(m), U = V = I.
//	Stage 2 (Diagonalize): for t = 0..n-1 move the entry of least non-zero
//	                       absolute value in S[t:, t:] to (t, t), then clear
//	                       row t and column t with exact quotients or, when the
//	                       pivot does not divide, a Bézout 2×2 unimodular step.
//	Stage 3 (Chain): for i < j with d_i ∤ d_j replace (d_i, d_j) by
//	                 (gcd, lcm) with one more unimodular row/column pair.
//	Stage 4 (Signs): negate rows of S and U with a negative diagonal entry.
//
// Every row operation is mirrored in U, every column operation in V.
func Smith[T any](e ring.Euclidean[T], m *matrix.Dense[T]) (*SmithForm[T], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opSmith, err)
	}
	n := m.Rows()
	s := m.Clone()
	u, err := matrix.Identity[T](e, n)
	if err != nil {
		return nil, opsErrorf(opSmith, err)
	}
	v, err := matrix.Identity[T](e, n)
	if err != nil {
		return nil, opsErrorf(opSmith, err)
	}
	w := &smithWork[T]{e: e, s: s, u: u, v: v, n: n}

	// Stage 2: diagonalize
	for t := 0; t < n; t++ {
		pi, pj := w.minPivot(t)
		if pi < 0 {
			break // the remaining block is zero
		}
		if pi != t {
			s.SwapRows(pi, t)
			u.SwapRows(pi, t)
		}
		if pj != t {
			s.SwapCols(pj, t)
			v.SwapCols(pj, t)
		}
		for !w.clean(t) {
			w.clearColumn(t)
			w.clearRow(t)
		}
	}

	// Stage 3: divisibility chain
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w.fixDivisibility(i, j)
		}
	}

	// Stage 4: non-negative diagonal
	for i = 0; i < n; i++ {
		if e.Sign(s.Get(i, i)) < 0 {
			w.scaleRow(i, e.FromInt64(-1))
		}
	}

	return &SmithForm[T]{S: s, U: u, V: v}, nil
}

type smithWork[T any] struct {
	e       ring.Euclidean[T]
	s, u, v *matrix.Dense[T]
	n       int
}

// minPivot returns the position of the least non-zero |entry| of S[t:, t:], or (-1, -1).
func (w *smithWork[T]) minPivot(t int) (int, int) {
	pi, pj := -1, -1
	for i := t; i < w.n; i++ {
		for j := t; j < w.n; j++ {
			x := w.s.Get(i, j)
			if w.e.IsZero(x) {
				continue
			}
			if pi < 0 || w.e.AbsLess(x, w.s.Get(pi, pj)) {
				pi, pj = i, j
			}
		}
	}

	return pi, pj
}

// clean reports whether row t and column t of S are zero off the diagonal.
func (w *smithWork[T]) clean(t int) bool {
	for k := t + 1; k < w.n; k++ {
		if !w.e.IsZero(w.s.Get(k, t)) || !w.e.IsZero(w.s.Get(t, k)) {
			return false
		}
	}

	return true
}

// clearColumn zeroes S[i][t] for i > t.
func (w *smithWork[T]) clearColumn(t int) {
	e := w.e
	for i := t + 1; i < w.n; i++ {
		a, b := w.s.Get(t, t), w.s.Get(i, t)
		if e.IsZero(b) {
			continue
		}
		if e.Divides(a, b) {
			w.addRow(i, t, e.Neg(e.ExactDiv(b, a)))
			continue
		}
		// [x y; -b/g a/g] has determinant 1 and maps (a, b) to (g, 0)
		g, x, y := e.ExtGCD(a, b)
		w.combineRows(t, i, x, y, e.Neg(e.ExactDiv(b, g)), e.ExactDiv(a, g))
	}
}

// clearRow zeroes S[t][j] for j > t.
func (w *smithWork[T]) clearRow(t int) {
	e := w.e
	for j := t + 1; j < w.n; j++ {
		a, b := w.s.Get(t, t), w.s.Get(t, j)
		if e.IsZero(b) {
			continue
		}
		if e.Divides(a, b) {
			w.addCol(j, t, e.Neg(e.ExactDiv(b, a)))
			continue
		}
		g, x, y := e.ExtGCD(a, b)
		w.combineCols(t, j, x, y, e.Neg(e.ExactDiv(b, g)), e.ExactDiv(a, g))
	}
}

// fixDivisibility turns diag(d_i, d_j) into diag(gcd, d_i·d_j/gcd) when d_i ∤ d_j.
//
//	row_i += row_j
//	col_i, col_j = x·col_i + y·col_j, -(d_j/g)·col_i + (d_i/g)·col_j
//	row_j -= (y·d_j/g)·row_i
func (w *smithWork[T]) fixDivisibility(i, j int) {
	e := w.e
	a, b := w.s.Get(i, i), w.s.Get(j, j)
	if e.Divides(a, b) {
		return
	}
	g, x, y := e.ExtGCD(a, b)
	bg := e.ExactDiv(b, g)
	w.addRow(i, j, e.One())
	w.combineCols(i, j, x, y, e.Neg(bg), e.ExactDiv(a, g))
	w.addRow(j, i, e.Neg(e.Mul(y, bg)))
}

// addRow performs row_dst += k·row_src on S and U.
func (w *smithWork[T]) addRow(dst, src int, k T) {
	e := w.e
	for _, m := range []*matrix.Dense[T]{w.s, w.u} {
		for c := 0; c < w.n; c++ {
			m.Put(dst, c, e.Add(m.Get(dst, c), e.Mul(k, m.Get(src, c))))
		}
	}
}

// addCol performs col_dst += k·col_src on S and V.
func (w *smithWork[T]) addCol(dst, src int, k T) {
	e := w.e
	for _, m := range []*matrix.Dense[T]{w.s, w.v} {
		for r := 0; r < w.n; r++ {
			m.Put(r, dst, e.Add(m.Get(r, dst), e.Mul(k, m.Get(r, src))))
		}
	}
}

// combineRows replaces (row_i, row_j) by (p·row_i + q·row_j, r·row_i + s·row_j) on S and U.
func (w *smithWork[T]) combineRows(i, j int, p, q, r, s T) {
	e := w.e
	for _, m := range []*matrix.Dense[T]{w.s, w.u} {
		for c := 0; c < w.n; c++ {
			xi, xj := m.Get(i, c), m.Get(j, c)
			m.Put(i, c, e.Add(e.Mul(p, xi), e.Mul(q, xj)))
			m.Put(j, c, e.Add(e.Mul(r, xi), e.Mul(s, xj)))
		}
	}
}

// combineCols replaces (col_i, col_j) by (p·col_i + q·col_j, r·col_i + s·col_j) on S and V.
func (w *smithWork[T]) combineCols(i, j int, p, q, r, s T) {
	e := w.e
	for _, m := range []*matrix.Dense[T]{w.s, w.v} {
		for c := 0; c < w.n; c++ {
			xi, xj := m.Get(c, i), m.Get(c, j)
			m.Put(c, i, e.Add(e.Mul(p, xi), e.Mul(q, xj)))
			m.Put(c, j, e.Add(e.Mul(r, xi), e.Mul(s, xj)))
		}
	}
}

// scaleRow multiplies row i of S and U by k.
func (w *smithWork[T]) scaleRow(i int, k T) {
	for _, m := range []*matrix.Dense[T]{w.s, w.u} {
		for c := 0; c < w.n; c++ {
			m.Put(i, c, w.e.Mul(k, m.Get(i, c)))
		}
	}
}
