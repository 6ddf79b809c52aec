package ops

import (
	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

// reduced is a full-pivoting reduced row echelon form: a[0:rank, 0:rank] = I and
// perm[k] is the original column that now sits at position k.
type reduced[T any] struct {
	a    *matrix.Dense[T]
	perm []int
	rank int
}

// rref runs Gauss–Jordan elimination with full (row and column) pivoting.
// Entries the field considers zero terminate the elimination.
func rref[T any](f ring.Field[T], m *matrix.Dense[T]) *reduced[T] {
	a := m.Clone()
	rows, cols := a.Rows(), a.Cols()
	perm := make([]int, cols)
	for j := range perm {
		perm[j] = j
	}
	var (
		i, j, r int
		pi, pj  int
		pinv    T
		factor  T
	)
	for r = 0; r < rows && r < cols; r++ {
		// Stage 1: largest remaining entry
		pi, pj = -1, -1
		for i = r; i < rows; i++ {
			for j = r; j < cols; j++ {
				if pi < 0 || f.AbsLess(a.Get(pi, pj), a.Get(i, j)) {
					pi, pj = i, j
				}
			}
		}
		if f.IsZero(a.Get(pi, pj)) {
			break
		}
		a.SwapRows(r, pi)
		a.SwapCols(r, pj)
		perm[r], perm[pj] = perm[pj], perm[r]

		// Stage 2: normalize and clear the column everywhere
		pinv = f.Inv(a.Get(r, r))
		for j = r; j < cols; j++ {
			a.Put(r, j, f.Mul(a.Get(r, j), pinv))
		}
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			factor = a.Get(i, r)
			if f.IsZero(factor) {
				a.Put(i, r, f.Zero())
				continue
			}
			for j = r; j < cols; j++ {
				a.Put(i, j, f.Sub(a.Get(i, j), f.Mul(factor, a.Get(r, j))))
			}
		}
	}

	return &reduced[T]{a: a, perm: perm, rank: r}
}

// Rank returns the numerical rank of m under the zero test of f.
func Rank[T any](f ring.Field[T], m *matrix.Dense[T]) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, opsErrorf(opNullSpace, err)
	}

	return rref(f, m).rank, nil
}

// SolveHomogeneous returns a basis of {x : m·x = 0}.
// Each basis vector sets one free variable to 1 and the others to 0; pivot
// variables are back-substituted from the reduced form. A full-rank m yields an
// empty basis.
//
// Complexity: O(rows·cols·min(rows, cols)).
func SolveHomogeneous[T any](f ring.Field[T], m *matrix.Dense[T]) ([][]T, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opsErrorf(opNullSpace, err)
	}
	red := rref(f, m)
	cols := m.Cols()
	basis := make([][]T, 0, cols-red.rank)
	var i, k int
	for k = red.rank; k < cols; k++ {
		x := make([]T, cols)
		for i = range x {
			x[i] = f.Zero()
		}
		x[red.perm[k]] = f.One()
		for i = 0; i < red.rank; i++ {
			x[red.perm[i]] = f.Neg(red.a.Get(i, k))
		}
		basis = append(basis, x)
	}

	return basis, nil
}
