package gns

import (
	"fmt"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/matrix/ops"
	"github.com/katalvlaran/gns/ring"
)

// SmithHash maps a lattice vector to the index of its coset in Zⁿ/MZⁿ.
//
// From U·M·V = S = diag(1,…,1, g₁,…,g_k) it keeps the rows U′ of U that meet a
// non-trivial factor gᵢ and the prefix products P₁ = 1, Pᵢ₊₁ = Pᵢ·gᵢ. Then
//
//	hash(z) = Σᵢ mod(wᵢ, gᵢ)·Pᵢ,  w = U′·z.
//
// Two vectors hash equally iff they differ by an element of MZⁿ, and the
// |det M| cosets map onto 0..|det M|-1. Immutable; safe for concurrent use.
type SmithHash struct {
	rows   [][]int64 // U′
	mods   []int64   // g₁..g_k
	prefix []int64   // P₁..P_k
	offset int       // index of g₁ on the diagonal of S
	uInv   *matrix.Dense[int64]
	size   int64
	n      int
}

// NewSmithHash builds the hash from a Smith form of M.
func NewSmithHash(sf *ops.SmithForm[int64]) (*SmithHash, error) {
	if sf == nil || sf.S == nil || sf.U == nil {
		return nil, gnsErrorf(opNewSmithHash, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(sf.U); err != nil {
		return nil, gnsErrorf(opNewSmithHash, err)
	}
	n := sf.S.Rows()
	d := sf.Invariants()
	offset := 0
	for offset < n && d[offset] == 1 {
		offset++
	}

	h := &SmithHash{offset: offset, size: 1, n: n}
	for i := offset; i < n; i++ {
		if d[i] == 0 {
			return nil, gnsErrorf(opNewSmithHash, fmt.Errorf("S[%d][%d] = 0: %w", i, i, ErrSingularHash))
		}
		row, err := sf.U.Row(i)
		if err != nil {
			return nil, gnsErrorf(opNewSmithHash, err)
		}
		h.rows = append(h.rows, row)
		h.mods = append(h.mods, d[i])
		h.prefix = append(h.prefix, h.size)
		h.size *= d[i]
	}

	// U is unimodular: U⁻¹ = det(U)·adj(U)
	adj, err := ops.IntAdjugate(sf.U)
	if err != nil {
		return nil, gnsErrorf(opNewSmithHash, err)
	}
	det, err := ops.IntDeterminant(sf.U)
	if err != nil {
		return nil, gnsErrorf(opNewSmithHash, err)
	}
	if h.uInv, err = matrix.Scale[int64](ring.Int64{}, adj, det); err != nil {
		return nil, gnsErrorf(opNewSmithHash, err)
	}

	return h, nil
}

// Size is the number of cosets, |det M|.
func (h *SmithHash) Size() int64 { return h.size }

// Dim is the lattice dimension.
func (h *SmithHash) Dim() int { return h.n }

// Moduli returns a copy of the non-trivial invariant factors g₁..g_k.
func (h *SmithHash) Moduli() []int64 { return append([]int64(nil), h.mods...) }

// Hash returns the coset index of z. len(z) must equal Dim().
func (h *SmithHash) Hash(z []int64) int64 {
	return h.HashCached(z, make([]int64, len(h.rows)))
}

// HashCached is Hash with a caller-owned buffer of at least len(Moduli()) entries.
func (h *SmithHash) HashCached(z, cache []int64) int64 {
	var (
		out int64
		sum int64
	)
	for i, row := range h.rows {
		sum = 0
		for k, u := range row {
			sum += u * z[k]
		}
		cache[i] = sum
	}
	for i, g := range h.mods {
		out += ring.Mod64(cache[i], g) * h.prefix[i]
	}

	return out
}

// Representative returns the vector U⁻¹·e whose hash is idx, where e carries
// the mixed-radix digits of idx in the non-trivial positions and 0 elsewhere.
func (h *SmithHash) Representative(idx int64) ([]int64, error) {
	if idx < 0 || idx >= h.size {
		return nil, fmt.Errorf("gns.Representative: %d not in [0, %d): %w", idx, h.size, matrix.ErrOutOfRange)
	}
	e := make([]int64, h.n)
	for i, g := range h.mods {
		e[h.offset+i] = idx % g
		idx /= g
	}

	return matrix.MatVec[int64](ring.Int64{}, h.uInv, e)
}
