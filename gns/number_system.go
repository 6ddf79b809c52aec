// SPDX-License-Identifier: MIT
// Package: gns
//
// Purpose:
//  - Expose the digit-stripping map φ(z) = adj(M)·(z - d(z)) / det(M).
//  - Radix expansions and orbits are plain iterations of φ.
//
// Determinism & Performance:
//  - PhiInto allocates nothing; callers reuse a Scratch per goroutine.
//  - The division by det(M) is exact because z ≡ d(z) (mod MZⁿ).

package gns

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/radix"
)

// NumberSystem couples a radix base with a validated digit set. Immutable.
type NumberSystem struct {
	props *radix.Properties
	table *HashTable
	adj   []int64 // row-major adj(M)
	det   int64
	n     int
	limit int64 // largest |zᵢ| for which PhiInto cannot overflow
	opts  options
}

// Scratch holds the buffers PhiInto needs; one per goroutine.
type Scratch struct {
	diff []int64
	hash []int64
}

// New builds a number system from radix properties and a digit set.
// The digit set is validated by NewHashTable.
func New(props *radix.Properties, digits [][]int64, opts ...Option) (*NumberSystem, error) {
	if props == nil {
		return nil, gnsErrorf(opNewNumberSys, ErrNilProperties)
	}
	table, err := NewHashTable(props, digits)
	if err != nil {
		return nil, gnsErrorf(opNewNumberSys, err)
	}
	adj := props.Adjugate()
	ns := &NumberSystem{
		props: props,
		table: table,
		adj:   append([]int64(nil), adj.Raw()...),
		det:   props.Det(),
		n:     props.Dim(),
		opts:  gatherOptions(opts...),
	}
	ns.limit = ns.pointLimit()

	return ns, nil
}

// Properties returns the radix properties of the base.
func (ns *NumberSystem) Properties() *radix.Properties { return ns.props }

// Table returns the digit table.
func (ns *NumberSystem) Table() *HashTable { return ns.table }

// Dim is the lattice dimension.
func (ns *NumberSystem) Dim() int { return ns.n }

// PointLimit is the largest coordinate magnitude φ accepts. Within it both the
// Smith hash U′·z and the product adj(M)·(z - d) stay inside int64.
func (ns *NumberSystem) PointLimit() int64 { return ns.limit }

// pointLimit derives PointLimit from the largest entries of adj(M), U′ and D.
func (ns *NumberSystem) pointLimit() int64 {
	maxDigit := int64(0)
	for _, d := range ns.table.digits {
		maxDigit = max(maxDigit, maxAbs(d))
	}
	limit := safeFactor(ns.n, maxAbs(ns.adj)) - maxDigit
	for _, row := range ns.table.hash.rows {
		limit = min(limit, safeFactor(ns.n, maxAbs(row)))
	}

	return max(limit, 0)
}

// safeFactor returns the largest x with n·c·x ≤ MaxInt64.
func safeFactor(n int, c int64) int64 {
	c = max(c, 1)
	if c > math.MaxInt64/int64(n) {
		return 0
	}

	return math.MaxInt64 / (int64(n) * c)
}

func maxAbs(v []int64) int64 {
	m := int64(0)
	for _, x := range v {
		if x == math.MinInt64 {
			return math.MaxInt64
		}
		if x < 0 {
			x = -x
		}
		m = max(m, x)
	}

	return m
}

// checkPoint rejects coordinates outside PointLimit.
func (ns *NumberSystem) checkPoint(z []int64) error {
	for i, x := range z {
		if x > ns.limit || x < -ns.limit {
			return fmt.Errorf("coordinate %d = %d beyond ±%d: %w", i, x, ns.limit, ErrPointTooLarge)
		}
	}

	return nil
}

// NewScratch allocates buffers for PhiInto.
func (ns *NumberSystem) NewScratch() *Scratch {
	return &Scratch{diff: make([]int64, ns.n), hash: make([]int64, ns.n)}
}

// PhiInto writes φ(z) into dst and returns the coset index of the digit used.
// dst may alias z. Lengths are not checked and coordinates must lie within
// PointLimit; Phi, Expansion and Orbit check both.
func (ns *NumberSystem) PhiInto(z, dst []int64, s *Scratch) int64 {
	h := ns.table.hash.HashCached(z, s.hash)
	d := ns.table.digits[h]
	var (
		i, k int
		sum  int64
	)
	for i = 0; i < ns.n; i++ {
		s.diff[i] = z[i] - d[i]
	}
	for i = 0; i < ns.n; i++ {
		sum = 0
		row := ns.adj[i*ns.n : (i+1)*ns.n]
		for k = 0; k < ns.n; k++ {
			sum += row[k] * s.diff[k]
		}
		dst[i] = sum / ns.det
	}

	return h
}

// Phi returns φ(z).
func (ns *NumberSystem) Phi(z []int64) ([]int64, error) {
	if err := matrix.ValidateVecLen(len(z), ns.n); err != nil {
		return nil, gnsErrorf(opPhi, err)
	}
	if err := ns.checkPoint(z); err != nil {
		return nil, gnsErrorf(opPhi, err)
	}
	out := make([]int64, ns.n)
	ns.PhiInto(z, out, ns.NewScratch())

	return out, nil
}

// Expansion returns the digits d₀, d₁, … with z = Σ Mʲ·dⱼ, stopping when the
// remaining point is 0. The zero vector has the empty expansion.
//
// Points without a finite expansion are reported with ErrNoExpansion after
// WithMaxOrbit steps; cancellation of WithContext is honored.
func (ns *NumberSystem) Expansion(z []int64) ([][]int64, error) {
	return ns.ExpansionLimit(z, ns.opts.maxOrbit)
}

// ExpansionLimit is Expansion with an explicit step limit.
func (ns *NumberSystem) ExpansionLimit(z []int64, limit int) ([][]int64, error) {
	if err := matrix.ValidateVecLen(len(z), ns.n); err != nil {
		return nil, gnsErrorf(opExpansion, err)
	}
	cur := append([]int64(nil), z...)
	s := ns.NewScratch()
	var out [][]int64
	for step := 0; !isZero(cur); step++ {
		if step >= limit {
			return out, gnsErrorf(opExpansion, fmt.Errorf("%v after %d steps: %w", z, limit, ErrNoExpansion))
		}
		if uint64(step)%ns.opts.progressEvery == 0 {
			if err := ns.opts.ctx.Err(); err != nil {
				return out, gnsErrorf(opExpansion, err)
			}
		}
		if err := ns.checkPoint(cur); err != nil {
			return out, gnsErrorf(opExpansion, err)
		}
		h := ns.PhiInto(cur, cur, s)
		out = append(out, ns.table.Digit(h))
	}

	return out, nil
}

// Orbit returns z, φ(z), φ²(z), … up to but excluding the first point that is
// 0 or already in the orbit. The orbit of 0 is empty.
func (ns *NumberSystem) Orbit(z []int64) ([][]int64, error) {
	if err := matrix.ValidateVecLen(len(z), ns.n); err != nil {
		return nil, gnsErrorf(opOrbit, err)
	}
	s := ns.NewScratch()
	cur := append([]int64(nil), z...)
	var orbit [][]int64
	for !isZero(cur) && indexOf(orbit, cur) < 0 {
		if len(orbit) >= ns.opts.maxOrbit {
			return orbit, gnsErrorf(opOrbit, fmt.Errorf("%v after %d points: %w", z, len(orbit), ErrNoExpansion))
		}
		if uint64(len(orbit))%ns.opts.progressEvery == 0 {
			if err := ns.opts.ctx.Err(); err != nil {
				return orbit, gnsErrorf(opOrbit, err)
			}
		}
		if err := ns.checkPoint(cur); err != nil {
			return orbit, gnsErrorf(opOrbit, err)
		}
		orbit = append(orbit, cur)
		next := make([]int64, ns.n)
		ns.PhiInto(cur, next, s)
		cur = next
	}

	return orbit, nil
}

// Recompose returns Σ Mʲ·dⱼ for an expansion d₀, d₁, … (Horner scheme).
func (ns *NumberSystem) Recompose(digits [][]int64) ([]int64, error) {
	base := ns.props.Base()
	acc := make([]int64, ns.n)
	for j := len(digits) - 1; j >= 0; j-- {
		if err := matrix.ValidateVecLen(len(digits[j]), ns.n); err != nil {
			return nil, gnsErrorf(opExpansion, err)
		}
		next := make([]int64, ns.n)
		for i := 0; i < ns.n; i++ {
			var sum int64
			for k := 0; k < ns.n; k++ {
				sum += base.Get(i, k) * acc[k]
			}
			next[i] = sum + digits[j][i]
		}
		acc = next
	}

	return acc, nil
}

func isZero(v []int64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

func equalVec(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// indexOf scans vs linearly for v.
func indexOf(vs [][]int64, v []int64) int {
	for i, w := range vs {
		if equalVec(w, v) {
			return i
		}
	}

	return -1
}
