package digits

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/katalvlaran/gns/coder"
	"github.com/katalvlaran/gns/gns"
	"github.com/katalvlaran/gns/norm"
	"github.com/katalvlaran/gns/radix"
)

// MaxCandidates caps the number of lattice points Symmetric and JSymmetric inspect.
const MaxCandidates uint64 = 1 << 26

// normTieTol treats operator norms within this distance as equal.
const normTieTol = 1e-12

// Kind names a digit-set construction.
type Kind string

const (
	KindCanonical  Kind = "canonical"
	KindSymmetric  Kind = "symmetric"
	KindJSymmetric Kind = "jsymmetric"
)

// Build dispatches on kind.
func Build(kind Kind, props *radix.Properties) ([][]int64, error) {
	switch kind {
	case KindCanonical:
		return Canonical(props)
	case KindSymmetric:
		return Symmetric(props)
	case KindJSymmetric:
		return JSymmetric(props)
	}

	return nil, fmt.Errorf("digits.Build: kind %q: %w", kind, ErrUnknownKind)
}

// Validate reports whether digits is a complete residue system for the base.
func Validate(props *radix.Properties, digits [][]int64) error {
	if props == nil {
		return ErrNilProperties
	}
	_, err := gns.NewHashTable(props, digits)

	return err
}

// Canonical returns the representatives U⁻¹·e of the Smith hash indices 0..|det M|-1.
func Canonical(props *radix.Properties) ([][]int64, error) {
	if props == nil {
		return nil, ErrNilProperties
	}
	hash, err := gns.NewSmithHash(props.Smith())
	if err != nil {
		return nil, fmt.Errorf("digits.Canonical: %w", err)
	}
	out := make([][]int64, 0, hash.Size())
	for h := int64(0); h < hash.Size(); h++ {
		d, err := hash.Representative(h)
		if err != nil {
			return nil, fmt.Errorf("digits.Canonical: %w", err)
		}
		out = append(out, d)
	}

	return out, nil
}

// Symmetric returns Zⁿ ∩ M·[-½, ½)ⁿ in lexicographic order.
// Membership is tested exactly: every coordinate y of M⁻¹·z satisfies -1 ≤ 2y < 1.
func Symmetric(props *radix.Properties) ([][]int64, error) {
	if props == nil {
		return nil, ErrNilProperties
	}
	n := props.Dim()
	base := props.Base()
	inv := props.Inverse()

	// M·[-½, ½]ⁿ lies within |zᵢ| ≤ ½·Σⱼ|Mᵢⱼ|
	lower := make([]int64, n)
	upper := make([]int64, n)
	for i := 0; i < n; i++ {
		var r int64
		for j := 0; j < n; j++ {
			r += abs64(base.Get(i, j))
		}
		upper[i] = (r + 1) / 2
		lower[i] = -upper[i]
	}
	vc, err := boxCoder(lower, upper)
	if err != nil {
		return nil, fmt.Errorf("digits.Symmetric: %w", err)
	}

	var (
		out  [][]int64
		y    = new(big.Rat)
		term = new(big.Rat)
		zr   = new(big.Rat)
		two  = big.NewRat(2, 1)
		one  = big.NewRat(1, 1)
		neg1 = big.NewRat(-1, 1)
	)
	z := make([]int64, n)
	for code := uint64(0); code < vc.Size(); code++ {
		vc.Decode(code, z)
		inside := true
		for k := 0; k < n && inside; k++ {
			y.SetInt64(0)
			for j := 0; j < n; j++ {
				zr.SetInt64(z[j])
				y.Add(y, term.Mul(inv.Get(k, j), zr))
			}
			y.Mul(y, two)
			inside = y.Cmp(neg1) >= 0 && y.Cmp(one) < 0
		}
		if inside {
			out = append(out, append([]int64(nil), z...))
		}
	}
	if int64(len(out)) != props.AbsDet() {
		return nil, fmt.Errorf("digits.Symmetric: %d points for %d cosets: %w", len(out), props.AbsDet(), ErrIncomplete)
	}
	sortLex(out)

	return out, nil
}

// JSymmetric returns, for every coset, the representative with the least
// adapted operator norm; equal norms prefer the lexicographically smaller vector.
//
// Candidates are enumerated in the boxes |zᵢ| ≤ r for r = 1, 2, …; the search
// stops once every coset has a digit and any point outside the box is provably
// longer: ‖z‖ ≥ ‖z‖∞ / ‖S⁻¹‖∞ > max chosen norm.
func JSymmetric(props *radix.Properties) ([][]int64, error) {
	if props == nil {
		return nil, ErrNilProperties
	}
	hash, err := gns.NewSmithHash(props.Smith())
	if err != nil {
		return nil, fmt.Errorf("digits.JSymmetric: %w", err)
	}
	on := props.Norm()
	sInv := norm.InfNorm(on.SInv())

	n := props.Dim()
	size := hash.Size()
	best := make([][]int64, size)
	bestNorm := make([]float64, size)
	found := int64(0)
	cache := make([]int64, n)
	z := make([]int64, n)

	for r := int64(1); ; r++ {
		lower := make([]int64, n)
		upper := make([]int64, n)
		for i := range lower {
			lower[i], upper[i] = -r, r
		}
		vc, err := boxCoder(lower, upper)
		if err != nil {
			return nil, fmt.Errorf("digits.JSymmetric: radius %d: %w", r, err)
		}
		for code := uint64(0); code < vc.Size(); code++ {
			vc.Decode(code, z)
			if r > 1 && maxAbs(z) < r {
				continue // inspected with a smaller radius
			}
			h := hash.HashCached(z, cache)
			v, err := on.IntVector(z)
			if err != nil {
				return nil, fmt.Errorf("digits.JSymmetric: %w", err)
			}
			if best[h] == nil {
				found++
			} else if !(v < bestNorm[h]-normTieTol ||
				(math.Abs(v-bestNorm[h]) <= normTieTol && compareVec(z, best[h]) < 0)) {
				continue
			}
			best[h] = append([]int64(nil), z...)
			bestNorm[h] = v
		}
		if found < size {
			continue
		}
		worst := 0.0
		for _, v := range bestNorm {
			worst = math.Max(worst, v)
		}
		if float64(r+1)/sInv > worst+normTieTol {
			break
		}
	}
	sortLex(best)

	return best, nil
}

// boxCoder builds a coder for a candidate box and enforces MaxCandidates.
func boxCoder(lower, upper []int64) (*coder.VectorCoder, error) {
	vc, err := coder.NewVectorCoder(lower, upper)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSearchLimit)
	}
	if vc.Size() > MaxCandidates {
		return nil, fmt.Errorf("%d candidates: %w", vc.Size(), ErrSearchLimit)
	}

	return vc, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

func maxAbs(v []int64) int64 {
	var out int64
	for _, x := range v {
		out = max(out, abs64(x))
	}

	return out
}

func compareVec(a, b []int64) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}

func sortLex(vs [][]int64) {
	slices.SortFunc(vs, compareVec)
}
