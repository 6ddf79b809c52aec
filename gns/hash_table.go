package gns

import (
	"fmt"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/radix"
)

// HashTable is a digit set indexed by SmithHash: slot h holds the digit of coset h.
type HashTable struct {
	hash   *SmithHash
	digits [][]int64
}

// NewHashTable validates digits as a complete residue system of Zⁿ/MZⁿ and
// indexes them by coset.
//
// Errors:
//   - ErrDigitSetSize         len(digits) != |det M|
//   - matrix.ErrDimensionMismatch  a digit of the wrong length
//   - ErrDigitSetNotComplete  two digits in one coset
func NewHashTable(props *radix.Properties, digits [][]int64) (*HashTable, error) {
	if props == nil {
		return nil, gnsErrorf(opNewHashTable, ErrNilProperties)
	}
	hash, err := NewSmithHash(props.Smith())
	if err != nil {
		return nil, gnsErrorf(opNewHashTable, err)
	}
	if int64(len(digits)) != hash.Size() {
		return nil, gnsErrorf(opNewHashTable, fmt.Errorf("%d digits for %d cosets: %w", len(digits), hash.Size(), ErrDigitSetSize))
	}

	slots := make([][]int64, hash.Size())
	owner := make([]int, hash.Size())
	for i, d := range digits {
		if err = matrix.ValidateVecLen(len(d), hash.Dim()); err != nil {
			return nil, gnsErrorf(opNewHashTable, fmt.Errorf("digit %d: %w", i, err))
		}
		h := hash.Hash(d)
		if slots[h] != nil {
			return nil, gnsErrorf(opNewHashTable, fmt.Errorf("digits %v (#%d) and %v (#%d) share coset %d: %w",
				digits[owner[h]], owner[h], d, i, h, ErrDigitSetNotComplete))
		}
		slots[h] = append([]int64(nil), d...)
		owner[h] = i
	}

	return &HashTable{hash: hash, digits: slots}, nil
}

// Hash is the underlying coset hash.
func (t *HashTable) Hash() *SmithHash { return t.hash }

// Size is the number of digits.
func (t *HashTable) Size() int64 { return t.hash.Size() }

// Digit returns a copy of the digit stored for coset h.
func (t *HashTable) Digit(h int64) []int64 { return append([]int64(nil), t.digits[h]...) }

// Lookup returns the coset of z and the digit for it (shared, do not modify).
func (t *HashTable) Lookup(z []int64) (int64, []int64) {
	h := t.hash.Hash(z)

	return h, t.digits[h]
}

// Digits returns a copy of the digits in coset order.
func (t *HashTable) Digits() [][]int64 {
	out := make([][]int64, len(t.digits))
	for i, d := range t.digits {
		out[i] = append([]int64(nil), d...)
	}

	return out
}
