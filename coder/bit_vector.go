package coder

import "github.com/bits-and-blooms/bitset"

// BitVector is a fixed-size set of flags, all clear initially.
// It is not safe for concurrent mutation.
type BitVector struct {
	bits *bitset.BitSet
	size uint64
}

// NewBitVector allocates size flags.
func NewBitVector(size uint64) *BitVector {
	return &BitVector{bits: bitset.New(uint(size)), size: size}
}

// Len is the number of flags.
func (b *BitVector) Len() uint64 { return b.size }

// Set raises flag i; out-of-range indices are ignored.
func (b *BitVector) Set(i uint64) {
	if i < b.size {
		b.bits.Set(uint(i))
	}
}

// Test reports flag i; out-of-range indices are clear.
func (b *BitVector) Test(i uint64) bool {
	return i < b.size && b.bits.Test(uint(i))
}

// NextClear returns the first clear index ≥ from.
func (b *BitVector) NextClear(from uint64) (uint64, bool) {
	if from >= b.size {
		return 0, false
	}
	i, ok := b.bits.NextClear(uint(from))

	return uint64(i), ok
}

// Count is the number of raised flags.
func (b *BitVector) Count() uint64 { return uint64(b.bits.Count()) }
