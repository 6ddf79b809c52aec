package coder

import (
	"fmt"
	"math"
	"math/bits"
)

// VectorCoder bijects the points of an integer box onto [0, Size()).
type VectorCoder struct {
	lower, upper []int64
	width        []uint64
	stride       []uint64
	size         uint64
}

// NewVectorCoder builds a coder for the box [lower, upper] (bounds inclusive).
// Returns ErrBadBox for malformed bounds and ErrVolumeOverflow when the number
// of points does not fit into uint64.
func NewVectorCoder(lower, upper []int64) (*VectorCoder, error) {
	if len(lower) == 0 || len(lower) != len(upper) {
		return nil, fmt.Errorf("NewVectorCoder: %d vs %d bounds: %w", len(lower), len(upper), ErrBadBox)
	}
	n := len(lower)
	c := &VectorCoder{
		lower:  append([]int64(nil), lower...),
		upper:  append([]int64(nil), upper...),
		width:  make([]uint64, n),
		stride: make([]uint64, n),
	}
	size := uint64(1)
	for i := 0; i < n; i++ {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("NewVectorCoder: axis %d [%d, %d]: %w", i, lower[i], upper[i], ErrBadBox)
		}
		// upper-lower fits into uint64 even when it overflows int64
		span := uint64(upper[i]) - uint64(lower[i])
		if span == math.MaxUint64 {
			return nil, fmt.Errorf("NewVectorCoder: axis %d: %w", i, ErrVolumeOverflow)
		}
		c.width[i] = span + 1
		c.stride[i] = size
		hi, lo := bits.Mul64(size, c.width[i])
		if hi != 0 {
			return nil, fmt.Errorf("NewVectorCoder: axis %d: %w", i, ErrVolumeOverflow)
		}
		size = lo
	}
	c.size = size

	return c, nil
}

// Dim is the number of axes.
func (c *VectorCoder) Dim() int { return len(c.lower) }

// Size is the number of points in the box.
func (c *VectorCoder) Size() uint64 { return c.size }

// Lower returns a copy of the lower bounds.
func (c *VectorCoder) Lower() []int64 { return append([]int64(nil), c.lower...) }

// Upper returns a copy of the upper bounds.
func (c *VectorCoder) Upper() []int64 { return append([]int64(nil), c.upper...) }

// Contains reports whether v lies in the box.
func (c *VectorCoder) Contains(v []int64) bool {
	if len(v) != len(c.lower) {
		return false
	}
	for i, x := range v {
		if x < c.lower[i] || x > c.upper[i] {
			return false
		}
	}

	return true
}

// Encode returns the code of v, or false when v lies outside the box.
func (c *VectorCoder) Encode(v []int64) (uint64, bool) {
	if !c.Contains(v) {
		return 0, false
	}
	var code uint64
	for i, x := range v {
		code += (uint64(x) - uint64(c.lower[i])) * c.stride[i]
	}

	return code, true
}

// Decode writes the point with the given code into dst (len(dst) == Dim()).
// Codes ≥ Size() are reduced modulo Size().
func (c *VectorCoder) Decode(code uint64, dst []int64) {
	for i := range c.lower {
		dst[i] = int64(uint64(c.lower[i]) + code%c.width[i])
		code /= c.width[i]
	}
}
