package coder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/coder"
)

func TestVectorCoder_RoundTrip(t *testing.T) {
	c, err := coder.NewVectorCoder([]int64{-2, 0, -1}, []int64{1, 2, -1})
	require.NoError(t, err)
	assert.Equal(t, uint64(4*3*1), c.Size())
	assert.Equal(t, 3, c.Dim())

	seen := make(map[uint64]bool)
	v := make([]int64, 3)
	for code := uint64(0); code < c.Size(); code++ {
		c.Decode(code, v)
		require.True(t, c.Contains(v), "%v", v)
		back, ok := c.Encode(v)
		require.True(t, ok)
		assert.Equal(t, code, back)
		seen[code] = true
	}
	assert.Len(t, seen, int(c.Size()))
}

func TestVectorCoder_Order(t *testing.T) {
	c, err := coder.NewVectorCoder([]int64{0, 0}, []int64{2, 1})
	require.NoError(t, err)
	code, ok := c.Encode([]int64{1, 0})
	require.True(t, ok)
	assert.Equal(t, uint64(1), code)
	code, ok = c.Encode([]int64{0, 1})
	require.True(t, ok)
	assert.Equal(t, uint64(3), code)
}

func TestVectorCoder_OutOfBox(t *testing.T) {
	c, err := coder.NewVectorCoder([]int64{-1, -1}, []int64{1, 1})
	require.NoError(t, err)
	for _, v := range [][]int64{{2, 0}, {0, -2}, {0}, {0, 0, 0}} {
		_, ok := c.Encode(v)
		assert.False(t, ok, "%v", v)
	}
	assert.Equal(t, []int64{-1, -1}, c.Lower())
	assert.Equal(t, []int64{1, 1}, c.Upper())
}

func TestNewVectorCoder_Errors(t *testing.T) {
	_, err := coder.NewVectorCoder(nil, nil)
	assert.ErrorIs(t, err, coder.ErrBadBox)
	_, err = coder.NewVectorCoder([]int64{0}, []int64{1, 2})
	assert.ErrorIs(t, err, coder.ErrBadBox)
	_, err = coder.NewVectorCoder([]int64{3}, []int64{2})
	assert.ErrorIs(t, err, coder.ErrBadBox)
	_, err = coder.NewVectorCoder([]int64{math.MinInt64}, []int64{math.MaxInt64})
	assert.ErrorIs(t, err, coder.ErrVolumeOverflow)
	_, err = coder.NewVectorCoder([]int64{0, 0, 0}, []int64{1 << 30, 1 << 30, 1 << 30})
	assert.ErrorIs(t, err, coder.ErrVolumeOverflow)
}

func TestBitVector(t *testing.T) {
	b := coder.NewBitVector(130)
	assert.Equal(t, uint64(130), b.Len())
	assert.Zero(t, b.Count())

	for _, i := range []uint64{0, 1, 2, 64, 129} {
		b.Set(i)
	}
	b.Set(500) // ignored
	assert.Equal(t, uint64(5), b.Count())
	assert.True(t, b.Test(64))
	assert.False(t, b.Test(65))
	assert.False(t, b.Test(500))

	next, ok := b.NextClear(0)
	require.True(t, ok)
	assert.Equal(t, uint64(3), next)
	next, ok = b.NextClear(64)
	require.True(t, ok)
	assert.Equal(t, uint64(65), next)
	_, ok = b.NextClear(129)
	assert.False(t, ok)
	_, ok = b.NextClear(1000)
	assert.False(t, ok)
}

func TestBitVector_Full(t *testing.T) {
	b := coder.NewBitVector(64)
	for i := uint64(0); i < 64; i++ {
		b.Set(i)
	}
	_, ok := b.NextClear(0)
	assert.False(t, ok)
}
