package matrix_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

func TestNew_BadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.New[int64](tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestZeros_PointerRing(t *testing.T) {
	m, err := matrix.Zeros[*big.Int](ring.BigInt{}, 2, 3)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.NotNil(t, v)
			assert.Equal(t, 0, v.Sign())
		}
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m := matrix.MustFromRows([][]int64{{1, 2}, {3, 4}})
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	require.NoError(t, m.Set(0, 1, 7))
	assert.Equal(t, int64(7), m.Get(0, 1))

	_, err = m.At(2, 0)
	assert.True(t, errors.Is(err, matrix.ErrOutOfRange))
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]int64{})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_CloneIndependent(t *testing.T) {
	m := matrix.MustFromRows([][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	c.Put(0, 0, 100)
	assert.Equal(t, int64(1), m.Get(0, 0))
}

func TestDense_RowColSub(t *testing.T) {
	m := matrix.MustFromRows([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 6}, row)
	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 6, 9}, col)

	s, err := m.Sub(1, 3, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 7, 8}, s.Raw())

	_, err = m.Sub(2, 1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Swaps(t *testing.T) {
	m := matrix.MustFromRows([][]int64{{1, 2}, {3, 4}})
	m.SwapRows(0, 1)
	assert.Equal(t, []int64{3, 4, 1, 2}, m.Raw())
	m.SwapCols(0, 1)
	assert.Equal(t, []int64{4, 3, 2, 1}, m.Raw())
}

func TestDense_String(t *testing.T) {
	m := matrix.MustFromRows([][]int64{{1, -2}, {3, 4}})
	assert.Equal(t, "[1, -2]\n[3, 4]\n", m.String())
}
