package norm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/matrix/ops"
	"github.com/katalvlaran/gns/norm"
	"github.com/katalvlaran/gns/ring"
)

func inverseC(t *testing.T, rows [][]int64) *matrix.Dense[complex128] {
	t.Helper()
	inv, err := ops.IntInverse(matrix.MustFromRows(rows))
	require.NoError(t, err)

	return ops.RatToComplex(inv)
}

func build(t *testing.T, a *matrix.Dense[complex128]) *norm.OperatorNorm {
	t.Helper()
	jf, err := ops.Jordan(a)
	require.NoError(t, err)
	on, err := norm.New(jf)
	require.NoError(t, err)

	return on
}

func TestOperatorNorm_ContractsExpandingInverse(t *testing.T) {
	for _, rows := range [][][]int64{
		{{1, 2}, {3, 1}},
		{{0, -7}, {1, -5}},
		{{2, 1}, {0, 2}},
		{{-1, -1}, {1, -1}},
		{{2, 0, 0}, {1, 2, 0}, {0, 1, 3}},
	} {
		a := inverseC(t, rows)
		on := build(t, a)
		c, err := on.Matrix(a)
		require.NoError(t, err)
		assert.Less(t, c, 1.0, "base %v", rows)
		assert.Greater(t, c, 0.0)
	}
}

func TestOperatorNorm_DefectiveBlock(t *testing.T) {
	// M = [[2,1],[0,2]] has M⁻¹ with a single Jordan block for λ = 1/2: μ = 1/4.
	a := inverseC(t, [][]int64{{2, 1}, {0, 2}})
	on := build(t, a)
	assert.Equal(t, []float64{0.25, 1}, on.Weights())

	c, err := on.Matrix(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, c, 1e-9)
}

func TestOperatorNorm_Vector(t *testing.T) {
	on := build(t, inverseC(t, [][]int64{{1, 2}, {3, 1}}))
	assert.Equal(t, 2, on.Dim())

	zero, err := on.IntVector([]int64{0, 0})
	require.NoError(t, err)
	assert.Zero(t, zero)

	x, err := on.IntVector([]int64{3, -4})
	require.NoError(t, err)
	y, err := on.IntVector([]int64{-6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 2*x, y, 1e-9)
	assert.Greater(t, x, 0.0)

	_, err = on.IntVector([]int64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = on.Matrix(matrix.MustFromRows([][]complex128{{1}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestOperatorNorm_SInverse(t *testing.T) {
	on := build(t, inverseC(t, [][]int64{{0, -7}, {1, -5}}))
	prod, err := matrix.Mul[complex128](ring.Complex128{}, on.S(), on.SInv())
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, real(want), real(prod.Get(i, j)), 1e-9)
			assert.InDelta(t, 0, imag(prod.Get(i, j)), 1e-9)
		}
	}
}

func TestNew_Nil(t *testing.T) {
	_, err := norm.New(nil)
	assert.ErrorIs(t, err, norm.ErrNilJordan)
}

func TestBlockDecay(t *testing.T) {
	assert.InDelta(t, 0.25, norm.BlockDecay(0.5), 1e-15)
	assert.InDelta(t, 0.5, norm.BlockDecay(0), 1e-15)
	assert.Equal(t, 1.0, norm.BlockDecay(1))
	assert.Equal(t, 1.0, norm.BlockDecay(3i))
}
