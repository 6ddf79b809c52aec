package radix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/radix"
)

func TestNew(t *testing.T) {
	p, err := radix.New(matrix.MustFromRows([][]int64{{1, 2}, {3, 1}}))
	require.NoError(t, err)

	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, int64(-5), p.Det())
	assert.Equal(t, int64(5), p.AbsDet())
	assert.Equal(t, []int64{1, -2, -3, 1}, p.Adjugate().Raw())
	assert.Equal(t, []int64{1, 5}, p.Smith().Invariants())
	assert.Equal(t, "-1/5", p.Inverse().Get(0, 0).RatString())
	assert.InDelta(t, -0.2, real(p.InverseComplex().Get(0, 0)), 1e-15)
	assert.Len(t, p.Eigenvalues(), 2)
	assert.True(t, p.IsExpanding())
	assert.Less(t, p.Contraction(), 1.0)
	assert.Equal(t, 2, p.Norm().Dim())
}

func TestNew_CopiesAreIndependent(t *testing.T) {
	m := matrix.MustFromRows([][]int64{{0, -7}, {1, -5}})
	p, err := radix.New(m)
	require.NoError(t, err)

	m.Put(0, 0, 99)
	b := p.Base()
	assert.Equal(t, int64(0), b.Get(0, 0))
	b.Put(0, 0, 42)
	assert.Equal(t, int64(0), p.Base().Get(0, 0))
	p.Adjugate().Put(0, 0, 42)
	assert.Equal(t, int64(-5), p.Adjugate().Get(0, 0))
}

func TestNew_NotExpanding(t *testing.T) {
	// eigenvalues 1±√2: |1-√2| < 1
	p, err := radix.New(matrix.MustFromRows([][]int64{{2, 1}, {1, 0}}))
	require.NoError(t, err)
	assert.False(t, p.IsExpanding())
	assert.Greater(t, p.Contraction(), 2.0)
	assert.Equal(t, int64(1), p.AbsDet())
}

func TestNew_ZeroDiagonalCompanions(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want float64
	}{
		{"x^3+2", [][]int64{{0, 0, -2}, {1, 0, 0}, {0, 1, 0}}, math.Pow(2, -1.0/3)},
		{"x^3-3", [][]int64{{0, 0, 3}, {1, 0, 0}, {0, 1, 0}}, math.Pow(3, -1.0/3)},
		{"x^4+2", [][]int64{{0, 0, 0, -2}, {1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}, math.Pow(2, -0.25)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := radix.New(matrix.MustFromRows(tc.rows))
			require.NoError(t, err)
			assert.True(t, p.IsExpanding())
			assert.InDelta(t, tc.want, p.Contraction(), 1e-6)
			assert.Len(t, p.Eigenvalues(), len(tc.rows))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := radix.New(nil)
	assert.ErrorIs(t, err, radix.ErrNilBase)

	_, err = radix.New(matrix.MustFromRows([][]int64{{1, 2}, {2, 4}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = radix.New(matrix.MustFromRows([][]int64{{1, 2, 3}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
