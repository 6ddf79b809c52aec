package digits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/digits"
	"github.com/katalvlaran/gns/gns"
	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/radix"
)

func props(t *testing.T, rows [][]int64) *radix.Properties {
	t.Helper()
	p, err := radix.New(matrix.MustFromRows(rows))
	require.NoError(t, err)

	return p
}

var bases = [][][]int64{
	{{1, 2}, {3, 1}},
	{{0, -7}, {1, -5}},
	{{-1, -1}, {1, -1}},
	{{2, 0}, {0, 2}},
	{{3}},
	{{2, 1, 0}, {0, 2, 1}, {1, 0, 2}},
}

func TestBuild_CompleteResidueSystems(t *testing.T) {
	for _, kind := range []digits.Kind{digits.KindCanonical, digits.KindSymmetric, digits.KindJSymmetric} {
		for _, rows := range bases {
			p := props(t, rows)
			ds, err := digits.Build(kind, p)
			require.NoError(t, err, "%s %v", kind, rows)
			assert.Len(t, ds, int(p.AbsDet()))
			assert.NoError(t, digits.Validate(p, ds), "%s %v", kind, rows)
			assert.Contains(t, ds, make([]int64, p.Dim()), "%s %v: zero digit", kind, rows)
		}
	}
}

func TestSymmetric_Exact(t *testing.T) {
	ds, err := digits.Symmetric(props(t, [][]int64{{2, 0}, {0, 2}}))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-1, -1}, {-1, 0}, {0, -1}, {0, 0}}, ds)

	ds, err = digits.Symmetric(props(t, [][]int64{{3}}))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-1}, {0}, {1}}, ds)
}

func TestJSymmetric_CompanionScenario(t *testing.T) {
	p := props(t, [][]int64{{0, -7}, {1, -5}})
	ds, err := digits.JSymmetric(p)
	require.NoError(t, err)
	require.Len(t, ds, 7)

	hash, err := gns.NewSmithHash(p.Smith())
	require.NoError(t, err)
	seen := make(map[int64]bool)
	for _, d := range ds {
		seen[hash.Hash(d)] = true
	}
	assert.Len(t, seen, 7)

	// no digit is beaten by a neighbour in its own coset
	m := p.Base()
	for _, d := range ds {
		v, err := p.Norm().IntVector(d)
		require.NoError(t, err)
		for j := 0; j < 2; j++ {
			for _, sign := range []int64{-1, 1} {
				other := []int64{d[0] + sign*m.Get(0, j), d[1] + sign*m.Get(1, j)}
				w, err := p.Norm().IntVector(other)
				require.NoError(t, err)
				assert.LessOrEqual(t, v, w+1e-9, "digit %v vs %v", d, other)
			}
		}
	}
}

func TestValidate_Rejects(t *testing.T) {
	p := props(t, [][]int64{{1, 2}, {3, 1}})
	err := digits.Validate(p, [][]int64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {5, 0}})
	assert.ErrorIs(t, err, gns.ErrDigitSetNotComplete)

	err = digits.Validate(p, [][]int64{{0, 0}, {1, 0}})
	assert.ErrorIs(t, err, gns.ErrDigitSetSize)

	err = digits.Validate(p, [][]int64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.ErrorIs(t, digits.Validate(nil, nil), digits.ErrNilProperties)
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := digits.Build("dense", props(t, [][]int64{{3}}))
	assert.ErrorIs(t, err, digits.ErrUnknownKind)
	assert.Contains(t, err.Error(), `"dense"`)

	_, err = digits.Build("", props(t, [][]int64{{3}}))
	assert.ErrorIs(t, err, digits.ErrUnknownKind)
}
