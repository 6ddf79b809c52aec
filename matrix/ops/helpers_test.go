package ops_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

var (
	zz = ring.Int64{}
	qq = ring.Rat{}
	cc = ring.Complex128{}
)

const residualTol = 1e-9

// mulC multiplies complex matrices and fails the test on a shape error.
func mulC(t *testing.T, ms ...*matrix.Dense[complex128]) *matrix.Dense[complex128] {
	t.Helper()
	out := ms[0]
	for _, m := range ms[1:] {
		var err error
		out, err = matrix.Mul[complex128](cc, out, m)
		require.NoError(t, err)
	}

	return out
}

// maxDiff is the largest entrywise distance between two same-shape matrices.
func maxDiff(a, b *matrix.Dense[complex128]) float64 {
	d := 0.0
	for i, x := range a.Raw() {
		d = math.Max(d, cmplx.Abs(x-b.Raw()[i]))
	}

	return d
}

func conjT(t *testing.T, m *matrix.Dense[complex128]) *matrix.Dense[complex128] {
	t.Helper()
	out, err := matrix.ConjTranspose[complex128](cc, m)
	require.NoError(t, err)

	return out
}

func identityC(t *testing.T, n int) *matrix.Dense[complex128] {
	t.Helper()
	id, err := matrix.Identity[complex128](cc, n)
	require.NoError(t, err)

	return id
}

func complexRows(rows [][]float64) *matrix.Dense[complex128] {
	out := make([][]complex128, len(rows))
	for i, r := range rows {
		out[i] = make([]complex128, len(r))
		for j, v := range r {
			out[i][j] = complex(v, 0)
		}
	}

	return matrix.MustFromRows(out)
}
