package gns

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/radix"
)

func TestCanonicalRotation(t *testing.T) {
	cases := []struct {
		name string
		in   Cycle
		want Cycle
	}{
		{"single", Cycle{{4}}, Cycle{{4}}},
		{"rotate", Cycle{{3}, {1}, {2}}, Cycle{{1}, {2}, {3}}},
		{"already minimal", Cycle{{-1, 0}, {2, 2}}, Cycle{{-1, 0}, {2, 2}}},
		{"second axis", Cycle{{0, 5}, {0, -5}}, Cycle{{0, -5}, {0, 5}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, canonicalRotation(tc.in))
		})
	}
}

func TestCompareCycles(t *testing.T) {
	assert.Negative(t, compareCycles(Cycle{{-1}}, Cycle{{0}}))
	assert.Positive(t, compareCycles(Cycle{{0}, {1}}, Cycle{{0}}))
	assert.Zero(t, compareCycles(Cycle{{2}, {3}}, Cycle{{2}, {3}}))
}

func TestCycles_Metrics(t *testing.T) {
	props, err := radix.New(matrix.MustFromRows([][]int64{{2}}))
	require.NoError(t, err)
	ns, err := New(props, [][]int64{{0}, {1}})
	require.NoError(t, err)

	visited := testutil.ToFloat64(pointsVisited)
	nontrivial := testutil.ToFloat64(cyclesFound.WithLabelValues("nontrivial"))

	cycles, err := ns.Cycles()
	require.NoError(t, err)
	require.Len(t, cycles, 2)

	assert.Greater(t, testutil.ToFloat64(pointsVisited), visited)
	assert.Equal(t, nontrivial+1, testutil.ToFloat64(cyclesFound.WithLabelValues("nontrivial")))
	assert.Positive(t, testutil.ToFloat64(boxVolume))
}
