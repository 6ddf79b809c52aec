package gns_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gns/digits"
	"github.com/katalvlaran/gns/gns"
	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/matrix/ops"
	"github.com/katalvlaran/gns/radix"
	"github.com/katalvlaran/gns/ring"
)

var (
	spanBase     = [][]int64{{1, 2}, {3, 1}}
	spanDigits   = [][]int64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	companion    = [][]int64{{0, -7}, {1, -5}}
	twindragon   = [][]int64{{-1, -1}, {1, -1}}
	binaryDigits = [][]int64{{0}, {1}}
)

func props(t *testing.T, rows [][]int64) *radix.Properties {
	t.Helper()
	p, err := radix.New(matrix.MustFromRows(rows))
	require.NoError(t, err)

	return p
}

func system(t *testing.T, rows, ds [][]int64, opts ...gns.Option) *gns.NumberSystem {
	t.Helper()
	ns, err := gns.New(props(t, rows), ds, opts...)
	require.NoError(t, err)

	return ns
}

func TestSmithHash_Bijective(t *testing.T) {
	p := props(t, spanBase)
	h, err := gns.NewSmithHash(p.Smith())
	require.NoError(t, err)
	assert.Equal(t, int64(5), h.Size())
	assert.Equal(t, []int64{5}, h.Moduli())

	got := make(map[int64]bool)
	for _, d := range spanDigits {
		v := h.Hash(d)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(5))
		got[v] = true
	}
	assert.Len(t, got, 5)
}

func TestSmithHash_ConstantOnCosets(t *testing.T) {
	m := matrix.MustFromRows([][]int64{{2, 4, 4}, {-6, 6, 12}, {10, -4, -16}})
	sf, err := ops.Smith[int64](ring.Int64{}, m)
	require.NoError(t, err)
	h, err := gns.NewSmithHash(sf)
	require.NoError(t, err)
	assert.Equal(t, int64(144), h.Size())

	cache := make([]int64, 3)
	for _, z := range [][]int64{{0, 0, 0}, {1, -2, 3}, {-7, 5, 11}} {
		for j := 0; j < 3; j++ {
			shifted := []int64{z[0] + m.Get(0, j), z[1] + m.Get(1, j), z[2] + m.Get(2, j)}
			assert.Equal(t, h.Hash(z), h.HashCached(shifted, cache), "z=%v column %d", z, j)
		}
	}
	for idx := int64(0); idx < h.Size(); idx++ {
		r, err := h.Representative(idx)
		require.NoError(t, err)
		assert.Equal(t, idx, h.Hash(r))
	}
	_, err = h.Representative(h.Size())
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNew_RejectsBadDigitSets(t *testing.T) {
	p := props(t, spanBase)
	_, err := gns.New(p, spanDigits[:4])
	assert.ErrorIs(t, err, gns.ErrDigitSetSize)

	_, err = gns.New(p, [][]int64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {5, 0}})
	assert.ErrorIs(t, err, gns.ErrDigitSetNotComplete)

	_, err = gns.New(nil, spanDigits)
	assert.ErrorIs(t, err, gns.ErrNilProperties)
}

func TestPhi_Exact(t *testing.T) {
	ns := system(t, spanBase, spanDigits)
	m := ns.Properties().Base()

	zero, err := ns.Phi([]int64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, zero)

	s := ns.NewScratch()
	next := make([]int64, 2)
	for x := int64(-6); x <= 6; x++ {
		for y := int64(-6); y <= 6; y++ {
			z := []int64{x, y}
			h := ns.PhiInto(z, next, s)
			d := ns.Table().Digit(h)
			// z = M·φ(z) + d
			back := []int64{
				m.Get(0, 0)*next[0] + m.Get(0, 1)*next[1] + d[0],
				m.Get(1, 0)*next[0] + m.Get(1, 1)*next[1] + d[1],
			}
			assert.Equal(t, z, back)
		}
	}

	_, err = ns.Phi([]int64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCycles_SpanScenario(t *testing.T) {
	ns := system(t, spanBase, spanDigits)
	cycles, err := ns.Cycles()
	require.NoError(t, err)
	require.NotEmpty(t, cycles)

	hasZero := false
	seen := make(map[[2]int64]bool)
	for _, c := range cycles {
		assert.True(t, ns.IsCycle(c), "cycle %v", c)
		if c.IsZero() {
			hasZero = true
		}
		for _, z := range c {
			key := [2]int64{z[0], z[1]}
			assert.False(t, seen[key], "point %v in two cycles", z)
			seen[key] = true
		}
	}
	assert.True(t, hasZero)

	// coverage: every point of the box either reaches 0 or falls into a reported cycle
	lower, upper, err := ns.Bounds()
	require.NoError(t, err)
	for x := lower[0]; x <= upper[0]; x++ {
		for y := lower[1]; y <= upper[1]; y++ {
			orbit, err := ns.Orbit([]int64{x, y})
			require.NoError(t, err)
			if len(orbit) == 0 {
				continue
			}
			last, err := ns.Phi(orbit[len(orbit)-1])
			require.NoError(t, err)
			if last[0] == 0 && last[1] == 0 {
				continue
			}
			assert.True(t, seen[[2]int64{last[0], last[1]}], "orbit of (%d,%d) closes at %v outside every cycle", x, y, last)
		}
	}
}

func TestCycles_CompanionScenario(t *testing.T) {
	p := props(t, companion)
	ds, err := digits.JSymmetric(p)
	require.NoError(t, err)
	require.Len(t, ds, 7)

	ns, err := gns.New(p, ds)
	require.NoError(t, err)
	cycles, err := ns.Cycles()
	require.NoError(t, err)

	hasZero := false
	for _, c := range cycles {
		assert.True(t, ns.IsCycle(c))
		hasZero = hasZero || c.IsZero()
	}
	assert.True(t, hasZero)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		base   [][]int64
		digits [][]int64
		gns    bool
		cycles int
	}{
		{"twindragon", twindragon, [][]int64{{0, 0}, {1, 0}}, true, 1},
		{"negabinary", [][]int64{{-2}}, binaryDigits, true, 1},
		{"binary", [][]int64{{2}}, binaryDigits, false, 2},
		{"zero missing", [][]int64{{-2}}, [][]int64{{2}, {1}}, false, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := system(t, tc.base, tc.digits).Classify()
			require.NoError(t, err)
			assert.Equal(t, tc.gns, r.IsNumberSystem)
			assert.Len(t, r.Cycles, tc.cycles)
			assert.Positive(t, r.Volume)
			assert.Less(t, r.Contraction, 1.0)
		})
	}
}

func TestClassify_ComputesBoxOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ns := system(t, spanBase, spanDigits, gns.WithLogger(logger))

	r, err := ns.Classify()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "bounding box computed"))

	lower, upper, err := ns.Bounds()
	require.NoError(t, err)
	assert.Equal(t, lower, r.Lower)
	assert.Equal(t, upper, r.Upper)
	volume := uint64(1)
	for i := range lower {
		volume *= uint64(upper[i] - lower[i] + 1)
	}
	assert.Equal(t, volume, r.Volume)
}

func TestClassify_PartialReport(t *testing.T) {
	r, err := system(t, spanBase, spanDigits, gns.WithMaxVolume(1)).Classify()
	assert.ErrorIs(t, err, gns.ErrVolumeTooLarge)
	require.NotNil(t, r)
	assert.Len(t, r.Lower, 2)
	assert.Greater(t, r.Volume, uint64(1))
	assert.Empty(t, r.Cycles)

	p := props(t, [][]int64{{2, 1}, {1, 0}})
	ns, err := gns.New(p, [][]int64{{0, 0}})
	require.NoError(t, err)
	r, err = ns.Classify()
	assert.ErrorIs(t, err, gns.ErrNotExpanding)
	assert.Nil(t, r)
}

func TestPointLimit(t *testing.T) {
	ns := system(t, [][]int64{{2}}, binaryDigits)
	limit := ns.PointLimit()
	assert.Equal(t, int64(math.MaxInt64-1), limit)

	got, err := ns.Phi([]int64{limit})
	require.NoError(t, err)
	assert.Equal(t, []int64{(limit - limit%2) / 2}, got)
	got, err = ns.Phi([]int64{-limit})
	require.NoError(t, err)
	assert.Equal(t, []int64{-limit / 2}, got)

	_, err = ns.Phi([]int64{math.MaxInt64})
	assert.ErrorIs(t, err, gns.ErrPointTooLarge)
	_, err = ns.Orbit([]int64{math.MinInt64})
	assert.ErrorIs(t, err, gns.ErrPointTooLarge)
	_, err = ns.Expansion([]int64{math.MaxInt64})
	assert.ErrorIs(t, err, gns.ErrPointTooLarge)
	assert.False(t, ns.IsCycle(gns.Cycle{{math.MaxInt64}}))

	// adj(M) has entries up to 3 in dimension 2, digits up to 4.
	span := system(t, spanBase, spanDigits)
	assert.LessOrEqual(t, span.PointLimit(), int64(math.MaxInt64/6-4))
	_, err = span.Phi([]int64{span.PointLimit() + 1, 0})
	assert.ErrorIs(t, err, gns.ErrPointTooLarge)
	lower, upper, err := span.Bounds()
	require.NoError(t, err)
	for i := range lower {
		assert.GreaterOrEqual(t, lower[i], -span.PointLimit())
		assert.LessOrEqual(t, upper[i], span.PointLimit())
	}
}

func TestClassify_BinaryCycles(t *testing.T) {
	r, err := system(t, [][]int64{{2}}, binaryDigits).Classify()
	require.NoError(t, err)
	require.Len(t, r.Cycles, 2)
	assert.Equal(t, gns.Cycle{{-1}}, r.Cycles[0])
	assert.Equal(t, gns.Cycle{{0}}, r.Cycles[1])
	assert.Equal(t, []gns.Cycle{{{-1}}}, r.NonTrivial())
	assert.True(t, r.ZeroIsDigit)
}

func TestExpansion(t *testing.T) {
	ns := system(t, twindragon, [][]int64{{0, 0}, {1, 0}})
	for _, z := range [][]int64{{0, 0}, {1, 0}, {0, 1}, {-3, 2}, {5, -7}, {13, 11}} {
		ds, err := ns.Expansion(z)
		require.NoError(t, err)
		back, err := ns.Recompose(ds)
		require.NoError(t, err)
		assert.Equal(t, z, back)
	}

	empty, err := ns.Expansion([]int64{0, 0})
	require.NoError(t, err)
	assert.Empty(t, empty)

	nb := system(t, [][]int64{{-2}}, binaryDigits)
	ds, err := nb.Expansion([]int64{3})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1}, {1}, {1}}, ds)
}

func TestExpansionLimit(t *testing.T) {
	ns := system(t, [][]int64{{2}}, binaryDigits)
	_, err := ns.ExpansionLimit([]int64{-1}, 50)
	assert.ErrorIs(t, err, gns.ErrNoExpansion)

	_, err = system(t, [][]int64{{2}}, binaryDigits, gns.WithMaxOrbit(10)).Expansion([]int64{-5})
	assert.ErrorIs(t, err, gns.ErrNoExpansion)

	ds, err := ns.ExpansionLimit([]int64{6}, 50)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0}, {1}, {1}}, ds)
}

func TestOrbit(t *testing.T) {
	ns := system(t, [][]int64{{2}}, binaryDigits)
	orbit, err := ns.Orbit([]int64{-3})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-3}, {-2}, {-1}}, orbit)

	orbit, err = ns.Orbit([]int64{6})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{6}, {3}, {1}}, orbit)

	orbit, err = ns.Orbit([]int64{0})
	require.NoError(t, err)
	assert.Empty(t, orbit)
}

func TestBounds(t *testing.T) {
	lower, upper, err := system(t, [][]int64{{2}}, binaryDigits).Bounds()
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.LessOrEqual(t, lower[0], int64(-1))
	assert.GreaterOrEqual(t, upper[0], int64(0))
	assert.GreaterOrEqual(t, lower[0], int64(-3))
	assert.LessOrEqual(t, upper[0], int64(2))

	p := props(t, [][]int64{{2, 1}, {1, 0}})
	ns, err := gns.New(p, [][]int64{{0, 0}})
	require.NoError(t, err)
	_, _, err = ns.Bounds()
	assert.ErrorIs(t, err, gns.ErrNotExpanding)
	_, err = ns.Cycles()
	assert.ErrorIs(t, err, gns.ErrNotExpanding)
}

func TestCycles_Limits(t *testing.T) {
	_, err := system(t, spanBase, spanDigits, gns.WithMaxVolume(1)).Cycles()
	assert.ErrorIs(t, err, gns.ErrVolumeTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = system(t, spanBase, spanDigits, gns.WithContext(ctx), gns.WithProgressEvery(1)).Cycles()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCycles_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := system(t, spanBase, spanDigits, gns.WithLogger(logger), gns.WithProgressEvery(2)).Cycles()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "cycle search started")
	assert.Contains(t, buf.String(), "cycle search progress")
	assert.Contains(t, buf.String(), "cycle search finished")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { gns.WithEpsilon(0) })
	assert.Panics(t, func() { gns.WithEpsilon(1) })
	assert.Panics(t, func() { gns.WithMaxVolume(0) })
	assert.Panics(t, func() { gns.WithProgressEvery(0) })
	assert.Panics(t, func() { gns.WithMaxOrbit(0) })
}
