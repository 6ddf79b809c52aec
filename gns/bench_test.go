package gns_test

import (
	"testing"

	"github.com/katalvlaran/gns/digits"
	"github.com/katalvlaran/gns/gns"
	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/radix"
)

func benchSystem(b *testing.B, rows [][]int64) *gns.NumberSystem {
	b.Helper()
	props, err := radix.New(matrix.MustFromRows(rows))
	if err != nil {
		b.Fatal(err)
	}
	ds, err := digits.Symmetric(props)
	if err != nil {
		b.Fatal(err)
	}
	ns, err := gns.New(props, ds)
	if err != nil {
		b.Fatal(err)
	}

	return ns
}

func BenchmarkPhiInto(b *testing.B) {
	ns := benchSystem(b, [][]int64{{0, -7}, {1, -5}})
	s := ns.NewScratch()
	z := []int64{123456, -98765}
	dst := make([]int64, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ns.PhiInto(z, dst, s)
	}
}

func BenchmarkCycles(b *testing.B) {
	ns := benchSystem(b, [][]int64{{1, 2}, {3, 1}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ns.Cycles(); err != nil {
			b.Fatal(err)
		}
	}
}
