// SPDX-License-Identifier: MIT
// Package: gns
//
// Purpose:
//  - Enumerate every cycle of φ inside the bounding box of Bounds.
//  - Mark each lattice point once (BitVector over VectorCoder codes), so the
//    search is linear in the box volume.
//
// Determinism & Performance:
//  - Codes are scanned in increasing order; cycles are rotated to start at
//    their lexicographically smallest point and sorted, so output is stable.
//  - A path that leaves the box is abandoned; it cannot belong to a cycle.

package gns

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/gns/coder"
)

// Cycle is a closed orbit of φ: φ(c[i]) = c[(i+1) mod len(c)], stored without repetition.
type Cycle [][]int64

// IsZero reports whether c is the fixed point 0.
func (c Cycle) IsZero() bool { return len(c) == 1 && isZero(c[0]) }

// Cycles returns every cycle of φ, canonically rotated and sorted.
// An empty result is impossible when 0 is a digit: {0} is always reported.
//
// Errors: ErrNotExpanding, ErrVolumeTooLarge (see WithMaxVolume), context errors.
func (ns *NumberSystem) Cycles() ([]Cycle, error) {
	res, err := ns.timedSearch()
	if err != nil {
		return nil, gnsErrorf(opCycles, err)
	}

	return res.cycles, nil
}

// cycleSearch is the outcome of one search: the box it scanned and the cycles found.
// lower and upper are nil when Bounds failed; volume is zero when the box has no VectorCoder.
type cycleSearch struct {
	lower, upper []int64
	volume       uint64
	cycles       []Cycle
}

// timedSearch runs searchCycles and records its duration by outcome.
func (ns *NumberSystem) timedSearch() (*cycleSearch, error) {
	start := time.Now()
	res, err := ns.searchCycles()
	status := "ok"
	switch {
	case err == nil:
	case ns.opts.ctx.Err() != nil && errors.Is(err, ns.opts.ctx.Err()):
		status = "canceled"
	default:
		status = "error"
	}
	searchDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	return res, err
}

// searchCycles runs the marking walk. The returned cycleSearch carries the box
// even when the walk itself fails.
//
// Stages:
//   - box: Bounds → VectorCoder; the volume must not exceed maxVolume.
//   - walk: from every unmarked code follow φ, marking codes and recording the
//     path, until φ leaves the box (abandon) or reaches a marked code. A marked
//     code inside the current path closes a new cycle path[p:].
//   - canonicalize: minimal rotation per cycle, then sort.
func (ns *NumberSystem) searchCycles() (*cycleSearch, error) {
	log := ns.opts.logger
	res := &cycleSearch{}
	lower, upper, err := ns.Bounds()
	if err != nil {
		return res, err
	}
	res.lower, res.upper = lower, upper
	vc, err := coder.NewVectorCoder(lower, upper)
	if err != nil {
		if errors.Is(err, coder.ErrVolumeOverflow) {
			return res, fmt.Errorf("box %v..%v: %w", lower, upper, ErrVolumeTooLarge)
		}
		return res, err
	}
	size := vc.Size()
	res.volume = size
	boxVolume.Set(float64(size))
	if size > ns.opts.maxVolume {
		return res, fmt.Errorf("volume %d > %d: %w", size, ns.opts.maxVolume, ErrVolumeTooLarge)
	}
	log.Info("cycle search started", "lower", lower, "upper", upper, "volume", size)

	visited := coder.NewBitVector(size)
	s := ns.NewScratch()
	z := make([]int64, ns.n)
	next := make([]int64, ns.n)
	var (
		cycles    []Cycle
		path      []uint64
		marked    uint64
		abandoned uint64
		from      uint64
	)
	for {
		code, ok := visited.NextClear(from)
		if !ok {
			break
		}
		from = code
		path = path[:0]
		for {
			visited.Set(code)
			path = append(path, code)
			marked++
			if marked%ns.opts.progressEvery == 0 {
				if err = ns.opts.ctx.Err(); err != nil {
					pointsVisited.Add(float64(marked))
					return res, err
				}
				log.Debug("cycle search progress", "marked", marked, "volume", size, "cycles", len(cycles))
			}

			vc.Decode(code, z)
			ns.PhiInto(z, next, s)
			nc, inside := vc.Encode(next)
			if !inside {
				abandoned++
				break
			}
			if !visited.Test(nc) {
				code = nc
				continue
			}
			for p := len(path) - 1; p >= 0; p-- {
				if path[p] == nc {
					cycles = append(cycles, decodeCycle(vc, path[p:]))
					break
				}
			}
			break
		}
	}

	pointsVisited.Add(float64(marked))
	pathsAbandoned.Add(float64(abandoned))
	for i, c := range cycles {
		cycles[i] = canonicalRotation(c)
		if cycles[i].IsZero() {
			cyclesFound.WithLabelValues("zero").Inc()
		} else {
			cyclesFound.WithLabelValues("nontrivial").Inc()
		}
	}
	slices.SortFunc(cycles, compareCycles)
	log.Info("cycle search finished", "volume", size, "abandoned", abandoned, "cycles", len(cycles))
	res.cycles = cycles

	return res, nil
}

// IsCycle reports whether c is closed under φ and free of repeated points.
func (ns *NumberSystem) IsCycle(c Cycle) bool {
	if len(c) == 0 {
		return false
	}
	s := ns.NewScratch()
	next := make([]int64, ns.n)
	for i, z := range c {
		if len(z) != ns.n || indexOf(c[:i], z) >= 0 || ns.checkPoint(z) != nil {
			return false
		}
		ns.PhiInto(z, next, s)
		if !equalVec(next, c[(i+1)%len(c)]) {
			return false
		}
	}

	return true
}

func decodeCycle(vc *coder.VectorCoder, codes []uint64) Cycle {
	c := make(Cycle, len(codes))
	for i, code := range codes {
		c[i] = make([]int64, vc.Dim())
		vc.Decode(code, c[i])
	}

	return c
}

// compareVec orders vectors lexicographically.
func compareVec(a, b []int64) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return len(a) - len(b)
}

// compareCycles orders canonical cycles by first point, then length.
func compareCycles(a, b Cycle) int {
	if c := compareVec(a[0], b[0]); c != 0 {
		return c
	}

	return len(a) - len(b)
}

// canonicalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of c.
func canonicalRotation(c Cycle) Cycle {
	n := len(c)
	doubled := make(Cycle, 0, 2*n)
	doubled = append(append(doubled, c...), c...)
	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && compareVec(doubled[j], doubled[k+i+1]) != 0 {
			if compareVec(doubled[j], doubled[k+i+1]) < 0 {
				k = j - i - 1
			}
			i = f[i]
		}
		if compareVec(doubled[j], doubled[k+i+1]) != 0 { // i == -1
			if compareVec(doubled[j], doubled[k]) < 0 {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append(Cycle(nil), doubled[k:k+n]...)
}
