// Package gns is a toolkit for generalized number systems on the integer
// lattice: pick an expanding integer matrix M and a digit set D, and find out
// whether every point of Zⁿ has a finite radix expansion in (M, D).
//
// 🚀 What is in the box?
//
//	An exact, deterministic engine that brings together:
//		• Rings: int64, big.Int, big.Rat, float64 and complex128 behind one interface
//		• Linear algebra: determinant, adjugate, inverse, LU, QR, Hessenberg
//		• Normal forms: Smith (integers), Schur and Jordan (complex)
//		• Radix analysis: contraction of M⁻¹ in an adapted operator norm
//		• Digit sets: canonical, symmetric and norm-minimal (J-symmetric)
//		• Number systems: φ, expansions, orbits, bounding box, exhaustive cycle search
//
// ✨ Why this layout?
//
//   - Exact where it matters: residues, φ and digit membership never touch floats
//   - Fail fast: sentinel errors matched with errors.Is, no panics on user data
//   - Deterministic: fixed loop orders, seeded fallbacks, canonically sorted cycles
//   - Observable: slog logging, Prometheus counters for long searches
//
// Packages:
//
//	ring/        — element arithmetic (Ring, Euclidean, Field)
//	matrix/      — generic dense container, kernels and validators
//	matrix/ops/  — factorizations and normal forms
//	norm/        — operator norm adapted to a Jordan form
//	radix/       — derived properties of a radix base
//	coder/       — box ↔ integer codes and the visited bit vector
//	gns/         — Smith hash, digit table, φ, bounds and cycles
//	digits/      — digit-set constructions
//	cmd/gns/     — command-line driver (classify, hash, expand, orbit, batch)
//
// Quick example, base −1+i written as a 2×2 matrix:
//
//	    M = │ -1  -1 │     D = { (0,0), (1,0) }
//	        │  1  -1 │
//
// is the twin-dragon number system: the only cycle of φ is {0}.
//
//	go install github.com/katalvlaran/gns/cmd/gns@latest
//	gns classify --matrix "-1,-1;1,-1" --digits "0,0;1,0"
package gns
