// Package gns implements generalized number systems over the integer lattice.
//
// A radix base M (see package radix) and a digit set D with one vector per
// residue class of Zⁿ/MZⁿ define the digit-stripping map
//
//	φ(z) = adj(M)·(z - d(z)) / det(M),   d(z) ∈ D, d(z) ≡ z (mod MZⁿ).
//
// The package provides:
//
//   - SmithHash  a perfect hash Zⁿ → {0,…,|det M|-1} constant on cosets of MZⁿ,
//     built from the Smith normal form of M;
//   - HashTable  the digit set indexed by that hash, validated to be a complete
//     residue system;
//   - NumberSystem  φ, radix expansions, orbits, the bounding box that contains
//     every cycle of φ, and the exhaustive cycle search over that box.
//
// (M, D) is a number system exactly when the only cycle of φ is the fixed point 0.
//
// Cycle search is single threaded; cancellation and progress logging are
// configured with WithContext, WithLogger and WithProgressEvery. Search
// statistics are exported as Prometheus collectors (namespace "gns").
package gns
