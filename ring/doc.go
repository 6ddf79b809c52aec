// Package ring defines the exact element abstraction used by every algorithm in gns.
//
// What:
//
//   - Ring[T]      — additive/multiplicative structure, magnitude ordering and conjugation.
//   - Euclidean[T] — a Ring with floor division, non-negative and symmetric remainders
//     and an extended GCD returning Bézout coefficients (Smith normal form, hashing).
//   - Field[T]     — a Ring with division (Gaussian elimination, inverses, null spaces).
//
// Implementations:
//
//   - Int64       Euclidean over int64 (lattice points, Smith form of small bases)
//   - BigInt      Euclidean over *big.Int (arbitrary precision)
//   - Rat         exact Field over *big.Rat (inverse of an integer base, exact determinants)
//   - Float64     approximate Field over float64 with an epsilon for zero tests
//   - Complex128  approximate Field over complex128 (Schur and Jordan forms)
//
// Values handed to and returned from a ring are treated as immutable: pointer based
// rings (BigInt, Rat) always allocate fresh results, so matrices may share elements.
//
// The ring is passed explicitly to generic algorithms, e.g.
//
//	det, err := ops.Determinant(ring.Rat{}, m)
//
// which keeps dispatch static and avoids interface boxing of elements.
package ring
