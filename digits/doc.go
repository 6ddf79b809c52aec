// Package digits constructs digit sets for a radix base: complete residue
// systems of Zⁿ/MZⁿ containing 0.
//
//   - Canonical   one representative U⁻¹·e per Smith hash index.
//   - Symmetric   the lattice points of M·[-½, ½)ⁿ, decided exactly over the rationals.
//   - JSymmetric  per coset the point of least adapted operator norm (ties broken
//     lexicographically), i.e. the digits closest to 0 in the norm under which
//     M⁻¹ contracts.
//
// Validate checks a caller-supplied set with the same rules gns.New applies.
package digits
