// Package ops provides the exact and spectral factorizations behind gns.
//
// What:
//
//   - Determinant, Inverse, Adjugate — Gaussian elimination with magnitude pivoting
//     over any field; IntDeterminant/IntInverse/IntAdjugate lift an integer matrix
//     into the rationals so the results are exact.
//   - LU        — partial pivoting, PA = LU.
//   - QR        — complex Householder reflections, A = QR with Q unitary.
//   - Hessenberg, Schur — similarity reduction and shifted QR iteration, A = Q T Q*.
//   - Jordan    — eigenvalue clustering, nested null spaces and generalized
//     eigenvector chains, P·A·P⁻¹ = J.
//   - Smith     — unimodular row/column reduction over a Euclidean ring, U·A·V = S.
//   - SolveHomogeneous, Rank — full pivoting elimination.
//
// Why:
//
//   - Smith and Adjugate certify the algebraic structure of a radix base exactly.
//   - Schur and Jordan feed the adapted operator norm under which the inverse
//     of an expanding base is a strict contraction.
//
// Errors:
//
//   - matrix.ErrNonSquare, matrix.ErrNilMatrix  shape violations
//   - matrix.ErrSingular                        no non-zero pivot in Inverse
//   - ErrJordanFailed                           no generalized eigenvector chain found
//
// Complexity: every routine is O(n³) per pass; Schur is O(iterations·n³).
package ops
