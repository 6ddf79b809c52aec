// Package matrix is the generic dense container underneath the gns linear algebra.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major, shape-immutable container over any element type,
//     with bounds-checked At/Set and unchecked Get/Put for validated kernels.
//   - Ring-parametrised kernels: Add, Sub, Mul, MatVec, Transpose, ConjTranspose,
//     Scale, Power, Equal, IsDiagonal, Map.
//   - Validators shared with matrix/ops: ValidateNotNil, ValidateSquare,
//     ValidateSameShape, ValidateMulCompatible, ValidateVecLen.
//
// Factorizations (determinant, inverse, Smith, Schur, Jordan, ...) live in matrix/ops.
//
// Example:
//
//	m := matrix.MustFromRows([][]int64{{1, 2}, {3, 1}})
//	sq, _ := matrix.Mul[int64](ring.Int64{}, m, m)
package matrix
