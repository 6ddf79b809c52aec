package ops

import (
	"errors"
	"fmt"
)

var (
	// ErrJordanFailed is returned when the nested null spaces of (A-λI)^k cannot be
	// turned into a full set of generalized eigenvector chains under the tolerance.
	ErrJordanFailed = errors.New("ops: jordan form construction failed")

	// ErrEigenFailed is returned when the Schur iteration produced non-finite values
	// or forced deflations that do not reproduce the input.
	ErrEigenFailed = errors.New("ops: eigenvalue iteration failed")

	// ErrNotIntegral reports that an exact rational result was expected to be an integer
	// (or does not fit into int64).
	ErrNotIntegral = errors.New("ops: result is not integral")
)

// Operation tags for uniform error wrapping.
const (
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opAdjugate    = "Adjugate"
	opLU          = "LU"
	opQR          = "QR"
	opHessenberg  = "Hessenberg"
	opSchur       = "Schur"
	opJordan      = "Jordan"
	opSmith       = "Smith"
	opNullSpace   = "SolveHomogeneous"
)

// opsErrorf wraps err with an operation tag. Use only when err != nil.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
