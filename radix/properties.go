package radix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/matrix/ops"
	"github.com/katalvlaran/gns/norm"
	"github.com/katalvlaran/gns/ring"
)

// Properties is the immutable aggregate of a radix base M and its derived invariants.
type Properties struct {
	base        *matrix.Dense[int64]
	inverse     *matrix.Dense[*big.Rat]
	inverseC    *matrix.Dense[complex128]
	adjugate    *matrix.Dense[int64]
	det         int64
	absDet      int64
	smith       *ops.SmithForm[int64]
	jordan      *ops.JordanForm
	norm        *norm.OperatorNorm
	contraction float64
}

// New computes all invariants of the base m.
//
// Stages:
//   - validate: m square and non-singular (matrix.ErrSingular otherwise);
//   - exact: rational inverse, integer adjugate, determinant, Smith form;
//   - spectral: Jordan form of M⁻¹ (options are passed to ops.Jordan),
//     the adapted operator norm and ‖M⁻¹‖ under it.
func New(m *matrix.Dense[int64], opts ...ops.Option) (*Properties, error) {
	if m == nil {
		return nil, ErrNilBase
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, radixErrorf("validate", err)
	}
	det, err := ops.IntDeterminant(m)
	if err != nil {
		return nil, radixErrorf("determinant", err)
	}
	if det == 0 {
		return nil, radixErrorf("validate", fmt.Errorf("det = 0: %w", matrix.ErrSingular))
	}

	p := &Properties{base: m.Clone(), det: det, absDet: det}
	if det < 0 {
		p.absDet = -det
	}
	if p.inverse, err = ops.IntInverse(m); err != nil {
		return nil, radixErrorf("inverse", err)
	}
	if p.adjugate, err = ops.IntAdjugate(m); err != nil {
		return nil, radixErrorf("adjugate", err)
	}
	if p.smith, err = ops.Smith[int64](ring.Int64{}, m); err != nil {
		return nil, radixErrorf("smith", err)
	}

	p.inverseC = ops.RatToComplex(p.inverse)
	if p.jordan, err = ops.Jordan(p.inverseC, opts...); err != nil {
		return nil, radixErrorf("jordan", err)
	}
	if p.norm, err = norm.New(p.jordan); err != nil {
		return nil, radixErrorf("norm", err)
	}
	if p.contraction, err = p.norm.Matrix(p.inverseC); err != nil {
		return nil, radixErrorf("norm", err)
	}

	return p, nil
}

// Dim is the lattice dimension n.
func (p *Properties) Dim() int { return p.base.Rows() }

// Base returns a copy of M.
func (p *Properties) Base() *matrix.Dense[int64] { return p.base.Clone() }

// Inverse returns a copy of the exact M⁻¹.
func (p *Properties) Inverse() *matrix.Dense[*big.Rat] {
	return matrix.Map(p.inverse, func(v *big.Rat) *big.Rat { return new(big.Rat).Set(v) })
}

// InverseComplex returns a copy of M⁻¹ rounded to complex128.
func (p *Properties) InverseComplex() *matrix.Dense[complex128] { return p.inverseC.Clone() }

// Adjugate returns a copy of adj(M), M·adj(M) = det(M)·I.
func (p *Properties) Adjugate() *matrix.Dense[int64] { return p.adjugate.Clone() }

// Det is det(M).
func (p *Properties) Det() int64 { return p.det }

// AbsDet is |det(M)|, the number of residue classes of Zⁿ/MZⁿ.
func (p *Properties) AbsDet() int64 { return p.absDet }

// Smith returns a copy of the Smith normal form U·M·V = S.
func (p *Properties) Smith() *ops.SmithForm[int64] {
	return &ops.SmithForm[int64]{S: p.smith.S.Clone(), U: p.smith.U.Clone(), V: p.smith.V.Clone()}
}

// Eigenvalues returns the eigenvalues of M⁻¹ in Jordan order.
func (p *Properties) Eigenvalues() []complex128 {
	return append([]complex128(nil), p.jordan.Eigenvalues...)
}

// Norm is the adapted operator norm of M⁻¹ (shared, immutable).
func (p *Properties) Norm() *norm.OperatorNorm { return p.norm }

// Contraction is ‖M⁻¹‖ under Norm.
func (p *Properties) Contraction() float64 { return p.contraction }

// IsExpanding reports ‖M⁻¹‖ < 1, i.e. every eigenvalue of M lies outside the unit disc.
func (p *Properties) IsExpanding() bool { return p.contraction < 1 }
