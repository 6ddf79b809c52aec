package ops

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gns/matrix"
	"github.com/katalvlaran/gns/ring"
)

// ToRat lifts an integer matrix into the rationals.
func ToRat(m *matrix.Dense[int64]) *matrix.Dense[*big.Rat] {
	return matrix.Map(m, func(v int64) *big.Rat { return new(big.Rat).SetInt64(v) })
}

// ToComplex embeds an integer matrix into complex128.
func ToComplex(m *matrix.Dense[int64]) *matrix.Dense[complex128] {
	return matrix.Map(m, func(v int64) complex128 { return complex(float64(v), 0) })
}

// RatToComplex rounds a rational matrix into complex128.
func RatToComplex(m *matrix.Dense[*big.Rat]) *matrix.Dense[complex128] {
	return matrix.Map(m, func(v *big.Rat) complex128 {
		f, _ := v.Float64()
		return complex(f, 0)
	})
}

// ratToInt64 returns v as int64 when it is an integer within range.
func ratToInt64(v *big.Rat) (int64, error) {
	if !v.IsInt() {
		return 0, fmt.Errorf("%s: %w", v.RatString(), ErrNotIntegral)
	}
	num := v.Num()
	if !num.IsInt64() {
		return 0, fmt.Errorf("%s overflows int64: %w", num.String(), ErrNotIntegral)
	}

	return num.Int64(), nil
}

// IntDeterminant returns det(m) computed exactly over the rationals.
func IntDeterminant(m *matrix.Dense[int64]) (int64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, opsErrorf(opDeterminant, err)
	}
	det, err := Determinant[*big.Rat](ring.Rat{}, ToRat(m))
	if err != nil {
		return 0, err
	}
	d, err := ratToInt64(det)
	if err != nil {
		return 0, opsErrorf(opDeterminant, err)
	}

	return d, nil
}

// IntInverse returns the exact rational inverse of an integer matrix.
func IntInverse(m *matrix.Dense[int64]) (*matrix.Dense[*big.Rat], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	return Inverse[*big.Rat](ring.Rat{}, ToRat(m))
}

// IntAdjugate returns the integer adjugate, m·adj(m) = det(m)·I exactly.
func IntAdjugate(m *matrix.Dense[int64]) (*matrix.Dense[int64], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opsErrorf(opAdjugate, err)
	}
	adj, err := Adjugate[*big.Rat](ring.Rat{}, ToRat(m))
	if err != nil {
		return nil, err
	}
	out, err := matrix.New[int64](adj.Rows(), adj.Cols())
	if err != nil {
		return nil, opsErrorf(opAdjugate, err)
	}
	for i := 0; i < adj.Rows(); i++ {
		for j := 0; j < adj.Cols(); j++ {
			v, err := ratToInt64(adj.Get(i, j))
			if err != nil {
				return nil, opsErrorf(opAdjugate, err)
			}
			out.Put(i, j, v)
		}
	}

	return out, nil
}
