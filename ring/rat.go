package ring

import (
	"math/big"
)

// Rat is the exact field of rational numbers.
type Rat struct{}

var _ Field[*big.Rat] = Rat{}

func (Rat) Zero() *big.Rat             { return new(big.Rat) }
func (Rat) One() *big.Rat              { return big.NewRat(1, 1) }
func (Rat) FromInt64(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rat) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }
func (Rat) Inv(a *big.Rat) *big.Rat    { return new(big.Rat).Inv(a) }
func (Rat) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }
func (Rat) Equal(a, b *big.Rat) bool   { return a.Cmp(b) == 0 }
func (Rat) IsZero(a *big.Rat) bool     { return a.Sign() == 0 }
func (Rat) Conj(a *big.Rat) *big.Rat   { return a }
func (Rat) Format(a *big.Rat) string   { return a.RatString() }

// AbsLess compares magnitudes.
func (Rat) AbsLess(a, b *big.Rat) bool {
	return new(big.Rat).Abs(a).Cmp(new(big.Rat).Abs(b)) < 0
}

// Magnitude returns |a| rounded to the nearest float64.
func (Rat) Magnitude(a *big.Rat) float64 {
	f, _ := new(big.Rat).Abs(a).Float64()

	return f
}
