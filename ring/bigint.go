package ring

import "math/big"

// BigInt is the Euclidean ring of arbitrary precision integers.
// Every operation allocates its result; inputs are never mutated.
type BigInt struct{}

var _ Euclidean[*big.Int] = BigInt{}

func (BigInt) Zero() *big.Int               { return new(big.Int) }
func (BigInt) One() *big.Int                { return big.NewInt(1) }
func (BigInt) FromInt64(v int64) *big.Int   { return big.NewInt(v) }
func (BigInt) Add(a, b *big.Int) *big.Int   { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int   { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int   { return new(big.Int).Mul(a, b) }
func (BigInt) Neg(a *big.Int) *big.Int      { return new(big.Int).Neg(a) }
func (BigInt) Abs(a *big.Int) *big.Int      { return new(big.Int).Abs(a) }
func (BigInt) Equal(a, b *big.Int) bool     { return a.Cmp(b) == 0 }
func (BigInt) IsZero(a *big.Int) bool       { return a.Sign() == 0 }
func (BigInt) Sign(a *big.Int) int          { return a.Sign() }
func (BigInt) Conj(a *big.Int) *big.Int     { return a }
func (BigInt) Format(a *big.Int) string     { return a.String() }
func (BigInt) AbsLess(a, b *big.Int) bool   { return a.CmpAbs(b) < 0 }
func (BigInt) ExactDiv(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }

// FloorDiv rounds toward negative infinity.
// big.Int.Div is Euclidean, so the truncated quotient is adjusted instead.
func (BigInt) FloorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}

	return q
}

// Mod returns the remainder in [0, |b|).
func (BigInt) Mod(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(a, b)
}

// SymMod returns the remainder in (-|b|/2, |b|/2].
func (BigInt) SymMod(a, b *big.Int) *big.Int {
	m := new(big.Int).Abs(b)
	r := new(big.Int).Mod(a, m)
	twice := new(big.Int).Lsh(r, 1)
	if twice.Cmp(m) > 0 {
		r.Sub(r, m)
	}

	return r
}

// Divides reports a | b.
func (BigInt) Divides(a, b *big.Int) bool {
	if a.Sign() == 0 {
		return b.Sign() == 0
	}

	return new(big.Int).Rem(b, a).Sign() == 0
}

// ExtGCD delegates to big.Int.GCD which accepts operands of any sign.
func (BigInt) ExtGCD(a, b *big.Int) (*big.Int, *big.Int, *big.Int) {
	x, y := new(big.Int), new(big.Int)
	g := new(big.Int).GCD(x, y, a, b)
	if a.Sign() == 0 && b.Sign() == 0 {
		// GCD leaves x = y = 0; keep a*x + b*y = g with a unit coefficient.
		x.SetInt64(1)
	}

	return g, x, y
}
