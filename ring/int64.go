package ring

import "strconv"

// Int64 is the Euclidean ring of machine integers.
// Overflow is not detected; callers keep entries within range.
type Int64 struct{}

var _ Euclidean[int64] = Int64{}

func (Int64) Zero() int64              { return 0 }
func (Int64) One() int64               { return 1 }
func (Int64) FromInt64(v int64) int64  { return v }
func (Int64) Add(a, b int64) int64     { return a + b }
func (Int64) Sub(a, b int64) int64     { return a - b }
func (Int64) Mul(a, b int64) int64     { return a * b }
func (Int64) Neg(a int64) int64        { return -a }
func (Int64) Equal(a, b int64) bool    { return a == b }
func (Int64) IsZero(a int64) bool      { return a == 0 }
func (Int64) Conj(a int64) int64       { return a }
func (Int64) Format(a int64) string    { return strconv.FormatInt(a, 10) }
func (Int64) AbsLess(a, b int64) bool  { return abs64(a) < abs64(b) }
func (Int64) Abs(a int64) int64        { return abs64(a) }
func (Int64) ExactDiv(a, b int64) int64 { return a / b }

// Sign returns -1, 0 or +1.
func (Int64) Sign(a int64) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}

	return 0
}

// FloorDiv rounds the quotient toward negative infinity.
func (Int64) FloorDiv(a, b int64) int64 {
	return FloorDiv64(a, b)
}

// Mod returns the remainder in [0, |b|).
func (Int64) Mod(a, b int64) int64 {
	return Mod64(a, b)
}

// SymMod returns the remainder in (-|b|/2, |b|/2].
func (Int64) SymMod(a, b int64) int64 {
	m := abs64(b)
	r := Mod64(a, m)
	if 2*r > m {
		r -= m
	}

	return r
}

// Divides reports a | b.
func (Int64) Divides(a, b int64) bool {
	if a == 0 {
		return b == 0
	}

	return b%a == 0
}

// ExtGCD runs the iterative extended Euclid algorithm.
// The invariant a*s + b*t = r holds for every remainder r of the sequence.
func (Int64) ExtGCD(a, b int64) (int64, int64, int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}

	return oldR, oldS, oldT
}

// FloorDiv64 is ⌊a/b⌋ for machine integers.
func FloorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// Mod64 is the non-negative remainder of a modulo |b|.
// Hot path of the Smith hash; kept free of interface dispatch.
func Mod64(a, b int64) int64 {
	r := a % b
	if r < 0 {
		r += abs64(b)
	}

	return r
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}

	return a
}
