package ring

// Ring is the minimal algebra every matrix kernel needs.
// Implementations must be stateless or immutable so a single value can be shared.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt64 embeds an integer.
	FromInt64(v int64) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Neg(a T) T

	// Equal reports a == b (within tolerance for approximate rings).
	Equal(a, b T) bool
	// IsZero reports a == 0 (within tolerance for approximate rings).
	IsZero(a T) bool
	// AbsLess reports |a| < |b|; used for pivot selection.
	AbsLess(a, b T) bool
	// Conj returns the complex conjugate (identity for real rings).
	Conj(a T) T

	// Format renders a for diagnostics.
	Format(a T) string
}

// Euclidean is a Ring with division with remainder.
type Euclidean[T any] interface {
	Ring[T]

	// Sign returns -1, 0 or +1.
	Sign(a T) int
	// Abs returns |a|.
	Abs(a T) T
	// FloorDiv returns ⌊a/b⌋. b must be non-zero.
	FloorDiv(a, b T) T
	// Mod returns the non-negative remainder r, 0 <= r < |b|, a ≡ r (mod b).
	Mod(a, b T) T
	// SymMod returns the remainder in (-|b|/2, |b|/2].
	SymMod(a, b T) T
	// Divides reports whether a | b. Zero divides only zero.
	Divides(a, b T) bool
	// ExactDiv returns a/b when b | a.
	ExactDiv(a, b T) T
	// ExtGCD returns g = gcd(a,b) >= 0 and Bézout coefficients with a*x + b*y = g.
	ExtGCD(a, b T) (g, x, y T)
}

// Field is a Ring with multiplicative inverses of non-zero elements.
type Field[T any] interface {
	Ring[T]

	// Quo returns a/b. b must be non-zero.
	Quo(a, b T) T
	// Inv returns 1/a. a must be non-zero.
	Inv(a T) T
	// Magnitude returns |a| as float64 for tolerance scaled decisions.
	Magnitude(a T) float64
}

// Pow returns a^k for k >= 0 by binary exponentiation.
func Pow[T any](r Ring[T], a T, k int) T {
	result := r.One()
	base := a
	for k > 0 {
		if k&1 == 1 {
			result = r.Mul(result, base)
		}
		base = r.Mul(base, base)
		k >>= 1
	}

	return result
}
