package ring

import (
	"math"
	"math/cmplx"
	"strconv"
)

// DefaultEpsilon is the zero tolerance of the approximate fields.
const DefaultEpsilon = 1e-12

// Float64 is the approximate real field. Eps is the absolute zero tolerance.
type Float64 struct {
	Eps float64
}

var _ Field[float64] = Float64{}

func (Float64) Zero() float64              { return 0 }
func (Float64) One() float64               { return 1 }
func (Float64) FromInt64(v int64) float64  { return float64(v) }
func (Float64) Add(a, b float64) float64   { return a + b }
func (Float64) Sub(a, b float64) float64   { return a - b }
func (Float64) Mul(a, b float64) float64   { return a * b }
func (Float64) Quo(a, b float64) float64   { return a / b }
func (Float64) Inv(a float64) float64      { return 1 / a }
func (Float64) Neg(a float64) float64      { return -a }
func (Float64) Conj(a float64) float64     { return a }
func (Float64) Magnitude(a float64) float64 { return math.Abs(a) }
func (Float64) AbsLess(a, b float64) bool  { return math.Abs(a) < math.Abs(b) }
func (Float64) Sqrt(a float64) float64     { return math.Sqrt(a) }

func (f Float64) IsZero(a float64) bool   { return math.Abs(a) <= f.Eps }
func (f Float64) Equal(a, b float64) bool { return math.Abs(a-b) <= f.Eps }

// Format prints the shortest representation.
func (Float64) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// Complex128 is the approximate complex field used by the spectral routines.
type Complex128 struct {
	Eps float64
}

var _ Field[complex128] = Complex128{}

func (Complex128) Zero() complex128                { return 0 }
func (Complex128) One() complex128                 { return 1 }
func (Complex128) FromInt64(v int64) complex128    { return complex(float64(v), 0) }
func (Complex128) Add(a, b complex128) complex128  { return a + b }
func (Complex128) Sub(a, b complex128) complex128  { return a - b }
func (Complex128) Mul(a, b complex128) complex128  { return a * b }
func (Complex128) Quo(a, b complex128) complex128  { return a / b }
func (Complex128) Inv(a complex128) complex128     { return 1 / a }
func (Complex128) Neg(a complex128) complex128     { return -a }
func (Complex128) Conj(a complex128) complex128    { return cmplx.Conj(a) }
func (Complex128) Magnitude(a complex128) float64  { return cmplx.Abs(a) }
func (Complex128) AbsLess(a, b complex128) bool    { return cmplx.Abs(a) < cmplx.Abs(b) }
func (Complex128) Sqrt(a complex128) complex128    { return cmplx.Sqrt(a) }

func (c Complex128) IsZero(a complex128) bool   { return cmplx.Abs(a) <= c.Eps }
func (c Complex128) Equal(a, b complex128) bool { return cmplx.Abs(a-b) <= c.Eps }

// Format prints (re+imi) with the shortest representations.
func (Complex128) Format(a complex128) string {
	return strconv.FormatComplex(a, 'g', -1, 128)
}
