package length

import (
	"fmt"
	"math"
)

// Ratio is an exact rational number used to express the scale of a unit and
// the conversion factor between two units. It exists so that chained unit
// definitions (a foot is twelve inches, an inch is 2.54 centimetres, ...)
// compose without floating-point error; rounding happens only once, when a
// magnitude is finally rescaled by Convert.
//
// A Ratio is always kept in lowest terms with a positive denominator. The zero
// Ratio is not valid; use NewRatio. Arithmetic on it panics.
type Ratio struct {
	num, den int64
}

// NewRatio returns the ratio num/den in lowest terms.
//
// NewRatio panics if den is zero or if either argument is math.MinInt64, whose
// magnitude cannot be represented as an int64.
func NewRatio(num, den int64) Ratio {
	if den == 0 {
		panic("length: zero denominator")
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		panic("length: ratio term out of range")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	return Ratio{num: num / g, den: den / g}
}

// Num returns the numerator of r in lowest terms.
func (r Ratio) Num() int64 { return r.num }

// Den returns the (positive) denominator of r in lowest terms.
func (r Ratio) Den() int64 { return r.den }

// Mul returns the exact product r*o.
//
// Both operands are cross-reduced before multiplying so that intermediate
// products stay as small as the result allows. Mul panics if the reduced
// product still overflows int64.
func (r Ratio) Mul(o Ratio) Ratio {
	r.mustBeValid()
	o.mustBeValid()
	g1 := gcd(r.num, o.den)
	g2 := gcd(o.num, r.den)
	return NewRatio(
		mulInt64(r.num/g1, o.num/g2),
		mulInt64(r.den/g2, o.den/g1),
	)
}

// Div returns the exact quotient r/o. It panics if o is zero.
func (r Ratio) Div(o Ratio) Ratio {
	return r.Mul(o.Inv())
}

// Inv returns 1/r. It panics if r is zero.
func (r Ratio) Inv() Ratio {
	r.mustBeValid()
	if r.num == 0 {
		panic("length: division by zero ratio")
	}
	return NewRatio(r.den, r.num)
}

// Equal reports whether r and o denote the same rational number.
func (r Ratio) Equal(o Ratio) bool {
	// Both sides are normalised, so structural equality is numeric equality.
	return r == o
}

// IsOne reports whether r is exactly 1.
func (r Ratio) IsOne() bool { return r.num == 1 && r.den == 1 }

// Float64 returns the nearest float64 to num/den.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// mustBeValid panics if r was not created by NewRatio or by arithmetic on
// valid ratios.
func (r Ratio) mustBeValid() {
	if r.den == 0 {
		panic("length: uninitialised Ratio; use NewRatio")
	}
}

// gcd returns the greatest common divisor of |a| and |b|. It returns b's
// magnitude when a is zero, so it is never zero while one argument is a
// normalised denominator.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mulInt64 multiplies a and b, panicking instead of wrapping around on
// overflow.
func mulInt64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(fmt.Sprintf("length: ratio overflow multiplying %d by %d", a, b))
	}
	return c
}
