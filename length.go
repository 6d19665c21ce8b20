package length

import "fmt"

// Length is a magnitude measured in the unit U.
//
// Length is an immutable value: every operation returns a new Length and
// leaves its operands untouched. The zero value is a length of 0 in unit U.
//
// The magnitude is not validated; NaN and infinities pass through and
// propagate according to IEEE-754 arithmetic.
type Length[U Unit] struct {
	value float64
}

// New returns a Length of v in unit U.
func New[U Unit](v float64) Length[U] {
	return Length[U]{value: v}
}

// Value returns the magnitude of l measured in its own unit.
func (l Length[U]) Value() float64 { return l.value }

// Unit returns the unit tag of l.
func (l Length[U]) Unit() U {
	var u U
	return u
}

// String formats l as its magnitude followed by the unit symbol, e.g. "2.5m".
func (l Length[U]) String() string {
	return fmt.Sprintf("%v%s", l.value, l.Unit().Symbol())
}

// M returns a Length of v metres.
func M(v float64) Length[Metre] { return New[Metre](v) }

// Cm returns a Length of v centimetres.
func Cm(v float64) Length[Centimetre] { return New[Centimetre](v) }

// Mm returns a Length of v millimetres.
func Mm(v float64) Length[Millimetre] { return New[Millimetre](v) }

// In returns a Length of v inches.
func In(v float64) Length[Inch] { return New[Inch](v) }

// Ft returns a Length of v feet.
func Ft(v float64) Length[Foot] { return New[Foot](v) }
