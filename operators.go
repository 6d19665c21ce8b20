package length

import (
	"cmp"
	"math"
)

// The functions in this file combine lengths of possibly different units.
// They all follow the same rule: the right operand is converted into the unit
// of the left operand (no conversion takes place when the units are the same),
// and any Length result is measured in the left operand's unit.

// Equal reports whether a and b have the same magnitude once b is expressed in
// a's unit.
//
// The comparison is exact floating-point equality. Conversion factors that
// have no exact binary representation (inches to metres, for instance) may
// round, in which case two lengths that are equal on paper compare unequal.
func Equal[U, V Unit](a Length[U], b Length[V]) bool {
	return a.value == Convert[U](b).value
}

// Compare returns -1 if a is shorter than b, +1 if a is longer, and 0 if they
// are equal, once b is expressed in a's unit. NaN compares as in cmp.Compare.
func Compare[U, V Unit](a Length[U], b Length[V]) int {
	return cmp.Compare(a.value, Convert[U](b).value)
}

// Less reports whether a is shorter than b.
func Less[U, V Unit](a Length[U], b Length[V]) bool {
	return a.value < Convert[U](b).value
}

// Add returns a+b measured in a's unit.
func Add[U, V Unit](a Length[U], b Length[V]) Length[U] {
	return Length[U]{value: a.value + Convert[U](b).value}
}

// Sub returns a-b measured in a's unit.
func Sub[U, V Unit](a Length[U], b Length[V]) Length[U] {
	return Length[U]{value: a.value - Convert[U](b).value}
}

// Quotient returns the dimensionless ratio a/b.
func Quotient[U, V Unit](a Length[U], b Length[V]) float64 {
	return a.value / Convert[U](b).value
}

// Scale returns k*l. It is the left-hand counterpart of l.Mul(k).
func Scale[U Unit](k float64, l Length[U]) Length[U] {
	return Length[U]{value: k * l.value}
}

// Sum returns the total of ls, or zero when ls is empty.
func Sum[U Unit](ls ...Length[U]) Length[U] {
	var total Length[U]
	for _, l := range ls {
		total.value += l.value
	}
	return total
}

// Add returns l+o. See the package-level Add for operands of different units.
func (l Length[U]) Add(o Length[U]) Length[U] {
	return Length[U]{value: l.value + o.value}
}

// Sub returns l-o. See the package-level Sub for operands of different units.
func (l Length[U]) Sub(o Length[U]) Length[U] {
	return Length[U]{value: l.value - o.value}
}

// Equal reports whether l and o have exactly the same magnitude.
func (l Length[U]) Equal(o Length[U]) bool {
	return l.value == o.value
}

// Mul returns l scaled by k.
func (l Length[U]) Mul(k float64) Length[U] {
	return Length[U]{value: k * l.value}
}

// Div returns l divided by k. Dividing by zero yields an infinite (or NaN)
// magnitude rather than a panic.
func (l Length[U]) Div(k float64) Length[U] {
	return Length[U]{value: l.value / k}
}

// Neg returns -l.
func (l Length[U]) Neg() Length[U] {
	return Length[U]{value: -l.value}
}

// Abs returns the absolute length of l.
func (l Length[U]) Abs() Length[U] {
	return Length[U]{value: math.Abs(l.value)}
}
