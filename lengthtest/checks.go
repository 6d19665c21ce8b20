package lengthtest

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/nzikic/length"
)

// A check is any function that returns unexpected problems with lengths of the
// given magnitude.
type check func(m float64) (problem string)

// approx tolerates the rounding of at most a few floating-point operations.
var approx = cmpopts.EquateApprox(1e-12, 0)

// Checks that the factors between U and V multiply to exactly one. It does not
// depend on the magnitude.
func ratioInverse[U, V length.Unit]() check {
	return func(float64) string {
		there, back := length.Factor[U, V](), length.Factor[V, U]()
		if p := there.Mul(back); !p.IsOne() {
			return fmt.Sprintf("Factor(%T, %T) * Factor(%T, %T) = %v, want 1/1", *new(U), *new(V), *new(V), *new(U), p)
		}
		return ""
	}
}

// Checks that conversion factors are strictly positive, i.e. that conversion
// never flips the sign of a magnitude.
func factorPositive[U, V length.Unit]() check {
	return func(float64) string {
		r := length.Factor[U, V]()
		if r.Num() <= 0 || r.Den() <= 0 {
			return fmt.Sprintf("Factor(%T, %T) = %v, want positive terms", *new(U), *new(V), r)
		}
		return ""
	}
}

// Checks that converting into the same unit is exact.
func identity[U length.Unit]() check {
	return func(m float64) string {
		got := length.Convert[U](length.New[U](m))
		if diff := cmp.Diff(m, got.Value()); diff != "" {
			return fmt.Sprintf("Convert[%T] mismatch (-want +got):\n%v", *new(U), diff)
		}
		return ""
	}
}

// Checks that converting from U into V and back again returns the original
// magnitude, up to rounding.
func roundTrip[U, V length.Unit]() check {
	return func(m float64) string {
		there := length.Convert[V](length.New[U](m))
		back := length.Convert[U](there)
		if diff := cmp.Diff(m, back.Value(), approx); diff != "" {
			return fmt.Sprintf("round-trip via %T mismatch (-want +got):\n%v", *new(V), diff)
		}
		return ""
	}
}

// Checks that a length equals its own conversion when compared from the side
// of the converted value. That comparison converts into V again, so it must be
// exact.
func equalsOwnConversion[U, V length.Unit]() check {
	return func(m float64) string {
		a := length.New[U](m)
		b := length.Convert[V](a)
		if !length.Equal(b, a) {
			return fmt.Sprintf("Equal(%v, %v) = false, want true", b, a)
		}
		if got := length.Compare(b, a); got != 0 {
			return fmt.Sprintf("Compare(%v, %v) = %v, want 0", b, a, got)
		}
		return ""
	}
}

// Checks that mixed-unit addition and subtraction keep the left operand's unit
// and convert the right operand exactly as Convert does.
func addMatchesConversion[U, V length.Unit]() check {
	return func(m float64) string {
		a, b := length.New[U](m), length.New[V](m)
		converted := length.Convert[U](b).Value()
		if diff := cmp.Diff(m+converted, length.Add(a, b).Value()); diff != "" {
			return fmt.Sprintf("Add(%v, %v) mismatch (-want +got):\n%v", a, b, diff)
		}
		if diff := cmp.Diff(m-converted, length.Sub(a, b).Value()); diff != "" {
			return fmt.Sprintf("Sub(%v, %v) mismatch (-want +got):\n%v", a, b, diff)
		}
		return ""
	}
}

// Checks that subtracting what was just added returns the original length, up
// to rounding.
func addThenSub[U, V length.Unit]() check {
	return func(m float64) string {
		a, b := length.New[U](m), length.New[V](m)
		got := length.Sub(length.Add(a, b), b)
		if diff := cmp.Diff(m, got.Value(), cmpopts.EquateApprox(1e-9, 0)); diff != "" {
			return fmt.Sprintf("Sub(Add(%v, %v), %v) mismatch (-want +got):\n%v", a, b, b, diff)
		}
		return ""
	}
}

// Checks that dividing a length by its own conversion is dimensionless one.
func quotientOfEquals[U, V length.Unit]() check {
	return func(m float64) string {
		if m == 0 {
			// 0/0 is NaN, which is correct but not what this check is about.
			return ""
		}
		a := length.New[U](m)
		b := length.Convert[V](a)
		if diff := cmp.Diff(1.0, length.Quotient(a, b), approx); diff != "" {
			return fmt.Sprintf("Quotient(%v, %v) mismatch (-want +got):\n%v", a, b, diff)
		}
		return ""
	}
}

// Checks that scaling by a scalar is linear. The scalars are powers of two (or
// small integers) so that every product is exact.
func scaleLinearity[U length.Unit]() check {
	return func(m float64) string {
		l := length.New[U](m)
		for _, k := range []float64{2, -0.5, 3} {
			if diff := cmp.Diff(k*m, length.Scale(k, l).Value()); diff != "" {
				return fmt.Sprintf("Scale(%v, %v) mismatch (-want +got):\n%v", k, l, diff)
			}
			if left, right := length.Scale(k, l), l.Mul(k); !left.Equal(right) {
				return fmt.Sprintf("Scale(%v, %v) = %v, but %v.Mul(%v) = %v", k, l, left, l, k, right)
			}
		}
		once := length.Scale(2*4, l)
		twice := length.Scale(2, length.Scale(4, l))
		if !once.Equal(twice) {
			return fmt.Sprintf("Scale(8, %v) = %v, but Scale(2, Scale(4, %v)) = %v", l, once, l, twice)
		}
		return ""
	}
}
