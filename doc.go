// Package length provides lengths whose unit of measurement is part of their
// type; Length[Metre] and Length[Inch] are different types, so a magnitude can
// never be silently reinterpreted in the wrong unit.
//
// Every unit declares its scale relative to the metre as an exact Ratio. Units
// may be defined in terms of each other (a Foot is twelve Inch, an Inch is 2.54
// Centimetre) and these definitions compose without any floating-point error.
// Converting a Length divides the two scales exactly and rounds only once, when
// the resulting factor is applied to the magnitude:
//
//	d := length.Convert[length.Foot](length.In(24)) // 2ft
//
// Operations that combine two lengths accept operands of different units. The
// right operand is converted into the unit of the left one first, and any
// resulting Length keeps the left operand's unit:
//
//	length.Add(length.M(1), length.Cm(50))      // 1.5m
//	length.Add(length.Cm(50), length.M(1))      // 150cm
//	length.Equal(length.Ft(1), length.In(12))   // true
//	length.Quotient(length.M(1), length.Cm(25)) // 4
//
// The set of units is closed: Unit is a union of the registered units, and
// using any other type as the unit of a Length is rejected by the compiler.
//
// All types in this package are immutable values and every function is pure,
// so they are safe for concurrent use.
package length
