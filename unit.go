package length

// Unit is the constraint satisfied by every recognised unit of length.
//
// Unit is closed: its type set lists the registered units and nothing else, so
// instantiating Length with any other type is a type-check error, e.g.
//
//	var _ length.Length[furlong] // furlong does not satisfy length.Unit
//
// This includes types that embed a registered unit. Because of the union, Unit
// can only be used as a type constraint, never as the type of a value.
//
// Units are zero-size struct types. Their methods work on the zero value, which
// is how generic code reads the scale of a type parameter without holding an
// instance. A new unit needs a type below, a term in this union and a scale.
type Unit interface {
	Metre | Centimetre | Millimetre | Inch | Foot

	// Scale returns the length of one of this unit expressed in metres, as an
	// exact ratio. It is always strictly positive.
	Scale() Ratio
	// Symbol returns the short symbol of the unit, e.g. "cm".
	Symbol() string
}

// Scales of the registered units. Each is derived from the reference unit or
// from a previously declared unit, so chained definitions never round.
var (
	metreScale      = NewRatio(1, 1)
	centimetreScale = NewRatio(1, 100)
	millimetreScale = NewRatio(1, 1000)
	inchScale       = NewRatio(254, 100).Mul(centimetreScale)
	footScale       = NewRatio(12, 1).Mul(inchScale)
)

// Metre is the reference unit; every other scale is relative to it.
type Metre struct{}

func (Metre) Scale() Ratio   { return metreScale }
func (Metre) Symbol() string { return "m" }

// Centimetre is one hundredth of a metre.
type Centimetre struct{}

func (Centimetre) Scale() Ratio   { return centimetreScale }
func (Centimetre) Symbol() string { return "cm" }

// Millimetre is one thousandth of a metre.
type Millimetre struct{}

func (Millimetre) Scale() Ratio   { return millimetreScale }
func (Millimetre) Symbol() string { return "mm" }

// Inch is exactly 2.54 centimetres.
type Inch struct{}

func (Inch) Scale() Ratio   { return inchScale }
func (Inch) Symbol() string { return "in" }

// Foot is exactly twelve inches.
type Foot struct{}

func (Foot) Scale() Ratio   { return footScale }
func (Foot) Symbol() string { return "ft" }
