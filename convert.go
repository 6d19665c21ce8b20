package length

// Factor returns the exact ratio by which a magnitude in unit From is
// multiplied to express it in unit To, i.e. From.Scale() / To.Scale().
//
// For any two units A and B, Factor[A, B]().Mul(Factor[B, A]()) is exactly 1.
func Factor[From, To Unit]() Ratio {
	var (
		from From
		to   To
	)
	return from.Scale().Div(to.Scale())
}

// Convert returns l expressed in unit To.
//
// The target unit comes first so that the source unit can be inferred:
//
//	length.Convert[length.Metre](length.Cm(25)) // 0.25m
//
// Converting to the same unit returns l unchanged. Otherwise the magnitude is
// multiplied by the numerator and then divided by the denominator of
// Factor[From, To], which is the only step that rounds. The conversion is a
// pure scaling; lengths have a true zero, so there is never an offset.
func Convert[To, From Unit](l Length[From]) Length[To] {
	if same, ok := any(l).(Length[To]); ok {
		return same
	}
	r := Factor[From, To]()
	return Length[To]{value: l.value * float64(r.num) / float64(r.den)}
}
