package length_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nzikic/length"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		name string
		got  length.Ratio
		want length.Ratio
	}{
		{"m to m", length.Factor[length.Metre, length.Metre](), length.NewRatio(1, 1)},
		{"m to cm", length.Factor[length.Metre, length.Centimetre](), length.NewRatio(100, 1)},
		{"cm to mm", length.Factor[length.Centimetre, length.Millimetre](), length.NewRatio(10, 1)},
		{"in to m", length.Factor[length.Inch, length.Metre](), length.NewRatio(127, 5000)},
		{"in to cm", length.Factor[length.Inch, length.Centimetre](), length.NewRatio(254, 100)},
		{"ft to in", length.Factor[length.Foot, length.Inch](), length.NewRatio(12, 1)},
		{"in to ft", length.Factor[length.Inch, length.Foot](), length.NewRatio(1, 12)},
		{"ft to mm", length.Factor[length.Foot, length.Millimetre](), length.NewRatio(1524, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("Factor = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"cm to m", length.Convert[length.Metre](length.Cm(25)).Value(), 0.25},
		{"in to ft", length.Convert[length.Foot](length.In(24)).Value(), 2},
		{"cm to mm", length.Convert[length.Millimetre](length.Cm(200)).Value(), 2000},
		{"in to cm", length.Convert[length.Centimetre](length.In(1)).Value(), 2.54},
		{"ft to in", length.Convert[length.Inch](length.Ft(3)).Value(), 36},
		{"ft to mm", length.Convert[length.Millimetre](length.Ft(1)).Value(), 304.8},
		{"mm to m", length.Convert[length.Metre](length.Mm(1)).Value(), 0.001},
		{"m to in", length.Convert[length.Inch](length.M(1)).Value(), 1 / 0.0254},
		{"negative", length.Convert[length.Centimetre](length.M(-1.5)).Value(), -150},
		{"zero", length.Convert[length.Foot](length.Mm(0)).Value(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("Convert mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	// 0.1 has no exact binary representation; any arithmetic on it would show.
	for _, v := range []float64{0.1, 1.0 / 3, -2.54, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		if got := length.Convert[length.Inch](length.In(v)).Value(); got != v {
			t.Errorf("Convert[Inch](%v in) = %v, want %v", v, got, v)
		}
	}
}

func TestConvertSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"+Inf", length.Convert[length.Metre](length.Ft(math.Inf(1))).Value(), math.Inf(1)},
		{"-Inf", length.Convert[length.Inch](length.Cm(math.Inf(-1))).Value(), math.Inf(-1)},
		{"overflow", length.Convert[length.Millimetre](length.M(math.MaxFloat64)).Value(), math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	t.Run("NaN", func(t *testing.T) {
		if got := length.Convert[length.Foot](length.M(math.NaN())).Value(); !math.IsNaN(got) {
			t.Errorf("got %v, want NaN", got)
		}
		if got := length.Convert[length.Metre](length.M(math.NaN())).Value(); !math.IsNaN(got) {
			t.Errorf("got %v, want NaN", got)
		}
	})
}

func TestConvertRoundTrip(t *testing.T) {
	start := length.M(1)
	back := length.Convert[length.Metre](length.Convert[length.Inch](start))
	if !length.Equal(start, back) {
		t.Errorf("Convert[Metre](Convert[Inch](%v)) = %v, want %v", start, back, start)
	}
}
