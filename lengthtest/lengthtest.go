/*
Package lengthtest provides a suite of tests that check the conversion and
arithmetic laws every pair of units must obey.

Call lengthtest.Run in its own test, once for each pair of units:

	func TestInchFoot(t *testing.T) {
		lengthtest.Run[length.Inch, length.Foot](t)
	}

The test cases in this suite focus on the properties that follow from scales
being exact ratios:

  - The conversion factors between two units are exact inverses.
  - Converting to the same unit is exact; converting there and back is
    exact up to floating-point rounding.
  - Mixed-unit comparison and arithmetic agree with explicit conversion.

Specific units are encouraged to add tests with known magnitudes (e.g. 12 inches
make a foot), which this suite cannot know about.
*/
package lengthtest

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/nzikic/length"
)

// magnitudes returns the magnitudes every test-case is checked against. They
// cover zero, both signs, exactly representable fractions, and values that are
// not exactly representable in binary.
func magnitudes() []float64 {
	return []float64{0, 1, -1, 0.5, 2.54, 12, 100, 0.1, -7.25, 123.456, 1e6}
}

type testCase struct {
	// Subtest name.
	name string
	// A path leading to the test-case's file and line in the source code.
	location string
	// The check to run for every magnitude returned by magnitudes.
	check check
}

// cases returns the test-cases for the unit pair (U, V). The left operand of
// mixed-unit operations is always in U, and the right one in V.
func cases[U, V length.Unit]() []testCase {
	return []testCase{
		{
			name:     "ratio-inverse",
			location: locateSource(),
			check:    ratioInverse[U, V](),
		},
		{
			name:     "factor-positive",
			location: locateSource(),
			check:    factorPositive[U, V](),
		},
		{
			name:     "identity",
			location: locateSource(),
			check:    identity[U](),
		},
		{
			name:     "round-trip",
			location: locateSource(),
			check:    roundTrip[U, V](),
		},
		{
			name:     "equals-own-conversion",
			location: locateSource(),
			check:    equalsOwnConversion[U, V](),
		},
		{
			name:     "add-matches-conversion",
			location: locateSource(),
			check:    addMatchesConversion[U, V](),
		},
		{
			name:     "add-then-sub",
			location: locateSource(),
			check:    addThenSub[U, V](),
		},
		{
			name:     "quotient-of-equals",
			location: locateSource(),
			check:    quotientOfEquals[U, V](),
		},
		{
			name:     "scale-linearity",
			location: locateSource(),
			check:    scaleLinearity[U](),
		},
	}
}

// Run executes the suite for lengths in unit U combined with lengths in unit
// V. Run the suite for both (U, V) and (V, U) because the left operand decides
// the unit of the result.
//
// Every test-case runs as its own subtest, against every value returned by
// magnitudes.
func Run[U, V length.Unit](t *testing.T) {
	t.Helper()

	for _, c := range cases[U, V]() {
		t.Run(c.name, func(t *testing.T) {
			for _, m := range magnitudes() {
				if problem := c.check(m); problem != "" {
					// We encourage developers to read the source code directly, especially when
					// failures are not clear enough.
					t.Errorf("Check %v with magnitude %v: %v", c.name, m, problem)
					t.Logf("Read the source for test-case %v at %v", c.name, c.location)
				}
			}
		})
	}
}

// Call this function to set the location of every test-case in the source file.
// The returned string is used to guide developers to the appropriate
// test-case.
func locateSource() (path string) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		panic("runtime.Caller failed")
	}
	return fmt.Sprintf("%v:%v", file, line)
}
