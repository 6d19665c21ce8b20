package lengthtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The magnitudes checked by Run cannot be changed by any caller, including the
// test-cases themselves.
func TestMagnitudesAreFresh(t *testing.T) {
	want := magnitudes()

	got := magnitudes()
	for i := range got {
		got[i] = 42
	}

	if diff := cmp.Diff(want, magnitudes()); diff != "" {
		t.Errorf("magnitudes() mismatch after mutating a previous result (-want +got):\n%s", diff)
	}
}
