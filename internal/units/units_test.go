package units

import (
	"math"
	"testing"
)

func TestStressRoundTrip(t *testing.T) {
	u := Default()
	for _, ksc := range []float64{180, 240, 280, 400} {
		pa := ksc * u.KscToPa
		if back := u.KscFromPa(pa); math.Abs(back-ksc) > 1e-12*ksc {
			t.Errorf("ksc %v -> Pa -> %v", ksc, back)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	u := Default()
	pa := 1000 * u.KgToN
	if back := u.KgFromPa(pa); math.Abs(back-1000) > 1e-12*1000 {
		t.Errorf("1000 kg/m² -> Pa -> %v", back)
	}
}

func TestKscMPaConsistency(t *testing.T) {
	u := Default()
	// ksc->MPa must match ksc->Pa->MPa.
	if diff := math.Abs(240*u.KscToMPa - 240*u.KscToPa/1e6); diff > 1e-12 {
		t.Errorf("ksc conversion factors disagree by %v", diff)
	}
}
