package ddm

import (
	"math"
	"strings"
	"testing"
)

const (
	testFc = 240.0
	testFy = 4000.0
)

func TestDesignSectionMinSteelFloor(t *testing.T) {
	// Tiny moment: the temperature/shrinkage minimum governs exactly.
	sec := designSection("ms", 100, 300, 20, testFc, testFy)
	want := 0.0018 * 300 * 20
	if sec.Status != StatusMinSteel {
		t.Fatalf("status = %v, want MinSteel", sec.Status)
	}
	if sec.AsCm2 != want {
		t.Errorf("As = %v, want exactly %v", sec.AsCm2, want)
	}
}

func TestDesignSectionLowGradeMinimum(t *testing.T) {
	sec := designSection("ms", 100, 300, 20, testFc, 3000)
	want := 0.0020 * 300 * 20
	if sec.Status != StatusMinSteel || sec.AsCm2 != want {
		t.Errorf("SD30 minimum: As = %v (%v), want %v (MinSteel)", sec.AsCm2, sec.Status, want)
	}
}

// As never decreases with Mu while Rn stays under the ceiling; past the
// ceiling the status is always Fail with zero steel.
func TestDesignSectionMonotonic(t *testing.T) {
	prev := 0.0
	failed := false
	for mu := 500.0; mu <= 80000; mu += 500 {
		sec := designSection("cs", mu, 300, 20, testFc, testFy)
		switch sec.Status {
		case StatusFail:
			failed = true
			if sec.AsCm2 != 0 {
				t.Fatalf("Mu=%v: failed section reports As=%v", mu, sec.AsCm2)
			}
		default:
			if failed {
				t.Fatalf("Mu=%v: recovered from Fail at higher moment", mu)
			}
			if sec.AsCm2 < prev {
				t.Fatalf("Mu=%v: As dropped from %v to %v", mu, prev, sec.AsCm2)
			}
			prev = sec.AsCm2
		}
	}
	if !failed {
		t.Error("sweep never reached the Rn ceiling")
	}
}

func TestDesignSectionCapacityCeiling(t *testing.T) {
	// Rn just above 0.35·fc must fail without evaluating the root.
	b, d := 100.0, 17.0
	muCeil := 0.35 * testFc * phiFlexure * b * d * d / 100 // kg·m at the ceiling
	over := designSection("cs", muCeil*1.01, b, 20, testFc, testFy)
	if over.Status != StatusFail {
		t.Errorf("Rn above ceiling: status %v, want Fail", over.Status)
	}
	under := designSection("cs", muCeil*0.99, b, 20, testFc, testFy)
	if under.Status == StatusFail {
		t.Errorf("Rn below ceiling failed (Rn=%v)", under.RnKsc)
	}
}

func TestDesignSectionDegenerateGeometry(t *testing.T) {
	if sec := designSection("x", 100, 0, 20, testFc, testFy); sec.Status != StatusFail {
		t.Errorf("zero width accepted: %v", sec.Status)
	}
	if sec := designSection("x", 100, 100, 2, testFc, testFy); sec.Status != StatusFail {
		t.Errorf("depth below cover accepted: %v", sec.Status)
	}
}

func TestBarSuggestionSpacingCap(t *testing.T) {
	// Minimum steel on a wide thin strip: spacing capped at min(2h, 45).
	s := barSuggestion(2*barAreaDB12, 300, 15)
	if !strings.Contains(s, "@ 30 cm") {
		t.Errorf("suggestion %q, want spacing capped at 2h = 30 cm", s)
	}
	s = barSuggestion(2*barAreaDB12, 300, 40)
	if !strings.Contains(s, "@ 45 cm") {
		t.Errorf("suggestion %q, want spacing capped at 45 cm", s)
	}
}

func TestDesignSectionEffectiveDepth(t *testing.T) {
	sec := designSection("cs", 5000, 300, 20, testFc, testFy)
	if math.Abs(sec.DCm-17) > 1e-12 {
		t.Errorf("d = %v, want h - 3 = 17", sec.DCm)
	}
}
