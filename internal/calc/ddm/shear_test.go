package ddm

import (
	"math"
	"testing"

	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

func preparedPanel(t *testing.T, in geometry.Input) geometry.Record {
	t.Helper()
	rec, err := geometry.Prepare(in, units.Default())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return rec
}

func TestPunchingInteriorPerimeter(t *testing.T) {
	rec := preparedPanel(t, interiorPanel())
	checks := punchingChecks(rec, units.Default(), 1000)
	if len(checks) != 1 {
		t.Fatalf("got %d checks, want 1 (no drop panel)", len(checks))
	}
	chk := checks[0]

	// d = 17cm, four-sided perimeter around a 50x50 column.
	d := 0.17
	wantBo := 2 * ((0.5 + d) + (0.5 + d)) * 100
	if math.Abs(chk.BoCm-wantBo) > 1e-9 {
		t.Errorf("bo = %v cm, want %v", chk.BoCm, wantBo)
	}

	// Slack panel: square column, alphaS=40 -> the 1.06·sqrt(fc) limit governs.
	want := 1.06 * math.Sqrt(240)
	if math.Abs(chk.VcKsc-want) > 1e-9 {
		t.Errorf("vc = %v ksc, want %v", chk.VcKsc, want)
	}
	if chk.Status != ShearPass {
		t.Errorf("routine interior panel fails punching: Vu=%v phiVc=%v", chk.VuKg, chk.PhiVcKg)
	}
	wantVu := 1000 * (36 - (0.5+d)*(0.5+d))
	if math.Abs(chk.VuKg-wantVu) > 1e-6 {
		t.Errorf("Vu = %v kg, want %v", chk.VuKg, wantVu)
	}
}

func TestPunchingElongatedColumnLimit(t *testing.T) {
	in := interiorPanel()
	in.C1Cm, in.C2Cm = 120, 30 // beta = 4: the beta limit governs
	rec := preparedPanel(t, in)
	chk := punchingChecks(rec, units.Default(), 1000)[0]

	want := 0.53 * (1 + 2.0/4.0) * math.Sqrt(240)
	if math.Abs(chk.VcKsc-want) > 1e-9 {
		t.Errorf("vc = %v ksc, want beta-governed %v", chk.VcKsc, want)
	}
}

func TestPunchingEdgeColumn(t *testing.T) {
	in := interiorPanel()
	in.Location = geometry.Edge
	rec := preparedPanel(t, in)
	chk := punchingChecks(rec, units.Default(), 1000)[0]

	// Three-sided perimeter, free edge on the missing-span side.
	d := 0.17
	b1, b2 := 0.5+d/2, 0.5+d
	wantBo := (2*b1 + b2) * 100
	if math.Abs(chk.BoCm-wantBo) > 1e-9 {
		t.Errorf("edge bo = %v cm, want %v", chk.BoCm, wantBo)
	}

	// Half the 6x6 bay drains to the edge column.
	wantVu := 1000 * (6.0*6.0/2 - b1*b2)
	if math.Abs(chk.VuKg-wantVu) > 1e-6 {
		t.Errorf("edge Vu = %v kg, want half-tributary %v", chk.VuKg, wantVu)
	}
}

func TestPunchingCornerColumn(t *testing.T) {
	in := interiorPanel()
	in.Location = geometry.Corner
	rec := preparedPanel(t, in)
	chk := punchingChecks(rec, units.Default(), 1000)[0]

	d := 0.17
	b1, b2 := 0.5+d/2, 0.5+d/2
	wantBo := (b1 + b2) * 100
	if math.Abs(chk.BoCm-wantBo) > 1e-9 {
		t.Errorf("corner bo = %v cm, want %v", chk.BoCm, wantBo)
	}

	// A quarter of the full bay: L2 is already a half strip (3m) and the
	// L1 side is halved again.
	wantVu := 1000 * (6.0*3.0/2 - b1*b2)
	if math.Abs(chk.VuKg-wantVu) > 1e-6 {
		t.Errorf("corner Vu = %v kg, want quarter-bay %v", chk.VuKg, wantVu)
	}
}

func TestPunchingFailureIsAValue(t *testing.T) {
	rec := preparedPanel(t, interiorPanel())
	chk := punchingChecks(rec, units.Default(), 50000)[0]
	if chk.Status != ShearFail {
		t.Fatalf("50 t/m² panel passed punching")
	}
	if chk.Ratio <= 1 {
		t.Errorf("ratio = %v, want > 1 on failure", chk.Ratio)
	}
	if chk.PhiVcKg <= 0 || chk.VuKg <= chk.PhiVcKg {
		t.Errorf("failure must still report both sides: Vu=%v phiVc=%v", chk.VuKg, chk.PhiVcKg)
	}
}
