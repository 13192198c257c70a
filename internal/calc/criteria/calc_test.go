package criteria

import (
	"math"
	"testing"

	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

func mustPrepare(t *testing.T, in geometry.Input) geometry.Record {
	t.Helper()
	rec, err := geometry.Prepare(in, units.Default())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return rec
}

func interiorPanel() geometry.Input {
	return geometry.Input{
		HSlabCm: 20, C1Cm: 50, C2Cm: 50,
		L1LeftM: 6, L1RightM: 6, L2TopM: 6, L2BottomM: 6,
		FcKsc: 240, FyGrade: geometry.SD40,
		DeadKgM2: 600, LiveKgM2: 400,
		LFDead: 1, LFLive: 1,
		HUpperM: 3, HLowerM: 3,
		Location: geometry.Interior,
	}
}

func TestMinThicknessInteriorFlatPlate(t *testing.T) {
	rec := mustPrepare(t, interiorPanel())
	res := Validate(rec).MinThickness

	// SD40: fy = 392.27 MPa, Ln = 5.5m, denominator 33.
	fyMPa := rec.Mat.FyPa / 1e6
	want := 5.5 * (0.8 + fyMPa/1400) / 33
	if math.Abs(res.RequiredM-want) > 1e-9 {
		t.Errorf("required = %v m, want %v", res.RequiredM, want)
	}
	if res.Denominator != 33 {
		t.Errorf("denominator = %v, want 33", res.Denominator)
	}
	if !res.Pass {
		t.Errorf("20 cm slab should pass a %.2f cm requirement", res.RequiredM*100)
	}
}

func TestMinThicknessDenominators(t *testing.T) {
	cases := []struct {
		name  string
		loc   geometry.Location
		drop  bool
		beam  bool
		denom float64
	}{
		{"interior flat plate", geometry.Interior, false, false, 33},
		{"interior with drop", geometry.Interior, true, false, 36},
		{"exterior flat plate", geometry.Edge, false, false, 30},
		{"exterior with beam", geometry.Edge, false, true, 33},
		{"exterior drop no beam", geometry.Edge, true, false, 33},
		{"exterior drop and beam", geometry.Edge, true, true, 36},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := interiorPanel()
			in.Location = tc.loc
			if tc.drop {
				in.HasDrop = true
				in.HDropCm = 5
				in.DropW1M, in.DropW2M = 2, 2
			}
			if tc.beam {
				in.HasEdgeBeam = true
				in.EdgeBeamWidthCm, in.EdgeBeamDepthCm = 30, 50
			}
			res := Validate(mustPrepare(t, in)).MinThickness
			if res.Denominator != tc.denom {
				t.Errorf("denominator = %v, want %v", res.Denominator, tc.denom)
			}
		})
	}
}

func TestMinThicknessAbsoluteFloor(t *testing.T) {
	in := interiorPanel()
	in.L1LeftM, in.L1RightM = 2, 2
	in.L2TopM, in.L2BottomM = 2, 2
	res := Validate(mustPrepare(t, in)).MinThickness
	if res.RequiredM != 0.125 {
		t.Errorf("short-span flat plate floor = %v m, want 0.125", res.RequiredM)
	}
}

// Boundary-equal drop dimensions count as pass, not fail.
func TestDropPanelBoundaryEqualPasses(t *testing.T) {
	in := interiorPanel()
	in.HasDrop = true
	in.HDropCm = 5                  // exactly h/4
	in.DropW1M, in.DropW2M = 2.0, 2.0 // exactly L/3
	res := Validate(mustPrepare(t, in))

	if len(res.DropPanel) != 3 {
		t.Fatalf("got %d drop checks, want 3", len(res.DropPanel))
	}
	for _, c := range res.DropPanel {
		if !c.Pass {
			t.Errorf("%s failed at the exact limit (actual %v, limit %v)", c.Name, c.Actual, c.Limit)
		}
	}
}

func TestDropPanelUndersized(t *testing.T) {
	in := interiorPanel()
	in.HasDrop = true
	in.HDropCm = 4 // below h/4 = 5
	in.DropW1M, in.DropW2M = 1.5, 2.0
	res := Validate(mustPrepare(t, in))

	var depth, w1, w2 Check
	for _, c := range res.DropPanel {
		switch c.Name {
		case "drop depth":
			depth = c
		case "drop width W1":
			w1 = c
		case "drop width W2":
			w2 = c
		}
	}
	if depth.Pass || w1.Pass {
		t.Errorf("undersized depth/W1 passed: %v %v", depth.Pass, w1.Pass)
	}
	if !w2.Pass {
		t.Errorf("W2 = 2.0m should pass a 2.0m limit")
	}
}

func TestDDMAllPass(t *testing.T) {
	res := Validate(mustPrepare(t, interiorPanel())).DDM
	if !res.Applicable {
		t.Fatalf("symmetric interior panel should satisfy DDM: %+v", res.Checks)
	}
	if len(res.Checks) != 4 {
		t.Errorf("got %d checks, want 4 (aspect, loads, spans L1, spans L2)", len(res.Checks))
	}
}

// A failing check flips the verdict but never suppresses the others.
func TestDDMViolationsAreIndependent(t *testing.T) {
	in := interiorPanel()
	in.LiveKgM2 = 1500 // LL/DL = 2.5
	in.L1LeftM = 2.5   // aspect 6/2.5 fine, successive spans off by 58%
	res := Validate(mustPrepare(t, in)).DDM

	if res.Applicable {
		t.Fatal("violations not detected")
	}
	if len(res.Checks) != 4 {
		t.Fatalf("got %d checks, want all 4 evaluated", len(res.Checks))
	}
	failed := 0
	for _, c := range res.Checks {
		if !c.Pass {
			failed++
		}
	}
	if failed != 2 {
		t.Errorf("failed = %d, want 2 (load ratio and L1 span difference)", failed)
	}
}

func TestDDMSpanDiffSkippedAtCorner(t *testing.T) {
	in := interiorPanel()
	in.Location = geometry.Corner
	res := Validate(mustPrepare(t, in)).DDM
	// Corner: no left span, no bottom half, so neither span-diff check runs.
	if len(res.Checks) != 2 {
		t.Errorf("got %d checks at a corner, want 2", len(res.Checks))
	}
}

func TestDDMAspectRatioLimit(t *testing.T) {
	in := interiorPanel()
	in.L2TopM, in.L2BottomM = 13, 13 // spans 6 vs 13 -> ratio 2.17
	res := Validate(mustPrepare(t, in)).DDM
	if res.Applicable {
		t.Error("aspect ratio over 2 accepted")
	}
	for _, c := range res.Checks {
		if c.Name == "panel aspect ratio" && c.Pass {
			t.Errorf("aspect check passed at %v", c.Actual)
		}
	}
}
