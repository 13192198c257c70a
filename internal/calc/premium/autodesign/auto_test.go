package autodesign

import (
	"testing"

	ddm "Monolith/internal/calc/ddm"
	geometry "Monolith/internal/calc/geometry"
)

func TestSlabConvergesOnRoutinePanel(t *testing.T) {
	res, err := Slab(SlabAutoInput{Panel: geometry.Input{
		HSlabCm: 10, C1Cm: 50, C2Cm: 50,
		L1LeftM: 6, L1RightM: 6, L2TopM: 6, L2BottomM: 6,
		FcKsc: 240, FyGrade: geometry.SD40,
		DeadKgM2: 150, LiveKgM2: 300, AutoSelfWeight: true,
		HLowerM: 3, Location: geometry.Interior,
	}})
	if err != nil {
		t.Fatalf("Slab: %v", err)
	}
	if !res.Converged {
		t.Fatalf("did not converge: %s", res.Notes)
	}
	// Starts below the ACI minimum, so the result must have moved up.
	if res.ThicknessCm <= 10 {
		t.Errorf("thickness = %v cm, want above the 10 cm start", res.ThicknessCm)
	}
	for _, s := range res.Result.Rebar {
		if s.Status == ddm.StatusFail {
			t.Errorf("converged design has failing section %q", s.SectionName)
		}
	}
	for _, s := range res.Result.Shear {
		if s.Status == ddm.ShearFail {
			t.Errorf("converged design fails punching at %s", s.Perimeter)
		}
	}
}

func TestSlabRejectsBadPanel(t *testing.T) {
	_, err := Slab(SlabAutoInput{Panel: geometry.Input{HSlabCm: 15}})
	if err == nil {
		t.Error("malformed panel accepted")
	}
}
