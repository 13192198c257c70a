package criteria

import (
	"fmt"
	"math"

	geometry "Monolith/internal/calc/geometry"
)

// Check is one pass/fail verdict together with the numbers behind it, so
// a caller can render both the verdict and the work.
type Check struct {
	Name   string  `json:"name"`
	Pass   bool    `json:"pass"`
	Actual float64 `json:"actual"`
	Limit  float64 `json:"limit"`
	Note   string  `json:"note,omitempty"`
}

// ThicknessResult reports the ACI Table 8.3.1.1 minimum-thickness check.
type ThicknessResult struct {
	Pass        bool    `json:"pass"`
	RequiredM   float64 `json:"required_m"`
	ActualM     float64 `json:"actual_m"`
	Denominator float64 `json:"denominator"`
	LnM         float64 `json:"ln_m"`
	CaseName    string  `json:"case_name"`
}

// DDMResult is the Direct Design Method applicability verdict. A single
// failing check flips Applicable; every check is always evaluated.
type DDMResult struct {
	Applicable bool    `json:"applicable"`
	Checks     []Check `json:"checks"`
}

// Result bundles every design-criteria check for one panel.
type Result struct {
	MinThickness ThicknessResult `json:"min_thickness"`
	DropPanel    []Check         `json:"drop_panel,omitempty"`
	DDM          DDMResult       `json:"ddm"`
}

// Validate runs every criterion against a normalized panel record. It
// never returns an error: a violated criterion is a value in the result.
func Validate(rec geometry.Record) Result {
	return Result{
		MinThickness: checkMinThickness(rec),
		DropPanel:    checkDropPanel(rec),
		DDM:          checkDDM(rec),
	}
}

// checkMinThickness applies ACI Table 8.3.1.1 for slabs without interior
// beams. The denominator depends on drop panels and, for exterior panels,
// on the presence of an edge beam.
func checkMinThickness(rec geometry.Record) ThicknessResult {
	g := rec.Geom
	isExt := rec.Panel.Location != geometry.Interior

	var denom float64
	var name string
	switch {
	case g.HasDrop && isExt && !rec.Panel.HasEdgeBeam:
		denom, name = 33, "Exterior, drop panel, no edge beam"
	case g.HasDrop && isExt:
		denom, name = 36, "Exterior, drop panel, edge beam"
	case g.HasDrop:
		denom, name = 36, "Interior, drop panel"
	case isExt && !rec.Panel.HasEdgeBeam:
		denom, name = 30, "Exterior flat plate, no edge beam"
	case isExt:
		denom, name = 33, "Exterior flat plate, edge beam"
	default:
		denom, name = 33, "Interior flat plate"
	}

	// Governing clear span: the longer direction, measured face to face.
	ln := math.Max(g.L1-g.C1, math.Max(g.L2Top, g.L2Bot)-g.C2)

	fyMPa := rec.Mat.FyPa / 1e6
	req := ln * (0.8 + fyMPa/1400) / denom

	// Absolute floors regardless of span.
	absMin := 0.125
	if g.HasDrop {
		absMin = 0.10
	}
	req = math.Max(req, absMin)

	return ThicknessResult{
		Pass:        g.HSlab >= req,
		RequiredM:   req,
		ActualM:     g.HSlab,
		Denominator: denom,
		LnM:         ln,
		CaseName:    name,
	}
}

// checkDropPanel verifies the drop projection (>= h/4) and its plan
// widths (>= L/3 in each direction). Boundary-equal counts as pass.
func checkDropPanel(rec geometry.Record) []Check {
	g := rec.Geom
	if !g.HasDrop {
		return nil
	}
	proj := g.HDrop - g.HSlab
	reqProj := g.HSlab / 4
	reqW1 := g.L1 / 3
	reqW2 := math.Max(g.L2Top, g.L2Bot) / 3

	return []Check{
		{
			Name: "drop depth", Pass: proj >= reqProj,
			Actual: proj, Limit: reqProj,
			Note: "projection below slab >= h_slab/4",
		},
		{
			Name: "drop width W1", Pass: g.DropW1 >= reqW1,
			Actual: g.DropW1, Limit: reqW1,
			Note: "total width >= L1/3",
		},
		{
			Name: "drop width W2", Pass: g.DropW2 >= reqW2,
			Actual: g.DropW2, Limit: reqW2,
			Note: "total width >= L2/3",
		},
	}
}

// checkDDM evaluates the Direct Design Method limits. A failing check
// never suppresses the remaining ones.
func checkDDM(rec geometry.Record) DDMResult {
	g := rec.Geom
	var checks []Check

	// Panel aspect ratio: long side over short side <= 2.
	span1 := g.L1
	span2 := math.Max(g.L2Top, g.L2Bot)
	ratio := 0.0
	if s := math.Min(span1, span2); s > 0 {
		ratio = math.Max(span1, span2) / s
	}
	checks = append(checks, Check{
		Name: "panel aspect ratio", Pass: ratio <= 2.0,
		Actual: ratio, Limit: 2.0,
	})

	// Unfactored live over dead load <= 2.
	loadRatio := 0.0
	if rec.Loads.DeadPa > 0 {
		loadRatio = rec.Loads.LivePa / rec.Loads.DeadPa
	}
	checks = append(checks, Check{
		Name: "live/dead load ratio", Pass: loadRatio <= 2.0,
		Actual: loadRatio, Limit: 2.0,
	})

	// Successive spans within a third of the longer, per direction.
	// Only evaluated when both adjacent spans exist.
	if c, ok := spanDiffCheck("successive spans L1", g.L1Left, g.L1Right); ok {
		checks = append(checks, c)
	}
	if c, ok := spanDiffCheck("successive spans L2", g.L2Top, g.L2Bot); ok {
		checks = append(checks, c)
	}

	res := DDMResult{Applicable: true, Checks: checks}
	for _, c := range checks {
		if !c.Pass {
			res.Applicable = false
		}
	}
	return res
}

func spanDiffCheck(name string, a, b float64) (Check, bool) {
	if a <= 0 || b <= 0 {
		return Check{}, false
	}
	longer := math.Max(a, b)
	diff := math.Abs(a-b) / longer
	return Check{
		Name: name, Pass: diff <= 1.0/3.0,
		Actual: diff, Limit: 1.0 / 3.0,
		Note: fmt.Sprintf("%.2fm vs %.2fm", a, b),
	}, true
}
