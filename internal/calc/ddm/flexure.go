package ddm

import (
	"fmt"
	"math"

	geometry "Monolith/internal/calc/geometry"
)

// Status of one flexural design section.
type Status string

const (
	StatusOK       Status = "OK"       // computed steel governs
	StatusMinSteel Status = "MinSteel" // temperature/shrinkage minimum governs
	StatusFail     Status = "Fail"     // section cannot carry the moment
)

// Design constants (ksc-cm practice units).
const (
	coverCm      = 3.0   // to centroid of reinforcement
	phiFlexure   = 0.9
	barAreaDB12  = 1.131 // cm², DB12 deformed bar
	maxSpacingCm = 45.0
)

// RebarSection is the flexural design result for one strip/location.
type RebarSection struct {
	SectionName string  `json:"section"`
	WidthCm     float64 `json:"width_cm"`
	DepthCm     float64 `json:"depth_cm"` // total section depth
	DCm         float64 `json:"d_cm"`     // effective depth
	MuKgM       float64 `json:"mu_kgm"`
	RnKsc       float64 `json:"rn_ksc"`
	Rho         float64 `json:"rho"`
	AsCm2       float64 `json:"as_cm2"`
	Status      Status  `json:"status"`
	Suggestion  string  `json:"suggestion"`
}

// designAllSections designs the six strip sections of the span: column
// and middle strip at the exterior negative, positive and interior
// negative locations. Negative column-strip sections over a drop panel
// use the dropped depth.
func designAllSections(rec geometry.Record, m MomentSet) []RebarSection {
	g := rec.Geom
	csW, msW := stripWidths(g.L1, g.L2)
	csCm, msCm := csW*100, msW*100
	hs := g.HSlab * 100
	hd := g.HDrop * 100

	fc := rec.Mat.FcKsc
	fy := rec.Mat.FyKsc

	negCSDepth := hs
	if g.HasDrop {
		negCSDepth = hd
	}

	sections := []struct {
		name  string
		mu    float64
		width float64
		depth float64
	}{
		{"neg ext, column strip", m.NegExt.CSKgM, csCm, negCSDepth},
		{"neg ext, middle strip", m.NegExt.MSKgM, msCm, hs},
		{"pos, column strip", m.Pos.CSKgM, csCm, hs},
		{"pos, middle strip", m.Pos.MSKgM, msCm, hs},
		{"neg int, column strip", m.NegInt.CSKgM, csCm, negCSDepth},
		{"neg int, middle strip", m.NegInt.MSKgM, msCm, hs},
	}

	out := make([]RebarSection, 0, len(sections))
	for _, s := range sections {
		out = append(out, designSection(s.name, s.mu, s.width, s.depth, fc, fy))
	}
	return out
}

// designSection solves the flexural quadratic for one section. Numeric
// domain failures (Rn over the empirical ceiling, negative radicand)
// come back as StatusFail with zero steel, never as an error.
func designSection(name string, muKgM, bCm, hCm, fcKsc, fyKsc float64) RebarSection {
	sec := RebarSection{
		SectionName: name,
		WidthCm:     bCm,
		DepthCm:     hCm,
		DCm:         hCm - coverCm,
		MuKgM:       muKgM,
	}
	if bCm <= 0 || sec.DCm <= 0 || fcKsc <= 0 || fyKsc <= 0 {
		sec.Status = StatusFail
		return sec
	}

	muKgCm := muKgM * 100
	rn := muKgCm / (phiFlexure * bCm * sec.DCm * sec.DCm)
	sec.RnKsc = rn

	if rn > 0.35*fcKsc {
		sec.Status = StatusFail
		return sec
	}
	radicand := 1 - 2*rn/(0.85*fcKsc)
	if radicand < 0 {
		sec.Status = StatusFail
		return sec
	}

	rho := (0.85 * fcKsc / fyKsc) * (1 - math.Sqrt(radicand))
	sec.Rho = rho

	rhoMin := 0.0018
	if fyKsc < 4000 {
		rhoMin = 0.0020
	}
	asCalc := rho * bCm * sec.DCm
	asMin := rhoMin * bCm * hCm
	if asCalc < asMin {
		sec.AsCm2 = asMin
		sec.Status = StatusMinSteel
	} else {
		sec.AsCm2 = asCalc
		sec.Status = StatusOK
	}
	sec.Suggestion = barSuggestion(sec.AsCm2, bCm, hCm)
	return sec
}

// barSuggestion converts a steel area into one representative DB12
// layout, honoring the min(2h, 45cm) spacing cap.
func barSuggestion(asCm2, bCm, hCm float64) string {
	if asCm2 <= 0 || bCm <= 0 {
		return ""
	}
	n := int(math.Ceil(asCm2 / barAreaDB12))
	if n < 2 {
		n = 2
	}
	spacing := bCm / float64(n)
	sMax := math.Min(2*hCm, maxSpacingCm)
	if spacing > sMax {
		spacing = sMax
		n = int(math.Ceil(bCm / sMax))
	}
	return fmt.Sprintf("%d-DB12 @ %.0f cm", n, spacing)
}
