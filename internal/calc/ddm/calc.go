package ddm

import (
	"fmt"
	"math"

	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

// Coefficients is one ACI 318 longitudinal moment-coefficient triple.
type Coefficients struct {
	NegExt float64 `json:"neg_ext"`
	Pos    float64 `json:"pos"`
	NegInt float64 `json:"neg_int"`
	Desc   string  `json:"desc"`
}

// Component is one longitudinal moment split into its strip shares.
// CS + MS always reconstruct the total.
type Component struct {
	TotalKgM float64 `json:"total_kgm"`
	CSPct    float64 `json:"cs_pct"` // column-strip share, 0..1
	CSKgM    float64 `json:"cs_kgm"`
	MSKgM    float64 `json:"ms_kgm"`
}

// MomentSet is the full DDM moment distribution for one span.
type MomentSet struct {
	NegExt Component `json:"neg_ext"`
	Pos    Component `json:"pos"`
	NegInt Component `json:"neg_int"`
}

// Result is the complete DDM output. It is always fully populated: design
// failures live in section statuses and warnings, never in an error.
type Result struct {
	MoKgM   float64 `json:"mo_kgm"`
	MoKNm   float64 `json:"mo_knm"`
	LnUsedM float64 `json:"ln_used_m"`
	L1M     float64 `json:"l1_m"`
	L2M     float64 `json:"l2_m"`
	WuKgM2  float64 `json:"wu_kg_m2"`
	BetaT   float64 `json:"beta_t"`

	Coeffs  Coefficients `json:"coeffs"`
	Moments MomentSet    `json:"moments"`

	Rebar []RebarSection `json:"rebar"`
	Shear []ShearCheck   `json:"shear"`

	Notes    []string `json:"notes,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// momentCoefficients returns the ACI 318 longitudinal triple for the
// panel case. An interior column sits on an interior span; edge and
// corner columns start an end span.
func momentCoefficients(p geometry.Panel) Coefficients {
	if p.Location == geometry.Interior {
		return Coefficients{NegExt: 0.65, Pos: 0.35, NegInt: 0.65, Desc: "Interior span"}
	}
	if p.HasEdgeBeam {
		return Coefficients{NegExt: 0.30, Pos: 0.50, NegInt: 0.70, Desc: "End span, edge beam"}
	}
	return Coefficients{NegExt: 0.26, Pos: 0.52, NegInt: 0.70, Desc: "End span, flat plate"}
}

// Run executes the full Direct Design Method pipeline for one panel:
// static moment, longitudinal distribution, strip split, flexural design
// and punching shear. It never fails; out-of-range numerics appear as
// section statuses and warnings in the result.
func Run(rec geometry.Record, u units.Config) Result {
	g := rec.Geom
	wuKg := u.KgFromPa(rec.Loads.WuPa)

	res := Result{
		L1M:    g.L1,
		L2M:    g.L2,
		WuKgM2: wuKg,
	}

	// Clear span, floored at 0.65·L1 per ACI before computing Mo.
	ln := g.Ln
	if floor := 0.65 * g.L1; ln < floor {
		ln = floor
		res.Notes = append(res.Notes,
			fmt.Sprintf("clear span %.2fm below ACI floor, using 0.65*L1 = %.2fm", g.Ln, ln))
	}
	res.LnUsedM = ln

	// Total static moment Mo = wu·L2·Ln²/8.
	res.MoKgM = wuKg * g.L2 * ln * ln / 8
	res.MoKNm = res.MoKgM * u.G / 1000

	res.Coeffs = momentCoefficients(rec.Panel)
	res.BetaT = torsionRatio(rec)

	l2l1 := 0.0
	if g.L1 > 0 {
		l2l1 = g.L2 / g.L1
	}
	// Flat slab without interior beams: alpha_f1 = 0.
	const alphaF1 = 0.0

	isEnd := rec.Panel.Location != geometry.Interior
	res.Moments = MomentSet{
		NegExt: split(res.MoKgM*res.Coeffs.NegExt, extNegPct(isEnd, l2l1, alphaF1, res.BetaT)),
		Pos:    split(res.MoKgM*res.Coeffs.Pos, colStripPercent(locPositive, l2l1, alphaF1, res.BetaT)),
		NegInt: split(res.MoKgM*res.Coeffs.NegInt, colStripPercent(locNegInterior, l2l1, alphaF1, res.BetaT)),
	}

	res.Rebar = designAllSections(rec, res.Moments)
	for _, s := range res.Rebar {
		if s.Status == StatusFail {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("flexure: section %q exceeds capacity, increase depth or fc", s.SectionName))
		}
	}

	res.Shear = punchingChecks(rec, u, wuKg)
	for _, s := range res.Shear {
		if s.Status == ShearFail {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("punching shear at %s: Vu %.0f kg > phiVc %.0f kg", s.Perimeter, s.VuKg, s.PhiVcKg))
		}
	}
	return res
}

// extNegPct: inside an interior span the "exterior" support is just
// another interior negative section.
func extNegPct(isEnd bool, l2l1, alphaF1, betaT float64) float64 {
	if !isEnd {
		return colStripPercent(locNegInterior, l2l1, alphaF1, betaT)
	}
	return colStripPercent(locNegExterior, l2l1, alphaF1, betaT)
}

func split(totalKgM, csPct float64) Component {
	cs := totalKgM * csPct
	return Component{
		TotalKgM: totalKgM,
		CSPct:    csPct,
		CSKgM:    cs,
		MSKgM:    totalKgM - cs,
	}
}

// torsionRatio computes beta_t = C/(2·Is) for the edge beam, the ratio
// of the beam's torsional stiffness to the slab's flexural stiffness.
// Without an edge beam the ratio is zero.
func torsionRatio(rec geometry.Record) float64 {
	p := rec.Panel
	if !p.HasEdgeBeam || p.EdgeBeamWidth <= 0 || p.EdgeBeamDepth <= 0 {
		return 0
	}
	x := math.Min(p.EdgeBeamWidth, p.EdgeBeamDepth)
	y := math.Max(p.EdgeBeamWidth, p.EdgeBeamDepth)
	c := (1 - 0.63*x/y) * x * x * x * y / 3

	is := rec.Geom.L2 * math.Pow(rec.Geom.HSlab, 3) / 12
	if is <= 0 {
		return 0
	}
	return c / (2 * is)
}
