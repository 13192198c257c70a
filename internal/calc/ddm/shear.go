package ddm

import (
	"math"

	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

// ShearStatus of one punching-shear perimeter.
type ShearStatus string

const (
	ShearPass ShearStatus = "Pass"
	ShearFail ShearStatus = "Fail"
)

const phiShear = 0.75

// ShearCheck is the two-way shear verdict at one critical perimeter.
type ShearCheck struct {
	Perimeter string      `json:"perimeter"`
	BoCm      float64     `json:"bo_cm"`
	DCm       float64     `json:"d_cm"`
	VcKsc     float64     `json:"vc_ksc"`
	VuKg      float64     `json:"vu_kg"`
	PhiVcKg   float64     `json:"phi_vc_kg"`
	Ratio     float64     `json:"ratio"`
	Status    ShearStatus `json:"status"`
}

// punchingChecks evaluates two-way shear at the column face and, when a
// drop panel exists, at the drop-panel face. A failed perimeter is a
// value in the result; the pipeline always completes.
func punchingChecks(rec geometry.Record, u units.Config, wuKg float64) []ShearCheck {
	g := rec.Geom

	// At the column the critical section sits inside the drop, so the
	// dropped depth applies there.
	dCol := g.HDrop - coverCm*u.CmToM
	checks := []ShearCheck{
		perimeterCheck("column face", rec, wuKg, g.C1, g.C2, dCol),
	}
	if g.HasDrop {
		dSlab := g.HSlab - coverCm*u.CmToM
		checks = append(checks,
			perimeterCheck("drop panel face", rec, wuKg, g.DropW1, g.DropW2, dSlab))
	}
	return checks
}

// perimeterCheck runs the ACI three-limit check around a c1 x c2 support
// footprint with effective depth d (all meters). The perimeter geometry
// and tributary area depend on the plan location.
func perimeterCheck(name string, rec geometry.Record, wuKg, c1, c2, d float64) ShearCheck {
	g := rec.Geom
	chk := ShearCheck{Perimeter: name, DCm: d * 100}
	if d <= 0 || c1 <= 0 || c2 <= 0 {
		chk.Status = ShearFail
		return chk
	}

	var bo, enclosed, trib, alphaS float64
	switch rec.Panel.Location {
	case geometry.Edge:
		// Three-sided perimeter, free edge on the missing-span side.
		// The column carries only half the bay toward that edge.
		b1 := c1 + d/2
		b2 := c2 + d
		bo = 2*b1 + b2
		enclosed = b1 * b2
		trib = g.L1 * g.L2 / 2
		alphaS = 30
	case geometry.Corner:
		// Two-sided perimeter. L2 is already a half strip here, so the
		// halved L1 side leaves a quarter of the full bay.
		b1 := c1 + d/2
		b2 := c2 + d/2
		bo = b1 + b2
		enclosed = b1 * b2
		trib = g.L1 * g.L2 / 2
		alphaS = 20
	default:
		b1 := c1 + d
		b2 := c2 + d
		bo = 2 * (b1 + b2)
		enclosed = b1 * b2
		trib = g.L1 * g.L2
		alphaS = 40
	}

	area := trib - enclosed
	if area < 0 {
		area = 0
	}
	chk.VuKg = wuKg * area
	chk.BoCm = bo * 100

	// Concrete capacity: least of the three ACI limits (ksc units).
	fc := rec.Mat.FcKsc
	beta := math.Max(c1, c2) / math.Min(c1, c2)
	sq := math.Sqrt(fc)
	v1 := 1.06 * sq
	v2 := 0.53 * (1 + 2/beta) * sq
	v3 := 0.265 * (alphaS*d/bo + 2) * sq
	chk.VcKsc = math.Min(v1, math.Min(v2, v3))

	chk.PhiVcKg = phiShear * chk.VcKsc * chk.BoCm * chk.DCm
	if chk.PhiVcKg > 0 {
		chk.Ratio = chk.VuKg / chk.PhiVcKg
	}
	chk.Status = ShearPass
	if chk.VuKg > chk.PhiVcKg {
		chk.Status = ShearFail
	}
	return chk
}
