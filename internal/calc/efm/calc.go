package efm

import (
	"math"

	geometry "Monolith/internal/calc/geometry"
)

// Result is the Equivalent Frame Method stiffness set for one joint.
// All stiffnesses are in N·m/rad; the iterative frame analysis itself is
// out of scope, this feeds distribution factors to it.
type Result struct {
	IsM4 float64 `json:"is_m4"` // gross slab inertia over the frame width
	IcM4 float64 `json:"ic_m4"` // column inertia
	CM4  float64 `json:"c_m4"`  // torsion constant of the transverse member

	Ks    float64 `json:"ks"`
	KcUp  float64 `json:"kc_up"`
	KcLo  float64 `json:"kc_lo"`
	SumKc float64 `json:"sum_kc"`
	Kt    float64 `json:"kt"`
	Kec   float64 `json:"kec"`

	DFSlab float64 `json:"df_slab"`
	DFCol  float64 `json:"df_col"`

	TorsionArms int `json:"torsion_arms"`
}

// Run computes the EFM member stiffnesses and joint distribution factors
// for one panel. Pure and total: degenerate geometry produces zero
// stiffnesses, never a division error.
func Run(rec geometry.Record) Result {
	g := rec.Geom
	ec := rec.Mat.EcPa

	res := Result{
		KcUp:  rec.Stiffness.KUpper,
		KcLo:  rec.Stiffness.KLower,
		SumKc: rec.Stiffness.SumK,
		IcM4:  rec.Stiffness.IcColumn,
	}

	// Slab flexural stiffness over the frame width, far end fixed.
	res.IsM4 = g.L2 * math.Pow(g.HSlab, 3) / 12
	if g.L1 > 0 {
		res.Ks = 4 * ec * res.IsM4 / g.L1
	}

	// Torsional member: the slab strip framing into the column
	// transversely, x = slab thickness, y = column width c1.
	x := math.Min(g.HSlab, g.C1)
	y := math.Max(g.HSlab, g.C1)
	if y > 0 {
		res.CM4 = (1 - 0.63*x/y) * math.Pow(x, 3) * y / 3
	}

	// One torsional arm per transverse side of the joint.
	res.TorsionArms = 2
	if rec.Panel.Location == geometry.Corner {
		res.TorsionArms = 1
	}
	if g.L2 > 0 && g.C2 < g.L2 {
		denom := g.L2 * math.Pow(1-g.C2/g.L2, 3)
		res.Kt = float64(res.TorsionArms) * 9 * ec * res.CM4 / denom
	}

	// Series combination; a zero term means a fully flexible joint.
	if res.SumKc > 0 && res.Kt > 0 {
		res.Kec = 1 / (1/res.SumKc + 1/res.Kt)
	}

	if sum := res.Ks + res.Kec; sum > 0 {
		res.DFSlab = res.Ks / sum
		res.DFCol = res.Kec / sum
	}
	return res
}
