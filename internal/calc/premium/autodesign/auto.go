package autodesign

import (
	"fmt"
	"math"

	criteria "Monolith/internal/calc/criteria"
	ddm "Monolith/internal/calc/ddm"
	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

type SlabAutoInput struct {
	Panel geometry.Input `json:"panel"`
}

type SlabAutoResult struct {
	ThicknessCm float64    `json:"thickness_cm"`
	Iterations  int        `json:"iterations"`
	Converged   bool       `json:"converged"`
	Result      ddm.Result `json:"result"`
	Notes       string     `json:"notes"`
}

const (
	stepCm = 0.5
	maxCm  = 60.0
)

// Slab searches for the smallest slab thickness that satisfies the ACI
// minimum-thickness rule, the flexural quadratic at every section and
// every punching-shear perimeter. The search walks up in half-centimeter
// steps from the larger of the caller's thickness and the code minimum.
func Slab(in SlabAutoInput) (SlabAutoResult, error) {
	u := units.Default()
	panel := in.Panel
	if panel.HSlabCm <= 0 {
		panel.HSlabCm = 10
	}

	out := SlabAutoResult{}
	for h := panel.HSlabCm; h <= maxCm; h += stepCm {
		panel.HSlabCm = h
		rec, err := geometry.Prepare(panel, u)
		if err != nil {
			return SlabAutoResult{}, err
		}
		out.Iterations++

		crit := criteria.Validate(rec)
		if !crit.MinThickness.Pass {
			// Jump straight to the code minimum instead of crawling.
			req := math.Ceil(crit.MinThickness.RequiredM*100/stepCm) * stepCm
			if req > h {
				h = req - stepCm
			}
			continue
		}

		res := ddm.Run(rec, u)
		if sectionsOK(res) {
			out.ThicknessCm = h
			out.Converged = true
			out.Result = res
			out.Notes = fmt.Sprintf("Thickness selected after %d trials.", out.Iterations)
			return out, nil
		}
	}
	out.Notes = fmt.Sprintf("No thickness up to %.0f cm satisfies all checks.", maxCm)
	return out, nil
}

func sectionsOK(res ddm.Result) bool {
	for _, s := range res.Rebar {
		if s.Status == ddm.StatusFail {
			return false
		}
	}
	for _, s := range res.Shear {
		if s.Status == ddm.ShearFail {
			return false
		}
	}
	return true
}
