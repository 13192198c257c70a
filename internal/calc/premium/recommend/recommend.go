package recommend

import "fmt"

type DropRecommendInput struct {
	L1M     float64 `json:"l1_m"`
	L2M     float64 `json:"l2_m"`
	HSlabCm float64 `json:"h_slab_cm"`
}

type DropRecommendResult struct {
	DepthCm float64 `json:"depth_cm"`
	W1M     float64 `json:"w1_m"`
	W2M     float64 `json:"w2_m"`
	Notes   string  `json:"notes"`
}

// DropPanel recommends the smallest code-compliant drop panel for a
// panel: projection h/4 below the slab and L/3 total width each way.
func DropPanel(in DropRecommendInput) (DropRecommendResult, error) {
	if in.L1M <= 0 || in.L2M <= 0 || in.HSlabCm <= 0 {
		return DropRecommendResult{}, fmt.Errorf("invalid input")
	}
	return DropRecommendResult{
		DepthCm: in.HSlabCm / 4,
		W1M:     in.L1M / 3,
		W2M:     in.L2M / 3,
		Notes:   "Minimum drop panel per ACI: depth h/4, width L/3 (L/6 each side of the column).",
	}, nil
}
