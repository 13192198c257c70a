package batch

import (
	"fmt"

	ddm "Monolith/internal/calc/ddm"
	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

type SlabBatchInput struct {
	Items []geometry.Input `json:"items"`
}

type SlabBatchResult struct {
	Results []ddm.Result `json:"results"`
}

// CalculateSlab runs the DDM pipeline over every panel in the request.
// A malformed panel aborts the batch; engineering failures inside a
// panel are statuses in its own result.
func CalculateSlab(in SlabBatchInput) (SlabBatchResult, error) {
	if len(in.Items) == 0 {
		return SlabBatchResult{}, fmt.Errorf("no items")
	}
	u := units.Default()
	out := SlabBatchResult{Results: make([]ddm.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		rec, err := geometry.Prepare(item, u)
		if err != nil {
			return SlabBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, ddm.Run(rec, u))
	}
	return out, nil
}
