package criteria

import (
	"encoding/json"
	"net/http"

	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input geometry.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rec, err := geometry.Prepare(input, units.Default())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := Validate(rec)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
