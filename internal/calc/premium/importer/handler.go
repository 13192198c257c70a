package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	ddm "Monolith/internal/calc/ddm"
	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

type Handler struct{}

type SlabImportResult struct {
	Count   int          `json:"count"`
	Results []ddm.Result `json:"results"`
}

// Slab imports panels from an xlsx sheet, one panel per row, and runs
// the DDM pipeline on each. Unparseable rows are skipped.
func (h *Handler) Slab(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	u := units.Default()
	var results []ddm.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseSlabRow(rows[i])
		if err != nil {
			continue
		}
		rec, err := geometry.Prepare(input, u)
		if err != nil {
			continue
		}
		results = append(results, ddm.Run(rec, u))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SlabImportResult{Count: len(results), Results: results})
}

// expected columns: location, l1_left, l1_right, l2_top, l2_bottom,
// c1_cm, c2_cm, h_slab_cm, fc_ksc, fy_grade, dl_kg_m2, ll_kg_m2
func parseSlabRow(row []string) (geometry.Input, error) {
	if len(row) < 12 {
		return geometry.Input{}, fmt.Errorf("bad row")
	}
	in := geometry.Input{
		Location:       geometry.Location(row[0]),
		FyGrade:        geometry.Grade(row[9]),
		AutoSelfWeight: true,
		HLowerM:        3.0,
	}
	fields := []struct {
		dst *float64
		col int
	}{
		{&in.L1LeftM, 1}, {&in.L1RightM, 2},
		{&in.L2TopM, 3}, {&in.L2BottomM, 4},
		{&in.C1Cm, 5}, {&in.C2Cm, 6},
		{&in.HSlabCm, 7}, {&in.FcKsc, 8},
		{&in.DeadKgM2, 10}, {&in.LiveKgM2, 11},
	}
	for _, f := range fields {
		v, err := toFloat(row[f.col])
		if err != nil {
			return geometry.Input{}, err
		}
		*f.dst = v
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
