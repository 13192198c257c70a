package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	criteria "Monolith/internal/calc/criteria"
	ddm "Monolith/internal/calc/ddm"
	efm "Monolith/internal/calc/efm"
	geometry "Monolith/internal/calc/geometry"
	units "Monolith/internal/units"
)

type Input struct {
	Project string         `json:"project"`
	Author  string         `json:"author"`
	Panel   geometry.Input `json:"panel"`
}

type Handler struct{}

// Generate runs the full pipeline for one panel and streams a PDF design
// report: inputs, criteria verdicts, DDM moments and rebar, shear checks
// and EFM stiffnesses.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rec, err := geometry.Prepare(input.Panel, units.Default())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	crit := criteria.Validate(rec)
	ddmRes := ddm.Run(rec, units.Default())
	efmRes := efm.Run(rec)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Flat Slab Design Report (ACI 318)")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "1. Panel")
	line(pdf, "L1 = %.2f m, L2 = %.2f m, Ln(used) = %.2f m", ddmRes.L1M, ddmRes.L2M, ddmRes.LnUsedM)
	line(pdf, "Column %.0fx%.0f cm, slab %.1f cm, location: %s",
		rec.Geom.C1*100, rec.Geom.C2*100, rec.Geom.HSlab*100, rec.Panel.Location)
	line(pdf, "fc = %.0f ksc, fy = %.0f ksc, wu = %.0f kg/m2",
		rec.Mat.FcKsc, rec.Mat.FyKsc, ddmRes.WuKgM2)

	section(pdf, "2. Code Compliance")
	line(pdf, "Min thickness (%s): req %.2f cm, actual %.2f cm - %s",
		crit.MinThickness.CaseName, crit.MinThickness.RequiredM*100,
		crit.MinThickness.ActualM*100, verdict(crit.MinThickness.Pass))
	for _, c := range crit.DropPanel {
		line(pdf, "%s: %.2f (limit %.2f) - %s", c.Name, c.Actual, c.Limit, verdict(c.Pass))
	}
	line(pdf, "DDM applicable: %s", verdict(crit.DDM.Applicable))
	for _, c := range crit.DDM.Checks {
		line(pdf, "  %s: %.2f <= %.2f - %s", c.Name, c.Actual, c.Limit, verdict(c.Pass))
	}

	section(pdf, "3. Direct Design Method")
	line(pdf, "Mo = %.0f kg.m (%.1f kN.m), case: %s, beta_t = %.2f",
		ddmRes.MoKgM, ddmRes.MoKNm, ddmRes.Coeffs.Desc, ddmRes.BetaT)
	momentLine(pdf, "Neg ext", ddmRes.Moments.NegExt)
	momentLine(pdf, "Positive", ddmRes.Moments.Pos)
	momentLine(pdf, "Neg int", ddmRes.Moments.NegInt)

	section(pdf, "4. Reinforcement")
	for _, s := range ddmRes.Rebar {
		line(pdf, "%s: As = %.2f cm2 [%s] %s", s.SectionName, s.AsCm2, s.Status, s.Suggestion)
	}

	section(pdf, "5. Punching Shear")
	for _, s := range ddmRes.Shear {
		line(pdf, "%s: Vu = %.0f kg, phiVc = %.0f kg (ratio %.2f) - %s",
			s.Perimeter, s.VuKg, s.PhiVcKg, s.Ratio, s.Status)
	}

	section(pdf, "6. Equivalent Frame Stiffness")
	line(pdf, "Ks = %.1f kN.m, Sum Kc = %.1f kN.m, Kt = %.1f kN.m",
		efmRes.Ks/1000, efmRes.SumKc/1000, efmRes.Kt/1000)
	line(pdf, "Kec = %.1f kN.m, DF slab = %.3f, DF col = %.3f",
		efmRes.Kec/1000, efmRes.DFSlab, efmRes.DFCol)
	line(pdf, "Cantilever: %s", rec.Concept.CantileverEffect)

	for _, warn := range ddmRes.Warnings {
		pdf.SetTextColor(180, 30, 30)
		line(pdf, "WARNING: %s", warn)
	}
	pdf.SetTextColor(0, 0, 0)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"slab-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func line(pdf *gofpdf.Fpdf, format string, args ...any) {
	pdf.Cell(0, 5, fmt.Sprintf(format, args...))
	pdf.Ln(5)
}

func momentLine(pdf *gofpdf.Fpdf, name string, c ddm.Component) {
	line(pdf, "%s: %.0f kg.m (CS %.0f%% = %.0f, MS = %.0f)",
		name, c.TotalKgM, c.CSPct*100, c.CSKgM, c.MSKgM)
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
