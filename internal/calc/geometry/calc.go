package geometry

import (
	"fmt"
	"math"

	units "Monolith/internal/units"
)

// Location of the column in plan. Selects coefficient tables downstream.
type Location string

const (
	Interior Location = "interior"
	Edge     Location = "edge"
	Corner   Location = "corner"
)

// FarEnd is the restraint at the far end of a column segment.
type FarEnd string

const (
	Fixed  FarEnd = "fixed"  // 4EI/L
	Pinned FarEnd = "pinned" // 3EI/L
)

// JointType distinguishes an intermediate-floor joint from a roof joint.
type JointType string

const (
	Intermediate JointType = "intermediate"
	Roof         JointType = "roof"
)

// Grade is the reinforcing steel grade (Thai practice designations).
type Grade string

const (
	SD30 Grade = "SD30" // fy = 3000 ksc
	SD40 Grade = "SD40" // fy = 4000 ksc
	SD50 Grade = "SD50" // fy = 5000 ksc
)

// Input is the raw panel description in UI units (cm, m, ksc, kg/m²).
type Input struct {
	// Member sizes
	HSlabCm float64 `json:"h_slab_cm"`
	HDropCm float64 `json:"h_drop_cm"`
	HasDrop bool    `json:"has_drop"`
	DropW1M float64 `json:"drop_w1_m"`
	DropW2M float64 `json:"drop_w2_m"`
	C1Cm    float64 `json:"c1_cm"` // column size in the analysis direction
	C2Cm    float64 `json:"c2_cm"` // transverse column size

	// Spans around the column, center to center
	L1LeftM   float64 `json:"l1_left_m"`
	L1RightM  float64 `json:"l1_right_m"`
	L2TopM    float64 `json:"l2_top_m"`
	L2BottomM float64 `json:"l2_bottom_m"`

	// Materials
	FcKsc   float64 `json:"fc_ksc"`
	FyGrade Grade   `json:"fy_grade"`

	// Loads
	DeadKgM2       float64 `json:"dead_kg_m2"` // superimposed dead load
	LiveKgM2       float64 `json:"live_kg_m2"`
	AutoSelfWeight bool    `json:"auto_self_weight"`
	LFDead         float64 `json:"lf_dead"`
	LFLive         float64 `json:"lf_live"`

	// Boundary conditions
	Joint       JointType `json:"joint_type"`
	HUpperM     float64   `json:"h_upper_m"`
	HLowerM     float64   `json:"h_lower_m"`
	FarEndUpper FarEnd    `json:"far_end_upper"`
	FarEndLower FarEnd    `json:"far_end_lower"`

	// Plan location and edge condition
	Location        Location `json:"location"`
	HasEdgeBeam     bool     `json:"has_edge_beam"`
	EdgeBeamWidthCm float64  `json:"edge_beam_width_cm"`
	EdgeBeamDepthCm float64  `json:"edge_beam_depth_cm"`

	// Cantilever overhangs
	HasCantLeft  bool    `json:"has_cant_left"`
	CantLeftM    float64 `json:"cant_left_m"`
	HasCantRight bool    `json:"has_cant_right"`
	CantRightM   float64 `json:"cant_right_m"`
}

// Geom is the normalized plan geometry in meters.
type Geom struct {
	L1      float64 `json:"l1"` // analysis span, center to center
	L2      float64 `json:"l2"` // transverse frame width (average of adjacent spans)
	Ln      float64 `json:"ln"` // clear span in the analysis direction
	L1Left  float64 `json:"l1_left"`
	L1Right float64 `json:"l1_right"`
	L2Top   float64 `json:"l2_top"`
	L2Bot   float64 `json:"l2_bottom"`
	C1      float64 `json:"c1"`
	C2      float64 `json:"c2"`
	HSlab   float64 `json:"h_slab"`
	HDrop   float64 `json:"h_drop"` // total thickness at the drop (= HSlab when no drop)
	HasDrop bool    `json:"has_drop"`
	DropW1  float64 `json:"drop_w1"`
	DropW2  float64 `json:"drop_w2"`
}

// Panel captures the case flags that route coefficient-table lookups.
type Panel struct {
	Location      Location `json:"location"`
	HasEdgeBeam   bool     `json:"has_edge_beam"`
	EdgeBeamWidth float64  `json:"edge_beam_width"` // m
	EdgeBeamDepth float64  `json:"edge_beam_depth"` // m
}

// Vertical holds the column-segment boundary conditions.
type Vertical struct {
	HUpper      float64   `json:"h_upper"` // zero at a roof joint
	HLower      float64   `json:"h_lower"`
	IsRoof      bool      `json:"is_roof"`
	FarEndUpper FarEnd    `json:"far_end_upper"`
	FarEndLower FarEnd    `json:"far_end_lower"`
	Joint       JointType `json:"joint_type"`
}

// Materials in working units. Stresses carried in both ksc and Pa.
type Materials struct {
	FcKsc float64 `json:"fc_ksc"`
	FyKsc float64 `json:"fy_ksc"`
	FcPa  float64 `json:"fc_pa"`
	FyPa  float64 `json:"fy_pa"`
	EcPa  float64 `json:"ec_pa"` // 4700·√fc(MPa), converted to Pa
}

// Loads as area pressures in Pa (N/m²). DeadPa includes self-weight when
// auto self-weight was requested.
type Loads struct {
	DeadPa float64 `json:"dead_pa"`
	LivePa float64 `json:"live_pa"`
	WuPa   float64 `json:"wu_pa"`
	LFDead float64 `json:"lf_dead"`
	LFLive float64 `json:"lf_live"`
}

// Stiffness holds the slope-deflection column stiffness inputs (N·m/rad).
type Stiffness struct {
	KUpper   float64 `json:"k_upper"`
	KLower   float64 `json:"k_lower"`
	SumK     float64 `json:"sum_k"`
	KFacUp   float64 `json:"k_factor_upper"` // 4 fixed, 3 pinned
	KFacLo   float64 `json:"k_factor_lower"`
	IcColumn float64 `json:"ic_column"` // m⁴
}

// Cantilever carries the overhang geometry and its balancing moments.
// The moments are informational metadata only; they are not fed into the
// DDM or EFM pipelines.
type Cantilever struct {
	HasLeft  bool    `json:"has_left"`
	LLeft    float64 `json:"l_left"`
	HasRight bool    `json:"has_right"`
	LRight   float64 `json:"l_right"`
	MLeftNm  float64 `json:"m_left_nm"` // wu·L2·Lc²/2
	MRightNm float64 `json:"m_right_nm"`
}

// Concept is a human-readable summary of the joint model.
type Concept struct {
	Joint             string `json:"joint"`
	RotationRestraint string `json:"rotation_restraint"`
	UnbalancedMoments string `json:"unbalanced_moments"`
	CantileverEffect  string `json:"cantilever_effect"`
}

// Record is the normalized panel description every engine consumes.
type Record struct {
	Geom       Geom       `json:"geom"`
	Panel      Panel      `json:"panel"`
	Vertical   Vertical   `json:"vertical"`
	Mat        Materials  `json:"materials"`
	Loads      Loads      `json:"loads"`
	Stiffness  Stiffness  `json:"stiffness"`
	Cantilever Cantilever `json:"cantilever"`
	Concept    Concept    `json:"concept"`
}

func fyKsc(g Grade) (float64, error) {
	switch g {
	case SD30:
		return 3000, nil
	case SD40, "":
		return 4000, nil
	case SD50:
		return 5000, nil
	}
	return 0, fmt.Errorf("unknown steel grade %q", g)
}

func kFactor(f FarEnd) (float64, error) {
	switch f {
	case Pinned:
		return 3, nil
	case Fixed, "":
		return 4, nil
	}
	return 0, fmt.Errorf("unknown far-end condition %q", f)
}

// Prepare normalizes a raw panel description into a consistent metric
// Record. It is the one place that rejects malformed input; everything
// downstream reports findings as values, never as errors.
func Prepare(in Input, u units.Config) (Record, error) {
	if in.HSlabCm <= 0 || in.C1Cm <= 0 || in.C2Cm <= 0 {
		return Record{}, fmt.Errorf("invalid member sizes")
	}
	if in.FcKsc <= 0 {
		return Record{}, fmt.Errorf("invalid concrete strength")
	}
	if in.L1RightM <= 0 || in.L2TopM <= 0 {
		return Record{}, fmt.Errorf("invalid spans")
	}
	if in.HLowerM <= 0 {
		return Record{}, fmt.Errorf("invalid lower storey height")
	}

	loc := in.Location
	if loc == "" {
		loc = Interior
	}
	switch loc {
	case Interior, Edge, Corner:
	default:
		return Record{}, fmt.Errorf("unknown plan location %q", in.Location)
	}

	joint := in.Joint
	if joint == "" {
		joint = Intermediate
	}
	switch joint {
	case Intermediate, Roof:
	default:
		return Record{}, fmt.Errorf("unknown joint type %q", in.Joint)
	}

	fy, err := fyKsc(in.FyGrade)
	if err != nil {
		return Record{}, err
	}
	kUp, err := kFactor(in.FarEndUpper)
	if err != nil {
		return Record{}, err
	}
	kLo, err := kFactor(in.FarEndLower)
	if err != nil {
		return Record{}, err
	}

	// Plan location fixes which spans exist: edge and corner columns have
	// no left span, corner columns additionally miss the bottom half.
	l1l, l1r := in.L1LeftM, in.L1RightM
	l2t, l2b := in.L2TopM, in.L2BottomM
	if loc != Interior {
		l1l = 0
	}
	if loc == Corner {
		l2b = 0
	}

	hs := in.HSlabCm * u.CmToM
	hd := hs
	if in.HasDrop {
		if in.HDropCm <= 0 || in.DropW1M <= 0 || in.DropW2M <= 0 {
			return Record{}, fmt.Errorf("invalid drop panel dimensions")
		}
		hd = (in.HSlabCm + in.HDropCm) * u.CmToM
	}
	c1 := in.C1Cm * u.CmToM
	c2 := in.C2Cm * u.CmToM

	l1 := math.Max(l1l, l1r)
	// ACI frame width: average of the adjacent transverse spans. A missing
	// side contributes nothing, so an edge frame gets a half strip.
	l2 := (l2t + l2b) / 2

	geom := Geom{
		L1: l1, L2: l2, Ln: l1 - c1,
		L1Left: l1l, L1Right: l1r, L2Top: l2t, L2Bot: l2b,
		C1: c1, C2: c2,
		HSlab: hs, HDrop: hd, HasDrop: in.HasDrop,
		DropW1: in.DropW1M, DropW2: in.DropW2M,
	}
	if !in.HasDrop {
		geom.DropW1, geom.DropW2 = 0, 0
	}

	// Materials: Ec from the ACI MPa formula, carried in Pa.
	fcMPa := in.FcKsc * u.KscToMPa
	ecPa := 4700 * math.Sqrt(fcMPa) * 1e6
	mat := Materials{
		FcKsc: in.FcKsc,
		FyKsc: fy,
		FcPa:  in.FcKsc * u.KscToPa,
		FyPa:  fy * u.KscToPa,
		EcPa:  ecPa,
	}

	// Loads. Zero factors fall back to the usual 1.4DL + 1.7LL pair.
	lfD, lfL := in.LFDead, in.LFLive
	if lfD <= 0 {
		lfD = 1.4
	}
	if lfL <= 0 {
		lfL = 1.7
	}
	swPa := 0.0
	if in.AutoSelfWeight {
		swPa = hs * u.ConcreteDensity * u.G
	}
	deadPa := swPa + in.DeadKgM2*u.KgToN
	livePa := in.LiveKgM2 * u.KgToN
	loads := Loads{
		DeadPa: deadPa,
		LivePa: livePa,
		WuPa:   lfD*deadPa + lfL*livePa,
		LFDead: lfD,
		LFLive: lfL,
	}

	// Column stiffness inputs. A roof joint has no upper column.
	isRoof := joint == Roof
	hUp := in.HUpperM
	if isRoof {
		hUp = 0
	}
	ic := c2 * math.Pow(c1, 3) / 12
	kUpper, kLower := 0.0, 0.0
	if hUp > 0 {
		kUpper = kUp * ecPa * ic / hUp
	}
	if in.HLowerM > 0 {
		kLower = kLo * ecPa * ic / in.HLowerM
	}

	vert := Vertical{
		HUpper: hUp, HLower: in.HLowerM, IsRoof: isRoof,
		FarEndUpper: normFarEnd(in.FarEndUpper),
		FarEndLower: normFarEnd(in.FarEndLower),
		Joint:       joint,
	}
	stiff := Stiffness{
		KUpper: kUpper, KLower: kLower, SumK: kUpper + kLower,
		KFacUp: kUp, KFacLo: kLo, IcColumn: ic,
	}

	cant := Cantilever{
		HasLeft: in.HasCantLeft, LLeft: in.CantLeftM,
		HasRight: in.HasCantRight, LRight: in.CantRightM,
	}
	wLine := loads.WuPa * l2 // N/m on the design strip
	if cant.HasLeft && cant.LLeft > 0 {
		cant.MLeftNm = wLine * cant.LLeft * cant.LLeft / 2
	}
	if cant.HasRight && cant.LRight > 0 {
		cant.MRightNm = wLine * cant.LRight * cant.LRight / 2
	}

	panel := Panel{
		Location:    loc,
		HasEdgeBeam: in.HasEdgeBeam && loc != Interior,
	}
	if panel.HasEdgeBeam {
		if in.EdgeBeamWidthCm <= 0 || in.EdgeBeamDepthCm <= 0 {
			return Record{}, fmt.Errorf("invalid edge beam dimensions")
		}
		panel.EdgeBeamWidth = in.EdgeBeamWidthCm * u.CmToM
		panel.EdgeBeamDepth = in.EdgeBeamDepthCm * u.CmToM
	}

	rec := Record{
		Geom: geom, Panel: panel, Vertical: vert,
		Mat: mat, Loads: loads, Stiffness: stiff, Cantilever: cant,
	}
	rec.Concept = buildConcept(rec)
	return rec, nil
}

func normFarEnd(f FarEnd) FarEnd {
	if f == "" {
		return Fixed
	}
	return f
}

func buildConcept(r Record) Concept {
	restraint := fmt.Sprintf("Bot: %s (%.0fEI/L)", r.Vertical.FarEndLower, r.Stiffness.KFacLo)
	unbal := "Distributed to top and bottom columns"
	if r.Vertical.IsRoof {
		unbal = "To bottom column only"
	} else {
		restraint = fmt.Sprintf("Top: %s (%.0fEI/L) + %s", r.Vertical.FarEndUpper, r.Stiffness.KFacUp, restraint)
	}
	return Concept{
		Joint:             string(r.Vertical.Joint),
		RotationRestraint: restraint,
		UnbalancedMoments: unbal,
		CantileverEffect: fmt.Sprintf(
			"Counter-acting moments: L=%.1f kN.m, R=%.1f kN.m",
			r.Cantilever.MLeftNm/1000, r.Cantilever.MRightNm/1000),
	}
}
