package ddm

// Transverse distribution: what fraction of each longitudinal moment the
// column strip takes, per ACI 318 tables 8.10.5.1/8.10.5.2/8.10.5.5.
// The tables are keyed by l2/l1 and by the beam stiffness term
// alpha_f1·l2/l1; here alpha_f1 is carried as a 0..1 row-blend so a slab
// with stiff longitudinal beams can be handled by the same lookup.

type momentLoc int

const (
	locNegInterior momentLoc = iota
	locPositive
	locNegExterior
)

// lerp interpolates linearly between (x0,y0) and (x1,y1), clamping x to
// the interval. Every table lookup in this package goes through it.
func lerp(x, x0, y0, x1, y1 float64) float64 {
	if x0 == x1 {
		return y0
	}
	if x <= x0 {
		return y0
	}
	if x >= x1 {
		return y1
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// tableRow evaluates one ACI table row given its values at
// l2/l1 = 0.5, 1.0 and 2.0.
func tableRow(l2l1, v05, v10, v20 float64) float64 {
	if l2l1 <= 1.0 {
		return lerp(l2l1, 0.5, v05, 1.0, v10)
	}
	return lerp(l2l1, 1.0, v10, 2.0, v20)
}

// colStripPercent returns the column-strip share (0..1) of the moment at
// the given location. alphaF1 blends between the alpha_f1·l2/l1 = 0 row
// and the >= 1.0 row; betaT only matters for the exterior negative
// moment, where it interpolates from 100% (no edge beam) down to the
// beam-restrained row as betaT approaches 2.5. Both interpolations clamp
// outside their table range.
func colStripPercent(loc momentLoc, l2l1, alphaF1, betaT float64) float64 {
	switch loc {
	case locNegInterior:
		noBeam := 0.75
		withBeam := tableRow(l2l1, 0.90, 0.75, 0.45)
		return lerp(alphaF1, 0, noBeam, 1, withBeam)

	case locPositive:
		noBeam := 0.60
		withBeam := tableRow(l2l1, 0.90, 0.75, 0.45)
		return lerp(alphaF1, 0, noBeam, 1, withBeam)

	case locNegExterior:
		// Fully restrained row at betaT >= 2.5.
		noBeam := 0.75
		withBeam := tableRow(l2l1, 0.90, 0.75, 0.45)
		restrained := lerp(alphaF1, 0, noBeam, 1, withBeam)
		// Nested interpolation: betaT first, the row itself already
		// interpolated over l2/l1.
		return lerp(betaT, 0, 1.00, 2.5, restrained)
	}
	return 0
}

// stripWidths returns the column-strip and middle-strip widths in meters.
// The column strip is a quarter of the lesser span each side of the
// column line; the middle strip is the rest of the frame width.
func stripWidths(l1, l2 float64) (cs, ms float64) {
	cs = minf(l1, l2) / 2
	if cs > l2 {
		cs = l2
	}
	return cs, l2 - cs
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
