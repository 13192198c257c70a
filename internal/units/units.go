package units

// Config carries the unit conversion constants and material constants used
// across the slab calculators. It is a plain value: construct one with
// Default() and pass it down, never mutate it.
type Config struct {
	G               float64 // standard gravity, m/s²
	CmToM           float64
	KgToN           float64 // kgf -> N
	KscToPa         float64 // kg/cm² -> Pa
	KscToMPa        float64 // kg/cm² -> MPa
	ConcreteDensity float64 // kg/m³
}

// Default returns the metric constant set (kgf/ksc practice units).
func Default() Config {
	g := 9.80665
	return Config{
		G:               g,
		CmToM:           0.01,
		KgToN:           g,
		KscToPa:         98066.5,
		KscToMPa:        0.0980665,
		ConcreteDensity: 2400,
	}
}

// KscFromPa converts a stress in Pa back to ksc.
func (c Config) KscFromPa(pa float64) float64 { return pa / c.KscToPa }

// KgFromPa converts an area load in Pa (N/m²) back to kg/m².
func (c Config) KgFromPa(pa float64) float64 { return pa / c.KgToN }
