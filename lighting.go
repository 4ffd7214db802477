package eternae

import "math"

// DefaultBandCount is substituted when a toon material asks for zero or
// negative bands.
const DefaultBandCount = 3

// DiffuseModel converts the raw N.L cosine term into a diffuse intensity.
// Implementations take ndotl in [-1,1] and return an intensity in [0,1],
// non-decreasing in ndotl. Materials pick the model; terrain and characters
// use different ones.
type DiffuseModel interface {
	Intensity(ndotl float64) float64
}

// HalfLambert remaps the cosine term from [-1,1] to [0,1] instead of
// clamping it, so back-facing surfaces fall off to dark without the hard
// black terminator of plain Lambert. Squared applies the softer
// falloff variant.
type HalfLambert struct {
	Squared bool
}

func (m HalfLambert) Intensity(ndotl float64) float64 {
	i := ndotl*0.5 + 0.5
	if m.Squared {
		i *= i
	}
	return i
}

// ToonRamp produces a single anti-aliased lit/unlit edge around Threshold.
// Softness is the half-width of the smoothed edge; zero gives a hard cut.
type ToonRamp struct {
	Threshold float64
	Softness  float64
}

func (m ToonRamp) Intensity(ndotl float64) float64 {
	i := math.Max(ndotl, 0)
	return Smoothstep(m.Threshold-m.Softness, m.Threshold+m.Softness, i)
}

// ToonBands quantizes the half-Lambert intensity into Bands discrete
// levels. The exact endpoint ndotl = 1 maps to a fully lit 1.0, one level
// above the top band, matching the floor quantizer it mirrors. Floor keeps
// the darkest band above true black. Bands < 1 falls back to
// DefaultBandCount.
type ToonBands struct {
	Bands int
	Floor float64
}

func (m ToonBands) Intensity(ndotl float64) float64 {
	bands := m.Bands
	if bands < 1 {
		bands = DefaultBandCount
	}
	i := ndotl*0.5 + 0.5
	banded := math.Floor(i*float64(bands)) / float64(bands)
	banded = math.Min(banded, 1)
	return math.Max(banded, m.Floor)
}

// CelSteps reproduces the fixed four-step ramp of the original cel
// shader: NdotL thresholds 0.95/0.5/0.2 mapping to 1.0/0.8/0.5/0.3.
type CelSteps struct{}

func (CelSteps) Intensity(ndotl float64) float64 {
	i := math.Max(ndotl, 0)
	switch {
	case i > 0.95:
		return 1.0
	case i > 0.5:
		return 0.8
	case i > 0.2:
		return 0.5
	default:
		return 0.3
	}
}
