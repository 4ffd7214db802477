package eternae

// DepthMap is a read-only depth texture in [0,1], produced by a depth-only
// pass from the light's point of view. Row 0 is the top scanline, matching
// the screen matrix's Y flip; Sample accounts for that.
type DepthMap struct {
	Width  int
	Height int
	Depth  []float64
}

// NewDepthMap copies a context depth buffer. Untouched entries (cleared to
// +Inf/MaxFloat64) read as farthest depth so empty sky never occludes.
func NewDepthMap(width, height int, depth []float64) *DepthMap {
	d := make([]float64, len(depth))
	for i, z := range depth {
		if z > 1 {
			z = 1
		}
		d[i] = z
	}
	return &DepthMap{width, height, d}
}

// At returns the stored depth at a texel, clamping to the edge.
func (m *DepthMap) At(x, y int) float64 {
	x = ClampInt(x, 0, m.Width-1)
	y = ClampInt(y, 0, m.Height-1)
	return m.Depth[y*m.Width+x]
}

// Sample returns the nearest-texel depth at texture coordinates in [0,1],
// v increasing upward.
func (m *DepthMap) Sample(u, v float64) float64 {
	x := int(u * float64(m.Width))
	y := int((1 - v) * float64(m.Height))
	return m.At(x, y)
}

// TexelSize returns the UV footprint of one texel.
func (m *DepthMap) TexelSize() (du, dv float64) {
	return 1 / float64(m.Width), 1 / float64(m.Height)
}

// TapMode selects the shadow filter kernel.
type TapMode int

const (
	// Taps1 is a single comparison: a hard binary edge for cel shading.
	Taps1 TapMode = iota
	// Taps2x2 averages four comparisons half a texel apart.
	Taps2x2
	// Taps3x3 averages nine comparisons one texel apart, the softest edge.
	Taps3x3
)

var tapOffsets = map[TapMode][]float64{
	Taps1:   {0},
	Taps2x2: {-0.5, 0.5},
	Taps3x3: {-1, 0, 1},
}

// ShadowParams configures shadow-map comparison. The zero value disables
// biasing entirely; NewShadowParams carries the usual defaults.
type ShadowParams struct {
	// Bias is the constant depth offset subtracted before comparison,
	// suppressing self-shadow acne.
	Bias float64
	// SlopeBias, when positive, adds a further bias scaled by 1-N.L so
	// surfaces at grazing angles to the light get a deeper offset.
	SlopeBias float64
	// Taps selects the PCF kernel.
	Taps TapMode
}

func NewShadowParams() ShadowParams {
	return ShadowParams{Bias: 0.0015}
}

// Visibility returns the shadow factor in [0,1] for a fragment: 0 fully
// occluded, 1 fully lit. coord is the undivided light-clip-space position
// of the fragment; ndotl is the surface's cosine to the light, used only
// for slope-scaled biasing.
//
// Fragments outside the light frustum, behind the far plane, or with a
// degenerate W are treated as fully lit: the map only covers a bounded
// frustum and anything beyond it must not read out of bounds or darken.
func (p ShadowParams) Visibility(m *DepthMap, coord VectorW, ndotl float64) float64 {
	if m == nil || coord.W == 0 {
		return 1
	}
	ndc := coord.DivScalar(coord.W)
	depth := ndc.Z*0.5 + 0.5
	if depth > 1 {
		return 1
	}
	u := ndc.X*0.5 + 0.5
	v := ndc.Y*0.5 + 0.5
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 1
	}
	bias := p.Bias
	if p.SlopeBias > 0 {
		bias += p.SlopeBias * (1 - Clamp(ndotl, 0, 1))
	}
	du, dv := m.TexelSize()
	offsets := tapOffsets[p.Taps]
	sum := 0.0
	for _, oy := range offsets {
		for _, ox := range offsets {
			stored := m.Sample(u+ox*du, v+oy*dv)
			if depth-bias <= stored {
				sum++
			}
		}
	}
	n := float64(len(offsets) * len(offsets))
	return sum / n
}
