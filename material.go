package eternae

// RimParams configures the Fresnel-style edge highlight.
type RimParams struct {
	Enabled bool
	// Edge0 and Edge1 are the smoothstep thresholds applied to 1-N.V.
	Edge0 float64
	Edge1 float64
	Color Color
	// MaskedByShadow multiplies the rim by shadow visibility, keeping fully
	// shadowed regions a flat silhouette.
	MaskedByShadow bool
}

// NewRimParams returns the velvet-rim defaults: white at 0.4 strength over
// the 0.6..1.0 edge, masked by shadow.
func NewRimParams() RimParams {
	return RimParams{
		Enabled:        true,
		Edge0:          0.6,
		Edge1:          1.0,
		Color:          White.MulScalar(0.4).Alpha(0),
		MaskedByShadow: true,
	}
}

// Material holds the per-object shading parameters consumed by CelShader.
type Material struct {
	// Color is the base object color; a zero color is treated as unset and
	// replaced with the fallback grey.
	Color   Color
	Texture Texture

	// Diffuse selects the intensity model. Nil means plain half-Lambert.
	Diffuse DiffuseModel

	// ReceiveShadows gates shadow-map sampling for this object.
	ReceiveShadows bool
	// ShadowTint multiplies the diffuse term inside shadowed regions. The
	// default black reduces to plain visibility scaling.
	ShadowTint Color

	Rim RimParams

	// OutlineWidth, when positive, enables the inverted-hull outline pass:
	// the silhouette is the mesh inflated along its normals by this width,
	// drawn front-culled in OutlineColor.
	OutlineWidth float64
	OutlineColor Color
}

// NewMaterial returns a material with the stock defaults: half-Lambert
// diffuse, shadows received, rim off, no outline.
func NewMaterial(color Color) *Material {
	return &Material{
		Color:          color,
		Diffuse:        HalfLambert{},
		ReceiveShadows: true,
		ShadowTint:     Black.Alpha(0),
		OutlineColor:   HexColor("000000"),
	}
}

// fallbackColor is substituted for zero "unset" base colors.
var fallbackColor = HexColor("777")

func (m *Material) baseColor() Color {
	if m.Color.IsZero() {
		return fallbackColor
	}
	return m.Color
}

func (m *Material) diffuseModel() DiffuseModel {
	if m.Diffuse == nil {
		return HalfLambert{}
	}
	return m.Diffuse
}
