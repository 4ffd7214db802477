package eternae

// Light is a single directional light. Scenes carry zero or one: a nil
// light makes the cel shader output DebugBlue so an unbound light reads as
// a flat diagnostic color instead of darkness.
type Light struct {
	// Direction points from the surface toward the light, unit length.
	Direction Vector
	Color     Color
	Ambient   Color

	// Shadow state, filled by the depth pass. A nil ShadowMap means the
	// light casts no shadows and every fragment is fully lit.
	CastShadows    bool
	ViewProjection Matrix
	ShadowMap      *DepthMap
	Shadow         ShadowParams
}

// NewSunLight returns a warm directional sun with cool ambient fill, the
// stock outdoor setup.
func NewSunLight(direction Vector) *Light {
	return &Light{
		Direction:   direction.Normalize(),
		Color:       Color{1.0, 0.95, 0.85, 1},
		Ambient:     Color{0.14, 0.16, 0.21, 1},
		CastShadows: true,
		Shadow:      NewShadowParams(),
	}
}

// Visibility samples the light's shadow map for the fragment's light-space
// coordinate. Lights without a map are fully lit.
func (l *Light) Visibility(shadowCoord VectorW, ndotl float64) float64 {
	if l == nil || !l.CastShadows || l.ShadowMap == nil {
		return 1
	}
	return l.Shadow.Visibility(l.ShadowMap, shadowCoord, ndotl)
}
