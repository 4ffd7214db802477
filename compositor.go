package eternae

import "math"

// Compositing of the final fragment color. Pure functions; all policy
// (fallbacks, shadow tinting, rim masking, output clamp) lives here so the
// shaders stay thin.

// fallbackLightColor replaces a zero light color so an unconfigured light
// still illuminates instead of rendering the scene black.
var fallbackLightColor = White

// RimTerm computes the Fresnel-style edge highlight for a surface normal
// and view direction (surface toward camera, both unit length). It is 0
// when the view direction equals the normal and rises toward the rim color
// as they approach perpendicular. When p.MaskedByShadow is set the term is
// scaled by the shadow visibility.
func RimTerm(p RimParams, normal, view Vector, visibility float64) Color {
	if !p.Enabled {
		return Color{}
	}
	rim := 1 - math.Max(normal.Dot(view), 0)
	f := Smoothstep(p.Edge0, p.Edge1, rim)
	if p.MaskedByShadow {
		f *= visibility
	}
	return p.Color.MulScalar(f)
}

// Composite combines base color, diffuse intensity, shadow visibility and
// ambient into the final color:
//
//	final = base * (ambient + intensity * lightColor * visibility) + rim
//
// shadowTint, when non-zero, tints the diffuse term inside shadow instead
// of extinguishing it: the diffuse contribution is the lerp from
// tinted-by-shadowTint to fully lit by visibility.
//
// Zero light and base colors are replaced by documented fallbacks. RGB is
// clamped to 1.0 on output; alpha passes through from the base color.
func Composite(base, ambient, lightColor Color, intensity, visibility float64, shadowTint, rim Color) Color {
	if base.IsZero() {
		base = fallbackColor.Alpha(base.A)
	}
	if lightColor.IsZero() {
		lightColor = fallbackLightColor
	}
	diffuse := lightColor.MulScalar(intensity)
	shadowed := diffuse.Mul(shadowTint)
	light := ambient.Add(shadowed.Lerp(diffuse, visibility))
	out := base.Mul(light).Add(rim)
	return out.Min(White).Alpha(base.A)
}
