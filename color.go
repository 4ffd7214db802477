package eternae

import (
	"image/color"
	"math"
	"strconv"
)

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}

	// DebugBlue is the "no light bound" diagnostic color. A shader that has
	// nothing sensible to compute outputs this flat color so the failure is
	// visible on screen instead of rendering black.
	DebugBlue = Color{0.1, 0.2, 1, 1}
)

// Color is an RGBA color with float64 components, unclamped until output.
type Color struct {
	R, G, B, A float64
}

// MakeColor converts a standard library color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// HexColor parses colors of the form "#ff8844", "ff8844", "#f84" or "f84".
// Unparseable input yields White so a bad literal stays visible.
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b string
	switch len(x) {
	case 3:
		r = x[0:1] + x[0:1]
		g = x[1:2] + x[1:2]
		b = x[2:3] + x[2:3]
	case 6:
		r = x[0:2]
		g = x[2:4]
		b = x[4:6]
	default:
		return White
	}
	ri, err1 := strconv.ParseInt(r, 16, 0)
	gi, err2 := strconv.ParseInt(g, 16, 0)
	bi, err3 := strconv.ParseInt(b, 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return White
	}
	return Color{float64(ri) / 255, float64(gi) / 255, float64(bi) / 255, 1}
}

// NRGBA converts to 8-bit non-premultiplied RGBA, clamping to [0,1].
func (a Color) NRGBA() color.NRGBA {
	r := uint8(Clamp(a.R, 0, 1) * 255)
	g := uint8(Clamp(a.G, 0, 1) * 255)
	b := uint8(Clamp(a.B, 0, 1) * 255)
	alpha := uint8(Clamp(a.A, 0, 1) * 255)
	return color.NRGBA{r, g, b, alpha}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b, a.A * b}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b, a.A / b}
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{math.Max(a.R, b.R), math.Max(a.G, b.G), math.Max(a.B, b.B), math.Max(a.A, b.A)}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Alpha returns the color with its alpha replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

// IsZero reports whether the RGB magnitude is effectively zero. Zero-valued
// color uniforms are treated as "unset" and replaced by fallbacks rather
// than rendered black. Channels are compared by magnitude so negative
// components cannot cancel against positive ones.
func (a Color) IsZero() bool {
	return math.Abs(a.R)+math.Abs(a.G)+math.Abs(a.B) < 1e-9
}
