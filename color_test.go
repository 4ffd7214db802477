package eternae

import (
	"testing"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"000000", Color{0, 0, 0, 1}},
		{"#ffffff", Color{1, 1, 1, 1}},
		{"777", Color{0x77 / 255.0, 0x77 / 255.0, 0x77 / 255.0, 1}},
		{"#f00", Color{1, 0, 0, 1}},
		{"not-a-color", White},
	}
	for _, tc := range tests {
		got := HexColor(tc.in)
		if !near(got.R, tc.want.R, 1e-12) ||
			!near(got.G, tc.want.G, 1e-12) ||
			!near(got.B, tc.want.B, 1e-12) ||
			got.A != tc.want.A {
			t.Errorf("HexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorIsZero(t *testing.T) {
	if !(Color{}).IsZero() {
		t.Error("zero color should be zero")
	}
	if !(Color{A: 1}).IsZero() {
		t.Error("opaque black counts as unset")
	}
	if (Color{R: 0.1, A: 1}).IsZero() {
		t.Error("non-black color should not be zero")
	}
	if (Color{R: -0.5, G: 0.25, B: 0.25, A: 1}).IsZero() {
		t.Error("negative channels must not cancel positive ones to unset")
	}
}

func TestColorClampOnOutput(t *testing.T) {
	c := Color{1.5, -0.2, 0.5, 1}
	n := c.NRGBA()
	if n.R != 255 || n.G != 0 || n.B != 127 {
		t.Errorf("NRGBA = %v, want clamped (255,0,127)", n)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name            string
		edge0, edge1, x float64
		expected        float64
	}{
		{"below", 0.2, 0.8, 0.1, 0},
		{"above", 0.2, 0.8, 0.9, 1},
		{"midpoint", 0.2, 0.8, 0.5, 0.5},
		{"degenerate edges below", 0.5, 0.5, 0.4, 0},
		{"degenerate edges above", 0.5, 0.5, 0.6, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Smoothstep(tc.edge0, tc.edge1, tc.x)
			if !near(got, tc.expected, 1e-12) {
				t.Errorf("Smoothstep(%v,%v,%v) = %v, want %v", tc.edge0, tc.edge1, tc.x, got, tc.expected)
			}
		})
	}
}

func TestVectorReflect(t *testing.T) {
	v := Vector{1, -1, 0}.Normalize()
	n := Vector{0, 1, 0}
	r := v.Reflect(n)
	want := Vector{1, 1, 0}.Normalize()
	if !near(r.X, want.X, 1e-12) || !near(r.Y, want.Y, 1e-12) {
		t.Errorf("reflect = %v, want %v", r, want)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	z := Vector{}
	if got := z.Normalize(); got != z {
		t.Errorf("zero vector normalized to %v", got)
	}
}
