package eternae

import (
	"math"
	"testing"
)

// uniformDepthMap builds a size x size map with every texel at depth d.
func uniformDepthMap(size int, d float64) *DepthMap {
	depth := make([]float64, size*size)
	for i := range depth {
		depth[i] = d
	}
	return NewDepthMap(size, size, depth)
}

// center is the light-clip-space coordinate mapping to uv (0.5, 0.5) at
// the given stored-depth comparison value.
func center(depth float64) VectorW {
	return VectorW{0, 0, depth*2 - 1, 1}
}

func TestVisibilityFrustumExit(t *testing.T) {
	// Fully occluding map: every lookup that actually samples returns 0.
	m := uniformDepthMap(4, 0)
	p := ShadowParams{}

	tests := []struct {
		name  string
		coord VectorW
	}{
		{"beyond far plane", VectorW{0, 0, 3, 1}},
		{"right of frustum", VectorW{3, 0, 0, 1}},
		{"left of frustum", VectorW{-3, 0, 0, 1}},
		{"above frustum", VectorW{0, 3, 0, 1}},
		{"degenerate w", VectorW{0, 0, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Visibility(m, tc.coord, 1); got != 1 {
				t.Errorf("visibility = %v, want 1 (fully lit outside frustum)", got)
			}
		})
	}

	t.Run("nil map", func(t *testing.T) {
		if got := p.Visibility(nil, center(0.5), 1); got != 1 {
			t.Errorf("visibility = %v, want 1 for nil map", got)
		}
	})
}

func TestVisibilityHardEdge(t *testing.T) {
	m := uniformDepthMap(4, 0.4)
	p := ShadowParams{Taps: Taps1}

	if got := p.Visibility(m, center(0.6), 1); got != 0 {
		t.Errorf("fragment behind occluder: visibility = %v, want 0", got)
	}
	if got := p.Visibility(m, center(0.3), 1); got != 1 {
		t.Errorf("fragment in front of occluder: visibility = %v, want 1", got)
	}
}

func TestPCF3x3IsExactTapAverage(t *testing.T) {
	// 3x3 map; a centered lookup with one-texel offsets visits each texel
	// exactly once. Three texels pass the comparison, six fail, so the
	// result must be exactly 3/9 with no weighting.
	depth := []float64{
		0.6, 0.4, 0.4,
		0.4, 0.6, 0.4,
		0.4, 0.4, 0.6,
	}
	m := NewDepthMap(3, 3, depth)
	p := ShadowParams{Taps: Taps3x3}

	got := p.Visibility(m, center(0.5), 1)
	if !near(got, 3.0/9, 1e-12) {
		t.Errorf("visibility = %v, want %v", got, 3.0/9)
	}
}

func TestPCF2x2IsExactTapAverage(t *testing.T) {
	// 2x2 map; half-texel offsets from the center visit each texel once.
	depth := []float64{
		0.6, 0.4,
		0.4, 0.4,
	}
	m := NewDepthMap(2, 2, depth)
	p := ShadowParams{Taps: Taps2x2}

	got := p.Visibility(m, center(0.5), 1)
	if !near(got, 1.0/4, 1e-12) {
		t.Errorf("visibility = %v, want %v", got, 1.0/4)
	}
}

func TestBiasSuppressesAcne(t *testing.T) {
	// A fragment fractionally behind its own shadow-map depth, as happens
	// from depth-buffer quantization.
	m := uniformDepthMap(4, 0.5)
	coord := center(0.5001)

	noBias := ShadowParams{}
	if got := noBias.Visibility(m, coord, 1); got != 0 {
		t.Errorf("without bias: visibility = %v, want 0 (acne visible)", got)
	}
	biased := NewShadowParams()
	if got := biased.Visibility(m, coord, 1); got != 1 {
		t.Errorf("with bias: visibility = %v, want 1", got)
	}
}

func TestSlopeScaledBias(t *testing.T) {
	m := uniformDepthMap(4, 0.5)
	coord := center(0.505)
	p := ShadowParams{Bias: 0.001, SlopeBias: 0.01}

	// Facing the light: only the constant bias applies and the offset
	// fragment stays shadowed.
	if got := p.Visibility(m, coord, 1); got != 0 {
		t.Errorf("facing light: visibility = %v, want 0", got)
	}
	// Grazing: the slope term deepens the bias past the offset.
	if got := p.Visibility(m, coord, 0); got != 1 {
		t.Errorf("grazing: visibility = %v, want 1", got)
	}
}

func TestDepthMapClampsClearValue(t *testing.T) {
	depth := []float64{math.MaxFloat64, 0.25, math.MaxFloat64, 0.75}
	m := NewDepthMap(2, 2, depth)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if d := m.At(x, y); d < 0 || d > 1 {
				t.Errorf("At(%d,%d) = %v, want within [0,1]", x, y, d)
			}
		}
	}
}

func TestDepthMapSampleOrientation(t *testing.T) {
	// Row 0 is the top scanline; v=1 samples it.
	depth := []float64{
		0.1, 0.1,
		0.9, 0.9,
	}
	m := NewDepthMap(2, 2, depth)
	if got := m.Sample(0.25, 0.75); got != 0.1 {
		t.Errorf("top sample = %v, want 0.1", got)
	}
	if got := m.Sample(0.25, 0.25); got != 0.9 {
		t.Errorf("bottom sample = %v, want 0.9", got)
	}
}
