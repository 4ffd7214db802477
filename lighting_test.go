package eternae

import (
	"math"
	"testing"
)

func TestHalfLambertBounded(t *testing.T) {
	// Sample N over the unit sphere against a fixed L; the remap must stay
	// in [0,1] without any clamping.
	light := Vector{0, 0, 1}
	for _, model := range []DiffuseModel{HalfLambert{}, HalfLambert{Squared: true}} {
		for i := 0; i <= 16; i++ {
			for j := 0; j < 32; j++ {
				phi := math.Pi * float64(i) / 16
				theta := 2 * math.Pi * float64(j) / 32
				n := Vector{
					math.Sin(phi) * math.Cos(theta),
					math.Cos(phi),
					math.Sin(phi) * math.Sin(theta),
				}
				v := model.Intensity(n.Dot(light))
				if v < 0 || v > 1 {
					t.Fatalf("intensity %v out of [0,1] for normal %v", v, n)
				}
			}
		}
	}
}

func TestHalfLambertValues(t *testing.T) {
	tests := []struct {
		name     string
		model    HalfLambert
		ndotl    float64
		expected float64
	}{
		{"facing light", HalfLambert{}, 1, 1},
		{"perpendicular", HalfLambert{}, 0, 0.5},
		{"facing away", HalfLambert{}, -1, 0},
		{"squared facing", HalfLambert{Squared: true}, 1, 1},
		{"squared perpendicular", HalfLambert{Squared: true}, 0, 0.25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.model.Intensity(tc.ndotl)
			if !near(got, tc.expected, 1e-12) {
				t.Errorf("Intensity(%v) = %v, want %v", tc.ndotl, got, tc.expected)
			}
		})
	}
}

func TestToonBandsLevelCount(t *testing.T) {
	for _, bands := range []int{2, 3, 4, 5} {
		model := ToonBands{Bands: bands}
		levels := map[float64]bool{}
		prev := -1.0
		// sweep the remapped input over the closed interval [0,1]: the floor
		// quantizer emits bands levels below 1.0, and the exact endpoint
		// lands on its own fully-lit level above the top band
		for i := 0; i <= 1000; i++ {
			ndotl := -1 + 2*float64(i)/1000
			v := model.Intensity(ndotl)
			levels[v] = true
			if v < prev {
				t.Fatalf("bands=%d: output decreased from %v to %v", bands, prev, v)
			}
			prev = v
		}
		if len(levels) != bands+1 {
			t.Errorf("bands=%d: got %d distinct levels, want %d", bands, len(levels), bands+1)
		}
		if got := model.Intensity(1); got != 1 {
			t.Errorf("bands=%d: endpoint intensity = %v, want 1", bands, got)
		}
	}
}

func TestToonBandsSpecValues(t *testing.T) {
	tests := []struct {
		name     string
		model    ToonBands
		ndotl    float64
		expected float64
	}{
		// remapped intensity 0.5 with 3 bands: floor(1.5)/3
		{"three band midpoint", ToonBands{Bands: 3}, 0, 1.0 / 3},
		{"three band top", ToonBands{Bands: 3}, 1, 1},
		{"zero bands falls back to default", ToonBands{}, 0, 1.0 / 3},
		{"negative bands falls back to default", ToonBands{Bands: -2}, 0, 1.0 / 3},
		{"floor keeps darkest band above black", ToonBands{Bands: 3, Floor: 0.2}, -1, 0.2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.model.Intensity(tc.ndotl)
			if !near(got, tc.expected, 1e-12) {
				t.Errorf("Intensity(%v) = %v, want %v", tc.ndotl, got, tc.expected)
			}
		})
	}
}

func TestToonRamp(t *testing.T) {
	model := ToonRamp{Threshold: 0.5, Softness: 0.1}
	if got := model.Intensity(0.2); got != 0 {
		t.Errorf("below edge: got %v, want 0", got)
	}
	if got := model.Intensity(0.9); got != 1 {
		t.Errorf("above edge: got %v, want 1", got)
	}
	if got := model.Intensity(0.5); !near(got, 0.5, 1e-12) {
		t.Errorf("at threshold: got %v, want 0.5", got)
	}
	prev := -1.0
	for i := 0; i <= 200; i++ {
		v := model.Intensity(-1 + 2*float64(i)/200)
		if v < prev {
			t.Fatalf("ramp output decreased from %v to %v", prev, v)
		}
		prev = v
	}
}

func TestToonRampHardCut(t *testing.T) {
	model := ToonRamp{Threshold: 0.5}
	if got := model.Intensity(0.49); got != 0 {
		t.Errorf("just below hard threshold: got %v, want 0", got)
	}
	if got := model.Intensity(0.51); got != 1 {
		t.Errorf("just above hard threshold: got %v, want 1", got)
	}
}

func TestCelSteps(t *testing.T) {
	tests := []struct {
		ndotl    float64
		expected float64
	}{
		{1, 1.0},
		{0.7, 0.8},
		{0.3, 0.5},
		{0.1, 0.3},
		{-0.5, 0.3},
	}
	model := CelSteps{}
	for _, tc := range tests {
		if got := model.Intensity(tc.ndotl); got != tc.expected {
			t.Errorf("Intensity(%v) = %v, want %v", tc.ndotl, got, tc.expected)
		}
	}
}
