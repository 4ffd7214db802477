package eternae

import (
	"testing"
)

func matrixNear(t *testing.T, got, want Matrix, eps float64) {
	t.Helper()
	pairs := [][2]float64{
		{got.X00, want.X00}, {got.X01, want.X01}, {got.X02, want.X02}, {got.X03, want.X03},
		{got.X10, want.X10}, {got.X11, want.X11}, {got.X12, want.X12}, {got.X13, want.X13},
		{got.X20, want.X20}, {got.X21, want.X21}, {got.X22, want.X22}, {got.X23, want.X23},
		{got.X30, want.X30}, {got.X31, want.X31}, {got.X32, want.X32}, {got.X33, want.X33},
	}
	for _, p := range pairs {
		if !near(p[0], p[1], eps) {
			t.Fatalf("matrix mismatch:\ngot  %+v\nwant %+v", got, want)
		}
	}
}

func TestIdentityMulPosition(t *testing.T) {
	p := Vector{1, 2, 3}
	if got := Identity().MulPosition(p); got != p {
		t.Errorf("identity moved %v to %v", p, got)
	}
}

func TestTranslateScaleCompose(t *testing.T) {
	// Method chaining applies the new transform after the receiver.
	m := Scale(Vector{2, 2, 2}).Translate(Vector{1, 0, 0})
	got := m.MulPosition(Vector{1, 1, 1})
	want := Vector{3, 2, 2}
	if !near(got.X, want.X, 1e-12) ||
		!near(got.Y, want.Y, 1e-12) ||
		!near(got.Z, want.Z, 1e-12) {
		t.Errorf("composed transform = %v, want %v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := LookAt(Vector{4, 7, 13}, Vector{0, 0, 0}, Vector{0, 1, 0}).
		Scale(Vector{2, 1, 3}).
		Translate(Vector{-1, 5, 2})
	matrixNear(t, m.Mul(m.Inverse()), Identity(), 1e-9)
}

func TestTransposeInvolution(t *testing.T) {
	m := Rotate(Vector{1, 2, 3}, 0.7)
	matrixNear(t, m.Transpose().Transpose(), m, 0)
}

func TestScreenMapping(t *testing.T) {
	s := Screen(100, 50)

	// NDC origin maps to the framebuffer center at mid depth.
	got := s.MulPosition(Vector{0, 0, 0})
	if got.X != 50 || got.Y != 25 || got.Z != 0.5 {
		t.Errorf("center = %v, want (50,25,0.5)", got)
	}
	// NDC top-left maps to pixel origin: Y flips.
	got = s.MulPosition(Vector{-1, 1, -1})
	if got.X != 0 || got.Y != 0 || got.Z != 0 {
		t.Errorf("top-left = %v, want (0,0,0)", got)
	}
	got = s.MulPosition(Vector{1, -1, 1})
	if got.X != 100 || got.Y != 50 || got.Z != 1 {
		t.Errorf("bottom-right = %v, want (100,50,1)", got)
	}
}

func TestLookAtPerspectiveCenters(t *testing.T) {
	// The look-at target projects to the center of the frustum.
	eye := Vector{0, 5, 10}
	center := Vector{0, 1, 0}
	m := LookAt(eye, center, Vector{0, 1, 0}).Perspective(60, 1, 0.1, 100)
	out := m.MulPositionW(center)
	ndc := out.DivScalar(out.W)
	if !near(ndc.X, 0, 1e-9) || !near(ndc.Y, 0, 1e-9) {
		t.Errorf("target projected to %v, want NDC center", ndc)
	}
}

func TestOrthographicPreservesDirectionComparisons(t *testing.T) {
	// Points nearer the camera get smaller NDC depth.
	m := LookAt(Vector{0, 0, 10}, Vector{0, 0, 0}, Vector{0, 1, 0}).
		Orthographic(-5, 5, -5, 5, 0.1, 40)
	near := m.MulPositionW(Vector{0, 0, 5})
	far := m.MulPositionW(Vector{0, 0, -5})
	if near.Z >= far.Z {
		t.Errorf("near z %v not less than far z %v", near.Z, far.Z)
	}
}

func TestBoxTransform(t *testing.T) {
	box := Box{Vector{-1, -1, -1}, Vector{1, 1, 1}}
	got := box.Transform(Translate(Vector{5, 0, 0}))
	if got.Min != (Vector{4, -1, -1}) || got.Max != (Vector{6, 1, 1}) {
		t.Errorf("transformed box = %+v", got)
	}
}
