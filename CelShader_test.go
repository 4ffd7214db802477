package eternae

import (
	"testing"
)

func testLight() *Light {
	return &Light{
		Direction: Vector{0, 0, 1},
		Color:     White,
		Ambient:   Color{0.1, 0.1, 0.1, 1},
	}
}

func testObject(mat *Material) *Object {
	o := NewObjectFromMesh(NewTriangleMesh(nil))
	o.Material = mat
	return o
}

func TestCelShaderNoLightIsDebugColor(t *testing.T) {
	shader := NewCelShader(Identity(), Vector{}, nil)
	v := Vertex{Normal: Vector{0, 0, 1}}
	got := shader.Fragment(v, testObject(NewMaterial(White)))
	if got != DebugBlue {
		t.Errorf("fragment = %v, want DebugBlue sentinel", got)
	}
}

func TestCelShaderDirectlyLit(t *testing.T) {
	// N = L = (0,0,1), visibility 1, half-Lambert: intensity 1, so the
	// composited 1.1 clamps to white.
	shader := NewCelShader(Identity(), Vector{0, 0, 5}, testLight())
	mat := NewMaterial(White)
	mat.ReceiveShadows = false
	v := Vertex{Position: Vector{0, 0, 0}, Normal: Vector{0, 0, 1}}

	got := shader.Fragment(v, testObject(mat))
	colorNear(t, got, White, 1e-12)
}

func TestCelShaderFullyShadowed(t *testing.T) {
	// An all-occluding shadow map: only the ambient term survives, and the
	// rim (masked by shadow) must not reappear inside the silhouette.
	light := testLight()
	light.CastShadows = true
	light.ShadowMap = uniformDepthMap(4, 0)
	light.Shadow = ShadowParams{}

	shader := NewCelShader(Identity(), Vector{0, 0, 5}, light)
	mat := NewMaterial(White)
	mat.Rim = NewRimParams()

	v := Vertex{
		Position: Vector{0, 0, 0},
		Normal:   Vector{0, 0, 1},
		Shadow:   center(0.5),
	}
	got := shader.Fragment(v, testObject(mat))
	colorNear(t, got, Color{0.1, 0.1, 0.1, 1}, 1e-12)
}

func TestCelShaderToonBands(t *testing.T) {
	// Perpendicular to the light, 3 bands: floor(0.5*3)/3 = 1/3.
	shader := NewCelShader(Identity(), Vector{0, 0, 5}, testLight())
	mat := NewMaterial(White)
	mat.ReceiveShadows = false
	mat.Diffuse = ToonBands{Bands: 3}

	v := Vertex{Position: Vector{0, 0, 0}, Normal: Vector{1, 0, 0}}
	got := shader.Fragment(v, testObject(mat))
	want := Color{0.1 + 1.0/3, 0.1 + 1.0/3, 0.1 + 1.0/3, 1}
	colorNear(t, got, want, 1e-12)
}

func TestCelShaderVertexColor(t *testing.T) {
	shader := NewCelShader(Identity(), Vector{}, testLight())
	o := testObject(NewMaterial(White))
	o.UseVertexColor = true
	v := Vertex{Color: Color{0.25, 0.5, 0.75, 1}}
	if got := shader.Fragment(v, o); got != v.Color {
		t.Errorf("fragment = %v, want interpolated vertex color %v", got, v.Color)
	}
}

func TestCelShaderVertexProjectsWorldAndShadow(t *testing.T) {
	light := testLight()
	light.CastShadows = true
	light.ViewProjection = Translate(Vector{1, 2, 3})

	shader := NewCelShader(Identity(), Vector{}, light)
	shader.SetModelMatrix(Translate(Vector{10, 0, 0}))

	v := shader.Vertex(Vertex{Position: Vector{1, 1, 1}, Normal: Vector{0, 1, 0}})

	if v.Position != (Vector{11, 1, 1}) {
		t.Errorf("world position = %v, want (11,1,1)", v.Position)
	}
	// The shadow coordinate must be the light transform of the same world
	// position used for shading.
	want := light.ViewProjection.MulPositionW(Vector{11, 1, 1})
	if v.Shadow != want {
		t.Errorf("shadow coord = %v, want %v", v.Shadow, want)
	}
}

func TestCelShaderNormalUnderNonUniformScale(t *testing.T) {
	// Inverse-transpose handling: scaling x by 2 must bend a diagonal
	// normal toward y, not away from it.
	shader := NewCelShader(Identity(), Vector{}, testLight())
	shader.SetModelMatrix(Scale(Vector{2, 1, 1}))

	in := Vector{1, 1, 0}.Normalize()
	v := shader.Vertex(Vertex{Position: Vector{}, Normal: in})

	want := Vector{0.5, 1, 0}.Normalize()
	if !near(v.Normal.X, want.X, 1e-9) ||
		!near(v.Normal.Y, want.Y, 1e-9) ||
		!near(v.Normal.Z, want.Z, 1e-9) {
		t.Errorf("normal = %v, want %v", v.Normal, want)
	}
	if !near(v.Normal.Length(), 1, 1e-9) {
		t.Errorf("normal length = %v, want 1", v.Normal.Length())
	}
}

func TestOutlineShaderInflatesAlongNormal(t *testing.T) {
	shader := NewOutlineShader(Identity(), 0.1, Black)
	v := shader.Vertex(Vertex{Position: Vector{1, 0, 0}, Normal: Vector{1, 0, 0}})
	if !near(v.Output.X, 1.1, 1e-12) {
		t.Errorf("outline x = %v, want 1.1 (strictly larger than base mesh)", v.Output.X)
	}
	if got := shader.Fragment(v, testObject(nil)); got != Black {
		t.Errorf("outline fragment = %v, want solid outline color", got)
	}
}
