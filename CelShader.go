package eternae

import "math"

// CelShader is the stylized evaluator: a configurable diffuse model
// (half-Lambert or toon quantization per material), shadow-map visibility
// and an optional rim highlight, composited over ambient.
//
// With no light bound the fragment stage returns DebugBlue, keeping the
// failure visible on screen.
type CelShader struct {
	ViewProjection Matrix
	ModelMatrix    Matrix
	CameraPosition Vector
	Light          *Light

	normalMatrix Matrix
}

func NewCelShader(viewProjection Matrix, cameraPosition Vector, light *Light) *CelShader {
	s := &CelShader{
		ViewProjection: viewProjection,
		CameraPosition: cameraPosition,
		Light:          light,
	}
	s.SetModelMatrix(Identity())
	return s
}

func (s *CelShader) SetViewProjection(m Matrix) {
	s.ViewProjection = m
}

// SetModelMatrix also refreshes the inverse-transpose normal matrix, so
// normals stay correct under non-uniform scaling.
func (s *CelShader) SetModelMatrix(m Matrix) {
	s.ModelMatrix = m
	s.normalMatrix = m.Inverse().Transpose()
}

// Vertex projects the vertex and precomputes the light-space shadow
// coordinate from the same world position used for shading, so shadowing
// and lighting never disagree about the surface point.
func (s *CelShader) Vertex(v Vertex) Vertex {
	mvp := s.ViewProjection.Mul(s.ModelMatrix)
	world := s.ModelMatrix.MulPosition(v.Position)
	v.Output = mvp.MulPositionW(v.Position)
	v.Normal = s.normalMatrix.MulDirection(v.Normal).Normalize()
	if s.Light != nil && s.Light.CastShadows {
		v.Shadow = s.Light.ViewProjection.MulPositionW(world)
	}
	v.Position = world
	return v
}

func (s *CelShader) Fragment(v Vertex, fromObject *Object) Color {
	if s.Light == nil {
		return DebugBlue
	}
	if fromObject.UseVertexColor {
		return v.Color
	}
	mat := fromObject.material()

	color := mat.baseColor()
	if mat.Texture != nil {
		sample := mat.Texture.Sample(v.Texture.X, v.Texture.Y)
		if sample.A > 0 {
			color = color.Lerp(sample.DivScalar(sample.A), sample.A)
		}
	}

	ndotl := v.Normal.Dot(s.Light.Direction)
	intensity := mat.diffuseModel().Intensity(ndotl)

	visibility := 1.0
	if mat.ReceiveShadows {
		visibility = s.Light.Visibility(v.Shadow, ndotl)
	}

	var rim Color
	if mat.Rim.Enabled {
		view := s.CameraPosition.Sub(v.Position).Normalize()
		rim = RimTerm(mat.Rim, v.Normal, view, visibility)
	}

	out := Composite(color, s.Light.Ambient, s.Light.Color, intensity, visibility, mat.ShadowTint, rim)
	if color.A < 1 {
		return out.DivScalar(math.Max(color.A, 1e-9)).Min(White).Alpha(color.A)
	}
	return out
}
