package eternae

// Shader is the per-primitive programmable stage pair. Vertex projects a
// single vertex into clip space and rewrites its attributes; Fragment
// computes the color of one interpolated sample. Fragment runs concurrently
// across fragments and must not mutate shader state.
type Shader interface {
	Vertex(Vertex) Vertex
	Fragment(Vertex, *Object) Color
}

// ModelShader is a Shader that separates the per-object model matrix from
// the camera transform, letting the context push each object's matrix
// before drawing its mesh.
type ModelShader interface {
	Shader
	SetModelMatrix(Matrix)
}

// CameraShader additionally exposes the camera view-projection, so scene
// auto-framing can replace it after fitting.
type CameraShader interface {
	ModelShader
	SetViewProjection(Matrix)
}

// FlatShader renders everything in one color, the simplest diagnostic
// shader.
type FlatShader struct {
	ViewProjection Matrix
	ModelMatrix    Matrix
	Color          Color
}

func NewFlatShader(viewProjection Matrix, color Color) *FlatShader {
	return &FlatShader{viewProjection, Identity(), color}
}

func (s *FlatShader) SetModelMatrix(m Matrix) {
	s.ModelMatrix = m
}

func (s *FlatShader) SetViewProjection(m Matrix) {
	s.ViewProjection = m
}

func (s *FlatShader) Vertex(v Vertex) Vertex {
	mvp := s.ViewProjection.Mul(s.ModelMatrix)
	v.Output = mvp.MulPositionW(v.Position)
	return v
}

func (s *FlatShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}

// DepthShader drives the shadow pass: geometry is projected from the
// light's point of view and only the depth buffer is kept afterwards. The
// fragment color is irrelevant but must be opaque so depth writes happen.
type DepthShader struct {
	ViewProjection Matrix
	ModelMatrix    Matrix
}

func NewDepthShader(viewProjection Matrix) *DepthShader {
	return &DepthShader{viewProjection, Identity()}
}

func (s *DepthShader) SetModelMatrix(m Matrix) {
	s.ModelMatrix = m
}

func (s *DepthShader) SetViewProjection(m Matrix) {
	s.ViewProjection = m
}

func (s *DepthShader) Vertex(v Vertex) Vertex {
	mvp := s.ViewProjection.Mul(s.ModelMatrix)
	v.Output = mvp.MulPositionW(v.Position)
	return v
}

func (s *DepthShader) Fragment(v Vertex, fromObject *Object) Color {
	return White
}
