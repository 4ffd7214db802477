package eternae

// OutlineShader renders the inverted-hull silhouette pass: each vertex is
// displaced along its normal by Width before projection, inflating the mesh
// strictly beyond the base geometry, and the result is drawn in a flat
// color. The pass must run with front-face culling so only the back of the
// hull shows around the object; Scene.Draw sets that up.
type OutlineShader struct {
	ViewProjection Matrix
	ModelMatrix    Matrix
	Width          float64
	Color          Color
}

func NewOutlineShader(viewProjection Matrix, width float64, color Color) *OutlineShader {
	return &OutlineShader{viewProjection, Identity(), width, color}
}

func (s *OutlineShader) SetModelMatrix(m Matrix) {
	s.ModelMatrix = m
}

func (s *OutlineShader) SetViewProjection(m Matrix) {
	s.ViewProjection = m
}

func (s *OutlineShader) Vertex(v Vertex) Vertex {
	extruded := v.Position.Add(v.Normal.MulScalar(s.Width))
	mvp := s.ViewProjection.Mul(s.ModelMatrix)
	v.Output = mvp.MulPositionW(extruded)
	return v
}

func (s *OutlineShader) Fragment(v Vertex, fromObject *Object) Color {
	return s.Color
}
