package eternae

// Vertex carries per-vertex attributes through the pipeline. Position and
// Normal start in object space; the vertex stage rewrites them to world
// space and fills Output (clip space) and Shadow (light clip space).
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	Output   VectorW
	Shadow   VectorW
}

// Outside reports whether the vertex lies outside the clip volume.
func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// VertexLerp interpolates every attribute, used by the clipper.
func VertexLerp(v0, v1 Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = v0.Position.Lerp(v1.Position, t)
	v.Normal = v0.Normal.Lerp(v1.Normal, t).Normalize()
	v.Texture = v0.Texture.Lerp(v1.Texture, t)
	v.Color = v0.Color.Lerp(v1.Color, t)
	v.Output = v0.Output.Lerp(v1.Output, t)
	v.Shadow = v0.Shadow.Lerp(v1.Shadow, t)
	return v
}

// InterpolateVertexes blends three vertices with perspective-correct
// barycentric weights. b holds the premultiplied weights; b.W is the
// normalization factor.
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b).Normalize()
	v.Texture = interpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.Output = interpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	v.Shadow = interpolateVectorWs(v1.Shadow, v2.Shadow, v3.Shadow, b)
	return v
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateVectorWs(v1, v2, v3 VectorW, b VectorW) VectorW {
	n := VectorW{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateColors(v1, v2, v3 Color, b VectorW) Color {
	n := Color{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

// Triangle is a renderable triangle.
type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	return &Triangle{v1, v2, v3}
}

func NewTriangleForPoints(p1, p2, p3 Vector) *Triangle {
	t := Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	t.FixNormals()
	return &t
}

// Normal returns the face normal.
func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// FixNormals fills in missing vertex normals with the face normal.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := Vector{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

// SetColor sets the vertex color on all three vertices.
func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

func (t *Triangle) BoundingBox() Box {
	min := t.V1.Position.Min(t.V2.Position).Min(t.V3.Position)
	max := t.V1.Position.Max(t.V2.Position).Max(t.V3.Position)
	return Box{min, max}
}

func (t *Triangle) Transform(matrix Matrix) {
	t.V1.Position = matrix.MulPosition(t.V1.Position)
	t.V2.Position = matrix.MulPosition(t.V2.Position)
	t.V3.Position = matrix.MulPosition(t.V3.Position)
	n := matrix.Inverse().Transpose()
	t.V1.Normal = n.MulDirection(t.V1.Normal).Normalize()
	t.V2.Normal = n.MulDirection(t.V2.Normal).Normalize()
	t.V3.Normal = n.MulDirection(t.V3.Normal).Normalize()
}

// Line is a renderable line segment.
type Line struct {
	V1, V2 Vertex
}

func NewLine(v1, v2 Vertex) *Line {
	return &Line{v1, v2}
}

func NewLineForPoints(p1, p2 Vector) *Line {
	l := Line{}
	l.V1.Position = p1
	l.V2.Position = p2
	return &l
}

func (l *Line) BoundingBox() Box {
	min := l.V1.Position.Min(l.V2.Position)
	max := l.V1.Position.Max(l.V2.Position)
	return Box{min, max}
}
