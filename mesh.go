package eternae

import (
	"math"

	"github.com/fogleman/simplify"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	box := boxes[0]
	for _, b := range boxes[1:] {
		box = box.Extend(b)
	}
	return box
}

func (a Box) Extend(b Box) Box {
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Center() Vector {
	return a.Min.Lerp(a.Max, 0.5)
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

func (a Box) Corners() []Vector {
	x0, y0, z0 := a.Min.X, a.Min.Y, a.Min.Z
	x1, y1, z1 := a.Max.X, a.Max.Y, a.Max.Z
	return []Vector{
		{x0, y0, z0}, {x1, y0, z0}, {x0, y1, z0}, {x1, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x0, y1, z1}, {x1, y1, z1},
	}
}

// Transform returns the axis-aligned box enclosing the transformed corners.
func (a Box) Transform(matrix Matrix) Box {
	corners := a.Corners()
	min := matrix.MulPosition(corners[0])
	max := min
	for _, c := range corners[1:] {
		p := matrix.MulPosition(c)
		min = min.Min(p)
		max = max.Max(p)
	}
	return Box{min, max}
}

// Mesh holds renderable geometry.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
	box       *Box
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines, nil}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines, nil}
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		min := Vector{math.Inf(1), math.Inf(1), math.Inf(1)}
		max := Vector{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
		for _, t := range m.Triangles {
			b := t.BoundingBox()
			min = min.Min(b.Min)
			max = max.Max(b.Max)
		}
		for _, l := range m.Lines {
			b := l.BoundingBox()
			min = min.Min(b.Min)
			max = max.Max(b.Max)
		}
		if len(m.Triangles) == 0 && len(m.Lines) == 0 {
			min = Vector{}
			max = Vector{}
		}
		m.box = &Box{min, max}
	}
	return *m.box
}

// Transform bakes a matrix into the mesh geometry.
func (m *Mesh) Transform(matrix Matrix) {
	n := matrix.Inverse().Transpose()
	for _, t := range m.Triangles {
		t.V1.Position = matrix.MulPosition(t.V1.Position)
		t.V2.Position = matrix.MulPosition(t.V2.Position)
		t.V3.Position = matrix.MulPosition(t.V3.Position)
		t.V1.Normal = n.MulDirection(t.V1.Normal).Normalize()
		t.V2.Normal = n.MulDirection(t.V2.Normal).Normalize()
		t.V3.Normal = n.MulDirection(t.V3.Normal).Normalize()
	}
	for _, l := range m.Lines {
		l.V1.Position = matrix.MulPosition(l.V1.Position)
		l.V2.Position = matrix.MulPosition(l.V2.Position)
	}
	m.box = nil
}

// SetColor sets the vertex color on every triangle.
func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// Simplify decimates the triangle mesh to the given fraction of its
// original face count. Texture coordinates and vertex colors are dropped;
// normals are rebuilt from the simplified faces.
func (m *Mesh) Simplify(factor float64) *Mesh {
	src := make([]*simplify.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		src[i] = simplify.NewTriangle(
			simplify.Vector{X: t.V1.Position.X, Y: t.V1.Position.Y, Z: t.V1.Position.Z},
			simplify.Vector{X: t.V2.Position.X, Y: t.V2.Position.Y, Z: t.V2.Position.Z},
			simplify.Vector{X: t.V3.Position.X, Y: t.V3.Position.Y, Z: t.V3.Position.Z})
	}
	out := simplify.NewMesh(src).Simplify(factor)
	triangles := make([]*Triangle, len(out.Triangles))
	for i, t := range out.Triangles {
		triangles[i] = NewTriangleForPoints(
			Vector{t.V1.X, t.V1.Y, t.V1.Z},
			Vector{t.V2.X, t.V2.Y, t.V2.Z},
			Vector{t.V3.X, t.V3.Y, t.V3.Z})
	}
	return NewTriangleMesh(triangles)
}

// NewPlaneMesh returns a unit plane on the XZ axes centered at the origin,
// facing +Y.
func NewPlaneMesh() *Mesh {
	p1 := Vector{-0.5, 0, -0.5}
	p2 := Vector{0.5, 0, -0.5}
	p3 := Vector{0.5, 0, 0.5}
	p4 := Vector{-0.5, 0, 0.5}
	t1 := NewTriangleForPoints(p1, p3, p2)
	t2 := NewTriangleForPoints(p1, p4, p3)
	t1.V1.Texture = Vector{0, 0, 0}
	t1.V2.Texture = Vector{1, 1, 0}
	t1.V3.Texture = Vector{1, 0, 0}
	t2.V1.Texture = Vector{0, 0, 0}
	t2.V2.Texture = Vector{0, 1, 0}
	t2.V3.Texture = Vector{1, 1, 0}
	return NewTriangleMesh([]*Triangle{t1, t2})
}

// NewSphereMesh returns a unit UV sphere with the given resolution.
func NewSphereMesh(stacks, slices int) *Mesh {
	point := func(i, j int) Vertex {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		p := Vector{
			math.Sin(phi) * math.Cos(theta),
			math.Cos(phi),
			math.Sin(phi) * math.Sin(theta),
		}
		return Vertex{
			Position: p,
			Normal:   p,
			Texture:  Vector{float64(j) / float64(slices), 1 - float64(i)/float64(stacks), 0},
		}
	}
	var triangles []*Triangle
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			v00 := point(i, j)
			v10 := point(i+1, j)
			v01 := point(i, j+1)
			v11 := point(i+1, j+1)
			if i != 0 {
				triangles = append(triangles, NewTriangle(v00, v11, v10))
			}
			if i != stacks-1 {
				triangles = append(triangles, NewTriangle(v00, v01, v11))
			}
		}
	}
	return NewTriangleMesh(triangles)
}

// NewCubeMesh returns a unit cube centered at the origin.
func NewCubeMesh() *Mesh {
	v := []Vector{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	faces := [][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	var triangles []*Triangle
	for _, f := range faces {
		triangles = append(triangles,
			NewTriangleForPoints(v[f[0]], v[f[1]], v[f[2]]),
			NewTriangleForPoints(v[f[0]], v[f[2]], v[f[3]]))
	}
	return NewTriangleMesh(triangles)
}
