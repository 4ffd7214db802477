package eternae

// Homogeneous clipping against the canonical view volume, run only for
// primitives with at least one vertex outside it. Attributes, including the
// light-space shadow coordinate, are interpolated at the cut points so the
// shadow sampler and the lighting always see the same surface point.

type clipPlane struct {
	P, N VectorW
}

var clipPlanes = []clipPlane{
	{VectorW{1, 0, 0, 1}, VectorW{-1, 0, 0, 1}},
	{VectorW{-1, 0, 0, 1}, VectorW{1, 0, 0, 1}},
	{VectorW{0, 1, 0, 1}, VectorW{0, -1, 0, 1}},
	{VectorW{0, -1, 0, 1}, VectorW{0, 1, 0, 1}},
	{VectorW{0, 0, 1, 1}, VectorW{0, 0, -1, 1}},
	{VectorW{0, 0, -1, 1}, VectorW{0, 0, 1, 1}},
}

func (p clipPlane) inside(v Vertex) bool {
	return v.Output.Sub(p.P).Dot(p.N) >= 0
}

func (p clipPlane) intersect(v0, v1 Vertex) Vertex {
	d0 := v0.Output.Sub(p.P).Dot(p.N)
	d1 := v1.Output.Sub(p.P).Dot(p.N)
	t := d0 / (d0 - d1)
	return VertexLerp(v0, v1, t)
}

func sutherlandHodgman(points []Vertex) []Vertex {
	output := points
	for _, plane := range clipPlanes {
		input := output
		output = nil
		if len(input) == 0 {
			return nil
		}
		s := input[len(input)-1]
		for _, e := range input {
			if plane.inside(e) {
				if !plane.inside(s) {
					output = append(output, plane.intersect(s, e))
				}
				output = append(output, e)
			} else if plane.inside(s) {
				output = append(output, plane.intersect(s, e))
			}
			s = e
		}
	}
	return output
}

// ClipTriangle clips a triangle against the view volume, returning zero or
// more triangles fanned from the clipped polygon.
func ClipTriangle(t *Triangle) []*Triangle {
	points := []Vertex{t.V1, t.V2, t.V3}
	clipped := sutherlandHodgman(points)
	var result []*Triangle
	for i := 2; i < len(clipped); i++ {
		result = append(result, NewTriangle(clipped[0], clipped[i-1], clipped[i]))
	}
	return result
}

// ClipLine clips a line segment against the view volume. Returns nil when
// fully outside.
func ClipLine(l *Line) *Line {
	v0, v1 := l.V1, l.V2
	for _, plane := range clipPlanes {
		in0 := plane.inside(v0)
		in1 := plane.inside(v1)
		switch {
		case in0 && in1:
		case !in0 && !in1:
			return nil
		case in0:
			v1 = plane.intersect(v0, v1)
		default:
			v0 = plane.intersect(v1, v0)
		}
	}
	return NewLine(v0, v1)
}
