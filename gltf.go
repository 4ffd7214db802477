package eternae

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file and converts it to a Mesh, baking in
// the node transforms of the default scene.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var allTriangles []*Triangle

	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil {
			scene = int(*doc.Scene)
		}
		for _, n := range doc.Scenes[scene].Nodes {
			triangles, err := loadGLTFNode(doc, int(n), mgl64.Ident4())
			if err != nil {
				return nil, err
			}
			allTriangles = append(allTriangles, triangles...)
		}
	} else {
		// No scene graph: read every mesh untransformed.
		for _, mesh := range doc.Meshes {
			triangles, err := loadGLTFMesh(doc, mesh)
			if err != nil {
				return nil, err
			}
			allTriangles = append(allTriangles, triangles...)
		}
	}

	if len(allTriangles) == 0 {
		return nil, fmt.Errorf("no triangles found in gltf")
	}
	return NewTriangleMesh(allTriangles), nil
}

func loadGLTFNode(doc *gltf.Document, index int, parent mgl64.Mat4) ([]*Triangle, error) {
	node := doc.Nodes[index]
	world := parent.Mul4(nodeTransform(node))

	var triangles []*Triangle
	if node.Mesh != nil {
		ts, err := loadGLTFMesh(doc, doc.Meshes[int(*node.Mesh)])
		if err != nil {
			return nil, err
		}
		m := NewTriangleMesh(ts)
		m.Transform(MatrixFromMgl(world))
		triangles = append(triangles, m.Triangles...)
	}
	for _, child := range node.Children {
		ts, err := loadGLTFNode(doc, int(child), world)
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, ts...)
	}
	return triangles, nil
}

// nodeTransform composes a node's matrix, or its TRS properties when the
// matrix is identity.
func nodeTransform(node *gltf.Node) mgl64.Mat4 {
	var m mgl64.Mat4
	for i, x := range node.Matrix {
		m[i] = float64(x)
	}
	if m != mgl64.Ident4() && m != (mgl64.Mat4{}) {
		return m
	}
	t := mgl64.Translate3D(float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2]))
	q := mgl64.Quat{
		W: float64(node.Rotation[3]),
		V: mgl64.Vec3{float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2])},
	}
	s := mgl64.Scale3D(float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2]))
	return t.Mul4(q.Normalize().Mat4()).Mul4(s)
}

func loadGLTFMesh(doc *gltf.Document, mesh *gltf.Mesh) ([]*Triangle, error) {
	var allTriangles []*Triangle
	for _, primitive := range mesh.Primitives {
		// only triangle primitives (mode 4)
		if primitive.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posIdx, ok := primitive.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, err
		}

		var normals [][3]float32
		if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
			normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
		}

		var texCoords [][2]float32
		if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
			texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
		}

		var indices []uint32
		if primitive.Indices != nil {
			// ReadIndices converts uint8/uint16/uint32 to []uint32
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
			if err != nil {
				return nil, err
			}
		} else {
			indices = make([]uint32, len(positions))
			for k := range indices {
				indices[k] = uint32(k)
			}
		}

		vertex := func(i uint32) Vertex {
			v := Vertex{}
			v.Position = Vector{float64(positions[i][0]), float64(positions[i][1]), float64(positions[i][2])}
			if len(normals) > int(i) {
				v.Normal = Vector{float64(normals[i][0]), float64(normals[i][1]), float64(normals[i][2])}
			}
			if len(texCoords) > int(i) {
				v.Texture = Vector{float64(texCoords[i][0]), float64(texCoords[i][1]), 0}
			}
			return v
		}

		for i := 0; i+2 < len(indices); i += 3 {
			t := NewTriangle(vertex(indices[i]), vertex(indices[i+1]), vertex(indices[i+2]))
			t.FixNormals()
			allTriangles = append(allTriangles, t)
		}
	}
	return allTriangles, nil
}
