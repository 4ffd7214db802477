package eternae

import (
	"log"
	"net/http"
	"time"
)

// Object pairs a mesh with a material and a per-frame model matrix.
// Objects are what get handed to the renderer.
type Object struct {
	Mesh           *Mesh
	Material       *Material
	Matrix         Matrix
	UseVertexColor bool
}

var defaultMaterial = NewMaterial(Color{})

func (o *Object) material() *Material {
	if o.Material == nil {
		return defaultMaterial
	}
	return o.Material
}

// NewEmptyObject returns an object with no mesh.
func NewEmptyObject() *Object {
	return &Object{Matrix: Identity()}
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Material: NewMaterial(Color{}), Matrix: Identity()}
}

func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	o := NewObjectFromMesh(mesh)
	o.Material.Color = HexColor("777")
	return o, nil
}

// SetColor sets the material base color and the mesh vertex colors.
func (o *Object) SetColor(c Color) {
	o.material().Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}

// WorldBoundingBox returns the mesh bounds under the object's matrix.
func (o *Object) WorldBoundingBox() Box {
	return o.Mesh.BoundingBox().Transform(o.Matrix)
}

// LoadObjectFromURL fetches and parses an OBJ mesh over HTTP.
func LoadObjectFromURL(url string) (*Mesh, error) {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	mesh, err := LoadOBJFromReader(resp.Body)
	if err != nil {
		log.Printf("eternae: could not parse obj from %s: %v", url, err)
		return nil, err
	}
	return mesh, nil
}
