package eternae

import (
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"os"
)

// DefaultShadowMapSize is the depth-pass resolution used when the caller
// does not pick one.
const DefaultShadowMapSize = 1024

// Scene owns a render context, a set of objects and at most one sun light.
// Draw runs up to three passes in order: the light's depth-only shadow
// pass, the inverted-hull outline pass, then the main shading pass. The
// shadow map is complete and read-only before any main-pass fragment runs.
type Scene struct {
	Context         *Context
	Objects         []*Object
	Shader          CameraShader
	Sun             *Light
	ShadowMapSize   int
	eye, center, up Vector
	fovy, aspect    float64
	size, scale     int
}

// NewScene returns a scene rendering at size*scale pixels, downsampled to
// size on output.
func NewScene(eye, center, up Vector, fovy float64, size, scale int, shader CameraShader) *Scene {
	aspect := 1.0
	context := NewContext(size*scale, size*scale, shader)
	return &Scene{
		Context:       context,
		Shader:        shader,
		ShadowMapSize: DefaultShadowMapSize,
		eye:           eye,
		center:        center,
		up:            up,
		fovy:          fovy,
		aspect:        aspect,
		size:          size,
		scale:         scale,
	}
}

// NewCelScene wires the usual setup: a CelShader lit by sun, shadows on.
func NewCelScene(eye, center, up Vector, fovy float64, size, scale int, sun *Light) *Scene {
	aspect := 1.0
	matrix := LookAt(eye, center, up).Perspective(fovy, aspect, 1, 999)
	shader := NewCelShader(matrix, eye, sun)
	s := NewScene(eye, center, up, fovy, size, scale, shader)
	s.Sun = sun
	return s
}

// AddObject adds an object to the scene
func (s *Scene) AddObject(o *Object) {
	s.Objects = append(s.Objects, o)
}

// AddObjects is a convenience method to add multiple objects
func (s *Scene) AddObjects(objects []*Object) {
	for _, o := range objects {
		s.AddObject(o)
	}
}

func (s *Scene) boundingBox() (Box, bool) {
	var boxes []Box
	for _, o := range s.Objects {
		if o.Mesh != nil {
			boxes = append(boxes, o.WorldBoundingBox())
		}
	}
	if len(boxes) == 0 {
		return Box{}, false
	}
	return BoxForBoxes(boxes), true
}

// FitObjectsToScene widens the camera frustum until every object fits,
// with a little padding against clipping.
func (s *Scene) FitObjectsToScene(eye, center, up Vector, fovy, aspect, near, far float64) Matrix {
	box, ok := s.boundingBox()
	if !ok {
		return LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	}

	viewMatrix := LookAt(eye, center, up)

	var maxAngleX, maxAngleY float64
	for _, corner := range box.Corners() {
		p := viewMatrix.MulPosition(corner)

		// The camera looks down the negative Z-axis in view space; absZ is
		// the depth of the point from the camera plane.
		absZ := math.Abs(p.Z)
		if absZ < 1e-6 {
			continue
		}

		angleX := math.Atan(math.Abs(p.X) / absZ)
		if angleX > maxAngleX {
			maxAngleX = angleX
		}
		angleY := math.Atan(math.Abs(p.Y) / absZ)
		if angleY > maxAngleY {
			maxAngleY = angleY
		}
	}

	fovyFromY := 2 * maxAngleY
	fovyFromX := 2 * math.Atan(math.Tan(maxAngleX)/aspect)
	finalFovyRad := math.Max(fovyFromX, fovyFromY)

	finalFovyDeg := Degrees(finalFovyRad) * 1.05

	return viewMatrix.Perspective(finalFovyDeg, aspect, near, far)
}

// RenderShadowPass renders scene depth from the sun's point of view into
// the light's shadow map. The light camera is an orthographic frustum
// fitted to the scene bounds; anything outside it samples as fully lit.
func (s *Scene) RenderShadowPass() {
	if s.Sun == nil || !s.Sun.CastShadows {
		return
	}
	box, ok := s.boundingBox()
	if !ok {
		return
	}
	center := box.Center()
	radius := box.Size().Length() / 2
	if radius == 0 {
		return
	}

	up := Vector{0, 1, 0}
	if math.Abs(s.Sun.Direction.Dot(up)) > 0.99 {
		up = Vector{1, 0, 0}
	}
	eye := center.Add(s.Sun.Direction.MulScalar(radius * 2))
	view := LookAt(eye, center, up)
	lightVP := view.Orthographic(-radius, radius, -radius, radius, radius*0.1, radius*4)

	size := s.ShadowMapSize
	if size <= 0 {
		size = DefaultShadowMapSize
	}
	shader := NewDepthShader(lightVP)
	dc := NewDepthContext(size, shader)
	for _, o := range s.Objects {
		if o.Mesh == nil {
			continue
		}
		dc.DrawObject(o)
	}

	s.Sun.ViewProjection = lightVP
	s.Sun.ShadowMap = dc.DepthMap()
}

// drawOutlinePass renders the inflated silhouettes of outlined objects,
// front-culled so only the hull's far side shows around each object.
func (s *Scene) drawOutlinePass() {
	prevShader := s.Context.Shader
	prevCull := s.Context.Cull
	defer func() {
		s.Context.Shader = prevShader
		s.Context.Cull = prevCull
	}()

	var vp Matrix
	if cs, ok := prevShader.(*CelShader); ok {
		vp = cs.ViewProjection
	} else if fs, ok := prevShader.(*FlatShader); ok {
		vp = fs.ViewProjection
	} else {
		return
	}

	for _, o := range s.Objects {
		mat := o.material()
		if o.Mesh == nil || mat.OutlineWidth <= 0 {
			continue
		}
		outline := NewOutlineShader(vp, mat.OutlineWidth, mat.OutlineColor)
		s.Context.Shader = outline
		s.Context.Cull = CullFront
		s.Context.DrawObject(o)
	}
}

func (s *Scene) render(fit bool, objects []*Object) {
	s.AddObjects(objects)
	if fit {
		newMatrix := s.FitObjectsToScene(s.eye, s.center, s.up, s.fovy, s.aspect, 1, 999)
		s.Shader.SetViewProjection(newMatrix)
	}

	s.RenderShadowPass()
	s.drawOutlinePass()

	for _, o := range s.Objects {
		if o.Mesh == nil {
			log.Printf("eternae: object attempted to render with nil mesh")
			continue
		}
		s.Context.DrawObject(o)
	}
}

// Image returns the rendered frame, downsampled when supersampling.
func (s *Scene) Image() image.Image {
	im := s.Context.Image()
	if s.scale > 1 {
		im = Downsample(im, s.size)
	}
	return im
}

// Draw renders the scene and writes a PNG to path.
func (s *Scene) Draw(fit bool, path string, objects []*Object) {
	file, err := os.Create(path)
	if err != nil {
		log.Printf("eternae: could not create file in Draw: %v", err)
		return
	}
	defer file.Close()

	if err := s.DrawToWriter(fit, file, objects); err != nil {
		log.Printf("eternae: could not encode png in Draw: %v", err)
	}
}

// DrawToWriter renders the scene and encodes a PNG to the writer.
func (s *Scene) DrawToWriter(fit bool, writer io.Writer, objects []*Object) error {
	s.render(fit, objects)
	return png.Encode(writer, s.Image())
}

// GenerateScene renders objects under a sun light to a PNG file.
func GenerateScene(fit bool, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector) {
	file, err := os.Create(path)
	if err != nil {
		log.Printf("eternae: could not create file for GenerateScene: %v", err)
		return
	}
	defer file.Close()

	if err := GenerateSceneToWriter(file, objects, eye, center, up, fovy, size, scale, light, fit); err != nil {
		log.Printf("eternae: could not generate scene to file: %v", err)
	}
}

// GenerateSceneWithShader renders with a caller-provided shader.
func GenerateSceneWithShader(fit bool, shader CameraShader, path string, objects []*Object, eye, center, up Vector, fovy float64, size, scale int) {
	scene := NewScene(eye, center, up, fovy, size, scale, shader)
	scene.Draw(fit, path, objects)
}

// GenerateSceneToWriter renders objects under a sun light and encodes a
// PNG to the writer.
func GenerateSceneToWriter(writer io.Writer, objects []*Object, eye, center, up Vector, fovy float64, size, scale int, light Vector, fit bool) error {
	sun := NewSunLight(light)
	scene := NewCelScene(eye, center, up, fovy, size, scale, sun)
	return scene.DrawToWriter(fit, writer, objects)
}
