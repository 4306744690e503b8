package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"cityscape/internal/city"
)

// Part is one material range inside an object's vertex buffer. Emissive is
// the only field the simulation touches after construction.
type Part struct {
	First    int32
	Count    int32
	Color    [3]float32
	Emissive float32
}

// Object is a placed mesh: one VAO/VBO plus its material parts. It is the
// concrete city.Renderable the factory hands to the planner.
type Object struct {
	vao, vbo uint32
	parts    []Part

	pos mgl32.Vec3
	yaw float32
}

func (o *Object) SetPosition(x, y, z float64) {
	o.pos = mgl32.Vec3{float32(x), float32(y), float32(z)}
}

func (o *Object) SetYaw(rad float64) {
	o.yaw = float32(rad)
}

func (o *Object) model() mgl32.Mat4 {
	return mgl32.Translate3D(o.pos.X(), o.pos.Y(), o.pos.Z()).
		Mul4(mgl32.HomogRotate3DY(o.yaw))
}

// partEmissive is the settable emissive-intensity handle for one part.
type partEmissive struct {
	obj *Object
	idx int
}

func (p partEmissive) SetIntensity(v float64) {
	p.obj.parts[p.idx].Emissive = float32(v)
}

// Scene owns every object plus the global lighting state. It implements
// city.Environment so the day/night controller can drive it directly.
type Scene struct {
	objects []*Object

	sunDir       mgl32.Vec3
	sunIntensity float32
	ambient      float32
	sky          [3]float32
}

func NewScene() *Scene {
	return &Scene{
		sunDir:       mgl32.Vec3{0, 1, 0},
		sunIntensity: 1,
		ambient:      0.3,
		sky:          [3]float32{0.53, 0.81, 0.92},
	}
}

func (s *Scene) add(o *Object) {
	s.objects = append(s.objects, o)
}

func (s *Scene) SetSun(x, y, z, intensity float64) {
	d := mgl32.Vec3{float32(x), float32(y), float32(z)}
	if d.Len() > 0 {
		d = d.Normalize()
	}
	s.sunDir = d
	s.sunIntensity = float32(intensity)
}

func (s *Scene) SetAmbient(intensity float64) {
	s.ambient = float32(intensity)
}

func (s *Scene) SetSkyColor(c city.RGB) {
	s.sky = [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}
