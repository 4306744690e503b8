package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles the city centre slowly; there is no user control.
type OrbitCamera struct {
	Angle  float32 // radians around the vertical axis
	Radius float32
	Height float32
	Speed  float32 // radians per second
}

func NewOrbitCamera(gridSize float64) *OrbitCamera {
	return &OrbitCamera{
		Radius: float32(gridSize) * 0.85,
		Height: float32(gridSize) * 0.45,
		Speed:  0.04,
	}
}

func (c *OrbitCamera) Update(dt float64) {
	c.Angle += c.Speed * float32(dt)
	if c.Angle > 2*math32.Pi {
		c.Angle -= 2 * math32.Pi
	}
}

func (c *OrbitCamera) View() mgl32.Mat4 {
	eye := mgl32.Vec3{
		math32.Cos(c.Angle) * c.Radius,
		c.Height,
		math32.Sin(c.Angle) * c.Radius,
	}
	return mgl32.LookAtV(eye, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 1, 0})
}
