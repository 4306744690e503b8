package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws the whole scene with one lit-color program.
type Renderer struct {
	program uint32

	uProj         int32
	uView         int32
	uModel        int32
	uColor        int32
	uEmissive     int32
	uSunDir       int32
	uSunIntensity int32
	uAmbient      int32
}

func NewRenderer() (*Renderer, error) {
	program, err := linkProgram(sceneVertSrc, sceneFragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}
	r := &Renderer{program: program}
	r.uProj = gl.GetUniformLocation(program, gl.Str("uProj\x00"))
	r.uView = gl.GetUniformLocation(program, gl.Str("uView\x00"))
	r.uModel = gl.GetUniformLocation(program, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(program, gl.Str("uColor\x00"))
	r.uEmissive = gl.GetUniformLocation(program, gl.Str("uEmissive\x00"))
	r.uSunDir = gl.GetUniformLocation(program, gl.Str("uSunDir\x00"))
	r.uSunIntensity = gl.GetUniformLocation(program, gl.Str("uSunIntensity\x00"))
	r.uAmbient = gl.GetUniformLocation(program, gl.Str("uAmbient\x00"))
	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.program)
}

// Draw clears to the sky colour and renders every object part by part.
func (r *Renderer) Draw(s *Scene, cam *OrbitCamera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(s.sky[0], s.sky[1], s.sky[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := mgl32.Perspective(mgl32.DegToRad(50), float32(fbW)/float32(fbH), 0.5, 600)
	view := cam.View()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.Uniform3f(r.uSunDir, s.sunDir.X(), s.sunDir.Y(), s.sunDir.Z())
	gl.Uniform1f(r.uSunIntensity, s.sunIntensity)
	gl.Uniform1f(r.uAmbient, s.ambient)

	for _, obj := range s.objects {
		model := obj.model()
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		gl.BindVertexArray(obj.vao)
		for i := range obj.parts {
			p := &obj.parts[i]
			if p.Count == 0 {
				continue
			}
			gl.Uniform3f(r.uColor, p.Color[0], p.Color[1], p.Color[2])
			gl.Uniform1f(r.uEmissive, p.Emissive)
			gl.DrawArrays(gl.TRIANGLES, p.First, p.Count)
		}
	}
	gl.BindVertexArray(0)
}
