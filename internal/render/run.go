package render

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cityscape/internal/ambience"
	"cityscape/internal/city"
)

// RunDesktop builds the city once and then drives the per-frame update
// loop at display refresh rate until the window closes.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := ambience.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("CITY_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)

	// One-shot layout: the planner fills the registries, the factory
	// registers every mesh with the scene.
	cfg := city.DefaultConfig()
	scene := NewScene()
	factory := NewFactory(scene, seed)
	factory.CreateGround(cfg.GridSize)

	world, err := city.NewWorld(cfg, factory, seed)
	if err != nil {
		panic(fmt.Errorf("build city: %w", err))
	}

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	cam := NewOrbitCamera(cfg.GridSize)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Fixed sim tick per frame; wall time only drives the camera.
		world.Step(scene)
		ambience.SetNightFactor(1 - world.SunHeight()/city.DaytimeHeight)
		cam.Update(dt)

		rend.Draw(scene, cam, fbW, fbH)
		window.SwapBuffers()
	}
}
