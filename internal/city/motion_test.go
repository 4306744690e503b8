package city

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapForward(t *testing.T) {
	// Crossing +half resets to exactly -half in the same update.
	assert.Equal(t, -50.0, wrap(49.9+0.2, 1, 50))
	// Landing exactly on the bound does not wrap.
	assert.Equal(t, 50.0, wrap(50.0, 1, 50))
	assert.Equal(t, 10.2, wrap(10.2, 1, 50))
}

func TestWrapBackward(t *testing.T) {
	assert.Equal(t, 50.0, wrap(-49.9-0.2, -1, 50))
	assert.Equal(t, -50.0, wrap(-50.0, -1, 50))
}

func TestVehicleWrapNoOvershootAccumulation(t *testing.T) {
	m := &fakeMesh{}
	w := &World{Cfg: DefaultConfig()}
	w.Vehicles = []Vehicle{{
		Mesh: m, Headlights: &fakeEmissive{},
		Axis: AxisHorizontal, Lane: LaneOffset, Cross: 12,
		Pos: 49.9, Speed: 0.2, Dir: 1,
	}}

	w.UpdateMotion()
	v := w.Vehicles[0]
	assert.Equal(t, -50.0, v.Pos, "reset lands exactly on the far bound")
	assert.Equal(t, -50.0, m.x)
	assert.Equal(t, 12.0, m.z, "lane coordinate never moves")

	w.UpdateMotion()
	assert.Equal(t, -49.8, w.Vehicles[0].Pos)
}

func TestPedestrianFacingLookup(t *testing.T) {
	assert.Equal(t, math.Pi/2, pedestrianYaw(AxisHorizontal, 1))
	assert.Equal(t, -math.Pi/2, pedestrianYaw(AxisHorizontal, -1))
	assert.Equal(t, 0.0, pedestrianYaw(AxisVertical, 1))
	assert.Equal(t, math.Pi, pedestrianYaw(AxisVertical, -1))
}

func TestPedestrianMovesOnSidewalk(t *testing.T) {
	m := &fakeMesh{}
	w := &World{Cfg: DefaultConfig()}
	w.Pedestrians = []Pedestrian{{
		Mesh: m, Axis: AxisVertical, Side: -1, Cross: -3.2,
		Pos: 0, Speed: 0.02, Dir: -1,
	}}

	w.UpdateMotion()
	p := w.Pedestrians[0]
	assert.InDelta(t, -0.02, p.Pos, 1e-12)
	assert.Equal(t, -3.2, m.x, "sidewalk coordinate never moves")
	assert.InDelta(t, -0.02, m.z, 1e-12)
	assert.Equal(t, math.Pi, m.yaw)
}

func TestMotionStaysInBounds(t *testing.T) {
	w, _ := testWorld(2024)
	half := w.Cfg.HalfSize()
	for frame := 0; frame < 5000; frame++ {
		w.UpdateMotion()
	}
	for _, v := range w.Vehicles {
		assert.LessOrEqual(t, v.Pos, half)
		assert.GreaterOrEqual(t, v.Pos, -half)
	}
	for _, p := range w.Pedestrians {
		assert.LessOrEqual(t, p.Pos, half)
		assert.GreaterOrEqual(t, p.Pos, -half)
	}
}
