package city

import "math"

// UpdateMotion advances every vehicle and pedestrian by speed*direction
// along its axis, once per frame. Crossing a world bound teleports the
// actor to the opposite bound in the same update; there is no collision
// detection and actors overlap freely.
func (w *World) UpdateMotion() {
	half := w.Cfg.HalfSize()
	for i := range w.Vehicles {
		v := &w.Vehicles[i]
		v.Pos = wrap(v.Pos+v.Speed*v.Dir, v.Dir, half)
		v.place()
	}
	for i := range w.Pedestrians {
		p := &w.Pedestrians[i]
		p.Pos = wrap(p.Pos+p.Speed*p.Dir, p.Dir, half)
		p.place()
		p.Mesh.SetYaw(pedestrianYaw(p.Axis, p.Dir))
	}
}

// wrap resets a coordinate to the far bound the moment it leaves [-half,
// half] in the travel direction. The reset lands exactly on the bound, so
// overshoot never accumulates across frames.
func wrap(pos, dir, half float64) float64 {
	if dir > 0 && pos > half {
		return -half
	}
	if dir < 0 && pos < -half {
		return half
	}
	return pos
}

func (v *Vehicle) place() {
	if v.Axis == AxisHorizontal {
		v.Mesh.SetPosition(v.Pos, 0, v.Cross)
	} else {
		v.Mesh.SetPosition(v.Cross, 0, v.Pos)
	}
}

func (p *Pedestrian) place() {
	if p.Axis == AxisHorizontal {
		p.Mesh.SetPosition(p.Pos, 0, p.Cross)
	} else {
		p.Mesh.SetPosition(p.Cross, 0, p.Pos)
	}
}

// pedestrianYaw is the fixed facing lookup; no smoothing.
func pedestrianYaw(axis Axis, dir float64) float64 {
	if axis == AxisHorizontal {
		if dir > 0 {
			return math.Pi / 2
		}
		return -math.Pi / 2
	}
	if dir > 0 {
		return 0
	}
	return math.Pi
}
