package city

import "math"

// Sky palette, blended per channel in this space.
var (
	SkyDay    = RGB{R: 0.53, G: 0.81, B: 0.92}
	SkySunset = RGB{R: 0.98, G: 0.49, B: 0.25}
	SkyNight  = RGB{R: 0.02, G: 0.03, B: 0.08}
)

// SunHeight maps day progress to the sun height proxy in [0,100].
// 50 at dawn (progress 0), 100 at noon (0.25), 0 at midnight (0.75).
func SunHeight(progress float64) float64 {
	return math.Sin(progress*2*math.Pi)*50 + 50
}

// SunAngle is the sun's angular position on its orbit.
func SunAngle(progress float64) float64 {
	return progress*2*math.Pi - math.Pi/2
}

// SunPosition places the sun on a circle of SunOrbitRadius at the current
// angle and height.
func SunPosition(progress float64) (x, y, z float64) {
	a := SunAngle(progress)
	return math.Cos(a) * SunOrbitRadius, SunHeight(progress), math.Sin(a) * SunOrbitRadius
}

// LightLevels returns sun and ambient intensity for a sun height. Full
// daylight above DaytimeHeight, then the sun fades linearly to zero.
func LightLevels(h float64) (sun, ambient float64) {
	if h > DaytimeHeight {
		return 1.0, 0.3
	}
	return math.Max(0, h/DaytimeHeight), 0.1
}

// SkyColor blends the sky through night, sunset and day bands. The bands
// agree at their shared endpoints, so the colour is continuous in h.
func SkyColor(h float64) RGB {
	switch {
	case h > 80:
		return SkyDay
	case h > 25:
		return SkySunset.Lerp(SkyDay, (h-25)/55)
	case h > 0:
		return SkyNight.Lerp(SkySunset, h/25)
	default:
		return SkyNight
	}
}

// LampIntensity ramps street lamps up as the sun sinks below LampOnHeight;
// zero in daylight, full at h<=0. Monotonically non-increasing in h.
func LampIntensity(h float64) float64 {
	return math.Max(0, 1-h/LampOnHeight)
}

// HeadlightIntensity switches car headlights hard on below HeadlightHeight.
func HeadlightIntensity(h float64) float64 {
	if h < HeadlightHeight {
		return 1
	}
	return 0
}

// UpdateDayNight recomputes the whole lighting state for the current clock:
// sun position and intensity, ambient level, sky colour, street lamp and
// headlight emissives. It only writes intensities and colours, never
// positions, and is pure given (day progress, registries).
func (w *World) UpdateDayNight(env Environment) {
	progress := w.Clock.DayProgress(w.Cfg.DayDuration)
	h := SunHeight(progress)

	x, y, z := SunPosition(progress)
	sun, ambient := LightLevels(h)
	env.SetSun(x, y, z, sun)
	env.SetAmbient(ambient)
	env.SetSkyColor(SkyColor(h))

	lamp := LampIntensity(h)
	for i := range w.Furniture {
		f := &w.Furniture[i]
		if f.Kind != FurnLamppost {
			continue
		}
		f.Light.SetIntensity(lamp)
		f.Bulb.SetIntensity(lamp)
	}

	head := HeadlightIntensity(h)
	for i := range w.Vehicles {
		w.Vehicles[i].Headlights.SetIntensity(head)
	}
}
