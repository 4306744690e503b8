package city

// UpdateSignals steps every traffic signal's timer by the fixed per-frame
// increment and applies the lamp state. Each signal is independent; there
// is no green-wave coordination across intersections.
func (w *World) UpdateSignals(dt float64) {
	for i := range w.Signals {
		w.Signals[i].update(dt)
	}
}

// update advances the RED→YELLOW→GREEN→RED cycle once the timer exceeds
// the phase duration, then forces exactly one lamp on. The lamp writes are
// idempotent; calling redundantly is safe.
func (s *TrafficSignal) update(dt float64) {
	s.Timer += dt
	if s.Timer > SignalPhaseDuration {
		s.Phase = (s.Phase + 1) % 3
		s.Timer = 0
	}
	for p, lamp := range s.Lamps {
		if SignalPhase(p) == s.Phase {
			lamp.SetIntensity(1)
		} else {
			lamp.SetIntensity(0)
		}
	}
}
