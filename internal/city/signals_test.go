package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSignal(phase SignalPhase, timer float64) (*TrafficSignal, [3]*fakeEmissive) {
	var lamps [3]*fakeEmissive
	s := &TrafficSignal{Mesh: &fakeMesh{}, Phase: phase, Timer: timer}
	for i := range lamps {
		lamps[i] = &fakeEmissive{}
		s.Lamps[i] = lamps[i]
	}
	return s, lamps
}

func TestSignalFlipsOnlyPastThreshold(t *testing.T) {
	// Dyadic increments keep the arithmetic exact: reaching the threshold
	// is not yet exceeding it.
	const dt = 0.0078125
	s, _ := newTestSignal(PhaseRed, SignalPhaseDuration-dt)

	s.update(dt)
	assert.Equal(t, PhaseRed, s.Phase, "timer == threshold must not flip")
	assert.Equal(t, SignalPhaseDuration, s.Timer)

	s.update(dt)
	assert.Equal(t, PhaseYellow, s.Phase)
	assert.Equal(t, 0.0, s.Timer, "timer resets on flip")
}

func TestSignalCycleOrder(t *testing.T) {
	s, _ := newTestSignal(PhaseRed, 0)
	var phases []SignalPhase
	for flips := 0; flips < 3; {
		before := s.Phase
		s.update(1.0)
		if s.Phase != before {
			phases = append(phases, s.Phase)
			flips++
		}
	}
	assert.Equal(t, []SignalPhase{PhaseYellow, PhaseGreen, PhaseRed}, phases,
		"after exactly 3 flips the signal is red again")
}

func TestSignalExactlyOneLampLit(t *testing.T) {
	s, lamps := newTestSignal(PhaseGreen, 0)
	for frame := 0; frame < 2000; frame++ {
		s.update(DefaultTimeStep)
		lit := 0
		for p, l := range lamps {
			if l.intensity > 0 {
				lit++
				assert.Equal(t, SignalPhase(p), s.Phase)
			}
		}
		assert.Equal(t, 1, lit, "frame %d", frame)
	}
}

func TestSignalLampWritesIdempotent(t *testing.T) {
	s, lamps := newTestSignal(PhaseRed, 0)
	s.update(0)
	s.update(0)
	assert.Equal(t, 1.0, lamps[PhaseRed].intensity)
	assert.Equal(t, 0.0, lamps[PhaseYellow].intensity)
	assert.Equal(t, 0.0, lamps[PhaseGreen].intensity)
}

func TestSignalsDesynchronizedAtStartup(t *testing.T) {
	w, _ := testWorld(31337)
	phases := map[SignalPhase]bool{}
	timers := map[float64]bool{}
	for _, s := range w.Signals {
		phases[s.Phase] = true
		timers[s.Timer] = true
		assert.GreaterOrEqual(t, s.Timer, 0.0)
		assert.Less(t, s.Timer, SignalPhaseDuration)
	}
	// 9 signals with random phase and timer offsets should not line up.
	assert.Greater(t, len(timers), 1)
}
