// Package ambience synthesizes the city's background sound: a low traffic
// hum during the day that crossfades into crickets at night. Everything is
// generated procedurally; there are no sample assets.
package ambience

import (
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

var (
	ctx    *oto.Context
	player oto.Player

	// nightFactor is written by the frame loop and read by the audio
	// goroutine; 0 = noon, 1 = midnight.
	nightFactor atomic.Uint64
)

// Init starts the audio context and the endless ambience stream. Callers
// treat failure as non-fatal; the scene runs fine silent.
func Init() error {
	c, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	ctx = c
	go func() {
		<-ready
		player = ctx.NewPlayer(&stream{})
		player.SetVolume(0.6)
		player.Play()
	}()
	return nil
}

// SetNightFactor updates the day/night crossfade, clamped to [0,1].
func SetNightFactor(f float64) {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	nightFactor.Store(math.Float64bits(f))
}

func night() float64 {
	return math.Float64frombits(nightFactor.Load())
}

// stream is an endless stereo float32 sample generator.
type stream struct {
	t      float64
	rng    uint64
	lp     float64 // one-pole lowpass state for the hum noise bed
	chirp  float64 // cricket chirp envelope phase
}

func (s *stream) noise() float64 {
	if s.rng == 0 {
		s.rng = 0x2545F4914F6CDD1D
	}
	x := s.rng
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.rng = x
	return float64(x>>11)/(1<<52) - 1
}

func (s *stream) Read(p []byte) (int, error) {
	frames := len(p) / 8 // 2 channels x 4 bytes
	nf := night()
	day := 1 - nf
	dt := 1.0 / SampleRate

	for i := 0; i < frames; i++ {
		s.t += dt

		// Traffic hum: stacked low sines over a lowpassed noise bed.
		s.lp += 0.02 * (s.noise() - s.lp)
		hum := 0.05*math.Sin(2*math.Pi*52*s.t) +
			0.03*math.Sin(2*math.Pi*65*s.t) +
			0.02*math.Sin(2*math.Pi*110*s.t) +
			0.04*s.lp
		hum *= 0.25 + 0.75*day

		// Crickets: short 4.2 kHz bursts repeating ~6 times a second.
		s.chirp += dt * 6
		if s.chirp >= 1 {
			s.chirp -= 1
		}
		env := 0.0
		if s.chirp < 0.18 {
			env = math.Sin(math.Pi * s.chirp / 0.18)
		}
		cricket := 0.06 * env * math.Sin(2*math.Pi*4200*s.t) * nf

		sample := hum + cricket
		putStereoF32(p, i, sample)
	}
	return frames * 8, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
