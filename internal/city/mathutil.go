package city

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hash2D returns a deterministic 64-bit hash for (i,j) under the given seed.
func hash2D(seed uint64, i, j int) uint64 {
	ui := uint64(uint32(i))
	uj := uint64(uint32(j))
	h := seed
	h ^= ui * 0x9E3779B185EBCA87
	h ^= uj * 0xC2B2AE3D27D4EB4F
	return splitmix64(h)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpF(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// RGB is a linear colour with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// Lerp blends per channel; t is clamped so band endpoints are exact.
func (c RGB) Lerp(to RGB, t float64) RGB {
	return RGB{
		R: lerpF(c.R, to.R, t),
		G: lerpF(c.G, to.G, t),
		B: lerpF(c.B, to.B, t),
	}
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Sign returns +1 or -1.
func (r *Rand) Sign() float64 {
	if r.NextU64()&1 == 0 {
		return 1
	}
	return -1
}
