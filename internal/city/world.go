package city

// Axis is the world axis an actor travels along.
type Axis int

const (
	AxisHorizontal Axis = iota // moves along x
	AxisVertical               // moves along z
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Building is immutable after placement; nothing mutates or destroys it
// during the session.
type Building struct {
	Mesh Renderable
	X, Z float64
	Kind BuildingKind
}

// Vehicle travels along one axis at a fixed lane offset from its road's
// centreline. Direction is fully determined by the lane sign.
type Vehicle struct {
	Mesh       Renderable
	Headlights Emissive
	Axis       Axis
	Road       int     // grid index of the road strip
	Lane       float64 // ±LaneOffset from the road centreline
	Cross      float64 // fixed coordinate on the non-moving axis
	Pos        float64 // coordinate on the moving axis
	Speed      float64 // world units per frame, > 0
	Dir        float64 // +1 or -1
}

// Pedestrian mirrors Vehicle but walks the sidewalk and is slower.
type Pedestrian struct {
	Mesh  Renderable
	Axis  Axis
	Road  int
	Side  float64 // ±1, which sidewalk
	Cross float64
	Pos   float64
	Speed float64
	Dir   float64
}

// SignalPhase is a traffic signal's current colour state.
type SignalPhase int

const (
	PhaseRed SignalPhase = iota
	PhaseYellow
	PhaseGreen
)

func (p SignalPhase) String() string {
	switch p {
	case PhaseYellow:
		return "yellow"
	case PhaseGreen:
		return "green"
	default:
		return "red"
	}
}

// TrafficSignal is an independent per-intersection state machine; there is
// no cross-signal coordination.
type TrafficSignal struct {
	Mesh  Renderable
	Lamps [3]Emissive // indexed by SignalPhase
	Phase SignalPhase
	Timer float64
}

// FurnitureKind classifies street furniture.
type FurnitureKind int

const (
	FurnLamppost FurnitureKind = iota
	FurnBench
	FurnTree
)

func (k FurnitureKind) String() string {
	switch k {
	case FurnBench:
		return "bench"
	case FurnTree:
		return "tree"
	default:
		return "lamppost"
	}
}

// Furniture is static decoration. Light and Bulb are set for lampposts only
// and are driven by the day/night controller.
type Furniture struct {
	Mesh  Renderable
	Kind  FurnitureKind
	Light Emissive
	Bulb  Emissive
}

// WorldClock is the single sim-time scalar; it only ever moves forward by
// the fixed per-frame increment.
type WorldClock struct {
	Time float64
}

func (c *WorldClock) Advance(dt float64) {
	c.Time += dt
}

// DayProgress is the fractional position within the current cycle, in [0,1).
func (c WorldClock) DayProgress(dayDuration float64) float64 {
	p := c.Time / dayDuration
	return p - float64(int(p))
}

// Environment receives the global lighting writes of the day/night
// controller. The render scene implements it; tests use a stub.
type Environment interface {
	SetSun(x, y, z, intensity float64)
	SetAmbient(intensity float64)
	SetSkyColor(c RGB)
}

// World owns the four actor registries and the clock. All state is written
// by the single per-frame update pass; there is no concurrent mutation and
// therefore no locking.
type World struct {
	Cfg   Config
	Clock WorldClock

	Buildings   []Building
	Vehicles    []Vehicle
	Pedestrians []Pedestrian
	Signals     []TrafficSignal
	Furniture   []Furniture

	seed uint64
	rng  *Rand
}

// Step advances the scene by one frame: clock, then lighting, then motion,
// then signals. The frame driver calls it once per render frame.
func (w *World) Step(env Environment) {
	w.Clock.Advance(w.Cfg.TimeStep)
	w.UpdateDayNight(env)
	w.UpdateMotion()
	w.UpdateSignals(w.Cfg.TimeStep)
}

// SunHeight is the current sun height proxy in [0,100], exposed so callers
// outside the update pass (ambience volume) can follow the cycle.
func (w *World) SunHeight() float64 {
	return SunHeight(w.Clock.DayProgress(w.Cfg.DayDuration))
}
