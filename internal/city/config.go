package city

// World defaults (world units unless noted).
const (
	DefaultGridSize      = 100.0 // world extent per axis
	DefaultGridDivisions = 10    // cells per axis
	DefaultDayDuration   = 120.0 // seconds of sim time per full day/night cycle
	DefaultTimeStep      = 0.01  // sim time added per frame
)

// Road/city-block layout. Every third grid index (offset 1) is a road.
const (
	RoadModulus    = 3
	RoadResidue    = 1
	RoadWidth      = 6.0
	LaneOffset     = 2.0 // lane centre distance from road centreline
	SidewalkOffset = 3.2 // pedestrian distance from road centreline
	CurbOffset     = 4.2 // street furniture distance from road centreline
)

// Actor counts.
const (
	CarsPerLane = 3 // per lane per road strip; two lanes per strip
	PedsPerRoad = 6 // per road strip per axis
)

// Speeds (world units per frame).
const (
	CarSpeedMin = 0.08
	CarSpeedMax = 0.16
	PedSpeedMin = 0.01
	PedSpeedMax = 0.03
)

// Traffic signal timing (sim time units per phase).
const SignalPhaseDuration = 5.0

// Day/night cycle.
const (
	SunOrbitRadius  = 100.0
	DaytimeHeight   = 50.0 // sun height above which full daylight applies
	LampOnHeight    = 30.0 // sun height below which street lamps fade in
	HeadlightHeight = 40.0 // sun height below which headlights switch on
)

// Config is the full parameter set for one city scene. There is no file
// format behind it; callers fill it in (or take DefaultConfig) at startup.
type Config struct {
	GridSize      float64
	GridDivisions int
	DayDuration   float64
	TimeStep      float64
}

func DefaultConfig() Config {
	return Config{
		GridSize:      DefaultGridSize,
		GridDivisions: DefaultGridDivisions,
		DayDuration:   DefaultDayDuration,
		TimeStep:      DefaultTimeStep,
	}
}

// BlockSize is one grid cell's world-space footprint.
func (c Config) BlockSize() float64 {
	return c.GridSize / float64(c.GridDivisions)
}

// HalfSize is the world bound on each moving axis; actors wrap at ±HalfSize.
func (c Config) HalfSize() float64 {
	return c.GridSize / 2
}

// CellCenter maps a grid index to the world coordinate of the cell centre.
func (c Config) CellCenter(i int) float64 {
	return float64(i)*c.BlockSize() - c.HalfSize() + c.BlockSize()/2
}
