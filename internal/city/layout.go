package city

import (
	"fmt"
	"math"
)

// NewWorld runs the one-shot layout pass: buildings, roads (with vehicles
// and signals), pedestrians, street furniture. Everything the factory
// cannot build is a fatal error; there is no partial-city fallback.
//
// A single seeded RNG drives every random sub-choice, so a fixed seed
// reproduces the exact same city.
func NewWorld(cfg Config, factory MeshFactory, seed uint64) (*World, error) {
	if cfg.GridDivisions <= 0 || cfg.GridSize <= 0 {
		return nil, fmt.Errorf("layout: bad grid %+v", cfg)
	}
	if seed == 0 {
		seed = 1
	}
	w := &World{Cfg: cfg, seed: seed, rng: NewRand(seed)}

	if err := w.placeBuildings(factory); err != nil {
		return nil, err
	}
	if err := w.placeRoads(factory); err != nil {
		return nil, err
	}
	if err := w.placePedestrians(factory); err != nil {
		return nil, err
	}
	if err := w.placeFurniture(factory); err != nil {
		return nil, err
	}
	return w, nil
}

// roadIndices lists the grid indices carrying a road strip.
func (w *World) roadIndices() []int {
	var idx []int
	for i := 0; i < w.Cfg.GridDivisions; i++ {
		if RoadIndex(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (w *World) placeBuildings(factory MeshFactory) error {
	n := w.Cfg.GridDivisions
	block := w.Cfg.BlockSize()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if RoleAt(i, j) != RoleBuilding {
				continue
			}
			kind := BuildingKindAt(i, j)
			mesh, _, err := factory.Create(kind.meshCategory(), MeshParams{
				Width:   block * 0.8,
				Depth:   block * 0.8,
				Variant: hash2D(w.seed, i, j),
			})
			if err != nil {
				return fmt.Errorf("create %s at cell (%d,%d): %w", kind, i, j, err)
			}
			x := w.Cfg.CellCenter(i)
			z := w.Cfg.CellCenter(j)
			mesh.SetPosition(x, 0, z)
			w.Buildings = append(w.Buildings, Building{Mesh: mesh, X: x, Z: z, Kind: kind})
		}
	}
	return nil
}

func (w *World) placeRoads(factory MeshFactory) error {
	for _, r := range w.roadIndices() {
		for _, axis := range []Axis{AxisHorizontal, AxisVertical} {
			if err := w.placeRoadStrip(factory, axis, r); err != nil {
				return err
			}
		}
	}
	return w.placeSignals(factory)
}

// placeRoadStrip lays one full-length road plus its centreline, crosswalks
// at every crossing road index, and the strip's vehicles.
func (w *World) placeRoadStrip(factory MeshFactory, axis Axis, road int) error {
	center := w.Cfg.CellCenter(road)
	p := MeshParams{Width: w.Cfg.GridSize, Depth: RoadWidth, Axis: axis}

	strip, _, err := factory.Create(MeshRoad, p)
	if err != nil {
		return fmt.Errorf("create %s road %d: %w", axis, road, err)
	}
	line, _, err := factory.Create(MeshCenterline, p)
	if err != nil {
		return fmt.Errorf("create centerline for %s road %d: %w", axis, road, err)
	}
	if axis == AxisHorizontal {
		strip.SetPosition(0, 0, center)
		line.SetPosition(0, 0, center)
	} else {
		strip.SetPosition(center, 0, 0)
		line.SetPosition(center, 0, 0)
	}

	for _, c := range w.roadIndices() {
		walk, _, err := factory.Create(MeshCrosswalk, MeshParams{Width: RoadWidth, Depth: RoadWidth, Axis: axis})
		if err != nil {
			return fmt.Errorf("create crosswalk: %w", err)
		}
		cross := w.Cfg.CellCenter(c)
		if axis == AxisHorizontal {
			walk.SetPosition(cross, 0, center)
		} else {
			walk.SetPosition(center, 0, cross)
		}
	}

	return w.spawnVehicles(factory, axis, road, center)
}

// spawnVehicles adds the strip's cars, alternating between the two lane
// offsets. Facing is fully determined by the lane sign: the positive lane
// always drives forward, the negative lane always reverse.
func (w *World) spawnVehicles(factory MeshFactory, axis Axis, road int, center float64) error {
	half := w.Cfg.HalfSize()
	for n := 0; n < 2*CarsPerLane; n++ {
		lane := LaneOffset
		if n%2 == 1 {
			lane = -LaneOffset
		}
		dir := math.Copysign(1, lane)

		mesh, info, err := factory.Create(MeshCar, MeshParams{Variant: w.rng.NextU64()})
		if err != nil {
			return fmt.Errorf("create car on %s road %d: %w", axis, road, err)
		}
		head, err := info.emissive(MeshCar, EmissiveHeadlights)
		if err != nil {
			return err
		}

		v := Vehicle{
			Mesh:       mesh,
			Headlights: head,
			Axis:       axis,
			Road:       road,
			Lane:       lane,
			Cross:      center + lane,
			Pos:        w.rng.RangeF(-half, half),
			Speed:      w.rng.RangeF(CarSpeedMin, CarSpeedMax),
			Dir:        dir,
		}
		mesh.SetYaw(vehicleYaw(axis, dir))
		v.place()
		w.Vehicles = append(w.Vehicles, v)
	}
	return nil
}

func (w *World) placeSignals(factory MeshFactory) error {
	for _, i := range w.roadIndices() {
		for _, j := range w.roadIndices() {
			mesh, info, err := factory.Create(MeshTrafficLight, MeshParams{})
			if err != nil {
				return fmt.Errorf("create signal at (%d,%d): %w", i, j, err)
			}
			s := TrafficSignal{
				Mesh: mesh,
				// Desynchronized start: random phase and timer offset.
				Phase: SignalPhase(w.rng.Intn(3)),
				Timer: w.rng.RangeF(0, SignalPhaseDuration),
			}
			for p, tag := range []string{EmissiveRed, EmissiveYellow, EmissiveGreen} {
				lamp, err := info.emissive(MeshTrafficLight, tag)
				if err != nil {
					return err
				}
				s.Lamps[p] = lamp
			}
			mesh.SetPosition(w.Cfg.CellCenter(i)+CurbOffset, 0, w.Cfg.CellCenter(j)+CurbOffset)
			w.Signals = append(w.Signals, s)
		}
	}
	return nil
}

func (w *World) placePedestrians(factory MeshFactory) error {
	half := w.Cfg.HalfSize()
	for _, axis := range []Axis{AxisHorizontal, AxisVertical} {
		for _, r := range w.roadIndices() {
			center := w.Cfg.CellCenter(r)
			for n := 0; n < PedsPerRoad; n++ {
				mesh, _, err := factory.Create(MeshPedestrian, MeshParams{Variant: w.rng.NextU64()})
				if err != nil {
					return fmt.Errorf("create pedestrian on %s road %d: %w", axis, r, err)
				}
				side := w.rng.Sign()
				p := Pedestrian{
					Mesh:  mesh,
					Axis:  axis,
					Road:  r,
					Side:  side,
					Cross: center + side*SidewalkOffset,
					Pos:   w.rng.RangeF(-half, half),
					Speed: w.rng.RangeF(PedSpeedMin, PedSpeedMax),
					Dir:   w.rng.Sign(),
				}
				p.place()
				w.Pedestrians = append(w.Pedestrians, p)
			}
		}
	}
	return nil
}

// placeFurniture walks each road strip's curb cells (non-intersection) and
// drops lampposts (j%4==0), benches (j%4==2) and trees (j%2==0). Trees
// deliberately coexist with lampposts and benches at the same index; they
// sit on the opposite curb.
func (w *World) placeFurniture(factory MeshFactory) error {
	for _, axis := range []Axis{AxisHorizontal, AxisVertical} {
		for _, r := range w.roadIndices() {
			center := w.Cfg.CellCenter(r)
			for j := 0; j < w.Cfg.GridDivisions; j++ {
				if RoadIndex(j) {
					continue
				}
				along := w.Cfg.CellCenter(j)
				if j%4 == 0 {
					if err := w.placeFurnitureItem(factory, FurnLamppost, axis, along, center+CurbOffset, 0); err != nil {
						return err
					}
				}
				if j%4 == 2 {
					yaw := 0.0
					if axis == AxisVertical {
						yaw = math.Pi / 2
					}
					if err := w.placeFurnitureItem(factory, FurnBench, axis, along, center+CurbOffset, yaw); err != nil {
						return err
					}
				}
				if j%2 == 0 {
					if err := w.placeFurnitureItem(factory, FurnTree, axis, along, center-CurbOffset, 0); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (w *World) placeFurnitureItem(factory MeshFactory, kind FurnitureKind, axis Axis, along, cross, yaw float64) error {
	cat := map[FurnitureKind]MeshCategory{
		FurnLamppost: MeshLamppost,
		FurnBench:    MeshBench,
		FurnTree:     MeshTree,
	}[kind]

	mesh, info, err := factory.Create(cat, MeshParams{Variant: w.rng.NextU64()})
	if err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}
	f := Furniture{Mesh: mesh, Kind: kind}
	if kind == FurnLamppost {
		if f.Light, err = info.emissive(cat, EmissiveLamp); err != nil {
			return err
		}
		if f.Bulb, err = info.emissive(cat, EmissiveBulb); err != nil {
			return err
		}
	}
	if axis == AxisHorizontal {
		mesh.SetPosition(along, 0, cross)
	} else {
		mesh.SetPosition(cross, 0, along)
	}
	if yaw != 0 {
		mesh.SetYaw(yaw)
	}
	w.Furniture = append(w.Furniture, f)
	return nil
}

// vehicleYaw orients a car mesh (built facing +x) along its travel
// direction.
func vehicleYaw(axis Axis, dir float64) float64 {
	if axis == AxisHorizontal {
		if dir > 0 {
			return 0
		}
		return math.Pi
	}
	if dir > 0 {
		return -math.Pi / 2
	}
	return math.Pi / 2
}
