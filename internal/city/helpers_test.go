package city

import "fmt"

// fakeMesh records the last transform written to it.
type fakeMesh struct {
	x, y, z float64
	yaw     float64
}

func (m *fakeMesh) SetPosition(x, y, z float64) { m.x, m.y, m.z = x, y, z }
func (m *fakeMesh) SetYaw(rad float64)          { m.yaw = rad }

type fakeEmissive struct {
	intensity float64
	writes    int
}

func (e *fakeEmissive) SetIntensity(v float64) {
	e.intensity = v
	e.writes++
}

// fakeFactory builds recording stubs and counts creations per category.
// Setting failOn makes that category error, to exercise the fatal path.
type fakeFactory struct {
	created map[MeshCategory]int
	meshes  []*fakeMesh
	failOn  MeshCategory
	fail    bool
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{created: map[MeshCategory]int{}, failOn: -1}
}

func (f *fakeFactory) Create(cat MeshCategory, p MeshParams) (Renderable, MeshInfo, error) {
	if f.fail && cat == f.failOn {
		return nil, MeshInfo{}, fmt.Errorf("no geometry for %s", cat)
	}
	f.created[cat]++
	m := &fakeMesh{}
	f.meshes = append(f.meshes, m)
	info := MeshInfo{Width: p.Width, Height: 4, Depth: p.Depth}
	switch cat {
	case MeshCar:
		info.Emissives = map[string]Emissive{EmissiveHeadlights: &fakeEmissive{}}
	case MeshTrafficLight:
		info.Emissives = map[string]Emissive{
			EmissiveRed:    &fakeEmissive{},
			EmissiveYellow: &fakeEmissive{},
			EmissiveGreen:  &fakeEmissive{},
		}
	case MeshLamppost:
		info.Emissives = map[string]Emissive{
			EmissiveLamp: &fakeEmissive{},
			EmissiveBulb: &fakeEmissive{},
		}
	}
	return m, info, nil
}

// fakeEnv records the lighting writes of the day/night controller.
type fakeEnv struct {
	sunX, sunY, sunZ float64
	sunIntensity     float64
	ambient          float64
	sky              RGB
}

func (e *fakeEnv) SetSun(x, y, z, intensity float64) {
	e.sunX, e.sunY, e.sunZ, e.sunIntensity = x, y, z, intensity
}
func (e *fakeEnv) SetAmbient(v float64)  { e.ambient = v }
func (e *fakeEnv) SetSkyColor(c RGB)     { e.sky = c }

func testWorld(seed uint64) (*World, *fakeFactory) {
	f := newFakeFactory()
	w, err := NewWorld(DefaultConfig(), f, seed)
	if err != nil {
		panic(err)
	}
	return w, f
}
