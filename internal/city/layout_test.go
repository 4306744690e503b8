package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCounts(t *testing.T) {
	w, f := testWorld(42)

	// 7x7 building slots with N=10 (indices {0,2,3,5,6,8,9} per axis).
	assert.Len(t, w.Buildings, 49)
	// 3 road indices x 2 orientations, 6 cars per strip.
	assert.Len(t, w.Vehicles, 36)
	// 6 pedestrians per road strip per axis.
	assert.Len(t, w.Pedestrians, 36)
	// One signal per (i,j) with both indices on the road lattice: 3x3.
	assert.Len(t, w.Signals, 9)
	// Per strip: lamps at j%4==0 -> {0,8}, benches at j%4==2 -> {2,6},
	// trees at j%2==0 -> {0,2,6,8}; 8 pieces x 6 strips.
	assert.Len(t, w.Furniture, 48)

	assert.Equal(t, 6, f.created[MeshRoad])
	assert.Equal(t, 6, f.created[MeshCenterline])
	assert.Equal(t, 18, f.created[MeshCrosswalk])
	assert.Equal(t, 12, f.created[MeshLamppost])
	assert.Equal(t, 12, f.created[MeshBench])
	assert.Equal(t, 24, f.created[MeshTree])
}

func TestLayoutBuildingKinds(t *testing.T) {
	w, _ := testWorld(7)
	kinds := map[BuildingKind]int{}
	for _, b := range w.Buildings {
		kinds[b.Kind]++
	}
	// Every placed building matches the pure per-cell rule.
	idx := 0
	for i := 0; i < w.Cfg.GridDivisions; i++ {
		for j := 0; j < w.Cfg.GridDivisions; j++ {
			if RoleAt(i, j) != RoleBuilding {
				continue
			}
			b := w.Buildings[idx]
			assert.Equal(t, BuildingKindAt(i, j), b.Kind, "cell (%d,%d)", i, j)
			assert.InDelta(t, w.Cfg.CellCenter(i), b.X, 1e-12)
			assert.InDelta(t, w.Cfg.CellCenter(j), b.Z, 1e-12)
			idx++
		}
	}
	assert.Positive(t, kinds[KindSkyscraper])
	assert.Positive(t, kinds[KindApartment])
	assert.Positive(t, kinds[KindShop])
}

func TestLayoutWithinFootprint(t *testing.T) {
	w, _ := testWorld(1234)
	half := w.Cfg.HalfSize()
	for _, b := range w.Buildings {
		assert.LessOrEqual(t, b.X, half)
		assert.GreaterOrEqual(t, b.X, -half)
		assert.LessOrEqual(t, b.Z, half)
		assert.GreaterOrEqual(t, b.Z, -half)
	}
	for _, v := range w.Vehicles {
		assert.LessOrEqual(t, v.Pos, half)
		assert.GreaterOrEqual(t, v.Pos, -half)
		assert.Positive(t, v.Speed)
	}
	for _, p := range w.Pedestrians {
		assert.LessOrEqual(t, p.Pos, half)
		assert.GreaterOrEqual(t, p.Pos, -half)
		assert.Positive(t, p.Speed)
		assert.Contains(t, []float64{1, -1}, p.Side)
	}
}

func TestLayoutLaneDeterminesDirection(t *testing.T) {
	w, _ := testWorld(99)
	byLane := map[float64]int{}
	for _, v := range w.Vehicles {
		if v.Lane > 0 {
			assert.Equal(t, 1.0, v.Dir)
		} else {
			assert.Equal(t, -1.0, v.Dir)
		}
		byLane[v.Lane]++
	}
	// Lanes alternate, so both carry exactly half the fleet.
	assert.Equal(t, 18, byLane[LaneOffset])
	assert.Equal(t, 18, byLane[-LaneOffset])
}

func TestLayoutDeterministicForSeed(t *testing.T) {
	a, _ := testWorld(555)
	b, _ := testWorld(555)
	require.Equal(t, len(a.Vehicles), len(b.Vehicles))
	for i := range a.Vehicles {
		assert.Equal(t, a.Vehicles[i].Pos, b.Vehicles[i].Pos)
		assert.Equal(t, a.Vehicles[i].Speed, b.Vehicles[i].Speed)
		assert.Equal(t, a.Vehicles[i].Lane, b.Vehicles[i].Lane)
	}
	for i := range a.Signals {
		assert.Equal(t, a.Signals[i].Phase, b.Signals[i].Phase)
		assert.Equal(t, a.Signals[i].Timer, b.Signals[i].Timer)
	}

	c, _ := testWorld(556)
	same := true
	for i := range a.Vehicles {
		if a.Vehicles[i].Pos != c.Vehicles[i].Pos {
			same = false
		}
	}
	assert.False(t, same, "different seeds must place vehicles differently")
}

func TestLayoutFactoryFailureIsFatal(t *testing.T) {
	for _, cat := range []MeshCategory{MeshSkyscraper, MeshRoad, MeshCar, MeshTrafficLight, MeshPedestrian, MeshTree} {
		f := newFakeFactory()
		f.fail = true
		f.failOn = cat
		_, err := NewWorld(DefaultConfig(), f, 1)
		require.Error(t, err, "category %s", cat)
		assert.ErrorContains(t, err, "no geometry")
	}
}

func TestLayoutMissingEmissiveIsFatal(t *testing.T) {
	f := newFakeFactory()
	bare := &bareFactory{inner: f}
	_, err := NewWorld(DefaultConfig(), bare, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, "emissive")
}

// bareFactory strips emissive handles off car meshes.
type bareFactory struct {
	inner *fakeFactory
}

func (b *bareFactory) Create(cat MeshCategory, p MeshParams) (Renderable, MeshInfo, error) {
	m, info, err := b.inner.Create(cat, p)
	if cat == MeshCar {
		info.Emissives = nil
	}
	return m, info, err
}
