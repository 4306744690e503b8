package city

import "fmt"

// MeshCategory selects which asset the mesh factory assembles.
type MeshCategory int

const (
	MeshSkyscraper MeshCategory = iota
	MeshApartment
	MeshShop
	MeshCar
	MeshTrafficLight
	MeshPedestrian
	MeshLamppost
	MeshBench
	MeshTree
	MeshRoad
	MeshCenterline
	MeshCrosswalk
)

var meshCategoryNames = [...]string{
	"skyscraper", "apartment", "shop", "car", "traffic-light", "pedestrian",
	"lamppost", "bench", "tree", "road", "centerline", "crosswalk",
}

func (c MeshCategory) String() string {
	if c < 0 || int(c) >= len(meshCategoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return meshCategoryNames[c]
}

// MeshParams carries the few knobs the planner hands to the factory.
// Zero values let the factory pick per-category defaults.
type MeshParams struct {
	Width   float64 // footprint along x (or road length)
	Depth   float64 // footprint along z (or road width)
	Axis    Axis    // orientation for roads and markings
	Variant uint64  // deterministic styling seed
}

// Renderable is the opaque handle the factory returns. The simulation only
// ever positions and rotates it; everything else stays on the render side.
type Renderable interface {
	SetPosition(x, y, z float64)
	SetYaw(rad float64)
}

// Emissive is a settable emissive-intensity scalar on one material of a mesh.
type Emissive interface {
	SetIntensity(v float64)
}

// Emissive handle tags the factory must provide per category.
const (
	EmissiveRed        = "red"        // traffic light
	EmissiveYellow     = "yellow"     // traffic light
	EmissiveGreen      = "green"      // traffic light
	EmissiveLamp       = "lamp"       // lamppost point light
	EmissiveBulb       = "bulb"       // lamppost bulb material
	EmissiveHeadlights = "headlights" // car front lights
)

// MeshInfo is the metadata record derived during mesh assembly.
type MeshInfo struct {
	Width, Height, Depth float64
	Emissives            map[string]Emissive
}

// emissive fetches a named handle, failing loudly when the factory did not
// provide it; the planner has no fallback geometry contract.
func (m MeshInfo) emissive(cat MeshCategory, tag string) (Emissive, error) {
	e, ok := m.Emissives[tag]
	if !ok || e == nil {
		return nil, fmt.Errorf("%s mesh: missing %q emissive handle", cat, tag)
	}
	return e, nil
}

// MeshFactory assembles renderable assets. Implementations own all vertex
// and material detail; failures are fatal at startup.
type MeshFactory interface {
	Create(cat MeshCategory, p MeshParams) (Renderable, MeshInfo, error)
}
