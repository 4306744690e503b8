package city

// CellRole is the derived use of one grid cell. It is a pure function of the
// cell coordinates and is recomputed on demand, never stored.
type CellRole int

const (
	RoleBuilding CellRole = iota
	RoleRoad
)

// RoadIndex reports whether a grid index falls on the road lattice.
func RoadIndex(k int) bool {
	return k%RoadModulus == RoadResidue
}

// RoleAt derives the role of cell (i,j): road when either index is on the
// road lattice, building slot otherwise.
func RoleAt(i, j int) CellRole {
	if RoadIndex(i) || RoadIndex(j) {
		return RoleRoad
	}
	return RoleBuilding
}

// Intersection reports whether (i,j) is a road crossing (both indices road).
func Intersection(i, j int) bool {
	return RoadIndex(i) && RoadIndex(j)
}

// BuildingKind classifies a building slot.
type BuildingKind int

const (
	KindSkyscraper BuildingKind = iota
	KindApartment
	KindShop
)

func (k BuildingKind) String() string {
	switch k {
	case KindApartment:
		return "apartment"
	case KindShop:
		return "shop"
	default:
		return "skyscraper"
	}
}

// BuildingKindAt picks the building category for cell (i,j). The shop rule
// is evaluated after the apartment rule and overwrites it when both match
// (e.g. i+j = 0 or 35); skyscraper is the default.
func BuildingKindAt(i, j int) BuildingKind {
	kind := KindSkyscraper
	if (i+j)%5 == 0 {
		kind = KindApartment
	}
	if (i+j)%7 == 0 {
		kind = KindShop
	}
	return kind
}

func (k BuildingKind) meshCategory() MeshCategory {
	switch k {
	case KindApartment:
		return MeshApartment
	case KindShop:
		return MeshShop
	default:
		return MeshSkyscraper
	}
}
