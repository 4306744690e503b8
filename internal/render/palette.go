package render

// Scene palette, RGB in [0,1].
var palette = struct {
	Ground      [3]float32
	Road        [3]float32
	RoadMarking [3]float32
	Crosswalk   [3]float32

	Skyscraper      [3]float32
	SkyscraperGlass [3]float32
	Apartment       [3]float32
	ApartmentWindow [3]float32
	Shop            [3]float32
	ShopAwning      [3]float32

	CarBodies [][3]float32
	CarCabin  [3]float32
	Headlight [3]float32
	Wheel     [3]float32

	SignalPole    [3]float32
	SignalHousing [3]float32
	SignalRed     [3]float32
	SignalYellow  [3]float32
	SignalGreen   [3]float32

	PedShirts [][3]float32
	PedSkin   [3]float32

	LampPole [3]float32
	LampBulb [3]float32
	LampGlow [3]float32
	Bench    [3]float32
	Trunk    [3]float32
	Canopy   [3]float32
}{
	Ground:      [3]float32{0.16, 0.22, 0.14},
	Road:        [3]float32{0.13, 0.13, 0.14},
	RoadMarking: [3]float32{0.85, 0.80, 0.35},
	Crosswalk:   [3]float32{0.88, 0.88, 0.88},

	Skyscraper:      [3]float32{0.45, 0.50, 0.58},
	SkyscraperGlass: [3]float32{0.55, 0.70, 0.82},
	Apartment:       [3]float32{0.62, 0.48, 0.36},
	ApartmentWindow: [3]float32{0.92, 0.86, 0.60},
	Shop:            [3]float32{0.70, 0.40, 0.42},
	ShopAwning:      [3]float32{0.85, 0.25, 0.25},

	CarBodies: [][3]float32{
		{0.80, 0.16, 0.18}, {0.16, 0.38, 0.80}, {0.90, 0.78, 0.20},
		{0.18, 0.62, 0.30}, {0.85, 0.85, 0.88}, {0.20, 0.20, 0.22},
	},
	CarCabin:  [3]float32{0.25, 0.30, 0.38},
	Headlight: [3]float32{1.0, 0.95, 0.75},
	Wheel:     [3]float32{0.08, 0.08, 0.08},

	SignalPole:    [3]float32{0.20, 0.20, 0.22},
	SignalHousing: [3]float32{0.12, 0.12, 0.12},
	SignalRed:     [3]float32{0.90, 0.10, 0.10},
	SignalYellow:  [3]float32{0.95, 0.80, 0.10},
	SignalGreen:   [3]float32{0.10, 0.85, 0.25},

	PedShirts: [][3]float32{
		{0.90, 0.16, 0.24}, {0.16, 0.47, 0.92}, {1.0, 0.78, 0.24},
		{0.24, 0.78, 0.35}, {0.70, 0.24, 0.78}, {1.0, 0.43, 0.20},
	},
	PedSkin: [3]float32{0.85, 0.65, 0.50},

	LampPole: [3]float32{0.18, 0.18, 0.20},
	LampBulb: [3]float32{1.0, 0.93, 0.70},
	LampGlow: [3]float32{1.0, 0.85, 0.55},
	Bench:    [3]float32{0.45, 0.30, 0.18},
	Trunk:    [3]float32{0.35, 0.24, 0.14},
	Canopy:   [3]float32{0.16, 0.45, 0.18},
}
