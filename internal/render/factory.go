package render

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/gl/v4.1-core/gl"

	"cityscape/internal/city"
)

// Factory assembles the stylized primitive meshes the planner asks for and
// registers every object with the scene. It must run on the GL thread.
type Factory struct {
	scene *Scene
	noise *perlin.Perlin
}

func NewFactory(scene *Scene, seed uint64) *Factory {
	return &Factory{
		scene: scene,
		noise: perlin.NewPerlin(2, 2, 3, int64(seed)),
	}
}

// styleNoise maps a variant seed to a smooth value in [-1,1]; it keeps
// building heights and tree sizes varied without looking like white noise.
func (f *Factory) styleNoise(variant uint64) float64 {
	u := float64(variant&0xfff) * 0.037
	v := float64((variant>>12)&0xfff) * 0.037
	return f.noise.Noise2D(u, v)
}

func pick(variant uint64, colors [][3]float32) [3]float32 {
	return colors[variant%uint64(len(colors))]
}

// builder collects vertices and material parts for one object. part()
// closes the previous part and opens a new one; tag() marks the current
// part as an emissive handle.
type builder struct {
	m     meshData
	parts []Part
	tags  map[string]int
}

func (b *builder) part(color [3]float32) {
	b.closePart()
	b.parts = append(b.parts, Part{Color: color, First: b.m.vertexCount()})
}

func (b *builder) closePart() {
	if len(b.parts) > 0 {
		last := &b.parts[len(b.parts)-1]
		last.Count = b.m.vertexCount() - last.First
	}
}

func (b *builder) tag(name string) {
	if b.tags == nil {
		b.tags = map[string]int{}
	}
	b.tags[name] = len(b.parts) - 1
}

func (f *Factory) Create(cat city.MeshCategory, p city.MeshParams) (city.Renderable, city.MeshInfo, error) {
	var b builder
	var info city.MeshInfo

	switch cat {
	case city.MeshSkyscraper, city.MeshApartment, city.MeshShop:
		info = f.building(cat, p, &b)
	case city.MeshCar:
		info = f.car(p, &b)
	case city.MeshTrafficLight:
		info = f.trafficLight(&b)
	case city.MeshPedestrian:
		info = f.pedestrian(p, &b)
	case city.MeshLamppost:
		info = f.lamppost(&b)
	case city.MeshBench:
		info = f.bench(&b)
	case city.MeshTree:
		info = f.tree(p, &b)
	case city.MeshRoad:
		info = f.road(p, &b)
	case city.MeshCenterline:
		info = f.centerline(p, &b)
	case city.MeshCrosswalk:
		info = f.crosswalk(p, &b)
	default:
		return nil, city.MeshInfo{}, fmt.Errorf("mesh factory: unknown category %s", cat)
	}
	b.closePart()

	obj := f.upload(b.m, b.parts)
	if len(b.tags) > 0 {
		info.Emissives = make(map[string]city.Emissive, len(b.tags))
		for tag, idx := range b.tags {
			info.Emissives[tag] = partEmissive{obj: obj, idx: idx}
		}
	}
	return obj, info, nil
}

func (f *Factory) building(cat city.MeshCategory, p city.MeshParams, b *builder) city.MeshInfo {
	w := float32(p.Width)
	d := float32(p.Depth)
	if w == 0 {
		w, d = 8, 8
	}
	n := f.styleNoise(p.Variant)

	var h float32
	var body, win [3]float32
	switch cat {
	case city.MeshSkyscraper:
		h = float32(14 + 8*n)
		body, win = palette.Skyscraper, palette.SkyscraperGlass
	case city.MeshApartment:
		h = float32(6 + 2*n)
		body, win = palette.Apartment, palette.ApartmentWindow
	default: // shop
		h = float32(3 + n)
		body, win = palette.Shop, palette.ShopAwning
	}
	if h < 2 {
		h = 2
	}

	b.part(body)
	b.m.box(0, h/2, 0, w, h, d)

	// Window bands, one per floor.
	b.part(win)
	const floorHeight = 2.0
	for y := float32(1); y < h-0.5; y += floorHeight {
		b.m.box(0, y, 0, w*1.02, 0.5, d*1.02)
	}

	if cat == city.MeshShop {
		b.part(palette.ShopAwning)
		b.m.box(0, h*0.8, d/2+0.3, w*0.9, 0.15, 0.8)
	}

	return city.MeshInfo{Width: float64(w), Height: float64(h), Depth: float64(d)}
}

// car builds a sedan facing +x; the headlight part sits on the front face
// and starts dark.
func (f *Factory) car(p city.MeshParams, b *builder) city.MeshInfo {
	const (
		length = 3.2
		width  = 1.6
	)
	b.part(pick(p.Variant, palette.CarBodies))
	b.m.box(0, 0.55, 0, length, 0.7, width)

	b.part(palette.CarCabin)
	b.m.box(-0.3, 1.15, 0, length*0.45, 0.5, width*0.85)

	b.part(palette.Wheel)
	for _, wx := range []float32{-1.0, 1.0} {
		for _, wz := range []float32{-width / 2, width / 2} {
			b.m.box(wx, 0.25, wz, 0.6, 0.5, 0.2)
		}
	}

	b.part(palette.Headlight)
	b.m.box(length/2, 0.55, -width/4, 0.1, 0.2, 0.3)
	b.m.box(length/2, 0.55, width/4, 0.1, 0.2, 0.3)
	b.tag(city.EmissiveHeadlights)

	return city.MeshInfo{Width: length, Height: 1.4, Depth: width}
}

func (f *Factory) trafficLight(b *builder) city.MeshInfo {
	b.part(palette.SignalPole)
	b.m.cylinder(0, 0, 0, 0.12, 4.0, 8)

	b.part(palette.SignalHousing)
	b.m.box(0, 4.4, 0, 0.5, 1.3, 0.4)

	lamps := []struct {
		color [3]float32
		tag   string
	}{
		{palette.SignalRed, city.EmissiveRed},
		{palette.SignalYellow, city.EmissiveYellow},
		{palette.SignalGreen, city.EmissiveGreen},
	}
	for i, l := range lamps {
		b.part(l.color)
		b.m.box(0, 4.8-float32(i)*0.4, 0.22, 0.26, 0.26, 0.1)
		b.tag(l.tag)
	}

	return city.MeshInfo{Width: 0.5, Height: 5.1, Depth: 0.5}
}

func (f *Factory) pedestrian(p city.MeshParams, b *builder) city.MeshInfo {
	b.part(pick(p.Variant, palette.PedShirts))
	b.m.box(0, 0.95, 0, 0.45, 0.7, 0.3)

	b.part(palette.Wheel) // dark trousers
	b.m.box(0, 0.3, 0, 0.4, 0.6, 0.28)

	b.part(palette.PedSkin)
	b.m.box(0, 1.5, 0, 0.3, 0.3, 0.3)

	return city.MeshInfo{Width: 0.45, Height: 1.65, Depth: 0.3}
}

func (f *Factory) lamppost(b *builder) city.MeshInfo {
	b.part(palette.LampPole)
	b.m.cylinder(0, 0, 0, 0.1, 5.0, 8)
	b.m.box(0, 5.0, 0.4, 0.12, 0.12, 1.0)

	// Bulb material plus a wider glow shell; the day/night controller
	// drives both through separate handles.
	b.part(palette.LampBulb)
	b.m.box(0, 4.95, 0.85, 0.25, 0.18, 0.25)
	b.tag(city.EmissiveBulb)

	b.part(palette.LampGlow)
	b.m.box(0, 4.93, 0.85, 0.4, 0.28, 0.4)
	b.tag(city.EmissiveLamp)

	return city.MeshInfo{Width: 0.4, Height: 5.1, Depth: 1.3}
}

func (f *Factory) bench(b *builder) city.MeshInfo {
	b.part(palette.Bench)
	b.m.box(0, 0.45, 0, 1.6, 0.08, 0.5)     // seat
	b.m.box(0, 0.75, -0.22, 1.6, 0.5, 0.08) // back
	b.m.box(-0.65, 0.2, 0, 0.1, 0.4, 0.4)
	b.m.box(0.65, 0.2, 0, 0.1, 0.4, 0.4)
	return city.MeshInfo{Width: 1.6, Height: 1.0, Depth: 0.5}
}

func (f *Factory) tree(p city.MeshParams, b *builder) city.MeshInfo {
	n := float32(f.styleNoise(p.Variant))
	h := 2.2 + 0.8*n

	b.part(palette.Trunk)
	b.m.cylinder(0, 0, 0, 0.15, h, 6)

	b.part(palette.Canopy)
	b.m.cone(0, h, 0, 1.1, 1.6, 8)
	b.m.cone(0, h+0.9, 0, 0.8, 1.3, 8)

	return city.MeshInfo{Width: 2.2, Height: float64(h + 2.2), Depth: 2.2}
}

func (f *Factory) road(p city.MeshParams, b *builder) city.MeshInfo {
	length := float32(p.Width)
	width := float32(p.Depth)
	b.part(palette.Road)
	if p.Axis == city.AxisHorizontal {
		b.m.box(0, 0.025, 0, length, 0.05, width)
	} else {
		b.m.box(0, 0.025, 0, width, 0.05, length)
	}
	return city.MeshInfo{Width: float64(length), Height: 0.05, Depth: float64(width)}
}

func (f *Factory) centerline(p city.MeshParams, b *builder) city.MeshInfo {
	length := float32(p.Width)
	b.part(palette.RoadMarking)
	const dash, gap = 1.5, 1.5
	for x := -length / 2; x < length/2-dash; x += dash + gap {
		if p.Axis == city.AxisHorizontal {
			b.m.box(x+dash/2, 0.06, 0, dash, 0.02, 0.15)
		} else {
			b.m.box(0, 0.06, x+dash/2, 0.15, 0.02, dash)
		}
	}
	return city.MeshInfo{Width: float64(length), Height: 0.02, Depth: 0.15}
}

func (f *Factory) crosswalk(p city.MeshParams, b *builder) city.MeshInfo {
	w := float32(p.Width)
	b.part(palette.Crosswalk)
	for i := 0; i < 5; i++ {
		off := -w/2 + w*float32(i)/4.5 + 0.4
		if p.Axis == city.AxisHorizontal {
			b.m.box(off, 0.06, 0, 0.5, 0.02, w*0.8)
		} else {
			b.m.box(0, 0.06, off, w*0.8, 0.02, 0.5)
		}
	}
	return city.MeshInfo{Width: float64(w), Height: 0.02, Depth: float64(w)}
}

// CreateGround adds the flat lot the whole city sits on.
func (f *Factory) CreateGround(size float64) {
	var m meshData
	m.box(0, -0.25, 0, float32(size)*1.2, 0.5, float32(size)*1.2)
	f.upload(m, []Part{{First: 0, Count: m.vertexCount(), Color: palette.Ground}})
}

// upload moves the assembled vertices into a VAO/VBO and registers the
// object with the scene.
func (f *Factory) upload(m meshData, parts []Part) *Object {
	obj := &Object{parts: parts}

	gl.GenVertexArrays(1, &obj.vao)
	gl.BindVertexArray(obj.vao)
	gl.GenBuffers(1, &obj.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, obj.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.verts)*4, gl.Ptr(m.verts), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
	f.scene.add(obj)
	return obj
}
