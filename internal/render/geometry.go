package render

import "github.com/chewxy/math32"

// Vertex layout: position (3) + normal (3), 6 floats interleaved.
const vertexStride = 6

// meshData accumulates vertices for one object; part boundaries are taken
// from the vertex count before/after each append.
type meshData struct {
	verts []float32
}

func (m *meshData) vertexCount() int32 {
	return int32(len(m.verts) / vertexStride)
}

func (m *meshData) vertex(x, y, z, nx, ny, nz float32) {
	m.verts = append(m.verts, x, y, z, nx, ny, nz)
}

func (m *meshData) quad(a, b, c, d [3]float32, n [3]float32) {
	m.vertex(a[0], a[1], a[2], n[0], n[1], n[2])
	m.vertex(b[0], b[1], b[2], n[0], n[1], n[2])
	m.vertex(c[0], c[1], c[2], n[0], n[1], n[2])
	m.vertex(a[0], a[1], a[2], n[0], n[1], n[2])
	m.vertex(c[0], c[1], c[2], n[0], n[1], n[2])
	m.vertex(d[0], d[1], d[2], n[0], n[1], n[2])
}

// box appends an axis-aligned box centred at (cx, cy, cz).
func (m *meshData) box(cx, cy, cz, w, h, d float32) {
	x0, x1 := cx-w/2, cx+w/2
	y0, y1 := cy-h/2, cy+h/2
	z0, z1 := cz-d/2, cz+d/2

	m.quad([3]float32{x0, y1, z1}, [3]float32{x1, y1, z1}, [3]float32{x1, y1, z0}, [3]float32{x0, y1, z0}, [3]float32{0, 1, 0})
	m.quad([3]float32{x0, y0, z0}, [3]float32{x1, y0, z0}, [3]float32{x1, y0, z1}, [3]float32{x0, y0, z1}, [3]float32{0, -1, 0})
	m.quad([3]float32{x0, y0, z1}, [3]float32{x1, y0, z1}, [3]float32{x1, y1, z1}, [3]float32{x0, y1, z1}, [3]float32{0, 0, 1})
	m.quad([3]float32{x1, y0, z0}, [3]float32{x0, y0, z0}, [3]float32{x0, y1, z0}, [3]float32{x1, y1, z0}, [3]float32{0, 0, -1})
	m.quad([3]float32{x1, y0, z1}, [3]float32{x1, y0, z0}, [3]float32{x1, y1, z0}, [3]float32{x1, y1, z1}, [3]float32{1, 0, 0})
	m.quad([3]float32{x0, y0, z0}, [3]float32{x0, y0, z1}, [3]float32{x0, y1, z1}, [3]float32{x0, y1, z0}, [3]float32{-1, 0, 0})
}

// cylinder appends a vertical cylinder from baseY, with a top cap.
func (m *meshData) cylinder(cx, baseY, cz, r, h float32, segs int) {
	for s := 0; s < segs; s++ {
		a0 := 2 * math32.Pi * float32(s) / float32(segs)
		a1 := 2 * math32.Pi * float32(s+1) / float32(segs)
		c0, s0 := math32.Cos(a0), math32.Sin(a0)
		c1, s1 := math32.Cos(a1), math32.Sin(a1)

		x0, z0 := cx+r*c0, cz+r*s0
		x1, z1 := cx+r*c1, cz+r*s1
		nm := [3]float32{(c0 + c1) / 2, 0, (s0 + s1) / 2}
		m.quad(
			[3]float32{x0, baseY, z0}, [3]float32{x1, baseY, z1},
			[3]float32{x1, baseY + h, z1}, [3]float32{x0, baseY + h, z0}, nm)

		m.vertex(cx, baseY+h, cz, 0, 1, 0)
		m.vertex(x0, baseY+h, z0, 0, 1, 0)
		m.vertex(x1, baseY+h, z1, 0, 1, 0)
	}
}

// cone appends an upright cone with its base at baseY.
func (m *meshData) cone(cx, baseY, cz, r, h float32, segs int) {
	for s := 0; s < segs; s++ {
		a0 := 2 * math32.Pi * float32(s) / float32(segs)
		a1 := 2 * math32.Pi * float32(s+1) / float32(segs)
		c0, s0 := math32.Cos(a0), math32.Sin(a0)
		c1, s1 := math32.Cos(a1), math32.Sin(a1)

		x0, z0 := cx+r*c0, cz+r*s0
		x1, z1 := cx+r*c1, cz+r*s1
		// Slanted side normal, good enough for flat shading.
		slant := math32.Sqrt(r*r + h*h)
		nm := [3]float32{(c0 + c1) / 2 * h / slant, r / slant, (s0 + s1) / 2 * h / slant}

		m.vertex(x0, baseY, z0, nm[0], nm[1], nm[2])
		m.vertex(x1, baseY, z1, nm[0], nm[1], nm[2])
		m.vertex(cx, baseY+h, cz, nm[0], nm[1], nm[2])
	}
}
