package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Mode uint8

const (
	ModeTriangles Mode = iota
	ModeLines
	ModeLineStrip
)

// Mesh is an indexed vertex list. Line meshes carry zero normals.
type Mesh struct {
	Mode      Mode
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

const minSlices = 3

// Build tessellates p.
func Build(p Primitive) Mesh {
	switch p.Shape {
	case ShapeCube:
		return buildCube(p.Size)
	case ShapeSphere:
		return buildSphere(p.Size, max(p.Slices, minSlices), max(p.Stacks, 2))
	case ShapeCylinder:
		return buildCylinder(p.Base, p.Top, p.Height, max(p.Slices, minSlices))
	case ShapeAnnulus:
		return buildAnnulus(p.Inner, p.Outer, p.Depth, max(p.Slices, minSlices))
	case ShapeLines:
		return buildLines(ModeLines, p.Points)
	case ShapeLineStrip:
		return buildLines(ModeLineStrip, p.Points)
	}
	return Mesh{}
}

func (m *Mesh) add(pos, normal mgl32.Vec3) uint32 {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	return uint32(len(m.Positions) - 1)
}

func (m *Mesh) quad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

// Interleaved packs position and normal per vertex for upload.
func (m Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*6)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// Edges lists the index pairs a wireframe of the mesh draws.
func (m Mesh) Edges() [][2]uint32 {
	var edges [][2]uint32
	switch m.Mode {
	case ModeTriangles:
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
			edges = append(edges, [2]uint32{a, b}, [2]uint32{b, c}, [2]uint32{c, a})
		}
	case ModeLines:
		for i := 0; i+1 < len(m.Indices); i += 2 {
			edges = append(edges, [2]uint32{m.Indices[i], m.Indices[i+1]})
		}
	case ModeLineStrip:
		for i := 0; i+1 < len(m.Indices); i++ {
			edges = append(edges, [2]uint32{m.Indices[i], m.Indices[i+1]})
		}
	}
	return edges
}

func buildCube(size float32) Mesh {
	h := size / 2
	faces := []struct {
		normal mgl32.Vec3
		corner [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	var m Mesh
	for _, f := range faces {
		a := m.add(f.corner[0], f.normal)
		b := m.add(f.corner[1], f.normal)
		c := m.add(f.corner[2], f.normal)
		d := m.add(f.corner[3], f.normal)
		m.quad(a, b, c, d)
	}
	return m
}

func buildSphere(radius float32, slices, stacks int) Mesh {
	var m Mesh
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			m.add(n.Mul(radius), n)
		}
	}
	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			m.quad(a, a+row, a+row+1, a+1)
		}
	}
	return m
}

func buildCylinder(base, top, height float32, slices int) Mesh {
	var m Mesh
	// slope of the side wall tilts every normal by the same amount
	slope := (base - top) / max(height, 1e-6)
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))
		n := mgl32.Vec3{cos, sin, slope}.Normalize()
		m.add(mgl32.Vec3{base * cos, base * sin, 0}, n)
		m.add(mgl32.Vec3{top * cos, top * sin, height}, n)
	}
	for j := uint32(0); j < uint32(slices); j++ {
		a := j * 2
		m.quad(a, a+2, a+3, a+1)
	}

	if top == 0 && base > 0 {
		down := mgl32.Vec3{0, 0, -1}
		center := m.add(mgl32.Vec3{}, down)
		first := uint32(len(m.Positions))
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			m.add(mgl32.Vec3{base * float32(math.Cos(theta)), base * float32(math.Sin(theta)), 0}, down)
		}
		for j := uint32(0); j < uint32(slices); j++ {
			m.Indices = append(m.Indices, center, first+j+1, first+j)
		}
	}
	return m
}

func buildAnnulus(inner, outer, depth float32, slices int) Mesh {
	var m Mesh
	for _, z := range []float32{depth, -depth} {
		n := mgl32.Vec3{0, 0, 1}
		if z < 0 {
			n = mgl32.Vec3{0, 0, -1}
		}
		first := uint32(len(m.Positions))
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))
			m.add(mgl32.Vec3{outer * cos, outer * sin, z}, n)
			m.add(mgl32.Vec3{inner * cos, inner * sin, z}, n)
		}
		for j := uint32(0); j < uint32(slices); j++ {
			a := first + j*2
			if z > 0 {
				m.quad(a, a+2, a+3, a+1)
			} else {
				m.quad(a, a+1, a+3, a+2)
			}
		}
	}
	return m
}

func buildLines(mode Mode, points []mgl32.Vec3) Mesh {
	m := Mesh{Mode: mode}
	for _, p := range points {
		m.Indices = append(m.Indices, m.add(p, mgl32.Vec3{}))
	}
	return m
}
