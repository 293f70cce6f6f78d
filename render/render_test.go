package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformStackRestores(t *testing.T) {
	tr := NewTransform()

	tr.Translate(1, 2, 3)
	saved := tr.Model()
	tr.Push()
	tr.Rotate(90, 0, 1, 0)
	tr.Scale(2, 2, 2)
	assert.NotEqual(t, saved, tr.Model())
	tr.Pop()

	assert.Equal(t, saved, tr.Model())
	assert.True(t, tr.Balanced())
	assert.Equal(t, 1, tr.MaxDepth())
}

func TestTransformComposesLikeGL(t *testing.T) {
	tr := NewTransform()
	tr.Translate(10, 0, 0)
	tr.Rotate(90, 0, 1, 0)

	p := tr.Model().Mul4x1(mgl32.Vec4{0, 0, 1, 1})

	assert.InDelta(t, 11, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)
}

func TestUnderflowIsCounted(t *testing.T) {
	tr := NewTransform()
	tr.Translate(1, 0, 0)
	model := tr.Model()

	tr.Pop()
	tr.PopAttrib()

	assert.Equal(t, 2, tr.Underflows())
	assert.Equal(t, model, tr.Model())
	assert.False(t, tr.Balanced())

	tr.Reset()
	assert.True(t, tr.Balanced())
	assert.Equal(t, mgl32.Ident4(), tr.Model())
}

func TestAttribStack(t *testing.T) {
	tr := NewTransform()
	tr.Color(1, 0, 0)
	tr.PushAttrib()
	tr.Color(0, 0, 1)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, tr.Attrib().Color)
	tr.PopAttrib()

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, tr.Attrib().Color)
	assert.Equal(t, 0, tr.AttribDepth())
}

func TestScopedGuardsPopOnPanic(t *testing.T) {
	rec := NewRecorder()

	assert.Panics(t, func() {
		Scoped(rec, func() {
			WithAttrib(rec, func() {
				rec.Translate(1, 1, 1)
				panic("draw failed")
			})
		})
	})

	assert.True(t, rec.Balanced())
	assert.Equal(t, mgl32.Ident4(), rec.Model())
}

func TestScopedNesting(t *testing.T) {
	rec := NewRecorder()
	Scoped(rec, func() {
		rec.Translate(0, 5, 0)
		Scoped(rec, func() {
			rec.Translate(1, 0, 0)
			rec.Draw(Cube(1))
			assert.Equal(t, 2, rec.Depth())
		})
		rec.Draw(Sphere(1, 8, 8))
	})

	require.Len(t, rec.Calls, 2)
	assert.Equal(t, mgl32.Vec3{1, 5, 0}, rec.Calls[0].Origin())
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, rec.Calls[1].Origin())
	assert.Equal(t, 1, rec.Count(ShapeCube))
	assert.True(t, rec.Balanced())

	rec.Clear()
	assert.Empty(t, rec.Calls)
}

func TestBuildMeshes(t *testing.T) {
	cube := Build(Cube(2))
	assert.Len(t, cube.Positions, 24)
	assert.Len(t, cube.Indices, 36)
	for _, p := range cube.Positions {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 1, mgl32.Abs(p[i]), 1e-6, "cube corners sit at +-size/2")
		}
	}

	sphere := Build(Sphere(0.5, 10, 6))
	for _, p := range sphere.Positions {
		assert.InDelta(t, 0.5, p.Len(), 1e-5)
	}
	assert.Len(t, sphere.Indices, 10*6*6)

	cone := Build(Cone(1, 2, 8))
	assert.Len(t, cone.Indices, 8*6+8*3, "cone side plus base cap")

	tube := Build(Cylinder(1, 1, 2, 8))
	assert.Len(t, tube.Indices, 8*6, "open tube has no caps")

	ring := Build(Annulus(0.4, 0.5, 0.02, 12))
	for _, p := range ring.Positions {
		r := mgl32.Vec2{p.X(), p.Y()}.Len()
		assert.True(t, r > 0.39 && r < 0.51, "radius %v outside the ring", r)
	}

	strip := Build(LineStrip(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}))
	assert.Equal(t, ModeLineStrip, strip.Mode)
	assert.Len(t, strip.Edges(), 2)

	lines := Build(Lines(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 1, 0}))
	assert.Len(t, lines.Edges(), 2)

	assert.Len(t, cube.Edges(), 36)
	assert.Len(t, cube.Interleaved(), 24*6)
}

func TestPrimitiveKeys(t *testing.T) {
	assert.Equal(t, Cube(1).Key(), Cube(1).Key())
	assert.NotEqual(t, Cube(1).Key(), Cube(2).Key())
	assert.NotEqual(t, Cone(1, 2, 8).Key(), Cylinder(1, 1, 2, 8).Key())
	assert.Empty(t, Lines().Key())
	assert.True(t, Sphere(1, 4, 4).Solid())
	assert.False(t, LineStrip().Solid())
	assert.Equal(t, "annulus", ShapeAnnulus.String())
}

func TestDrawLine(t *testing.T) {
	r := NewRaster(10, 10, 60)
	white := color.RGBA{255, 255, 255, 255}

	DrawLine(r.Image(), 0, 0, 9, 9, white)
	DrawLine(r.Image(), -5, 3, 50, 3, white)
	DrawLine(r.Image(), 4, 4, 4, 4, white)

	for i := 0; i < 10; i++ {
		assert.Equal(t, white, r.Image().RGBAAt(i, i))
		assert.Equal(t, white, r.Image().RGBAAt(i, 3))
	}
}

func TestRasterDrawsVisibleWireframe(t *testing.T) {
	r := NewRaster(64, 48, 60)
	bg := color.RGBA{0, 0, 0, 255}
	r.Clear(bg)
	r.LookAt(mgl32.Vec3{3, 3, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	r.Color(1, 1, 0)
	r.Draw(Cube(1))

	lit := 0
	img := r.Image()
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y) != bg {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 20)

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestRasterSkipsGeometryBehindCamera(t *testing.T) {
	r := NewRaster(32, 32, 60)
	bg := color.RGBA{0, 0, 0, 255}
	r.Clear(bg)
	r.LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})

	r.Translate(0, 0, 5)
	r.Draw(Cube(1))

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			require.Equal(t, bg, r.Image().RGBAAt(x, y))
		}
	}
}
