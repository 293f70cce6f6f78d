package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// Background is the clear color shared by the raster and GL sinks.
var Background = color.RGBA{R: 25, G: 25, B: 25, A: 255}

// nearW drops segments with an endpoint at or behind the camera plane.
const nearW = 1e-3

// maxNDC drops segments reaching far outside the viewport so a single
// near-plane vertex cannot produce a line millions of pixels long.
const maxNDC = 8

// Raster is a software Sink that draws wireframes of every primitive into an
// RGBA image. It needs no window or GL context.
type Raster struct {
	Transform

	img        *image.RGBA
	projection mgl32.Mat4
	meshes     map[string]Mesh
}

// NewRaster returns a width x height raster with a perspective projection of
// fovy degrees.
func NewRaster(width, height int, fovy float32) *Raster {
	return &Raster{
		Transform:  NewTransform(),
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		projection: mgl32.Perspective(mgl32.DegToRad(fovy), float32(width)/float32(height), 0.1, 100),
		meshes:     make(map[string]Mesh),
	}
}

// Clear fills the image with c and resets the stacks for a new frame.
func (r *Raster) Clear(c color.RGBA) {
	pix := r.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
	r.Reset()
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) mesh(p Primitive) Mesh {
	key := p.Key()
	if key == "" {
		return Build(p)
	}
	m, ok := r.meshes[key]
	if !ok {
		m = Build(p)
		r.meshes[key] = m
	}
	return m
}

func (r *Raster) Draw(p Primitive) {
	m := r.mesh(p)
	mvp := r.projection.Mul4(r.View()).Mul4(r.Model())
	col := toRGBA(r.Attrib().Color)

	bounds := r.img.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	project := func(v mgl32.Vec3) (int, int, bool) {
		clip := mvp.Mul4x1(v.Vec4(1))
		if clip.W() <= nearW {
			return 0, 0, false
		}
		ndc := clip.Vec3().Mul(1 / clip.W())
		if mgl32.Abs(ndc.X()) > maxNDC || mgl32.Abs(ndc.Y()) > maxNDC {
			return 0, 0, false
		}
		x := (ndc.X() + 1) / 2 * w
		y := (1 - ndc.Y()) / 2 * h
		return int(x), int(y), true
	}

	for _, e := range m.Edges() {
		x1, y1, ok1 := project(m.Positions[e[0]])
		x2, y2, ok2 := project(m.Positions[e[1]])
		if !ok1 || !ok2 {
			continue
		}
		DrawLine(r.img, x1, y1, x2, y2, col)
	}
}

// WritePNG encodes the current image.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1) * 255)
	}
	return color.RGBA{R: clamp(c.X()), G: clamp(c.Y()), B: clamp(c.Z()), A: 255}
}
