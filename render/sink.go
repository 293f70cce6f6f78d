// Package render defines the drawing surface the scene is issued against and
// the renderer-independent pieces behind it: the transform and attribute
// stacks, primitive shapes and their meshes, a call recorder and a software
// wireframe rasterizer.
package render

import "github.com/go-gl/mathgl/mgl32"

// Sink accepts immediate-mode draw calls. Translate, Rotate and Scale
// post-multiply the current model transform; Draw renders a primitive with
// the current transform and color.
type Sink interface {
	LookAt(eye, center, up mgl32.Vec3)

	Push()
	Pop()
	Translate(x, y, z float32)
	Rotate(angleDeg, x, y, z float32)
	Scale(x, y, z float32)

	PushAttrib()
	PopAttrib()
	Color(r, g, b float32)

	Draw(p Primitive)
}

// Scoped runs draw between Push and Pop. The transform is restored even if
// draw returns early or panics.
func Scoped(s Sink, draw func()) {
	s.Push()
	defer s.Pop()
	draw()
}

// WithAttrib runs draw between PushAttrib and PopAttrib.
func WithAttrib(s Sink, draw func()) {
	s.PushAttrib()
	defer s.PopAttrib()
	draw()
}
