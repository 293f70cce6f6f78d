package render

import "github.com/go-gl/mathgl/mgl32"

// DrawCall is one recorded Draw with the state it was issued under.
type DrawCall struct {
	Primitive Primitive
	Model     mgl32.Mat4
	Color     mgl32.Vec3
}

// Origin is the model-space origin of the call in world coordinates.
func (c DrawCall) Origin() mgl32.Vec3 {
	return c.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

// Recorder is a Sink that keeps every draw call, for tests and diagnostics.
type Recorder struct {
	Transform
	Calls []DrawCall
}

func NewRecorder() *Recorder {
	return &Recorder{Transform: NewTransform()}
}

func (r *Recorder) Draw(p Primitive) {
	r.Calls = append(r.Calls, DrawCall{Primitive: p, Model: r.Model(), Color: r.Attrib().Color})
}

// Count returns how many calls drew shape s.
func (r *Recorder) Count(s Shape) int {
	n := 0
	for _, c := range r.Calls {
		if c.Primitive.Shape == s {
			n++
		}
	}
	return n
}

// Clear drops recorded calls and resets the stacks.
func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Reset()
}
