package render

import "github.com/go-gl/mathgl/mgl32"

// Attrib is the saved/restored drawing state.
type Attrib struct {
	Color mgl32.Vec3
}

// Transform implements every Sink method except Draw: the view matrix, the
// model matrix stack and the attribute stack. Concrete sinks embed it.
type Transform struct {
	view    mgl32.Mat4
	model   mgl32.Mat4
	models  []mgl32.Mat4
	attr    Attrib
	attribs []Attrib

	maxDepth   int
	underflows int
}

func NewTransform() Transform {
	return Transform{
		view:  mgl32.Ident4(),
		model: mgl32.Ident4(),
		attr:  Attrib{Color: mgl32.Vec3{1, 1, 1}},
	}
}

// Reset clears both stacks and the underflow count for a new frame. The
// view matrix is kept.
func (t *Transform) Reset() {
	t.model = mgl32.Ident4()
	t.models = t.models[:0]
	t.attr = Attrib{Color: mgl32.Vec3{1, 1, 1}}
	t.attribs = t.attribs[:0]
	t.maxDepth = 0
	t.underflows = 0
}

func (t *Transform) LookAt(eye, center, up mgl32.Vec3) {
	t.view = mgl32.LookAtV(eye, center, up)
}

func (t *Transform) Push() {
	t.models = append(t.models, t.model)
	if len(t.models) > t.maxDepth {
		t.maxDepth = len(t.models)
	}
}

// Pop restores the last pushed transform. Popping an empty stack is counted
// and otherwise ignored.
func (t *Transform) Pop() {
	n := len(t.models)
	if n == 0 {
		t.underflows++
		return
	}
	t.model = t.models[n-1]
	t.models = t.models[:n-1]
}

func (t *Transform) Translate(x, y, z float32) {
	t.model = t.model.Mul4(mgl32.Translate3D(x, y, z))
}

func (t *Transform) Rotate(angleDeg, x, y, z float32) {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() == 0 {
		return
	}
	t.model = t.model.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis.Normalize()))
}

func (t *Transform) Scale(x, y, z float32) {
	t.model = t.model.Mul4(mgl32.Scale3D(x, y, z))
}

func (t *Transform) PushAttrib() {
	t.attribs = append(t.attribs, t.attr)
}

func (t *Transform) PopAttrib() {
	n := len(t.attribs)
	if n == 0 {
		t.underflows++
		return
	}
	t.attr = t.attribs[n-1]
	t.attribs = t.attribs[:n-1]
}

func (t *Transform) Color(r, g, b float32) {
	t.attr.Color = mgl32.Vec3{r, g, b}
}

func (t *Transform) View() mgl32.Mat4  { return t.view }
func (t *Transform) Model() mgl32.Mat4 { return t.model }
func (t *Transform) Attrib() Attrib    { return t.attr }

// Depth is the number of unpopped transform pushes.
func (t *Transform) Depth() int { return len(t.models) }

// AttribDepth is the number of unpopped attribute pushes.
func (t *Transform) AttribDepth() int { return len(t.attribs) }

// MaxDepth is the deepest transform nesting seen since the last Reset.
func (t *Transform) MaxDepth() int { return t.maxDepth }

// Underflows counts pops issued against an empty stack since the last Reset.
func (t *Transform) Underflows() int { return t.underflows }

// Balanced reports whether every push since the last Reset has been popped
// exactly once.
func (t *Transform) Balanced() bool {
	return len(t.models) == 0 && len(t.attribs) == 0 && t.underflows == 0
}
