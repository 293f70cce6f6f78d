// Package opengl is the OpenGL 4.1 core-profile render.Sink. All methods must
// be called on the thread that owns the current GL context.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"archery3d/render"
)

// lightDir points towards the scene's single directional light.
var lightDir = mgl32.Vec3{-7, 6, 3}

const (
	floatSize = 4
	stride    = 6 * floatSize
)

type vao struct {
	id       uint32
	vbo, ebo uint32
	count    int32
}

var _ render.Sink = (*Sink)(nil)

type uniforms struct {
	mvp, normalMatrix, colour, lightDir, lit int32
}

// Sink draws primitives with a single Lambert-lit shader. Solid meshes are
// uploaded once per distinct Primitive.Key; line primitives are streamed
// through a shared buffer every call.
type Sink struct {
	render.Transform

	program    uint32
	loc        uniforms
	attribPos  uint32
	attribNorm uint32
	projection mgl32.Mat4

	meshes  map[string]vao
	lineVAO uint32
	lineVBO uint32

	log *zap.Logger
}

// New compiles the shader program. gl.Init must have succeeded.
func New(log *zap.Logger) (*Sink, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("build shader program: %w", err)
	}
	s := &Sink{
		Transform: render.NewTransform(),
		program:   program,
		meshes:    make(map[string]vao),
		log:       log,
	}
	s.loc = uniforms{
		mvp:          gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		normalMatrix: gl.GetUniformLocation(program, gl.Str("normalMatrix\x00")),
		colour:       gl.GetUniformLocation(program, gl.Str("colour\x00")),
		lightDir:     gl.GetUniformLocation(program, gl.Str("lightDir\x00")),
		lit:          gl.GetUniformLocation(program, gl.Str("lit\x00")),
	}
	s.attribPos = uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	s.attribNorm = uint32(gl.GetAttribLocation(program, gl.Str("vn\x00")))

	gl.GenVertexArrays(1, &s.lineVAO)
	gl.BindVertexArray(s.lineVAO)
	gl.GenBuffers(1, &s.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.lineVBO)
	s.bindAttribs()
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	bg := render.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)

	log.Debug("shader program ready", zap.Uint32("program", program))
	return s, nil
}

func (s *Sink) bindAttribs() {
	gl.EnableVertexAttribArray(s.attribPos)
	gl.VertexAttribPointer(s.attribPos, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(s.attribNorm)
	gl.VertexAttribPointer(s.attribNorm, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*floatSize))
}

// Begin clears the frame and resets the stacks. projection is used for every
// draw until the next Begin.
func (s *Sink) Begin(projection mgl32.Mat4) {
	s.projection = projection
	s.Reset()
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(s.program)
	gl.Uniform3fv(s.loc.lightDir, 1, &lightDir[0])
}

func (s *Sink) Draw(p render.Primitive) {
	model := s.Model()
	mvp := s.projection.Mul4(s.View()).Mul4(model)
	// shading is done in world space, where lightDir is given
	normal := model.Mat3().Inv().Transpose()
	colour := s.Attrib().Color

	gl.UniformMatrix4fv(s.loc.mvp, 1, false, &mvp[0])
	gl.UniformMatrix3fv(s.loc.normalMatrix, 1, false, &normal[0])
	gl.Uniform3fv(s.loc.colour, 1, &colour[0])

	if !p.Solid() {
		s.drawLines(p)
		return
	}
	gl.Uniform1i(s.loc.lit, 1)
	v := s.mesh(p)
	gl.BindVertexArray(v.id)
	gl.DrawElements(gl.TRIANGLES, v.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (s *Sink) drawLines(p render.Primitive) {
	m := render.Build(p)
	if len(m.Positions) < 2 {
		return
	}
	data := m.Interleaved()
	gl.Uniform1i(s.loc.lit, 0)
	gl.BindVertexArray(s.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STREAM_DRAW)

	mode := uint32(gl.LINES)
	if m.Mode == render.ModeLineStrip {
		mode = gl.LINE_STRIP
	}
	gl.DrawArrays(mode, 0, int32(len(m.Positions)))
}

// mesh returns the uploaded VAO for a solid primitive, building it on first use.
func (s *Sink) mesh(p render.Primitive) vao {
	key := p.Key()
	if v, ok := s.meshes[key]; ok {
		return v
	}
	m := render.Build(p)
	data := m.Interleaved()

	var v vao
	gl.GenVertexArrays(1, &v.id)
	gl.BindVertexArray(v.id)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &v.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*floatSize, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	s.bindAttribs()
	gl.BindVertexArray(0)

	v.count = int32(len(m.Indices))
	s.meshes[key] = v
	s.log.Debug("mesh uploaded", zap.String("key", key), zap.Int("vertices", len(m.Positions)))
	return v
}

// Meshes reports how many distinct solid meshes are resident.
func (s *Sink) Meshes() int { return len(s.meshes) }

// Delete releases the program and every vertex array.
func (s *Sink) Delete() {
	for _, v := range s.meshes {
		gl.DeleteVertexArrays(1, &v.id)
		gl.DeleteBuffers(1, &v.vbo)
		gl.DeleteBuffers(1, &v.ebo)
	}
	clear(s.meshes)
	gl.DeleteVertexArrays(1, &s.lineVAO)
	gl.DeleteBuffers(1, &s.lineVBO)
	gl.DeleteProgram(s.program)
}
