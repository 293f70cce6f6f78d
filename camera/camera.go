// Package camera implements a free-flight look-at camera: an eye, the point it
// looks at and an up vector, moved and rotated relative to its own basis.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"archery3d/vmath"
)

// degenerate is the smallest |up x view| accepted as a usable basis.
const degenerate = 1e-9

// LookAter receives the camera transform each frame.
type LookAter interface {
	LookAt(eye, center, up mgl32.Vec3)
}

type Camera struct {
	Eye, Center, Up vmath.Vec3

	// Orthonormalize keeps up perpendicular to the view direction across
	// rotations. With it off, rotations reproduce the legacy drift where up
	// is only rebuilt by pitch.
	Orthonormalize bool
}

// New returns a camera at eye looking at center.
func New(eye, center, up vmath.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up, Orthonormalize: true}
}

// NewFromPreset returns a camera placed at p.
func NewFromPreset(p Preset) *Camera {
	return New(p.Eye, p.Center, p.Up)
}

func (c *Camera) view() vmath.Vec3 {
	return c.Center.Sub(c.Eye)
}

// basis returns the unit view direction and unit right vector (up x view).
// ok is false when up and view are collinear.
func (c *Camera) basis() (view, right vmath.Vec3, ok bool) {
	view = c.view().Unit()
	r := c.Up.Cross(view)
	if r.Length() < degenerate || view.Length() == 0 {
		return view, r, false
	}
	return view, r.Unit(), true
}

func (c *Camera) translate(dir vmath.Vec3, d float64) {
	step := dir.Scale(d)
	c.Eye = c.Eye.Add(step)
	c.Center = c.Center.Add(step)
}

// MoveRight strafes along up x view. Negative d moves the other way.
func (c *Camera) MoveRight(d float64) {
	_, right, ok := c.basis()
	if !ok {
		return
	}
	c.translate(right, d)
}

func (c *Camera) MoveUp(d float64) {
	c.translate(c.Up.Unit(), d)
}

func (c *Camera) MoveForward(d float64) {
	c.translate(c.view().Unit(), d)
}

// RotatePitch tilts the view direction towards up by angle degrees. The look
// point is left one unit in front of the eye.
func (c *Camera) RotatePitch(angle float64) {
	view, right, ok := c.basis()
	if !ok {
		return
	}
	up := c.Up
	if c.Orthonormalize {
		up = view.Cross(right)
	}
	a := radians(angle)
	view = view.Scale(math.Cos(a)).Add(up.Scale(math.Sin(a)))
	c.Up = view.Cross(right)
	c.Center = c.Eye.Add(view)
}

// RotateYaw turns the view direction towards up x view by angle degrees.
func (c *Camera) RotateYaw(angle float64) {
	view, right, ok := c.basis()
	if !ok {
		return
	}
	if c.Orthonormalize {
		// up projected off the old view stays perpendicular to the new one,
		// which lies in the view/right plane.
		c.Up = view.Cross(right)
	}
	a := radians(angle)
	view = view.Scale(math.Cos(a)).Add(right.Scale(math.Sin(a)))
	c.Center = c.Eye.Add(view)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// SetPreset replaces the whole eye/center/up triple.
func (c *Camera) SetPreset(p Preset) {
	c.Eye, c.Center, c.Up = p.Eye, p.Center, p.Up
}

// View returns the look-at matrix for the current triple.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye.Mgl(), c.Center.Mgl(), c.Up.Mgl())
}

func (c *Camera) ApplyTo(s LookAter) {
	s.LookAt(c.Eye.Mgl(), c.Center.Mgl(), c.Up.Mgl())
}
