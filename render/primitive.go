package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Shape uint8

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapeCylinder
	ShapeAnnulus
	ShapeLines
	ShapeLineStrip
)

var shapeNames = [...]string{
	ShapeCube:      "cube",
	ShapeSphere:    "sphere",
	ShapeCylinder:  "cylinder",
	ShapeAnnulus:   "annulus",
	ShapeLines:     "lines",
	ShapeLineStrip: "linestrip",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", s)
}

// Primitive describes one solid or line shape in model space. Only the fields
// relevant to Shape are read.
type Primitive struct {
	Shape Shape

	// Size is the cube edge or the sphere radius.
	Size float32

	// Base and Top are the cylinder radii at z=0 and z=Height. A zero Top
	// makes a capped cone.
	Base, Top, Height float32

	// Inner and Outer radii of an annulus in the XY plane, Depth its half
	// thickness along Z.
	Inner, Outer, Depth float32

	Slices, Stacks int

	Points []mgl32.Vec3
}

// Solid reports whether the primitive is built from lit triangles.
func (p Primitive) Solid() bool {
	return p.Shape != ShapeLines && p.Shape != ShapeLineStrip
}

// Key identifies the mesh a solid primitive builds, for mesh caches.
func (p Primitive) Key() string {
	switch p.Shape {
	case ShapeCube:
		return fmt.Sprintf("cube:%g", p.Size)
	case ShapeSphere:
		return fmt.Sprintf("sphere:%g:%d:%d", p.Size, p.Slices, p.Stacks)
	case ShapeCylinder:
		return fmt.Sprintf("cylinder:%g:%g:%g:%d", p.Base, p.Top, p.Height, p.Slices)
	case ShapeAnnulus:
		return fmt.Sprintf("annulus:%g:%g:%g:%d", p.Inner, p.Outer, p.Depth, p.Slices)
	default:
		return ""
	}
}

func Cube(size float32) Primitive {
	return Primitive{Shape: ShapeCube, Size: size}
}

func Sphere(radius float32, slices, stacks int) Primitive {
	return Primitive{Shape: ShapeSphere, Size: radius, Slices: slices, Stacks: stacks}
}

// Cylinder is an open tube along +Z from radius base to radius top.
func Cylinder(base, top, height float32, slices int) Primitive {
	return Primitive{Shape: ShapeCylinder, Base: base, Top: top, Height: height, Slices: slices}
}

// Cone is a cylinder narrowing to a point, closed at its base.
func Cone(base, height float32, slices int) Primitive {
	return Cylinder(base, 0, height, slices)
}

func Annulus(inner, outer, depth float32, slices int) Primitive {
	return Primitive{Shape: ShapeAnnulus, Inner: inner, Outer: outer, Depth: depth, Slices: slices}
}

// Lines draws a segment for every consecutive pair of points.
func Lines(points ...mgl32.Vec3) Primitive {
	return Primitive{Shape: ShapeLines, Points: points}
}

func LineStrip(points ...mgl32.Vec3) Primitive {
	return Primitive{Shape: ShapeLineStrip, Points: points}
}
