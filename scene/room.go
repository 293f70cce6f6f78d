package scene

import (
	"archery3d/game"
	"archery3d/render"
)

const wallThickness = 5

// Room draws the walls, the floor, the ring flag above the target and the
// target itself. Walls take the cycling wall color.
func Room(s render.Sink, d game.Decor) {
	render.WithAttrib(s, func() { walls(s, d.Wall) })

	render.Scoped(s, func() {
		s.Translate(0, 7, -3.95)
		Flag(s)
	})
	render.Scoped(s, func() {
		s.Translate(0, 1.5, -3.95)
		Target(s, d.TargetScale)
	})
}

func walls(s render.Sink, c game.RGB) {
	render.Scoped(s, func() {
		s.Translate(0, 8.85, 0)

		slabs := []struct {
			x, y, z float32
			turn    float32 // about +Y
			tilt    float32 // about +X
		}{
			{x: -15, y: -10, z: -5},            // front
			{x: -15, y: -10, z: 25},            // back
			{x: -15, y: -10, z: 25, turn: 90},  // left
			{x: -15, y: -10, z: -10, tilt: 90}, // floor
		}
		for _, w := range slabs {
			render.Scoped(s, func() {
				s.Translate(w.x, w.y, w.z)
				if w.turn != 0 {
					s.Rotate(w.turn, 0, 1, 0)
				}
				if w.tilt != 0 {
					s.Rotate(w.tilt, 1, 0, 0)
					s.Scale(30, 8, 1)
				} else {
					s.Scale(30, 2, 1)
				}
				wall(s, c)
			})
		}
	})
}

// wall is a unit slab with a block on top; the block swaps the green and
// blue channels.
func wall(s render.Sink, c game.RGB) {
	color(s, c)
	part(s, func() {
		s.Translate(0.5, 0.5*wallThickness, 0.5)
		s.Scale(1, wallThickness, 1)
	}, render.Cube(1))

	color(s, game.RGB{R: c.R, G: c.B, B: c.G})
	part(s, func() { s.Translate(0.5, wallThickness, 0.5) }, render.Cube(1))
}

type ring struct {
	x, y float32
	c    game.RGB
}

var flagRings = []ring{
	{x: -1.5, c: game.RGB{B: 1}},
	{x: 0, c: black},
	{x: 1.5, c: game.RGB{R: 1}},
	{x: -0.75, y: -0.5, c: game.RGB{R: 1, G: 1}},
	{x: 0.75, y: -0.5, c: game.RGB{G: 1}},
}

const flagRingRadius = 0.6

// Flag draws five interlocking rings in the XY plane.
func Flag(s render.Sink) {
	rim := render.Annulus(flagRingRadius-0.1, flagRingRadius, 0.05, 100)
	render.WithAttrib(s, func() {
		for _, r := range flagRings {
			color(s, r.c)
			part(s, func() { s.Translate(r.x, r.y, 0) }, rim)
		}
	})
}

// targetRings run from the bullseye outwards.
var targetRings = []game.RGB{
	{R: 1},
	{B: 1},
	black,
	{R: 1, G: 1, B: 1},
	{R: 1, G: 1},
}

// Target draws the concentric target rings facing +Z, scaled by scale.
func Target(s render.Sink, scale float64) {
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			k := float32(scale)
			s.Scale(k, k, k)
			for i, c := range targetRings {
				inner := 0.1 * float32(i)
				color(s, c)
				s.Draw(render.Cylinder(inner, inner+0.1, 0.02, 50))
			}
		})
	})
}
