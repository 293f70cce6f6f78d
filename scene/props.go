package scene

import (
	"archery3d/game"
	"archery3d/render"
)

// Lamp draws the standing lamp with its bulb at height y.
func Lamp(s render.Sink, y float64) {
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			s.Translate(-5, float32(y), 20)

			s.Color(1, 1, 0)
			part(s, func() { s.Translate(0, 0.5, 0.7) }, render.Sphere(1, 50, 50))

			s.Translate(0, -1.5, 0)
			s.Color(0.6, 0.6, 0.6)
			part(s, func() {
				s.Translate(0, -2, 2)
				s.Rotate(-90, 1, 0, 0)
			}, render.Cylinder(0.2, 0.2, 4, 32))

			s.Translate(0, 2, 0)
			s.Color(0.5, 0.5, 0.5)
			s.Draw(render.Cone(1.5, 3, 50))
		})
	})
}

// Podium draws the three-step winners' podium in color c.
func Podium(s render.Sink, c game.RGB) {
	block := render.Cube(2)
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			s.Translate(-5, -0.5, 15)
			color(s, c)

			part(s, func() { s.Scale(3, 0.5, 1) }, block)

			s.Translate(0, 1.5, 0)
			s.Draw(block)
			part(s, func() {
				s.Translate(1, -1, 0)
				s.Scale(2, 0.5, 1)
			}, block)
		})
	})
}

// Chair draws the chair turned by angle degrees about its own axis.
func Chair(s render.Sink, angle float64) {
	rod := render.Cylinder(0.05, 0.05, 1, 16)
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			s.Translate(10, -0.2, 15)
			s.Rotate(float32(angle)+180, 0, 1, 0)

			color(s, wood)
			part(s, func() {
				s.Translate(0, 1, 0)
				s.Scale(2, 0.2, 2)
			}, render.Cube(1))

			s.Color(0.3, 0.2, 0.1)
			legs := []struct{ x, z, length float32 }{
				{-0.8, -0.8, 6},
				{0.8, -0.8, 6},
				{-0.8, 0.8, 2.1},
				{0.8, 0.8, 2.1},
			}
			for _, l := range legs {
				part(s, func() {
					s.Translate(l.x, -1, l.z)
					s.Scale(1, l.length, 1)
					s.Rotate(-90, 1, 0, 0)
				}, rod)
			}
			// back rest
			part(s, func() {
				s.Translate(0.75, 4.8, -0.8)
				s.Scale(1.65, 2.1, 1)
				s.Rotate(-90, 0, 1, 0)
			}, rod)
		})
	})
}

const (
	tableTop      = 0.6
	tableTopThick = 0.02
	tableLegThick = 0.02
	tableLegLen   = 0.3
)

// Table draws the small table turned by angle degrees.
func Table(s render.Sink, angle float64) {
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			s.Translate(10, -1.2, 10)
			s.Scale(4, 4, 4)
			s.Rotate(float32(angle), 0, 1, 0)
			s.Color(1, 1, 0)

			part(s, func() {
				s.Translate(0, tableLegLen, 0)
				s.Scale(tableTop, tableTopThick, tableTop)
			}, render.Cube(1))

			d := float32(0.95*tableTop/2 - tableLegThick/2)
			for _, c := range [][2]float32{{d, d}, {d, -d}, {-d, d}, {-d, -d}} {
				part(s, func() {
					s.Translate(c[0], tableLegLen/2, c[1])
					s.Scale(tableLegThick, tableLegLen, tableLegThick)
				}, render.Cube(1))
			}
		})
	})
}

// Shelf draws the arrow rack against the left wall at the given scale, three
// shelves of four arrows each.
func Shelf(s render.Sink, scale float64) {
	board := render.Cube(1)
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			s.Translate(-10, 0.5, 5)
			s.Rotate(90, 0, 1, 0)
			k := float32(scale)
			s.Scale(k, k, k)
			color(s, wood)

			for _, x := range []float32{-0.6, 0.6} {
				part(s, func() {
					s.Translate(x, 0, 0)
					s.Scale(0.1, 1.5, 0.3)
				}, board)
			}
			for _, y := range []float32{-0.75, -0.5, 0, 0.5, 0.75} {
				part(s, func() {
					s.Translate(0, y, 0)
					s.Scale(1.2, 0.1, 0.3)
				}, board)
			}

			for row := -1; row <= 1; row++ {
				for i := range 4 {
					render.Scoped(s, func() {
						s.Translate(-0.5+0.3*float32(i), 0.5*float32(row)-0.3, 0.15-0.4)
						s.Scale(0.3, 0.3, 0.3)
						Arrow(s)
					})
				}
			}
		})
	})
}
