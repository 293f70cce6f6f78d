package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"archery3d/game"
	"archery3d/render"
)

// bowDraw is how far the bow is drawn, 0 for slack.
const bowDraw = 0.5

// Player draws the archer at its position and heading, bow included.
func Player(s render.Sink, p game.Player) {
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			s.Translate(float32(p.X), 0, float32(p.Z))
			s.Rotate(float32(p.Heading), 0, 1, 0)

			render.Scoped(s, func() {
				s.Translate(0, 1, 0)
				s.Scale(2, 2, 2)
				body(s, p)
			})
			bow(s, bowDraw)
		})
	})
}

func body(s render.Sink, p game.Player) {
	color(s, skin)
	part(s, func() { s.Translate(0, 0.8, 0) }, render.Sphere(0.3, 20, 20))

	color(s, shirt)
	part(s, func() { s.Scale(0.5, 1, 0.3) }, render.Cube(1))
	part(s, func() {
		s.Translate(-0.3, 0.1, 0.2)
		s.Rotate(30, 0, 1, 0)
		s.Rotate(-90, 1, 0, 0)
		s.Scale(0.2, 0.8, 0.2)
	}, render.Cube(1))
	color(s, skin)
	part(s, func() { s.Translate(-0.05, 0.1, 0.6) }, render.Sphere(0.1, 20, 20))

	color(s, shirt)
	part(s, func() {
		s.Translate(0.27, 0.3, 0.4)
		s.Rotate(-15, 0, 1, 0)
		s.Rotate(-90, 1, 0, 0)
		s.Scale(0.2, 0.8, 0.2)
	}, render.Cube(1))
	color(s, skin)
	part(s, func() { s.Translate(0.1, 0.3, 0.85) }, render.Sphere(0.1, 20, 20))

	left, right := p.LegAngles()
	color(s, wood)
	leg(s, left, -0.2)
	leg(s, right, 0.2)

	color(s, black)
	part(s, func() { s.Translate(-0.1, 0.9, 0.25) }, render.Sphere(0.05, 20, 20))
	part(s, func() { s.Translate(0.1, 0.9, 0.25) }, render.Sphere(0.05, 20, 20))
	part(s, func() { s.Translate(0, 0.8, 0.3) }, render.Lines(mgl32.Vec3{-0.1, 0, 0}, mgl32.Vec3{0.1, 0, 0}))
}

// leg swings about the hip axis by angle degrees.
func leg(s render.Sink, angle float64, x float32) {
	part(s, func() {
		s.Rotate(float32(angle), 1, 0, 0)
		s.Translate(x, -0.75, 0)
		s.Scale(0.2, 0.8, 0.2)
	}, render.Cube(1))
}

// part draws p under the transform set up by place.
func part(s render.Sink, place func(), p render.Primitive) {
	render.Scoped(s, func() {
		place()
		s.Draw(p)
	})
}

func bow(s render.Sink, drawn float32) {
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			s.Translate(0.1, 1.4, 1.4)
			s.Rotate(90, 0, 1, 0)
			s.Rotate(90, 0, 0, 1)
			s.Translate(0, -0.5, 0)

			s.Color(0.5, 0.3, 0.1)
			s.Draw(bowArc(drawn))

			s.Color(0.1, 0.1, 0.1)
			for _, side := range []float32{-1, 1} {
				render.Scoped(s, func() {
					s.Translate(0, 0.5*drawn, 0)
					s.Rotate(-side*30*drawn, 0, 0, 1)
					s.Draw(render.Lines(mgl32.Vec3{side, 0, 0}, mgl32.Vec3{}))
				})
			}
		})
	})
}

const arcSegments = 100

// bowArc is the upper half circle of the bow limbs. A drawn bow bends
// tighter than a slack one.
func bowArc(drawn float32) render.Primitive {
	radius := float32(1)
	switch {
	case drawn == 1:
		radius = 0.85
	case drawn > 0:
		radius = 1.9 * drawn
	}
	points := make([]mgl32.Vec3, 0, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		theta := math.Pi * float64(i) / arcSegments
		points = append(points, mgl32.Vec3{radius * float32(math.Cos(theta)), radius * float32(math.Sin(theta)), 0})
	}
	return render.LineStrip(points...)
}

// ArrowInPlay draws the game's arrow: on the bow while holstered, at its
// flight position otherwise.
func ArrowInPlay(s render.Sink, p game.Player, a game.Arrow) {
	render.WithAttrib(s, func() {
		render.Scoped(s, func() {
			if a.InFlight {
				s.Translate(float32(a.X), 0, float32(a.Z))
				s.Rotate(degrees(a.Heading), 0, 1, 0)
			} else {
				s.Translate(float32(p.X), 0, float32(p.Z))
				s.Rotate(float32(p.Heading), 0, 1, 0)
			}
			Arrow(s)
		})
	})
}

// Shaft is the primitive every arrow's shaft is drawn with.
var Shaft = render.Cylinder(0.05, 0.05, 2, 20)

// Arrow draws one arrow in player space: nocked at bow height, pointing +Z.
func Arrow(s render.Sink) {
	render.Scoped(s, func() {
		s.Translate(0.01, 1.5, 1)
		s.Scale(0.7, 0.7, 0.5)
		s.Rotate(-90, 0, 1, 0)
		s.Rotate(90, 0, 0, 1)
		s.Rotate(90, 1, 0, 0)

		s.Color(0.8, 0.8, 0.8)
		s.Draw(Shaft)

		s.Color(1, 0, 0)
		part(s, func() { s.Translate(0, 0, 2) }, render.Cone(0.1, 0.3, 20))

		s.Color(0.7, 0.7, 0.7)
		fletching := render.Cone(0.05, 0.2, 10)
		part(s, func() {
			s.Translate(0.1, 0, -0.2)
			s.Rotate(30, 0, 1, 0)
		}, fletching)
		part(s, func() {
			s.Translate(-0.1, 0, -0.2)
			s.Rotate(-30, 0, 1, 0)
		}, fletching)
		part(s, func() {
			s.Translate(0, 0.1, -0.2)
			s.Rotate(90, 1, 0, 0)
		}, fletching)
	})
}
