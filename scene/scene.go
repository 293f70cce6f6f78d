// Package scene issues the archery room, its props and the player as draw
// calls on a render.Sink. It reads game state and never changes it.
package scene

import (
	"math"

	"archery3d/camera"
	"archery3d/game"
	"archery3d/render"
)

var (
	skin  = game.RGB{R: 0.9, G: 0.7, B: 0.5}
	shirt = game.RGB{R: 0.2, G: 0.6, B: 1}
	wood  = game.RGB{R: 0.5, G: 0.35, B: 0.05}
	black = game.RGB{}
)

// Frame positions the camera and draws everything.
func Frame(s render.Sink, cam *camera.Camera, st *game.State) {
	cam.ApplyTo(s)
	Draw(s, st)
}

// Draw issues the whole scene for st.
func Draw(s render.Sink, st *game.State) {
	render.Scoped(s, func() {
		Player(s, st.Player)
		ArrowInPlay(s, st.Player, st.Arrow)
		Room(s, st.Decor)
		Lamp(s, st.Decor.LampY)
		Podium(s, st.Decor.Podium)
		Chair(s, st.Decor.ChairAngle)
		Table(s, st.Decor.TableAngle)
		Shelf(s, st.Decor.ShelfScale)
	})
}

func color(s render.Sink, c game.RGB) {
	s.Color(float32(c.R), float32(c.G), float32(c.B))
}

func degrees(rad float64) float32 {
	return float32(rad * 180 / math.Pi)
}
