package scene

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"archery3d/camera"
	"archery3d/game"
	"archery3d/render"
)

func newState() *game.State {
	return game.New(game.DefaultRules(), nil, zap.NewNop())
}

func shafts(r *render.Recorder) []render.DrawCall {
	var out []render.DrawCall
	for _, c := range r.Calls {
		if c.Primitive.Key() == Shaft.Key() {
			out = append(out, c)
		}
	}
	return out
}

func hasCallAt(calls []render.DrawCall, want mgl32.Vec3) bool {
	for _, c := range calls {
		if c.Origin().ApproxEqualThreshold(want, 1e-4) {
			return true
		}
	}
	return false
}

func TestDrawIsBalanced(t *testing.T) {
	st := newState()
	for _, tg := range []game.Toggle{game.ToggleBounce, game.TogglePodium, game.ToggleChair, game.ToggleTable, game.ToggleShelf} {
		st.Toggle(tg)
	}

	// each step builds on the previous one
	steps := []struct {
		name    string
		prepare func()
	}{
		{"fresh", func() {}},
		{"moving", func() { st.QueueMove(game.DirForward); st.Advance(time.Second / 6) }},
		{"flying", func() { st.Fire(); st.Advance(time.Second / 4) }},
		{"over", func() { st.Advance(40 * time.Second) }},
	}
	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			step.prepare()
			r := render.NewRecorder()
			Frame(r, camera.NewFromPreset(camera.TopView), st)

			assert.True(t, r.Balanced(), "depth %d attrib %d", r.Depth(), r.AttribDepth())
			assert.Zero(t, r.Underflows())
			assert.NotEmpty(t, r.Calls)
		})
	}
}

func TestFrameAppliesCamera(t *testing.T) {
	r := render.NewRecorder()
	cam := camera.NewFromPreset(camera.FrontView)
	Frame(r, cam, newState())
	assert.Equal(t, cam.View(), r.View())
}

func TestSceneContents(t *testing.T) {
	r := render.NewRecorder()
	Draw(r, newState())

	// 12 on the shelf plus the one in play
	assert.Len(t, shafts(r), 13)
	assert.Equal(t, len(flagRings), r.Count(render.ShapeAnnulus))
	// mouth, two bow string halves
	assert.Equal(t, 3, r.Count(render.ShapeLines))
	assert.Equal(t, 1, r.Count(render.ShapeLineStrip))
}

func TestHolsteredArrowFollowsPlayer(t *testing.T) {
	st := newState()
	st.Player.X, st.Player.Z = 2, 4

	r := render.NewRecorder()
	ArrowInPlay(r, st.Player, st.Arrow)
	require.Len(t, shafts(r), 1)
	assert.True(t, hasCallAt(shafts(r), mgl32.Vec3{2.01, 1.5, 5}), "got %v", shafts(r)[0].Origin())
}

func TestFlyingArrowDrawnAtArrowPosition(t *testing.T) {
	st := newState()
	st.Arrow = game.Arrow{X: 3, Z: 5, InFlight: true}
	st.Player.X, st.Player.Z = -4, 10

	r := render.NewRecorder()
	Draw(r, st)
	assert.True(t, hasCallAt(shafts(r), mgl32.Vec3{3.01, 1.5, 6}))
	assert.False(t, hasCallAt(shafts(r), mgl32.Vec3{-3.99, 1.5, 11}), "no arrow left on the bow")
}

func TestFlyingArrowKeepsCapturedHeading(t *testing.T) {
	st := newState()
	st.Player.Heading = 90
	require.True(t, st.Fire())
	st.Player.Heading = 0

	r := render.NewRecorder()
	ArrowInPlay(r, st.Player, st.Arrow)
	// a quarter turn maps the +Z nock offset onto +X
	assert.True(t, hasCallAt(shafts(r), mgl32.Vec3{1, 1.5, -0.01}), "got %v", shafts(r)[0].Origin())
}

func TestLegsSwingOpposite(t *testing.T) {
	p := game.Player{LegPhase: 10}
	r := render.NewRecorder()
	Player(r, p)

	var legs []render.DrawCall
	for _, c := range r.Calls {
		if c.Primitive.Shape == render.ShapeCube && c.Color == (mgl32.Vec3{0.5, 0.35, 0.05}) {
			legs = append(legs, c)
		}
	}
	require.Len(t, legs, 2)
	left, right := legs[0].Origin(), legs[1].Origin()
	assert.InDelta(t, left.Y(), right.Y(), 1e-5)
	assert.InDelta(t, -left.Z(), right.Z(), 1e-5, "legs swing in opposite directions")
	assert.NotZero(t, left.Z())
}

func TestDecorFollowsState(t *testing.T) {
	d := game.Decor{LampY: 3.5, TargetScale: 2, Podium: game.RGB{G: 1}}

	r := render.NewRecorder()
	Lamp(r, d.LampY)
	require.NotEmpty(t, r.Calls)
	bulb := r.Calls[0]
	assert.Equal(t, render.ShapeSphere, bulb.Primitive.Shape)
	assert.True(t, bulb.Origin().ApproxEqualThreshold(mgl32.Vec3{-5, 4, 20.7}, 1e-5))

	r.Clear()
	Podium(r, d.Podium)
	for _, c := range r.Calls {
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Color)
	}

	r.Clear()
	Target(r, d.TargetScale)
	require.Len(t, r.Calls, len(targetRings))
	scaled := r.Calls[0].Model.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assert.InDelta(t, 2, scaled.X(), 1e-5)
}

func TestAttribRestoredAfterProps(t *testing.T) {
	r := render.NewRecorder()
	r.Color(0.25, 0.25, 0.25)
	Draw(r, newState())
	assert.Equal(t, mgl32.Vec3{0.25, 0.25, 0.25}, r.Attrib().Color)
}

func TestHUD(t *testing.T) {
	st := newState()
	assert.Equal(t, []string{"Score: 0", "Time: 30"}, HUD(st))

	st.Advance(30 * time.Second)
	assert.Equal(t, []string{"Game Over!", "Final Score: 0", "Press R to restart!"}, HUD(st))
}

func TestRasterSnapshotShowsScene(t *testing.T) {
	r := render.NewRaster(160, 120, 45)
	r.Clear(render.Background)
	Frame(r, camera.NewFromPreset(camera.FrontView), newState())

	img := r.Image()
	drawn := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != render.Background.R || img.Pix[i+1] != render.Background.G || img.Pix[i+2] != render.Background.B {
			drawn++
		}
	}
	assert.Greater(t, drawn, 100)
	assert.True(t, r.Balanced())
}
