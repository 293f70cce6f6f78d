package input

import (
	"time"

	"go.uber.org/zap"

	"archery3d/camera"
	"archery3d/game"
)

// Button is a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	buttonCount
)

// Settings are the per-event step sizes.
type Settings struct {
	CameraStep  float64       // camera translation per key event
	RotateStep  float64       // camera rotation per key event, degrees
	TurnPerPx   float64       // player heading per pixel of left drag, degrees
	PanPerPx    float64       // camera pan per pixel of right drag
	DoubleClick time.Duration // max gap between presses of a double click
	DollyStep   float64       // camera forward move on a double click
}

func DefaultSettings() Settings {
	return Settings{
		CameraStep:  0.01,
		RotateStep:  1.0,
		TurnPerPx:   0.3,
		PanPerPx:    0.01,
		DoubleClick: 500 * time.Millisecond,
		DollyStep:   0.05,
	}
}

// Host carries out actions that belong to the window rather than the game.
type Host interface {
	ToggleFullscreen()
	Quit()
}

type buttonState struct {
	down      bool
	clicked   bool
	lastClick time.Duration
	double    bool
}

// Mapper applies input events to the game state and camera.
type Mapper struct {
	keys     KeyTable
	settings Settings
	state    *game.State
	cam      *camera.Camera
	host     Host
	log      *zap.Logger

	buttons      [buttonCount]buttonState
	lastX, lastY float64
}

func NewMapper(keys KeyTable, settings Settings, state *game.State, cam *camera.Camera, host Host, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{
		keys:     keys,
		settings: settings,
		state:    state,
		cam:      cam,
		host:     host,
		log:      log,
	}
}

// KeyDown handles a press, or a host key repeat when repeat is set.
func (m *Mapper) KeyDown(k Key, repeat bool) {
	a, ok := m.keys[k]
	if !ok {
		return
	}
	if repeat && a.Kind() == KindPress {
		return
	}
	m.Do(a)
}

func (m *Mapper) KeyUp(k Key) {
	if a, ok := m.keys[k]; ok && a.Kind() == KindWalk {
		m.state.StopWalking()
	}
}

// Do performs a regardless of the key event that produced it.
func (m *Mapper) Do(a Action) {
	s := m.settings
	switch a {
	// up x view points to screen left for an upright camera
	case ActionCameraLeft:
		m.cam.MoveRight(s.CameraStep)
	case ActionCameraRight:
		m.cam.MoveRight(-s.CameraStep)
	case ActionCameraUp:
		m.cam.MoveUp(s.CameraStep)
	case ActionCameraDown:
		m.cam.MoveUp(-s.CameraStep)
	case ActionCameraForward:
		m.cam.MoveForward(s.CameraStep)
	case ActionCameraBack:
		m.cam.MoveForward(-s.CameraStep)
	case ActionPitchUp:
		m.cam.RotatePitch(s.RotateStep)
	case ActionPitchDown:
		m.cam.RotatePitch(-s.RotateStep)
	case ActionYawLeft:
		m.cam.RotateYaw(s.RotateStep)
	case ActionYawRight:
		m.cam.RotateYaw(-s.RotateStep)

	case ActionWalkForward:
		m.state.QueueMove(game.DirForward)
	case ActionWalkBack:
		m.state.QueueMove(game.DirBack)
	case ActionWalkLeft:
		m.state.QueueMove(game.DirLeft)
	case ActionWalkRight:
		m.state.QueueMove(game.DirRight)

	case ActionPresetTop:
		m.preset(camera.TopView)
	case ActionPresetSide:
		m.preset(camera.SideView)
	case ActionPresetFront:
		m.preset(camera.FrontView)

	case ActionFire:
		m.state.Fire()
	case ActionToggleBounce:
		m.toggle(game.ToggleBounce)
	case ActionTogglePodium:
		m.toggle(game.TogglePodium)
	case ActionToggleChair:
		m.toggle(game.ToggleChair)
	case ActionToggleTable:
		m.toggle(game.ToggleTable)
	case ActionToggleShelf:
		m.toggle(game.ToggleShelf)
	case ActionRestart:
		m.state.Restart()
	case ActionFullscreen:
		m.host.ToggleFullscreen()
	case ActionQuit:
		m.log.Info("quit requested")
		m.host.Quit()
	}
}

func (m *Mapper) preset(p camera.Preset) {
	m.cam.SetPreset(p)
	m.log.Debug("camera preset", zap.String("preset", p.Name))
}

func (m *Mapper) toggle(t game.Toggle) {
	on := m.state.Toggle(t)
	m.log.Debug("decor toggled", zap.Stringer("toggle", t), zap.Bool("on", on))
}

// MouseButton handles a press or release at cursor (x, y). at is the event
// time on any monotonic clock.
func (m *Mapper) MouseButton(b Button, pressed bool, x, y float64, at time.Duration) {
	if b >= buttonCount {
		return
	}
	st := &m.buttons[b]
	st.down = pressed
	if !pressed {
		return
	}
	m.lastX, m.lastY = x, y

	if st.clicked && at-st.lastClick <= m.settings.DoubleClick {
		// one dolly per burst of clicks
		if !st.double {
			st.double = true
			m.dolly(b)
		}
	} else {
		st.double = false
	}
	st.clicked = true
	st.lastClick = at
}

func (m *Mapper) dolly(b Button) {
	switch b {
	case ButtonLeft:
		m.cam.MoveForward(m.settings.DollyStep)
	case ButtonRight:
		m.cam.MoveForward(-m.settings.DollyStep)
	}
}

// MouseMove handles cursor motion. Left drag turns the player, right drag
// pans the camera; both use the distance since the previous event.
func (m *Mapper) MouseMove(x, y float64) {
	dx := x - m.lastX
	dy := m.lastY - y // screen y grows downwards
	m.lastX, m.lastY = x, y

	if m.buttons[ButtonLeft].down {
		m.state.Rotate(-dx * m.settings.TurnPerPx)
	}
	if m.buttons[ButtonRight].down {
		m.cam.MoveRight(dx * m.settings.PanPerPx)
		m.cam.MoveUp(dy * m.settings.PanPerPx)
	}
}

// Pressed reports whether b is held.
func (m *Mapper) Pressed(b Button) bool {
	return b < buttonCount && m.buttons[b].down
}
