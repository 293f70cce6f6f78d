// Package input turns key and mouse events from the window host into camera
// moves and game commands.
package input

import "fmt"

// Action is what a key does, independent of which key is bound to it.
type Action uint8

const (
	ActionNone Action = iota

	ActionCameraUp
	ActionCameraDown
	ActionCameraLeft
	ActionCameraRight
	ActionCameraForward
	ActionCameraBack
	ActionPitchUp
	ActionPitchDown
	ActionYawLeft
	ActionYawRight

	ActionWalkForward
	ActionWalkBack
	ActionWalkLeft
	ActionWalkRight

	ActionPresetTop
	ActionPresetSide
	ActionPresetFront

	ActionFire
	ActionToggleBounce
	ActionTogglePodium
	ActionToggleChair
	ActionToggleTable
	ActionToggleShelf
	ActionRestart
	ActionFullscreen
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:          "none",
	ActionCameraUp:      "camera_up",
	ActionCameraDown:    "camera_down",
	ActionCameraLeft:    "camera_left",
	ActionCameraRight:   "camera_right",
	ActionCameraForward: "camera_forward",
	ActionCameraBack:    "camera_back",
	ActionPitchUp:       "pitch_up",
	ActionPitchDown:     "pitch_down",
	ActionYawLeft:       "yaw_left",
	ActionYawRight:      "yaw_right",
	ActionWalkForward:   "walk_forward",
	ActionWalkBack:      "walk_back",
	ActionWalkLeft:      "walk_left",
	ActionWalkRight:     "walk_right",
	ActionPresetTop:     "preset_top",
	ActionPresetSide:    "preset_side",
	ActionPresetFront:   "preset_front",
	ActionFire:          "fire",
	ActionToggleBounce:  "toggle_bounce",
	ActionTogglePodium:  "toggle_podium",
	ActionToggleChair:   "toggle_chair",
	ActionToggleTable:   "toggle_table",
	ActionToggleShelf:   "toggle_shelf",
	ActionRestart:       "restart",
	ActionFullscreen:    "fullscreen",
	ActionQuit:          "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

// ParseAction resolves an action by its String name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && Action(a) != ActionNone {
			return Action(a), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown input action %q", name)
}

// Kind says which key events trigger an action.
type Kind uint8

const (
	// KindRepeat fires on press and on every key repeat.
	KindRepeat Kind = iota
	// KindPress fires once per press.
	KindPress
	// KindWalk fires on press and repeat and stops walking on release.
	KindWalk
)

func (a Action) Kind() Kind {
	switch {
	case a >= ActionCameraUp && a <= ActionYawRight:
		return KindRepeat
	case a >= ActionWalkForward && a <= ActionWalkRight:
		return KindWalk
	default:
		return KindPress
	}
}
