package main

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"archery3d/input"
)

var glfwKeys = func() map[glfw.Key]input.Key {
	keys := map[glfw.Key]input.Key{
		glfw.KeySpace:  input.KeySpace,
		glfw.KeyEscape: input.KeyEscape,
		glfw.KeyUp:     input.KeyUp,
		glfw.KeyDown:   input.KeyDown,
		glfw.KeyLeft:   input.KeyLeft,
		glfw.KeyRight:  input.KeyRight,
	}
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		keys[k] = input.Key(rune('a' + k - glfw.KeyA))
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		keys[k] = input.Key(rune('0' + k - glfw.Key0))
	}
	return keys
}()

var glfwButtons = map[glfw.MouseButton]input.Button{
	glfw.MouseButtonLeft:  input.ButtonLeft,
	glfw.MouseButtonRight: input.ButtonRight,
}

// host owns the window side of input: translating glfw events and carrying
// out fullscreen and quit.
type host struct {
	window *glfw.Window

	fullscreen bool
	// windowed geometry to restore when leaving fullscreen
	x, y, w, h int
}

func newHost(w *glfw.Window) *host {
	return &host{window: w}
}

func (h *host) bind(m *input.Mapper) {
	h.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := glfwKeys[key]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			m.KeyDown(k, false)
		case glfw.Repeat:
			m.KeyDown(k, true)
		case glfw.Release:
			m.KeyUp(k)
		}
	})

	h.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := glfwButtons[button]
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		at := time.Duration(glfw.GetTime() * float64(time.Second))
		m.MouseButton(b, action == glfw.Press, x, y, at)
	})

	h.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		m.MouseMove(x, y)
	})
}

func (h *host) ToggleFullscreen() {
	if h.fullscreen {
		h.window.SetMonitor(nil, h.x, h.y, h.w, h.h, 0)
		h.fullscreen = false
		return
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	h.x, h.y = h.window.GetPos()
	h.w, h.h = h.window.GetSize()
	mode := monitor.GetVideoMode()
	h.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	h.fullscreen = true
}

func (h *host) Quit() {
	h.window.SetShouldClose(true)
}
