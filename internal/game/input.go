package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Named actions and their key bindings.
var actionKeys = map[string]glfw.Key{
	"fire":  glfw.KeySpace,
	"start": glfw.KeyEnter,
	"pause": glfw.KeyP,
	"quit":  glfw.KeyEscape,
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ActionTriggered reports a rising edge on a named action. Unknown names
// are never triggered.
func (in *Input) ActionTriggered(window *glfw.Window, name string) bool {
	key, ok := actionKeys[name]
	if !ok {
		return false
	}
	return in.JustPressed(window, key)
}

// ActionHeld reports whether a named action's key is currently down.
func (in *Input) ActionHeld(window *glfw.Window, name string) bool {
	key, ok := actionKeys[name]
	if !ok {
		return false
	}
	return window.GetKey(key) == glfw.Press
}

// HorizontalAxis returns -1, 0 or +1 from the arrow keys / AD.
func (in *Input) HorizontalAxis(window *glfw.Window) float32 {
	var axis float32
	if window.GetKey(glfw.KeyLeft) == glfw.Press || window.GetKey(glfw.KeyA) == glfw.Press {
		axis -= 1
	}
	if window.GetKey(glfw.KeyRight) == glfw.Press || window.GetKey(glfw.KeyD) == glfw.Press {
		axis += 1
	}
	return axis
}
