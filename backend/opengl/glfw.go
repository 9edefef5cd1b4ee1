package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/hellotext"
)

// GLFWInputAdapter adapts GLFW input to hellotext.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *hellotext.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  hellotext.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)

	return adapter
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *hellotext.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == hellotext.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

// glfwKeyToKey maps GLFW keys to hellotext keys.
func glfwKeyToKey(key glfw.Key) hellotext.Key {
	switch key {
	case glfw.KeyEscape:
		return hellotext.KeyEscape
	default:
		return hellotext.KeyNone
	}
}
