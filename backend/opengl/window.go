package opengl

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/hellotext"
)

// Window owns the GLFW window, its GL 4.1 core context and frame pacing.
// All methods must be called from the thread that created it.
type Window struct {
	win   *glfw.Window
	input *GLFWInputAdapter

	frameTime time.Duration
	lastSwap  time.Time
}

// NewWindow initializes GLFW, opens a resizable window, makes its context
// current and loads the GL function pointers. fps <= 0 disables pacing.
func NewWindow(width, height int, title string, fps int) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	w := &Window{
		win:      win,
		input:    NewGLFWInputAdapter(win),
		lastSwap: time.Now(),
	}
	if fps > 0 {
		w.frameTime = time.Second / time.Duration(fps)
	}

	hellotext.Logger().Info("window created",
		"width", width, "height", height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))
	return w, nil
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the window was closed or Escape is held.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose() || w.input.Input().QuitRequested()
}

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// EndFrame presents the frame and sleeps out the rest of the frame budget.
func (w *Window) EndFrame() {
	w.win.SwapBuffers()

	if w.frameTime > 0 {
		if elapsed := time.Since(w.lastSwap); elapsed < w.frameTime {
			time.Sleep(w.frameTime - elapsed)
		}
	}
	w.lastSwap = time.Now()
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
