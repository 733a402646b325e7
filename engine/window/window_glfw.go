package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwState holds the GLFW-specific window state.
type glfwState struct {
	parent  *viewerWindow
	window  *glfw.Window
	running bool
}

// openGLFWWindow creates the GLFW window and stores it on the viewer window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func openGLFWWindow(w *viewerWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}

	gs := &glfwState{
		parent:  w,
		window:  win,
		running: true,
	}
	w.glfw = gs

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gs.running = false
			win.SetShouldClose(true)
		}
	})

	// Framebuffer size, not window size: on high-DPI displays the two differ
	// and the surface must be configured in pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return nil
}

// surfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor via
// the wgpuglfw bridge.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func (gs *glfwState) surfaceDescriptor() *wgpu.SurfaceDescriptor {
	if gs == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gs.window)
}

// isRunning reports whether the window is still active.
func (gs *glfwState) isRunning() bool {
	if gs == nil {
		return false
	}
	return gs.running && !gs.window.ShouldClose()
}

// close destroys the GLFW window and terminates the GLFW library.
func (gs *glfwState) close() error {
	if gs == nil {
		return fmt.Errorf("window is not initialized")
	}
	gs.running = false
	gs.window.SetShouldClose(true)
	gs.window.Destroy()
	glfw.Terminate()
	return nil
}

// processMessages polls GLFW for pending events without blocking.
func (gs *glfwState) processMessages() bool {
	glfw.PollEvents()
	return gs.isRunning()
}
