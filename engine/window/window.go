// package window is a minimal GLFW windowing shim for mesh viewers and demos.
// It creates a native window, exposes a wgpu surface descriptor for it, and
// pumps platform events. Input routing beyond escape-to-close is deliberately
// absent — this package exists so examples can put geometry on screen, not to
// be an input layer.
package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides the platform windowing surface a demo renderer draws into.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration,
	// typically the demo's frame render function.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized, receiving pixel dimensions.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating
	// a WebGPU surface, created by the wgpuglfw bridge from the underlying
	// GLFW window. Platform-appropriate on Windows, X11, Wayland, and macOS.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true while the window is active and not closing.
	//
	// Returns:
	//   - bool: true if the window is running
	IsRunning() bool

	// Close destroys the window and terminates the windowing library.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the message loop, blocking until the window closes.
	// The update callback is invoked each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// viewerWindow is the unexported implementation of Window.
type viewerWindow struct {
	title  string
	width  int
	height int

	glfw *glfwState

	onUpdate func()
	onResize func(width, height int)
}

// Compile-time check that viewerWindow implements Window.
var _ Window = &viewerWindow{}

// NewWindow creates and opens a Window with the provided options applied.
// Panics if the platform window cannot be created — a demo cannot proceed
// without one.
//
// Parameters:
//   - options: a variadic list of WindowBuilderOption functions to configure the window
//
// Returns:
//   - Window: the opened window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &viewerWindow{
		title:  "mesh-go viewer",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := openGLFWWindow(w); err != nil {
		panic(fmt.Sprintf("window: failed to create platform window: %v", err))
	}
	return w
}

func (w *viewerWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *viewerWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *viewerWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return w.glfw.surfaceDescriptor()
}

func (w *viewerWindow) IsRunning() bool {
	return w.glfw.isRunning()
}

func (w *viewerWindow) Close() error {
	return w.glfw.close()
}

func (w *viewerWindow) ProcessMessages() {
	for w.IsRunning() {
		if !w.glfw.processMessages() {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *viewerWindow) Width() int {
	return w.width
}

func (w *viewerWindow) Height() int {
	return w.height
}
