package window

// WindowBuilderOption is a functional option for configuring a Window via NewWindow.
type WindowBuilderOption func(*viewerWindow)

// WithTitle is an option builder that sets the window title.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - WindowBuilderOption: a function that applies the title option to a window
func WithTitle(title string) WindowBuilderOption {
	return func(w *viewerWindow) {
		w.title = title
	}
}

// WithSize is an option builder that sets the requested window size in pixels.
// The actual framebuffer size may differ on high-DPI displays and is reflected
// by Width and Height once the window is open.
//
// Parameters:
//   - width: the requested width in pixels
//   - height: the requested height in pixels
//
// Returns:
//   - WindowBuilderOption: a function that applies the size option to a window
func WithSize(width, height int) WindowBuilderOption {
	return func(w *viewerWindow) {
		w.width = width
		w.height = height
	}
}
