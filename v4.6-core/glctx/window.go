//go:build !tinygo && cgo

package glctx

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig configures the standalone GLFW bootstrap path.
type WindowConfig struct {
	Title         string
	NotResizable  bool
	Version       [2]int
	OpenGLProfile int // [ProfileCore] or [ProfileCompat]; zero ([ProfileAny]) selects ProfileCore
	ForwardCompat bool
	Width, Height int
	HideWindow    bool
	DebugLog      *slog.Logger
}

const (
	ProfileAny    int = glfw.OpenGLAnyProfile
	ProfileCore   int = glfw.OpenGLCoreProfile
	ProfileCompat int = glfw.OpenGLCompatProfile
)

// Window wraps the GLFW window backing a standalone Context.
type Window struct {
	*glfw.Window
}

// defaultContextVersion is the GL context GLFW is asked to create when
// a WindowConfig leaves Version unset.
var defaultContextVersion = [2]int{3, 3}

// windowHints returns the (hint, value) pairs glfw.WindowHint must be
// called with for cfg, in application order.
func windowHints(cfg WindowConfig) [][2]int {
	major, minor := defaultContextVersion[0], defaultContextVersion[1]
	if cfg.Version != [2]int{} {
		major, minor = cfg.Version[0], cfg.Version[1]
	}
	hints := [][2]int{
		{glfw.Resizable, b2i(!cfg.NotResizable)},
		{glfw.ContextVersionMajor, major},
		{glfw.ContextVersionMinor, minor},
		{glfw.OpenGLProfile, zeroDefault(cfg.OpenGLProfile, glfw.OpenGLCoreProfile)},
		{glfw.OpenGLForwardCompatible, b2i(cfg.ForwardCompat)},
	}
	if cfg.HideWindow {
		hints = append(hints, [2]int{glfw.Visible, glfw.False})
	}
	return hints
}

// clampWindowSize maps a non-positive width or height (the zero value of
// WindowConfig) to the smallest usable GLFW window size.
func clampWindowSize(width, height int) (int, int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return width, height
}

func newStandaloneWindow(cfg WindowConfig) (*Window, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, err
	}
	for _, h := range windowHints(cfg) {
		glfw.WindowHint(h[0], h[1])
	}

	title := cfg.Title
	if title == "" {
		title = "glctx"
	}
	width, height := clampWindowSize(cfg.Width, cfg.Height)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, err
	}

	window.MakeContextCurrent()
	return &Window{window}, glfw.Terminate, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
