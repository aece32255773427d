//go:build tinygo || !cgo

package glctx

import (
	"errors"
	"log/slog"
	"unsafe"
)

var errNoCgo = errors.New("glctx needs cgo")

// WindowConfig mirrors the cgo build's type so callers can construct one
// unconditionally; NewContext always fails without cgo.
type WindowConfig struct {
	Title         string
	NotResizable  bool
	Version       [2]int
	OpenGLProfile int
	ForwardCompat bool
	Width, Height int
	HideWindow    bool
	DebugLog      *slog.Logger
}

const (
	ProfileAny int = iota
	ProfileCore
	ProfileCompat
)

// Config mirrors the cgo build's Context constructor input.
type Config struct {
	Standalone     bool
	Window         WindowConfig
	GLVersion      int
	GetProcAddress func(name string) unsafe.Pointer
	Logger         *slog.Logger
}

// Context is an inert placeholder; its methods do nothing, and Error
// returns errNoCgo.
type Context struct{}

// NewContext always fails: this build was compiled without cgo, so no GL
// loader can be resolved.
func NewContext(cfg Config) (*Context, error) {
	return nil, errNoCgo
}

func (c *Context) Finish()    {}
func (c *Context) Destroy()   {}
func (c *Context) Error() error { return errNoCgo }
