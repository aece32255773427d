//go:build !tinygo && cgo

package glctx_test

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// newTestContext creates a hidden 1x1 standalone context for exercising
// the GL-backed API. Headless CI without a display/driver skips instead
// of failing.
func newTestContext(t *testing.T) *glctx.Context {
	t.Helper()
	ctx, err := glctx.NewContext(glctx.Config{
		Standalone: true,
		Window: glctx.WindowConfig{
			Title:         "glctx-test",
			Width:         1,
			Height:        1,
			HideWindow:    true,
			Version:       [2]int{4, 6},
			OpenGLProfile: glctx.ProfileCore,
			ForwardCompat: true,
		},
	})
	if err != nil {
		t.Log(err)
		t.Skip("no GL context available in this environment")
	}
	t.Cleanup(ctx.Destroy)
	return ctx
}

// float32Bytes reinterprets a float32 slice's backing array as bytes,
// ready for a [glctx.BufferConfig] or [glctx.TextureConfig] Data field.
func float32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

// uint32Bytes reinterprets a uint32 slice's backing array as bytes.
func uint32Bytes(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
