//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestRenderbuffer(t *testing.T) {
	ctx := newTestContext(t)
	rb, err := ctx.Renderbuffer(glctx.RenderbufferConfig{Width: 8, Height: 8, Components: 4, DType: "f1"})
	if err != nil {
		t.Fatalf("Renderbuffer: %v", err)
	}
	if rb.Width() != 8 || rb.Height() != 8 {
		t.Fatalf("Width/Height = %d/%d, want 8/8", rb.Width(), rb.Height())
	}
	if rb.IsDepth() {
		t.Fatal("color renderbuffer reports IsDepth true")
	}
}

func TestDepthRenderbuffer(t *testing.T) {
	ctx := newTestContext(t)
	rb, err := ctx.DepthRenderbuffer(glctx.RenderbufferConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("DepthRenderbuffer: %v", err)
	}
	if !rb.IsDepth() {
		t.Fatal("DepthRenderbuffer reports IsDepth false")
	}
}

func TestRenderbufferRejectsMismatchedDType(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.DepthRenderbuffer(glctx.RenderbufferConfig{Width: 8, Height: 8, DType: "f4"})
	if err == nil {
		t.Fatal("expected error requesting a depth renderbuffer with a non-depth dtype")
	}
}
