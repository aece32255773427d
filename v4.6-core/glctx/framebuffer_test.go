//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestFramebufferColorOnly(t *testing.T) {
	ctx := newTestContext(t)
	tex, err := ctx.Texture(glctx.TextureConfig{Width: 4, Height: 4, Components: 4, DType: "f1"})
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	fb, err := ctx.Framebuffer(glctx.FramebufferConfig{ColorAttachments: []glctx.Attachable{tex}})
	if err != nil {
		t.Fatalf("Framebuffer: %v", err)
	}
	if fb.Width() != 4 || fb.Height() != 4 {
		t.Fatalf("Width/Height = %d/%d, want 4/4", fb.Width(), fb.Height())
	}
	if err := fb.Use(ctx); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if err := fb.Clear(ctx, 0.1, 0.2, 0.3, 1, 0, false); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := fb.Read(4, "f1", 0, 0, 1, 1)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("Read() returned %d bytes, want 4", len(got))
	}
}

func TestFramebufferRequiresAttachment(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Framebuffer(glctx.FramebufferConfig{})
	if err == nil {
		t.Fatal("expected error creating a framebuffer with no attachments")
	}
}

func TestFramebufferWithDepth(t *testing.T) {
	ctx := newTestContext(t)
	color, err := ctx.Texture(glctx.TextureConfig{Width: 4, Height: 4, Components: 4, DType: "f1"})
	if err != nil {
		t.Fatalf("color texture: %v", err)
	}
	depth, err := ctx.DepthRenderbuffer(glctx.RenderbufferConfig{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("depth renderbuffer: %v", err)
	}
	fb, err := ctx.Framebuffer(glctx.FramebufferConfig{
		ColorAttachments: []glctx.Attachable{color},
		Depth:            depth,
	})
	if err != nil {
		t.Fatalf("Framebuffer: %v", err)
	}
	if err := fb.Clear(ctx, 0, 0, 0, 1, 1, true); err != nil {
		t.Fatalf("Clear with depth: %v", err)
	}
}
