//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestNewContext(t *testing.T) {
	ctx := newTestContext(t)
	if ctx.Screen() == nil {
		t.Fatal("screen framebuffer must be non-nil after construction")
	}
	if !ctx.Screen().IsScreen() {
		t.Fatal("context.Screen() must report IsScreen true")
	}
	if ctx.DefaultScope() == nil {
		t.Fatal("default scope must be non-nil after construction")
	}
	if ctx.Window() == nil {
		t.Fatal("standalone context must expose its window")
	}
	if ctx.VersionCode() < 330 {
		t.Fatalf("expected a core-profile version >= 330, got %d", ctx.VersionCode())
	}
	vendor, renderer, version := ctx.Info()
	t.Logf("vendor=%q renderer=%q version=%q", vendor, renderer, version)
	if err := ctx.Error(); err != nil {
		t.Fatalf("unexpected pending GL error after construction: %v", err)
	}
}

func TestContextEnableFlags(t *testing.T) {
	ctx := newTestContext(t)
	ctx.EnableOnly(glctx.FlagBlend | glctx.FlagCullFace)
	got := ctx.EnabledFlags()
	if got != glctx.FlagBlend|glctx.FlagCullFace {
		t.Fatalf("EnabledFlags() = %v, want Blend|CullFace", got)
	}
	ctx.Disable(glctx.FlagCullFace)
	if ctx.EnabledFlags() != glctx.FlagBlend {
		t.Fatalf("Disable did not clear CullFace: got %v", ctx.EnabledFlags())
	}
	ctx.Enable(glctx.FlagDepthTest)
	if ctx.EnabledFlags() != glctx.FlagBlend|glctx.FlagDepthTest {
		t.Fatalf("Enable did not set DepthTest: got %v", ctx.EnabledFlags())
	}
}

func TestContextExtensions(t *testing.T) {
	ctx := newTestContext(t)
	exts := ctx.Extensions()
	if len(exts) == 0 {
		t.Fatal("expected at least one reported GL extension")
	}
	if !ctx.HasExtension(exts[0]) {
		t.Fatalf("HasExtension(%q) = false, want true", exts[0])
	}
	if ctx.HasExtension("GL_soypat_does_not_exist") {
		t.Fatal("HasExtension reported a made-up extension as present")
	}
}

func TestContextLimits(t *testing.T) {
	ctx := newTestContext(t)
	caps := ctx.Limits()
	if caps.MaxTextureImageUnits < 1 {
		t.Fatalf("MaxTextureImageUnits = %d, want >= 1", caps.MaxTextureImageUnits)
	}
	if caps.MaxColorAttachments < 1 {
		t.Fatalf("MaxColorAttachments = %d, want >= 1", caps.MaxColorAttachments)
	}
}

func TestContextCopyBuffer(t *testing.T) {
	ctx := newTestContext(t)
	src, err := ctx.Buffer(glctx.BufferConfig{Data: []byte{1, 2, 3, 4}})
	if err != nil {
		t.Fatalf("src buffer: %v", err)
	}
	dst, err := ctx.Buffer(glctx.BufferConfig{Reserve: 4, Readable: true})
	if err != nil {
		t.Fatalf("dst buffer: %v", err)
	}
	if err := ctx.CopyBuffer(dst, src, 4, 0, 0); err != nil {
		t.Fatalf("CopyBuffer: %v", err)
	}
	got, err := dst.Read(4, 0, nil, 0)
	if err != nil {
		t.Fatalf("Read dst: %v", err)
	}
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CopyBuffer round-trip mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestContextReleaseUntracksObject(t *testing.T) {
	ctx := newTestContext(t)
	buf, err := ctx.Buffer(glctx.BufferConfig{Reserve: 16})
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	before := len(ctx.Objects())
	if before < 3 { // screen framebuffer + default scope + this buffer
		t.Fatalf("expected at least 3 tracked objects, got %d", before)
	}
	ctx.Release(buf)
	for _, r := range ctx.Objects() {
		if r == glctx.Resource(buf) {
			t.Fatal("buffer still tracked after Release")
		}
	}
}
