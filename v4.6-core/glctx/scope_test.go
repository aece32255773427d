//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestScopeFramebufferSaveRestore(t *testing.T) {
	ctx := newTestContext(t)
	tex, err := ctx.Texture(glctx.TextureConfig{Width: 4, Height: 4, Components: 4, DType: "f1"})
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	fb, err := ctx.Framebuffer(glctx.FramebufferConfig{ColorAttachments: []glctx.Attachable{tex}})
	if err != nil {
		t.Fatalf("Framebuffer: %v", err)
	}
	sc, err := ctx.Scope(glctx.ScopeConfig{Framebuffer: fb, EnableFlags: glctx.FlagBlend})
	if err != nil {
		t.Fatalf("Scope: %v", err)
	}
	if err := sc.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sc.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestScopeDefaultsToScreenFramebuffer(t *testing.T) {
	ctx := newTestContext(t)
	sc, err := ctx.Scope(glctx.ScopeConfig{})
	if err != nil {
		t.Fatalf("Scope: %v", err)
	}
	if err := sc.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sc.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestScopeBindsTexturesBuffersAndSamplers(t *testing.T) {
	ctx := newTestContext(t)
	tex, err := ctx.Texture(glctx.TextureConfig{Width: 2, Height: 2, Components: 4, DType: "f1"})
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	smp, err := ctx.Sampler(glctx.SamplerConfig{})
	if err != nil {
		t.Fatalf("Sampler: %v", err)
	}
	buf, err := ctx.Buffer(glctx.BufferConfig{Reserve: 64})
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	sc, err := ctx.Scope(glctx.ScopeConfig{
		Textures: []glctx.TextureBinding{{Texture: tex, Unit: 0}},
		Samplers: []glctx.SamplerBinding{{Sampler: smp, Unit: 0}},
		Buffers:  []glctx.BufferBinding{{Buffer: buf, Target: gl.UNIFORM_BUFFER, Binding: 0}},
	})
	if err != nil {
		t.Fatalf("Scope: %v", err)
	}
	if err := sc.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := sc.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}
