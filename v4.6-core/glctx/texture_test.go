//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestTextureWriteRead(t *testing.T) {
	ctx := newTestContext(t)
	const w, h = 4, 4
	tex, err := ctx.Texture(glctx.TextureConfig{
		Width: w, Height: h, Components: 1, DType: "u1",
	})
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if tex.Width() != w || tex.Height() != h {
		t.Fatalf("Width/Height = %d/%d, want %d/%d", tex.Width(), tex.Height(), w, h)
	}
	data := make([]byte, w*h)
	for i := range data {
		data[i] = byte(i)
	}
	if err := tex.Write(data, 0, 0, 0, w, h, 1); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := tex.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != len(data) {
		t.Fatalf("Read() length = %d, want %d", len(got), len(data))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("byte %d: got %d want %d", i, got[i], data[i])
		}
	}
}

func TestTextureFilterWrap(t *testing.T) {
	ctx := newTestContext(t)
	tex, err := ctx.Texture(glctx.TextureConfig{Width: 2, Height: 2, Components: 4, DType: "f1"})
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if err := tex.SetFilter(glctx.Filter{}); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if err := tex.SetWrap(glctx.PackWrap(glctx.WrapRepeat, glctx.WrapClampToEdge, 0)); err != nil {
		t.Fatalf("SetWrap: %v", err)
	}
	if err := tex.Use(0); err != nil {
		t.Fatalf("Use: %v", err)
	}
}

func TestTextureMultisampleRejectsNon2D(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Texture(glctx.TextureConfig{
		Width: 4, Height: 4, Kind: glctx.Texture3D, Depth: 2, Samples: 4,
	})
	if err == nil {
		t.Fatal("expected error requesting multisample on a non-2D texture kind")
	}
}

func TestTextureCube(t *testing.T) {
	ctx := newTestContext(t)
	tex, err := ctx.Texture(glctx.TextureConfig{Width: 4, Height: 4, Components: 3, Kind: glctx.TextureCube, DType: "f1"})
	if err != nil {
		t.Fatalf("cube Texture: %v", err)
	}
	if err := tex.BuildMipmaps(); err != nil {
		t.Fatalf("BuildMipmaps: %v", err)
	}
}
