//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestSampler(t *testing.T) {
	ctx := newTestContext(t)
	sampler, err := ctx.Sampler(glctx.SamplerConfig{
		Wrap: glctx.PackWrap(glctx.WrapRepeat, glctx.WrapRepeat, glctx.WrapRepeat),
	})
	if err != nil {
		t.Fatalf("Sampler: %v", err)
	}
	if err := sampler.Use(0); err != nil {
		t.Fatalf("Use: %v", err)
	}
	sampler.Clear(0)
}

func TestSamplerAnisotropyClampedToLimit(t *testing.T) {
	ctx := newTestContext(t)
	limits := ctx.Limits()
	_, err := ctx.Sampler(glctx.SamplerConfig{Anisotropy: limits.MaxAnisotropy + 1000})
	if err != nil {
		t.Fatalf("Sampler with over-limit anisotropy should clamp, not fail: %v", err)
	}
}
