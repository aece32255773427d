//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

// Wrap is a packed per-axis wrap encoding: one byte per
// axis (S in byte 0, T in byte 1, R in byte 2), codes
// CLAMP_TO_EDGE=0x01, REPEAT=0x02, MIRRORED_REPEAT=0x03,
// MIRROR_CLAMP_TO_EDGE=0x04, CLAMP_TO_BORDER=0x05; zero defaults to
// CLAMP_TO_EDGE.
type Wrap uint32

const (
	WrapClampToEdge      byte = 0x01
	WrapRepeat           byte = 0x02
	WrapMirroredRepeat   byte = 0x03
	WrapMirrorClampEdge  byte = 0x04
	WrapClampToBorder    byte = 0x05
)

// PackWrap encodes three per-axis wrap codes (s, t, r) into a [Wrap].
func PackWrap(s, t, r byte) Wrap {
	return Wrap(uint32(s) | uint32(t)<<8 | uint32(r)<<16)
}

func (w Wrap) axis(shift uint) byte {
	b := byte(w >> shift)
	if b == 0 {
		return WrapClampToEdge
	}
	return b
}

func (w Wrap) S() byte { return w.axis(0) }
func (w Wrap) T() byte { return w.axis(8) }
func (w Wrap) R() byte { return w.axis(16) }

func wrapGLEnum(code byte) uint32 {
	switch code {
	case WrapRepeat:
		return gl.REPEAT
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case WrapMirrorClampEdge:
		return gl.MIRROR_CLAMP_TO_EDGE
	case WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	default:
		return gl.CLAMP_TO_EDGE
	}
}

// Filter is a (min, mag) filter pair, GL enums directly (NEAREST/LINEAR/
// the mipmap variants).
type Filter struct {
	Min, Mag int32
}

// SamplerConfig configures [Context.Sampler].
type SamplerConfig struct {
	Filter      Filter
	Anisotropy  float32
	Wrap        Wrap
	CompareFunc uint32 // 0 = off
	BorderColor [4]float32
	MinLOD, MaxLOD float32
}

// Sampler is a standalone sampling parameter set, with a lifetime
// independent of any texture.
type Sampler struct {
	name        uint32
	minFilter, magFilter int32
	anisotropy  float32
	wrap        Wrap
	compareFunc uint32
	borderColor [4]float32
	minLOD, maxLOD float32
}

func (s *Sampler) glo() uint32 { return s.name }

func (s *Sampler) release(ctx *Context) {
	if s.name == 0 {
		return
	}
	gl.DeleteSamplers(1, &s.name)
	s.name = 0
}

// Sampler creates a standalone sampler object.
func (c *Context) Sampler(cfg SamplerConfig) (*Sampler, error) {
	var name uint32
	gl.GenSamplers(1, &name)
	if name == 0 {
		return nil, newError(KindObjectCreationFailed, "glGenSamplers returned 0")
	}
	s := &Sampler{name: name}

	minFilter := zeroDefault(cfg.Filter.Min, gl.LINEAR)
	magFilter := zeroDefault(cfg.Filter.Mag, gl.LINEAR)
	gl.SamplerParameteri(name, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.SamplerParameteri(name, gl.TEXTURE_MAG_FILTER, magFilter)
	s.minFilter, s.magFilter = minFilter, magFilter

	wrap := cfg.Wrap
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_S, int32(wrapGLEnum(wrap.S())))
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_T, int32(wrapGLEnum(wrap.T())))
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_R, int32(wrapGLEnum(wrap.R())))
	s.wrap = wrap

	if cfg.Anisotropy > 0 {
		aniso := cfg.Anisotropy
		if aniso > c.caps.MaxAnisotropy {
			aniso = c.caps.MaxAnisotropy
		}
		if c.versionCode >= 460 || c.HasExtension("GL_EXT_texture_filter_anisotropic") {
			gl.SamplerParameterf(name, gl.TEXTURE_MAX_ANISOTROPY, aniso)
		}
		s.anisotropy = aniso
	}

	if cfg.CompareFunc != 0 {
		gl.SamplerParameteri(name, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		gl.SamplerParameteri(name, gl.TEXTURE_COMPARE_FUNC, int32(cfg.CompareFunc))
	} else {
		gl.SamplerParameteri(name, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	}
	s.compareFunc = cfg.CompareFunc

	if cfg.BorderColor != [4]float32{} {
		gl.SamplerParameterfv(name, gl.TEXTURE_BORDER_COLOR, &cfg.BorderColor[0])
		s.borderColor = cfg.BorderColor
	}

	if cfg.MinLOD != 0 || cfg.MaxLOD != 0 {
		gl.SamplerParameterf(name, gl.TEXTURE_MIN_LOD, cfg.MinLOD)
		gl.SamplerParameterf(name, gl.TEXTURE_MAX_LOD, cfg.MaxLOD)
		s.minLOD, s.maxLOD = cfg.MinLOD, cfg.MaxLOD
	}

	if err := drainGLErrors(); err != nil {
		gl.DeleteSamplers(1, &name)
		return nil, err
	}
	c.track(s)
	return s, nil
}

// Use binds the sampler to texture unit.
func (s *Sampler) Use(unit uint32) error {
	gl.BindSampler(unit, s.name)
	return drainGLErrors()
}

// Clear unbinds any sampler from texture unit.
func (s *Sampler) Clear(unit uint32) {
	gl.BindSampler(unit, 0)
}
