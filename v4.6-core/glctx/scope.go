//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

// TextureBinding binds a texture (any kind) to a texture unit within a scope.
type TextureBinding struct {
	Texture *Texture
	Unit    uint32
}

// BufferBinding binds a buffer to an indexed binding point (uniform block
// or shader storage block) within a scope.
type BufferBinding struct {
	Buffer  *Buffer
	Target  uint32 // gl.UNIFORM_BUFFER or gl.SHADER_STORAGE_BUFFER
	Binding uint32
}

// SamplerBinding pairs a standalone sampler with the unit it samples from
// within a scope.
type SamplerBinding struct {
	Sampler *Sampler
	Unit    uint32
}

// ScopeConfig configures [Context.Scope].
type ScopeConfig struct {
	Framebuffer *Framebuffer
	EnableFlags EnableFlag
	Textures    []TextureBinding
	Buffers     []BufferBinding
	Samplers    []SamplerBinding
}

// Scope captures a framebuffer, enable-flag set, and binding set, applying
// them atomically on Begin and restoring the prior framebuffer and enable
// flags on End; texture, buffer and sampler bindings are not restored.
type Scope struct {
	ctx         *Context
	framebuffer *Framebuffer
	enableFlags EnableFlag
	textures    []TextureBinding
	buffers     []BufferBinding
	samplers    []SamplerBinding

	oldFramebuffer *Framebuffer
	oldEnableFlags EnableFlag
}

func (s *Scope) glo() uint32 { return 0 }

func (s *Scope) release(ctx *Context) {}

// Scope constructs a scope from cfg. The framebuffer defaults to the
// screen when unset.
func (c *Context) Scope(cfg ScopeConfig) (*Scope, error) {
	fb := cfg.Framebuffer
	if fb == nil {
		fb = c.screen
	}
	s := &Scope{
		ctx: c, framebuffer: fb, enableFlags: cfg.EnableFlags,
		textures: cfg.Textures, buffers: cfg.Buffers, samplers: cfg.Samplers,
	}
	c.track(s)
	return s, nil
}

// Begin applies the scope's framebuffer, enable flags, and bindings,
// remembering the context's prior framebuffer and flags for End.
func (s *Scope) Begin() error {
	c := s.ctx
	s.oldEnableFlags = c.enableFlags
	s.oldFramebuffer = c.boundFramebufferObj

	if err := s.framebuffer.Use(c); err != nil {
		return err
	}
	c.boundFramebufferObj = s.framebuffer

	for _, t := range s.textures {
		if err := t.Texture.Use(t.Unit); err != nil {
			return err
		}
	}
	for _, b := range s.buffers {
		gl.BindBufferBase(b.Target, b.Binding, b.Buffer.name)
	}
	for _, sb := range s.samplers {
		if err := sb.Sampler.Use(sb.Unit); err != nil {
			return err
		}
	}

	c.EnableOnly(s.enableFlags)
	return drainGLErrors()
}

// End restores the framebuffer and enable-flag set captured at Begin.
func (s *Scope) End() error {
	c := s.ctx
	if s.oldFramebuffer != nil {
		if err := s.oldFramebuffer.Use(c); err != nil {
			return err
		}
		c.boundFramebufferObj = s.oldFramebuffer
	}
	c.EnableOnly(s.oldEnableFlags)
	return drainGLErrors()
}
