//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

// Viewport is a pixel-space rectangle, [x, y, w, h].
type Viewport struct {
	X, Y, W, H int
}

// Attachable is anything bindable as a framebuffer color/depth attachment:
// [*Texture] or [*Renderbuffer].
type Attachable interface {
	glo() uint32
}

// FramebufferConfig configures [Context.Framebuffer]. ColorAttachments may
// be textures or renderbuffers; Depth is optional.
type FramebufferConfig struct {
	ColorAttachments []Attachable
	Depth            Attachable
}

// Framebuffer is a render target: either the screen default (name 0) or a
// user-constructed FBO with color/depth attachments.
type Framebuffer struct {
	name        uint32
	width       int
	height      int
	viewport    Viewport
	scissor     *Viewport
	colorMask   [4]bool
	depthMask   bool
	isScreen    bool
	colorCount  int
}

func (f *Framebuffer) glo() uint32 { return f.name }

func (f *Framebuffer) release(ctx *Context) {
	if f.isScreen || f.name == 0 {
		return
	}
	gl.DeleteFramebuffers(1, &f.name)
	f.name = 0
}

func (f *Framebuffer) Width() int         { return f.width }
func (f *Framebuffer) Height() int        { return f.height }
func (f *Framebuffer) Viewport() Viewport { return f.viewport }
func (f *Framebuffer) IsScreen() bool     { return f.isScreen }

func attachableSize(a Attachable) (w, h int) {
	switch v := a.(type) {
	case *Texture:
		return v.width, v.height
	case *Renderbuffer:
		return v.width, v.height
	default:
		return 0, 0
	}
}

func attachColor(target uint32, index uint32, a Attachable) {
	switch v := a.(type) {
	case *Texture:
		if v.kind == TextureCube {
			gl.FramebufferTexture2D(target, gl.COLOR_ATTACHMENT0+index, gl.TEXTURE_CUBE_MAP_POSITIVE_X, v.name, 0)
		} else {
			gl.FramebufferTexture(target, gl.COLOR_ATTACHMENT0+index, v.name, 0)
		}
	case *Renderbuffer:
		gl.FramebufferRenderbuffer(target, gl.COLOR_ATTACHMENT0+index, gl.RENDERBUFFER, v.name)
	}
}

func attachDepth(target uint32, a Attachable) {
	attachment := uint32(gl.DEPTH_ATTACHMENT)
	switch v := a.(type) {
	case *Texture:
		if v.dtype != nil && v.dtype.Code == "d3" {
			attachment = gl.DEPTH_STENCIL_ATTACHMENT
		}
		gl.FramebufferTexture(target, attachment, v.name, 0)
	case *Renderbuffer:
		if v.dtype != nil && v.dtype.Code == "d3" {
			attachment = gl.DEPTH_STENCIL_ATTACHMENT
		}
		gl.FramebufferRenderbuffer(target, attachment, gl.RENDERBUFFER, v.name)
	}
}

// Framebuffer creates a framebuffer object from the given attachments and
// validates completeness, mapping GL's incomplete-status enums onto
// [KindFramebufferIncomplete].
func (c *Context) Framebuffer(cfg FramebufferConfig) (*Framebuffer, error) {
	if len(cfg.ColorAttachments) == 0 && cfg.Depth == nil {
		return nil, newError(KindInvalidArgument, "framebuffer requires at least one attachment")
	}
	if len(cfg.ColorAttachments) > c.caps.MaxColorAttachments {
		return nil, newErrorf(KindInvalidArgument, "color attachment count %d exceeds MaxColorAttachments %d", len(cfg.ColorAttachments), c.caps.MaxColorAttachments)
	}

	var name uint32
	gl.GenFramebuffers(1, &name)
	if name == 0 {
		return nil, newError(KindObjectCreationFailed, "glGenFramebuffers returned 0")
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, name)

	width, height := 0, 0
	drawBuffers := make([]uint32, len(cfg.ColorAttachments))
	for i, a := range cfg.ColorAttachments {
		attachColor(gl.FRAMEBUFFER, uint32(i), a)
		w, h := attachableSize(a)
		if width == 0 || w < width {
			width = w
		}
		if height == 0 || h < height {
			height = h
		}
		drawBuffers[i] = gl.COLOR_ATTACHMENT0 + uint32(i)
	}
	if cfg.Depth != nil {
		attachDepth(gl.FRAMEBUFFER, cfg.Depth)
		w, h := attachableSize(cfg.Depth)
		if width == 0 || (w != 0 && w < width) {
			width = w
		}
		if height == 0 || (h != 0 && h < height) {
			height = h
		}
	}
	if len(drawBuffers) > 0 {
		gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])
	} else {
		gl.DrawBuffer(gl.NONE)
		gl.ReadBuffer(gl.NONE)
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.DeleteFramebuffers(1, &name)
		return nil, newErrorf(KindFramebufferIncomplete, "framebuffer incomplete: 0x%x", status)
	}
	if err := drainGLErrors(); err != nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.DeleteFramebuffers(1, &name)
		return nil, err
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.boundFramebuffer)

	fb := &Framebuffer{
		name: name, width: width, height: height,
		viewport:  Viewport{W: width, H: height},
		colorMask: [4]bool{true, true, true, true},
		depthMask: true,
		colorCount: len(cfg.ColorAttachments),
	}
	c.track(fb)
	return fb, nil
}

// Use binds the framebuffer for drawing and applies its viewport and, when
// set, its scissor rectangle. The color and depth write masks are applied
// by Clear, not by Use.
func (f *Framebuffer) Use(ctx *Context) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.name)
	ctx.boundFramebuffer = f.name
	gl.Viewport(int32(f.viewport.X), int32(f.viewport.Y), int32(f.viewport.W), int32(f.viewport.H))
	if f.scissor != nil {
		gl.Scissor(int32(f.scissor.X), int32(f.scissor.Y), int32(f.scissor.W), int32(f.scissor.H))
	}
	return drainGLErrors()
}

// SetViewport sets the viewport rectangle used when this framebuffer is bound.
func (f *Framebuffer) SetViewport(v Viewport) { f.viewport = v }

// SetScissor sets the scissor rectangle that Use applies; with nil, Use
// leaves the GL scissor box unchanged.
func (f *Framebuffer) SetScissor(v *Viewport) { f.scissor = v }

// SetColorMask sets the per-channel color write mask.
func (f *Framebuffer) SetColorMask(r, g, b, a bool) { f.colorMask = [4]bool{r, g, b, a} }

// SetDepthMask sets the depth write mask.
func (f *Framebuffer) SetDepthMask(write bool) { f.depthMask = write }

// Clear clears the bound buffers using the framebuffer's current masks.
func (f *Framebuffer) Clear(ctx *Context, r, g, b, a float32, depth float64, clearDepth bool) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.name)
	gl.ColorMask(f.colorMask[0], f.colorMask[1], f.colorMask[2], f.colorMask[3])
	gl.DepthMask(f.depthMask)
	mask := uint32(gl.COLOR_BUFFER_BIT)
	gl.ClearColor(r, g, b, a)
	if clearDepth {
		mask |= gl.DEPTH_BUFFER_BIT
		gl.ClearDepth(depth)
	}
	gl.Clear(mask)
	return drainGLErrors()
}

// Read reads back pixels from color attachment index 0 in the given
// rectangle, using dtype's GL type and the given number of components.
func (f *Framebuffer) Read(components int, dtype string, x, y, w, h int) ([]byte, error) {
	dt, err := LookupDType(dtype)
	if err != nil {
		return nil, err
	}
	baseFormat := dt.BaseFormat[components]
	buf := make([]byte, w*h*components*dt.ElementSize)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, f.name)
	gl.ReadPixels(int32(x), int32(y), int32(w), int32(h), baseFormat, dt.GLType, gl.Ptr(&buf[0]))
	if err := drainGLErrors(); err != nil {
		return nil, err
	}
	return buf, nil
}
