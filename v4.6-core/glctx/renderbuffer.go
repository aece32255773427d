//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

// RenderbufferConfig configures [Context.Renderbuffer]/[Context.DepthRenderbuffer].
type RenderbufferConfig struct {
	Width, Height int
	Components    int // ignored for depth renderbuffers
	Samples       int // 0 = non-multisampled
	DType         string
	Depth         bool
}

// Renderbuffer is a non-sampleable framebuffer attachment, immutable
// after creation.
type Renderbuffer struct {
	name       uint32
	width      int
	height     int
	components int
	samples    int
	dtype      *DataType
	depth      bool
}

func (r *Renderbuffer) glo() uint32 { return r.name }

func (r *Renderbuffer) release(ctx *Context) {
	if r.name == 0 {
		return
	}
	gl.DeleteRenderbuffers(1, &r.name)
	r.name = 0
}

func (r *Renderbuffer) Width() int     { return r.width }
func (r *Renderbuffer) Height() int    { return r.height }
func (r *Renderbuffer) Samples() int   { return r.samples }
func (r *Renderbuffer) IsDepth() bool  { return r.depth }
func (r *Renderbuffer) DType() *DataType { return r.dtype }

// Renderbuffer creates a color renderbuffer.
func (c *Context) Renderbuffer(cfg RenderbufferConfig) (*Renderbuffer, error) {
	cfg.Depth = false
	return c.newRenderbuffer(cfg)
}

// DepthRenderbuffer creates a depth renderbuffer.
func (c *Context) DepthRenderbuffer(cfg RenderbufferConfig) (*Renderbuffer, error) {
	cfg.Depth = true
	if cfg.DType == "" {
		cfg.DType = "d3"
	}
	return c.newRenderbuffer(cfg)
}

func (c *Context) newRenderbuffer(cfg RenderbufferConfig) (*Renderbuffer, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, newError(KindInvalidSize, "renderbuffer width/height must be >= 1")
	}
	dtypeCode := cfg.DType
	if dtypeCode == "" {
		dtypeCode = "f1"
	}
	dt, err := LookupDType(dtypeCode)
	if err != nil {
		return nil, err
	}
	if cfg.Depth != dt.IsDepth() {
		return nil, newError(KindInvalidDType, "dtype shape does not match depth flag")
	}
	components := cfg.Components
	if components < 1 || components > 4 {
		components = 1
	}
	if cfg.Samples != 0 && (cfg.Samples&(cfg.Samples-1)) != 0 {
		return nil, newError(KindInvalidArgument, "samples must be a power of two")
	}
	if cfg.Samples > c.caps.MaxSamples {
		return nil, newErrorf(KindInvalidArgument, "samples %d exceeds MaxSamples %d", cfg.Samples, c.caps.MaxSamples)
	}

	var name uint32
	gl.GenRenderbuffers(1, &name)
	if name == 0 {
		return nil, newError(KindObjectCreationFailed, "glGenRenderbuffers returned 0")
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, name)
	internalFormat := dt.InternalFormat[components]
	if dt.IsDepth() {
		internalFormat = dt.InternalFormat[1]
	}
	if cfg.Samples > 0 {
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, int32(cfg.Samples), internalFormat, int32(cfg.Width), int32(cfg.Height))
	} else {
		gl.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, int32(cfg.Width), int32(cfg.Height))
	}
	if err := drainGLErrors(); err != nil {
		gl.DeleteRenderbuffers(1, &name)
		return nil, err
	}

	rb := &Renderbuffer{
		name: name, width: cfg.Width, height: cfg.Height,
		components: components, samples: cfg.Samples, dtype: dt, depth: cfg.Depth,
	}
	c.track(rb)
	return rb, nil
}
