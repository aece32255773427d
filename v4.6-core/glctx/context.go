//go:build !tinygo && cgo

package glctx

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// EnableFlag is a bitmask over the five recognized GL capability flags.
type EnableFlag uint32

const (
	FlagBlend              EnableFlag = 1
	FlagDepthTest          EnableFlag = 2
	FlagCullFace           EnableFlag = 4
	FlagRasterizerDiscard  EnableFlag = 8
	FlagProgramPointSize   EnableFlag = 16
	flagAll                           = FlagBlend | FlagDepthTest | FlagCullFace | FlagRasterizerDiscard | FlagProgramPointSize
)

func (f EnableFlag) glEnum() uint32 {
	switch f {
	case FlagBlend:
		return gl.BLEND
	case FlagDepthTest:
		return gl.DEPTH_TEST
	case FlagCullFace:
		return gl.CULL_FACE
	case FlagRasterizerDiscard:
		return gl.RASTERIZER_DISCARD
	case FlagProgramPointSize:
		return gl.PROGRAM_POINT_SIZE
	default:
		return 0
	}
}

// Caps records the capability/limit query performed at construction.
type Caps struct {
	MaxSamples               int
	MaxIntegerSamples         int
	MaxColorAttachments       int
	MaxTextureImageUnits      int
	MaxCombinedTextureUnits   int
	MaxUniformBufferBindings  int
	MaxShaderStorageBindings  int
	MaxAnisotropy             float32
	MaxComputeWorkGroupCount  [3]int
	MaxComputeWorkGroupSize   [3]int
	MaxComputeWorkGroupInvoc  int
}

// Resource is implemented by every GPU object a Context can own.
type Resource interface {
	glo() uint32
	release(ctx *Context)
}

// Config configures [NewContext]. Exactly one of Standalone's window
// settings or an externally-current context (adopted, Standalone=false)
// is used; the loader resolution step happens via
// gl.Init/gl.InitWithProcAddrFunc regardless of path.
type Config struct {
	// Standalone requests that glctx create and own its own native window
	// and GL context via GLFW. When false, the caller must have already
	// made a GL context current on this OS thread (adoption path).
	Standalone bool
	Window     WindowConfig
	// GLVersion is the three-digit requested version (e.g. 330, 460). Zero
	// defaults to the window config's version or the adopted context's
	// reported version.
	GLVersion int
	// GetProcAddress, when set, is used instead of the platform default
	// loader — the hook point for callers supplying their own GL loader.
	GetProcAddress func(name string) unsafe.Pointer
	Logger         *slog.Logger
}

// Context owns one native OpenGL context: the live-object list, the
// current-state shadow, and the screen framebuffer/default scope. All
// resource factories hang off Context.
type Context struct {
	window    *Window
	terminate func()
	log       *slog.Logger

	versionCode int
	extensions  map[string]struct{}
	caps        Caps

	screen       *Framebuffer
	defaultScope *Scope

	enableFlags       EnableFlag
	frontFaceCCW      bool
	cullFaceBack      bool
	depthFunc         uint32
	blendSrc, blendDst uint32
	blendEquation     uint32
	wireframe         bool
	multisample       bool
	provokingVertex   uint32
	polygonOffsetFactor, polygonOffsetUnits float32
	boundFramebuffer  uint32
	boundFramebufferObj *Framebuffer
	defaultTexUnit    int

	live []Resource
}

// NewContext bootstraps or adopts a context, resolves the GL function
// pointers, primes blend/seamless-cubemap/primitive-restart state, queries
// caps and extensions, and builds the screen framebuffer + default scope.
func NewContext(cfg Config) (*Context, error) {
	ctx := &Context{log: cfg.Logger}
	if ctx.log == nil {
		ctx.log = slog.Default()
	}

	if cfg.Standalone {
		win, terminate, err := newStandaloneWindow(cfg.Window)
		if err != nil {
			return nil, err
		}
		ctx.window = win
		ctx.terminate = terminate
	}

	var initErr error
	if cfg.GetProcAddress != nil {
		initErr = gl.InitWithProcAddrFunc(cfg.GetProcAddress)
	} else {
		initErr = gl.Init()
	}
	if initErr != nil {
		if ctx.terminate != nil {
			ctx.terminate()
		}
		return nil, newErrorf(KindObjectCreationFailed, "gl.Init: %v", initErr)
	}
	clearGLErrors()

	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	ctx.blendSrc, ctx.blendDst = gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	gl.Enable(gl.PRIMITIVE_RESTART)
	gl.PrimitiveRestartIndex(^uint32(0))

	ctx.versionCode = queryVersionCode(cfg.GLVersion)
	ctx.extensions = queryExtensions()
	ctx.caps = queryCaps(ctx.versionCode, ctx.extensions)

	ctx.screen = newScreenFramebuffer()
	ctx.boundFramebufferObj = ctx.screen
	ctx.live = append(ctx.live, ctx.screen)

	ctx.defaultScope = &Scope{ctx: ctx, framebuffer: ctx.screen}
	ctx.live = append(ctx.live, ctx.defaultScope)

	return ctx, drainGLErrorsNonFatal()
}

// drainGLErrorsNonFatal clears the queue after construction so a driver
// warning during setup (e.g. an optional extension probe) does not fail
// NewContext outright; callers can still sample [Context.Error] later.
func drainGLErrorsNonFatal() error {
	clearGLErrors()
	return nil
}

func queryVersionCode(requested int) int {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major == 0 {
		// Parsing fallback: "4.6.0 NVIDIA ..." or "4.6 (Core Profile) Mesa ...".
		v := gl.GoStr(gl.GetString(gl.VERSION))
		fields := strings.Fields(v)
		if len(fields) > 0 {
			parts := strings.SplitN(fields[0], ".", 3)
			if len(parts) >= 2 {
				maj, _ := strconv.Atoi(parts[0])
				min, _ := strconv.Atoi(parts[1])
				major, minor = int32(maj), int32(min)
			}
		}
	}
	if major == 0 && requested != 0 {
		return requested
	}
	return int(major)*100 + int(minor)*10
}

func queryExtensions() map[string]struct{} {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	exts := make(map[string]struct{}, n)
	for i := int32(0); i < n; i++ {
		name := gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i)))
		exts[name] = struct{}{}
	}
	return exts
}

func getInt(pname uint32) int {
	var v int32
	gl.GetIntegerv(pname, &v)
	return int(v)
}

func queryCaps(versionCode int, exts map[string]struct{}) Caps {
	var c Caps
	c.MaxSamples = getInt(gl.MAX_SAMPLES)
	c.MaxIntegerSamples = getInt(gl.MAX_INTEGER_SAMPLES)
	c.MaxColorAttachments = getInt(gl.MAX_COLOR_ATTACHMENTS)
	c.MaxTextureImageUnits = getInt(gl.MAX_TEXTURE_IMAGE_UNITS)
	c.MaxCombinedTextureUnits = getInt(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	c.MaxUniformBufferBindings = getInt(gl.MAX_UNIFORM_BUFFER_BINDINGS)
	c.MaxShaderStorageBindings = getInt(gl.MAX_SHADER_STORAGE_BUFFER_BINDINGS)

	// Anisotropy limit: version-gated ("≥460").
	_, hasAnisoExt := exts["GL_EXT_texture_filter_anisotropic"]
	if versionCode >= 460 || hasAnisoExt {
		var aniso float32
		gl.GetFloatv(gl.MAX_TEXTURE_MAX_ANISOTROPY, &aniso)
		c.MaxAnisotropy = aniso
	} else {
		c.MaxAnisotropy = 1
	}

	if versionCode >= 430 {
		for i := int32(0); i < 3; i++ {
			var cnt, sz int32
			gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, uint32(i), &cnt)
			gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_SIZE, uint32(i), &sz)
			c.MaxComputeWorkGroupCount[i] = int(cnt)
			c.MaxComputeWorkGroupSize[i] = int(sz)
		}
		c.MaxComputeWorkGroupInvoc = getInt(gl.MAX_COMPUTE_WORK_GROUP_INVOCATIONS)
	}
	return c
}

func newScreenFramebuffer() *Framebuffer {
	var box [4]int32
	gl.GetIntegerv(gl.SCISSOR_BOX, &box[0])
	return &Framebuffer{
		name:   0,
		width:  int(box[2]),
		height: int(box[3]),
		viewport: Viewport{W: int(box[2]), H: int(box[3])},
		isScreen: true,
	}
}

// VersionCode returns the integer version code major*100+minor*10.
func (c *Context) VersionCode() int { return c.versionCode }

// Extensions returns the set of extension names the driver reported.
func (c *Context) Extensions() []string {
	out := make([]string, 0, len(c.extensions))
	for name := range c.extensions {
		out = append(out, name)
	}
	return out
}

// HasExtension reports whether name was reported by the driver.
func (c *Context) HasExtension(name string) bool {
	_, ok := c.extensions[name]
	return ok
}

// Limits returns the queried capability set.
func (c *Context) Limits() Caps { return c.caps }

// Info returns {vendor, renderer, version}.
func (c *Context) Info() (vendor, renderer, version string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION))
}

// Error samples the most recent driver error,.
func (c *Context) Error() error { return drainGLErrors() }

// Screen returns the default framebuffer (name 0).
func (c *Context) Screen() *Framebuffer { return c.screen }

// Window returns the GLFW window backing a standalone context, or nil if
// this context adopted an externally-current context instead.
func (c *Context) Window() *Window { return c.window }

// DefaultScope returns the scope pointing at the screen framebuffer.
func (c *Context) DefaultScope() *Scope { return c.defaultScope }

// Finish forces a full pipeline flush (glFinish), blocking the caller.
func (c *Context) Finish() { gl.Finish() }

// EnableDebugOutput routes GL_DEBUG_OUTPUT messages to the context's
// logger (or an explicit one, if given), mapping DEBUG_TYPE_ERROR to
// Error, DEBUG_TYPE_UNDEFINED_BEHAVIOR to Warn, and everything else to Info.
func (c *Context) EnableDebugOutput(log *slog.Logger) {
	if log == nil {
		log = c.log
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		attrs := []slog.Attr{
			slog.Uint64("source", uint64(source)),
			slog.Uint64("gltype", uint64(gltype)),
			slog.Uint64("severity", uint64(severity)),
			slog.Uint64("id", uint64(id)),
		}
		var level slog.Level
		switch gltype {
		case gl.DEBUG_TYPE_ERROR:
			level = slog.LevelError
		case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
			level = slog.LevelWarn
		default:
			level = slog.LevelInfo
		}
		log.LogAttrs(context.Background(), level, message, attrs...)
	}, nil)
}

// Enable turns on exactly the recognized flags set in flags, leaving
// others untouched. Use [Context.EnableOnly] to drive the whole set.
func (c *Context) Enable(flags EnableFlag) {
	for _, f := range []EnableFlag{FlagBlend, FlagDepthTest, FlagCullFace, FlagRasterizerDiscard, FlagProgramPointSize} {
		if flags&f != 0 {
			gl.Enable(f.glEnum())
			c.enableFlags |= f
		}
	}
}

// Disable turns off exactly the recognized flags set in flags.
func (c *Context) Disable(flags EnableFlag) {
	for _, f := range []EnableFlag{FlagBlend, FlagDepthTest, FlagCullFace, FlagRasterizerDiscard, FlagProgramPointSize} {
		if flags&f != 0 {
			gl.Disable(f.glEnum())
			c.enableFlags &^= f
		}
	}
}

// EnableOnly drives Enable/Disable so the live set matches flags exactly:
// never a partial update.
func (c *Context) EnableOnly(flags EnableFlag) {
	for _, f := range []EnableFlag{FlagBlend, FlagDepthTest, FlagCullFace, FlagRasterizerDiscard, FlagProgramPointSize} {
		if flags&f != 0 {
			gl.Enable(f.glEnum())
		} else {
			gl.Disable(f.glEnum())
		}
	}
	c.enableFlags = flags & flagAll
}

// EnabledFlags returns the shadow copy of the currently enabled flag set.
func (c *Context) EnabledFlags() EnableFlag { return c.enableFlags }

// CopyBuffer copies size bytes from src[readOff:] into dst[writeOff:] via
// glCopyBufferSubData, binding COPY_READ_BUFFER/COPY_WRITE_BUFFER.
func (c *Context) CopyBuffer(dst, src *Buffer, size, readOff, writeOff int) error {
	if readOff+size > src.size || writeOff+size > dst.size {
		return newError(KindOutOfRange, "copy_buffer range exceeds buffer size")
	}
	gl.BindBuffer(gl.COPY_READ_BUFFER, src.name)
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, dst.name)
	gl.CopyBufferSubData(gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER, readOff, writeOff, size)
	return drainGLErrors()
}

// Objects returns a snapshot of the live owned-object list.
func (c *Context) Objects() []Resource {
	out := make([]Resource, len(c.live))
	copy(out, c.live)
	return out
}

func (c *Context) track(r Resource) {
	c.live = append(c.live, r)
}

// Release unlinks obj from the live list and issues its GL delete call,
// zeroing its name. Idempotent: a second Release on an already-zeroed
// object is a no-op, matching the lifecycle invariant.
func (c *Context) Release(obj Resource) {
	if obj == nil || obj.glo() == 0 {
		return
	}
	obj.release(c)
	for i, r := range c.live {
		if r == obj {
			c.live = append(c.live[:i], c.live[i+1:]...)
			break
		}
	}
}

// Destroy releases every live object and tears down the native window, if
// one was created by this Context (the Standalone path).
func (c *Context) Destroy() {
	live := c.Objects()
	for _, r := range live {
		c.Release(r)
	}
	if c.terminate != nil {
		c.terminate()
	}
}
