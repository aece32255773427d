//go:build !tinygo && cgo

package glctx

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// TextureKind selects the texture target family, grounded on
// original_source/moderngl/mgl/texture.cpp (2D/3D/multisample dispatch) and
// texture_cube.cpp / texture_array.cpp (cube and array variants).
type TextureKind byte

const (
	Texture2D TextureKind = iota
	Texture2DArray
	Texture3D
	TextureCube
)

// TextureConfig configures [Context.Texture].
type TextureConfig struct {
	Width, Height int
	Depth         int // layers for Texture2DArray, depth for Texture3D; ignored otherwise
	Components    int
	DType         string
	Kind          TextureKind
	Samples       int  // > 0 selects a multisample target (Texture2D only)
	Levels        int  // <0 or 0 selects max mip levels
	Alignment     int  // pixel pack/unpack alignment, default 4
	Data          []byte
	Depthness     bool // texture stores depth/stencil data
}

// Texture is a unified sampleable image object covering 2D, 2D-array, 3D,
// cube, depth and multisample variants.
type Texture struct {
	name       uint32
	target     uint32
	kind       TextureKind
	width      int
	height     int
	depth      int
	components int
	dtype      *DataType
	samples    int
	levels     int
	depthness  bool
	filterMin  int32
	filterMax  int32
	wrap       Wrap
	compareFunc uint32
	swizzle    string
	anisotropy float32
}

func (t *Texture) glo() uint32 { return t.name }

func (t *Texture) release(ctx *Context) {
	if t.name == 0 {
		return
	}
	gl.DeleteTextures(1, &t.name)
	t.name = 0
}

func (t *Texture) Width() int        { return t.width }
func (t *Texture) Height() int       { return t.height }
func (t *Texture) Depth() int        { return t.depth }
func (t *Texture) Components() int   { return t.components }
func (t *Texture) Samples() int      { return t.samples }
func (t *Texture) Levels() int       { return t.levels }
func (t *Texture) DType() *DataType  { return t.dtype }
func (t *Texture) IsDepth() bool     { return t.depthness }

func textureMaxLevels(width, height, depth int) int {
	size := width
	if height > size {
		size = height
	}
	if depth > size {
		size = depth
	}
	levels := 0
	for size > 0 {
		levels++
		size >>= 1
	}
	if levels < 1 {
		levels = 1
	}
	return levels
}

func targetFor(kind TextureKind, samples int) uint32 {
	switch kind {
	case Texture2DArray:
		return gl.TEXTURE_2D_ARRAY
	case Texture3D:
		return gl.TEXTURE_3D
	case TextureCube:
		return gl.TEXTURE_CUBE_MAP
	default:
		if samples > 0 {
			return gl.TEXTURE_2D_MULTISAMPLE
		}
		return gl.TEXTURE_2D
	}
}

// Texture creates a sampleable image per cfg.Kind.
func (c *Context) Texture(cfg TextureConfig) (*Texture, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, newError(KindInvalidSize, "texture width/height must be >= 1")
	}
	depth := cfg.Depth
	if cfg.Kind == Texture2DArray || cfg.Kind == Texture3D {
		if depth < 1 {
			depth = 1
		}
	} else {
		depth = 1
	}
	components := cfg.Components
	if components < 1 || components > 4 {
		components = 1
	}
	dtypeCode := cfg.DType
	if dtypeCode == "" {
		dtypeCode = "f1"
	}
	dt, err := LookupDType(dtypeCode)
	if err != nil {
		return nil, err
	}
	if cfg.Depthness && !dt.IsDepth() {
		return nil, newError(KindInvalidDType, "depth texture requires a depth dtype")
	}
	if cfg.Samples > 0 && cfg.Kind != Texture2D {
		return nil, newError(KindInvalidArgument, "multisample textures only support Texture2D kind")
	}
	if cfg.Samples != 0 && (cfg.Samples&(cfg.Samples-1)) != 0 {
		return nil, newError(KindInvalidArgument, "samples must be a power of two")
	}
	if cfg.Samples > c.caps.MaxSamples {
		return nil, newErrorf(KindInvalidArgument, "samples %d exceeds MaxSamples %d", cfg.Samples, c.caps.MaxSamples)
	}

	levels := cfg.Levels
	maxLevels := textureMaxLevels(cfg.Width, cfg.Height, depth)
	if levels < 1 || levels > maxLevels {
		levels = maxLevels
	}
	if cfg.Samples > 0 {
		levels = 1
	}

	alignment := cfg.Alignment
	if alignment == 0 {
		alignment = 4
	}

	target := targetFor(cfg.Kind, cfg.Samples)

	var name uint32
	gl.GenTextures(1, &name)
	if name == 0 {
		return nil, newError(KindObjectCreationFailed, "glGenTextures returned 0")
	}
	gl.BindTexture(target, name)
	gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	baseFormat := dt.BaseFormat[components]
	if dt.IsDepth() {
		baseFormat = dt.BaseFormat[1]
	}
	internalFormat := dt.InternalFormat[components]
	if dt.IsDepth() {
		internalFormat = dt.InternalFormat[1]
	}
	pixelType := dt.GLType

	gl.PixelStorei(gl.PACK_ALIGNMENT, int32(alignment))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, int32(alignment))

	var dataPtr unsafe.Pointer
	if len(cfg.Data) > 0 {
		dataPtr = unsafe.Pointer(&cfg.Data[0])
	}

	switch {
	case cfg.Kind == TextureCube:
		for face := uint32(0); face < 6; face++ {
			faceTarget := gl.TEXTURE_CUBE_MAP_POSITIVE_X + face
			gl.TexImage2D(faceTarget, 0, int32(internalFormat), int32(cfg.Width), int32(cfg.Height), 0, baseFormat, pixelType, dataPtr)
		}
	case cfg.Kind == Texture2DArray || cfg.Kind == Texture3D:
		if gl.TexStorage3D != nil {
			gl.TexStorage3D(target, int32(levels), internalFormat, int32(cfg.Width), int32(cfg.Height), int32(depth))
			if dataPtr != nil {
				gl.TexSubImage3D(target, 0, 0, 0, 0, int32(cfg.Width), int32(cfg.Height), int32(depth), baseFormat, pixelType, dataPtr)
			}
		} else {
			gl.TexImage3D(target, 0, int32(internalFormat), int32(cfg.Width), int32(cfg.Height), int32(depth), 0, baseFormat, pixelType, dataPtr)
		}
	case cfg.Samples > 0:
		gl.TexImage2DMultisample(target, int32(cfg.Samples), internalFormat, int32(cfg.Width), int32(cfg.Height), true)
	default:
		if gl.TexStorage2D != nil {
			gl.TexStorage2D(target, int32(levels), internalFormat, int32(cfg.Width), int32(cfg.Height))
			if dataPtr != nil {
				gl.TexSubImage2D(target, 0, 0, 0, int32(cfg.Width), int32(cfg.Height), baseFormat, pixelType, dataPtr)
			}
		} else {
			gl.TexImage2D(target, 0, int32(internalFormat), int32(cfg.Width), int32(cfg.Height), 0, baseFormat, pixelType, dataPtr)
		}
	}

	if err := drainGLErrors(); err != nil {
		gl.DeleteTextures(1, &name)
		return nil, err
	}

	t := &Texture{
		name: name, target: target, kind: cfg.Kind,
		width: cfg.Width, height: cfg.Height, depth: depth,
		components: components, dtype: dt, samples: cfg.Samples,
		levels: levels, depthness: cfg.Depthness,
		filterMin: gl.LINEAR, filterMax: gl.LINEAR,
	}
	c.track(t)
	return t, nil
}

// Use binds the texture to a texture unit.
func (t *Texture) Use(unit uint32) error {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.target, t.name)
	return drainGLErrors()
}

// Write uploads pixel data to a sub-region. viewport is [x, y, z, w, h, d];
// trailing dims ignored for 2D targets.
func (t *Texture) Write(data []byte, x, y, z, w, h, d int) error {
	if len(data) == 0 {
		return newError(KindInvalidArgument, "write requires non-empty data")
	}
	gl.BindTexture(t.target, t.name)
	baseFormat := t.dtype.BaseFormat[t.components]
	if t.dtype.IsDepth() {
		baseFormat = t.dtype.BaseFormat[1]
	}
	ptr := unsafe.Pointer(&data[0])
	switch t.kind {
	case Texture2DArray, Texture3D:
		gl.TexSubImage3D(t.target, 0, int32(x), int32(y), int32(z), int32(w), int32(h), int32(d), baseFormat, t.dtype.GLType, ptr)
	default:
		gl.TexSubImage2D(t.target, 0, int32(x), int32(y), int32(w), int32(h), baseFormat, t.dtype.GLType, ptr)
	}
	return drainGLErrors()
}

// Read reads the full image back from the GPU (level 0).
func (t *Texture) Read() ([]byte, error) {
	baseFormat := t.dtype.BaseFormat[t.components]
	if t.dtype.IsDepth() {
		baseFormat = t.dtype.BaseFormat[1]
	}
	size := t.width * t.height * t.depth * t.components * t.dtype.ElementSize
	buf := make([]byte, size)
	gl.BindTexture(t.target, t.name)
	gl.GetTexImage(t.target, 0, baseFormat, t.dtype.GLType, unsafe.Pointer(&buf[0]))
	if err := drainGLErrors(); err != nil {
		return nil, err
	}
	return buf, nil
}

// BuildMipmaps generates the full mipmap chain.
func (t *Texture) BuildMipmaps() error {
	gl.BindTexture(t.target, t.name)
	gl.GenerateMipmap(t.target)
	return drainGLErrors()
}

// SetFilter sets the (min, mag) filter pair.
func (t *Texture) SetFilter(f Filter) error {
	gl.BindTexture(t.target, t.name)
	min := zeroDefault(f.Min, gl.LINEAR)
	mag := zeroDefault(f.Mag, gl.LINEAR)
	gl.TexParameteri(t.target, gl.TEXTURE_MIN_FILTER, min)
	gl.TexParameteri(t.target, gl.TEXTURE_MAG_FILTER, mag)
	t.filterMin, t.filterMax = min, mag
	return drainGLErrors()
}

// SetWrap sets the per-axis wrap mode.
func (t *Texture) SetWrap(w Wrap) error {
	gl.BindTexture(t.target, t.name)
	gl.TexParameteri(t.target, gl.TEXTURE_WRAP_S, int32(wrapGLEnum(w.S())))
	gl.TexParameteri(t.target, gl.TEXTURE_WRAP_T, int32(wrapGLEnum(w.T())))
	if t.kind == Texture3D {
		gl.TexParameteri(t.target, gl.TEXTURE_WRAP_R, int32(wrapGLEnum(w.R())))
	}
	t.wrap = w
	return drainGLErrors()
}

// SetCompareFunc enables depth-comparison sampling (depth textures only);
// 0 disables it.
func (t *Texture) SetCompareFunc(fn uint32) error {
	gl.BindTexture(t.target, t.name)
	if fn != 0 {
		gl.TexParameteri(t.target, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		gl.TexParameteri(t.target, gl.TEXTURE_COMPARE_FUNC, int32(fn))
	} else {
		gl.TexParameteri(t.target, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	}
	t.compareFunc = fn
	return drainGLErrors()
}

// SetSwizzle sets a 1-4 character swizzle mask drawn from 'RGBA01'.
func (t *Texture) SetSwizzle(mask string) error {
	if len(mask) == 0 || len(mask) > 4 {
		return newError(KindInvalidArgument, "swizzle mask must be 1-4 characters")
	}
	components := [4]int32{gl.RED, gl.GREEN, gl.BLUE, gl.ALPHA}
	var values [4]int32
	for i := 0; i < 4; i++ {
		if i < len(mask) {
			values[i] = swizzleComponent(mask[i])
		} else {
			values[i] = components[i%4]
		}
	}
	gl.BindTexture(t.target, t.name)
	gl.TexParameteriv(t.target, gl.TEXTURE_SWIZZLE_RGBA, &values[0])
	t.swizzle = mask
	return drainGLErrors()
}

func swizzleComponent(c byte) int32 {
	switch c {
	case 'R', 'r':
		return gl.RED
	case 'G', 'g':
		return gl.GREEN
	case 'B', 'b':
		return gl.BLUE
	case 'A', 'a':
		return gl.ALPHA
	case '0':
		return gl.ZERO
	case '1':
		return gl.ONE
	default:
		return gl.RED
	}
}

// BindImage binds the texture as an image unit for compute shaders.
func (t *Texture) BindImage(unit uint32, level int32, layered bool, layer int32, access uint32) error {
	internalFormat := t.dtype.InternalFormat[t.components]
	if t.dtype.IsDepth() {
		internalFormat = t.dtype.InternalFormat[1]
	}
	gl.BindImageTexture(unit, t.name, level, layered, layer, access, internalFormat)
	return drainGLErrors()
}
