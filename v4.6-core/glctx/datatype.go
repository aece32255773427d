//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

// DataType is a frozen record describing a pixel/texel element type and
// width. Index 0 of BaseFormat/InternalFormat is unused — components are
// 1-based, matching the C reference this table is grounded on
// (original_source/moderngl/data_types.hpp).
type DataType struct {
	Code           string
	BaseFormat     [5]uint32
	InternalFormat [5]uint32
	GLType         uint32
	// Shape classifies how values of this dtype are read/written:
	// 'f' float, 'u' unsigned int, 'i' signed int, 'd' depth.
	Shape       byte
	ElementSize int
}

var dataTypes = map[string]*DataType{
	"f1": {
		Code:           "f1",
		BaseFormat:     [5]uint32{0, gl.RED, gl.RG, gl.RGB, gl.RGBA},
		InternalFormat: [5]uint32{0, gl.R8, gl.RG8, gl.RGB8, gl.RGBA8},
		GLType:         gl.UNSIGNED_BYTE,
		Shape:          'f',
		ElementSize:    1,
	},
	"f2": {
		Code:           "f2",
		BaseFormat:     [5]uint32{0, gl.RED, gl.RG, gl.RGB, gl.RGBA},
		InternalFormat: [5]uint32{0, gl.R16F, gl.RG16F, gl.RGB16F, gl.RGBA16F},
		GLType:         gl.HALF_FLOAT,
		Shape:          'f',
		ElementSize:    2,
	},
	"f4": {
		Code:           "f4",
		BaseFormat:     [5]uint32{0, gl.RED, gl.RG, gl.RGB, gl.RGBA},
		InternalFormat: [5]uint32{0, gl.R32F, gl.RG32F, gl.RGB32F, gl.RGBA32F},
		GLType:         gl.FLOAT,
		Shape:          'f',
		ElementSize:    4,
	},
	"u1": {
		Code:           "u1",
		BaseFormat:     [5]uint32{0, gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER},
		InternalFormat: [5]uint32{0, gl.R8UI, gl.RG8UI, gl.RGB8UI, gl.RGBA8UI},
		GLType:         gl.UNSIGNED_BYTE,
		Shape:          'u',
		ElementSize:    1,
	},
	"u2": {
		Code:           "u2",
		BaseFormat:     [5]uint32{0, gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER},
		InternalFormat: [5]uint32{0, gl.R16UI, gl.RG16UI, gl.RGB16UI, gl.RGBA16UI},
		GLType:         gl.UNSIGNED_SHORT,
		Shape:          'u',
		ElementSize:    2,
	},
	"u4": {
		Code:           "u4",
		BaseFormat:     [5]uint32{0, gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER},
		InternalFormat: [5]uint32{0, gl.R32UI, gl.RG32UI, gl.RGB32UI, gl.RGBA32UI},
		GLType:         gl.UNSIGNED_INT,
		Shape:          'u',
		ElementSize:    4,
	},
	"i1": {
		Code:           "i1",
		BaseFormat:     [5]uint32{0, gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER},
		InternalFormat: [5]uint32{0, gl.R8I, gl.RG8I, gl.RGB8I, gl.RGBA8I},
		GLType:         gl.BYTE,
		Shape:          'i',
		ElementSize:    1,
	},
	"i2": {
		Code:           "i2",
		BaseFormat:     [5]uint32{0, gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER},
		InternalFormat: [5]uint32{0, gl.R16I, gl.RG16I, gl.RGB16I, gl.RGBA16I},
		GLType:         gl.SHORT,
		Shape:          'i',
		ElementSize:    2,
	},
	"i4": {
		Code:           "i4",
		BaseFormat:     [5]uint32{0, gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER},
		InternalFormat: [5]uint32{0, gl.R32I, gl.RG32I, gl.RGB32I, gl.RGBA32I},
		GLType:         gl.INT,
		Shape:          'i',
		ElementSize:    4,
	},
	"d2": {
		Code:           "d2",
		BaseFormat:     [5]uint32{0, gl.DEPTH_COMPONENT, 0, 0, 0},
		InternalFormat: [5]uint32{0, gl.DEPTH_COMPONENT16, 0, 0, 0},
		GLType:         gl.HALF_FLOAT,
		Shape:          'd',
		ElementSize:    2,
	},
	"d3": {
		Code:           "d3",
		BaseFormat:     [5]uint32{0, gl.DEPTH_COMPONENT, 0, 0, 0},
		InternalFormat: [5]uint32{0, gl.DEPTH_COMPONENT24, 0, 0, 0},
		GLType:         gl.FLOAT,
		Shape:          'd',
		ElementSize:    4,
	},
	"d4": {
		Code:           "d4",
		BaseFormat:     [5]uint32{0, gl.DEPTH_COMPONENT, 0, 0, 0},
		InternalFormat: [5]uint32{0, gl.DEPTH_COMPONENT32, 0, 0, 0},
		GLType:         gl.FLOAT,
		Shape:          'd',
		ElementSize:    4,
	},
}

// LookupDType resolves a two-character dtype code (e.g. "f4", "u2", "d3")
// into its frozen record. An unrecognized code fails with [KindInvalidDType].
func LookupDType(code string) (*DataType, error) {
	dt, ok := dataTypes[code]
	if !ok {
		return nil, newErrorf(KindInvalidDType, "unknown dtype code %q", code)
	}
	return dt, nil
}

// IsDepth reports whether dt represents a depth format.
func (dt *DataType) IsDepth() bool { return dt.Shape == 'd' }
