//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

// glTypeInfo decodes a GL uniform/attribute type enum into {cols, rows,
// shape}, grounded on original_source/moderngl/tools.hpp's uniform-setter
// switch. Shape 0 means "not a plain value" (uniform block); this package
// never produces that case from
// glTypeInfo itself — block membership is detected separately.
type glTypeInfo struct {
	Cols, Rows int
	Shape      byte // 'f','d','i','u','p' (bool)
}

var glTypeTable = map[uint32]glTypeInfo{
	gl.FLOAT:      {1, 1, 'f'},
	gl.FLOAT_VEC2: {2, 1, 'f'},
	gl.FLOAT_VEC3: {3, 1, 'f'},
	gl.FLOAT_VEC4: {4, 1, 'f'},

	gl.DOUBLE:      {1, 1, 'd'},
	gl.DOUBLE_VEC2: {2, 1, 'd'},
	gl.DOUBLE_VEC3: {3, 1, 'd'},
	gl.DOUBLE_VEC4: {4, 1, 'd'},

	gl.INT:      {1, 1, 'i'},
	gl.INT_VEC2: {2, 1, 'i'},
	gl.INT_VEC3: {3, 1, 'i'},
	gl.INT_VEC4: {4, 1, 'i'},

	gl.UNSIGNED_INT:      {1, 1, 'u'},
	gl.UNSIGNED_INT_VEC2: {2, 1, 'u'},
	gl.UNSIGNED_INT_VEC3: {3, 1, 'u'},
	gl.UNSIGNED_INT_VEC4: {4, 1, 'u'},

	gl.BOOL:      {1, 1, 'p'},
	gl.BOOL_VEC2: {2, 1, 'p'},
	gl.BOOL_VEC3: {3, 1, 'p'},
	gl.BOOL_VEC4: {4, 1, 'p'},

	gl.FLOAT_MAT2:   {2, 2, 'f'},
	gl.FLOAT_MAT3:   {3, 3, 'f'},
	gl.FLOAT_MAT4:   {4, 4, 'f'},
	gl.FLOAT_MAT2x3: {2, 3, 'f'},
	gl.FLOAT_MAT2x4: {2, 4, 'f'},
	gl.FLOAT_MAT3x2: {3, 2, 'f'},
	gl.FLOAT_MAT3x4: {3, 4, 'f'},
	gl.FLOAT_MAT4x2: {4, 2, 'f'},
	gl.FLOAT_MAT4x3: {4, 3, 'f'},

	gl.DOUBLE_MAT2:   {2, 2, 'd'},
	gl.DOUBLE_MAT3:   {3, 3, 'd'},
	gl.DOUBLE_MAT4:   {4, 4, 'd'},
	gl.DOUBLE_MAT2x3: {2, 3, 'd'},
	gl.DOUBLE_MAT2x4: {2, 4, 'd'},
	gl.DOUBLE_MAT3x2: {3, 2, 'd'},
	gl.DOUBLE_MAT3x4: {3, 4, 'd'},
	gl.DOUBLE_MAT4x2: {4, 2, 'd'},
	gl.DOUBLE_MAT4x3: {4, 3, 'd'},

	// Samplers and images are plain int bindings: shape 'i', 1x1.
	gl.SAMPLER_1D:                          {1, 1, 'i'},
	gl.SAMPLER_2D:                          {1, 1, 'i'},
	gl.SAMPLER_3D:                          {1, 1, 'i'},
	gl.SAMPLER_CUBE:                        {1, 1, 'i'},
	gl.SAMPLER_2D_ARRAY:                    {1, 1, 'i'},
	gl.SAMPLER_2D_SHADOW:                   {1, 1, 'i'},
	gl.SAMPLER_2D_MULTISAMPLE:              {1, 1, 'i'},
	gl.SAMPLER_2D_MULTISAMPLE_ARRAY:        {1, 1, 'i'},
	gl.SAMPLER_CUBE_SHADOW:                 {1, 1, 'i'},
	gl.SAMPLER_CUBE_MAP_ARRAY:              {1, 1, 'i'},
	gl.SAMPLER_CUBE_MAP_ARRAY_SHADOW:       {1, 1, 'i'},
	gl.INT_SAMPLER_2D:                      {1, 1, 'i'},
	gl.INT_SAMPLER_3D:                      {1, 1, 'i'},
	gl.INT_SAMPLER_CUBE:                    {1, 1, 'i'},
	gl.INT_SAMPLER_2D_ARRAY:                {1, 1, 'i'},
	gl.UNSIGNED_INT_SAMPLER_2D:             {1, 1, 'i'},
	gl.UNSIGNED_INT_SAMPLER_3D:             {1, 1, 'i'},
	gl.UNSIGNED_INT_SAMPLER_CUBE:           {1, 1, 'i'},
	gl.UNSIGNED_INT_SAMPLER_2D_ARRAY:       {1, 1, 'i'},

	gl.IMAGE_1D:                            {1, 1, 'i'},
	gl.IMAGE_2D:                            {1, 1, 'i'},
	gl.IMAGE_3D:                            {1, 1, 'i'},
	gl.IMAGE_2D_RECT:                       {1, 1, 'i'},
	gl.IMAGE_CUBE:                          {1, 1, 'i'},
	gl.IMAGE_BUFFER:                        {1, 1, 'i'},
	gl.IMAGE_1D_ARRAY:                      {1, 1, 'i'},
	gl.IMAGE_2D_ARRAY:                      {1, 1, 'i'},
	gl.IMAGE_CUBE_MAP_ARRAY:                {1, 1, 'i'},
	gl.IMAGE_2D_MULTISAMPLE:                {1, 1, 'i'},
	gl.IMAGE_2D_MULTISAMPLE_ARRAY:          {1, 1, 'i'},
	gl.INT_IMAGE_1D:                        {1, 1, 'i'},
	gl.INT_IMAGE_2D:                        {1, 1, 'i'},
	gl.INT_IMAGE_3D:                        {1, 1, 'i'},
	gl.INT_IMAGE_2D_RECT:                   {1, 1, 'i'},
	gl.INT_IMAGE_CUBE:                      {1, 1, 'i'},
	gl.INT_IMAGE_BUFFER:                    {1, 1, 'i'},
	gl.INT_IMAGE_1D_ARRAY:                  {1, 1, 'i'},
	gl.INT_IMAGE_2D_ARRAY:                  {1, 1, 'i'},
	gl.INT_IMAGE_CUBE_MAP_ARRAY:            {1, 1, 'i'},
	gl.INT_IMAGE_2D_MULTISAMPLE:            {1, 1, 'i'},
	gl.INT_IMAGE_2D_MULTISAMPLE_ARRAY:      {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_1D:               {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_2D:               {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_3D:               {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_2D_RECT:          {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_CUBE:             {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_BUFFER:           {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_1D_ARRAY:         {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_2D_ARRAY:         {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_CUBE_MAP_ARRAY:   {1, 1, 'i'},
	gl.UNSIGNED_INT_IMAGE_2D_MULTISAMPLE:   {1, 1, 'i'},
}

func decodeGLType(t uint32) (glTypeInfo, bool) {
	info, ok := glTypeTable[t]
	return info, ok
}

// isAttribIntegerFamily reports whether an attribute of the given shape is bound via
// VertexAttribIPointer (integer scalar/vec).
func isAttribIntegerFamily(shape byte) bool { return shape == 'i' || shape == 'u' }

// isAttribDoubleFamily reports whether an attribute of the given shape is bound via
// VertexAttribLPointer.
func isAttribDoubleFamily(shape byte) bool { return shape == 'd' }
