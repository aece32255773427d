//go:build !tinygo && cgo

package glctx

import (
	"strconv"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferUsage is the static/dynamic hint given at buffer creation.
type BufferUsage int

const (
	UsageStatic BufferUsage = iota
	UsageDynamic
)

// StorageFlag controls the optional persistent-storage allocation path
// (glBufferStorage).
type StorageFlag uint32

const (
	StorageReadable    StorageFlag = 1 << iota // GL_MAP_READ_BIT
	StorageWritable                            // GL_MAP_WRITE_BIT
	StorageClientLocal                         // GL_CLIENT_STORAGE_BIT
)

// BufferConfig configures [Context.Buffer]. Data and Reserve are mutually
// exclusive; Reserve may be given as a byte count or a suffixed string
// ("16KB", "1MB") reserve-string grammar.
type BufferConfig struct {
	Data     []byte
	Reserve  any // int or string, e.g. 1024 or "16KB"
	Readable bool
	Writable bool
	Local    bool
	Usage    BufferUsage
}

// Buffer is a linear byte region on the GPU.
type Buffer struct {
	name         uint32
	size         int
	usage        BufferUsage
	storageFlags StorageFlag
	mapped       bool
}

func (b *Buffer) glo() uint32 { return b.name }

func (b *Buffer) release(ctx *Context) {
	if b.name == 0 {
		return
	}
	name := b.name
	gl.DeleteBuffers(1, &name)
	b.name = 0
}

// Size returns the buffer's byte size.
func (b *Buffer) Size() int { return b.size }

// Buffer creates a new linear GPU byte region.
func (c *Context) Buffer(cfg BufferConfig) (*Buffer, error) {
	if cfg.Data != nil && cfg.Reserve != nil {
		return nil, newError(KindInvalidArgument, "data and reserve are mutually exclusive")
	}
	size := len(cfg.Data)
	if cfg.Reserve != nil {
		n, err := parseReserve(cfg.Reserve)
		if err != nil {
			return nil, err
		}
		size = n
	}
	if size < 1 || size > 1<<31-1 {
		return nil, newErrorf(KindInvalidSize, "buffer size %d out of range [1, 2^31-1]", size)
	}

	var flags StorageFlag
	if cfg.Readable {
		flags |= StorageReadable
	}
	if cfg.Writable {
		flags |= StorageWritable
	}
	if cfg.Local {
		flags |= StorageClientLocal
	}

	var name uint32
	gl.GenBuffers(1, &name)
	if name == 0 {
		return nil, newError(KindObjectCreationFailed, "glGenBuffers returned 0")
	}
	buf := &Buffer{name: name, size: size, usage: cfg.Usage, storageFlags: flags}

	gl.BindBuffer(gl.ARRAY_BUFFER, name)
	if c.supportsBufferStorage() {
		var glFlags uint32
		if flags&StorageReadable != 0 {
			glFlags |= gl.MAP_READ_BIT
		}
		if flags&StorageWritable != 0 {
			glFlags |= gl.MAP_WRITE_BIT
		}
		glFlags |= gl.DYNAMIC_STORAGE_BIT
		if flags&StorageClientLocal != 0 {
			glFlags |= gl.CLIENT_STORAGE_BIT
		}
		var ptr unsafe.Pointer
		if cfg.Data != nil {
			ptr = gl.Ptr(cfg.Data)
		}
		gl.BufferStorage(gl.ARRAY_BUFFER, size, ptr, glFlags)
	} else {
		usage := uint32(gl.STATIC_DRAW)
		if cfg.Usage == UsageDynamic {
			usage = gl.DYNAMIC_DRAW
		}
		var ptr unsafe.Pointer
		if cfg.Data != nil {
			ptr = gl.Ptr(cfg.Data)
		}
		gl.BufferData(gl.ARRAY_BUFFER, size, ptr, usage)
	}
	if err := drainGLErrors(); err != nil {
		gl.DeleteBuffers(1, &name)
		return nil, err
	}

	c.track(buf)
	return buf, nil
}

func (c *Context) supportsBufferStorage() bool {
	return c.versionCode >= 440 || c.HasExtension("GL_ARB_buffer_storage")
}

// parseReserve parses an int or a digit+suffix string ("16KB"), grounded
// on original_source/moderngl/converters.cpp's parse_reserve.
func parseReserve(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case string:
		return parseReserveString(x)
	default:
		return 0, newErrorf(KindInvalidArgument, "reserve must be int or string, got %T", v)
	}
}

func parseReserveString(s string) (int, error) {
	if s == "" {
		return 0, newError(KindInvalidArgument, "empty reserve string")
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, newErrorf(KindInvalidArgument, "invalid reserve %q: no leading digits", s)
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, newErrorf(KindInvalidArgument, "invalid reserve %q", s)
	}
	suffix := s[i:]
	mult := 1
	switch suffix {
	case "", "B":
		mult = 1
	case "KB":
		mult = 1024
	case "MB":
		mult = 1024 * 1024
	case "GB":
		mult = 1024 * 1024 * 1024
	default:
		return 0, newErrorf(KindInvalidArgument, "invalid reserve suffix %q", suffix)
	}
	if n < 1 {
		return 0, newErrorf(KindInvalidArgument, "invalid reserve %q: must be >= 1", s)
	}
	return n * mult, nil
}

// Write uploads a contiguous byte slice at offset.
func (b *Buffer) Write(data []byte, offset int) error {
	if offset < 0 || offset+len(data) > b.size {
		return newErrorf(KindOutOfRange, "write [%d,%d) exceeds buffer size %d", offset, offset+len(data), b.size)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.name)
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data), gl.Ptr(data))
	return drainGLErrors()
}

// Read reads size bytes at offset. If into is non-nil, performs a
// GPU-to-GPU glCopyBufferSubData into into[writeOffset:]; otherwise maps
// READ_BIT over the range and returns the bytes.
func (b *Buffer) Read(size, offset int, into *Buffer, writeOffset int) ([]byte, error) {
	if offset < 0 || offset+size > b.size {
		return nil, newErrorf(KindOutOfRange, "read [%d,%d) exceeds buffer size %d", offset, offset+size, b.size)
	}
	if into != nil {
		if writeOffset+size > into.size {
			return nil, newError(KindOutOfRange, "read destination range exceeds buffer size")
		}
		gl.BindBuffer(gl.COPY_READ_BUFFER, b.name)
		gl.BindBuffer(gl.COPY_WRITE_BUFFER, into.name)
		gl.CopyBufferSubData(gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER, offset, writeOffset, size)
		return nil, drainGLErrors()
	}
	if b.mapped {
		return nil, newError(KindMapFailed, "buffer already has an in-flight range map")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.name)
	ptr := gl.MapBufferRange(gl.ARRAY_BUFFER, offset, size, gl.MAP_READ_BIT)
	if ptr == nil {
		if err := drainGLErrors(); err != nil {
			return nil, err
		}
		return nil, newError(KindMapFailed, "MapBufferRange returned nil")
	}
	b.mapped = true
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(ptr), size))
	gl.UnmapBuffer(gl.ARRAY_BUFFER)
	b.mapped = false
	return out, drainGLErrors()
}

// validateChunks implements the strided-access bounds check shared by
// ReadChunks/WriteChunks.
func (b *Buffer) validateChunks(chunkSize, start, step, count int) error {
	if start < 0 {
		return newError(KindOutOfRange, "start must be >= 0")
	}
	if chunkSize > abs(step) {
		return newError(KindOutOfRange, "chunk_size must be <= |step|")
	}
	if start+chunkSize > b.size {
		return newError(KindOutOfRange, "start+chunk_size exceeds buffer size")
	}
	last := start + (count-1)*step + chunkSize
	if last < 0 || last > b.size {
		return newError(KindOutOfRange, "strided range falls outside buffer")
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ReadChunks gathers count chunks of chunkSize bytes, strided by step,
// starting at start, through one MapBufferRange over the whole buffer.
func (b *Buffer) ReadChunks(chunkSize, start, step, count int) ([]byte, error) {
	if err := b.validateChunks(chunkSize, start, step, count); err != nil {
		return nil, err
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.name)
	ptr := gl.MapBufferRange(gl.ARRAY_BUFFER, 0, b.size, gl.MAP_READ_BIT)
	if ptr == nil {
		return nil, newError(KindMapFailed, "MapBufferRange returned nil")
	}
	defer gl.UnmapBuffer(gl.ARRAY_BUFFER)
	whole := unsafe.Slice((*byte)(ptr), b.size)
	out := make([]byte, chunkSize*count)
	for i := 0; i < count; i++ {
		src := whole[start+i*step : start+i*step+chunkSize]
		copy(out[i*chunkSize:], src)
	}
	return out, drainGLErrors()
}

// WriteChunks scatters count chunks of chunkSize bytes from data, strided
// by step, starting at start, through one MapBufferRange over the whole
// buffer.
func (b *Buffer) WriteChunks(data []byte, chunkSize, start, step, count int) error {
	if err := b.validateChunks(chunkSize, start, step, count); err != nil {
		return err
	}
	if len(data) < chunkSize*count {
		return newError(KindInvalidSize, "data shorter than chunkSize*count")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.name)
	ptr := gl.MapBufferRange(gl.ARRAY_BUFFER, 0, b.size, gl.MAP_WRITE_BIT)
	if ptr == nil {
		return newError(KindMapFailed, "MapBufferRange returned nil")
	}
	defer gl.UnmapBuffer(gl.ARRAY_BUFFER)
	whole := unsafe.Slice((*byte)(ptr), b.size)
	for i := 0; i < count; i++ {
		dst := whole[start+i*step : start+i*step+chunkSize]
		copy(dst, data[i*chunkSize:(i+1)*chunkSize])
	}
	return drainGLErrors()
}

// Clear writes zeroes, or a repeating chunk pattern, over [offset,
// offset+size). size % len(chunk) must be zero when chunk is non-empty.
func (b *Buffer) Clear(size, offset int, chunk []byte) error {
	if offset < 0 || offset+size > b.size {
		return newErrorf(KindOutOfRange, "clear [%d,%d) exceeds buffer size %d", offset, offset+size, b.size)
	}
	if len(chunk) > 0 && size%len(chunk) != 0 {
		return newErrorf(KindInvalidSize, "size %d not a multiple of chunk length %d", size, len(chunk))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.name)
	ptr := gl.MapBufferRange(gl.ARRAY_BUFFER, offset, size, gl.MAP_WRITE_BIT)
	if ptr == nil {
		return newError(KindMapFailed, "MapBufferRange returned nil")
	}
	defer gl.UnmapBuffer(gl.ARRAY_BUFFER)
	dst := unsafe.Slice((*byte)(ptr), size)
	if len(chunk) == 0 {
		for i := range dst {
			dst[i] = 0
		}
	} else {
		for i := 0; i < size; i += len(chunk) {
			copy(dst[i:i+len(chunk)], chunk)
		}
	}
	return drainGLErrors()
}

// Orphan invalidates the buffer's contents by reallocating storage
// (glBufferData with a null pointer), optionally resizing. The original
// usage hint is reused.
func (b *Buffer) Orphan(newSize int) error {
	size := b.size
	if newSize > 0 {
		size = newSize
	}
	usage := uint32(gl.STATIC_DRAW)
	if b.usage == UsageDynamic {
		usage = gl.DYNAMIC_DRAW
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.name)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, usage)
	if err := drainGLErrors(); err != nil {
		return err
	}
	b.size = size
	return nil
}

// BindToUniformBlock binds [offset, offset+size) to the indexed
// GL_UNIFORM_BUFFER target at binding.
func (b *Buffer) BindToUniformBlock(binding uint32, offset, size int) error {
	if offset+size > b.size {
		return newError(KindOutOfRange, "bind range exceeds buffer size")
	}
	gl.BindBufferRange(gl.UNIFORM_BUFFER, binding, b.name, offset, size)
	return drainGLErrors()
}

// BindToStorageBuffer binds [offset, offset+size) to the indexed
// GL_SHADER_STORAGE_BUFFER target at binding.
func (b *Buffer) BindToStorageBuffer(binding uint32, offset, size int) error {
	if offset+size > b.size {
		return newError(KindOutOfRange, "bind range exceeds buffer size")
	}
	gl.BindBufferRange(gl.SHADER_STORAGE_BUFFER, binding, b.name, offset, size)
	return drainGLErrors()
}
