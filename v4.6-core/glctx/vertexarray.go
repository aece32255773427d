//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

// VertexBinding pairs a buffer with a format string and the attribute
// names it feeds.
type VertexBinding struct {
	Buffer     *Buffer
	Format     string
	Attributes []string
}

// VertexArrayConfig configures [Context.VertexArray]. A shorthand
// single-buffer form is accepted by leaving only one entry in Bindings.
type VertexArrayConfig struct {
	Program          *Program
	Bindings         []VertexBinding
	IndexBuffer      *Buffer
	IndexElementSize int // 1, 2 or 4; default 4
	Mode             uint32
}

// VertexArray binds a program to buffer attributes and issues draws.
type VertexArray struct {
	name             uint32
	program          *Program
	indexBuffer      *Buffer
	indexElementSize int
	outputBuffer     *Buffer
	indirectBuffer   *Buffer
	mode             uint32
	vertices         int
	instances        int
}

func (v *VertexArray) glo() uint32 { return v.name }

func (v *VertexArray) release(ctx *Context) {
	if v.name == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &v.name)
	v.name = 0
}

func indexGLType(elementSize int) uint32 {
	switch elementSize {
	case 1:
		return gl.UNSIGNED_BYTE
	case 2:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

func bindAttribPointer(location uint32, n formatNode, stride, offset int32) {
	switch {
	case isAttribDoubleFamily(n.glType2shape()):
		gl.VertexAttribLPointerWithOffset(location, int32(n.count), n.glType, stride, uintptr(offset))
	case isAttribIntegerFamily(n.glType2shape()) && !n.normalize:
		gl.VertexAttribIPointerWithOffset(location, int32(n.count), n.glType, stride, uintptr(offset))
	default:
		gl.VertexAttribPointerWithOffset(location, int32(n.count), n.glType, n.normalize, stride, uintptr(offset))
	}
}

// glType2shape maps a node's gl type back to the shape class used by
// isAttribIntegerFamily/isAttribDoubleFamily; pad nodes never reach here.
func (n formatNode) glType2shape() byte {
	switch n.glType {
	case gl.DOUBLE:
		return 'd'
	case gl.FLOAT, gl.HALF_FLOAT, gl.UNSIGNED_BYTE, gl.BYTE, gl.UNSIGNED_SHORT, gl.SHORT:
		if n.normalize {
			return 'f'
		}
		if n.glType == gl.FLOAT || n.glType == gl.HALF_FLOAT {
			return 'f'
		}
		return 'i'
	case gl.INT:
		return 'i'
	case gl.UNSIGNED_INT:
		return 'u'
	default:
		return 'f'
	}
}

// VertexArray constructs a vertex array object wiring cfg.Bindings'
// buffers to cfg.Program's attribute locations by name.
func (c *Context) VertexArray(cfg VertexArrayConfig) (*VertexArray, error) {
	if cfg.Program == nil {
		return nil, newError(KindInvalidArgument, "vertex array requires a program")
	}
	if len(cfg.Bindings) == 0 {
		return nil, newError(KindInvalidArgument, "vertex array requires at least one binding")
	}
	mode := cfg.Mode
	if mode == 0 {
		mode = gl.TRIANGLES
	}
	indexElementSize := cfg.IndexElementSize
	if indexElementSize == 0 {
		indexElementSize = 4
	}
	if indexElementSize != 1 && indexElementSize != 2 && indexElementSize != 4 {
		return nil, newError(KindInvalidArgument, "index element size must be 1, 2 or 4")
	}

	var name uint32
	gl.GenVertexArrays(1, &name)
	if name == 0 {
		return nil, newError(KindObjectCreationFailed, "glGenVertexArrays returned 0")
	}
	gl.BindVertexArray(name)

	attrIndex := cfg.Program.attributes

	for _, b := range cfg.Bindings {
		pf, err := parseVertexFormat(b.Format)
		if err != nil {
			gl.BindVertexArray(0)
			gl.DeleteVertexArrays(1, &name)
			return nil, err
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, b.Buffer.name)
		offset := int32(0)
		attrI := 0
		for _, node := range pf.nodes {
			if node.pad {
				offset += int32(node.count * node.elementSize)
				continue
			}
			if attrI >= len(b.Attributes) {
				gl.BindVertexArray(0)
				gl.DeleteVertexArrays(1, &name)
				return nil, newError(KindInvalidArgument, "fewer attribute names than format nodes")
			}
			attrName := b.Attributes[attrI]
			attrI++
			attr, ok := attrIndex[attrName]
			if !ok {
				offset += int32(node.count * node.elementSize)
				continue // attribute optimized out or unused by the program; skip binding it
			}
			loc := uint32(attr.Location)
			gl.EnableVertexAttribArray(loc)
			bindAttribPointer(loc, node, int32(pf.stride), offset)
			if pf.divisor != 0 {
				gl.VertexAttribDivisor(loc, pf.divisor)
			}
			offset += int32(node.count * node.elementSize)
		}
	}

	if cfg.IndexBuffer != nil {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, cfg.IndexBuffer.name)
	}

	if err := drainGLErrors(); err != nil {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &name)
		return nil, err
	}
	gl.BindVertexArray(0)

	va := &VertexArray{
		name: name, program: cfg.Program, indexBuffer: cfg.IndexBuffer,
		indexElementSize: indexElementSize, mode: mode,
	}
	c.track(va)
	return va, nil
}

// SetOutputBuffer sets the transform-feedback output buffer.
func (v *VertexArray) SetOutputBuffer(b *Buffer) { v.outputBuffer = b }

// SetIndirectBuffer sets the indirect-draw parameter buffer.
func (v *VertexArray) SetIndirectBuffer(b *Buffer) { v.indirectBuffer = b }

// indirectElementsStride and indirectArraysStride are the byte sizes of
// the DrawElementsIndirectCommand/DrawArraysIndirectCommand structs
// (count, instanceCount, first[Index], base[Vertex], baseInstance), i.e.
// the GL driver's per-draw-command record length in an indirect buffer.
const (
	indirectElementsStride = 20
	indirectArraysStride   = 16
)

// Render issues a draw call, picking among these dispatch rules: indexed
// when an index buffer is bound, indirect (multi-draw, batching as many
// commands as indicated by instances) when an indirect buffer is set,
// transform-feedback capturing when an output buffer is set, else a
// plain instanced array draw. condition, if non-nil, wraps the draw in
// conditional rendering against the query's result.
func (v *VertexArray) Render(vertices, instances, first int, condition *Query) error {
	gl.BindVertexArray(v.name)
	v.program.Bind()
	if instances < 1 {
		instances = 1
	}

	if condition != nil {
		if err := condition.BeginRender(); err != nil {
			gl.BindVertexArray(0)
			return err
		}
		defer condition.EndRender()
	}

	switch {
	case v.indirectBuffer != nil:
		gl.BindBuffer(gl.DRAW_INDIRECT_BUFFER, v.indirectBuffer.name)
		if v.indexBuffer != nil {
			gl.MultiDrawElementsIndirect(v.mode, indexGLType(v.indexElementSize), gl.PtrOffset(0), int32(instances), indirectElementsStride)
		} else {
			gl.MultiDrawArraysIndirect(v.mode, gl.PtrOffset(0), int32(instances), indirectArraysStride)
		}
	case v.outputBuffer != nil:
		gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, v.outputBuffer.name)
		gl.BeginTransformFeedback(v.mode)
		v.issueDraw(vertices, instances, first)
		gl.EndTransformFeedback()
	default:
		v.issueDraw(vertices, instances, first)
	}

	gl.BindVertexArray(0)
	return drainGLErrors()
}

func (v *VertexArray) issueDraw(vertices, instances, first int) {
	if v.indexBuffer != nil {
		offset := first * v.indexElementSize
		gl.DrawElementsInstancedWithOffset(v.mode, int32(vertices), indexGLType(v.indexElementSize), uintptr(offset), int32(instances))
		return
	}
	gl.DrawArraysInstanced(v.mode, int32(first), int32(vertices), int32(instances))
}
