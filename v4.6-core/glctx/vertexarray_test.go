//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestVertexArrayIndexedRender(t *testing.T) {
	ctx := newTestContext(t)
	prog, err := ctx.Program(glctx.ProgramConfig{Vertex: testVertexSrc, Fragment: testFragmentSrc})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	var positions = []float32{
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
		0.5, 0.5, 0,
		-0.5, 0.5, 0,
	}
	vbo, err := ctx.Buffer(glctx.BufferConfig{Data: float32Bytes(positions)})
	if err != nil {
		t.Fatalf("vertex buffer: %v", err)
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	ibo, err := ctx.Buffer(glctx.BufferConfig{Data: uint32Bytes(indices)})
	if err != nil {
		t.Fatalf("index buffer: %v", err)
	}
	vao, err := ctx.VertexArray(glctx.VertexArrayConfig{
		Program: prog,
		Bindings: []glctx.VertexBinding{
			{Buffer: vbo, Format: "3f", Attributes: []string{"vert"}},
		},
		IndexBuffer:      ibo,
		IndexElementSize: 4,
	})
	if err != nil {
		t.Fatalf("VertexArray: %v", err)
	}
	if err := vao.Render(len(indices), 1, 0, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestVertexArrayRequiresProgramAndBindings(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.VertexArray(glctx.VertexArrayConfig{})
	if err == nil {
		t.Fatal("expected error with no program and no bindings")
	}
	prog, err := ctx.Program(glctx.ProgramConfig{Vertex: testVertexSrc, Fragment: testFragmentSrc})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	_, err = ctx.VertexArray(glctx.VertexArrayConfig{Program: prog})
	if err == nil {
		t.Fatal("expected error with a program but no bindings")
	}
}
