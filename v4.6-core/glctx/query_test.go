//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestQuerySamplesPassed(t *testing.T) {
	ctx := newTestContext(t)
	q, err := ctx.Query(glctx.QueryConfig{SamplesPassed: true})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	prog, err := ctx.Program(glctx.ProgramConfig{Vertex: testVertexSrc, Fragment: testFragmentSrc})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	positions := []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}
	vbo, err := ctx.Buffer(glctx.BufferConfig{Data: float32Bytes(positions)})
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	vao, err := ctx.VertexArray(glctx.VertexArrayConfig{
		Program:  prog,
		Bindings: []glctx.VertexBinding{{Buffer: vbo, Format: "3f", Attributes: []string{"vert"}}},
	})
	if err != nil {
		t.Fatalf("VertexArray: %v", err)
	}

	if err := q.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := vao.Render(3, 1, 0, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := q.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, err := q.Samples(); err != nil {
		t.Fatalf("Samples: %v", err)
	}
}

func TestQueryConditionalRender(t *testing.T) {
	ctx := newTestContext(t)
	occlusion, err := ctx.Query(glctx.QueryConfig{SamplesPassed: true})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	prog, err := ctx.Program(glctx.ProgramConfig{Vertex: testVertexSrc, Fragment: testFragmentSrc})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	positions := []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}
	vbo, err := ctx.Buffer(glctx.BufferConfig{Data: float32Bytes(positions)})
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	vao, err := ctx.VertexArray(glctx.VertexArrayConfig{
		Program:  prog,
		Bindings: []glctx.VertexBinding{{Buffer: vbo, Format: "3f", Attributes: []string{"vert"}}},
	})
	if err != nil {
		t.Fatalf("VertexArray: %v", err)
	}

	if err := occlusion.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := vao.Render(3, 1, 0, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := occlusion.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	// Second draw only runs its fragment stage if occlusion recorded
	// samples passed; occlusion's own query object is reused as condition.
	if err := vao.Render(3, 1, 0, occlusion); err != nil {
		t.Fatalf("conditional Render: %v", err)
	}
}

func TestQueryUnallocatedTargetErrors(t *testing.T) {
	ctx := newTestContext(t)
	q, err := ctx.Query(glctx.QueryConfig{SamplesPassed: true})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if _, err := q.Elapsed(); err == nil {
		t.Fatal("expected error reading an unallocated query target")
	}
}

func TestQueryAllTargetsWhenNoneRequested(t *testing.T) {
	ctx := newTestContext(t)
	q, err := ctx.Query(glctx.QueryConfig{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if err := q.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := q.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, err := q.Samples(); err != nil {
		t.Fatalf("Samples should be allocated when none were requested: %v", err)
	}
	if _, err := q.Primitives(); err != nil {
		t.Fatalf("Primitives should be allocated when none were requested: %v", err)
	}
}
