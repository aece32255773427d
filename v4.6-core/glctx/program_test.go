//go:build !tinygo && cgo

package glctx_test

import (
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/soypat/glctx/v4.6-core/glctx"
)

const testVertexSrc = `#version 330
in vec3 vert;
void main() {
	gl_Position = vec4(vert, 1.0);
}`

const testFragmentSrc = `#version 330
out vec4 outputColor;
uniform vec4 u_color;
void main() {
	outputColor = u_color;
}`

const testComputeSrc = `#version 430
layout(local_size_x = 1) in;
layout(r32f, binding = 0) uniform image2D img;
void main() {
	imageStore(img, ivec2(gl_GlobalInvocationID.xy), vec4(1.0));
}`

func TestProgramCompileLinkIntrospect(t *testing.T) {
	ctx := newTestContext(t)
	prog, err := ctx.Program(glctx.ProgramConfig{
		Vertex:   testVertexSrc,
		Fragment: testFragmentSrc,
	})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	attrs := prog.Attributes()
	if _, ok := attrs["vert"]; !ok {
		t.Fatalf("attribute table missing 'vert': %v", attrs)
	}
	uniforms := prog.Uniforms()
	if _, ok := uniforms["u_color"]; !ok {
		t.Fatalf("uniform table missing 'u_color': %v", uniforms)
	}
	prog.Bind()
	if err := prog.SetUniform("u_color", []float32{0.2, 0.3, 0.8, 1}); err != nil {
		t.Fatalf("SetUniform: %v", err)
	}
}

func TestProgramCompileErrorReportsStage(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Program(glctx.ProgramConfig{
		Vertex:   "#version 330\nthis is not glsl",
		Fragment: testFragmentSrc,
	})
	if err == nil {
		t.Fatal("expected compile error for malformed vertex shader")
	}
	var gerr *glctx.Error
	if e, ok := err.(*glctx.Error); ok {
		gerr = e
	} else {
		t.Fatalf("error %v is not a *glctx.Error", err)
	}
	if gerr.Kind != glctx.KindCompileError {
		t.Fatalf("Kind = %v, want KindCompileError", gerr.Kind)
	}
	if gerr.Stage == "" {
		t.Fatal("compile error should report the offending stage")
	}
}

func TestProgramComputeRejectsRasterStages(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Program(glctx.ProgramConfig{Compute: testComputeSrc, Vertex: testVertexSrc})
	if err == nil {
		t.Fatal("expected error mixing compute with a raster stage")
	}
}

func TestComputeShaderRunCompute(t *testing.T) {
	ctx := newTestContext(t)
	prog, err := ctx.ComputeShader(testComputeSrc)
	if err != nil {
		t.Fatalf("ComputeShader: %v", err)
	}
	tex, err := ctx.Texture(glctx.TextureConfig{Width: 2, Height: 2, Components: 1, DType: "f4"})
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if err := tex.BindImage(0, 0, false, 0, gl.READ_WRITE); err != nil {
		t.Fatalf("BindImage: %v", err)
	}
	prog.Bind()
	if err := prog.RunCompute(2, 2, 1); err != nil {
		t.Fatalf("RunCompute: %v", err)
	}
	if err := ctx.Error(); err != nil {
		t.Fatalf("unexpected GL error after dispatch: %v", err)
	}
}

func TestProgramSubroutineIntrospection(t *testing.T) {
	ctx := newTestContext(t)
	const subroutineFragSrc = `#version 430
out vec4 outputColor;
subroutine vec4 ColorPick();
subroutine uniform ColorPick pickColor;

subroutine(ColorPick) vec4 red() { return vec4(1.0, 0.0, 0.0, 1.0); }
subroutine(ColorPick) vec4 blue() { return vec4(0.0, 0.0, 1.0, 1.0); }

void main() {
	outputColor = pickColor();
}`
	prog, err := ctx.Program(glctx.ProgramConfig{Vertex: testVertexSrc, Fragment: subroutineFragSrc})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	subs := prog.Subroutines(gl.FRAGMENT_SHADER)
	if _, ok := subs["red"]; !ok {
		t.Fatalf("subroutine table missing 'red': %v", subs)
	}
	if _, ok := subs["blue"]; !ok {
		t.Fatalf("subroutine table missing 'blue': %v", subs)
	}
	uniforms := prog.SubroutineUniforms(gl.FRAGMENT_SHADER)
	if _, ok := uniforms["pickColor"]; !ok {
		t.Fatalf("subroutine uniform table missing 'pickColor': %v", uniforms)
	}
	if n := prog.SubroutineCount(gl.FRAGMENT_SHADER); n != 2 {
		t.Fatalf("SubroutineCount(FRAGMENT_SHADER) = %d, want 2", n)
	}
	if subs := prog.Subroutines(gl.VERTEX_SHADER); len(subs) != 0 {
		t.Fatalf("vertex stage should have no subroutines, got %v", subs)
	}
}

func TestProgramGeometryLayout(t *testing.T) {
	ctx := newTestContext(t)
	const geomSrc = `#version 330
layout(triangles) in;
layout(triangle_strip, max_vertices = 3) out;
void main() {
	for (int i = 0; i < 3; i++) {
		gl_Position = gl_in[i].gl_Position;
		EmitVertex();
	}
	EndPrimitive();
}`
	prog, err := ctx.Program(glctx.ProgramConfig{Vertex: testVertexSrc, Geometry: geomSrc, Fragment: testFragmentSrc})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	input, output, verticesOut := prog.GeometryLayout()
	if input != gl.TRIANGLES {
		t.Fatalf("GeometryLayout input = %v, want GL_TRIANGLES", input)
	}
	if output != gl.TRIANGLE_STRIP {
		t.Fatalf("GeometryLayout output = %v, want GL_TRIANGLE_STRIP", output)
	}
	if verticesOut != 3 {
		t.Fatalf("GeometryLayout verticesOut = %v, want 3", verticesOut)
	}
}

func TestCleanGLSLNameStrippedByIntrospection(t *testing.T) {
	ctx := newTestContext(t)
	const arraySrc = `#version 330
uniform vec4 colors[2];
void main() {
	gl_Position = colors[0] + colors[1];
}`
	prog, err := ctx.Program(glctx.ProgramConfig{Vertex: arraySrc, Fragment: testFragmentSrc})
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	uniforms := prog.Uniforms()
	for name := range uniforms {
		if strings.Contains(name, "[") {
			t.Fatalf("uniform name %q was not cleaned of its array index", name)
		}
	}
}
