package glctx_test

import (
	"strings"
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestParseCombinedSource(t *testing.T) {
	const src = `// header comment, ignored
#shader includeashead
#define PI 3.14159

#shader vertex
void main() {
    gl_Position = vec4(1.0, 0.0, 0.0, 1.0);
}

#shader fragment
void main() {
    fragColor = vec4(1.0);
}
`
	out, err := glctx.ParseCombinedSource(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseCombinedSource: %v", err)
	}
	if !strings.Contains(out.Vertex, "gl_Position") {
		t.Fatalf("vertex stage missing expected body: %q", out.Vertex)
	}
	if !strings.Contains(out.Fragment, "fragColor") {
		t.Fatalf("fragment stage missing expected body: %q", out.Fragment)
	}
	if !strings.HasPrefix(out.Vertex, "#define PI") || !strings.HasPrefix(out.Fragment, "#define PI") {
		t.Fatalf("includeashead content was not prepended to every stage: vertex=%q fragment=%q", out.Vertex, out.Fragment)
	}
	if out.Compute != "" {
		t.Fatalf("compute stage should be empty, got %q", out.Compute)
	}
}

func TestParseCombinedSourceCompute(t *testing.T) {
	const src = `#shader compute
layout(local_size_x = 1) in;
void main() {}
`
	out, err := glctx.ParseCombinedSource(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseCombinedSource: %v", err)
	}
	if !strings.Contains(out.Compute, "local_size_x") {
		t.Fatalf("compute stage missing expected body: %q", out.Compute)
	}
	if out.Vertex != "" || out.Fragment != "" {
		t.Fatalf("only the compute stage should be populated: %+v", out)
	}
}

func TestParseCombinedSourceUnknownPragma(t *testing.T) {
	const src = `#shader geometry
void main() {}
`
	_, err := glctx.ParseCombinedSource(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected error for an unrecognized #shader pragma value")
	}
}
