package glctx

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CombinedSource holds shader stage sources parsed out of one file by
// [ParseCombinedSource], ready to drop into [ProgramConfig].
type CombinedSource struct {
	Vertex   string
	Fragment string
	Compute  string
	Include  string
}

// shaderPragmaSection maps a #shader pragma's argument to the section
// name it feeds; "pixel" is accepted as an alias for "fragment".
var shaderPragmaSection = map[string]string{
	"vertex":        "vertex",
	"fragment":      "fragment",
	"pixel":         "fragment",
	"compute":       "compute",
	"includeashead": "header",
}

// ParseCombinedSource parses a file with vertex/fragment/compute #shader
// pragmas, inspired by The Cherno's take on shader file segmenting: it
// lets a program's stages live in one source file.
//
//	// Anything above the first #shader pragma is ignored.
//	#shader vertex
//	void main() {
//	    gl_Position = vec4(1.0, 0.0, 0.0, 1.0);
//	}
//
//	#shader fragment
//	void main() {
//	    fragColor = vec4(1.0);
//	}
//
// `compute` and `includeashead` are also valid #shader pragmas; content
// under `includeashead` is prepended to every other stage found.
// ParseCombinedSource performs no GL calls.
func ParseCombinedSource(r io.Reader) (CombinedSource, error) {
	sections := make(map[string]*strings.Builder)
	active := ""
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "#shader") {
			fields := strings.Fields(trimmed)
			if len(fields) != 2 {
				continue
			}
			section, ok := shaderPragmaSection[fields[1]]
			if !ok {
				return CombinedSource{}, fmt.Errorf("glctx: unrecognized #shader pragma value %q", fields[1])
			}
			active = section
			continue
		}
		if active == "" {
			continue // discard everything above the first pragma
		}
		b := sections[active]
		if b == nil {
			b = new(strings.Builder)
			sections[active] = b
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return CombinedSource{}, err
	}

	var header string
	if b := sections["header"]; b != nil {
		header = b.String()
	}
	out := CombinedSource{Include: header}
	if b := sections["vertex"]; b != nil {
		out.Vertex = header + b.String()
	}
	if b := sections["fragment"]; b != nil {
		out.Fragment = header + b.String()
	}
	if b := sections["compute"]; b != nil {
		out.Compute = header + b.String()
	}
	return out, nil
}
