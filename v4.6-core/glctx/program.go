//go:build !tinygo && cgo

package glctx

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Attribute describes one entry of a linked program's active-attribute
// table.
type Attribute struct {
	Location    int32
	GLType      uint32
	ArrayLength int32
}

// Uniform describes one entry of a linked program's active-uniform table.
type Uniform struct {
	Location    int32
	GLType      uint32
	ArrayLength int32
	Cols, Rows  int
	Size        int
	Shape       byte
}

// UniformBlock describes one entry of a linked program's uniform-block
// table.
type UniformBlock struct {
	Index uint32
	Size  int
}

// Subroutine describes one entry of a shader stage's active-subroutine
// table (the concrete functions selectable at a subroutine uniform).
type Subroutine struct {
	Index uint32
}

// SubroutineUniform describes one entry of a shader stage's
// active-subroutine-uniform table (the indirection point a subroutine
// is assigned to).
type SubroutineUniform struct {
	Location    int32
	ArrayLength int32
}

// subroutineStages lists the GL shader-stage enums subroutine
// introspection is queried against, in pipeline order.
var subroutineStages = [...]uint32{
	gl.VERTEX_SHADER,
	gl.TESS_CONTROL_SHADER,
	gl.TESS_EVALUATION_SHADER,
	gl.GEOMETRY_SHADER,
	gl.FRAGMENT_SHADER,
	gl.COMPUTE_SHADER,
}

// ProgramConfig configures [Context.Program]/[Context.ComputeShader]. All
// source strings are raw GLSL (no null terminator required; Go strings are
// converted internally). Compute is mutually exclusive with every raster
// stage.
type ProgramConfig struct {
	Vertex, Fragment               string
	Geometry                       string
	TessControl, TessEvaluation    string
	Compute                        string
	Varyings                       []string
	FragmentOutputs                map[string]uint32
	Interleaved                    bool
}

// Program is a linked pipeline object with an introspected attribute/
// uniform/uniform-block table.
type Program struct {
	name          uint32
	isCompute     bool
	geomIn, geomOut, geomVertsOut int32
	varyingsCount int

	attributes    map[string]Attribute
	uniforms      map[string]Uniform
	uniformBlocks map[string]UniformBlock

	// subroutines, subroutineUniforms and subroutineCounts are keyed by
	// GL shader-stage enum (gl.VERTEX_SHADER etc); empty when the
	// context's GL version is below 4.0.
	subroutines        map[uint32]map[string]Subroutine
	subroutineUniforms map[uint32]map[string]SubroutineUniform
	subroutineCounts   map[uint32]int
}

func (p *Program) glo() uint32 { return p.name }

func (p *Program) release(ctx *Context) {
	if p.name == 0 {
		return
	}
	gl.DeleteProgram(p.name)
	p.name = 0
}

// cleanGLSLName strips a trailing "[n]" index: array-base uniforms report
// "name[0]" but must be addressable as "name".
func cleanGLSLName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

// Program compiles and links a staged shader program, binding fragment
// output locations and transform-feedback varyings before linking.
func (c *Context) Program(cfg ProgramConfig) (*Program, error) {
	if cfg.Compute != "" && (cfg.Vertex != "" || cfg.Fragment != "" || cfg.Geometry != "" || cfg.TessControl != "" || cfg.TessEvaluation != "") {
		return nil, newError(KindInvalidArgument, "compute is mutually exclusive with raster stages")
	}

	name := gl.CreateProgram()
	if name == 0 {
		return nil, newError(KindObjectCreationFailed, "glCreateProgram returned 0")
	}
	prog := &Program{name: name, isCompute: cfg.Compute != ""}

	var shaderIDs []uint32
	cleanup := func() {
		for _, sid := range shaderIDs {
			gl.DetachShader(name, sid)
			gl.DeleteShader(sid)
		}
		gl.DeleteProgram(name)
	}

	compileStage := func(stage string, glStage uint32, source string) error {
		if source == "" {
			return nil
		}
		sid, err := compileShaderStage(glStage, source)
		if err != nil {
			if gerr, ok := err.(*Error); ok {
				gerr.Stage = stage
				gerr.Source = source
			}
			return err
		}
		gl.AttachShader(name, sid)
		shaderIDs = append(shaderIDs, sid)
		return nil
	}

	stages := []struct {
		name    string
		glStage uint32
		src     string
	}{
		{"vertex", gl.VERTEX_SHADER, cfg.Vertex},
		{"tess_control", gl.TESS_CONTROL_SHADER, cfg.TessControl},
		{"tess_evaluation", gl.TESS_EVALUATION_SHADER, cfg.TessEvaluation},
		{"geometry", gl.GEOMETRY_SHADER, cfg.Geometry},
		{"fragment", gl.FRAGMENT_SHADER, cfg.Fragment},
		{"compute", gl.COMPUTE_SHADER, cfg.Compute},
	}
	for _, st := range stages {
		if err := compileStage(st.name, st.glStage, st.src); err != nil {
			cleanup()
			return nil, err
		}
	}

	for outName, loc := range cfg.FragmentOutputs {
		gl.BindFragDataLocation(name, loc, gl.Str(outName+"\x00"))
	}

	if len(cfg.Varyings) > 0 {
		cstrs, free := gl.Strs(nullTerminateAll(cfg.Varyings)...)
		mode := uint32(gl.INTERLEAVED_ATTRIBS)
		if !cfg.Interleaved {
			mode = gl.SEPARATE_ATTRIBS
		}
		gl.TransformFeedbackVaryings(name, int32(len(cfg.Varyings)), cstrs, mode)
		free()
		prog.varyingsCount = len(cfg.Varyings)
	}

	gl.LinkProgram(name)
	if linkErr := checkStatus(name, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog); linkErr != "" {
		cleanup()
		return nil, &Error{Kind: KindLinkError, Detail: "program failed to link", Log: linkErr}
	}

	for _, sid := range shaderIDs {
		gl.DetachShader(name, sid)
		gl.DeleteShader(sid)
	}

	if cfg.Geometry != "" {
		gl.GetProgramiv(name, gl.GEOMETRY_INPUT_TYPE, &prog.geomIn)
		gl.GetProgramiv(name, gl.GEOMETRY_OUTPUT_TYPE, &prog.geomOut)
		gl.GetProgramiv(name, gl.GEOMETRY_VERTICES_OUT, &prog.geomVertsOut)
	}

	introspect(prog)
	introspectSubroutines(c.versionCode, prog)
	if err := drainGLErrors(); err != nil {
		gl.DeleteProgram(name)
		return nil, err
	}
	c.track(prog)
	return prog, nil
}

// GeometryLayout returns the link-time GEOMETRY_INPUT_TYPE,
// GEOMETRY_OUTPUT_TYPE and GEOMETRY_VERTICES_OUT for a program built
// with a geometry stage; zero values otherwise.
func (p *Program) GeometryLayout() (input, output, verticesOut int32) {
	return p.geomIn, p.geomOut, p.geomVertsOut
}

// ComputeShader is a convenience wrapper over [Context.Program] for the
// compute-only construction path.
func (c *Context) ComputeShader(source string) (*Program, error) {
	return c.Program(ProgramConfig{Compute: source})
}

func nullTerminateAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if !strings.HasSuffix(n, "\x00") {
			out[i] = n + "\x00"
		} else {
			out[i] = n
		}
	}
	return out
}

func compileShaderStage(glStage uint32, source string) (uint32, error) {
	id := gl.CreateShader(glStage)
	if id == 0 {
		return 0, newError(KindObjectCreationFailed, "glCreateShader returned 0")
	}
	csource, free := gl.Strs(source + "\x00")
	length := int32(len(source))
	gl.ShaderSource(id, 1, csource, &length)
	free()
	gl.CompileShader(id)
	if log := checkStatus(id, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog); log != "" {
		gl.DeleteShader(id)
		return 0, &Error{Kind: KindCompileError, Detail: "shader failed to compile", Log: log}
	}
	return id, nil
}

// checkStatus returns the info log when the iv status query reports
// GL_FALSE, empty string otherwise.
func checkStatus(id, pname uint32, getIV func(uint32, uint32, *int32), getInfo func(uint32, int32, *int32, *uint8)) string {
	var status int32
	getIV(id, pname, &status)
	if status != gl.FALSE {
		return ""
	}
	var logLength int32
	getIV(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown failure (empty info log)"
	}
	log := make([]byte, logLength)
	getInfo(id, logLength, &logLength, &log[0])
	if n := len(log); n > 0 && log[n-1] == 0 {
		log = log[:n-1]
	}
	return string(log)
}

func introspect(p *Program) {
	p.attributes = map[string]Attribute{}
	p.uniforms = map[string]Uniform{}
	p.uniformBlocks = map[string]UniformBlock{}

	var nAttrs int32
	gl.GetProgramiv(p.name, gl.ACTIVE_ATTRIBUTES, &nAttrs)
	var maxAttrNameLen int32
	gl.GetProgramiv(p.name, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxAttrNameLen)
	if maxAttrNameLen == 0 {
		maxAttrNameLen = 256
	}
	nameBuf := make([]byte, maxAttrNameLen)
	for i := uint32(0); i < uint32(nAttrs); i++ {
		var length, size int32
		var gltype uint32
		gl.GetActiveAttrib(p.name, i, int32(len(nameBuf)), &length, &size, &gltype, &nameBuf[0])
		name := cleanGLSLName(string(nameBuf[:length]))
		loc := gl.GetAttribLocation(p.name, gl.Str(name+"\x00"))
		p.attributes[name] = Attribute{Location: loc, GLType: gltype, ArrayLength: size}
	}

	var nUniforms int32
	gl.GetProgramiv(p.name, gl.ACTIVE_UNIFORMS, &nUniforms)
	var maxUniformNameLen int32
	gl.GetProgramiv(p.name, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxUniformNameLen)
	if maxUniformNameLen == 0 {
		maxUniformNameLen = 256
	}
	uNameBuf := make([]byte, maxUniformNameLen)
	for i := uint32(0); i < uint32(nUniforms); i++ {
		var length, size int32
		var gltype uint32
		gl.GetActiveUniform(p.name, i, int32(len(uNameBuf)), &length, &size, &gltype, &uNameBuf[0])
		name := cleanGLSLName(string(uNameBuf[:length]))
		loc := gl.GetUniformLocation(p.name, gl.Str(name+"\x00"))
		info, _ := decodeGLType(gltype)
		p.uniforms[name] = Uniform{
			Location:    loc,
			GLType:      gltype,
			ArrayLength: size,
			Cols:        info.Cols,
			Rows:        info.Rows,
			Size:        int(size),
			Shape:       info.Shape,
		}
	}

	var nBlocks int32
	gl.GetProgramiv(p.name, gl.ACTIVE_UNIFORM_BLOCKS, &nBlocks)
	for i := uint32(0); i < uint32(nBlocks); i++ {
		var nameLen, blockSize int32
		gl.GetActiveUniformBlockiv(p.name, i, gl.UNIFORM_BLOCK_NAME_LENGTH, &nameLen)
		if nameLen == 0 {
			nameLen = 256
		}
		buf := make([]byte, nameLen)
		var outLen int32
		gl.GetActiveUniformBlockName(p.name, i, nameLen, &outLen, &buf[0])
		gl.GetActiveUniformBlockiv(p.name, i, gl.UNIFORM_BLOCK_DATA_SIZE, &blockSize)
		p.uniformBlocks[string(buf[:outLen])] = UniformBlock{Index: i, Size: int(blockSize)}
	}
}

// introspectSubroutines enumerates ACTIVE_SUBROUTINES and
// ACTIVE_SUBROUTINE_UNIFORMS per shader stage; subroutines are a GL 4.0+
// core feature so this is a no-op below that version.
func introspectSubroutines(versionCode int, p *Program) {
	if versionCode < 400 {
		return
	}
	p.subroutines = map[uint32]map[string]Subroutine{}
	p.subroutineUniforms = map[uint32]map[string]SubroutineUniform{}
	p.subroutineCounts = map[uint32]int{}

	for _, stage := range subroutineStages {
		var nSubs int32
		gl.GetProgramStageiv(p.name, stage, gl.ACTIVE_SUBROUTINES, &nSubs)
		var nUniforms int32
		gl.GetProgramStageiv(p.name, stage, gl.ACTIVE_SUBROUTINE_UNIFORMS, &nUniforms)
		if nSubs == 0 && nUniforms == 0 {
			continue
		}

		var maxSubNameLen int32
		gl.GetProgramStageiv(p.name, stage, gl.ACTIVE_SUBROUTINE_MAX_LENGTH, &maxSubNameLen)
		if maxSubNameLen == 0 {
			maxSubNameLen = 256
		}
		subBuf := make([]byte, maxSubNameLen)
		subs := make(map[string]Subroutine, nSubs)
		for i := uint32(0); i < uint32(nSubs); i++ {
			var length int32
			gl.GetActiveSubroutineName(p.name, stage, i, int32(len(subBuf)), &length, &subBuf[0])
			subs[string(subBuf[:length])] = Subroutine{Index: i}
		}

		var maxUniformNameLen int32
		gl.GetProgramStageiv(p.name, stage, gl.ACTIVE_SUBROUTINE_UNIFORM_MAX_LENGTH, &maxUniformNameLen)
		if maxUniformNameLen == 0 {
			maxUniformNameLen = 256
		}
		uBuf := make([]byte, maxUniformNameLen)
		uniforms := make(map[string]SubroutineUniform, nUniforms)
		for i := uint32(0); i < uint32(nUniforms); i++ {
			var length, size int32
			gl.GetActiveSubroutineUniformName(p.name, stage, i, int32(len(uBuf)), &length, &uBuf[0])
			name := cleanGLSLName(string(uBuf[:length]))
			gl.GetActiveSubroutineUniformiv(p.name, stage, i, gl.UNIFORM_SIZE, &size)
			loc := gl.GetSubroutineUniformLocation(p.name, stage, gl.Str(name+"\x00"))
			uniforms[name] = SubroutineUniform{Location: loc, ArrayLength: size}
		}

		p.subroutines[stage] = subs
		p.subroutineUniforms[stage] = uniforms
		p.subroutineCounts[stage] = int(nSubs)
	}
}

// Subroutines returns the introspected subroutine table for stage (a
// gl.VERTEX_SHADER-style enum), nil if the stage has none or the
// context's GL version is below 4.0.
func (p *Program) Subroutines(stage uint32) map[string]Subroutine { return p.subroutines[stage] }

// SubroutineUniforms returns the introspected subroutine-uniform table
// for stage.
func (p *Program) SubroutineUniforms(stage uint32) map[string]SubroutineUniform {
	return p.subroutineUniforms[stage]
}

// SubroutineCount returns ACTIVE_SUBROUTINES for stage.
func (p *Program) SubroutineCount(stage uint32) int { return p.subroutineCounts[stage] }

// Attributes returns the introspected attribute table.
func (p *Program) Attributes() map[string]Attribute { return p.attributes }

// Uniforms returns the introspected uniform table.
func (p *Program) Uniforms() map[string]Uniform { return p.uniforms }

// UniformBlocks returns the introspected uniform-block table.
func (p *Program) UniformBlocks() map[string]UniformBlock { return p.uniformBlocks }

func (p *Program) glUseProgram() { gl.UseProgram(p.name) }

// Bind makes this the current program (glUseProgram).
func (p *Program) Bind() { gl.UseProgram(p.name) }

// SetUniformBlockBinding binds the named uniform block to binding, calling
// glUniformBlockBinding.
func (p *Program) SetUniformBlockBinding(name string, binding uint32) error {
	ub, ok := p.uniformBlocks[name]
	if !ok {
		return newErrorf(KindInvalidArgument, "no such uniform block %q", name)
	}
	gl.UniformBlockBinding(p.name, ub.Index, binding)
	return drainGLErrors()
}

// SetUniform writes value into the named uniform, dispatching to the
// shape-specific Uniform*v/UniformMatrix*v call. value must be a flat slice
// whose element type matches the uniform's shape ('f'→float32, 'd'→float64,
// 'i'→int32, 'u'→uint32, 'p'→bool), or the matching scalar type.
func (p *Program) SetUniform(name string, value any) error {
	u, ok := p.uniforms[name]
	if !ok {
		return newErrorf(KindInvalidArgument, "no such uniform %q", name)
	}
	return p.setUniformAt(u, value)
}

func (p *Program) setUniformAt(u Uniform, value any) error {
	count := int32(1)
	if u.ArrayLength > 1 {
		count = u.ArrayLength
	}
	switch u.Shape {
	case 'f':
		data, err := toFloat32Slice(value)
		if err != nil {
			return err
		}
		if u.Rows > 1 {
			setMatrixF(u.Location, count, u.Cols, u.Rows, data)
		} else {
			setVectorF(u.Location, count, u.Cols, data)
		}
	case 'd':
		data, err := toFloat64Slice(value)
		if err != nil {
			return err
		}
		if u.Rows > 1 {
			setMatrixD(u.Location, count, u.Cols, u.Rows, data)
		} else {
			setVectorD(u.Location, count, u.Cols, data)
		}
	case 'i':
		data, err := toInt32Slice(value)
		if err != nil {
			return err
		}
		setVectorI(u.Location, count, u.Cols, data)
	case 'u':
		data, err := toUint32Slice(value)
		if err != nil {
			return err
		}
		setVectorUI(u.Location, count, u.Cols, data)
	case 'p':
		data, err := toBoolAsInt32Slice(value)
		if err != nil {
			return err
		}
		setVectorI(u.Location, count, u.Cols, data)
	default:
		return newErrorf(KindUnsupported, "unrecognized uniform shape %q", string(u.Shape))
	}
	return drainGLErrors()
}

func setVectorF(loc, count int32, cols int, data []float32) {
	switch cols {
	case 1:
		gl.Uniform1fv(loc, count, &data[0])
	case 2:
		gl.Uniform2fv(loc, count, &data[0])
	case 3:
		gl.Uniform3fv(loc, count, &data[0])
	case 4:
		gl.Uniform4fv(loc, count, &data[0])
	}
}

func setVectorD(loc, count int32, cols int, data []float64) {
	switch cols {
	case 1:
		gl.Uniform1dv(loc, count, &data[0])
	case 2:
		gl.Uniform2dv(loc, count, &data[0])
	case 3:
		gl.Uniform3dv(loc, count, &data[0])
	case 4:
		gl.Uniform4dv(loc, count, &data[0])
	}
}

func setVectorI(loc, count int32, cols int, data []int32) {
	switch cols {
	case 1:
		gl.Uniform1iv(loc, count, &data[0])
	case 2:
		gl.Uniform2iv(loc, count, &data[0])
	case 3:
		gl.Uniform3iv(loc, count, &data[0])
	case 4:
		gl.Uniform4iv(loc, count, &data[0])
	}
}

func setVectorUI(loc, count int32, cols int, data []uint32) {
	switch cols {
	case 1:
		gl.Uniform1uiv(loc, count, &data[0])
	case 2:
		gl.Uniform2uiv(loc, count, &data[0])
	case 3:
		gl.Uniform3uiv(loc, count, &data[0])
	case 4:
		gl.Uniform4uiv(loc, count, &data[0])
	}
}

// setMatrixF writes a float matrix uniform. Matrix calls always pass
// transpose=false
func setMatrixF(loc, count int32, cols, rows int, data []float32) {
	switch {
	case cols == 2 && rows == 2:
		gl.UniformMatrix2fv(loc, count, false, &data[0])
	case cols == 3 && rows == 3:
		gl.UniformMatrix3fv(loc, count, false, &data[0])
	case cols == 4 && rows == 4:
		gl.UniformMatrix4fv(loc, count, false, &data[0])
	case cols == 2 && rows == 3:
		gl.UniformMatrix2x3fv(loc, count, false, &data[0])
	case cols == 2 && rows == 4:
		gl.UniformMatrix2x4fv(loc, count, false, &data[0])
	case cols == 3 && rows == 2:
		gl.UniformMatrix3x2fv(loc, count, false, &data[0])
	case cols == 3 && rows == 4:
		gl.UniformMatrix3x4fv(loc, count, false, &data[0])
	case cols == 4 && rows == 2:
		gl.UniformMatrix4x2fv(loc, count, false, &data[0])
	case cols == 4 && rows == 3:
		gl.UniformMatrix4x3fv(loc, count, false, &data[0])
	}
}

func setMatrixD(loc, count int32, cols, rows int, data []float64) {
	switch {
	case cols == 2 && rows == 2:
		gl.UniformMatrix2dv(loc, count, false, &data[0])
	case cols == 3 && rows == 3:
		gl.UniformMatrix3dv(loc, count, false, &data[0])
	case cols == 4 && rows == 4:
		gl.UniformMatrix4dv(loc, count, false, &data[0])
	case cols == 2 && rows == 3:
		gl.UniformMatrix2x3dv(loc, count, false, &data[0])
	case cols == 2 && rows == 4:
		gl.UniformMatrix2x4dv(loc, count, false, &data[0])
	case cols == 3 && rows == 2:
		gl.UniformMatrix3x2dv(loc, count, false, &data[0])
	case cols == 3 && rows == 4:
		gl.UniformMatrix3x4dv(loc, count, false, &data[0])
	case cols == 4 && rows == 2:
		gl.UniformMatrix4x2dv(loc, count, false, &data[0])
	case cols == 4 && rows == 3:
		gl.UniformMatrix4x3dv(loc, count, false, &data[0])
	}
}

func toFloat32Slice(value any) ([]float32, error) {
	switch v := value.(type) {
	case []float32:
		return v, nil
	case float32:
		return []float32{v}, nil
	case [][]float32:
		return flatten2F32(v), nil
	case []float64:
		out := make([]float32, len(v))
		for i, x := range v {
			out[i] = float32(x)
		}
		return out, nil
	default:
		return nil, newErrorf(KindInvalidArgument, "expected float32 value, got %T", value)
	}
}

func flatten2F32(v [][]float32) []float32 {
	var out []float32
	for _, row := range v {
		out = append(out, row...)
	}
	return out
}

func toFloat64Slice(value any) ([]float64, error) {
	switch v := value.(type) {
	case []float64:
		return v, nil
	case float64:
		return []float64{v}, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, newErrorf(KindInvalidArgument, "expected float64 value, got %T", value)
	}
}

func toInt32Slice(value any) ([]int32, error) {
	switch v := value.(type) {
	case []int32:
		return v, nil
	case int32:
		return []int32{v}, nil
	case int:
		return []int32{int32(v)}, nil
	case []int:
		out := make([]int32, len(v))
		for i, x := range v {
			out[i] = int32(x)
		}
		return out, nil
	default:
		return nil, newErrorf(KindInvalidArgument, "expected int32 value, got %T", value)
	}
}

func toUint32Slice(value any) ([]uint32, error) {
	switch v := value.(type) {
	case []uint32:
		return v, nil
	case uint32:
		return []uint32{v}, nil
	default:
		return nil, newErrorf(KindInvalidArgument, "expected uint32 value, got %T", value)
	}
}

func toBoolAsInt32Slice(value any) ([]int32, error) {
	switch v := value.(type) {
	case bool:
		return []int32{b2i32(v)}, nil
	case []bool:
		out := make([]int32, len(v))
		for i, x := range v {
			out[i] = b2i32(x)
		}
		return out, nil
	default:
		return nil, newErrorf(KindInvalidArgument, "expected bool value, got %T", value)
	}
}

func b2i32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// RunCompute dispatches a compute program and then issues a full memory
// barrier (ALL_BARRIER_BITS); it does not wait for the dispatch to finish.
func (p *Program) RunCompute(x, y, z uint32) error {
	if !p.isCompute {
		return newError(KindInvalidArgument, "RunCompute called on non-compute program")
	}
	gl.UseProgram(p.name)
	gl.DispatchCompute(x, y, z)
	if err := drainGLErrors(); err != nil {
		return err
	}
	gl.MemoryBarrier(gl.ALL_BARRIER_BITS)
	return drainGLErrors()
}
