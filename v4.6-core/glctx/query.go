//go:build !tinygo && cgo

package glctx

import "github.com/go-gl/gl/v4.6-core/gl"

const (
	querySamplesPassed = iota
	queryAnySamplesPassed
	queryTimeElapsed
	queryPrimitivesGenerated
	queryKindCount
)

// QueryConfig selects which of the up to four concurrent query targets to
// allocate. If all four are false, all four are allocated (mirrors
// original_source/moderngl/src/Query.cpp's "none set means all set" rule).
type QueryConfig struct {
	SamplesPassed       bool
	AnySamplesPassed    bool
	TimeElapsed         bool
	PrimitivesGenerated bool
}

// Query wraps up to four concurrently-tracked occlusion/timing/primitive
// query objects sharing one begin/end lifecycle.
type Query struct {
	names [queryKindCount]uint32
}

func (q *Query) glo() uint32 {
	for _, n := range q.names {
		if n != 0 {
			return n
		}
	}
	return 0
}

func (q *Query) release(ctx *Context) {
	for i, n := range q.names {
		if n != 0 {
			gl.DeleteQueries(1, &n)
			q.names[i] = 0
		}
	}
}

var queryGLTarget = [queryKindCount]uint32{
	querySamplesPassed:       gl.SAMPLES_PASSED,
	queryAnySamplesPassed:    gl.ANY_SAMPLES_PASSED,
	queryTimeElapsed:         gl.TIME_ELAPSED,
	queryPrimitivesGenerated: gl.PRIMITIVES_GENERATED,
}

// Query allocates a query object for the requested targets.
func (c *Context) Query(cfg QueryConfig) (*Query, error) {
	if !cfg.SamplesPassed && !cfg.AnySamplesPassed && !cfg.TimeElapsed && !cfg.PrimitivesGenerated {
		cfg = QueryConfig{true, true, true, true}
	}
	q := &Query{}
	want := [queryKindCount]bool{cfg.SamplesPassed, cfg.AnySamplesPassed, cfg.TimeElapsed, cfg.PrimitivesGenerated}
	for i, on := range want {
		if !on {
			continue
		}
		var name uint32
		gl.GenQueries(1, &name)
		if name == 0 {
			q.release(c)
			return nil, newError(KindObjectCreationFailed, "glGenQueries returned 0")
		}
		q.names[i] = name
	}
	if err := drainGLErrors(); err != nil {
		q.release(c)
		return nil, err
	}
	c.track(q)
	return q, nil
}

// Begin starts every allocated query target.
func (q *Query) Begin() error {
	for i, name := range q.names {
		if name != 0 {
			gl.BeginQuery(queryGLTarget[i], name)
		}
	}
	return drainGLErrors()
}

// End stops every allocated query target.
func (q *Query) End() error {
	for i, name := range q.names {
		if name != 0 {
			gl.EndQuery(queryGLTarget[i])
		}
	}
	return drainGLErrors()
}

// BeginRender starts conditional rendering, preferring the any-samples
// query and falling back to samples-passed.
func (q *Query) BeginRender() error {
	if q.names[queryAnySamplesPassed] != 0 {
		gl.BeginConditionalRender(q.names[queryAnySamplesPassed], gl.QUERY_NO_WAIT)
	} else if q.names[querySamplesPassed] != 0 {
		gl.BeginConditionalRender(q.names[querySamplesPassed], gl.QUERY_NO_WAIT)
	} else {
		return newError(KindInvalidArgument, "query has no samples-passed target to conditionally render on")
	}
	return drainGLErrors()
}

// EndRender ends conditional rendering.
func (q *Query) EndRender() error {
	gl.EndConditionalRender()
	return drainGLErrors()
}

func (q *Query) getInt(kind int) (int, error) {
	if q.names[kind] == 0 {
		return 0, newError(KindInvalidArgument, "query target was not allocated")
	}
	var result int32
	gl.GetQueryObjectiv(q.names[kind], gl.QUERY_RESULT, &result)
	if err := drainGLErrors(); err != nil {
		return 0, err
	}
	return int(result), nil
}

// Samples returns the SAMPLES_PASSED result.
func (q *Query) Samples() (int, error) { return q.getInt(querySamplesPassed) }

// Primitives returns the PRIMITIVES_GENERATED result.
func (q *Query) Primitives() (int, error) { return q.getInt(queryPrimitivesGenerated) }

// Elapsed returns the TIME_ELAPSED result, in nanoseconds.
func (q *Query) Elapsed() (int, error) { return q.getInt(queryTimeElapsed) }
