//go:build !tinygo && cgo

package glctx

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Kind classifies an [Error] the way the underlying resource/state manager
// reports failures: argument validation, compile/link failure, framebuffer
// incompleteness, or a GL-level failure observed through glGetError.
type Kind int

const (
	KindInvalidArgument Kind = iota
	KindInvalidDType
	KindInvalidSize
	KindOutOfRange
	KindCompileError
	KindLinkError
	KindFramebufferIncomplete
	KindObjectCreationFailed
	KindMapFailed
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidDType:
		return "invalid dtype"
	case KindInvalidSize:
		return "invalid size"
	case KindOutOfRange:
		return "out of range"
	case KindCompileError:
		return "compile error"
	case KindLinkError:
		return "link error"
	case KindFramebufferIncomplete:
		return "framebuffer incomplete"
	case KindObjectCreationFailed:
		return "gl object creation failed"
	case KindMapFailed:
		return "map failed"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown error kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is the single structured error type surfaced by every component in
// this package. Detail carries a human-readable message; Stage and Log are
// populated only for [KindCompileError]/[KindLinkError].
type Error struct {
	Kind   Kind
	Detail string
	Stage  string // shader stage name, compile/link errors only
	Source string // offending shader source, compile errors only
	Log    string // GL info log, compile/link errors only
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Stage != "" {
		msg += " (stage=" + e.Stage + ")"
	}
	if e.Log != "" {
		msg += "\n" + e.Log
	}
	return msg
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func newErrorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// ErrStringNotNullTerminated is returned when a caller passes a Go string
// where the GL entry point requires a null terminator and the string was
// not prepared with one.
var ErrStringNotNullTerminated = errors.New("glctx: string not null terminated")

// glErrors accumulates the queue drained by glGetError into one joined
// error.
type glErrors []glError

func (ge glErrors) Error() (s string) {
	if len(ge) == 0 {
		return "no gl errors"
	}
	for i, e := range ge {
		s += e.String()
		if i != len(ge)-1 {
			s += "; "
		}
	}
	return s
}

type glError uint32

func (ge glError) String() string {
	switch uint32(ge) {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.INVALID_INDEX:
		return "invalid index"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	case gl.STACK_OVERFLOW:
		return "stack overflow"
	case gl.STACK_UNDERFLOW:
		return "stack underflow"
	default:
		return "glError(" + strconv.Itoa(int(ge)) + ")"
	}
}

// drainGLErrors clears and reports the entire pending glGetError queue. It
// guards against a torn-down context spinning forever by bailing out past
// a generous cap.
func drainGLErrors() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	errs := glErrors{glError(code)}
	for {
		code = gl.GetError()
		if code == gl.NO_ERROR {
			return errs
		}
		errs = append(errs, glError(code))
		if len(errs) > 61 {
			return fmt.Errorf("glctx: possible unterminated error queue, context may be lost: first=%v last=%v", errs[0], errs[len(errs)-1])
		}
	}
}

// clearGLErrors drains glGetError without reporting, used at context
// startup as required by spec: "the context clears the GL error queue at
// startup".
func clearGLErrors() {
	for i := 0; gl.GetError() != gl.NO_ERROR; i++ {
		if i > 2000 {
			panic("glctx: forever loop clearing GL errors, context may be terminated")
		}
	}
}
