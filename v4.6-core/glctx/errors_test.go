//go:build !tinygo && cgo

package glctx_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind glctx.Kind
		want string
	}{
		{glctx.KindInvalidArgument, "invalid argument"},
		{glctx.KindCompileError, "compile error"},
		{glctx.KindFramebufferIncomplete, "framebuffer incomplete"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	ctx := newTestContext(t)
	_, err := ctx.Buffer(glctx.BufferConfig{})
	if err == nil {
		t.Fatal("expected error creating a zero-size buffer")
	}
	var gerr *glctx.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error %v is not a *glctx.Error", err)
	}
	if gerr.Kind != glctx.KindInvalidSize {
		t.Fatalf("Kind = %v, want KindInvalidSize", gerr.Kind)
	}
	if !strings.Contains(gerr.Error(), "invalid size") {
		t.Fatalf("Error() = %q, want it to mention 'invalid size'", gerr.Error())
	}
}
