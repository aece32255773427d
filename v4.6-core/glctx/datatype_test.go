//go:build !tinygo && cgo

package glctx_test

import (
	"testing"

	"github.com/soypat/glctx/v4.6-core/glctx"
)

func TestLookupDType(t *testing.T) {
	tests := []struct {
		code        string
		elementSize int
		isDepth     bool
	}{
		{"f1", 1, false},
		{"f4", 4, false},
		{"u2", 2, false},
		{"i4", 4, false},
		{"d3", 4, true},
	}
	for _, tc := range tests {
		dt, err := glctx.LookupDType(tc.code)
		if err != nil {
			t.Fatalf("LookupDType(%q): %v", tc.code, err)
		}
		if dt.ElementSize != tc.elementSize {
			t.Errorf("LookupDType(%q).ElementSize = %d, want %d", tc.code, dt.ElementSize, tc.elementSize)
		}
		if dt.IsDepth() != tc.isDepth {
			t.Errorf("LookupDType(%q).IsDepth() = %v, want %v", tc.code, dt.IsDepth(), tc.isDepth)
		}
	}
}

func TestLookupDTypeUnknown(t *testing.T) {
	_, err := glctx.LookupDType("not-a-real-code")
	if err == nil {
		t.Fatal("expected error for unknown dtype code")
	}
}
