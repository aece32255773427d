//go:build !tinygo && cgo

package glctx

import "golang.org/x/exp/constraints"

// zeroDefault returns def when got is the zero value, otherwise got. Used
// for "0 means use the default" config fields (texture and sampler
// filters, the window's OpenGL profile).
func zeroDefault[T constraints.Integer | constraints.Float](got, def T) T {
	if got == 0 {
		return def
	}
	return got
}
