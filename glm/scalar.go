package glm

import math "github.com/chewxy/math32"

// sign returns -1, 0, or 1 for negative, zero or positive x, matching
// OpenGL's "sign" GLSL builtin.
func sign(x float32) float32 {
	if x == 0 {
		return 0
	}
	return math.Copysign(1, x)
}

// clamp returns v clamped to [lo, hi].
func clamp(v, lo, hi float32) float32 {
	return math.Min(hi, math.Max(v, lo))
}

// interp linearly interpolates between x and y for a in [0,1]; GLSL "mix".
func interp(x, y, a float32) float32 {
	return x*(1-a) + y*a
}

// smoothStep performs cubic hermite interpolation between edge0 and edge1.
func smoothStep(edge0, edge1, x float32) float32 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// equalWithinAbs reports whether a and b differ by no more than tol.
func equalWithinAbs(a, b, tol float32) bool {
	return math.Abs(a-b) <= tol
}
