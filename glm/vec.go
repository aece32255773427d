package glm

import (
	math "github.com/chewxy/math32"
)

// Vec3 is a 3D vector, laid out to match OpenGL's std140/std430 vec3 alignment
// (padded to 16 bytes) so it can be written directly into a mapped buffer.
type Vec3 struct {
	X, Y, Z float32
	_       float32 // Padding for comfortable use with OpenGL. std430 still not fully supported on modern GPUs.
}

// Max returns the maximum component of a.
func (a Vec3) Max() float32 {
	return math.Max(a.X, math.Max(a.Y, a.Z))
}

// Min returns the minimum component of a.
func (a Vec3) Min() float32 {
	return math.Min(a.X, math.Min(a.Y, a.Z))
}

// Array returns the ordered components of Vec3 in a 3 element array [a.x,a.y,a.z].
func (a Vec3) Array() [3]float32 {
	return [3]float32{a.X, a.Y, a.Z}
}

// AllNonzero returns true if all elements of a are nonzero.
func (a Vec3) AllNonzero() bool {
	return a.X != 0 && a.Y != 0 && a.Z != 0
}

// Add returns the vector sum of p and q.
func Add(p, q Vec3) Vec3 {
	return Vec3{
		X: p.X + q.X,
		Y: p.Y + q.Y,
		Z: p.Z + q.Z,
	}
}

// AddScalar adds f to all of v's components and returns the result.
func AddScalar(f float32, v Vec3) Vec3 {
	return Vec3{
		X: v.X + f,
		Y: v.Y + f,
		Z: v.Z + f,
	}
}

// Sub returns the vector sum of p and -q.
func Sub(p, q Vec3) Vec3 {
	return Vec3{
		X: p.X - q.X,
		Y: p.Y - q.Y,
		Z: p.Z - q.Z,
	}
}

// Scale returns the vector p scaled by f.
func Scale(f float32, p Vec3) Vec3 {
	return Vec3{
		X: f * p.X,
		Y: f * p.Y,
		Z: f * p.Z,
	}
}

// Dot returns the dot product p·q.
func Dot(p, q Vec3) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p×q.
func Cross(p, q Vec3) Vec3 {
	return Vec3{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X, 0,
	}
}

// Norm returns the Euclidean norm of p
//
//	|p| = sqrt(p_x^2 + p_y^2 + p_z^2).
func Norm(p Vec3) float32 {
	return math.Hypot(p.X, math.Hypot(p.Y, p.Z))
}

// Norm2 returns the Euclidean squared norm of p
//
//	|p|^2 = p_x^2 + p_y^2 + p_z^2.
func Norm2(p Vec3) float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// Unit returns the unit vector colinear to p.
// Unit returns {NaN,NaN,NaN} for the zero vector.
func Unit(p Vec3) Vec3 {
	if p.X == 0 && p.Y == 0 && p.Z == 0 {
		return Vec3{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	return Scale(1/Norm(p), p)
}

// Cos returns the cosine of the opening angle between p and q.
func Cos(p, q Vec3) float32 {
	return Dot(p, q) / (Norm(p) * Norm(q))
}

// Divergence returns the divergence of the vector field at the point p,
// approximated using finite differences with the given step sizes.
func Divergence(p, step Vec3, field func(Vec3) Vec3) float32 {
	sx := Vec3{X: step.X}
	divx := (field(Add(p, sx)).X - field(Sub(p, sx)).X) / step.X
	sy := Vec3{Y: step.Y}
	divy := (field(Add(p, sy)).Y - field(Sub(p, sy)).Y) / step.Y
	sz := Vec3{Z: step.Z}
	divz := (field(Add(p, sz)).Z - field(Sub(p, sz)).Z) / step.Z
	return 0.5 * (divx + divy + divz)
}

// Gradient returns the gradient of the scalar field at the point p,
// approximated using finite differences with the given step sizes.
func Gradient(p, step Vec3, field func(Vec3) float32) Vec3 {
	dx := Vec3{X: step.X}
	dy := Vec3{Y: step.Y}
	dz := Vec3{Z: step.Z}
	return Vec3{
		X: (field(Add(p, dx)) - field(Sub(p, dx))) / (2 * step.X),
		Y: (field(Add(p, dy)) - field(Sub(p, dy))) / (2 * step.Y),
		Z: (field(Add(p, dz)) - field(Sub(p, dz))) / (2 * step.Z),
	}
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b Vec3) Vec3 {
	return Vec3{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		Z: math.Min(a.Z, b.Z),
	}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b Vec3) Vec3 {
	return Vec3{
		X: math.Max(a.X, b.X),
		Y: math.Max(a.Y, b.Y),
		Z: math.Max(a.Z, b.Z),
	}
}

// AbsElem returns the vector with components set to their absolute value.
func AbsElem(a Vec3) Vec3 {
	return Vec3{
		X: math.Abs(a.X),
		Y: math.Abs(a.Y),
		Z: math.Abs(a.Z),
	}
}

// MulElem returns the Hadamard product between vectors a and b.
//
//	v = {a.X*b.X, a.Y*b.Y, a.Z*b.Z}
func MulElem(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X * b.X,
		Y: a.Y * b.Y,
		Z: a.Z * b.Z,
	}
}

// DivElem returns the Hadamard product between vector a
// and the inverse components of vector b.
//
//	v = {a.X/b.X, a.Y/b.Y, a.Z/b.Z}
func DivElem(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X / b.X,
		Y: a.Y / b.Y,
		Z: a.Z / b.Z,
	}
}

// EqualElem checks equality between vector elements to within a tolerance.
func EqualElem(a, b Vec3, tol float32) bool {
	return equalWithinAbs(a.X, b.X, tol) &&
		equalWithinAbs(a.Y, b.Y, tol) &&
		equalWithinAbs(a.Z, b.Z, tol)
}

// elem returns a vector with all elements of magnitude length.
func elem(magnitude float32) Vec3 {
	return Vec3{X: magnitude, Y: magnitude, Z: magnitude}
}

// RoundElem rounds the individual elements of a vector.
func RoundElem(a Vec3) Vec3 {
	return Vec3{X: math.Round(a.X), Y: math.Round(a.Y), Z: math.Round(a.Z)}
}

// CeilElem returns a with Ceil applied to each component.
func CeilElem(a Vec3) Vec3 {
	return Vec3{X: math.Ceil(a.X), Y: math.Ceil(a.Y), Z: math.Ceil(a.Z)}
}

// FloorElem returns a with Floor applied to each component.
func FloorElem(a Vec3) Vec3 {
	return Vec3{X: math.Floor(a.X), Y: math.Floor(a.Y), Z: math.Floor(a.Z)}
}

// SignElem returns sign function applied to each individual component of a. If a component is zero then zero is returned.
func SignElem(a Vec3) Vec3 {
	return Vec3{X: sign(a.X), Y: sign(a.Y), Z: sign(a.Z)}
}

// SinElem returns sin(a) component-wise.
func SinElem(a Vec3) Vec3 {
	return Vec3{X: math.Sin(a.X), Y: math.Sin(a.Y), Z: math.Sin(a.Z)}
}

// CosElem returns cos(a) component-wise.
func CosElem(a Vec3) Vec3 {
	return Vec3{X: math.Cos(a.X), Y: math.Cos(a.Y), Z: math.Cos(a.Z)}
}

// SincosElem returns (sin(a), cos(a)). Is more efficient than calling both SinElem and CosElem.
func SincosElem(a Vec3) (s, c Vec3) {
	s.X, c.X = math.Sincos(a.X)
	s.Y, c.Y = math.Sincos(a.Y)
	s.Z, c.Z = math.Sincos(a.Z)
	return s, c
}

// ClampElem returns v with its elements clamped to Min and Max's components.
func ClampElem(v, Min, Max Vec3) Vec3 {
	return Vec3{X: clamp(v.X, Min.X, Max.X), Y: clamp(v.Y, Min.Y, Max.Y), Z: clamp(v.Z, Min.Z, Max.Z)}
}

// InterpElem performs a linear interpolation between x and y's elements, mapping with a's values in interval [0,1].
// This function is also known as "mix" in OpenGL.
func InterpElem(x, y, a Vec3) Vec3 {
	return Vec3{X: interp(x.X, y.X, a.X), Y: interp(x.Y, y.Y, a.Y), Z: interp(x.Z, y.Z, a.Z)}
}

// SmoothStepElem performs element-wise smooth cubic hermite
// interpolation between 0 and 1 when e0 < x < e1.
func SmoothStepElem(e0, e1, x Vec3) Vec3 {
	return Vec3{X: smoothStep(e0.X, e1.X, x.X), Y: smoothStep(e0.Y, e1.Y, x.Y), Z: smoothStep(e0.Z, e1.Z, x.Z)}
}
