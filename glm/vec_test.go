package glm_test

import (
	"testing"

	"github.com/soypat/glctx/glm"
)

func TestVecAddSub(t *testing.T) {
	a := glm.Vec3{X: 1, Y: 2, Z: 3}
	b := glm.Vec3{X: 4, Y: -1, Z: 0.5}
	got := glm.Add(a, b)
	want := glm.Vec3{X: 5, Y: 1, Z: 3.5}
	if !glm.EqualElem(got, want, 1e-6) {
		t.Fatalf("Add(%v,%v) = %v, want %v", a, b, got, want)
	}
	back := glm.Sub(got, b)
	if !glm.EqualElem(back, a, 1e-6) {
		t.Fatalf("Sub(Add(a,b),b) = %v, want %v", back, a)
	}
}

func TestVecDotCross(t *testing.T) {
	x := glm.Vec3{X: 1, Y: 0, Z: 0}
	y := glm.Vec3{X: 0, Y: 1, Z: 0}
	if got := glm.Dot(x, y); got != 0 {
		t.Fatalf("Dot(x,y) = %v, want 0", got)
	}
	z := glm.Cross(x, y)
	want := glm.Vec3{X: 0, Y: 0, Z: 1}
	if !glm.EqualElem(z, want, 1e-6) {
		t.Fatalf("Cross(x,y) = %v, want %v", z, want)
	}
}

func TestVecNormUnit(t *testing.T) {
	v := glm.Vec3{X: 3, Y: 4, Z: 0}
	if got := glm.Norm(v); got != 5 {
		t.Fatalf("Norm(%v) = %v, want 5", v, got)
	}
	u := glm.Unit(v)
	if got := glm.Norm(u); got < 0.999999 || got > 1.000001 {
		t.Fatalf("Norm(Unit(v)) = %v, want ~1", got)
	}
}

func TestVecMinMaxElem(t *testing.T) {
	a := glm.Vec3{X: 1, Y: 5, Z: -3}
	b := glm.Vec3{X: 4, Y: 2, Z: -1}
	min := glm.MinElem(a, b)
	max := glm.MaxElem(a, b)
	wantMin := glm.Vec3{X: 1, Y: 2, Z: -3}
	wantMax := glm.Vec3{X: 4, Y: 5, Z: -1}
	if !glm.EqualElem(min, wantMin, 1e-6) {
		t.Fatalf("MinElem = %v, want %v", min, wantMin)
	}
	if !glm.EqualElem(max, wantMax, 1e-6) {
		t.Fatalf("MaxElem = %v, want %v", max, wantMax)
	}
}

func TestVecClampInterp(t *testing.T) {
	v := glm.Vec3{X: -1, Y: 0.5, Z: 2}
	lo := glm.Vec3{X: 0, Y: 0, Z: 0}
	hi := glm.Vec3{X: 1, Y: 1, Z: 1}
	got := glm.ClampElem(v, lo, hi)
	want := glm.Vec3{X: 0, Y: 0.5, Z: 1}
	if !glm.EqualElem(got, want, 1e-6) {
		t.Fatalf("ClampElem = %v, want %v", got, want)
	}
	mid := glm.InterpElem(lo, hi, glm.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	wantMid := glm.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	if !glm.EqualElem(mid, wantMid, 1e-6) {
		t.Fatalf("InterpElem = %v, want %v", mid, wantMid)
	}
}

func TestVecArrayRoundtrip(t *testing.T) {
	v := glm.Vec3{X: 1, Y: 2, Z: 3}
	arr := v.Array()
	want := [3]float32{1, 2, 3}
	if arr != want {
		t.Fatalf("Array() = %v, want %v", arr, want)
	}
}
