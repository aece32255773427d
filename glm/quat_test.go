package glm_test

import (
	"testing"

	"github.com/soypat/glctx/glm"
)

func TestQuatIdentRotateIsNoop(t *testing.T) {
	q := glm.QuatIdent()
	v := glm.Vec3{X: 1, Y: 2, Z: 3}
	got := q.Rotate(v)
	if !glm.EqualElem(got, v, 1e-5) {
		t.Fatalf("identity quaternion rotated %v, want unchanged %v", got, v)
	}
}

func TestRotationQuatPreservesLength(t *testing.T) {
	axis := glm.Vec3{X: 0, Y: 1, Z: 0}
	q := glm.RotationQuat(1.0, axis)
	v := glm.Vec3{X: 1, Y: 0, Z: 0}
	got := q.Rotate(v)
	if d := glm.Norm(got) - glm.Norm(v); d > 1e-4 || d < -1e-4 {
		t.Fatalf("rotation changed vector length: %v vs %v", glm.Norm(got), glm.Norm(v))
	}
}

func TestQuatConjugateInverseOfUnit(t *testing.T) {
	q := glm.RotationQuat(0.7, glm.Vec3{X: 1, Y: 1, Z: 0}).Unit()
	inv := q.Inverse()
	conj := q.Conjugate()
	if !inv.ApproxEqualThreshold(conj, 1e-4) {
		t.Fatalf("Inverse() = %v, want ~Conjugate() %v for a unit quaternion", inv, conj)
	}
}

func TestQuatMulIdentity(t *testing.T) {
	q := glm.RotationQuat(0.4, glm.Vec3{X: 0, Y: 0, Z: 1})
	id := glm.QuatIdent()
	got := q.Mul(id)
	if !q.ApproxEqualThreshold(got, 1e-5) {
		t.Fatalf("q.Mul(identity) = %v, want %v", got, q)
	}
}

func TestQuatSlerpEndpoints(t *testing.T) {
	a := glm.QuatIdent()
	b := glm.RotationQuat(1.5, glm.Vec3{X: 0, Y: 0, Z: 1})
	got0 := glm.QuatSlerp(a, b, 0)
	got1 := glm.QuatSlerp(a, b, 1)
	if !got0.ApproxEqualThreshold(a, 1e-4) {
		t.Fatalf("Slerp(a,b,0) = %v, want %v", got0, a)
	}
	if !got1.ApproxEqualThreshold(b, 1e-4) {
		t.Fatalf("Slerp(a,b,1) = %v, want %v", got1, b)
	}
}

func TestAnglesToQuatRoundTripMat3(t *testing.T) {
	q := glm.AnglesToQuat(0.3, -0.2, 0.1, glm.XYZ)
	m := q.RotationMat3()
	v := glm.Vec3{X: 1, Y: 0, Z: 0}
	viaQuat := q.Rotate(v)
	viaMat := glm.MulMatVec(m, v)
	if !glm.EqualElem(viaQuat, viaMat, 1e-4) {
		t.Fatalf("quaternion and its RotationMat3() disagree: %v vs %v", viaQuat, viaMat)
	}
}

func TestRotationBetweenVecsQuat(t *testing.T) {
	start := glm.Vec3{X: 1, Y: 0, Z: 0}
	dest := glm.Vec3{X: 0, Y: 1, Z: 0}
	q := glm.RotationBetweenVecsQuat(start, dest)
	got := q.Rotate(start)
	if !glm.EqualElem(got, dest, 1e-4) {
		t.Fatalf("RotationBetweenVecsQuat rotated start to %v, want %v", got, dest)
	}
}
