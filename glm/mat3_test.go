package glm_test

import (
	"testing"

	"github.com/soypat/glctx/glm"
)

func TestMat3IdentityMul(t *testing.T) {
	id := glm.IdentityMat3()
	m := glm.NewMat3([]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	got := glm.MulMat3(id, m)
	if !glm.EqualMat3(got, m, 1e-6) {
		t.Fatalf("MulMat3(identity, m) = %v, want %v", got, m)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := glm.NewMat3([]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	tt := m.Transpose().Transpose()
	if !glm.EqualMat3(tt, m, 1e-6) {
		t.Fatalf("double transpose = %v, want %v", tt, m)
	}
}

func TestMat3Inverse(t *testing.T) {
	m := glm.NewMat3([]float32{
		2, 0, 0,
		0, 2, 0,
		0, 0, 2,
	})
	inv := m.Inverse()
	got := glm.MulMat3(m, inv)
	id := glm.IdentityMat3()
	if !glm.EqualMat3(got, id, 1e-5) {
		t.Fatalf("m * m.Inverse() = %v, want identity", got)
	}
}

func TestMat3Determinant(t *testing.T) {
	id := glm.IdentityMat3()
	if got := id.Determinant(); got != 1 {
		t.Fatalf("Determinant(identity) = %v, want 1", got)
	}
}

func TestMat3MulMatVec(t *testing.T) {
	id := glm.IdentityMat3()
	v := glm.Vec3{X: 1, Y: 2, Z: 3}
	got := glm.MulMatVec(id, v)
	if !glm.EqualElem(got, v, 1e-6) {
		t.Fatalf("MulMatVec(identity, v) = %v, want %v", got, v)
	}
}

func TestMat3Array(t *testing.T) {
	m := glm.NewMat3([]float32{1, 2, 3, 4, 5, 6, 7, 8, 9})
	arr := m.Array()
	want := [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if arr != want {
		t.Fatalf("Array() = %v, want %v", arr, want)
	}
}
