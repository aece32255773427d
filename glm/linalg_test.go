package glm_test

import (
	"testing"

	"github.com/soypat/glctx/glm"
)

func TestMat3SVDReconstructsOriginal(t *testing.T) {
	a := glm.NewMat3([]float32{
		2, 0, 0,
		0, 3, 0,
		0, 0, 1,
	})
	U, S, V := a.SVD()
	got := glm.MulMat3(glm.MulMat3(U, S), V.Transpose())
	if !glm.EqualMat3(got, a, 1e-3) {
		t.Fatalf("U*S*V^T = %v, want %v", got, a)
	}
}

func TestMat3QRDecompositionReconstructsOriginal(t *testing.T) {
	a := glm.NewMat3([]float32{
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	})
	q, r := a.QRDecomposition()
	got := glm.MulMat3(q, r)
	if !glm.EqualMat3(got, a, 1e-3) {
		t.Fatalf("Q*R = %v, want %v", got, a)
	}
}

func TestMat4ToQuatRoundTrip(t *testing.T) {
	axis := glm.Vec3{X: 0, Y: 1, Z: 0}
	q := glm.RotationQuat(0.9, axis).Unit()
	m := q.RotationMat3().AsMat4()
	got := glm.Mat4ToQuat(m)
	if !got.OrientationEqualThreshold(q, 1e-3) {
		t.Fatalf("Mat4ToQuat(q.RotationMat3()) = %v, want orientation of %v", got, q)
	}
}
