package glm_test

import (
	"testing"

	"github.com/soypat/glctx/glm"
)

func TestBoxSizeCenterVolume(t *testing.T) {
	b := glm.NewBox(0, 0, 0, 2, 4, 6)
	size := b.Size()
	want := glm.Vec3{X: 2, Y: 4, Z: 6}
	if !glm.EqualElem(size, want, 1e-6) {
		t.Fatalf("Size() = %v, want %v", size, want)
	}
	center := b.Center()
	wantCenter := glm.Vec3{X: 1, Y: 2, Z: 3}
	if !glm.EqualElem(center, wantCenter, 1e-6) {
		t.Fatalf("Center() = %v, want %v", center, wantCenter)
	}
	if got := b.Volume(); got != 48 {
		t.Fatalf("Volume() = %v, want 48", got)
	}
}

func TestBoxNewBoxSwapsSides(t *testing.T) {
	b := glm.NewBox(2, 2, 2, 0, 0, 0)
	if b.Empty() {
		t.Fatal("box built from swapped corners should not be empty")
	}
	if b.Min.X != 0 || b.Max.X != 2 {
		t.Fatalf("NewBox did not reorder Min/Max: %+v", b)
	}
}

func TestBoxContains(t *testing.T) {
	b := glm.NewBox(0, 0, 0, 10, 10, 10)
	if !b.Contains(glm.Vec3{X: 5, Y: 5, Z: 5}) {
		t.Fatal("box should contain its center point")
	}
	if b.Contains(glm.Vec3{X: 20, Y: 5, Z: 5}) {
		t.Fatal("box should not contain a point outside its bounds")
	}
}

func TestBoxUnionIntersect(t *testing.T) {
	a := glm.NewBox(0, 0, 0, 1, 1, 1)
	b := glm.NewBox(0.5, 0.5, 0.5, 2, 2, 2)
	u := a.Union(b)
	if !glm.EqualElem(u.Min, glm.Vec3{X: 0, Y: 0, Z: 0}, 1e-6) || !glm.EqualElem(u.Max, glm.Vec3{X: 2, Y: 2, Z: 2}, 1e-6) {
		t.Fatalf("Union = %+v", u)
	}
	i := a.Intersect(b)
	if i.Empty() {
		t.Fatal("overlapping boxes should intersect")
	}
}

func TestBoxBoundingRadius(t *testing.T) {
	b := glm.NewBox(-1, -1, -1, 1, 1, 1)
	got := b.BoundingRadius()
	want := glm.Norm(glm.Vec3{X: 1, Y: 1, Z: 1})
	if d := got - want; d > 1e-6 || d < -1e-6 {
		t.Fatalf("BoundingRadius() = %v, want %v", got, want)
	}
}

func TestBoxVerticesCount(t *testing.T) {
	b := glm.NewBox(0, 0, 0, 1, 1, 1)
	v := b.Vertices()
	if len(v) != 8 {
		t.Fatalf("Vertices() returned %d points, want 8", len(v))
	}
}
