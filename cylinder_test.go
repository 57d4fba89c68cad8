package ln

import "testing"

func TestCylinderContainsAndIntersect(t *testing.T) {
	c := NewCylinder(1, 0, 2)
	if !c.Contains(V(0, 0, 1), 0) {
		t.Fatal("cylinder should contain a point on its axis within z range")
	}
	if c.Contains(V(0, 0, 3), 0) {
		t.Fatal("cylinder should not contain a point beyond its z range")
	}

	r := Ray{Origin: V(-5, 0, 1), Direction: V(1, 0, 0)}
	hit := c.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected ray through cylinder cross section to hit")
	}
}

func TestNewTransformedCylinderBoundsBothEndpoints(t *testing.T) {
	v0, v1 := V(0, 0, 0), V(0, 0, 4)
	ts := NewTransformedCylinder(v0, v1, 1, CylinderTextureOutline())
	box := ts.BoundingBox()
	if !box.Contains(v0) || !box.Contains(v1) {
		t.Fatalf("transformed cylinder bounding box %v should contain both endpoints %v, %v", box, v0, v1)
	}
}

func TestAxisAlignTransformIdentityWhenAlongUp(t *testing.T) {
	up := V(0, 0, 1)
	m := axisAlignTransform(V(0, 0, 5), up, V(1, 2, 3))
	got := m.MulPosition(V(0, 0, 0))
	want := V(1, 2, 3)
	if got != want {
		t.Fatalf("axisAlignTransform along up should reduce to a pure translation, got origin maps to %v, want %v", got, want)
	}
}
