package ln

import "testing"

func TestConeRadiusAtInterpolatesLinearly(t *testing.T) {
	c := NewCone(2, 0, 4)
	if got := c.radiusAt(0); got != 2 {
		t.Fatalf("radiusAt(Z0) = %v, want 2", got)
	}
	if got := c.radiusAt(4); got != 0 {
		t.Fatalf("radiusAt(Z1) = %v, want 0 (apex)", got)
	}
	if got := c.radiusAt(2); got != 1 {
		t.Fatalf("radiusAt(midpoint) = %v, want 1", got)
	}
}

func TestConeContainsApex(t *testing.T) {
	c := NewCone(2, 0, 4)
	if !c.Contains(V(0, 0, 4), 0) {
		t.Fatal("cone should contain its own apex")
	}
	if c.Contains(V(1.9, 0, 4), 0) {
		t.Fatal("cone should not contain a point off-axis at the apex")
	}
}

func TestConeIntersectThroughBase(t *testing.T) {
	c := NewCone(1, 0, 2)
	r := Ray{Origin: V(-5, 0, 0), Direction: V(1, 0, 0)}
	hit := c.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected ray through cone base to hit")
	}
}
