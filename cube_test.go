package ln

import "testing"

func TestCubeContainsAndIntersect(t *testing.T) {
	c := NewCube(V(-1, -1, -1), V(1, 1, 1))

	if !c.Contains(V(0, 0, 0), 0) {
		t.Fatal("cube should contain its own center")
	}
	if c.Contains(V(5, 5, 5), 0) {
		t.Fatal("cube should not contain a far-away point")
	}

	r := Ray{Origin: V(-5, 0, 0), Direction: V(1, 0, 0)}
	hit := c.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected ray through cube center to hit")
	}
	if got := r.Position(hit.T); got.X < -1.001 || got.X > -0.999 {
		t.Fatalf("expected hit at x=-1, got %v", got)
	}
}

func TestCubeIntersectFromInside(t *testing.T) {
	c := NewCube(V(-1, -1, -1), V(1, 1, 1))
	r := Ray{Origin: V(0, 0, 0), Direction: V(1, 0, 0)}
	hit := c.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected ray from inside to exit through a face")
	}
	got := r.Position(hit.T)
	if got.X < 0.999 || got.X > 1.001 {
		t.Fatalf("expected exit at x=1, got %v", got)
	}
}

func TestCubePathsVanillaHas12Edges(t *testing.T) {
	c := NewCube(V(0, 0, 0), V(1, 1, 1))
	paths := c.Paths(RenderArgs{})
	if len(paths.Paths) != 12 {
		t.Fatalf("vanilla cube should render 12 edges, got %d", len(paths.Paths))
	}
}
