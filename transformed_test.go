package ln

import "testing"

func TestTransformedShapeContainsInWorldSpace(t *testing.T) {
	sphere := NewSphere(V(0, 0, 0), 1)
	ts := NewTransformedShape(sphere, Translate(V(10, 0, 0)))

	if !ts.Contains(V(10, 0, 0), 0) {
		t.Fatal("expected the translated sphere to contain its new world-space center")
	}
	if ts.Contains(V(0, 0, 0), 0) {
		t.Fatal("expected the translated sphere to no longer contain the origin")
	}
}

func TestTransformedShapeIntersectInWorldSpace(t *testing.T) {
	sphere := NewSphere(V(0, 0, 0), 1)
	ts := NewTransformedShape(sphere, Translate(V(10, 0, 0)))

	r := Ray{Origin: V(5, 0, 0), Direction: V(1, 0, 0)}
	hit := ts.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected a ray through the translated sphere to hit")
	}
}

func TestTransformedShapeBoundingBoxIsWorldSpace(t *testing.T) {
	cube := NewCube(V(-1, -1, -1), V(1, 1, 1))
	ts := NewTransformedShape(cube, Translate(V(5, 0, 0)))
	box := ts.BoundingBox()
	if !box.Contains(V(5, 0, 0)) {
		t.Fatalf("expected translated cube's bounding box %v to contain its new center", box)
	}
	if box.Contains(V(0, 0, 0)) {
		t.Fatalf("expected translated cube's bounding box %v to no longer contain the origin", box)
	}
}

func TestNewTransformedShapeFlattensNesting(t *testing.T) {
	sphere := NewSphere(V(0, 0, 0), 1)
	once := NewTransformedShape(sphere, Translate(V(1, 0, 0)))
	twice := NewTransformedShape(once, Translate(V(1, 0, 0)))

	if _, ok := twice.Shape.(*TransformedShape); ok {
		t.Fatal("wrapping a TransformedShape should flatten to the inner shape, not nest")
	}
	if twice.Shape != Shape(sphere) {
		t.Fatal("flattened TransformedShape should reference the original inner shape")
	}
	if !twice.Contains(V(2, 0, 0), 0) {
		t.Fatal("two stacked translations of 1 unit should contain the point at x=2")
	}
}
