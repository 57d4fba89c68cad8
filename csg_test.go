package ln

import "testing"

func TestNewIntersectionNoChildrenError(t *testing.T) {
	if _, err := NewIntersection(); err != ErrNoChildren {
		t.Fatalf("NewIntersection() error = %v, want ErrNoChildren", err)
	}
}

func TestNewDifferenceNoBaseError(t *testing.T) {
	if _, err := NewDifference(nil); err != ErrNoChildren {
		t.Fatalf("NewDifference(nil) error = %v, want ErrNoChildren", err)
	}
}

func TestIntersectionContainsIsAND(t *testing.T) {
	a := NewSphere(V(0, 0, 0), 1)
	b := NewSphere(V(0.5, 0, 0), 1)
	inter, err := NewIntersection(a, b)
	if err != nil {
		t.Fatalf("NewIntersection: %v", err)
	}

	// (0.25,0,0) lies inside both spheres.
	if !inter.Contains(V(0.25, 0, 0), 0) {
		t.Fatal("expected point inside both spheres to be contained in the intersection")
	}
	// (-0.9,0,0) lies inside a but outside b.
	if inter.Contains(V(-0.9, 0, 0), 0) {
		t.Fatal("expected point inside only one sphere to be excluded from the intersection")
	}
}

func TestDifferenceContainsIsBaseMinusSubtract(t *testing.T) {
	base := NewSphere(V(0, 0, 0), 1)
	hole := NewCylinder(0.5, -2, 2)
	diff, err := NewDifference(base, hole)
	if err != nil {
		t.Fatalf("NewDifference: %v", err)
	}

	// On the sphere's axis, inside the cylindrical hole: excluded.
	if diff.Contains(V(0, 0, 0), 0) {
		t.Fatal("point inside the subtracted cylinder should not be contained in the difference")
	}
	// Off-axis but still inside the sphere and outside the hole: included.
	if !diff.Contains(V(0.8, 0, 0), 0) {
		t.Fatal("point inside base and outside the hole should be contained in the difference")
	}
	// Outside the base entirely: excluded.
	if diff.Contains(V(5, 0, 0), 0) {
		t.Fatal("point outside the base sphere should not be contained in the difference")
	}
}

func TestIntersectionIntersectFindsBoundary(t *testing.T) {
	a := NewSphere(V(0, 0, 0), 1)
	b := NewSphere(V(0.5, 0, 0), 1)
	inter, err := NewIntersection(a, b)
	if err != nil {
		t.Fatalf("NewIntersection: %v", err)
	}

	r := Ray{Origin: V(-5, 0, 0), Direction: V(1, 0, 0)}
	hit := inter.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected ray through the lens-shaped intersection to hit")
	}
	p := r.Position(hit.T)
	if !inter.Contains(p, 1e-2) {
		t.Fatalf("intersection hit point %v should itself be inside the intersection solid", p)
	}
}

func TestDifferenceIntersectSkipsSubtractedRegion(t *testing.T) {
	base := NewSphere(V(0, 0, 0), 1)
	hole := NewCylinder(0.5, -2, 2)
	diff, err := NewDifference(base, hole)
	if err != nil {
		t.Fatalf("NewDifference: %v", err)
	}

	r := Ray{Origin: V(-5, 0, 0), Direction: V(1, 0, 0)}
	hit := diff.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected ray through the base sphere to hit its surface")
	}
	p := r.Position(hit.T)
	if hole.Contains(p, 1e-3) {
		t.Fatalf("first hit of the difference should not lie inside the subtracted cylinder, got %v", p)
	}
}

func TestIntersectionBoundingBoxIsOverlap(t *testing.T) {
	a := NewCube(V(0, 0, 0), V(2, 2, 2))
	b := NewCube(V(1, 1, 1), V(3, 3, 3))
	inter, err := NewIntersection(a, b)
	if err != nil {
		t.Fatalf("NewIntersection: %v", err)
	}
	box := inter.BoundingBox()
	if box.Min != (Vector{X: 1, Y: 1, Z: 1}) || box.Max != (Vector{X: 2, Y: 2, Z: 2}) {
		t.Fatalf("expected overlap box [1,1,1]-[2,2,2], got %v-%v", box.Min, box.Max)
	}
}
