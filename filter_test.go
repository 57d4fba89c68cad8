package ln

import "testing"

func TestClipFilterAcceptsOnscreenPoint(t *testing.T) {
	eye := V(0, 0, 5)
	view := LookAt(eye, V(0, 0, 0), V(0, 1, 0))
	proj := Perspective(50, 1, 0.1, 10)
	viewport := Viewport(100, 100)
	screenMat := viewport.Mul(proj).Mul(view)

	f := NewClipFilter(screenMat, 100, 100)
	_, ok := f.Filter(V(0, 0, 0))
	if !ok {
		t.Fatal("expected a point at the look-at center to pass the clip filter")
	}
}

func TestClipFilterRejectsBehindEye(t *testing.T) {
	eye := V(0, 0, 5)
	view := LookAt(eye, V(0, 0, 0), V(0, 1, 0))
	proj := Perspective(50, 1, 0.1, 10)
	viewport := Viewport(100, 100)
	screenMat := viewport.Mul(proj).Mul(view)

	f := NewClipFilter(screenMat, 100, 100)
	_, ok := f.Filter(V(0, 0, 100))
	if ok {
		t.Fatal("expected a point behind the eye to be rejected by the clip filter")
	}
}

func TestClipFilterRejectsOffscreenPoint(t *testing.T) {
	eye := V(0, 0, 5)
	view := LookAt(eye, V(0, 0, 0), V(0, 1, 0))
	proj := Perspective(50, 1, 0.1, 10)
	viewport := Viewport(100, 100)
	screenMat := viewport.Mul(proj).Mul(view)

	f := NewClipFilter(screenMat, 100, 100)
	_, ok := f.Filter(V(1000, 1000, 0))
	if ok {
		t.Fatal("expected a far off-axis point to fall outside the viewport and be rejected")
	}
}

func TestOccludeFilterPassesNilTree(t *testing.T) {
	f := NewOccludeFilter(V(0, 0, 5), nil)
	v, ok := f.Filter(V(0, 0, 0))
	if !ok || v != (V(0, 0, 0)) {
		t.Fatal("a nil tree should pass every point through unchanged")
	}
}

func TestOccludeFilterRejectsHiddenPoint(t *testing.T) {
	eye := V(0, 0, 10)
	occluder := NewCube(V(-2, -2, -2), V(2, 2, 2))
	occluder.Compile()
	tree := NewTree([]Shape{occluder})

	f := NewOccludeFilter(eye, tree)
	_, ok := f.Filter(V(0, 0, -5))
	if ok {
		t.Fatal("a point behind an opaque occluder should be rejected")
	}
}

func TestOccludeFilterAcceptsVisiblePoint(t *testing.T) {
	eye := V(0, 0, 10)
	occluder := NewCube(V(-2, -2, -2), V(2, 2, 2))
	occluder.Compile()
	tree := NewTree([]Shape{occluder})

	f := NewOccludeFilter(eye, tree)
	_, ok := f.Filter(V(0, 0, 9))
	if !ok {
		t.Fatal("a point between the eye and the occluder should be accepted as visible")
	}
}

func TestOccludeFilterAcceptsPointOnOccluderSurface(t *testing.T) {
	eye := V(0, 0, 10)
	occluder := NewCube(V(-2, -2, -2), V(2, 2, 2))
	occluder.Compile()
	tree := NewTree([]Shape{occluder})

	f := NewOccludeFilter(eye, tree)
	_, ok := f.Filter(V(0, 0, 2))
	if !ok {
		t.Fatal("a point lying on the occluder's own near surface should not self-occlude")
	}
}
