package ln

import "testing"

func TestSceneRenderEmptyProducesNoPaths(t *testing.T) {
	scene := NewScene()
	paths := scene.Render(V(3, 3, 3))
	if len(paths.Paths) != 0 {
		t.Fatalf("empty scene should render no paths, got %d", len(paths.Paths))
	}
}

func TestSceneRenderSingleCubeProducesBoundedPaths(t *testing.T) {
	scene := NewScene(WithShapes(NewCube(V(-1, -1, -1), V(1, 1, 1))))
	paths := scene.Render(V(3, 3, 3), WithSize(64, 64))
	if len(paths.Paths) == 0 {
		t.Fatal("expected a visible cube to render at least one path")
	}
	for _, p := range paths.Paths {
		for _, v := range p {
			if v.X < -1 || v.X > 65 || v.Y < -1 || v.Y > 65 {
				t.Fatalf("path vertex %v falls well outside the 64x64 viewport", v)
			}
		}
	}
}

func TestSceneRenderFullyOccludedSphereAddsNoPaths(t *testing.T) {
	eye := V(0, 0, 10)
	occluder := NewCube(V(-2, -2, -2), V(2, 2, 2))
	hiddenSphere := NewSphere(V(0, 0, -5), 0.5)

	occluderOnly := NewScene(WithShapes(occluder))
	pathsOccluderOnly := occluderOnly.Render(eye, WithSize(128, 128))

	occluderAndSphere := NewScene(WithShapes(occluder, hiddenSphere))
	pathsWithHiddenSphere := occluderAndSphere.Render(eye, WithSize(128, 128))

	if len(pathsWithHiddenSphere.Paths) != len(pathsOccluderOnly.Paths) {
		t.Fatalf("a sphere fully hidden behind an opaque occluder should contribute no extra paths: occluder alone %d, occluder+sphere %d",
			len(pathsOccluderOnly.Paths), len(pathsWithHiddenSphere.Paths))
	}
}

func TestSceneAddAppendsShape(t *testing.T) {
	scene := NewScene()
	scene.Add(NewSphere(V(0, 0, 0), 1))
	if len(scene.shapes) != 1 {
		t.Fatalf("Add should append to scene.shapes, got %d shapes", len(scene.shapes))
	}
}
