package ln

import "testing"

func tetrahedronTriangles() []Triangle {
	a := V(0, 0, 0)
	b := V(1, 0, 0)
	c := V(0, 1, 0)
	d := V(0, 0, 1)
	return []Triangle{
		*NewTriangle(a, c, b),
		*NewTriangle(a, b, d),
		*NewTriangle(b, c, d),
		*NewTriangle(c, a, d),
	}
}

func TestNewMeshEmptyReturnsError(t *testing.T) {
	if _, err := NewMesh(nil); err != ErrEmptyMesh {
		t.Fatalf("NewMesh(nil) error = %v, want ErrEmptyMesh", err)
	}
}

func TestMeshPathsOneEdgePerSilhouetteEdge(t *testing.T) {
	m, err := NewMesh(tetrahedronTriangles())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	paths := m.Paths(RenderArgs{})
	if len(paths.Paths) != 6 {
		t.Fatalf("tetrahedron has 6 edges, got %d paths", len(paths.Paths))
	}
}

func TestMeshVertexMergeDedupesSharedVertices(t *testing.T) {
	a := V(0, 0, 0)
	b := V(1, 0, 0)
	c := V(0, 1, 0)
	// a2 sits within meshMergeEPS of a and should merge to the same index.
	a2 := V(meshMergeEPS/10, 0, 0)
	d := V(1, 1, 0)

	m, err := NewMesh([]Triangle{
		*NewTriangle(a, b, c),
		*NewTriangle(b, d, a2),
	})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if len(m.vertices) != 4 {
		t.Fatalf("expected 4 distinct vertices after merge, got %d", len(m.vertices))
	}
}

func TestMeshCompileAndIntersect(t *testing.T) {
	m, err := NewMesh(tetrahedronTriangles())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	m.Compile()

	r := Ray{Origin: V(0.1, 0.1, 5), Direction: V(0, 0, -1)}
	hit := m.Intersect(r)
	if !hit.Ok() {
		t.Fatal("expected ray through tetrahedron footprint to hit")
	}
}

func TestMeshIntersectWithoutCompileIsNoHit(t *testing.T) {
	m, err := NewMesh(tetrahedronTriangles())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	r := Ray{Origin: V(0.1, 0.1, 5), Direction: V(0, 0, -1)}
	if m.Intersect(r).Ok() {
		t.Fatal("expected NoHit before Compile builds the BVH")
	}
}

func TestMeshUnitCubeFitsUnitBox(t *testing.T) {
	m, err := NewMesh(tetrahedronTriangles())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	u := m.UnitCube()
	box := u.BoundingBox()
	const eps = 1e-9
	// UnitCube fits the mesh into a unit box and then centers it at the
	// origin, so the result lies within [-0.5, 0.5]^3.
	if box.Min.X < -0.5-eps || box.Min.Y < -0.5-eps || box.Min.Z < -0.5-eps {
		t.Fatalf("UnitCube box min should not be below -0.5, got %v", box.Min)
	}
	if box.Max.X > 0.5+eps || box.Max.Y > 0.5+eps || box.Max.Z > 0.5+eps {
		t.Fatalf("UnitCube box max should not exceed 0.5, got %v", box.Max)
	}
}

func TestMeshMoveToTranslatesAnchor(t *testing.T) {
	m, err := NewMesh(tetrahedronTriangles())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	moved := m.MoveTo(V(10, 10, 10), V(0, 0, 0))
	box := moved.BoundingBox()
	const eps = 1e-9
	if box.Min.Sub(V(10, 10, 10)).Length() > eps {
		t.Fatalf("MoveTo with anchor (0,0,0) should place box.Min at target, got %v", box.Min)
	}
}

func TestMeshVoxelizeProducesCubes(t *testing.T) {
	m, err := NewMesh(tetrahedronTriangles())
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	cubes := m.Voxelize(0.25)
	if len(cubes) == 0 {
		t.Fatal("expected at least one voxel cube for a non-degenerate mesh")
	}
}
