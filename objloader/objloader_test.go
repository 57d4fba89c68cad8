package objloader

import (
	"strings"
	"testing"
)

func TestDecodeSimpleTriangle(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	tris, err := Decode(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(tris))
	}
}

func TestDecodeFanTriangulatesNGon(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	tris, err := Decode(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("a quad face should fan-triangulate into 2 triangles, got %d", len(tris))
	}
}

func TestDecodeIgnoresCommentsAndUnknownRecords(t *testing.T) {
	obj := `
# a comment
v 0 0 0
vn 0 0 1
vt 0 0
v 1 0 0
v 0 1 0
g mygroup
f 1/1/1 2/2/1 3/3/1
`
	tris, err := Decode(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle ignoring vn/vt/g records, got %d", len(tris))
	}
}

func TestDecodeSkipsDegenerateFace(t *testing.T) {
	obj := `
v 0 0 0
v 0 0 0
v 1 0 0
f 1 2 3
`
	tris, err := Decode(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tris) != 0 {
		t.Fatalf("a degenerate (collinear/duplicate) face should be skipped, got %d triangles", len(tris))
	}
}

func TestDecodeSkipsOutOfRangeFace(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
f 1 2 99
`
	tris, err := Decode(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tris) != 0 {
		t.Fatalf("a face referencing an out-of-range index should be skipped, got %d triangles", len(tris))
	}
}

func TestDecodeNegativeRelativeIndices(t *testing.T) {
	obj := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	tris, err := Decode(strings.NewReader(obj))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle from negative relative indices, got %d", len(tris))
	}
}

func TestDecodeMalformedVertexErrors(t *testing.T) {
	obj := "v not a number 0\n"
	if _, err := Decode(strings.NewReader(obj)); err == nil {
		t.Fatal("expected an error decoding a malformed vertex record")
	}
}
