package ln

// triangleEPS bounds the Moller-Trumbore determinant and ray-parameter
// degeneracy checks.
const triangleEPS = 1e-9

// Triangle is a flat triangular surface with no interior.
type Triangle struct {
	V1, V2, V3 Vector
}

// NewTriangle returns the triangle with the given vertices.
func NewTriangle(v1, v2, v3 Vector) *Triangle {
	return &Triangle{V1: v1, V2: v2, V3: v3}
}

// Compile is a no-op: Triangle has no lazy internal structure.
func (t *Triangle) Compile() {}

// BoundingBox returns the triangle's axis-aligned bounding box.
func (t *Triangle) BoundingBox() Box {
	return Box{
		Min: t.V1.Min(t.V2).Min(t.V3),
		Max: t.V1.Max(t.V2).Max(t.V3),
	}
}

// Contains always returns false: a triangle has no well-defined interior.
func (t *Triangle) Contains(v Vector, eps float64) bool {
	return false
}

// Intersect runs the Moller-Trumbore ray/triangle test.
func (t *Triangle) Intersect(r Ray) Hit {
	return IntersectTriangle(t.V1, t.V2, t.V3, r)
}

// IntersectTriangle runs the Moller-Trumbore ray/triangle test against the
// triangle (v1, v2, v3) directly, without requiring a Triangle value.
// Triangle.Intersect delegates to it.
func IntersectTriangle(v1, v2, v3 Vector, r Ray) Hit {
	e1 := v2.Sub(v1)
	e2 := v3.Sub(v1)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)

	if det > -triangleEPS && det < triangleEPS {
		return NoHit
	}

	inv := 1 / det
	tv := r.Origin.Sub(v1)
	u := tv.Dot(p) * inv
	if u < 0 || u > 1 {
		return NoHit
	}

	q := tv.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return NoHit
	}

	d := e2.Dot(q) * inv
	if d < triangleEPS {
		return NoHit
	}

	return NewHit(d)
}

// Paths returns the triangle's three edges.
func (t *Triangle) Paths(args RenderArgs) Paths {
	return PathsFromSlice([]Path{
		{t.V1, t.V2},
		{t.V2, t.V3},
		{t.V3, t.V1},
	})
}
