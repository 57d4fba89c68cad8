package ln

// Plane is an infinite plane defined by a point and a normal. It is not a
// Shape in the render sense — it exists only to slice a Mesh's triangles
// into a cross-section polyline set via IntersectMesh.
type Plane struct {
	Point, Normal Vector
}

// NewPlane returns the plane through point with the given normal.
func NewPlane(point, normal Vector) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

func (p Plane) signedDistance(v Vector) float64 {
	return v.Sub(p.Point).Dot(p.Normal)
}

// IntersectMesh returns the polyline set where p cuts through m's triangles:
// one 2-point segment per triangle that the plane actually straddles.
func (p Plane) IntersectMesh(m *Mesh) Paths {
	var paths []Path
	for _, t := range m.triangleIter() {
		if seg, ok := p.intersectTriangle(t.v1, t.v2, t.v3); ok {
			paths = append(paths, seg)
		}
	}
	return PathsFromSlice(paths)
}

func (p Plane) intersectTriangle(v1, v2, v3 Vector) (Path, bool) {
	d1 := p.signedDistance(v1)
	d2 := p.signedDistance(v2)
	d3 := p.signedDistance(v3)

	type edge struct {
		a, b   Vector
		da, db float64
	}
	edges := [3]edge{
		{v1, v2, d1, d2},
		{v2, v3, d2, d3},
		{v3, v1, d3, d1},
	}

	var pts []Vector
	for _, e := range edges {
		if (e.da > 0) != (e.db > 0) && e.da != e.db {
			t := e.da / (e.da - e.db)
			pts = append(pts, e.a.Add(e.b.Sub(e.a).MulScalar(t)))
		} else if e.da == 0 {
			pts = append(pts, e.a)
		}
	}

	if len(pts) < 2 {
		return nil, false
	}
	// Two edges straddling the plane give exactly one segment; dedupe the
	// degenerate "plane passes through a vertex" case where more than two
	// candidate points coincide.
	a, b := pts[0], pts[len(pts)-1]
	if a.DistanceSquared(b) < 1e-18 {
		return nil, false
	}
	return Path{a, b}, true
}
