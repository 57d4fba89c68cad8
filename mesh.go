package ln

import (
	"math"
	"sort"
	"sync"
)

// meshMergeEPS is the spatial-hash cell size (and squared merge radius) used
// to deduplicate vertices shared by adjacent triangles.
const meshMergeEPS = 1e-6

// indexTriangle is a triangle stored as indices into a Mesh's deduplicated
// vertex list, rather than by value, so that shared vertices are merged.
type indexTriangle struct {
	v1, v2, v3 int
}

// Mesh is a deduplicated-vertex triangle mesh. Its Paths emits only
// boundary edges and edges between faces whose normals differ; its
// Intersect delegates to a lazily built BVH over its triangles.
type Mesh struct {
	bx        Box
	vertices  []Vector
	triangles []indexTriangle

	compileOnce sync.Once
	tree        *Tree
}

// NewMesh builds a Mesh from a flat list of triangles, merging vertices
// within meshMergeEPS of each other.
func NewMesh(triangles []Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	merger := newVertexMerger(meshMergeEPS)
	itris := make([]indexTriangle, len(triangles))
	box := EmptyBox
	for i, t := range triangles {
		itris[i] = indexTriangle{
			v1: merger.getOrInsert(t.V1),
			v2: merger.getOrInsert(t.V2),
			v3: merger.getOrInsert(t.V3),
		}
		box = box.Extend(t.BoundingBox())
	}
	return &Mesh{bx: box, vertices: merger.vertices, triangles: itris}, nil
}

type triVerts struct{ v1, v2, v3 Vector }

func (m *Mesh) triangleIter() []triVerts {
	out := make([]triVerts, len(m.triangles))
	for i, it := range m.triangles {
		out[i] = triVerts{m.vertices[it.v1], m.vertices[it.v2], m.vertices[it.v3]}
	}
	return out
}

// Triangles returns the mesh's triangles by value.
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, len(m.triangles))
	for i, it := range m.triangles {
		out[i] = *NewTriangle(m.vertices[it.v1], m.vertices[it.v2], m.vertices[it.v3])
	}
	return out
}

// UnitCube fits m inside the unit cube [0,1]^3 anchored at its own center,
// then centers it at the origin.
func (m *Mesh) UnitCube() *Mesh {
	return m.FitInside(Box{Min: Vector{}, Max: V(1, 1, 1)}, Vector{}).
		MoveTo(Vector{}, V(0.5, 0.5, 0.5))
}

// MoveTo translates m so that its anchor point (as a fraction of its
// bounding box, see Box.Anchor) lands at position.
func (m *Mesh) MoveTo(position, anchor Vector) *Mesh {
	matrix := Translate(position.Sub(m.bx.Anchor(anchor)))
	return m.Transform(matrix)
}

// FitInside scales and translates m to fit within box, anchored within the
// extra space at anchor (a fraction of the leftover size per axis).
func (m *Mesh) FitInside(box Box, anchor Vector) *Mesh {
	scale := box.Size().Div(m.bx.Size()).MinComponent()
	extra := box.Size().Sub(m.bx.Size().MulScalar(scale))
	matrix := Identity()
	matrix = matrix.Translated(m.bx.Min.MulScalar(-1))
	matrix = matrix.Scaled(V(scale, scale, scale))
	matrix = matrix.Translated(box.Min.Add(extra.Mul(anchor)))
	return m.Transform(matrix)
}

// Transform returns a new Mesh with every vertex mapped through matrix. The
// lazily built BVH, if any, is not carried over; the new Mesh has none until
// its own Compile is called.
func (m *Mesh) Transform(matrix Matrix) *Mesh {
	vertices := make([]Vector, len(m.vertices))
	for i, v := range m.vertices {
		vertices[i] = matrix.MulPosition(v)
	}
	box := EmptyBox
	triangles := make([]indexTriangle, len(m.triangles))
	copy(triangles, m.triangles)
	for _, it := range triangles {
		box = box.Extend(Box{
			Min: vertices[it.v1].Min(vertices[it.v2]).Min(vertices[it.v3]),
			Max: vertices[it.v1].Max(vertices[it.v2]).Max(vertices[it.v3]),
		})
	}
	return &Mesh{bx: box, vertices: vertices, triangles: triangles}
}

// Voxelize slices m by horizontal planes spaced size apart and snaps every
// vertex of each cross-section to the nearest point of a grid with spacing
// size, returning one Cube of edge length size per occupied grid point.
// Only the cross-section polylines' vertices mark cells; the interior of a
// cross-section is not filled. Grid points are keyed in fixed 1/1000-unit
// integer steps: whether that is fine enough scales with the input mesh's
// own size, and is not adjusted here (see the Open Questions in the design
// notes).
func (m *Mesh) Voxelize(size float64) []*Cube {
	type cell struct{ x, y, z int64 }
	seen := make(map[cell]struct{})

	for z := m.bx.Min.Z; z <= m.bx.Max.Z; z += size {
		plane := NewPlane(V(0, 0, z), V(0, 0, 1))
		paths := plane.IntersectMesh(m)
		for _, p := range paths.Paths {
			for _, v := range p {
				x := int64(math.Floor(v.X/size+0.5) * size * 1000)
				y := int64(math.Floor(v.Y/size+0.5) * size * 1000)
				zc := int64(math.Floor(v.Z/size+0.5) * size * 1000)
				seen[cell{x, y, zc}] = struct{}{}
			}
		}
	}

	cubes := make([]*Cube, 0, len(seen))
	for c := range seen {
		v := V(float64(c.x)/1000, float64(c.y)/1000, float64(c.z)/1000)
		cubes = append(cubes, NewCube(v.SubScalar(size/2), v.AddScalar(size/2)))
	}
	sort.Slice(cubes, func(i, j int) bool {
		a, b := cubes[i].Min, cubes[j].Min
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return cubes
}

// Compile lazily builds the mesh's BVH over its triangles. It is idempotent
// and safe for concurrent callers: only the first call performs the build,
// and every caller observes the fully constructed tree afterward.
func (m *Mesh) Compile() {
	m.compileOnce.Do(func() {
		shapes := make([]Shape, len(m.triangles))
		for i, it := range m.triangles {
			shapes[i] = NewTriangle(m.vertices[it.v1], m.vertices[it.v2], m.vertices[it.v3])
		}
		m.tree = NewTree(shapes)
		logger().Debug("mesh: compiled BVH", "triangles", len(shapes))
	})
}

// BoundingBox returns the mesh's cached AABB.
func (m *Mesh) BoundingBox() Box {
	return m.bx
}

// Contains always returns false: a mesh has no well-defined interior.
func (m *Mesh) Contains(v Vector, eps float64) bool {
	return false
}

// Intersect delegates to the mesh's BVH, built by Compile.
func (m *Mesh) Intersect(r Ray) Hit {
	if m.tree == nil {
		return NoHit
	}
	return m.tree.Intersect(r)
}

// Paths emits the mesh's silhouette-like edges: an edge is drawn iff it
// belongs to only one triangle (a boundary edge) or its incident triangles'
// canonicalized normals are not all equal (a crease edge). Coplanar
// interior edges — both incident faces sharing one normal — are omitted.
func (m *Mesh) Paths(args RenderArgs) Paths {
	type edgeKey struct{ a, b int }
	type normalKey struct{ nx, ny, nz int64 }
	type edgeInfo struct {
		count   int
		normals map[normalKey]struct{}
	}

	edges := make(map[edgeKey]*edgeInfo)
	order := make([]edgeKey, 0, len(m.triangles)*3)

	quant := func(f float64) int64 { return int64(math.Round(f / meshMergeEPS)) }

	for _, it := range m.triangles {
		n := canonicalNormal(m.vertices[it.v1], m.vertices[it.v2], m.vertices[it.v3])
		nk := normalKey{quant(n.X), quant(n.Y), quant(n.Z)}
		for _, e := range indexTriangleEdges(it) {
			key := edgeKey{e[0], e[1]}
			info, ok := edges[key]
			if !ok {
				info = &edgeInfo{normals: make(map[normalKey]struct{})}
				edges[key] = info
				order = append(order, key)
			}
			info.count++
			info.normals[nk] = struct{}{}
		}
	}

	var paths []Path
	for _, key := range order {
		info := edges[key]
		if info.count == 1 || len(info.normals) > 1 {
			paths = append(paths, Path{m.vertices[key.a], m.vertices[key.b]})
		}
	}
	return PathsFromSlice(paths)
}

func indexTriangleEdges(it indexTriangle) [3][2]int {
	vs := [3]int{it.v1, it.v2, it.v3}
	sort.Ints(vs[:])
	return [3][2]int{{vs[0], vs[1]}, {vs[1], vs[2]}, {vs[0], vs[2]}}
}

// canonicalNormal returns the triangle's normal, flipped into a canonical
// hemisphere so that a face and its reverse-wound twin compare equal.
func canonicalNormal(v1, v2, v3 Vector) Vector {
	n := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()
	if n.X < 0 || (n.X == 0 && n.Y < 0) || (n.X == 0 && n.Y == 0 && n.Z < 0) {
		return n.MulScalar(-1)
	}
	return n
}

// vertexMerger deduplicates vertices within epsilon of one another using a
// spatial hash keyed by grid cell, checking the surrounding 3x3x3
// neighborhood of cells for an existing match.
type vertexMerger struct {
	vertices  []Vector
	grid      map[[3]int64][]int
	epsilon   float64
	epsilonSq float64
}

func newVertexMerger(epsilon float64) *vertexMerger {
	return &vertexMerger{grid: make(map[[3]int64][]int), epsilon: epsilon, epsilonSq: epsilon * epsilon}
}

func (vm *vertexMerger) getOrInsert(v Vector) int {
	cellSize := vm.epsilon
	ix := int64(math.Floor(v.X / cellSize))
	iy := int64(math.Floor(v.Y / cellSize))
	iz := int64(math.Floor(v.Z / cellSize))

	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				key := [3]int64{ix + dx, iy + dy, iz + dz}
				for _, idx := range vm.grid[key] {
					if v.DistanceSquared(vm.vertices[idx]) < vm.epsilonSq {
						return idx
					}
				}
			}
		}
	}

	newIdx := len(vm.vertices)
	vm.vertices = append(vm.vertices, v)
	key := [3]int64{ix, iy, iz}
	vm.grid[key] = append(vm.grid[key], newIdx)
	return newIdx
}
