package ln

import "sort"

// leafThreshold is the maximum number of shapes held directly in a BVH leaf
// before the node is split further.
const leafThreshold = 8

// Tree is a bounding volume hierarchy over a set of shapes, used both inside
// Mesh (over its triangles) and at Scene level (over top-level shapes).
type Tree struct {
	box    Box
	shapes []Shape
	left   *Tree
	right  *Tree
}

// NewTree builds a BVH over shapes, splitting on the longest axis at the
// median of child centers until each leaf holds at most leafThreshold
// shapes.
func NewTree(shapes []Shape) *Tree {
	t := &Tree{}
	t.build(shapes)
	return t
}

func (t *Tree) build(shapes []Shape) {
	t.box = BoxForShapes(shapes)
	if len(shapes) <= leafThreshold {
		t.shapes = shapes
		return
	}

	axis := longestAxis(t.box)
	centers := make([]float64, len(shapes))
	for i, s := range shapes {
		c := s.BoundingBox().Center()
		centers[i] = axisValue(c, axis)
	}
	mid := median(centers)

	var left, right []Shape
	for i, s := range shapes {
		if centers[i] < mid {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	// A degenerate median (all centers equal) would otherwise put every
	// shape on one side forever; fall back to an even split.
	if len(left) == 0 || len(right) == 0 {
		sort.Slice(shapes, func(i, j int) bool {
			return axisValue(shapes[i].BoundingBox().Center(), axis) <
				axisValue(shapes[j].BoundingBox().Center(), axis)
		})
		half := len(shapes) / 2
		left, right = shapes[:half], shapes[half:]
	}

	t.left = &Tree{}
	t.left.build(left)
	t.right = &Tree{}
	t.right.build(right)
}

func longestAxis(b Box) int {
	size := b.Size()
	switch {
	case size.X >= size.Y && size.X >= size.Z:
		return 0
	case size.Y >= size.X && size.Y >= size.Z:
		return 1
	default:
		return 2
	}
}

func axisValue(v Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Intersect descends the tree nearest-child-first, pruning subtrees whose
// slab intersection misses or whose entry distance is no better than the
// closest hit found so far.
func (t *Tree) Intersect(r Ray) Hit {
	return t.intersect(r, NoHit)
}

func (t *Tree) intersect(r Ray, best Hit) Hit {
	tMin, tMax := t.box.Intersect(r)
	if tMin > tMax || tMax < 1e-9 || tMin > best.T {
		return best
	}

	if t.left == nil && t.right == nil {
		for _, s := range t.shapes {
			h := s.Intersect(r)
			best = best.Min(h)
		}
		return best
	}

	lMin, _ := t.left.box.Intersect(r)
	rMin, _ := t.right.box.Intersect(r)
	first, second := t.left, t.right
	if rMin < lMin {
		first, second = t.right, t.left
	}
	best = first.intersect(r, best)
	best = second.intersect(r, best)
	return best
}

// Shapes returns every shape held in the tree's leaves, in traversal order.
func (t *Tree) Shapes() []Shape {
	if t.left == nil && t.right == nil {
		return t.shapes
	}
	out := append([]Shape(nil), t.left.Shapes()...)
	return append(out, t.right.Shapes()...)
}
