package ln

// Intersection is the CSG combinator whose solid is the intersection of all
// its children: a point is inside iff every child contains it, and a ray
// hit is the first point along the ray that lies inside every other child.
type Intersection struct {
	children []Shape
}

// NewIntersection returns the intersection of shapes, or ErrNoChildren if
// shapes is empty.
func NewIntersection(shapes ...Shape) (*Intersection, error) {
	if len(shapes) == 0 {
		return nil, ErrNoChildren
	}
	return &Intersection{children: shapes}, nil
}

// Compile compiles every child.
func (s *Intersection) Compile() {
	for _, c := range s.children {
		c.Compile()
	}
}

// BoundingBox returns the overlap of the children's boxes.
func (s *Intersection) BoundingBox() Box {
	box := s.children[0].BoundingBox()
	for _, c := range s.children[1:] {
		cb := c.BoundingBox()
		box = Box{Min: box.Min.Max(cb.Min), Max: box.Max.Min(cb.Max)}
	}
	return box
}

// Contains reports whether v lies inside every child.
func (s *Intersection) Contains(v Vector, eps float64) bool {
	for _, c := range s.children {
		if !c.Contains(v, eps) {
			return false
		}
	}
	return true
}

// Intersect walks along r, retrying at each candidate child hit until the
// point also lies inside every other child.
func (s *Intersection) Intersect(r Ray) Hit {
	return csgWalk(r, s.children, func(v Vector, except int) bool {
		for i, c := range s.children {
			if i == except {
				continue
			}
			if !c.Contains(v, 1e-3) {
				return false
			}
		}
		return true
	})
}

// Paths returns each child's own Paths, restricted to the points that also
// lie inside every other child.
func (s *Intersection) Paths(args RenderArgs) Paths {
	var result Paths
	for i, c := range s.children {
		result.Extend(c.Paths(args).Filter(csgFilter{shapes: s.children, except: i, inside: true}))
	}
	return result
}

// Difference is the CSG combinator whose solid is its first child minus the
// union of the rest.
type Difference struct {
	children []Shape
}

// NewDifference returns base minus the union of subtract, or ErrNoChildren
// if no shapes are given at all.
func NewDifference(base Shape, subtract ...Shape) (*Difference, error) {
	if base == nil {
		return nil, ErrNoChildren
	}
	return &Difference{children: append([]Shape{base}, subtract...)}, nil
}

// Compile compiles every child.
func (s *Difference) Compile() {
	for _, c := range s.children {
		c.Compile()
	}
}

// BoundingBox returns the base shape's bounding box.
func (s *Difference) BoundingBox() Box {
	return s.children[0].BoundingBox()
}

// Contains reports whether v lies inside the base shape and outside every
// subtracted shape.
func (s *Difference) Contains(v Vector, eps float64) bool {
	if !s.children[0].Contains(v, eps) {
		return false
	}
	for _, c := range s.children[1:] {
		if c.Contains(v, eps) {
			return false
		}
	}
	return true
}

// Intersect walks along r, retrying at each candidate hit until it lies
// inside the base shape and outside every subtracted shape.
func (s *Difference) Intersect(r Ray) Hit {
	return csgWalk(r, s.children, func(v Vector, except int) bool {
		base := s.children[0]
		if except != 0 && !base.Contains(v, 1e-3) {
			return false
		}
		for i, c := range s.children[1:] {
			idx := i + 1
			if idx == except {
				continue
			}
			if c.Contains(v, 1e-3) {
				return false
			}
		}
		return true
	})
}

// Paths returns the base shape's Paths restricted to points outside every
// subtracted shape, plus each subtracted shape's Paths restricted to points
// inside the base and outside the other subtracted shapes.
func (s *Difference) Paths(args RenderArgs) Paths {
	var result Paths
	base := s.children[0]
	subtract := s.children[1:]
	result.Extend(base.Paths(args).Filter(csgFilter{shapes: subtract, except: -1, inside: false}))
	for i, c := range subtract {
		result.Extend(c.Paths(args).Filter(differenceSubtractFilter{base: base, subtract: subtract, except: i}))
	}
	return result
}

// csgWalk advances along r through each candidate hit offered by every
// child in turn, accepting the first whose point satisfies keep. This
// mirrors the forward-walk-and-containment-retry approach used for CSG ray
// intersection: a CSG boundary point is always one child's own surface
// point, filtered by the others' containment.
func csgWalk(r Ray, children []Shape, keep func(point Vector, exceptChild int) bool) Hit {
	best := NoHit
	for i, c := range children {
		t := 0.0
		for {
			origin := r.Origin.Add(r.Direction.MulScalar(t))
			h := c.Intersect(Ray{Origin: origin, Direction: r.Direction})
			if !h.Ok() {
				break
			}
			tAbs := t + h.T
			if tAbs >= best.T {
				break
			}
			point := r.Position(tAbs)
			if keep(point, i) {
				best = NewHit(tAbs)
				break
			}
			t = tAbs + 1e-6
		}
	}
	return best
}

// csgFilter keeps a vertex iff its containment in every shape (other than
// the one at index except, if any) matches inside.
type csgFilter struct {
	shapes []Shape
	except int
	inside bool
}

func (f csgFilter) Filter(v Vector) (Vector, bool) {
	for i, s := range f.shapes {
		if i == f.except {
			continue
		}
		if s.Contains(v, 1e-3) != f.inside {
			return v, false
		}
	}
	return v, true
}

// differenceSubtractFilter keeps a subtracted shape's vertex iff it lies
// inside the base and outside every other subtracted shape.
type differenceSubtractFilter struct {
	base     Shape
	subtract []Shape
	except   int
}

func (f differenceSubtractFilter) Filter(v Vector) (Vector, bool) {
	if !f.base.Contains(v, 1e-3) {
		return v, false
	}
	for i, s := range f.subtract {
		if i == f.except {
			continue
		}
		if s.Contains(v, 1e-3) {
			return v, false
		}
	}
	return v, true
}
