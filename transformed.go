package ln

// TransformedShape wraps an inner Shape with a Matrix, so that primitives
// defined in a convenient local frame (e.g. a Cylinder running along Z) can
// be placed anywhere in world space. Wrapping another TransformedShape
// flattens the composition into a single matrix rather than nesting.
type TransformedShape struct {
	Shape   Shape
	Matrix  Matrix
	inverse Matrix
}

// NewTransformedShape returns shape placed into world space by m.
func NewTransformedShape(shape Shape, m Matrix) *TransformedShape {
	if inner, ok := shape.(*TransformedShape); ok {
		return &TransformedShape{
			Shape:   inner.Shape,
			Matrix:  m.Mul(inner.Matrix),
			inverse: inner.Matrix.Inverse().Mul(m.Inverse()),
		}
	}
	return &TransformedShape{Shape: shape, Matrix: m, inverse: m.Inverse()}
}

// Compile compiles the wrapped shape.
func (t *TransformedShape) Compile() {
	t.Shape.Compile()
}

// BoundingBox returns the world-space AABB enclosing the transformed
// corners of the inner shape's local bounding box.
func (t *TransformedShape) BoundingBox() Box {
	box := t.Shape.BoundingBox()
	result := EmptyBox
	for _, c := range box.Corners() {
		p := t.Matrix.MulPosition(c)
		result = result.Extend(Box{Min: p, Max: p})
	}
	return result
}

// Contains transforms v into the inner shape's local frame before testing.
func (t *TransformedShape) Contains(v Vector, eps float64) bool {
	return t.Shape.Contains(t.inverse.MulPosition(v), eps)
}

// Intersect transforms r into the inner shape's local frame before testing.
func (t *TransformedShape) Intersect(r Ray) Hit {
	return t.Shape.Intersect(t.inverse.MulRay(r))
}

// Paths computes the inner shape's line art with eye and screen matrix
// premultiplied into local space, then maps the result back into world
// space.
func (t *TransformedShape) Paths(args RenderArgs) Paths {
	localArgs := RenderArgs{
		Eye:       t.inverse.MulPosition(args.Eye),
		Up:        t.inverse.MulDirection(args.Up),
		ScreenMat: args.ScreenMat.Mul(t.Matrix),
		Step:      args.Step,
	}
	return t.Shape.Paths(localArgs).Transform(t.Matrix)
}
