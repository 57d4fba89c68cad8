package ln

// ClipFilter rejects vertices outside the camera's view frustum and
// perspective-divides the rest into pixel space.
type ClipFilter struct {
	Matrix        Matrix
	Width, Height float64
}

// NewClipFilter returns a ClipFilter using m (the combined
// viewport*perspective*lookAt matrix) to map world points to pixel space.
func NewClipFilter(m Matrix, width, height float64) ClipFilter {
	return ClipFilter{Matrix: m, Width: width, Height: height}
}

// Filter projects v through the clip matrix (expected to already include
// the viewport, i.e. viewport*perspective*lookAt), rejecting points behind
// the eye or outside the [0,width]x[0,height] screen rectangle or the
// [-1,1] depth range, and otherwise returning the perspective-divided pixel
// coordinates.
func (f ClipFilter) Filter(v Vector) (Vector, bool) {
	c := f.Matrix.MulPositionW(v)
	if c.W <= 0 {
		return v, false
	}
	px, py, pz := c.X/c.W, c.Y/c.W, c.Z/c.W
	if px < 0 || px > f.Width || py < 0 || py > f.Height || pz < -1 || pz > 1 {
		return v, false
	}
	return Vector{X: px, Y: py, Z: pz}, true
}

// OccludeFilter rejects vertices hidden behind other scene geometry as seen
// from eye, using tree to find the nearest surface along the eye-to-point
// ray.
type OccludeFilter struct {
	Eye  Vector
	Tree *Tree
}

// NewOccludeFilter returns an OccludeFilter testing visibility from eye
// against tree.
func NewOccludeFilter(eye Vector, tree *Tree) OccludeFilter {
	return OccludeFilter{Eye: eye, Tree: tree}
}

// occludeSlack tolerates the point's own surface registering as the nearest
// hit along its own eye ray, which would otherwise self-occlude every
// vertex due to floating point roundoff. It is expressed as a fraction of
// the eye-to-point distance, since the ray below is parameterized with
// Position(1) == v.
const occludeSlack = 1e-3

// Filter reports whether v is unoccluded as seen from f.Eye: the nearest
// hit along the eye-to-v ray must arrive at (or after) v itself, within
// occludeSlack.
func (f OccludeFilter) Filter(v Vector) (Vector, bool) {
	if f.Tree == nil {
		return v, true
	}
	d := v.Sub(f.Eye)
	if d.Length() < 1e-9 {
		return v, true
	}
	ray := Ray{Origin: f.Eye, Direction: d}
	h := f.Tree.Intersect(ray)
	if !h.Ok() {
		return v, true
	}
	return v, h.T >= 1-occludeSlack
}
