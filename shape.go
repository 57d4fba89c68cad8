package ln

// RenderArgs is the per-render context shared with every shape's Paths
// generator: the camera position, the world up direction, the combined
// world-to-screen matrix, and the target screen-space chord length (in
// pixels) used by adaptive subdivision.
type RenderArgs struct {
	Eye       Vector
	Up        Vector
	ScreenMat Matrix
	Step      float64
}

// Shape is the capability every renderable object implements: a conservative
// bounding box, an inside/outside predicate for CSG, a ray intersection
// query, and a camera-dependent line-art generator.
//
// Shapes are shared: CSG combinators and TransformedShape hold references to
// child shapes that may also appear elsewhere in the scene, so
// implementations must be immutable after Compile, or otherwise safe for
// concurrent read access — Compile is the only permitted mutation and must
// be idempotent and safe to call concurrently.
type Shape interface {
	// BoundingBox returns a conservative AABB in the shape's local frame.
	BoundingBox() Box

	// Contains reports whether v, inflated by eps in every direction, lies
	// inside the solid. Shapes without a well-defined interior (Triangle,
	// Mesh, outline-only renders) always return false.
	Contains(v Vector, eps float64) bool

	// Intersect returns the smallest t > ~1e-3 at which r meets the
	// surface, accounting for origins that start inside the solid (in
	// which case the exit t is returned), or NoHit.
	Intersect(r Ray) Hit

	// Paths returns the shape's line art in its local frame, generated
	// fresh per render since several generators (silhouettes, adaptive
	// subdivision) depend on the camera carried in args.
	Paths(args RenderArgs) Paths

	// Compile performs any one-time lazy setup (e.g. building a mesh's
	// internal BVH). It must be idempotent: Scene.Render calls it on every
	// shape at the start of each render, before any query. Shapes with
	// nothing to precompute may implement it as a no-op.
	Compile()
}
