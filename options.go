package ln

// SceneOption configures a Scene at construction time.
type SceneOption func(*Scene)

// WithShapes seeds a new Scene with shapes already added.
func WithShapes(shapes ...Shape) SceneOption {
	return func(s *Scene) {
		s.shapes = append(s.shapes, shapes...)
	}
}

// RenderOption configures a single Render call, overriding the package
// defaults documented alongside each field.
type RenderOption func(*renderConfig)

// renderConfig holds the resolved parameters for one Render call.
type renderConfig struct {
	center          Vector
	up              Vector
	width, height   float64
	fovy            float64
	near, far       float64
	step            float64
	simplifyEpsilon float64
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		center:          Vector{},
		up:              V(0, 0, 1),
		width:           1024,
		height:          1024,
		fovy:            50,
		near:            0.1,
		far:             10,
		step:            0.01,
		simplifyEpsilon: 1e-6,
	}
}

// WithCenter overrides the look-at target. Default: the origin.
func WithCenter(center Vector) RenderOption {
	return func(c *renderConfig) { c.center = center }
}

// WithUp overrides the world up direction. Default: (0, 0, 1).
func WithUp(up Vector) RenderOption {
	return func(c *renderConfig) { c.up = up }
}

// WithSize overrides the output pixel dimensions. Default: 1024x1024.
func WithSize(width, height float64) RenderOption {
	return func(c *renderConfig) { c.width, c.height = width, height }
}

// WithFovy overrides the vertical field of view in degrees. Default: 50.
func WithFovy(fovy float64) RenderOption {
	return func(c *renderConfig) { c.fovy = fovy }
}

// WithClip overrides the near/far clip distances. Default: 0.1, 10.
func WithClip(near, far float64) RenderOption {
	return func(c *renderConfig) { c.near, c.far = near, far }
}

// WithStep overrides the adaptive-subdivision target chord length in
// pixels. Default: 0.01.
func WithStep(step float64) RenderOption {
	return func(c *renderConfig) { c.step = step }
}

// WithSimplifyEpsilon overrides the Douglas-Peucker simplification
// threshold applied to the final output. Default: 1e-6.
func WithSimplifyEpsilon(eps float64) RenderOption {
	return func(c *renderConfig) { c.simplifyEpsilon = eps }
}
