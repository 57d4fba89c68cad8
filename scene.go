package ln

import (
	"runtime"
	"sync"
)

// Scene is an ordered collection of shapes rendered together under one
// camera. Shape order only affects which shape a path is attributed to
// during rendering (for deterministic re-ordering of concurrently produced
// output); it has no effect on the rendered image.
type Scene struct {
	shapes []Shape
	tree   *Tree
}

// NewScene returns an empty Scene, applying every option in order.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends shape to the scene.
func (s *Scene) Add(shape Shape) {
	s.shapes = append(s.shapes, shape)
}

// Render runs the full pipeline: compile every shape, build the scene BVH,
// compose the camera matrix, generate each shape's line art concurrently,
// adaptively chop it to screen resolution, occlude it against the scene in
// world space, clip to the view frustum (projecting into pixel space), and
// simplify the result.
func (s *Scene) Render(eye Vector, opts ...RenderOption) Paths {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, shape := range s.shapes {
		shape.Compile()
	}
	tree := NewTree(s.shapes)
	s.tree = tree

	aspect := cfg.width / cfg.height
	view := LookAt(eye, cfg.center, cfg.up)
	proj := Perspective(cfg.fovy, aspect, cfg.near, cfg.far)
	viewport := Viewport(cfg.width, cfg.height)
	screenMat := viewport.Mul(proj).Mul(view)

	args := RenderArgs{Eye: eye, Up: cfg.up, ScreenMat: screenMat, Step: cfg.step}

	perShape := s.renderShapesConcurrently(args)

	var combined Paths
	for _, p := range perShape {
		combined.Extend(p)
	}

	combined = combined.ChopAdaptive(screenMat, cfg.width, cfg.height, cfg.step)
	combined = combined.Filter(NewOccludeFilter(eye, tree))
	combined = combined.Filter(NewClipFilter(screenMat, cfg.width, cfg.height))
	combined = combined.Simplify(cfg.simplifyEpsilon)

	logger().Info("scene: rendered", "shapes", len(s.shapes), "paths", len(combined.Paths))
	return combined
}

// renderShapesConcurrently runs Paths on every top-level shape across a
// bounded worker pool, returning results indexed by the shape's position in
// s.shapes so callers can recombine them in deterministic order regardless
// of goroutine completion order.
func (s *Scene) renderShapesConcurrently(args RenderArgs) []Paths {
	results := make([]Paths, len(s.shapes))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(s.shapes) {
		workers = len(s.shapes)
	}
	if workers <= 1 {
		for i, shape := range s.shapes {
			results[i] = shape.Paths(args)
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.shapes[i].Paths(args)
			}
		}()
	}
	for i := range s.shapes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
