package ln

import "math"

// FunctionDirection selects which side of a height field's surface is
// considered "inside" by Contains.
type FunctionDirection int

const (
	// Below treats points with z less than the function's value as inside.
	Below FunctionDirection = iota
	// Above treats points with z greater than the function's value as
	// inside.
	Above
)

// FunctionTextureKind selects which line-art generator Function.Paths runs.
type FunctionTextureKind int

const (
	// FunctionGrid draws lines of constant x and constant y across the
	// surface. Works with any function.
	FunctionGrid FunctionTextureKind = iota
	// FunctionSwirl draws radial lines twisted by the function's sign. Best
	// suited to functions that dip negative, e.g. -1/(x^2+y^2).
	FunctionSwirl
	// FunctionSpiral draws a single long spiral path across the surface.
	// Works with any function.
	FunctionSpiral
)

// Function is a height-field shape z = F(x, y), clipped to a bounding box.
type Function struct {
	F         func(x, y float64) float64
	Box       Box
	Direction FunctionDirection
	Texture   FunctionTextureKind
	Step      float64
}

// NewFunction returns a Function over f clipped to box, or
// ErrDegenerateFunction if box has zero or negative extent along any axis.
func NewFunction(f func(x, y float64) float64, box Box) (*Function, error) {
	size := box.Size()
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, ErrDegenerateFunction
	}
	return &Function{F: f, Box: box, Direction: Below, Texture: FunctionGrid, Step: 0.1}, nil
}

// WithDirection sets which side of the surface counts as "inside".
func (fn *Function) WithDirection(d FunctionDirection) *Function {
	fn.Direction = d
	return fn
}

// WithTexture sets fn's line-art generator.
func (fn *Function) WithTexture(t FunctionTextureKind) *Function {
	fn.Texture = t
	return fn
}

// WithStep sets fn's ray-march step for Intersect.
func (fn *Function) WithStep(step float64) *Function {
	fn.Step = step
	return fn
}

// Compile is a no-op: Function has no lazy internal structure.
func (fn *Function) Compile() {}

// BoundingBox returns fn's clipping box.
func (fn *Function) BoundingBox() Box {
	return fn.Box
}

// Contains reports whether v lies on the Direction side of the surface.
func (fn *Function) Contains(v Vector, eps float64) bool {
	z := fn.F(v.X, v.Y)
	if fn.Direction == Below {
		return v.Z < z
	}
	return v.Z > z
}

// Intersect ray-marches through fn's bounding box in Step increments,
// returning the first point where Contains flips sign.
func (fn *Function) Intersect(ray Ray) Hit {
	n := fn.Box.Min.Sub(ray.Origin).Div(ray.Direction)
	f := fn.Box.Max.Sub(ray.Origin).Div(ray.Direction)
	n, f = n.Min(f), n.Max(f)
	t0 := n.MaxComponent()
	t1 := f.MinComponent()

	var t, tMax float64
	switch {
	case t0 < 1e-3 && t1 > 1e-3:
		t, tMax = fn.Step, t1
	case t0 >= 1e-3 && t0 < t1:
		t, tMax = t0, t1
	default:
		return NoHit
	}

	sign := fn.Contains(ray.Position(t), 0)
	for t < tMax {
		t += fn.Step
		v := ray.Position(t)
		if fn.Contains(v, 0) != sign && fn.Box.Contains(v) {
			return NewHit(t)
		}
	}
	return NoHit
}

// Paths generates fn's line art per its Texture.
func (fn *Function) Paths(args RenderArgs) Paths {
	switch fn.Texture {
	case FunctionSwirl:
		return fn.pathsSwirl()
	case FunctionSpiral:
		return fn.pathsSpiral()
	default:
		return fn.pathsGrid(args, 1.0/8)
	}
}

func (fn *Function) maxRadius() float64 {
	dx := fn.Box.Max.X - fn.Box.Min.X
	dy := fn.Box.Max.Y - fn.Box.Min.Y
	return math.Max(dx, dy) / 2 * math.Sqrt2
}

func (fn *Function) pathsGrid(args RenderArgs, gridSize float64) Paths {
	stepSq := args.Step * args.Step
	var paths []Path

	clampZ := func(z float64) float64 {
		return math.Min(math.Max(z, fn.Box.Min.Z), fn.Box.Max.Z)
	}

	type sample struct {
		t, z float64
	}

	for x := fn.Box.Min.X; x <= fn.Box.Max.X; x += gridSize {
		f := func(y float64) float64 { return clampZ(fn.F(x, y)) }
		a, b := fn.Box.Min.Y, fn.Box.Max.Y
		path := Path{V(x, a, f(a))}
		sampleFn := func(p, q sample) sample {
			mid := (p.t + q.t) / 2
			return sample{mid, f(mid)}
		}
		acceptFn := func(p, q sample) bool {
			sa := args.ScreenMat.MulPositionW(V(x, p.t, p.z))
			sb := args.ScreenMat.MulPositionW(V(x, q.t, q.z))
			return sa.DistanceSquared(sb) < stepSq || (p.t-q.t)*(p.t-q.t) < epsSmall
		}
		emitFn := func(s sample) { path = append(path, V(x, s.t, s.z)) }
		subdivide(sample{a, path[0].Z}, sample{b, f(b)}, sampleFn, acceptFn, emitFn)
		paths = append(paths, zvisibleOffset(path, args.Eye))
	}

	for y := fn.Box.Min.Y; y <= fn.Box.Max.Y; y += gridSize {
		f := func(x float64) float64 { return clampZ(fn.F(x, y)) }
		a, b := fn.Box.Min.X, fn.Box.Max.X
		path := Path{V(a, y, f(a))}
		sampleFn := func(p, q sample) sample {
			mid := (p.t + q.t) / 2
			return sample{mid, f(mid)}
		}
		acceptFn := func(p, q sample) bool {
			sa := args.ScreenMat.MulPositionW(V(p.t, y, p.z))
			sb := args.ScreenMat.MulPositionW(V(q.t, y, q.z))
			return sa.DistanceSquared(sb) < stepSq || (p.t-q.t)*(p.t-q.t) < epsSmall
		}
		emitFn := func(s sample) { path = append(path, V(s.t, y, s.z)) }
		subdivide(sample{a, path[0].Z}, sample{b, f(b)}, sampleFn, acceptFn, emitFn)
		paths = append(paths, zvisibleOffset(path, args.Eye))
	}

	return PathsFromSlice(paths)
}

func (fn *Function) pathsSwirl() Paths {
	var paths []Path
	const fine = 1.0 / 256
	maxR := fn.maxRadius()

	clampZ := func(z float64) float64 {
		return math.Min(math.Max(z, fn.Box.Min.Z), fn.Box.Max.Z)
	}
	inBounds := func(x, y float64) bool {
		return x >= fn.Box.Min.X && x <= fn.Box.Max.X && y >= fn.Box.Min.Y && y <= fn.Box.Max.Y
	}

	var path Path
	for a := 0; a < 360; a += 5 {
		path = nil
		for r := 0.0; r <= maxR; r += fine {
			theta := Radians(float64(a))
			z := fn.F(math.Cos(theta)*r, math.Sin(theta)*r)
			offset := 0.0
			if z < 0 {
				offset = -math.Pow(-z, 1.4)
			}
			x := math.Cos(theta-offset) * r
			y := math.Sin(theta-offset) * r
			z = clampZ(z)

			if inBounds(x, y) {
				path = append(path, V(x, y, z))
			} else {
				if len(path) > 1 {
					paths = append(paths, path)
				}
				path = nil
			}
		}
		if len(path) > 1 {
			paths = append(paths, path)
		}
	}

	return PathsFromSlice(paths)
}

func (fn *Function) pathsSpiral() Paths {
	var paths []Path
	var path Path
	const n = 10000
	maxR := fn.maxRadius()

	clampZ := func(z float64) float64 {
		return math.Min(math.Max(z, fn.Box.Min.Z), fn.Box.Max.Z)
	}
	inBounds := func(x, y float64) bool {
		return x >= fn.Box.Min.X && x <= fn.Box.Max.X && y >= fn.Box.Min.Y && y <= fn.Box.Max.Y
	}

	for i := 0; i < n; i++ {
		t := float64(i) / n
		r := maxR - t*maxR
		theta := Radians(t * 2 * math.Pi * 3000)
		x := math.Cos(theta) * r
		y := math.Sin(theta) * r
		z := clampZ(fn.F(x, y))

		if inBounds(x, y) {
			path = append(path, V(x, y, z))
		} else {
			if len(path) > 1 {
				paths = append(paths, path)
			}
			path = nil
		}
	}
	if len(path) > 1 {
		paths = append(paths, path)
	}

	return PathsFromSlice(paths)
}

// zvisibleOffset biases a grid line's local crests toward the eye so the
// line does not visually dive behind the surface it rides on. For each
// interior vertex that lies on the same side of its neighbours' chord as
// the eye (in z), the two neighbouring vertices are shifted in z by that
// vertex's signed deviation from the chord; where several shifts reach one
// vertex, the largest in magnitude wins. Ported from the original
// height-field renderer's crest-bias heuristic.
func zvisibleOffset(path Path, eye Vector) Path {
	offsets := make([]float64, len(path))
	ez := eye.Z
	for i := 1; i < len(path)-1; i++ {
		a, c, b := path[i-1], path[i], path[i+1]
		denomA := (a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y)
		var z float64
		if denomA == 0 {
			z = a.Z
		} else {
			numA := (a.X-c.X)*(a.X-c.X) + (a.Y-c.Y)*(a.Y-c.Y)
			z = a.Z + (b.Z-a.Z)*math.Sqrt(numA/denomA)
		}
		offset := 0.0
		if (c.Z > z) == (ez > z) {
			offset = c.Z - z
		}
		if math.Abs(offset) > math.Abs(offsets[i-1]) {
			offsets[i-1] = offset
		}
		if math.Abs(offset) > math.Abs(offsets[i+1]) {
			offsets[i+1] = offset
		}
	}
	out := make(Path, len(path))
	for i, v := range path {
		out[i] = V(v.X, v.Y, v.Z+offsets[i])
	}
	return out
}
