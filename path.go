package ln

import (
	"fmt"
	"math"
	"strings"
)

// Path is a polyline: an ordered sequence of at least 2 points once
// finalized. Paths under construction may briefly hold fewer.
type Path []Vector

// Paths is an ordered collection of Path values, the unit of line-art
// output from a [Shape] or a [Scene] render.
type Paths struct {
	Paths []Path
}

// NewPaths returns an empty Paths collection.
func NewPaths() Paths {
	return Paths{}
}

// PathsFromSlice wraps an existing slice of Path values.
func PathsFromSlice(paths []Path) Paths {
	return Paths{Paths: paths}
}

// Push appends a single path.
func (ps *Paths) Push(p Path) {
	ps.Paths = append(ps.Paths, p)
}

// Extend appends every path from other.
func (ps *Paths) Extend(other Paths) {
	ps.Paths = append(ps.Paths, other.Paths...)
}

// BoundingBox returns the 3D AABB over every vertex of every path.
func (ps Paths) BoundingBox() Box {
	box := EmptyBox
	for _, p := range ps.Paths {
		box = box.Extend(p.boundingBox())
	}
	return box
}

func (p Path) boundingBox() Box {
	if len(p) == 0 {
		return Box{}
	}
	box := Box{Min: p[0], Max: p[0]}
	for _, v := range p[1:] {
		box = box.Extend(Box{Min: v, Max: v})
	}
	return box
}

// Transform returns ps with every vertex mapped through m.
func (ps Paths) Transform(m Matrix) Paths {
	out := make([]Path, len(ps.Paths))
	for i, p := range ps.Paths {
		out[i] = p.transform(m)
	}
	return Paths{Paths: out}
}

func (p Path) transform(m Matrix) Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[i] = m.MulPosition(v)
	}
	return out
}

// Chop uniformly subdivides every path in world space so that no segment
// exceeds step in length. It is a legacy fallback to [Paths.ChopAdaptive],
// which accounts for screen-space resolution instead.
func (ps Paths) Chop(step float64) Paths {
	out := make([]Path, len(ps.Paths))
	for i, p := range ps.Paths {
		out[i] = p.chop(step)
	}
	return Paths{Paths: out}
}

func (p Path) chop(step float64) Path {
	var result Path
	for i := 0; i < len(p)-1; i++ {
		a, b := p[i], p[i+1]
		v := b.Sub(a)
		l := v.Length()
		if i == 0 {
			result = append(result, a)
		}
		for d := step; d < l; d += step {
			result = append(result, a.Add(v.MulScalar(d/l)))
		}
		result = append(result, b)
	}
	return result
}

// ChopAdaptive recursively bisects every path's segments in screen space
// (via screenMat) so that each remaining chord is no more than step pixels
// long, stopping early for off-screen-same-side segments or
// below-EPS-length segments. See §4.7 of the design notes.
func (ps Paths) ChopAdaptive(screenMat Matrix, width, height, step float64) Paths {
	stepSq := step * step
	out := make([]Path, len(ps.Paths))
	for i, p := range ps.Paths {
		out[i] = p.chopAdaptive(screenMat, width, height, stepSq)
	}
	return Paths{Paths: out}
}

func (p Path) chopAdaptive(screenMat Matrix, width, height, stepSq float64) Path {
	if len(p) == 0 {
		return nil
	}
	result := Path{p[0]}
	for i := 0; i < len(p)-1; i++ {
		recursiveSubdivide(p[i], p[i+1], screenMat, width, height, stepSq, &result)
	}
	return result
}

func recursiveSubdivide(a, b Vector, screenMat Matrix, width, height, stepSq float64, result *Path) {
	sa := screenMat.MulPositionW(a)
	sb := screenMat.MulPositionW(b)
	ax, ay := sa.X/sa.W, sa.Y/sa.W
	bx, by := sb.X/sb.W, sb.Y/sb.W
	sameOffscreen := (ax < 0 && bx < 0) ||
		(ay < 0 && by < 0) ||
		(ax > width && bx > width) ||
		(ay > height && by > height)
	if sameOffscreen || sa.DistanceSquared(sb) < stepSq || a.DistanceSquared(b) < epsSmall {
		*result = append(*result, b)
		return
	}
	mid := a.Add(b).MulScalar(0.5)
	recursiveSubdivide(a, mid, screenMat, width, height, stepSq, result)
	recursiveSubdivide(mid, b, screenMat, width, height, stepSq, result)
}

// epsSmall bounds segment-length degeneracy during adaptive subdivision —
// below this the 3D segment is too short to usefully bisect further.
const epsSmall = 1e-9

// Filter transforms a 3D vertex into either an accepted replacement vertex
// or a rejection. A rejected vertex ends the current polyline.
type Filter interface {
	Filter(v Vector) (Vector, bool)
}

// Filter applies f to every path, splitting a path wherever a vertex is
// rejected and keeping only resulting sub-paths of at least 2 vertices.
func (ps Paths) Filter(f Filter) Paths {
	var result []Path
	for _, p := range ps.Paths {
		result = append(result, p.filter(f)...)
	}
	return Paths{Paths: result}
}

func (p Path) filter(f Filter) []Path {
	var result []Path
	var current Path
	for _, v := range p {
		if nv, ok := f.Filter(v); ok {
			current = append(current, nv)
		} else {
			if len(current) > 1 {
				result = append(result, current)
			}
			current = nil
		}
	}
	if len(current) > 1 {
		result = append(result, current)
	}
	return result
}

// Simplify reduces every path with the Ramer-Douglas-Peucker algorithm,
// dropping points that deviate from the straight line between their
// neighbors by less than threshold.
func (ps Paths) Simplify(threshold float64) Paths {
	out := make([]Path, len(ps.Paths))
	for i, p := range ps.Paths {
		out[i] = p.simplify(threshold)
	}
	return Paths{Paths: out}
}

func (p Path) simplify(threshold float64) Path {
	if len(p) < 3 {
		return append(Path(nil), p...)
	}
	a, b := p[0], p[len(p)-1]
	index := 0
	distance := 0.0
	for i := 1; i < len(p)-1; i++ {
		d := p[i].SegmentDistance(a, b)
		if d > distance {
			index = i
			distance = d
		}
	}
	if distance > threshold {
		r1 := p[:index+1].simplify(threshold)
		r2 := p[index:].simplify(threshold)
		result := append(Path(nil), r1[:len(r1)-1]...)
		return append(result, r2...)
	}
	return Path{a, b}
}

// ToSVG renders ps as a single SVG document of the given pixel size, with
// one <polyline> per path and a Y-flip so world-up maps to image-up.
func (ps Paths) ToSVG(width, height float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg width=\"%v\" height=\"%v\" version=\"1.1\" baseProfile=\"full\" xmlns=\"http://www.w3.org/2000/svg\">\n", width, height)
	fmt.Fprintf(&b, "<g transform=\"translate(0,%v) scale(1,-1)\">\n", height)
	for _, p := range ps.Paths {
		b.WriteString(p.toSVG())
		b.WriteByte('\n')
	}
	b.WriteString("</g></svg>")
	return b.String()
}

func (p Path) toSVG() string {
	coords := make([]string, len(p))
	for i, v := range p {
		coords[i] = fmt.Sprintf("%v,%v", v.X, v.Y)
	}
	return fmt.Sprintf("<polyline stroke=\"black\" fill=\"none\" points=\"%s\" />", strings.Join(coords, " "))
}

// ToText renders ps as one line per path, semicolon-separated x,y pairs.
func (ps Paths) ToText() string {
	var b strings.Builder
	for _, p := range ps.Paths {
		coords := make([]string, len(p))
		for i, v := range p {
			coords[i] = fmt.Sprintf("%v,%v", v.X, v.Y)
		}
		b.WriteString(strings.Join(coords, ";"))
		b.WriteByte('\n')
	}
	return b.String()
}

// arcBasis describes the plane of a circular arc: center c, with u and v
// spanning an orthonormal (or at least orthogonal) basis for the plane so
// that a point at angle theta is c + r*cos(theta)*u + r*sin(theta)*v.
type arcBasis struct {
	C, U, V Vector
}

func arcPoint(basis arcBasis, r, theta float64) Vector {
	return basis.C.Add(basis.U.MulScalar(r * math.Cos(theta))).Add(basis.V.MulScalar(r * math.Sin(theta)))
}

// adaptiveArc samples the circular arc of radius r in the plane described by
// basis, from angle alpha to beta, adaptively subdividing in the angle
// parameter per §4.7: a chord is accepted once its angular span is below
// pi/180, or — for spans under pi/3 — once the chord-vs-arc-corrected
// projected distance drops below step^2. Wider spans always keep
// subdividing, since the small-angle correction is unreliable there and
// silhouette arcs are exactly where a wide span needs the extra resolution.
func adaptiveArc(alpha, beta, r float64, basis arcBasis, screenMat Matrix, stepSq float64) Path {
	type sample struct {
		theta float64
		p     Vector
	}
	a := sample{alpha, arcPoint(basis, r, alpha)}
	b := sample{beta, arcPoint(basis, r, beta)}

	result := Path{a.p}
	sampleFn := func(a, b sample) sample {
		mid := (a.theta + b.theta) / 2
		return sample{mid, arcPoint(basis, r, mid)}
	}
	acceptFn := func(a, b sample) bool {
		theta := math.Abs(b.theta - a.theta)
		if theta < math.Pi/180 {
			return true
		}
		if theta >= math.Pi/3 {
			return false
		}
		sa := screenMat.MulPositionW(a.p)
		sb := screenMat.MulPositionW(b.p)
		projDistSq := sa.DistanceSquared(sb)
		return projDistSq*theta/math.Sin(theta) < stepSq
	}
	emitFn := func(s sample) { result = append(result, s.p) }
	subdivide(a, b, sampleFn, acceptFn, emitFn)
	return result
}

// adaptiveArcInner samples the same circular arc as adaptiveArc, but for the
// back side of a silhouette split: the far arc's screen-space chord length
// shrinks under foreshortening regardless of curvature, so the
// screen-distance shortcut adaptiveArc relies on is unreliable there.
// adaptiveArcInner instead subdivides purely on angular span.
func adaptiveArcInner(alpha, beta, r float64, basis arcBasis, screenMat Matrix, stepSq float64) Path {
	type sample struct {
		theta float64
		p     Vector
	}
	a := sample{alpha, arcPoint(basis, r, alpha)}
	b := sample{beta, arcPoint(basis, r, beta)}

	result := Path{a.p}
	sampleFn := func(a, b sample) sample {
		mid := (a.theta + b.theta) / 2
		return sample{mid, arcPoint(basis, r, mid)}
	}
	acceptFn := func(a, b sample) bool {
		return math.Abs(b.theta-a.theta) < math.Pi/90
	}
	emitFn := func(s sample) { result = append(result, s.p) }
	subdivide(a, b, sampleFn, acceptFn, emitFn)
	return result
}
