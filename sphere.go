package ln

import "math"

// SphereTextureKind selects which line-art generator Sphere.Paths runs.
type SphereTextureKind int

const (
	// SphereOutline renders the silhouette circle seen from the camera.
	SphereOutline SphereTextureKind = iota
	// SphereLatLng renders a latitude/longitude grid.
	SphereLatLng
	// SphereRandomEquators renders n random rotated great circles.
	SphereRandomEquators
	// SphereRandomFuzz renders num outward stubs from random surface points.
	SphereRandomFuzz
	// SphereRandomCircles renders num clusters of concentric small circles.
	SphereRandomCircles
)

// SphereTexture configures a Sphere's line-art generator. Use the
// constructor functions (SphereTextureOutline, SphereTextureLatLng, ...)
// rather than constructing it directly.
type SphereTexture struct {
	Kind SphereTextureKind

	// LatLng
	N, O int

	// RandomEquators / RandomFuzz / RandomCircles
	Seed uint64
	Num  int

	// RandomFuzz
	Scale float64
}

// SphereTextureOutline is the default texture: a silhouette circle.
func SphereTextureOutline() SphereTexture {
	return SphereTexture{Kind: SphereOutline}
}

// SphereTextureLatLng renders parallels every n degrees from -90+o to 90-o
// and meridians every n degrees of longitude.
func SphereTextureLatLng(n, o int) SphereTexture {
	return SphereTexture{Kind: SphereLatLng, N: n, O: o}
}

// SphereTextureRandomEquators renders n random great circles, deterministic
// given seed.
func SphereTextureRandomEquators(seed uint64, n int) SphereTexture {
	return SphereTexture{Kind: SphereRandomEquators, Seed: seed, Num: n}
}

// SphereTextureRandomFuzz renders num outward stubs of the given scale,
// deterministic given seed.
func SphereTextureRandomFuzz(seed uint64, num int, scale float64) SphereTexture {
	return SphereTexture{Kind: SphereRandomFuzz, Seed: seed, Num: num, Scale: scale}
}

// SphereTextureRandomCircles renders num clusters of concentric circles,
// deterministic given seed.
func SphereTextureRandomCircles(seed uint64, num int) SphereTexture {
	return SphereTexture{Kind: SphereRandomCircles, Seed: seed, Num: num}
}

// Sphere is a solid ball defined by center and radius.
type Sphere struct {
	Center  Vector
	Radius  float64
	Texture SphereTexture
}

// NewSphere returns a Sphere with the default outline texture.
func NewSphere(center Vector, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius, Texture: SphereTextureOutline()}
}

// WithTexture sets s's texture and returns s for chaining.
func (s *Sphere) WithTexture(t SphereTexture) *Sphere {
	s.Texture = t
	return s
}

// Compile is a no-op: Sphere has no lazy internal structure.
func (s *Sphere) Compile() {}

// BoundingBox returns the sphere's axis-aligned bounding cube.
func (s *Sphere) BoundingBox() Box {
	r := Vector{s.Radius, s.Radius, s.Radius}
	return Box{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// Contains reports whether v lies within the sphere inflated by eps.
func (s *Sphere) Contains(v Vector, eps float64) bool {
	return v.Sub(s.Center).Length() <= s.Radius+eps
}

// Intersect solves the ray/sphere quadratic, returning the exit t when the
// ray origin starts inside.
func (s *Sphere) Intersect(r Ray) Hit {
	radius := s.Radius
	to := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := to.Dot(r.Direction)
	c := to.Dot(to) - radius*radius
	d := b*b - a*c

	if d > 0 && a > 0 {
		sq := math.Sqrt(d)
		if t1 := (-b - sq) / a; t1 > 1e-2 {
			return NewHit(t1)
		}
		if t2 := (-b + sq) / a; t2 > 1e-2 {
			return NewHit(t2)
		}
	}
	return NoHit
}

// Paths generates the sphere's line art per its Texture.
func (s *Sphere) Paths(args RenderArgs) Paths {
	switch s.Texture.Kind {
	case SphereLatLng:
		return s.pathsLatLng(args.ScreenMat, args.Step, s.Texture.N, s.Texture.O)
	case SphereRandomEquators:
		return s.pathsRandomEquators(args.ScreenMat, args.Step, s.Texture.Num, s.Texture.Seed)
	case SphereRandomFuzz:
		return s.pathsRandomFuzz(s.Texture.Num, s.Texture.Scale, s.Texture.Seed)
	case SphereRandomCircles:
		return s.pathsRandomCircles(args.ScreenMat, args.Step, s.Texture.Num, s.Texture.Seed)
	default:
		return s.pathsOutline(args)
	}
}

func (s *Sphere) pathsOutline(args RenderArgs) Paths {
	center, radius := s.Center, s.Radius

	hyp := center.Sub(args.Eye).Length()
	if hyp <= radius {
		return NewPaths()
	}
	theta := math.Asin(radius / hyp)
	adj := radius / math.Tan(theta)
	d := math.Cos(theta) * adj
	r := math.Sin(theta) * adj

	w := center.Sub(args.Eye).Normalize()

	cross := w.Cross(args.Up)
	var u Vector
	if cross.LengthSquared() < 1e-18 {
		u = w.Cross(w.MinAxis()).Normalize()
	} else {
		u = cross.Normalize()
	}
	v := w.Cross(u).Normalize()
	c := args.Eye.Add(w.MulScalar(d))

	path := adaptiveArc(0, 2*math.Pi, r, arcBasis{c, u, v}, args.ScreenMat, args.Step*args.Step)
	return PathsFromSlice([]Path{path})
}

func (s *Sphere) pathsLatLng(screenMat Matrix, step float64, n, o int) Paths {
	if n <= 0 {
		n = 10
	}
	var paths []Path
	stepSq := step * step

	for lat := -90 + o; lat <= 90-o; lat += n {
		latr := Radians(float64(lat))
		c := s.Center
		c.Z += s.Radius * math.Sin(latr)
		r := s.Radius * math.Cos(latr)
		basis := arcBasis{c, Vector{1, 0, 0}, Vector{0, 1, 0}}
		paths = append(paths, adaptiveArc(0, 2*math.Pi, r, basis, screenMat, stepSq))
	}

	u := Vector{0, 0, 1}
	alpha := Radians(float64(o))
	beta := Radians(float64(180 - o))
	for lng := 0; lng < 360; lng += n {
		lngr := Radians(float64(lng))
		v := Vector{math.Cos(lngr), math.Sin(lngr), 0}
		basis := arcBasis{s.Center, u, v}
		paths = append(paths, adaptiveArc(alpha, beta, s.Radius, basis, screenMat, stepSq))
	}

	return PathsFromSlice(paths)
}

func (s *Sphere) pathsRandomEquators(screenMat Matrix, step float64, n int, seed uint64) Paths {
	rng := NewRand(seed)
	stepSq := step * step
	paths := make([]Path, 0, n)

	for i := 0; i < n; i++ {
		u := RandomUnitVector(rng)
		w := RandomUnitVector(rng)
		v := w.Cross(u).Normalize()
		basis := arcBasis{s.Center, u, v}
		paths = append(paths, adaptiveArc(0, 2*math.Pi, s.Radius, basis, screenMat, stepSq))
	}
	return PathsFromSlice(paths)
}

func (s *Sphere) pathsRandomFuzz(num int, scale float64, seed uint64) Paths {
	rng := NewRand(seed)
	var paths []Path
	for i := 0; i < num; i++ {
		v := RandomUnitVector(rng)
		paths = append(paths, Path{
			v.MulScalar(s.Radius).Add(s.Center),
			v.MulScalar(s.Radius * scale).Add(s.Center),
		})
	}
	return PathsFromSlice(paths)
}

func (s *Sphere) pathsRandomCircles(screenMat Matrix, step float64, num int, seed uint64) Paths {
	rng := NewRand(seed)
	var paths []Path
	var seen []Vector
	var radii []float64
	stepSq := step * step

	for i := 0; i < num; i++ {
		var v Vector
		var m float64
		for {
			v = RandomUnitVector(rng)
			m = rng.Float64()*0.25 + 0.05
			ok := true
			for j, other := range seen {
				if other.Sub(v).Length() < m+radii[j]+0.02 {
					ok = false
					break
				}
			}
			if ok {
				seen = append(seen, v)
				radii = append(radii, m)
				break
			}
		}

		p := v.Cross(RandomUnitVector(rng)).Normalize()
		q := p.Cross(v).Normalize()

		n := 1 + rng.IntN(4)
		currentM := m
		for k := 0; k < n; k++ {
			norm := math.Sqrt(v.LengthSquared() + currentM*currentM)
			r := currentM * s.Radius / norm
			c := v.MulScalar(s.Radius / norm).Add(s.Center)
			basis := arcBasis{c, p, q}
			paths = append(paths, adaptiveArc(0, 2*math.Pi, r, basis, screenMat, stepSq))
			currentM *= 0.75
		}
	}
	return PathsFromSlice(paths)
}

// LatLngToXYZ converts latitude/longitude (in degrees) on a sphere of the
// given radius to a 3D point.
func LatLngToXYZ(lat, lng, radius float64) Vector {
	latr := Radians(lat)
	lngr := Radians(lng)
	return Vector{
		radius * math.Cos(latr) * math.Cos(lngr),
		radius * math.Cos(latr) * math.Sin(lngr),
		radius * math.Sin(latr),
	}
}
