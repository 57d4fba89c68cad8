package ln

import "math"

// ConeTextureKind selects which line-art generator Cone.Paths runs.
type ConeTextureKind int

const (
	// ConeOutline renders the silhouette seen from the camera: the base
	// circle plus two tangent lines from the apex.
	ConeOutline ConeTextureKind = iota
	// ConeStriped renders num slant lines from base to apex.
	ConeStriped
)

// ConeTexture configures a Cone's line-art generator.
type ConeTexture struct {
	Kind ConeTextureKind
	Num  uint64
}

// ConeTextureOutline is the default texture.
func ConeTextureOutline() ConeTexture { return ConeTexture{Kind: ConeOutline} }

// ConeTextureStriped renders num equally spaced slant lines.
func ConeTextureStriped(num uint64) ConeTexture {
	return ConeTexture{Kind: ConeStriped, Num: num}
}

// Cone is a solid cone aligned along the Z axis: a base circle of radius R0
// at Z0, tapering to a base circle of radius R1 at Z1 (R1 = 0 for a sharp
// apex).
type Cone struct {
	R0, R1, Z0, Z1 float64
	Texture        ConeTexture
}

// NewCone returns a Cone with the default outline texture, apex at Z1 (R1 =
// 0).
func NewCone(r0, z0, z1 float64) *Cone {
	return &Cone{R0: r0, R1: 0, Z0: z0, Z1: z1, Texture: ConeTextureOutline()}
}

// WithTexture sets c's texture and returns c for chaining.
func (c *Cone) WithTexture(t ConeTexture) *Cone {
	c.Texture = t
	return c
}

// Compile is a no-op: Cone has no lazy internal structure.
func (c *Cone) Compile() {}

func (c *Cone) radiusAt(z float64) float64 {
	t := (z - c.Z0) / (c.Z1 - c.Z0)
	return c.R0 + (c.R1-c.R0)*t
}

// BoundingBox returns the cone's axis-aligned bounding box.
func (c *Cone) BoundingBox() Box {
	r := math.Max(c.R0, c.R1)
	return Box{Min: V(-r, -r, c.Z0), Max: V(r, r, c.Z1)}
}

// Contains reports whether v lies within the cone inflated by eps.
func (c *Cone) Contains(v Vector, eps float64) bool {
	if v.Z < c.Z0-eps || v.Z > c.Z1+eps {
		return false
	}
	xy := V(v.X, v.Y, 0)
	return xy.Length() <= c.radiusAt(v.Z)+eps
}

// Intersect solves the ray/cone quadratic clipped to [Z0, Z1].
func (c *Cone) Intersect(ray Ray) Hit {
	// Parameterize the cone's radius linearly in z: r(z) = k*z + m, derived
	// from the two base circles, then solve |xy(t)|^2 = r(z(t))^2.
	dz := c.Z1 - c.Z0
	if dz == 0 {
		return NoHit
	}
	k := (c.R1 - c.R0) / dz
	m := c.R0 - k*c.Z0

	o, d := ray.Origin, ray.Direction

	a := d.X*d.X + d.Y*d.Y - k*k*d.Z*d.Z
	b := 2*o.X*d.X + 2*o.Y*d.Y - 2*k*m*d.Z - 2*k*k*o.Z*d.Z
	cc := o.X*o.X + o.Y*o.Y - m*m - 2*k*m*o.Z - k*k*o.Z*o.Z

	if math.Abs(a) < 1e-12 {
		return NoHit
	}
	q := b*b - 4*a*cc
	if q < 0 {
		return NoHit
	}
	sq := math.Sqrt(q)
	t0 := (-b + sq) / (2 * a)
	t1 := (-b - sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	z0 := o.Z + t0*d.Z
	z1 := o.Z + t1*d.Z

	if t0 > 1e-6 && c.Z0 <= z0 && z0 <= c.Z1 {
		return NewHit(t0)
	}
	if t1 > 1e-6 && c.Z0 <= z1 && z1 <= c.Z1 {
		return NewHit(t1)
	}
	return NoHit
}

// Paths generates the cone's line art per its Texture.
func (c *Cone) Paths(args RenderArgs) Paths {
	if c.Texture.Kind == ConeStriped {
		num := c.Texture.Num
		if num == 0 {
			num = 36
		}
		return c.pathsStriped(num)
	}
	return c.pathsOutline(args)
}

func (c *Cone) pathsStriped(num uint64) Paths {
	var result []Path
	step := 360 / int(num)
	if step == 0 {
		step = 1
	}
	for a := 0; a < 360; a += step {
		theta := Radians(float64(a))
		base := V(c.R0*math.Cos(theta), c.R0*math.Sin(theta), c.Z0)
		tip := V(c.R1*math.Cos(theta), c.R1*math.Sin(theta), c.Z1)
		result = append(result, Path{base, tip})
	}
	return PathsFromSlice(result)
}

func (c *Cone) pathsOutline(args RenderArgs) Paths {
	r := c.R0
	a, b := args.Eye.X, args.Eye.Y
	sqrtAB := math.Sqrt(a*a + b*b)
	u, v := Vector{1, 0, 0}, Vector{0, 1, 0}
	stepSq := args.Step * args.Step

	ratio := r / sqrtAB
	if math.Abs(ratio) > 1 {
		basis := arcBasis{V(0, 0, c.Z0), u, v}
		return PathsFromSlice([]Path{adaptiveArc(0, 2*math.Pi, r, basis, args.ScreenMat, stepSq)})
	}

	eyeAzimuth := math.Atan2(b, a)
	angularOffset := math.Acos(ratio)
	theta1 := eyeAzimuth + angularOffset
	theta2 := eyeAzimuth - angularOffset

	basis := arcBasis{V(0, 0, c.Z0), u, v}
	var paths []Path
	paths = append(paths, adaptiveArc(theta2, theta1+2*math.Pi, r, basis, args.ScreenMat, stepSq))

	apex := V(c.R1*math.Cos(theta1), c.R1*math.Sin(theta1), c.Z1)
	p1 := V(r*math.Cos(theta1), r*math.Sin(theta1), c.Z0)
	p2 := V(r*math.Cos(theta2), r*math.Sin(theta2), c.Z0)
	apex2 := V(c.R1*math.Cos(theta2), c.R1*math.Sin(theta2), c.Z1)
	paths = append(paths, Path{p1, apex}, Path{p2, apex2})

	return PathsFromSlice(paths)
}

// NewTransformedCone returns a cone of base radius r0, apex radius r1,
// running from v0 to v1, built the same way as NewTransformedCylinder:
// rotate the Z axis onto v1-v0 and translate into place.
func NewTransformedCone(v0, v1 Vector, r0, r1 float64, texture ConeTexture) *TransformedShape {
	up := Vector{0, 0, 1}
	d := v1.Sub(v0)
	z := d.Length()
	m := axisAlignTransform(d, up, v0)
	c := &Cone{R0: r0, R1: r1, Z0: 0, Z1: z, Texture: texture}
	return NewTransformedShape(c, m)
}
