package ln

import "math"

// CylinderTextureKind selects which line-art generator Cylinder.Paths runs.
type CylinderTextureKind int

const (
	// CylinderOutline renders the silhouette seen from the camera.
	CylinderOutline CylinderTextureKind = iota
	// CylinderStriped renders num vertical lines around the circumference.
	CylinderStriped
)

// CylinderTexture configures a Cylinder's line-art generator.
type CylinderTexture struct {
	Kind CylinderTextureKind
	Num  uint64
}

// CylinderTextureOutline is the default texture.
func CylinderTextureOutline() CylinderTexture {
	return CylinderTexture{Kind: CylinderOutline}
}

// CylinderTextureStriped renders num equally spaced vertical lines.
func CylinderTextureStriped(num uint64) CylinderTexture {
	return CylinderTexture{Kind: CylinderStriped, Num: num}
}

// Cylinder is a solid cylinder aligned along the Z axis, spanning z0 to z1.
type Cylinder struct {
	Radius, Z0, Z1 float64
	Texture        CylinderTexture
}

// NewCylinder returns a Cylinder with the default outline texture.
func NewCylinder(radius, z0, z1 float64) *Cylinder {
	return &Cylinder{Radius: radius, Z0: z0, Z1: z1, Texture: CylinderTextureOutline()}
}

// WithTexture sets c's texture and returns c for chaining.
func (c *Cylinder) WithTexture(t CylinderTexture) *Cylinder {
	c.Texture = t
	return c
}

// Compile is a no-op: Cylinder has no lazy internal structure.
func (c *Cylinder) Compile() {}

// BoundingBox returns the cylinder's axis-aligned bounding box.
func (c *Cylinder) BoundingBox() Box {
	r := c.Radius
	return Box{Min: V(-r, -r, c.Z0), Max: V(r, r, c.Z1)}
}

// Contains reports whether v lies within the cylinder inflated by eps.
func (c *Cylinder) Contains(v Vector, eps float64) bool {
	xy := V(v.X, v.Y, 0)
	if xy.Length() > c.Radius+eps {
		return false
	}
	return v.Z >= c.Z0-eps && v.Z <= c.Z1+eps
}

// Intersect solves the ray/cylinder quadratic clipped to [Z0, Z1].
func (c *Cylinder) Intersect(ray Ray) Hit {
	r := c.Radius
	o, d := ray.Origin, ray.Direction
	a := d.X*d.X + d.Y*d.Y
	b := 2*o.X*d.X + 2*o.Y*d.Y
	cc := o.X*o.X + o.Y*o.Y - r*r
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

// Paths generates the cylinder's line art per its Texture.
func (c *Cylinder) Paths(args RenderArgs) Paths {
	if c.Texture.Kind == CylinderStriped {
		num := c.Texture.Num
		if num == 0 {
			num = 36
		}
		return c.pathsStriped(num)
	}
	return c.pathsOutline(args)
}

func (c *Cylinder) pathsStriped(num uint64) Paths {
	var result []Path
	step := 360 / int(num)
	if step == 0 {
		step = 1
	}
	for a := 0; a < 360; a += step {
		x := c.Radius * math.Cos(Radians(float64(a)))
		y := c.Radius * math.Sin(Radians(float64(a)))
		result = append(result, Path{V(x, y, c.Z0), V(x, y, c.Z1)})
	}
	return PathsFromSlice(result)
}

func (c *Cylinder) pathsOutline(args RenderArgs) Paths {
	// Silhouette generators solve E.x*cos(theta) + E.y*sin(theta) = r,
	// i.e. a*cos(theta) + b*sin(theta) = cc, giving
	// theta = atan2(b, a) +- acos(cc / sqrt(a^2+b^2)).
	r := c.Radius
	a, b := args.Eye.X, args.Eye.Y
	cc := r
	sqrtAB := math.Sqrt(a*a + b*b)

	u, v := Vector{1, 0, 0}, Vector{0, 1, 0}
	stepSq := args.Step * args.Step

	ratio := cc / sqrtAB
	if math.Abs(ratio) > 1 {
		// Eye is inside the cylinder's radius: no proper silhouette, fall
		// back to the two full end circles.
		var paths []Path
		for _, z := range [2]float64{c.Z0, c.Z1} {
			basis := arcBasis{V(0, 0, z), u, v}
			paths = append(paths, adaptiveArc(0, 2*math.Pi, r, basis, args.ScreenMat, stepSq))
		}
		return PathsFromSlice(paths)
	}

	eyeAzimuth := math.Atan2(b, a)
	angularOffset := math.Acos(ratio)
	theta1 := eyeAzimuth + angularOffset
	theta2 := eyeAzimuth - angularOffset

	var paths []Path
	for _, z := range [2]float64{c.Z0, c.Z1} {
		basis := arcBasis{V(0, 0, z), u, v}
		paths = append(paths, adaptiveArc(theta2, theta1, r, basis, args.ScreenMat, stepSq))
		paths = append(paths, adaptiveArcInner(theta1, theta2+2*math.Pi, r, basis, args.ScreenMat, stepSq))
	}

	a0 := V(r*math.Cos(theta1), r*math.Sin(theta1), c.Z0)
	a1 := V(r*math.Cos(theta1), r*math.Sin(theta1), c.Z1)
	b0 := V(r*math.Cos(theta2), r*math.Sin(theta2), c.Z0)
	b1 := V(r*math.Cos(theta2), r*math.Sin(theta2), c.Z1)
	paths = append(paths, Path{a0, a1}, Path{b0, b1})

	return PathsFromSlice(paths)
}

// NewTransformedCylinder returns a cylinder of the given radius running
// between v0 and v1, built by rotating the Z axis onto that direction and
// translating into place.
func NewTransformedCylinder(v0, v1 Vector, radius float64, texture CylinderTexture) *TransformedShape {
	up := Vector{0, 0, 1}
	d := v1.Sub(v0)
	z := d.Length()
	m := axisAlignTransform(d, up, v0)
	c := &Cylinder{Radius: radius, Z0: 0, Z1: z, Texture: texture}
	return NewTransformedShape(c, m)
}

// axisAlignTransform returns the matrix rotating up onto d's direction (about
// the axis up x d) and then translating to origin.
func axisAlignTransform(d, up, origin Vector) Matrix {
	angle := math.Acos(d.Normalize().Dot(up))
	if angle == 0 {
		return Translate(origin)
	}
	axis := up.Cross(d).Normalize()
	return Rotate(axis, angle).Translated(origin)
}
