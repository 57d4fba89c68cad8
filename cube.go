package ln

// CubeTexture selects which line-art generator Cube.Paths runs.
type CubeTexture struct {
	stripes uint64 // 0 means Vanilla (equivalent to Striped(1))
}

// VanillaCubeTexture renders just the 12 edges of the cube.
func VanillaCubeTexture() CubeTexture { return CubeTexture{stripes: 1} }

// StripedCubeTexture renders stripes+1 vertical strokes per vertical face
// plus stripes+1 perimeter rings on the top and bottom faces.
func StripedCubeTexture(stripes uint64) CubeTexture { return CubeTexture{stripes: stripes} }

// Cube is an axis-aligned box defined by two opposite corners.
type Cube struct {
	Min, Max Vector
	Texture  CubeTexture
}

// NewCube returns the default Cube (vanilla texture, 12 edges) spanning min
// to max.
func NewCube(min, max Vector) *Cube {
	return &Cube{Min: min, Max: max, Texture: VanillaCubeTexture()}
}

// WithTexture sets c's texture and returns c for chaining.
func (c *Cube) WithTexture(t CubeTexture) *Cube {
	c.Texture = t
	return c
}

// Compile is a no-op: Cube has no lazy internal structure.
func (c *Cube) Compile() {}

// BoundingBox returns the cube itself as its own AABB.
func (c *Cube) BoundingBox() Box {
	return Box{Min: c.Min, Max: c.Max}
}

// Contains reports whether v lies within the cube inflated by eps.
func (c *Cube) Contains(v Vector, eps float64) bool {
	if v.X < c.Min.X-eps || v.X > c.Max.X+eps {
		return false
	}
	if v.Y < c.Min.Y-eps || v.Y > c.Max.Y+eps {
		return false
	}
	if v.Z < c.Min.Z-eps || v.Z > c.Max.Z+eps {
		return false
	}
	return true
}

// Intersect slab-tests r against the cube, returning the exit t when the
// origin starts inside.
func (c *Cube) Intersect(r Ray) Hit {
	n := c.Min.Sub(r.Origin).Div(r.Direction)
	f := c.Max.Sub(r.Origin).Div(r.Direction)
	n, f = n.Min(f), n.Max(f)
	t0 := n.MaxComponent()
	t1 := f.MinComponent()

	if t0 < 1e-3 && t1 > 1e-3 {
		return NewHit(t1)
	}
	if t0 >= 1e-3 && t0 < t1 {
		return NewHit(t0)
	}
	return NoHit
}

// Paths generates the cube's line art per its Texture.
func (c *Cube) Paths(args RenderArgs) Paths {
	stripes := c.Texture.stripes
	if stripes == 0 {
		stripes = 1
	}
	return c.pathsStriped(stripes)
}

func (c *Cube) pathsStriped(stripes uint64) Paths {
	x1, y1, z1 := c.Min.X, c.Min.Y, c.Min.Z
	x2, y2, z2 := c.Max.X, c.Max.Y, c.Max.Z
	var paths []Path

	for i := uint64(0); i <= stripes; i++ {
		p := float64(i) / float64(stripes)
		x := x1 + (x2-x1)*p
		y := y1 + (y2-y1)*p
		xr := x2 - (x2-x1)*p
		yr := y2 - (y2-y1)*p
		if i != stripes {
			paths = append(paths,
				Path{V(x, y1, z1), V(x, y1, z2)},
				Path{V(xr, y2, z1), V(xr, y2, z2)},
				Path{V(x1, yr, z1), V(x1, yr, z2)},
				Path{V(x2, y, z1), V(x2, y, z2)},
			)
		}
		for _, z := range [2]float64{z1, z2} {
			paths = append(paths,
				Path{V(x, y, z), V(xr, y, z)},
				Path{V(x, y, z), V(x, yr, z)},
			)
		}
	}
	return PathsFromSlice(paths)
}
