package ln

import "math"

// Box is an axis-aligned bounding box with Min <= Max componentwise.
type Box struct {
	Min, Max Vector
}

// NewBox returns the box spanning min and max.
func NewBox(min, max Vector) Box {
	return Box{Min: min, Max: max}
}

// EmptyBox is the box with no extent, suitable as a fold starting point for
// BoxForShapes. Its Min is +inf and Max is -inf in every component so that
// Extend with any real box yields that box.
var EmptyBox = Box{
	Min: Vector{math.Inf(1), math.Inf(1), math.Inf(1)},
	Max: Vector{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
}

// BoxForShapes returns the union bounding box of every shape's own box.
func BoxForShapes(shapes []Shape) Box {
	box := EmptyBox
	for _, s := range shapes {
		box = box.Extend(s.BoundingBox())
	}
	return box
}

// Extend returns the smallest box containing both b and other.
func (b Box) Extend(other Box) Box {
	return Box{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Contains reports whether v lies within b (inclusive).
func (b Box) Contains(v Vector) bool {
	return v.X >= b.Min.X && v.X <= b.Max.X &&
		v.Y >= b.Min.Y && v.Y <= b.Max.Y &&
		v.Z >= b.Min.Z && v.Z <= b.Max.Z
}

// Anchor returns the point within b at fractional position a, where a =
// (0,0,0) is Min and a = (1,1,1) is Max.
func (b Box) Anchor(a Vector) Vector {
	return b.Min.Add(b.Size().Mul(a))
}

// Size returns the extent of b along each axis.
func (b Box) Size() Vector {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of b.
func (b Box) Center() Vector {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Corners returns the 8 corners of b.
func (b Box) Corners() [8]Vector {
	return [8]Vector{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
}

// Intersect slab-tests r against b, returning the entry and exit ray
// parameters. If the ray misses, tMin > tMax.
func (b Box) Intersect(r Ray) (tMin, tMax float64) {
	n := b.Min.Sub(r.Origin).Div(r.Direction)
	f := b.Max.Sub(r.Origin).Div(r.Direction)
	n, f = n.Min(f), n.Max(f)
	tMin = n.MaxComponent()
	tMax = f.MinComponent()
	return
}
