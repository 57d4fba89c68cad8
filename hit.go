package ln

import "math"

// Hit is the result of a ray/shape intersection query: either NoHit, or a
// finite ray parameter t > 0.
type Hit struct {
	T float64
}

// NoHit is the distinguished "no intersection" value.
var NoHit = Hit{T: math.Inf(1)}

// NewHit returns a Hit at parameter t.
func NewHit(t float64) Hit {
	return Hit{T: t}
}

// Ok reports whether h represents an actual intersection.
func (h Hit) Ok() bool {
	return !math.IsInf(h.T, 1)
}

// Min returns whichever of h and other has the smaller t (the closer hit).
func (h Hit) Min(other Hit) Hit {
	if other.T < h.T {
		return other
	}
	return h
}
