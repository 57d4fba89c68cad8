package ln

import "errors"

// Construction-time errors. The render path itself never returns an error:
// numeric degeneracies there are handled by returning NoHit or empty Paths
// (see package doc and §7 of the design notes).
var (
	// ErrDegenerateFunction is returned by NewFunction when the supplied
	// bounding box has zero or negative extent along an axis.
	ErrDegenerateFunction = errors.New("ln: function bounding box must have positive extent")

	// ErrEmptyMesh is returned by NewMesh when given zero triangles.
	ErrEmptyMesh = errors.New("ln: mesh requires at least one triangle")

	// ErrNoChildren is returned by NewIntersection/NewDifference when given
	// zero child shapes.
	ErrNoChildren = errors.New("ln: CSG combinator requires at least one child shape")
)
