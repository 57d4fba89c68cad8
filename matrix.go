package ln

import "math"

// Matrix is a row-major 4x4 homogeneous transform.
type Matrix struct {
	X00, X01, X02, X03 float64
	X10, X11, X12, X13 float64
	X20, X21, X22, X23 float64
	X30, X31, X32, X33 float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation by v.
func Translate(v Vector) Matrix {
	return Matrix{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

// Scale returns a scaling transform with per-axis factors v.
func Scale(v Vector) Matrix {
	return Matrix{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// Rotate returns a rotation by angle radians around axis, which need not be
// normalized.
func Rotate(axis Vector, angle float64) Matrix {
	a := axis.Normalize()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c
	return Matrix{
		a.X*a.X*m + c, a.X*a.Y*m - a.Z*s, a.X*a.Z*m + a.Y*s, 0,
		a.Y*a.X*m + a.Z*s, a.Y*a.Y*m + c, a.Y*a.Z*m - a.X*s, 0,
		a.Z*a.X*m - a.Y*s, a.Z*a.Y*m + a.X*s, a.Z*a.Z*m + c, 0,
		0, 0, 0, 1,
	}
}

// Frustum returns a perspective projection matrix for the given view volume.
func Frustum(l, r, b, t, n, f float64) Matrix {
	t1 := 2 * n
	t2 := r - l
	t3 := t - b
	t4 := f - n
	return Matrix{
		t1 / t2, 0, (r + l) / t2, 0,
		0, t1 / t3, (t + b) / t3, 0,
		0, 0, (-f - n) / t4, (-t1 * f) / t4,
		0, 0, -1, 0,
	}
}

// Perspective returns a perspective projection matrix from a vertical field
// of view (degrees), aspect ratio, and near/far clip planes.
func Perspective(fovy, aspect, near, far float64) Matrix {
	ymax := near * math.Tan(fovy*math.Pi/360)
	xmax := ymax * aspect
	return Frustum(-xmax, xmax, -ymax, ymax, near, far)
}

// Orthographic returns an orthographic projection matrix for the given view
// volume.
func Orthographic(l, r, b, t, n, f float64) Matrix {
	return Matrix{
		2 / (r - l), 0, 0, -(r + l) / (r - l),
		0, 2 / (t - b), 0, -(t + b) / (t - b),
		0, 0, -2 / (f - n), -(f + n) / (f - n),
		0, 0, 0, 1,
	}
}

// LookAt returns a view matrix placing the camera at eye, looking toward
// center, with the given up direction.
func LookAt(eye, center, up Vector) Matrix {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f).Normalize()
	return Matrix{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Viewport returns the matrix mapping NDC space [-1,1]^2 to pixel space
// [0,w]x[0,h].
func Viewport(w, h float64) Matrix {
	return Identity().Translated(Vector{1, 1, 0}).Scaled(Vector{w / 2, h / 2, 1})
}

// Mul returns the matrix product m * other.
func (m Matrix) Mul(b Matrix) Matrix {
	var r Matrix
	r.X00 = m.X00*b.X00 + m.X01*b.X10 + m.X02*b.X20 + m.X03*b.X30
	r.X01 = m.X00*b.X01 + m.X01*b.X11 + m.X02*b.X21 + m.X03*b.X31
	r.X02 = m.X00*b.X02 + m.X01*b.X12 + m.X02*b.X22 + m.X03*b.X32
	r.X03 = m.X00*b.X03 + m.X01*b.X13 + m.X02*b.X23 + m.X03*b.X33
	r.X10 = m.X10*b.X00 + m.X11*b.X10 + m.X12*b.X20 + m.X13*b.X30
	r.X11 = m.X10*b.X01 + m.X11*b.X11 + m.X12*b.X21 + m.X13*b.X31
	r.X12 = m.X10*b.X02 + m.X11*b.X12 + m.X12*b.X22 + m.X13*b.X32
	r.X13 = m.X10*b.X03 + m.X11*b.X13 + m.X12*b.X23 + m.X13*b.X33
	r.X20 = m.X20*b.X00 + m.X21*b.X10 + m.X22*b.X20 + m.X23*b.X30
	r.X21 = m.X20*b.X01 + m.X21*b.X11 + m.X22*b.X21 + m.X23*b.X31
	r.X22 = m.X20*b.X02 + m.X21*b.X12 + m.X22*b.X22 + m.X23*b.X32
	r.X23 = m.X20*b.X03 + m.X21*b.X13 + m.X22*b.X23 + m.X23*b.X33
	r.X30 = m.X30*b.X00 + m.X31*b.X10 + m.X32*b.X20 + m.X33*b.X30
	r.X31 = m.X30*b.X01 + m.X31*b.X11 + m.X32*b.X21 + m.X33*b.X31
	r.X32 = m.X30*b.X02 + m.X31*b.X12 + m.X32*b.X22 + m.X33*b.X32
	r.X33 = m.X30*b.X03 + m.X31*b.X13 + m.X32*b.X23 + m.X33*b.X33
	return r
}

// Translated returns Translate(v).Mul(m) — translates after applying m.
func (m Matrix) Translated(v Vector) Matrix {
	return Translate(v).Mul(m)
}

// Scaled returns Scale(v).Mul(m) — scales after applying m.
func (m Matrix) Scaled(v Vector) Matrix {
	return Scale(v).Mul(m)
}

// Rotated returns Rotate(axis, angle).Mul(m).
func (m Matrix) Rotated(axis Vector, angle float64) Matrix {
	return Rotate(axis, angle).Mul(m)
}

// MulPosition treats v as the homogeneous point (x,y,z,1), applies m, and
// divides by the resulting w.
func (m Matrix) MulPosition(v Vector) Vector {
	x := m.X00*v.X + m.X01*v.Y + m.X02*v.Z + m.X03
	y := m.X10*v.X + m.X11*v.Y + m.X12*v.Z + m.X13
	z := m.X20*v.X + m.X21*v.Y + m.X22*v.Z + m.X23
	w := m.X30*v.X + m.X31*v.Y + m.X32*v.Z + m.X33
	if w != 1 && w != 0 {
		return Vector{x / w, y / w, z / w}
	}
	return Vector{x, y, z}
}

// VectorW is a homogeneous point that keeps its clip-space w component
// available, e.g. for frustum-clipping tests.
type VectorW struct {
	X, Y, Z, W float64
}

// DistanceSquared returns the squared distance between the perspective
// divided (x, y) of v and w — used by adaptive screen-space chopping.
func (v VectorW) DistanceSquared(w VectorW) float64 {
	dx := v.X/v.W - w.X/w.W
	dy := v.Y/v.W - w.Y/w.W
	return dx*dx + dy*dy
}

// MulPositionW applies m to v as a homogeneous point and returns the result
// before dividing by w, keeping w available for clip tests.
func (m Matrix) MulPositionW(v Vector) VectorW {
	x := m.X00*v.X + m.X01*v.Y + m.X02*v.Z + m.X03
	y := m.X10*v.X + m.X11*v.Y + m.X12*v.Z + m.X13
	z := m.X20*v.X + m.X21*v.Y + m.X22*v.Z + m.X23
	w := m.X30*v.X + m.X31*v.Y + m.X32*v.Z + m.X33
	return VectorW{x, y, z, w}
}

// MulDirection applies m to v as a direction (w=0), ignoring translation.
func (m Matrix) MulDirection(v Vector) Vector {
	x := m.X00*v.X + m.X01*v.Y + m.X02*v.Z
	y := m.X10*v.X + m.X11*v.Y + m.X12*v.Z
	z := m.X20*v.X + m.X21*v.Y + m.X22*v.Z
	return Vector{x, y, z}.Normalize()
}

// MulRay applies m to the ray's origin as a position and to its direction as
// a direction, without renormalizing — callers that rely on consistent ray
// parameterization should keep their own direction scaling.
func (m Matrix) MulRay(r Ray) Ray {
	return Ray{
		Origin:    m.MulPosition(r.Origin),
		Direction: m.mulDirectionRaw(r.Direction),
	}
}

func (m Matrix) mulDirectionRaw(v Vector) Vector {
	x := m.X00*v.X + m.X01*v.Y + m.X02*v.Z
	y := m.X10*v.X + m.X11*v.Y + m.X12*v.Z
	z := m.X20*v.X + m.X21*v.Y + m.X22*v.Z
	return Vector{x, y, z}
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		m.X00, m.X10, m.X20, m.X30,
		m.X01, m.X11, m.X21, m.X31,
		m.X02, m.X12, m.X22, m.X32,
		m.X03, m.X13, m.X23, m.X33,
	}
}

// Determinant returns the determinant of m.
func (m Matrix) Determinant() float64 {
	return m.X00*m.X11*m.X22*m.X33 - m.X00*m.X11*m.X23*m.X32 +
		m.X00*m.X12*m.X23*m.X31 - m.X00*m.X12*m.X21*m.X33 +
		m.X00*m.X13*m.X21*m.X32 - m.X00*m.X13*m.X22*m.X31 -
		m.X01*m.X12*m.X23*m.X30 + m.X01*m.X12*m.X20*m.X33 -
		m.X01*m.X13*m.X20*m.X32 + m.X01*m.X13*m.X22*m.X30 -
		m.X01*m.X10*m.X22*m.X33 + m.X01*m.X10*m.X23*m.X32 +
		m.X02*m.X13*m.X20*m.X31 - m.X02*m.X13*m.X21*m.X30 +
		m.X02*m.X10*m.X21*m.X33 - m.X02*m.X10*m.X23*m.X31 +
		m.X02*m.X11*m.X23*m.X30 - m.X02*m.X11*m.X20*m.X33 -
		m.X03*m.X10*m.X21*m.X32 + m.X03*m.X10*m.X22*m.X31 -
		m.X03*m.X11*m.X22*m.X30 + m.X03*m.X11*m.X20*m.X32 -
		m.X03*m.X12*m.X20*m.X31 + m.X03*m.X12*m.X21*m.X30
}

// Inverse returns the inverse of m. If m is singular (determinant within
// 1e-12 of zero), it logs a warning and returns the identity matrix rather
// than dividing by zero, per this package's no-panic numeric-degeneracy
// contract.
func (m Matrix) Inverse() Matrix {
	d := m.Determinant()
	if math.Abs(d) < 1e-12 {
		logger().Warn("matrix inverse: singular matrix, returning identity")
		return Identity()
	}
	var r Matrix
	r.X00 = (m.X12*m.X23*m.X31 - m.X13*m.X22*m.X31 + m.X13*m.X21*m.X32 - m.X11*m.X23*m.X32 - m.X12*m.X21*m.X33 + m.X11*m.X22*m.X33) / d
	r.X01 = (m.X03*m.X22*m.X31 - m.X02*m.X23*m.X31 - m.X03*m.X21*m.X32 + m.X01*m.X23*m.X32 + m.X02*m.X21*m.X33 - m.X01*m.X22*m.X33) / d
	r.X02 = (m.X02*m.X13*m.X31 - m.X03*m.X12*m.X31 + m.X03*m.X11*m.X32 - m.X01*m.X13*m.X32 - m.X02*m.X11*m.X33 + m.X01*m.X12*m.X33) / d
	r.X03 = (m.X03*m.X12*m.X21 - m.X02*m.X13*m.X21 - m.X03*m.X11*m.X22 + m.X01*m.X13*m.X22 + m.X02*m.X11*m.X23 - m.X01*m.X12*m.X23) / d
	r.X10 = (m.X13*m.X22*m.X30 - m.X12*m.X23*m.X30 - m.X13*m.X20*m.X32 + m.X10*m.X23*m.X32 + m.X12*m.X20*m.X33 - m.X10*m.X22*m.X33) / d
	r.X11 = (m.X02*m.X23*m.X30 - m.X03*m.X22*m.X30 + m.X03*m.X20*m.X32 - m.X00*m.X23*m.X32 - m.X02*m.X20*m.X33 + m.X00*m.X22*m.X33) / d
	r.X12 = (m.X03*m.X12*m.X30 - m.X02*m.X13*m.X30 - m.X03*m.X10*m.X32 + m.X00*m.X13*m.X32 + m.X02*m.X10*m.X33 - m.X00*m.X12*m.X33) / d
	r.X13 = (m.X02*m.X13*m.X20 - m.X03*m.X12*m.X20 + m.X03*m.X10*m.X22 - m.X00*m.X13*m.X22 - m.X02*m.X10*m.X23 + m.X00*m.X12*m.X23) / d
	r.X20 = (m.X11*m.X23*m.X30 - m.X13*m.X21*m.X30 + m.X13*m.X20*m.X31 - m.X10*m.X23*m.X31 - m.X11*m.X20*m.X33 + m.X10*m.X21*m.X33) / d
	r.X21 = (m.X03*m.X21*m.X30 - m.X01*m.X23*m.X30 - m.X03*m.X20*m.X31 + m.X00*m.X23*m.X31 + m.X01*m.X20*m.X33 - m.X00*m.X21*m.X33) / d
	r.X22 = (m.X01*m.X13*m.X30 - m.X03*m.X11*m.X30 + m.X03*m.X10*m.X31 - m.X00*m.X13*m.X31 - m.X01*m.X10*m.X33 + m.X00*m.X11*m.X33) / d
	r.X23 = (m.X03*m.X11*m.X20 - m.X01*m.X13*m.X20 - m.X03*m.X10*m.X21 + m.X00*m.X13*m.X21 + m.X01*m.X10*m.X23 - m.X00*m.X11*m.X23) / d
	r.X30 = (m.X12*m.X21*m.X30 - m.X11*m.X22*m.X30 - m.X12*m.X20*m.X31 + m.X10*m.X22*m.X31 + m.X11*m.X20*m.X32 - m.X10*m.X21*m.X32) / d
	r.X31 = (m.X01*m.X22*m.X30 - m.X02*m.X21*m.X30 + m.X02*m.X20*m.X31 - m.X00*m.X22*m.X31 - m.X01*m.X20*m.X32 + m.X00*m.X21*m.X32) / d
	r.X32 = (m.X02*m.X11*m.X30 - m.X01*m.X12*m.X30 - m.X02*m.X10*m.X31 + m.X00*m.X12*m.X31 + m.X01*m.X10*m.X32 - m.X00*m.X11*m.X32) / d
	r.X33 = (m.X01*m.X12*m.X20 - m.X02*m.X11*m.X20 + m.X02*m.X10*m.X21 - m.X00*m.X12*m.X21 - m.X01*m.X10*m.X22 + m.X00*m.X11*m.X22) / d
	return r
}
