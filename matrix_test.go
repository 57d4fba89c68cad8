package ln

import (
	"math"
	"testing"
)

func matrixApproxEqual(a, b Matrix, tol float64) bool {
	af := [16]float64{a.X00, a.X01, a.X02, a.X03, a.X10, a.X11, a.X12, a.X13, a.X20, a.X21, a.X22, a.X23, a.X30, a.X31, a.X32, a.X33}
	bf := [16]float64{b.X00, b.X01, b.X02, b.X03, b.X10, b.X11, b.X12, b.X13, b.X20, b.X21, b.X22, b.X23, b.X30, b.X31, b.X32, b.X33}
	for i := range af {
		if math.Abs(af[i]-bf[i]) > tol {
			return false
		}
	}
	return true
}

func TestMatrixInverseIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(V(1, 2, 3))},
		{"scale", Scale(V(2, 3, 4))},
		{"rotate", Rotate(V(0, 0, 1), math.Pi/3)},
		{"composed", Translate(V(1, 2, 3)).Mul(Rotate(V(1, 1, 0), 0.7)).Mul(Scale(V(2, 1, 0.5)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Inverse()
			product := tt.m.Mul(inv)
			if !matrixApproxEqual(product, Identity(), 1e-9) {
				t.Fatalf("m * m.Inverse() != identity, got %+v", product)
			}
		})
	}
}

func TestMatrixInverseSingularReturnsIdentity(t *testing.T) {
	singular := Matrix{}
	got := singular.Inverse()
	if !matrixApproxEqual(got, Identity(), 1e-9) {
		t.Fatalf("Inverse of singular matrix = %+v, want identity", got)
	}
}

func TestMatrixMulPositionTranslate(t *testing.T) {
	m := Translate(V(1, 2, 3))
	got := m.MulPosition(V(0, 0, 0))
	want := V(1, 2, 3)
	if got != want {
		t.Fatalf("Translate.MulPosition(origin) = %v, want %v", got, want)
	}
}

func TestMatrixMulDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(V(5, 5, 5))
	got := m.MulDirection(V(1, 0, 0))
	want := V(1, 0, 0)
	if math.Abs(got.Sub(want).Length()) > 1e-9 {
		t.Fatalf("MulDirection affected by translation: got %v, want %v", got, want)
	}
}

func TestViewportMapsNDCCornersToPixelCorners(t *testing.T) {
	m := Viewport(200, 100)

	corners := []struct {
		ndc, pixel Vector
	}{
		{V(-1, -1, 0), V(0, 0, 0)},
		{V(1, 1, 0), V(200, 100, 0)},
		{V(0, 0, 0), V(100, 50, 0)},
	}
	for _, c := range corners {
		got := m.MulPosition(c.ndc)
		if math.Abs(got.X-c.pixel.X) > 1e-9 || math.Abs(got.Y-c.pixel.Y) > 1e-9 {
			t.Fatalf("Viewport(200,100).MulPosition(%v) = %v, want %v", c.ndc, got, c.pixel)
		}
	}
}
