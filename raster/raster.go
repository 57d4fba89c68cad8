// Package raster rasterizes an ln.Paths polyline set into a PNG image,
// drawing each segment as an anti-aliased line via distance-to-segment
// alpha coverage.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/HellOwhatAs/larnt-go"
)

// LineWidth is the default stroke width in pixels.
const LineWidth = 2.5

// supersample is the factor the canvas is over-rendered at before being
// downscaled to the requested output size, smoothing the coverage-based
// line antialiasing further.
const supersample = 2

// ToImage rasterizes paths onto a width x height canvas at supersample
// resolution, stroking every segment in black at LineWidth, then downscales
// to the requested size with a Catmull-Rom filter.
func ToImage(paths ln.Paths, width, height int) *image.RGBA {
	big := ToImageWithWidth(paths, width*supersample, height*supersample, LineWidth*supersample)
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Over, nil)
	return out
}

// ToImageWithWidth is ToImage with an explicit stroke width.
func ToImageWithWidth(paths ln.Paths, width, height int, lineWidth float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	black := color.RGBA{0, 0, 0, 255}
	for _, p := range paths.Paths {
		for i := 0; i+1 < len(p); i++ {
			a, b := p[i], p[i+1]
			// Flip Y: world up maps to image up, matching Paths.ToSVG's
			// transform.
			drawLine(img, a.X, float64(height)-a.Y, b.X, float64(height)-b.Y, lineWidth, black)
		}
	}
	return img
}

// SavePNG rasterizes paths and writes it to path as a PNG file.
func SavePNG(path string, paths ln.Paths, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer f.Close()
	return Encode(f, paths, width, height)
}

// Encode rasterizes paths and writes it as a PNG to w.
func Encode(w io.Writer, paths ln.Paths, width, height int) error {
	img := ToImage(paths, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}

// drawLine stamps the segment (x0,y0)-(x1,y1) into img with the given
// stroke width, using distance-to-segment coverage for antialiasing: a
// pixel's alpha ramps from 1 at radius-0.5 to 0 at radius+0.5.
func drawLine(img *image.RGBA, x0, y0, x1, y1, width float64, col color.RGBA) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	radius := width / 2

	minX := int(math.Floor(math.Min(x0, x1) - radius - 1))
	maxX := int(math.Ceil(math.Max(x0, x1) + radius + 1))
	minY := int(math.Floor(math.Min(y0, y1) - radius - 1))
	maxY := int(math.Ceil(math.Max(y0, y1) + radius + 1))

	minX = clampInt(minX, 0, w)
	maxX = clampInt(maxX, 0, w)
	minY = clampInt(minY, 0, h)
	maxY = clampInt(maxY, 0, h)

	dx := x1 - x0
	dy := y1 - y0
	lineLenSq := dx*dx + dy*dy

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			px, py := float64(x), float64(y)

			t := 0.0
			if lineLenSq != 0 {
				dot := (px-x0)*dx + (py-y0)*dy
				t = clampFloat(dot/lineLenSq, 0, 1)
			}

			closestX := x0 + t*dx
			closestY := y0 + t*dy
			distX := px - closestX
			distY := py - closestY
			dist := math.Sqrt(distX*distX + distY*distY)

			var alpha float64
			switch {
			case dist <= radius-0.5:
				alpha = 1
			case dist >= radius+0.5:
				alpha = 0
			default:
				alpha = 1 - (dist - (radius - 0.5))
			}

			if alpha > 0 {
				bg := img.RGBAAt(x, y)
				img.SetRGBA(x, y, blend(bg, col, alpha))
			}
		}
	}
}

func blend(bg, fg color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(bg.R)*(1-alpha) + float64(fg.R)*alpha),
		G: uint8(float64(bg.G)*(1-alpha) + float64(fg.G)*alpha),
		B: uint8(float64(bg.B)*(1-alpha) + float64(fg.B)*alpha),
		A: 255,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
