package pixfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/anthonynsimon/bild/effect"
)

// oracleImage builds an opaque 8-bit image covering a spread of colors.
func oracleImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := range 32 {
		for x := range 32 {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 8),
				G: uint8(y * 8),
				B: uint8((x + y) * 4),
				A: 255,
			})
		}
	}
	return img
}

// TestAgainstBild compares filters that bild implements with the same
// coefficients. bild truncates where we round, so allow two levels.
func TestAgainstBild(t *testing.T) {
	std := oracleImage()
	src, err := FromImage(std)
	if err != nil {
		t.Fatalf("FromImage() error: %v", err)
	}

	tests := []struct {
		f    Filter
		want *image.RGBA
	}{
		{Invert, effect.Invert(std)},
		{Sepia, effect.Sepia(std)},
	}
	for _, tt := range tests {
		t.Run(tt.f.Name(), func(t *testing.T) {
			got := mustApply(t, src, tt.f).ToNRGBA()
			for y := range 32 {
				for x := range 32 {
					g := got.NRGBAAt(x, y)
					w := tt.want.RGBAAt(x, y)
					if diff8(g.R, w.R) > 2 || diff8(g.G, w.G) > 2 || diff8(g.B, w.B) > 2 || g.A != w.A {
						t.Fatalf("pixel (%d,%d) = %v, bild = %v", x, y, g, w)
					}
				}
			}
		})
	}
}

func diff8(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
