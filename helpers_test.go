package pixfx

import (
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across pixfx tests.

// randomImage creates an image with deterministic pseudo-random colors,
// including fully transparent and fully opaque pixels.
func randomImage(t testing.TB, w, h int, seed uint64) *Image {
	t.Helper()

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	pix := make([]RGBA, w*h)
	for i := range pix {
		pix[i] = RGBA{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: rng.Float64()}
	}
	// Pin the extremes.
	pix[0] = RGBA{R: 0, G: 0, B: 0, A: 0}
	pix[len(pix)-1] = RGBA{R: 1, G: 1, B: 1, A: 1}

	img, err := NewImage(w, h, pix)
	if err != nil {
		t.Fatalf("NewImage(%d, %d) error: %v", w, h, err)
	}
	return img
}

// singlePixel creates a 1x1 image holding c.
func singlePixel(t testing.TB, c RGBA) *Image {
	t.Helper()

	img, err := NewImage(1, 1, []RGBA{c})
	if err != nil {
		t.Fatalf("NewImage(1, 1) error: %v", err)
	}
	return img
}

// mustApply applies f with the default engine and fails the test on error.
func mustApply(t testing.TB, src *Image, f Filter) *Image {
	t.Helper()

	out, err := Apply(src, f)
	if err != nil {
		t.Fatalf("Apply(%v) error: %v", f, err)
	}
	return out
}
