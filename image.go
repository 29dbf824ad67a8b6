package pixfx

import (
	"fmt"
	"image"
	"image/color"
)

// Image is an immutable rectangular buffer of RGBA colors.
//
// Pixels are stored row-major with no padding. An Image has no exported
// mutators: derived images are always freshly allocated, so an *Image can be
// shared between goroutines without locking.
type Image struct {
	width  int
	height int
	pix    []RGBA
}

// NewImage creates an image of the given dimensions from row-major pixels.
// The pixels are copied and clamped to [0, 1]; later changes to the slice do
// not affect the image.
func NewImage(width, height int, pixels []RGBA) (*Image, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidImage, len(pixels), width, height)
	}

	img := newImage(width, height)
	for i, c := range pixels {
		img.pix[i] = c.Clamp()
	}
	return img, nil
}

// NewUniformImage creates an image filled with a single color.
func NewUniformImage(width, height int, c RGBA) (*Image, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}

	img := newImage(width, height)
	c = c.Clamp()
	for i := range img.pix {
		img.pix[i] = c
	}
	return img, nil
}

// FromImage creates an image from a standard library image.Image.
// The origin of the result is (0, 0) regardless of the source bounds.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if err := checkDims(width, height); err != nil {
		return nil, err
	}

	img := newImage(width, height)

	// Fast path for NRGBA images
	if n, ok := src.(*image.NRGBA); ok {
		for y := range height {
			row := n.Pix[y*n.Stride : y*n.Stride+width*4]
			dst := img.pix[y*width : (y+1)*width]
			for x := range dst {
				i := x * 4
				dst[x] = RGBA{
					R: float64(row[i+0]) / 255,
					G: float64(row[i+1]) / 255,
					B: float64(row[i+2]) / 255,
					A: float64(row[i+3]) / 255,
				}
			}
		}
		return img, nil
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			img.pix[y*width+x] = FromColor(src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return img, nil
}

// newImage allocates a zeroed image. Callers validate dimensions first.
func newImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pix:    make([]RGBA, width*height),
	}
}

func checkDims(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, width, height)
	}
	return nil
}

// validate reports whether img can be processed.
func (img *Image) validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if err := checkDims(img.width, img.height); err != nil {
		return err
	}
	if len(img.pix) != img.width*img.height {
		return fmt.Errorf("%w: corrupt pixel buffer", ErrInvalidImage)
	}
	return nil
}

// Width returns the width of the image.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image.
func (img *Image) Height() int {
	return img.height
}

// Pixel returns the color at (x, y).
// Coordinates outside the image return Transparent.
func (img *Image) Pixel(x, y int) RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return Transparent
	}
	return img.pix[y*img.width+x]
}

// Pixels returns a row-major copy of the pixel data.
func (img *Image) Pixels() []RGBA {
	out := make([]RGBA, len(img.pix))
	copy(out, img.pix)
	return out
}

// Clone returns a freshly allocated image with identical content.
func (img *Image) Clone() *Image {
	out := newImage(img.width, img.height)
	copy(out.pix, img.pix)
	return out
}

// Equal reports whether img and other have the same dimensions and
// identical pixels.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	if img.width != other.width || img.height != other.height {
		return false
	}
	for i, c := range img.pix {
		if other.pix[i] != c {
			return false
		}
	}
	return true
}

// ToNRGBA converts the image to an 8-bit image.NRGBA.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := range img.height {
		row := out.Pix[y*out.Stride : y*out.Stride+img.width*4]
		for x, c := range img.pix[y*img.width : (y+1)*img.width] {
			i := x * 4
			row[i+0] = to8(c.R)
			row[i+1] = to8(c.G)
			row[i+2] = to8(c.B)
			row[i+3] = to8(c.A)
		}
	}
	return out
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	return img.Pixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}
