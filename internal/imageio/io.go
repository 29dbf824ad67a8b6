// Package imageio decodes files into pixfx images and encodes results back.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // WEBP decoder

	"github.com/gogpu/pixfx"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Ext returns the canonical file extension for f, including the dot.
func (f Format) Ext() string {
	switch f {
	case JPEG:
		return ".jpg"
	case "":
		return ".png"
	default:
		return "." + string(f)
	}
}

// ParseFormat returns the format named by s ("png", "jpg", "jpeg", "bmp",
// "tif", "tiff"), ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath returns the output format implied by the file extension of
// path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Options controls encoding.
type Options struct {
	// JPEGQuality is the JPEG quality (1-100). Zero selects 95.
	JPEGQuality int
}

func (o Options) jpegQuality() int {
	if o.JPEGQuality == 0 {
		return 95
	}
	return min(max(o.JPEGQuality, 1), 100)
}

// Load loads an image from the given file path, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Load(path string) (*pixfx.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an image from a byte slice, auto-detecting the format.
func LoadBytes(data []byte) (*pixfx.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*pixfx.Image, error) {
	m, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	img, err := pixfx.FromImage(m)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", format, err)
	}
	return img, nil
}

// Save encodes img to path using the format implied by its extension.
func Save(path string, img *pixfx.Image, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, img, format, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *pixfx.Image, format Format, opts Options) error {
	if img == nil {
		return fmt.Errorf("imageio: encode: %w", pixfx.ErrInvalidImage)
	}
	m := img.ToNRGBA()

	var err error
	switch format {
	case PNG, "":
		err = png.Encode(w, m)
	case JPEG:
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: opts.jpegQuality()})
	case BMP:
		err = bmp.Encode(w, m)
	case TIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}
