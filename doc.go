// Package pixfx provides per-pixel color filters for in-memory raster images.
//
// # Overview
//
// pixfx is a Pure Go filter engine. It recolors every pixel of an image
// independently using one of a fixed, ordered set of filters, and always
// returns a new image: inputs are never modified.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfx"
//
//	src, err := pixfx.FromImage(decoded) // any image.Image
//	if err != nil {
//	    return err
//	}
//
//	// Cycle to the next filter and render it
//	f := pixfx.Original.Next() // Grayscale
//	out, err := pixfx.Apply(src, f)
//
// # Filters
//
// The catalog, in cycle order:
//   - Original: identity
//   - Grayscale: BT.601 luma (0.299, 0.587, 0.114)
//   - Invert: 1 - c per channel
//   - Brightness: c * 1.2, capped at 1
//   - Contrast: 0.5 + (c - 0.5) * 1.5, clamped to [0, 1]
//   - Sepia: classic 3x3 sepia matrix, capped at 1
//
// Alpha is never changed by any filter.
//
// # Color Model
//
// Colors are float64 RGBA in [0, 1] with straight (non-premultiplied)
// alpha. Images convert to and from image.Image; 8-bit output rounds to
// the nearest level.
//
// # Concurrency
//
// Images are immutable and engines are reentrant. An engine created with
// WithWorkers splits large images into row bands rendered on a worker pool;
// output is identical for every worker count.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Filter, RGBA, Image, Engine
//   - Internal: parallel (worker pool, row bands), imageio (codecs),
//     config and cli (the pixfx command)
//   - Callers: track (cycling state for one view of an image)
package pixfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
