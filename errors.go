package pixfx

import "errors"

// Engine errors.
var (
	// ErrInvalidImage is returned when an image is nil, has a non-positive
	// dimension, or its pixel data does not match its dimensions.
	ErrInvalidImage = errors.New("pixfx: invalid image")

	// ErrUnknownFilter is returned for a filter value or name outside the catalog.
	ErrUnknownFilter = errors.New("pixfx: unknown filter")
)
