package pixfx

// Filter coefficients.
const (
	// BT.601 luma weights.
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114

	brightnessFactor = 1.2

	contrastFactor = 1.5
	contrastMid    = 0.5
)

// Transform returns c recolored by f. Alpha is never changed and every
// color channel of the result lies in [0, 1]. Values of f outside the
// catalog leave c unchanged.
func (f Filter) Transform(c RGBA) RGBA {
	switch f {
	case Grayscale:
		return grayscale(c)
	case Invert:
		return invert(c)
	case Brightness:
		return brightness(c)
	case Contrast:
		return contrast(c)
	case Sepia:
		return sepia(c)
	case Original:
		return c
	default:
		return c
	}
}

func grayscale(c RGBA) RGBA {
	// The weights sum to 1 only up to rounding, so white can land a ulp above 1.
	gray := clampUnit(c.R*lumaR + c.G*lumaG + c.B*lumaB)
	return RGBA{R: gray, G: gray, B: gray, A: c.A}
}

func invert(c RGBA) RGBA {
	return RGBA{
		R: clampUnit(1 - c.R),
		G: clampUnit(1 - c.G),
		B: clampUnit(1 - c.B),
		A: c.A,
	}
}

func brightness(c RGBA) RGBA {
	return RGBA{
		R: clampUnit(c.R * brightnessFactor),
		G: clampUnit(c.G * brightnessFactor),
		B: clampUnit(c.B * brightnessFactor),
		A: c.A,
	}
}

func contrast(c RGBA) RGBA {
	return RGBA{
		R: clampUnit(contrastMid + (c.R-contrastMid)*contrastFactor),
		G: clampUnit(contrastMid + (c.G-contrastMid)*contrastFactor),
		B: clampUnit(contrastMid + (c.B-contrastMid)*contrastFactor),
		A: c.A,
	}
}

func sepia(c RGBA) RGBA {
	return RGBA{
		R: clampUnit(c.R*0.393 + c.G*0.769 + c.B*0.189),
		G: clampUnit(c.R*0.349 + c.G*0.686 + c.B*0.168),
		B: clampUnit(c.R*0.272 + c.G*0.534 + c.B*0.131),
		A: c.A,
	}
}
