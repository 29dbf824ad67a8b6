package pixfx

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Filter identifies one member of the fixed filter catalog.
// The declaration order is the cycle order used by Next.
type Filter int

const (
	// Original leaves every pixel unchanged.
	Original Filter = iota

	// Grayscale replaces each pixel with its BT.601 luma.
	Grayscale

	// Invert produces the negative of each color channel.
	Invert

	// Brightness scales each color channel by 1.2.
	Brightness

	// Contrast stretches each color channel away from mid gray by 1.5.
	Contrast

	// Sepia applies a warm vintage tone.
	Sepia
)

// NumFilters is the number of filters in the catalog.
const NumFilters = int(Sepia) + 1

var filterInfo = [NumFilters]struct {
	name        string
	description string
}{
	Original:   {"Original", "No modification"},
	Grayscale:  {"Grayscale", "Black & white conversion"},
	Invert:     {"Invert", "Negative color effect"},
	Brightness: {"Brightness", "Increase luminosity"},
	Contrast:   {"Contrast", "Enhance light/dark difference"},
	Sepia:      {"Sepia", "Vintage warm tone"},
}

// Filters returns every filter in cycle order.
func Filters() []Filter {
	out := make([]Filter, NumFilters)
	for i := range out {
		out[i] = Filter(i)
	}
	return out
}

// Valid reports whether f is a member of the catalog.
func (f Filter) Valid() bool {
	return f >= Original && f <= Sepia
}

// Next returns the filter that follows f in cycle order, wrapping from the
// last filter back to Original. Values outside the catalog map to Original.
func (f Filter) Next() Filter {
	if !f.Valid() {
		return Original
	}
	return Filter((int(f) + 1) % NumFilters)
}

// Name returns the human-readable name of f.
func (f Filter) Name() string {
	if !f.Valid() {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterInfo[f].name
}

// Description returns a short description of what f does.
func (f Filter) Description() string {
	if !f.Valid() {
		return ""
	}
	return filterInfo[f].description
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return f.Name()
}

// ParseFilter looks up a filter by name, ignoring case and surrounding space.
func ParseFilter(name string) (Filter, error) {
	fold := cases.Fold()
	key := fold.String(strings.TrimSpace(name))
	for i, info := range filterInfo {
		if fold.String(info.name) == key {
			return Filter(i), nil
		}
	}
	return Original, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Filter) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, int(f))
	}
	return []byte(strings.ToLower(f.Name())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Filter) UnmarshalText(text []byte) error {
	parsed, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
