package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/gogpu/pixfx"
)

// filterValue adapts a pixfx.Filter to a command-line flag.
type filterValue struct {
	f *pixfx.Filter
}

var _ pflag.Value = filterValue{}

func newFilterValue(f *pixfx.Filter, def pixfx.Filter) filterValue {
	*f = def
	return filterValue{f: f}
}

func (v filterValue) String() string {
	if v.f == nil {
		return ""
	}
	return strings.ToLower(v.f.Name())
}

func (v filterValue) Set(s string) error {
	f, err := pixfx.ParseFilter(s)
	if err != nil {
		return err
	}
	*v.f = f
	return nil
}

func (v filterValue) Type() string {
	return "filter"
}
