// Package track holds the cycling state for one view of an image.
//
// A Track pairs a pristine source image with the filter currently shown for
// it. Each Step advances to the next filter in the catalog and renders the
// source (never the previous frame) under it. Several tracks can share one
// source and one engine; the engine itself keeps no state.
package track

import (
	"fmt"
	"sync"

	"github.com/gogpu/pixfx"
)

// Frame is the rendered state of a track.
type Frame struct {
	// Filter is the filter Image was rendered with.
	Filter pixfx.Filter

	// Image is the rendered result. It is never the track's source.
	Image *pixfx.Image

	// Seq increases by one for every request made on the track, including
	// Reset. The initial frame has Seq 0.
	Seq uint64
}

// Track is the filter-cycling state for one view of an image.
//
// Track is safe for concurrent use. Requests are numbered in the order they
// are made and render outside the lock; a request only commits if no newer
// request has committed first, so a slow render never replaces a newer frame.
type Track struct {
	engine *pixfx.Engine
	source *pixfx.Image
	base   *pixfx.Image

	mu      sync.Mutex
	current Frame
	nextSeq uint64
	pending pixfx.Filter // filter of the newest request
}

// New creates a track over source. The track keeps a working copy of source
// as its Original frame. A nil engine selects pixfx.DefaultEngine.
func New(engine *pixfx.Engine, source *pixfx.Image) (*Track, error) {
	if engine == nil {
		engine = pixfx.DefaultEngine()
	}
	base, err := engine.Copy(source)
	if err != nil {
		return nil, err
	}

	return &Track{
		engine:  engine,
		source:  source,
		base:    base,
		current: Frame{Filter: pixfx.Original, Image: base},
		pending: pixfx.Original,
	}, nil
}

// Source returns the image the track renders from.
func (t *Track) Source() *pixfx.Image {
	return t.source
}

// Current returns the last committed frame.
func (t *Track) Current() Frame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Step advances to the filter after the most recently requested one and
// renders it. The returned frame is the one this call rendered; it may already
// be superseded by a newer request when Step returns.
func (t *Track) Step() (Frame, error) {
	t.mu.Lock()
	f := t.pending.Next()
	seq := t.claim(f)
	t.mu.Unlock()

	return t.render(f, seq)
}

// Select renders the track under f.
func (t *Track) Select(f pixfx.Filter) (Frame, error) {
	if !f.Valid() {
		return Frame{}, fmt.Errorf("%w: %d", pixfx.ErrUnknownFilter, int(f))
	}

	t.mu.Lock()
	seq := t.claim(f)
	t.mu.Unlock()

	return t.render(f, seq)
}

// Reset returns the track to its Original frame.
func (t *Track) Reset() Frame {
	t.mu.Lock()
	defer t.mu.Unlock()

	seq := t.claim(pixfx.Original)
	t.current = Frame{Filter: pixfx.Original, Image: t.base, Seq: seq}
	pixfx.Logger().Debug("track: reset", "seq", seq)
	return t.current
}

// claim numbers a new request for f. Callers hold t.mu.
func (t *Track) claim(f pixfx.Filter) uint64 {
	t.nextSeq++
	t.pending = f
	return t.nextSeq
}

func (t *Track) render(f pixfx.Filter, seq uint64) (Frame, error) {
	img, err := t.engine.Apply(t.source, f)
	if err != nil {
		return Frame{}, err
	}
	frame := Frame{Filter: f, Image: img, Seq: seq}

	t.mu.Lock()
	defer t.mu.Unlock()
	if seq > t.current.Seq {
		t.current = frame
		pixfx.Logger().Debug("track: commit", "filter", f.Name(), "seq", seq)
	} else {
		pixfx.Logger().Debug("track: superseded", "filter", f.Name(), "seq", seq, "current", t.current.Seq)
	}
	return frame, nil
}
