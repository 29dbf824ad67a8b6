package pixfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/pixfx/internal/parallel"
)

// Engine applies catalog filters to images.
//
// An Engine is stateless apart from its optional worker pool: Apply and Copy
// may be called concurrently from any number of goroutines. Neither method
// ever modifies its input.
type Engine struct {
	opts engineOptions
	pool *parallel.WorkerPool
}

// NewEngine creates an engine with the given options.
// Engines created with WithWorkers(n > 1) own a worker pool and should be
// closed when no longer needed.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{opts: o}
	if o.workers > 1 {
		e.pool = parallel.NewWorkerPool(o.workers)
		Logger().Info("pixfx: worker pool started", "workers", o.workers)
	}
	return e
}

// Close stops the engine's worker pool. A closed engine keeps working and
// renders on the calling goroutine. Close is safe to call multiple times.
func (e *Engine) Close() {
	if e.pool != nil && e.pool.IsRunning() {
		e.pool.Close()
		Logger().Info("pixfx: worker pool stopped")
	}
}

// Workers returns the number of goroutines the engine renders with.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 1
	}
	return e.pool.Workers()
}

// Apply returns a new image with f applied to every pixel of src.
//
// For Original the result is a copy of src. The result never shares memory
// with src. Apply fails with ErrInvalidImage for a nil or empty src and with
// ErrUnknownFilter for a filter outside the catalog.
func (e *Engine) Apply(src *Image, f Filter) (*Image, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFilter, int(f))
	}
	if f == Original {
		return src.Clone(), nil
	}

	start := time.Now()
	dst := newImage(src.width, src.height)
	width := src.width

	e.forEachRowSpan(src, func(s parallel.RowSpan) {
		lo, hi := s.Y0*width, s.Y1*width
		in, out := src.pix[lo:hi], dst.pix[lo:hi]
		for i, c := range in {
			out[i] = f.Transform(c)
		}
	})

	Logger().Debug("pixfx: apply",
		"filter", f.Name(),
		"width", src.width,
		"height", src.height,
		"elapsed", time.Since(start))
	return dst, nil
}

// Copy returns a freshly allocated image with the same dimensions and pixels
// as src.
func (e *Engine) Copy(src *Image) (*Image, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}
	return src.Clone(), nil
}

// forEachRowSpan runs fn over every row of src, in parallel when the engine
// has a running pool and src is large enough.
func (e *Engine) forEachRowSpan(src *Image, fn func(parallel.RowSpan)) {
	pool := e.pool
	if pool != nil && (!pool.IsRunning() || len(src.pix) < e.opts.parallelThreshold) {
		pool = nil
	}
	parallel.ForEachRowSpan(pool, src.height, e.opts.minRowsPerTask, fn)
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// DefaultEngine returns the sequential engine used by the package-level
// Apply and Copy functions.
func DefaultEngine() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})
	return defaultEngine
}

// Apply applies f to src using the default engine. See Engine.Apply.
func Apply(src *Image, f Filter) (*Image, error) {
	return DefaultEngine().Apply(src, f)
}

// Copy copies src using the default engine. See Engine.Copy.
func Copy(src *Image) (*Image, error) {
	return DefaultEngine().Copy(src)
}
