package pixfx

// Option configures an Engine during creation.
//
// Example:
//
//	// Sequential engine (default)
//	e := pixfx.NewEngine()
//
//	// Row-parallel engine on 8 goroutines
//	e := pixfx.NewEngine(pixfx.WithWorkers(8))
//	defer e.Close()
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	workers           int
	parallelThreshold int
	minRowsPerTask    int
}

// DefaultParallelThreshold is the pixel count below which a parallel engine
// still renders on the calling goroutine.
const DefaultParallelThreshold = 256 * 256

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		workers:           1,
		parallelThreshold: DefaultParallelThreshold,
		minRowsPerTask:    8,
	}
}

// WithWorkers sets the number of goroutines used to render large images.
// Values below 2 keep the engine sequential.
//
// Example:
//
//	e := pixfx.NewEngine(pixfx.WithWorkers(runtime.NumCPU()))
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum pixel count for parallel rendering.
// Non-positive values make every image eligible.
func WithParallelThreshold(pixels int) Option {
	return func(o *engineOptions) {
		o.parallelThreshold = max(pixels, 0)
	}
}

// WithMinRowsPerTask sets the minimum number of rows handed to one worker.
func WithMinRowsPerTask(rows int) Option {
	return func(o *engineOptions) {
		if rows > 0 {
			o.minRowsPerTask = rows
		}
	}
}
