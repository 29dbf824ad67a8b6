package parallel

// RowSpan is a half-open range of rows [Y0, Y1).
type RowSpan struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the span.
func (s RowSpan) Rows() int {
	return s.Y1 - s.Y0
}

// SplitRows partitions [0, height) into at most bands contiguous spans of
// near-equal size. Every row belongs to exactly one span and the spans are
// in ascending order. Spans never hold fewer than minRows rows unless the
// whole height is smaller than minRows.
func SplitRows(height, bands, minRows int) []RowSpan {
	if height <= 0 {
		return nil
	}
	if minRows < 1 {
		minRows = 1
	}
	bands = min(max(bands, 1), max(height/minRows, 1))

	spans := make([]RowSpan, 0, bands)
	base, extra := height/bands, height%bands
	y := 0
	for i := range bands {
		n := base
		if i < extra {
			n++
		}
		spans = append(spans, RowSpan{Y0: y, Y1: y + n})
		y += n
	}
	return spans
}

// ForEachRowSpan calls fn once per span of SplitRows(height, ...), running the
// calls on p and returning after all of them finish. A nil pool runs fn
// sequentially on the calling goroutine over the whole height.
func ForEachRowSpan(p *WorkerPool, height, minRows int, fn func(RowSpan)) {
	if height <= 0 {
		return
	}
	if p == nil {
		fn(RowSpan{Y0: 0, Y1: height})
		return
	}

	// Two bands per worker so stealing can even out slow bands.
	spans := SplitRows(height, p.Workers()*2, minRows)
	if len(spans) == 1 {
		fn(spans[0])
		return
	}

	work := make([]func(), len(spans))
	for i, s := range spans {
		work[i] = func() { fn(s) }
	}
	p.ExecuteAll(work)
}
