package track

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/pixfx"
)

func newSource(t *testing.T) *pixfx.Image {
	t.Helper()

	pix := make([]pixfx.RGBA, 6*4)
	for i := range pix {
		v := float64(i) / float64(len(pix)-1)
		pix[i] = pixfx.RGBA{R: v, G: 1 - v, B: v / 2, A: 1}
	}
	img, err := pixfx.NewImage(6, 4, pix)
	if err != nil {
		t.Fatalf("NewImage() error: %v", err)
	}
	return img
}

func TestNew(t *testing.T) {
	src := newSource(t)
	tr, err := New(nil, src)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	cur := tr.Current()
	if cur.Filter != pixfx.Original || cur.Seq != 0 {
		t.Errorf("initial frame = %v seq %d, want Original seq 0", cur.Filter, cur.Seq)
	}
	if !cur.Image.Equal(src) {
		t.Error("initial frame should equal the source")
	}
	if cur.Image == src {
		t.Error("initial frame should be a working copy, not the source")
	}
	if tr.Source() != src {
		t.Error("Source() should return the source")
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, pixfx.ErrInvalidImage) {
		t.Errorf("New(nil) error = %v, want ErrInvalidImage", err)
	}
}

func TestStepCyclesThroughCatalog(t *testing.T) {
	src := newSource(t)
	tr, err := New(pixfx.NewEngine(), src)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	want := []pixfx.Filter{
		pixfx.Grayscale, pixfx.Invert, pixfx.Brightness,
		pixfx.Contrast, pixfx.Sepia, pixfx.Original, pixfx.Grayscale,
	}
	for i, f := range want {
		frame, err := tr.Step()
		if err != nil {
			t.Fatalf("Step() %d error: %v", i, err)
		}
		if frame.Filter != f {
			t.Errorf("Step() %d filter = %v, want %v", i, frame.Filter, f)
		}
		if frame.Seq != uint64(i+1) {
			t.Errorf("Step() %d seq = %d, want %d", i, frame.Seq, i+1)
		}

		// Frames always render from the source, not from the last frame.
		direct, err := pixfx.Apply(src, f)
		if err != nil {
			t.Fatalf("Apply(%v) error: %v", f, err)
		}
		if !frame.Image.Equal(direct) {
			t.Errorf("Step() %d image differs from Apply(source, %v)", i, f)
		}
		if tr.Current().Seq != frame.Seq {
			t.Errorf("Current().Seq = %d, want %d", tr.Current().Seq, frame.Seq)
		}
	}
}

func TestSelectAndReset(t *testing.T) {
	src := newSource(t)
	tr, _ := New(nil, src)

	frame, err := tr.Select(pixfx.Contrast)
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if frame.Filter != pixfx.Contrast {
		t.Errorf("Select() filter = %v, want Contrast", frame.Filter)
	}

	next, _ := tr.Step()
	if next.Filter != pixfx.Sepia {
		t.Errorf("Step() after Select(Contrast) = %v, want Sepia", next.Filter)
	}

	reset := tr.Reset()
	if reset.Filter != pixfx.Original || !reset.Image.Equal(src) {
		t.Errorf("Reset() = %v, want Original equal to source", reset.Filter)
	}
	if reset.Seq <= next.Seq {
		t.Errorf("Reset() seq = %d, want > %d", reset.Seq, next.Seq)
	}

	after, _ := tr.Step()
	if after.Filter != pixfx.Grayscale {
		t.Errorf("Step() after Reset() = %v, want Grayscale", after.Filter)
	}
}

func TestSelectUnknown(t *testing.T) {
	tr, _ := New(nil, newSource(t))
	if _, err := tr.Select(pixfx.Filter(12)); !errors.Is(err, pixfx.ErrUnknownFilter) {
		t.Errorf("Select(12) error = %v, want ErrUnknownFilter", err)
	}
	if tr.Current().Seq != 0 {
		t.Error("a rejected Select should not claim a sequence number")
	}
}

func TestSupersededRenderDoesNotCommit(t *testing.T) {
	tr, _ := New(nil, newSource(t))

	// Claim an older request by hand, then let a newer one commit first.
	tr.mu.Lock()
	oldSeq := tr.claim(pixfx.Invert)
	tr.mu.Unlock()

	newer, err := tr.Select(pixfx.Sepia)
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}

	old, err := tr.render(pixfx.Invert, oldSeq)
	if err != nil {
		t.Fatalf("render() error: %v", err)
	}
	if old.Filter != pixfx.Invert {
		t.Errorf("render() returned %v, want Invert", old.Filter)
	}

	cur := tr.Current()
	if cur.Seq != newer.Seq || cur.Filter != pixfx.Sepia {
		t.Errorf("Current() = %v seq %d, want Sepia seq %d", cur.Filter, cur.Seq, newer.Seq)
	}
}

func TestConcurrentSteps(t *testing.T) {
	engine := pixfx.NewEngine(pixfx.WithWorkers(2), pixfx.WithParallelThreshold(0))
	defer engine.Close()

	tr, _ := New(engine, newSource(t))

	const steps = 60
	var wg sync.WaitGroup
	seen := make(chan uint64, steps)
	for range steps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frame, err := tr.Step()
			if err != nil {
				t.Error(err)
				return
			}
			seen <- frame.Seq
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]bool)
	for s := range seen {
		unique[s] = true
	}
	if len(unique) != steps {
		t.Errorf("got %d distinct sequence numbers, want %d", len(unique), steps)
	}

	cur := tr.Current()
	if cur.Seq != steps {
		t.Errorf("Current().Seq = %d, want %d (newest request)", cur.Seq, steps)
	}
	// 60 steps from Original is a whole number of cycles.
	if cur.Filter != pixfx.Original {
		t.Errorf("Current().Filter = %v, want Original", cur.Filter)
	}
}
