package vision

import (
	"math"
	"testing"
)

func uniform(w, h int, v byte) Frame {
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = v
	}
	return Frame{Width: w, Height: h, Pix: pix}
}

func TestNewFrameValidation(t *testing.T) {
	if _, err := NewFrame(0, 4, nil); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := NewFrame(2, 2, make([]byte, 3)); err == nil {
		t.Fatalf("expected error for buffer mismatch")
	}
	if _, err := NewFrame(2, 2, make([]byte, 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMean(t *testing.T) {
	f := uniform(8, 8, 100)
	if got := f.Mean(); got != 100 {
		t.Fatalf("expected mean 100, got %v", got)
	}

	f.Pix[0] = 228 // +128 over one of 64 pixels => +2
	if got := f.Mean(); got != 102 {
		t.Fatalf("expected mean 102, got %v", got)
	}

	empty := Frame{}
	if !math.IsNaN(empty.Mean()) {
		t.Fatalf("expected NaN for empty frame")
	}
}

func TestLaplacianVarianceFlatIsZero(t *testing.T) {
	f := uniform(16, 16, 77)
	if got := f.LaplacianVariance(); got != 0 {
		t.Fatalf("expected 0 variance on flat frame, got %v", got)
	}
}

func TestLaplacianVarianceEdgesScoreHigher(t *testing.T) {
	// Vertical step edge: left half dark, right half bright.
	sharp := uniform(16, 16, 0)
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			sharp.Pix[y*16+x] = 255
		}
	}
	blurred := sharp.GaussianBlur5()

	vs := sharp.LaplacianVariance()
	vb := blurred.LaplacianVariance()
	if vs <= 0 {
		t.Fatalf("expected positive variance on edge frame, got %v", vs)
	}
	if vb >= vs {
		t.Fatalf("expected blur to reduce variance: sharp=%v blurred=%v", vs, vb)
	}
}

func TestGaussianBlurPreservesFlat(t *testing.T) {
	f := uniform(10, 10, 200)
	b := f.GaussianBlur5()
	for i, p := range b.Pix {
		// Fixed-point rounding may lose at most one level.
		if int(p) < 199 || int(p) > 200 {
			t.Fatalf("pixel %d drifted: %d", i, p)
		}
	}
}

func TestDiffRatio(t *testing.T) {
	a := uniform(10, 10, 50)
	b := uniform(10, 10, 50)

	r, err := a.DiffRatio(b, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 0 {
		t.Fatalf("expected 0 ratio, got %v", r)
	}

	// Change 10 of 100 pixels beyond the threshold.
	for i := 0; i < 10; i++ {
		b.Pix[i] = 120
	}
	r, err = a.DiffRatio(b, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 0.1 {
		t.Fatalf("expected 0.1 ratio, got %v", r)
	}
}

func TestDiffRatioDimensionMismatch(t *testing.T) {
	a := uniform(10, 10, 0)
	b := uniform(8, 10, 0)
	if _, err := a.DiffRatio(b, 18); err == nil {
		t.Fatalf("expected error")
	}
}
