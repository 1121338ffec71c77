// Package vision implements grayscale frame measurements used by the
// video quality analyzer: mean intensity, Laplacian-variance sharpness,
// Gaussian smoothing, and thresholded frame differencing.
package vision

import (
	"errors"
	"math"
)

// Frame is a single 8-bit grayscale frame in row-major order.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame validates dimensions against the pixel buffer.
func NewFrame(width, height int, pix []byte) (Frame, error) {
	if width <= 0 || height <= 0 {
		return Frame{}, errors.New("vision: non-positive frame dimensions")
	}
	if len(pix) != width*height {
		return Frame{}, errors.New("vision: pixel buffer size mismatch")
	}
	return Frame{Width: width, Height: height, Pix: pix}, nil
}

// Mean returns the average pixel intensity.
func (f Frame) Mean() float64 {
	if len(f.Pix) == 0 {
		return math.NaN()
	}
	var sum uint64
	for _, p := range f.Pix {
		sum += uint64(p)
	}
	return float64(sum) / float64(len(f.Pix))
}

// LaplacianVariance is the classic blur metric: variance of the 4-neighbor
// Laplacian response. Border pixels are skipped.
func (f Frame) LaplacianVariance() float64 {
	if f.Width < 3 || f.Height < 3 {
		return math.NaN()
	}

	n := (f.Width - 2) * (f.Height - 2)
	resp := make([]float64, 0, n)

	for y := 1; y < f.Height-1; y++ {
		row := y * f.Width
		for x := 1; x < f.Width-1; x++ {
			i := row + x
			lap := float64(f.Pix[i-f.Width]) +
				float64(f.Pix[i+f.Width]) +
				float64(f.Pix[i-1]) +
				float64(f.Pix[i+1]) -
				4*float64(f.Pix[i])
			resp = append(resp, lap)
		}
	}

	var mean float64
	for _, v := range resp {
		mean += v
	}
	mean /= float64(len(resp))

	var variance float64
	for _, v := range resp {
		d := v - mean
		variance += d * d
	}
	return variance / float64(len(resp))
}

// gaussian5 is the separable 5-tap kernel for sigma derived from the
// kernel size (the OpenCV default for a 5x5 blur), fixed-point /256.
var gaussian5 = [5]int{16, 64, 96, 64, 16}

// GaussianBlur5 returns a 5x5 Gaussian-smoothed copy of the frame.
// Edges are handled by clamping coordinates.
func (f Frame) GaussianBlur5() Frame {
	tmp := make([]int, len(f.Pix))
	out := make([]byte, len(f.Pix))

	// Horizontal pass.
	for y := 0; y < f.Height; y++ {
		row := y * f.Width
		for x := 0; x < f.Width; x++ {
			var acc int
			for k := -2; k <= 2; k++ {
				xx := clamp(x+k, 0, f.Width-1)
				acc += gaussian5[k+2] * int(f.Pix[row+xx])
			}
			tmp[row+x] = acc / 256
		}
	}

	// Vertical pass.
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var acc int
			for k := -2; k <= 2; k++ {
				yy := clamp(y+k, 0, f.Height-1)
				acc += gaussian5[k+2] * tmp[yy*f.Width+x]
			}
			out[y*f.Width+x] = byte(clamp(acc/256, 0, 255))
		}
	}

	return Frame{Width: f.Width, Height: f.Height, Pix: out}
}

// DiffRatio returns the fraction of pixels whose absolute difference
// against prev exceeds threshold. Frames must have equal dimensions.
func (f Frame) DiffRatio(prev Frame, threshold uint8) (float64, error) {
	if f.Width != prev.Width || f.Height != prev.Height {
		return 0, errors.New("vision: frame dimension mismatch")
	}
	if len(f.Pix) == 0 {
		return 0, errors.New("vision: empty frame")
	}

	changed := 0
	for i := range f.Pix {
		d := int(f.Pix[i]) - int(prev.Pix[i])
		if d < 0 {
			d = -d
		}
		if d > int(threshold) {
			changed++
		}
	}
	return float64(changed) / float64(len(f.Pix)), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
