// Package videoprobe measures video quality through ffprobe/ffmpeg:
// stream geometry, sampled-frame brightness and sharpness, and optional
// frame-difference motion statistics.
package videoprobe

import (
	"context"
	"errors"
	"math"
	"os/exec"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/vision"
)

type Analyzer struct {
	ffprobe string
	ffmpeg  string
	quality domain.QualityConfig
	motion  domain.MotionConfig
	exec    runner
}

type Option func(*Analyzer)

// WithBinaries overrides the ffprobe/ffmpeg binary names or paths.
func WithBinaries(ffprobe, ffmpeg string) Option {
	return func(a *Analyzer) {
		a.ffprobe = ffprobe
		a.ffmpeg = ffmpeg
	}
}

func NewAnalyzer(quality domain.QualityConfig, motion domain.MotionConfig, opts ...Option) *Analyzer {
	a := &Analyzer{
		ffprobe: "ffprobe",
		ffmpeg:  "ffmpeg",
		quality: quality,
		motion:  motion,
		exec:    execRunner{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var _ ports.VideoAnalyzer = (*Analyzer)(nil)

// corruptedMetrics marks a video as unreadable: NaN sampled metrics.
func corruptedMetrics(checkMotion bool) domain.QualityMetrics {
	return domain.QualityMetrics{
		MeanBrightness: math.NaN(),
		Sharpness:      math.NaN(),
		MotionChecked:  checkMotion,
		Motion: domain.MotionStats{
			ActiveFramePct:  math.NaN(),
			MeanChangeRatio: math.NaN(),
			MaxChangeRatio:  math.NaN(),
		},
	}
}

// Analyze measures one local video. A video that cannot be probed or
// decoded yields corrupted metrics, not an error: rejection is the
// cleaner's decision. Errors are reserved for environment problems
// (ffmpeg missing, context canceled).
func (a *Analyzer) Analyze(ctx context.Context, path string, checkMotion bool) (domain.QualityMetrics, error) {
	info, err := a.probe(ctx, path)
	if err != nil {
		if envErr := asEnvError(ctx, "videoprobe.probe", path, err); envErr != nil {
			return domain.QualityMetrics{}, envErr
		}
		return corruptedMetrics(checkMotion), nil
	}

	raw, err := a.sampleFrames(ctx, path, info)
	if err != nil {
		if envErr := asEnvError(ctx, "videoprobe.sample", path, err); envErr != nil {
			return domain.QualityMetrics{}, envErr
		}
		m := corruptedMetrics(checkMotion)
		m.Width = info.Width
		m.Height = info.Height
		return m, nil
	}

	frames := make([]vision.Frame, 0, len(raw))
	for _, pix := range raw {
		f, ferr := vision.NewFrame(info.Width, info.Height, pix)
		if ferr != nil {
			continue
		}
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		m := corruptedMetrics(checkMotion)
		m.Width = info.Width
		m.Height = info.Height
		return m, nil
	}

	metrics := domain.QualityMetrics{
		Width:         info.Width,
		Height:        info.Height,
		MotionChecked: checkMotion,
		Motion: domain.MotionStats{
			ActiveFramePct:  math.NaN(),
			MeanChangeRatio: math.NaN(),
			MaxChangeRatio:  math.NaN(),
		},
	}

	var brightnessSum, sharpnessSum float64
	for _, f := range frames {
		brightnessSum += f.Mean()
		sharpnessSum += f.LaplacianVariance()
	}
	metrics.MeanBrightness = brightnessSum / float64(len(frames))
	metrics.Sharpness = sharpnessSum / float64(len(frames))

	if checkMotion && len(frames) > 1 {
		metrics.Motion = a.measureMotion(frames)
	}

	return metrics, nil
}

// measureMotion blurs consecutive frames and thresholds their absolute
// difference, mirroring the blurred-absdiff approach of the original
// pipeline.
func (a *Analyzer) measureMotion(frames []vision.Frame) domain.MotionStats {
	stats := domain.MotionStats{
		ActiveFramePct:  math.NaN(),
		MeanChangeRatio: math.NaN(),
		MaxChangeRatio:  math.NaN(),
	}

	prev := frames[0].GaussianBlur5()
	var ratios []float64
	active := 0

	for _, f := range frames[1:] {
		cur := f.GaussianBlur5()
		ratio, err := cur.DiffRatio(prev, a.motion.DiffThreshold)
		if err != nil {
			prev = cur
			continue
		}
		ratios = append(ratios, ratio)
		stats.Pairs++
		if ratio >= a.motion.MinPixelChangeRatio {
			active++
		}
		prev = cur
	}

	if stats.Pairs == 0 {
		return stats
	}

	stats.ActivePairs = active
	stats.ActiveFramePct = float64(active) / float64(stats.Pairs)

	var sum, peak float64
	for _, r := range ratios {
		sum += r
		if r > peak {
			peak = r
		}
	}
	stats.MeanChangeRatio = sum / float64(len(ratios))
	stats.MaxChangeRatio = peak
	stats.Detected = stats.ActiveFramePct >= a.motion.MinActiveFramePct

	return stats
}

// asEnvError returns a non-nil OpError when the failure is environmental
// rather than a property of the video file.
func asEnvError(ctx context.Context, op, path string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: err}
	}
	if ctx.Err() != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Path: path, Err: ctx.Err()}
	}
	return nil
}
