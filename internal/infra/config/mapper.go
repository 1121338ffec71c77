package config

import (
	"fmt"
	"strings"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

// MapConfig overlays parsed YAML values onto the defaults and validates
// the result.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if v := strings.TrimSpace(y.Hub.Repo); v != "" {
		cfg.Hub.Repo = v
	}
	if v := strings.TrimSpace(y.Hub.Revision); v != "" {
		cfg.Hub.Revision = v
	}
	if y.Hub.MaxPerClass != nil {
		cfg.Hub.MaxPerClass = *y.Hub.MaxPerClass
	}
	if y.Hub.Seed != nil {
		cfg.Hub.Seed = *y.Hub.Seed
	}
	if y.Hub.Concurrency != nil {
		cfg.Hub.Concurrency = *y.Hub.Concurrency
	}
	if v := strings.TrimSpace(y.Hub.VideoExt); v != "" {
		cfg.Hub.VideoExt = v
	}
	if v := strings.TrimSpace(y.Hub.GroundTruth); v != "" {
		cfg.Hub.GroundTruth = v
	}

	if v := strings.TrimSpace(y.Paths.DatasetDir); v != "" {
		cfg.Paths.DatasetDir = v
	}
	if v := strings.TrimSpace(y.Paths.CleanedDir); v != "" {
		cfg.Paths.CleanedDir = v
	}
	if v := strings.TrimSpace(y.Paths.ReportsDir); v != "" {
		cfg.Paths.ReportsDir = v
	}
	if v := strings.TrimSpace(y.Paths.Layout); v != "" {
		cfg.Paths.Layout = v
	}

	if y.Quality.MinWidth != nil {
		cfg.Quality.MinWidth = *y.Quality.MinWidth
	}
	if y.Quality.MinHeight != nil {
		cfg.Quality.MinHeight = *y.Quality.MinHeight
	}
	if y.Quality.MinSharpness != nil {
		cfg.Quality.MinSharpness = *y.Quality.MinSharpness
	}
	if y.Quality.MinBrightness != nil {
		cfg.Quality.MinBrightness = *y.Quality.MinBrightness
	}
	if y.Quality.MaxBrightness != nil {
		cfg.Quality.MaxBrightness = *y.Quality.MaxBrightness
	}
	if y.Quality.SampleFrames != nil {
		cfg.Quality.SampleFrames = *y.Quality.SampleFrames
	}
	if y.Quality.FrameStride != nil {
		cfg.Quality.FrameStride = *y.Quality.FrameStride
	}

	if y.Motion.DiffThreshold != nil {
		v := *y.Motion.DiffThreshold
		if v < 0 || v > 255 {
			return domain.Config{}, invalidField(path, "motion.diff_threshold", "must be in [0, 255]")
		}
		cfg.Motion.DiffThreshold = uint8(v)
	}
	if y.Motion.MinPixelChangeRatio != nil {
		cfg.Motion.MinPixelChangeRatio = *y.Motion.MinPixelChangeRatio
	}
	if y.Motion.MinActiveFramePct != nil {
		cfg.Motion.MinActiveFramePct = *y.Motion.MinActiveFramePct
	}
	if v := strings.TrimSpace(y.Motion.FlagsFile); v != "" {
		cfg.Motion.FlagsFile = v
	}

	if err := validate(path, cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func validate(path string, cfg domain.Config) error {
	if strings.TrimSpace(cfg.Hub.Repo) == "" {
		return invalidField(path, "hub.repo", "repo is required")
	}
	if cfg.Hub.MaxPerClass <= 0 {
		return invalidField(path, "hub.max_per_class", "must be positive")
	}
	if cfg.Hub.Concurrency <= 0 {
		return invalidField(path, "hub.concurrency", "must be positive")
	}
	if !strings.HasPrefix(cfg.Hub.VideoExt, ".") {
		return invalidField(path, "hub.video_ext", "must start with a dot")
	}

	if !strings.Contains(cfg.Paths.Layout, "{{file}}") {
		return invalidField(path, "paths.layout", "layout must contain {{file}} to keep targets unique")
	}

	q := cfg.Quality
	if q.MinWidth <= 0 || q.MinHeight <= 0 {
		return invalidField(path, "quality.min_width/min_height", "must be positive")
	}
	if q.MinBrightness < 0 || q.MaxBrightness > 255 || q.MinBrightness >= q.MaxBrightness {
		return invalidField(path, "quality.min_brightness/max_brightness", "must satisfy 0 <= min < max <= 255")
	}
	if q.MinSharpness < 0 {
		return invalidField(path, "quality.min_sharpness", "must be non-negative")
	}
	if q.SampleFrames <= 0 {
		return invalidField(path, "quality.sample_frames", "must be positive")
	}
	if q.FrameStride <= 0 {
		return invalidField(path, "quality.frame_stride", "must be positive")
	}

	m := cfg.Motion
	if m.MinPixelChangeRatio < 0 || m.MinPixelChangeRatio > 1 {
		return invalidField(path, "motion.min_pixel_change_ratio", "must be in [0, 1]")
	}
	if m.MinActiveFramePct < 0 || m.MinActiveFramePct > 1 {
		return invalidField(path, "motion.min_active_frame_pct", "must be in [0, 1]")
	}
	if strings.TrimSpace(m.FlagsFile) == "" {
		return invalidField(path, "motion.flags_file", "flags file is required")
	}

	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
