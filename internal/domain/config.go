package domain

// Config represents the dataprep configuration loaded from dataprep.yaml.
type Config struct {
	Hub     HubConfig
	Paths   PathsConfig
	Quality QualityConfig
	Motion  MotionConfig
}

// HubConfig describes the remote dataset repository and sampling policy.
type HubConfig struct {
	Repo        string
	Revision    string
	MaxPerClass int
	Seed        int64
	Concurrency int
	VideoExt    string
	GroundTruth string
}

type PathsConfig struct {
	DatasetDir string
	CleanedDir string
	ReportsDir string
	Layout     string
}

// QualityConfig holds acceptance thresholds for per-frame metrics.
type QualityConfig struct {
	MinWidth      int
	MinHeight     int
	MinSharpness  float64
	MinBrightness float64
	MaxBrightness float64
	SampleFrames  int
	FrameStride   int
}

// MotionConfig holds frame-difference motion detection parameters.
type MotionConfig struct {
	DiffThreshold       uint8
	MinPixelChangeRatio float64
	MinActiveFramePct   float64
	FlagsFile           string
}

// DefaultConfig provides sane defaults if dataprep.yaml is partially missing.
// Threshold values match the QVED cleaning pipeline.
func DefaultConfig() Config {
	return Config{
		Hub: HubConfig{
			Repo:        "EdgeVLM-Labs/QVED-Test-Dataset",
			Revision:    "main",
			MaxPerClass: 10,
			Seed:        42,
			Concurrency: 4,
			VideoExt:    ".mp4",
			GroundTruth: "fine_grained_labels.json",
		},
		Paths: PathsConfig{
			DatasetDir: "dataset",
			CleanedDir: "cleaned_dataset",
			ReportsDir: "reports",
			Layout:     "{{class}}/{{file}}",
		},
		Quality: QualityConfig{
			MinWidth:      640,
			MinHeight:     360,
			MinSharpness:  50,
			MinBrightness: 35,
			MaxBrightness: 190,
			SampleFrames:  20,
			FrameStride:   15,
		},
		Motion: MotionConfig{
			DiffThreshold:       18,
			MinPixelChangeRatio: 0.01,
			MinActiveFramePct:   0.3,
			FlagsFile:           "exercise_motion_overview.json",
		},
	}
}
