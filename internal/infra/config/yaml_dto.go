package config

// yamlFile is the on-disk shape of dataprep.yaml. Numeric fields are
// pointers so an explicit zero can be told apart from "not set".
type yamlFile struct {
	Dataprep YAMLConfig `yaml:"dataprep"`
}

type YAMLConfig struct {
	Hub     YAMLHub     `yaml:"hub"`
	Paths   YAMLPaths   `yaml:"paths"`
	Quality YAMLQuality `yaml:"quality"`
	Motion  YAMLMotion  `yaml:"motion"`
}

type YAMLHub struct {
	Repo        string `yaml:"repo"`
	Revision    string `yaml:"revision"`
	MaxPerClass *int   `yaml:"max_per_class"`
	Seed        *int64 `yaml:"seed"`
	Concurrency *int   `yaml:"concurrency"`
	VideoExt    string `yaml:"video_ext"`
	GroundTruth string `yaml:"ground_truth"`
}

type YAMLPaths struct {
	DatasetDir string `yaml:"dataset_dir"`
	CleanedDir string `yaml:"cleaned_dir"`
	ReportsDir string `yaml:"reports_dir"`
	Layout     string `yaml:"layout"`
}

type YAMLQuality struct {
	MinWidth      *int     `yaml:"min_width"`
	MinHeight     *int     `yaml:"min_height"`
	MinSharpness  *float64 `yaml:"min_sharpness"`
	MinBrightness *float64 `yaml:"min_brightness"`
	MaxBrightness *float64 `yaml:"max_brightness"`
	SampleFrames  *int     `yaml:"sample_frames"`
	FrameStride   *int     `yaml:"frame_stride"`
}

type YAMLMotion struct {
	DiffThreshold       *int     `yaml:"diff_threshold"`
	MinPixelChangeRatio *float64 `yaml:"min_pixel_change_ratio"`
	MinActiveFramePct   *float64 `yaml:"min_active_frame_pct"`
	FlagsFile           string   `yaml:"flags_file"`
}
