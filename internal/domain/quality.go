package domain

import "math"

// RejectReason classifies why a video was rejected during cleaning.
type RejectReason string

const (
	ReasonCorrupted          RejectReason = "corrupted_file"
	ReasonLowResolution      RejectReason = "low_resolution"
	ReasonTooDark            RejectReason = "too_dark"
	ReasonTooBright          RejectReason = "too_bright"
	ReasonBlurry             RejectReason = "blurry"
	ReasonInsufficientMotion RejectReason = "insufficient_motion"
)

// AllRejectReasons lists reasons in report-column order.
var AllRejectReasons = []RejectReason{
	ReasonCorrupted,
	ReasonLowResolution,
	ReasonTooDark,
	ReasonTooBright,
	ReasonBlurry,
	ReasonInsufficientMotion,
}

// MotionStats aggregates frame-difference measurements across sampled
// frame pairs. Ratios are NaN until at least one pair was measured.
type MotionStats struct {
	Pairs           int
	ActivePairs     int
	ActiveFramePct  float64
	MeanChangeRatio float64
	MaxChangeRatio  float64
	Detected        bool
}

// QualityMetrics is the per-video measurement output of the analyzer.
// MeanBrightness and Sharpness are NaN when no frame could be sampled.
type QualityMetrics struct {
	Width          int
	Height         int
	MeanBrightness float64
	Sharpness      float64

	MotionChecked bool // class-level flag: was motion analysis requested
	Motion        MotionStats
}

// Corrupted reports whether the metrics describe an unreadable video.
func (m QualityMetrics) Corrupted() bool {
	return math.IsNaN(m.MeanBrightness) || math.IsNaN(m.Sharpness)
}

// VideoReport is one row of the detailed analysis report.
type VideoReport struct {
	Class   string
	File    string
	Metrics QualityMetrics

	Accepted bool
	Reasons  []RejectReason
}

// Decision renders the accepted/rejected column value.
func (r VideoReport) Decision() string {
	if r.Accepted {
		return "accepted"
	}
	return "rejected"
}
