// Package quality turns raw video metrics into an accept/reject
// decision against the configured thresholds.
package quality

import (
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

// Evaluate applies the quality thresholds to one video's metrics.
// A corrupted video is rejected outright; otherwise every failed check
// contributes its own reason so reports show the full picture.
func Evaluate(m domain.QualityMetrics, q domain.QualityConfig) (bool, []domain.RejectReason) {
	if m.Corrupted() {
		return false, []domain.RejectReason{domain.ReasonCorrupted}
	}

	var reasons []domain.RejectReason

	if m.Width < q.MinWidth || m.Height < q.MinHeight {
		reasons = append(reasons, domain.ReasonLowResolution)
	}
	if m.MeanBrightness < q.MinBrightness {
		reasons = append(reasons, domain.ReasonTooDark)
	}
	if m.MeanBrightness > q.MaxBrightness {
		reasons = append(reasons, domain.ReasonTooBright)
	}
	if m.Sharpness < q.MinSharpness {
		reasons = append(reasons, domain.ReasonBlurry)
	}
	if m.MotionChecked && !m.Motion.Detected {
		reasons = append(reasons, domain.ReasonInsufficientMotion)
	}

	return len(reasons) == 0, reasons
}
