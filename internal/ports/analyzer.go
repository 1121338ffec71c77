package ports

import (
	"context"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

// VideoAnalyzer measures quality metrics for one local video file.
// checkMotion enables frame-difference motion analysis for the class.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, path string, checkMotion bool) (domain.QualityMetrics, error)
}
