package ports

import "github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"

// ReportSink writes the cleaning reports next to the cleaned dataset.
type ReportSink interface {
	WriteSummary(dir string, perClass []domain.ClassStats, totals domain.ClassStats) (path string, err error)
	WriteDetails(dir string, rows []domain.VideoReport) (path string, err error)
}

// RunStore persists run artifacts for reproducibility.
type RunStore interface {
	SaveCleanRun(run domain.CleanRun) (id string, err error)
}
