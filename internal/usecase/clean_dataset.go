package usecase

import (
	"context"
	"path/filepath"
	"time"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
	ucquality "github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase/quality"
)

type CleanDataset struct {
	scanner  ports.DatasetScanner
	analyzer ports.VideoAnalyzer
	flags    ports.MotionFlagsLoader
	copier   ports.DatasetCopier
	reports  ports.ReportSink
	runs     ports.RunStore // optional; nil skips run persistence
	root     string
	cfg      domain.Config
	resolver *domain.LayoutResolver
	onFile   func(Progress)
}

type CleanOption func(*CleanDataset)

// WithCleanProgress registers a per-file progress callback.
func WithCleanProgress(fn func(Progress)) CleanOption {
	return func(uc *CleanDataset) { uc.onFile = fn }
}

func NewCleanDataset(
	scanner ports.DatasetScanner,
	analyzer ports.VideoAnalyzer,
	flags ports.MotionFlagsLoader,
	copier ports.DatasetCopier,
	reports ports.ReportSink,
	runs ports.RunStore,
	root string,
	cfg domain.Config,
	opts ...CleanOption,
) *CleanDataset {
	uc := &CleanDataset{
		scanner:  scanner,
		analyzer: analyzer,
		flags:    flags,
		copier:   copier,
		reports:  reports,
		runs:     runs,
		root:     root,
		cfg:      cfg,
		resolver: domain.NewLayoutResolver(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute analyzes every video in the dataset tree, copies the accepted
// ones into the cleaned tree preserving class structure, and writes the
// summary and per-video reports. Analysis errors are environmental and
// abort the run; a bad video is a rejection, not an error.
func (uc *CleanDataset) Execute(ctx context.Context) (domain.CleanRun, error) {
	run := domain.CleanRun{
		DatasetDir: uc.cfg.Paths.DatasetDir,
		CleanedDir: uc.cfg.Paths.CleanedDir,
		StartedAt:  time.Now(),
	}

	motionFlags, err := uc.flags.LoadFlags(filepath.Join(uc.root, uc.cfg.Motion.FlagsFile))
	if err != nil {
		return run, err
	}

	classes, err := uc.scanner.ScanClasses(filepath.Join(uc.root, uc.cfg.Paths.DatasetDir))
	if err != nil {
		return run, err
	}

	total := 0
	for _, c := range classes {
		total += len(c.Videos)
	}
	done := 0

	for _, class := range classes {
		// A class absent from the overview gets the stricter treatment.
		checkMotion, ok := motionFlags[class.Name]
		if !ok {
			checkMotion = true
		}

		stats := domain.NewClassStats(class.Name)

		for _, file := range class.Videos {
			if err := ctx.Err(); err != nil {
				return run, err
			}

			src := filepath.Join(class.Dir, file)
			metrics, err := uc.analyzer.Analyze(ctx, src, checkMotion)
			if err != nil {
				return run, err
			}

			accepted, reasons := ucquality.Evaluate(metrics, uc.cfg.Quality)
			stats.Record(accepted, reasons)
			run.Files = append(run.Files, domain.VideoReport{
				Class:    class.Name,
				File:     file,
				Metrics:  metrics,
				Accepted: accepted,
				Reasons:  reasons,
			})

			if accepted {
				if err := uc.copyAccepted(class.Name, file, src); err != nil {
					return run, err
				}
			}

			done++
			if uc.onFile != nil {
				uc.onFile(Progress{Done: done, Total: total, Path: src})
			}
		}

		run.Classes = append(run.Classes, stats)
	}

	run.Totals = domain.SumStats(run.Classes)
	run.FinishedAt = time.Now()

	reportsDir := filepath.Join(uc.root, uc.cfg.Paths.ReportsDir)
	if _, err := uc.reports.WriteSummary(reportsDir, run.Classes, run.Totals); err != nil {
		return run, err
	}
	if _, err := uc.reports.WriteDetails(reportsDir, run.Files); err != nil {
		return run, err
	}

	if uc.runs != nil {
		id, err := uc.runs.SaveCleanRun(run)
		if err != nil {
			return run, err
		}
		run.ID = id
	}

	return run, nil
}

func (uc *CleanDataset) copyAccepted(class, file, src string) error {
	rel, err := uc.resolver.Resolve(uc.cfg.Paths.Layout, domain.VideoVars(class, file))
	if err != nil {
		return err
	}
	dst := filepath.Join(uc.root, uc.cfg.Paths.CleanedDir, filepath.FromSlash(rel))
	return uc.copier.CopyVideo(src, dst)
}
