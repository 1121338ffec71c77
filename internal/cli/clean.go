package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/logger"
	uiprogress "github.com/EdgeVLM-Labs/data-prep-lab/internal/ui/progress"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase"
)

func cleanCmd(debug *bool) *cobra.Command {
	var workspace string
	var plain bool
	var noSave bool

	c := &cobra.Command{
		Use:   "clean",
		Short: "Analyze dataset videos and copy the accepted ones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer setupLogger(ws.root, *debug)()

			log := logger.L()
			log.Info("clean.start", "dataset", ws.cfg.Paths.DatasetDir)

			runs := ws.runs
			if noSave {
				runs = nil
			}

			var run domain.CleanRun
			execute := func(onEvent func(usecase.Progress)) error {
				opts := []usecase.CleanOption{}
				if onEvent != nil {
					opts = append(opts, usecase.WithCleanProgress(onEvent))
				}
				uc := usecase.NewCleanDataset(ws.scanner, ws.analyzer, ws.flags, ws.copier,
					ws.reports, runs, ws.root, ws.cfg, opts...)
				var execErr error
				run, execErr = uc.Execute(cmd.Context())
				return execErr
			}

			if plain {
				err = execute(func(p usecase.Progress) {
					fmt.Printf("[%d/%d] %s\n", p.Done, p.Total, p.Path)
				})
			} else {
				err = uiprogress.Run("Cleaning "+ws.cfg.Paths.DatasetDir, execute)
			}
			if err != nil {
				log.Error("clean.failed", "err", err)
				return err
			}

			log.Info("clean.done",
				"total", run.Totals.Total,
				"accepted", run.Totals.Accepted,
				"rejected", run.Totals.Rejected,
			)
			printCleanSummary(run, filepath.Join(ws.root, ws.cfg.Paths.ReportsDir))
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&plain, "plain", false, "Print plain progress lines instead of the progress bar")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the run artifact under reports/runs/")
	return c
}

func printCleanSummary(run domain.CleanRun, reportsDir string) {
	fmt.Printf("Analyzed %d videos: %d accepted, %d rejected\n",
		run.Totals.Total, run.Totals.Accepted, run.Totals.Rejected)

	for _, reason := range domain.AllRejectReasons {
		if n := run.Totals.Reason(reason); n > 0 {
			fmt.Printf("  %-20s %d\n", reason, n)
		}
	}

	fmt.Printf("Reports written to %s\n", reportsDir)
	if run.ID != "" {
		fmt.Printf("Run ID: %s\n", run.ID)
	}
}
