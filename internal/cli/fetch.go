package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/logger"
	uiprogress "github.com/EdgeVLM-Labs/data-prep-lab/internal/ui/progress"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase"
)

func fetchCmd(debug *bool) *cobra.Command {
	var workspace string
	var plain bool

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Download a sampled subset of the hub dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer setupLogger(ws.root, *debug)()

			log := logger.L()
			log.Info("fetch.start", "repo", ws.cfg.Hub.Repo, "revision", ws.cfg.Hub.Revision)

			var run domain.FetchRun
			execute := func(onEvent func(usecase.Progress)) error {
				opts := []usecase.FetchOption{}
				if onEvent != nil {
					opts = append(opts, usecase.WithFetchProgress(onEvent))
				}
				uc := usecase.NewFetchDataset(ws.hub, ws.hub, ws.manifests, ws.root, ws.cfg, opts...)
				var execErr error
				run, execErr = uc.Execute(cmd.Context())
				return execErr
			}

			if plain {
				err = execute(func(p usecase.Progress) {
					if p.Err != nil {
						fmt.Fprintf(os.Stderr, "[%d/%d] FAIL %s: %v\n", p.Done, p.Total, p.Path, p.Err)
						return
					}
					fmt.Printf("[%d/%d] %s\n", p.Done, p.Total, p.Path)
				})
			} else {
				err = uiprogress.Run("Fetching "+ws.cfg.Hub.Repo, execute)
			}
			if err != nil {
				log.Error("fetch.failed", "err", err)
				return err
			}

			log.Info("fetch.done", "downloaded", run.Downloaded, "failed", run.Failed, "ground_truth", run.GroundTruth)
			fmt.Printf("Downloaded %d videos (%d failed) into %s/%s\n",
				run.Downloaded, run.Failed, ws.root, ws.cfg.Paths.DatasetDir)

			switch {
			case run.GroundTruthErr != nil:
				log.Warn("fetch.ground_truth_failed", "err", run.GroundTruthErr)
				fmt.Fprintf(os.Stderr, "warning: failed to download %s: %v\n",
					ws.cfg.Hub.GroundTruth, run.GroundTruthErr)
			case run.GroundTruth == "":
				fmt.Fprintf(os.Stderr, "warning: no %s found in %s\n",
					ws.cfg.Hub.GroundTruth, ws.cfg.Hub.Repo)
			default:
				fmt.Printf("Ground truth saved to %s\n", run.GroundTruth)
			}
			if run.Failed > 0 {
				return fmt.Errorf("fetch finished with %d failed download(s)", run.Failed)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&plain, "plain", false, "Print plain progress lines instead of the progress bar")
	return c
}
