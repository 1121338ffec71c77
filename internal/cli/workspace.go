package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/config"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/csvreport"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/datasetfs"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/hubclient"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/logger"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/manifeststore"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/motionflags"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/runstore"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/videoprobe"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/workspacefinder"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/ports"
)

// tokenEnv is the variable holding the hub access token, read from the
// process environment or the workspace .env file.
const tokenEnv = "HF_TOKEN"

type workspaceCtx struct {
	root string
	cfg  domain.Config

	hub *hubclient.Client

	manifests ports.ManifestStore
	scanner   ports.DatasetScanner
	copier    ports.DatasetCopier
	analyzer  ports.VideoAnalyzer
	flags     ports.MotionFlagsLoader
	reports   ports.ReportSink
	runs      ports.RunStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	// .env is optional; the process environment wins over it.
	_ = godotenv.Load(filepath.Join(root, ".env"))

	hub := hubclient.New(cfg.Hub.Repo, cfg.Hub.Revision,
		hubclient.WithToken(os.Getenv(tokenEnv)),
	)

	return &workspaceCtx{
		root: root,
		cfg:  cfg,
		hub:  hub,

		manifests: manifeststore.NewStore(),
		// video_ext narrows what fetch downloads; local scans recognize
		// every supported video extension.
		scanner:   datasetfs.NewScanner(),
		copier:    datasetfs.NewCopier(),
		analyzer:  videoprobe.NewAnalyzer(cfg.Quality, cfg.Motion),
		flags:     motionflags.NewLoader(),
		reports:   csvreport.NewWriter(),
		runs:      runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `dataprep init`): %w", wd, err)
	}
	return root, nil
}

// setupLogger routes slog output into the workspace log file. Logging
// failures are not fatal; the command still runs.
func setupLogger(root string, debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})
	if cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
