package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase/labels"
)

func labelsCmd() *cobra.Command {
	var workspace string
	var query string

	c := &cobra.Command{
		Use:   "labels",
		Short: "Query the ground-truth labels and check manifest coverage",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path := filepath.Join(ws.root, ws.cfg.Paths.DatasetDir, ws.cfg.Hub.GroundTruth)
			doc, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read labels %s (run `dataprep fetch` first): %w", path, err)
			}

			if query != "" {
				lines, err := labels.Query(doc, query)
				if err != nil {
					return err
				}
				for _, l := range lines {
					fmt.Println(l)
				}
				return nil
			}

			var labeled map[string]string
			if err := json.Unmarshal(doc, &labeled); err != nil {
				return fmt.Errorf("parse labels %s: %w", path, err)
			}

			manifest, err := ws.manifests.Load(filepath.Join(ws.root, ws.cfg.Paths.DatasetDir))
			if err != nil {
				return err
			}

			cov := labels.Compare(manifest, labeled)
			fmt.Printf("%d manifest entries, %d labeled\n", len(manifest), len(labeled))
			if cov.Clean() {
				fmt.Println("OK")
				return nil
			}

			printFindings("manifest entries without a label", cov.Missing)
			printFindings("labeled paths with no manifest entry", cov.Orphans)
			return fmt.Errorf("label coverage is incomplete")
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression to evaluate against the labels document")
	return c
}
