package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Cross-check the dataset against the manifest and motion overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateDataset(ws.scanner, ws.flags, ws.manifests, ws.root, ws.cfg)
			rep, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%d class(es), %d video(s)\n", rep.Classes, rep.Videos)

			if rep.Clean() {
				fmt.Println("OK")
				return nil
			}

			if rep.ManifestMissing {
				fmt.Println("manifest.json is missing (run `dataprep fetch`)")
			}
			printFindings("classes without a motion overview entry", rep.MissingFlags)
			printFindings("videos on disk missing from the manifest", rep.Unmanifested)
			printFindings("manifest entries with no file on disk", rep.MissingFiles)

			return fmt.Errorf("validation found inconsistencies")
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}

func printFindings(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, it := range items {
		fmt.Printf("  - %s\n", it)
	}
}
