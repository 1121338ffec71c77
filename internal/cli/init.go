package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/fsworkspace"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a dataprep workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Printf("Workspace ready at %s\n", abs)
			fmt.Println("Next: copy .env.example to .env and set HF_TOKEN, then run `dataprep fetch`.")
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Target directory (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
