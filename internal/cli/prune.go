package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/infra/logger"
	"github.com/EdgeVLM-Labs/data-prep-lab/internal/usecase"
)

func pruneCmd(debug *bool) *cobra.Command {
	var workspace string
	var apply bool

	c := &cobra.Command{
		Use:   "prune <folder>",
		Short: "Delete a folder from the hub dataset repo (dry run by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			defer setupLogger(ws.root, *debug)()

			if apply && !ws.hub.HasToken() {
				return fmt.Errorf("prune --apply needs %s (set it in the environment or %s/.env)", tokenEnv, ws.root)
			}

			uc := usecase.NewPruneRemote(ws.hub, ws.hub)
			res, err := uc.Execute(cmd.Context(), args[0], apply)
			if err != nil {
				return err
			}

			if len(res.Matched) == 0 {
				fmt.Printf("No files under %q in %s\n", res.Folder, ws.cfg.Hub.Repo)
				return nil
			}

			for _, f := range res.Matched {
				fmt.Printf("  %s\n", f)
			}

			if !res.Applied {
				fmt.Printf("Dry run: %d file(s) would be deleted from %s. Re-run with --apply.\n",
					len(res.Matched), ws.cfg.Hub.Repo)
				return nil
			}

			logger.L().Info("prune.applied", "folder", res.Folder, "files", len(res.Matched))
			fmt.Printf("Deleted %d file(s) from %s\n", len(res.Matched), ws.cfg.Hub.Repo)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&apply, "apply", false, "Actually delete the matched files (default is a dry run)")
	return c
}
