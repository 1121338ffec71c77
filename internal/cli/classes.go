package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/EdgeVLM-Labs/data-prep-lab/internal/domain"
)

func classesCmd() *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "classes",
		Short: "List exercise classes in the local dataset",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			classes, err := ws.scanner.ScanClasses(filepath.Join(ws.root, ws.cfg.Paths.DatasetDir))
			if err != nil {
				return err
			}

			if len(classes) == 0 {
				fmt.Println("(no classes found; run `dataprep fetch` first)")
				return nil
			}

			// Flags are informational here; a missing file is not fatal.
			motionFlags, err := ws.flags.LoadFlags(filepath.Join(ws.root, ws.cfg.Motion.FlagsFile))
			if err != nil {
				if !domain.IsKind(err, domain.KindNotFound) {
					return err
				}
				motionFlags = map[string]bool{}
			}

			total := 0
			for _, cl := range classes {
				fmt.Printf("- %-24s %3d video(s)  motion=%s\n",
					cl.Name, len(cl.Videos), motionFlagLabel(motionFlags, cl.Name))
				total += len(cl.Videos)
			}
			fmt.Printf("\n%d class(es), %d video(s)\n", len(classes), total)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}

func motionFlagLabel(flags map[string]bool, class string) string {
	v, ok := flags[class]
	switch {
	case !ok:
		return "unset"
	case v:
		return "checked"
	default:
		return "skipped"
	}
}
