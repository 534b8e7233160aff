package cli

import (
	"fmt"

	"github.com/alexanderramin/engage/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create a work package from a YAML or JSON plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s %s: %d phases, %d items, %d references\n",
				formatter.Bold(result.WorkPackage.Name),
				formatter.TruncID(result.WorkPackage.ID),
				result.PhaseCount, result.ItemCount, result.ReferenceCount)
			return nil
		},
	}
}
