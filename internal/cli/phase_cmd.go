package cli

import (
	"fmt"

	"github.com/alexanderramin/engage/internal/cli/formatter"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage phases of a work package",
	}
	cmd.AddCommand(
		newPhaseAddCmd(app),
		newPhaseListCmd(app),
		newPhaseRemoveCmd(app),
	)
	return cmd
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var name, description string
	var position int
	var estimate float64

	cmd := &cobra.Command{
		Use:   "add PACKAGE",
		Short: "Append a phase (or insert at --position)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p := &domain.Phase{
				WorkPackageID: wpID,
				Name:          name,
				Description:   description,
				Position:      position,
			}
			if cmd.Flags().Changed("estimate") {
				p.EstimatedHours = &estimate
			}
			if err := app.Phases.Create(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added phase %d. %s %s\n", p.Position, formatter.Bold(p.Name), formatter.TruncID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Phase name")
	cmd.Flags().StringVar(&description, "description", "", "Phase description")
	cmd.Flags().IntVar(&position, "position", 0, "Position (default: after the last phase)")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Fallback effort in hours when the phase has no item effort")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPhaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PACKAGE",
		Short: "List phases in position order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListByWorkPackage(ctx, wpID)
			if err != nil {
				return err
			}
			if len(phases) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No phases.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPhaseList(phases))
			return nil
		},
	}
}

func newPhaseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PACKAGE PHASE",
		Short: "Remove a phase; its items become unassigned",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := resolvePhase(ctx, app, wpID, args[1])
			if err != nil {
				return err
			}
			if err := app.Phases.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed phase %s\n", p.Name)
			return nil
		},
	}
}
