package cli

import (
	"fmt"

	"github.com/alexanderramin/engage/internal/cli/formatter"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage deliverable items",
	}
	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemStatusCmd(app),
		newItemAssignCmd(app),
		newItemLinkCmd(app),
		newItemUnlinkCmd(app),
		newItemRemoveCmd(app),
	)
	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var title, phase, status string
	var qty int
	var hours float64

	cmd := &cobra.Command{
		Use:   "add PACKAGE",
		Short: "Add an item to a work package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}

			it := &domain.Item{
				WorkPackageID:      wpID,
				Title:              title,
				Quantity:           qty,
				EstimatedHoursEach: hours,
				Status:             domain.ItemStatus(status),
			}
			if phase != "" {
				p, err := resolvePhase(ctx, app, wpID, phase)
				if err != nil {
					return err
				}
				it.PhaseID = &p.ID
			}

			if err := app.Items.Create(ctx, it); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %s %s\n", formatter.Bold(it.Title), formatter.TruncID(it.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().IntVar(&qty, "qty", 1, "Number of artifacts this item delivers")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours per unit")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase position or ID")
	cmd.Flags().StringVar(&status, "status", string(domain.ItemTodo), "Status: todo, in_progress, completed")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list PACKAGE",
		Short: "List items of a work package",
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
			items, err := app.Items.ListByWorkPackage(ctx, wpID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items.")
				return nil
			}
			names := make(map[string]string, len(phases))
			for _, p := range phases {
				names[p.ID] = p.Name
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItemList(items, names))
			return nil
		},
	}
}

func newItemStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status PACKAGE ITEM STATUS",
		Short: "Set an item's status",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, wpID, args[1])
			if err != nil {
				return err
			}
			status := domain.ItemStatus(args[2])
			if err := app.Items.SetStatus(ctx, itemID, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %s is now %s\n", formatter.TruncID(itemID), formatter.ItemStatusPill(status))
			return nil
		},
	}
}

func newItemAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign PACKAGE ITEM PHASE",
		Short: "Move an item to a phase (none to unassign)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, wpID, args[1])
			if err != nil {
				return err
			}

			var phaseID *string
			label := "unassigned"
			if args[2] != "none" {
				p, err := resolvePhase(ctx, app, wpID, args[2])
				if err != nil {
					return err
				}
				phaseID = &p.ID
				label = p.Name
			}

			if err := app.Items.AssignPhase(ctx, itemID, phaseID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %s %s\n", formatter.TruncID(itemID), label)
			return nil
		},
	}
}

func newItemLinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "link PACKAGE ITEM KIND ARTIFACT",
		Short: "Reference an artifact from an item",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, wpID, args[1])
			if err != nil {
				return err
			}
			kind, err := parseKind(args[2])
			if err != nil {
				return err
			}
			artifactID, err := resolveArtifactID(ctx, app, kind, args[3])
			if err != nil {
				return err
			}
			if _, err := app.Items.Link(ctx, itemID, kind, artifactID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked %s %s to item %s\n",
				formatter.KindBadge(kind), formatter.TruncID(artifactID), formatter.TruncID(itemID))
			return nil
		},
	}
}

// Unlink takes the raw artifact ID since the artifact may already be gone.
func newItemUnlinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unlink PACKAGE ITEM KIND ARTIFACT_ID",
		Short: "Remove an artifact reference from an item",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, wpID, args[1])
			if err != nil {
				return err
			}
			kind, err := parseKind(args[2])
			if err != nil {
				return err
			}
			if err := app.Items.Unlink(ctx, itemID, kind, args[3]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unlinked %s %s\n", formatter.KindBadge(kind), formatter.TruncID(args[3]))
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PACKAGE ITEM",
		Short: "Delete an item and its references",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wpID, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, wpID, args[1])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(ctx, itemID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %s\n", formatter.TruncID(itemID))
			return nil
		},
	}
}
