package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/engage/internal/cli/formatter"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/spf13/cobra"
)

func newPackageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "package",
		Aliases: []string{"pkg"},
		Short:   "Manage work packages",
	}

	cmd.AddCommand(
		newPackageNewCmd(app),
		newPackageListCmd(app),
		newPackageShowCmd(app),
		newPackageStartCmd(app),
		newPackageDeleteCmd(app),
	)

	return cmd
}

func newPackageNewCmd(app *App) *cobra.Command {
	var name, start string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a work package",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name is required")
				}
				if err := newPackageForm(&name, &start).Run(); err != nil {
					return err
				}
			}

			startDate, err := parseOptionalDate(start)
			if err != nil {
				return err
			}

			wp := &domain.WorkPackage{
				TenantID:           app.Tenant,
				Name:               name,
				EffectiveStartDate: startDate,
			}
			if err := app.Packages.Create(cmd.Context(), wp); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created work package %s %s\n", formatter.Bold(wp.Name), formatter.TruncID(wp.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Work package name")
	cmd.Flags().StringVar(&start, "start", "", "Effective start date (YYYY-MM-DD)")

	return cmd
}

func newPackageListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List work packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, err := app.Packages.List(cmd.Context(), app.Tenant)
			if err != nil {
				return err
			}
			if len(packages) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No work packages found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkPackageList(packages))
			return nil
		},
	}
}

func newPackageShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show PACKAGE",
		Short: "Show a work package with its phases and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			wp, phases, items, err := loadPackageDetail(ctx, app, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkPackageDetail(wp, phases, items))
			return nil
		},
	}
}

func loadPackageDetail(ctx context.Context, app *App, id string) (*domain.WorkPackage, []*domain.Phase, []*domain.Item, error) {
	wp, err := app.Packages.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	phases, err := app.Phases.ListByWorkPackage(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := app.Items.ListByWorkPackage(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return wp, phases, items, nil
}

func newPackageStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start PACKAGE DATE",
		Short: "Set the effective start date (YYYY-MM-DD, or none to clear)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			start, err := parseOptionalDate(args[1])
			if err != nil {
				return err
			}
			if err := app.Packages.SetStartDate(ctx, id, start); err != nil {
				return err
			}
			if start == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Start date cleared.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Start date set to %s\n", start.Format(dateLayout))
			return nil
		},
	}
}

func newPackageDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PACKAGE",
		Short: "Delete a work package with its phases and items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Packages.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted work package %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
