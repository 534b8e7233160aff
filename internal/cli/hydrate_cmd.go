package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/engage/internal/app"
	"github.com/alexanderramin/engage/internal/cli/formatter"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/spf13/cobra"
)

// hydrateOptions are the flags shared by `hydrate` and `board`.
type hydrateOptions struct {
	view   domain.ViewMode
	client bool
	now    string
}

func (o *hydrateOptions) register(cmd *cobra.Command, defaultView domain.ViewMode) {
	o.view = defaultView
	addViewFlags(cmd.Flags(), &o.view, &o.client)
	cmd.Flags().StringVar(&o.now, "now", "", "Classify timelines as of this date (YYYY-MM-DD)")
}

func (o *hydrateOptions) request(workPackageID string) (app.HydrateRequest, error) {
	req := app.HydrateRequest{
		WorkPackageID: workPackageID,
		ViewMode:      string(o.view),
	}
	if o.client {
		req.ViewMode = string(domain.ViewClient)
	}
	now, err := parseOptionalDate(o.now)
	if err != nil {
		return req, err
	}
	if now != nil {
		// Midday keeps the date stable across the configured location.
		t := now.Add(12 * time.Hour)
		req.Now = &t
	}
	return req, nil
}

func newHydrateCmd(app *App) *cobra.Command {
	var opts hydrateOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "hydrate PACKAGE",
		Short: "Show a work package with progress and timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveWorkPackageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			req, err := opts.request(id)
			if err != nil {
				return err
			}
			hydrated, err := app.Hydrate.Hydrate(ctx, req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(hydrated)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHydrated(hydrated))
			return nil
		},
	}

	opts.register(cmd, app.DefaultView)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the hydrated tree as JSON")

	return cmd
}
