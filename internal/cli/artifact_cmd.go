package cli

import (
	"fmt"

	"github.com/alexanderramin/engage/internal/cli/formatter"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/spf13/cobra"
)

func newArtifactCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "artifact",
		Aliases: []string{"art"},
		Short:   "Manage documents, personas, templates, decks and landing pages",
	}
	cmd.AddCommand(
		newArtifactAddCmd(app),
		newArtifactListCmd(app),
		newArtifactPublishCmd(app, true),
		newArtifactPublishCmd(app, false),
	)
	return cmd
}

func newArtifactAddCmd(app *App) *cobra.Command {
	var title, url string
	var published bool

	cmd := &cobra.Command{
		Use:   "add KIND",
		Short: "Create an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			if title == "" && url != "" {
				if app.Titles == nil {
					return fmt.Errorf("page title lookup is not available")
				}
				if title, err = app.Titles.FetchTitle(cmd.Context(), url); err != nil {
					return fmt.Errorf("reading title from %s: %w", url, err)
				}
			}
			if title == "" {
				return fmt.Errorf("--title or --url is required")
			}
			a := &domain.Artifact{
				TenantID:  app.Tenant,
				Kind:      kind,
				Title:     title,
				Published: published,
			}
			if err := app.Artifacts.Create(cmd.Context(), a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s %s\n", formatter.KindBadge(kind), formatter.Bold(a.Title), a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Artifact title")
	cmd.Flags().StringVar(&url, "url", "", "Take the title from this web page")
	cmd.Flags().BoolVar(&published, "published", false, "Make visible in the client view")

	return cmd
}

func newArtifactListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [KIND]",
		Short: "List artifacts, optionally of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := domain.ArtifactKinds
			if len(args) == 1 {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []domain.ArtifactKind{kind}
			}

			var all []*domain.Artifact
			for _, kind := range kinds {
				arts, err := app.Artifacts.List(cmd.Context(), kind, app.Tenant)
				if err != nil {
					return err
				}
				all = append(all, arts...)
			}
			if len(all) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No artifacts found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatArtifactList(all))
			return nil
		},
	}
}

func newArtifactPublishCmd(app *App, published bool) *cobra.Command {
	use, short, verb := "publish", "Make an artifact visible to clients", "Published"
	if !published {
		use, short, verb = "unpublish", "Hide an artifact from clients", "Unpublished"
	}
	return &cobra.Command{
		Use:   use + " KIND ARTIFACT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			id, err := resolveArtifactID(ctx, app, kind, args[1])
			if err != nil {
				return err
			}
			if err := app.Artifacts.SetPublished(ctx, kind, id, published); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", verb, formatter.KindBadge(kind), formatter.TruncID(id))
			return nil
		},
	}
}
