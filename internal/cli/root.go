package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/engage/internal/app"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Packages  service.WorkPackageService
	Phases    service.PhaseService
	Items     service.ItemService
	Artifacts service.ArtifactService
	Hydrate   app.HydrateUseCase
	Import    app.ImportPlanUseCase
	// Titles looks up page titles for `artifact add --url`.
	Titles TitleFetcher

	Tenant      string
	DBPath      string
	DefaultView domain.ViewMode
	Logger      *slog.Logger
	HTTPAddr    string
	HTTPTimeout time.Duration

	// IsInteractive reports whether prompts can be shown on stdin.
	IsInteractive func() bool
}

type TitleFetcher interface {
	FetchTitle(ctx context.Context, url string) (string, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "engage" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "engage",
		Short:         "Work package planning and timeline hydration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPackageCmd(app),
		newPhaseCmd(app),
		newItemCmd(app),
		newArtifactCmd(app),
		newHydrateCmd(app),
		newBoardCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}
