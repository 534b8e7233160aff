package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/alexanderramin/engage/internal/cli"
	"github.com/alexanderramin/engage/internal/config"
	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/hydration"
	"github.com/alexanderramin/engage/internal/logging"
	"github.com/alexanderramin/engage/internal/repository"
	"github.com/alexanderramin/engage/internal/service"
	"github.com/alexanderramin/engage/internal/webpage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	packageRepo := repository.NewSQLiteWorkPackageRepo(database)
	phaseRepo := repository.NewSQLitePhaseRepo(database)
	itemRepo := repository.NewSQLiteItemRepo(database)
	refRepo := repository.NewSQLiteReferenceRepo(database)
	artifactRepos := repository.NewSQLiteArtifactRepos(database)

	// Each artifact table is a resolver source for its kind.
	registry := hydration.NewRegistry()
	sources := make([]repository.ArtifactRepo, 0, len(artifactRepos))
	for kind, repo := range artifactRepos {
		registry.Register(kind, repo)
		sources = append(sources, repo)
	}
	hydrator := hydration.NewHydrator(
		hydration.NewResolver(registry, logger),
		hydration.WithLocation(cfg.Location),
		hydration.WithConcurrency(cfg.ResolveConcurrency),
	)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	hydrateSvc := service.NewHydrationService(repository.NewSQLiteTreeReader(database), hydrator, observers...)
	importSvc := service.NewImportService(db.NewSQLiteUnitOfWork(database), cfg.Tenant, observers...)

	app := &cli.App{
		Packages:  service.NewWorkPackageService(packageRepo),
		Phases:    service.NewPhaseService(phaseRepo),
		Items:     service.NewItemService(itemRepo, phaseRepo, refRepo),
		Artifacts: service.NewArtifactService(sources...),
		Hydrate:   hydrateSvc,
		Import:    importSvc,
		Titles:    webpage.NewTitleFetcher(&http.Client{Timeout: cfg.HTTPTimeout}),

		Tenant:      cfg.Tenant,
		DBPath:      cfg.DBPath,
		DefaultView: cfg.ViewMode,
		Logger:      logger,
		HTTPAddr:    cfg.HTTPAddr,
		HTTPTimeout: cfg.HTTPTimeout,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
