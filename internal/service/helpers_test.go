package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/hydration"
	"github.com/alexanderramin/engage/internal/repository"
	"github.com/alexanderramin/engage/internal/testutil"
)

type testRepos struct {
	db        *sql.DB
	packages  *repository.SQLiteWorkPackageRepo
	phases    *repository.SQLitePhaseRepo
	items     *repository.SQLiteItemRepo
	refs      *repository.SQLiteReferenceRepo
	artifacts map[domain.ArtifactKind]*repository.SQLiteArtifactRepo
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		db:        database,
		packages:  repository.NewSQLiteWorkPackageRepo(database),
		phases:    repository.NewSQLitePhaseRepo(database),
		items:     repository.NewSQLiteItemRepo(database),
		refs:      repository.NewSQLiteReferenceRepo(database),
		artifacts: repository.NewSQLiteArtifactRepos(database),
	}
}

func (r testRepos) artifactService() ArtifactService {
	repos := make([]repository.ArtifactRepo, 0, len(r.artifacts))
	for _, a := range r.artifacts {
		repos = append(repos, a)
	}
	return NewArtifactService(repos...)
}

// hydrationService wires the engine to the SQLite artifact tables.
func (r testRepos) hydrationService(now time.Time) HydrationService {
	registry := hydration.NewRegistry()
	for kind, a := range r.artifacts {
		registry.Register(kind, a)
	}
	h := hydration.NewHydrator(hydration.NewResolver(registry, nil),
		hydration.WithClock(func() time.Time { return now }))
	return NewHydrationService(repository.NewSQLiteTreeReader(r.db), h)
}
