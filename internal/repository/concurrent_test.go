package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentAccess_LoadTreeDuringWrites(t *testing.T) {
	database := testutil.NewFileTestDB(t, "concurrent_test.db")
	ctx := context.Background()

	packages := NewSQLiteWorkPackageRepo(database)
	phases := NewSQLitePhaseRepo(database)
	items := NewSQLiteItemRepo(database)
	reader := NewSQLiteTreeReader(database)

	wp := testutil.NewTestWorkPackage("Busy", testutil.WithStartDate(testutil.Date(2025, 1, 6)))
	require.NoError(t, packages.Create(ctx, wp))
	ph := testutil.NewTestPhase(wp.ID, 1, "Build")
	require.NoError(t, phases.Create(ctx, ph))

	const writes = 20
	var wg sync.WaitGroup
	errs := make(chan error, writes+50)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			it := testutil.NewTestItem(wp.ID, fmt.Sprintf("Item-%d", i), testutil.WithPhase(ph.ID))
			if err := items.Create(ctx, it); err != nil {
				errs <- fmt.Errorf("write %d: %w", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				tree, err := reader.LoadTree(ctx, wp.ID)
				if err != nil {
					errs <- err
					return
				}
				if len(tree.Phases) != 1 {
					errs <- fmt.Errorf("expected 1 phase, got %d", len(tree.Phases))
					return
				}
				time.Sleep(time.Millisecond)
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}

	tree, err := reader.LoadTree(ctx, wp.ID)
	require.NoError(t, err)
	assert.Len(t, tree.Phases[0].Items, writes)
}

func TestConcurrentAccess_ArtifactLookups(t *testing.T) {
	database := testutil.NewFileTestDB(t, "concurrent_test.db")
	ctx := context.Background()
	repos := NewSQLiteArtifactRepos(database)

	ids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		a := testutil.NewTestArtifact(domain.ArtifactDocument, fmt.Sprintf("Doc %d", i))
		require.NoError(t, repos[domain.ArtifactDocument].Create(ctx, a))
		ids = append(ids, a.ID)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	found := 0
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			a, err := repos[domain.ArtifactDocument].LookupArtifact(ctx, id)
			if err != nil || a == nil {
				return
			}
			mu.Lock()
			found++
			mu.Unlock()
		}(id)
	}
	wg.Wait()
	assert.Equal(t, len(ids), found)
}
