package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/engage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkPackageRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPackageRepo(db)
	ctx := context.Background()

	wp := testutil.NewTestWorkPackage("Q3 Outreach", testutil.WithStartDate(testutil.Date(2025, 7, 1)))
	require.NoError(t, repo.Create(ctx, wp))

	fetched, err := repo.GetByID(ctx, wp.ID)
	require.NoError(t, err)
	assert.Equal(t, wp.ID, fetched.ID)
	assert.Equal(t, "Q3 Outreach", fetched.Name)
	assert.Equal(t, testutil.TestTenant, fetched.TenantID)
	require.NotNil(t, fetched.EffectiveStartDate)
	assert.Equal(t, "2025-07-01", fetched.EffectiveStartDate.Format("2006-01-02"))
	assert.True(t, wp.CreatedAt.Equal(fetched.CreatedAt))
}

func TestWorkPackageRepo_NoStartDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPackageRepo(db)
	ctx := context.Background()

	wp := testutil.NewTestWorkPackage("Unscheduled")
	require.NoError(t, repo.Create(ctx, wp))

	fetched, err := repo.GetByID(ctx, wp.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.EffectiveStartDate)
}

func TestWorkPackageRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPackageRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkPackageRepo_ListByTenant(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPackageRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkPackage("A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkPackage("B")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkPackage("Other", testutil.WithTenant("acme"))))

	mine, err := repo.List(ctx, testutil.TestTenant)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWorkPackageRepo_UpdateStartDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPackageRepo(db)
	ctx := context.Background()

	wp := testutil.NewTestWorkPackage("Launch")
	require.NoError(t, repo.Create(ctx, wp))

	start := testutil.Date(2025, 9, 1)
	wp.EffectiveStartDate = &start
	wp.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, wp))

	fetched, err := repo.GetByID(ctx, wp.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.EffectiveStartDate)
	assert.True(t, start.Equal(*fetched.EffectiveStartDate))

	wp.EffectiveStartDate = nil
	require.NoError(t, repo.Update(ctx, wp))
	fetched, err = repo.GetByID(ctx, wp.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.EffectiveStartDate)
}

func TestWorkPackageRepo_UpdateMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWorkPackageRepo(db)

	err := repo.Update(context.Background(), testutil.NewTestWorkPackage("ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWorkPackageRepo_DeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	packages := NewSQLiteWorkPackageRepo(db)
	phases := NewSQLitePhaseRepo(db)
	items := NewSQLiteItemRepo(db)

	wp := testutil.NewTestWorkPackage("Doomed")
	require.NoError(t, packages.Create(ctx, wp))
	ph := testutil.NewTestPhase(wp.ID, 1, "Only")
	require.NoError(t, phases.Create(ctx, ph))
	it := testutil.NewTestItem(wp.ID, "Task", testutil.WithPhase(ph.ID))
	require.NoError(t, items.Create(ctx, it))

	require.NoError(t, packages.Delete(ctx, wp.ID))

	_, err := phases.GetByID(ctx, ph.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = items.GetByID(ctx, it.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, packages.Delete(ctx, wp.ID), ErrNotFound)
}
