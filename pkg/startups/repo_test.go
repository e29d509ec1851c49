package startups

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"launchbridge/pkg/testhelpers"
)

func TestPostgresStartupRepository_CreateAndGet(t *testing.T) {
	pool := testhelpers.SetupTestPool(t)
	testhelpers.CleanDatabase(t, pool)

	repo := NewPostgresStartupRepository(pool)
	ctx := context.Background()

	created, err := repo.CreateStartup(ctx, Startup{
		OwnerUUID:   "owner-repo-1",
		Name:        "Acme",
		Industry:    "Fintech",
		ARRRange:    "0-5 Cr",
		Description: "payments infrastructure for marketplaces",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Zero(t, created.CredibilityScore)

	got, err := repo.GetStartupByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)

	byOwner, err := repo.GetStartupByOwner(ctx, "owner-repo-1")
	require.NoError(t, err)
	require.Equal(t, created.ID, byOwner.ID)
}

func TestPostgresStartupRepository_GetStartupByID_NotFound(t *testing.T) {
	pool := testhelpers.SetupTestPool(t)
	testhelpers.CleanDatabase(t, pool)

	repo := NewPostgresStartupRepository(pool)

	_, err := repo.GetStartupByID(context.Background(), 123456)
	require.ErrorIs(t, err, ErrStartupNotFound)
}

func TestPostgresStartupRepository_SetCredibilityScore(t *testing.T) {
	pool := testhelpers.SetupTestPool(t)
	testhelpers.CleanDatabase(t, pool)

	repo := NewPostgresStartupRepository(pool)
	ctx := context.Background()

	id := testhelpers.CreateTestStartup(t, pool)

	require.NoError(t, repo.SetCredibilityScore(ctx, id, 77))

	got, err := repo.GetStartupByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, 77, got.CredibilityScore)

	require.ErrorIs(t, repo.SetCredibilityScore(ctx, 999999, 10), ErrStartupNotFound)
}

func TestPostgresStartupRepository_Discover_Filters(t *testing.T) {
	pool := testhelpers.SetupTestPool(t)
	testhelpers.CleanDatabase(t, pool)

	repo := NewPostgresStartupRepository(pool)
	ctx := context.Background()

	seed := []Startup{
		{OwnerUUID: "d-1", Name: "FinOne", Industry: "Fintech", ARRRange: "0-5 Cr"},
		{OwnerUUID: "d-2", Name: "FinTwo", Industry: "Fintech", ARRRange: "5-25 Cr"},
		{OwnerUUID: "d-3", Name: "MedOne", Industry: "Healthtech", ARRRange: "0-5 Cr"},
	}
	ids := make([]int64, 0, len(seed))
	for _, s := range seed {
		created, err := repo.CreateStartup(ctx, s)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	require.NoError(t, repo.SetCredibilityScore(ctx, ids[0], 40))
	require.NoError(t, repo.SetCredibilityScore(ctx, ids[1], 90))
	require.NoError(t, repo.SetCredibilityScore(ctx, ids[2], 70))

	industry := "Fintech"
	got, err := repo.Discover(ctx, DiscoverFilter{Industry: &industry, Sort: SortCredibility})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "FinTwo", got[0].Name)
	require.Equal(t, "FinOne", got[1].Name)

	minScore := 60
	got, err = repo.Discover(ctx, DiscoverFilter{MinScore: &minScore, Sort: SortCredibility})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].CredibilityScore >= got[1].CredibilityScore)
}

func TestPostgresStartupRepository_Discover_RecentSort(t *testing.T) {
	pool := testhelpers.SetupTestPool(t)
	testhelpers.CleanDatabase(t, pool)

	repo := NewPostgresStartupRepository(pool)
	ctx := context.Background()

	first, err := repo.CreateStartup(ctx, Startup{OwnerUUID: "r-1", Name: "Older", Industry: "AI", ARRRange: "0-5 Cr"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := repo.CreateStartup(ctx, Startup{OwnerUUID: "r-2", Name: "Newer", Industry: "AI", ARRRange: "0-5 Cr"})
	require.NoError(t, err)

	got, err := repo.Discover(ctx, DiscoverFilter{Sort: SortRecent})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, first.ID, got[1].ID)
}
