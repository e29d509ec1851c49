package testhelpers

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// SetupTestPool connects to the integration test database, skipping the test
// when DATABASE_URL_FOR_TEST is not set.
func SetupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL_FOR_TEST")
	if dsn == "" {
		t.Skip("DATABASE_URL_FOR_TEST not set; skipping repository tests")
	}

	ctx := context.Background()
	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	t.Cleanup(pool.Close)
	return pool
}

// CleanDatabase truncates every table touched by repository tests.
func CleanDatabase(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE launch_upvotes, launches, reviews, enterprise_feedback, enterprise_profiles, startups RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

// CreateTestStartup inserts a startup with a unique owner and returns its ID.
func CreateTestStartup(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	name := fmt.Sprintf("test-startup-%d", suffix)
	owner := fmt.Sprintf("test-owner-%d", suffix)

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO startups (owner_uuid, name, industry, arr_range, description) VALUES ($1, $2, 'Fintech', '0-5 Cr', 'a test startup with a long enough description') RETURNING id",
		owner, name).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestLaunch inserts a launch for the given startup and returns its ID.
func CreateTestLaunch(t *testing.T, pool *pgxpool.Pool, startupID int64, upvotes int) int64 {
	t.Helper()

	ctx := context.Background()
	title := fmt.Sprintf("test-launch-%d", nextSuffix())

	var id int64
	err := pool.QueryRow(ctx,
		"INSERT INTO launches (startup_id, title, upvotes) VALUES ($1, $2, $3) RETURNING id",
		startupID, title, upvotes).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestEnterpriseProfile inserts an enterprise profile and returns the user UUID.
func CreateTestEnterpriseProfile(t *testing.T, pool *pgxpool.Pool, industries, arrRanges []string) string {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	userUUID := fmt.Sprintf("test-enterprise-%d", suffix)

	_, err := pool.Exec(ctx,
		"INSERT INTO enterprise_profiles (user_uuid, company_name, industry, interested_industries, preferred_arr_ranges) VALUES ($1, $2, 'Fintech', $3, $4)",
		userUUID, fmt.Sprintf("test-company-%d", suffix), industries, arrRanges)
	require.NoError(t, err)
	return userUUID
}
