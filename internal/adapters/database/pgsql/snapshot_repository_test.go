package pgsql

import (
	"context"
	"os"
	"testing"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/SscSPs/fince/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a reachable database in PGSQL_TEST_URL.
func TestPgxSnapshotRepository_RoundTrip(t *testing.T) {
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}
	ctx := context.Background()

	_, err := RunMigrations(url)
	require.NoError(t, err)
	pool, err := database.NewPgxPool(ctx, url, true)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewSnapshotRepository(pool)
	ledgerID := uuid.NewString()

	empty, err := repo.Load(ctx, ledgerID)
	require.NoError(t, err)
	assert.Equal(t, domain.EmptySnapshot(), empty)

	snapshot := domain.EmptySnapshot()
	snapshot.InitialBalance = decimal.NewFromInt(100)
	snapshot.Goals = []domain.Goal{{GoalID: "g1", Name: "Bike", Target: decimal.NewFromInt(50)}}
	require.NoError(t, repo.Save(ctx, ledgerID, snapshot))
	snapshot.InitialBalance = decimal.NewFromInt(120)
	require.NoError(t, repo.Save(ctx, ledgerID, snapshot))

	loaded, err := repo.Load(ctx, ledgerID)
	require.NoError(t, err)
	assert.True(t, loaded.InitialBalance.Equal(decimal.NewFromInt(120)))
	require.Len(t, loaded.Goals, 1)
	assert.Equal(t, "Bike", loaded.Goals[0].Name)
}
