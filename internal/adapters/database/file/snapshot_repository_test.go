package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo, err := NewSnapshotRepository(dir)
	require.NoError(t, err)

	snapshot := domain.EmptySnapshot()
	snapshot.InitialBalance = decimal.RequireFromString("10.5")
	snapshot.Obligations = []domain.Obligation{{ObligationID: "o1", Name: "Netflix", Cost: decimal.NewFromInt(15)}}
	require.NoError(t, repo.Save(ctx, "../escape", snapshot))

	loaded, err := repo.Load(ctx, "../escape")
	require.NoError(t, err)
	assert.True(t, loaded.InitialBalance.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "Netflix", loaded.Obligations[0].Name)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "..%2Fescape.json", entries[0].Name())
}

func TestSnapshotRepository_LoadUnknownLedger(t *testing.T) {
	repo, err := NewSnapshotRepository(t.TempDir())
	require.NoError(t, err)

	loaded, err := repo.Load(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, domain.EmptySnapshot(), loaded)
}

func TestSnapshotRepository_LoadsLegacyDocument(t *testing.T) {
	dir := t.TempDir()
	legacy := `{"initialBalance":100,"transactions":[{"id":1700000000000,"label":"Pizza","category":"food","amount":-12,"date":"5/3/2024"}],"goals":[{"id":17,"name":"Bike","target":50}],"obligations":[{"id":3,"name":"Netflix","amount":-15}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy.json"), []byte(legacy), 0o644))
	repo, err := NewSnapshotRepository(dir)
	require.NoError(t, err)

	loaded, err := repo.Load(context.Background(), "legacy")

	require.NoError(t, err)
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "1700000000000", loaded.Transactions[0].TransactionID)
	assert.Equal(t, domain.NewDate(2024, 3, 5), loaded.Transactions[0].OccurredOn)
	assert.Equal(t, "17", loaded.Goals[0].GoalID)
	assert.True(t, loaded.Obligations[0].Cost.Equal(decimal.NewFromInt(15)))
}

func TestSnapshotRepository_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644))
	repo, err := NewSnapshotRepository(dir)
	require.NoError(t, err)

	_, err = repo.Load(context.Background(), "bad")

	assert.Error(t, err)
}
