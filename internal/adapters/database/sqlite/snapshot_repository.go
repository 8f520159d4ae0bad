// Package sqlite stores ledger snapshots in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"

	_ "modernc.org/sqlite"
)

type SQLiteSnapshotRepository struct {
	db *sql.DB
}

var _ portsrepo.SnapshotRepositoryFacade = (*SQLiteSnapshotRepository)(nil)

// NewSnapshotRepository opens (creating if needed) the database at dbPath and migrates it.
func NewSnapshotRepository(dbPath string) (*SQLiteSnapshotRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteSnapshotRepository{db: db}, nil
}

func (r *SQLiteSnapshotRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteSnapshotRepository) Load(ctx context.Context, ledgerID string) (domain.Snapshot, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM ledger_snapshots WHERE ledger_id = ?`, ledgerID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, fmt.Errorf("load snapshot of ledger %s: %w", ledgerID, err)
	}
	return domain.UnmarshalSnapshot([]byte(payload))
}

func (r *SQLiteSnapshotRepository) Save(ctx context.Context, ledgerID string, snapshot domain.Snapshot) error {
	payload, err := domain.MarshalSnapshot(snapshot)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO ledger_snapshots (ledger_id, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (ledger_id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		ledgerID, string(payload))
	if err != nil {
		return fmt.Errorf("save snapshot of ledger %s: %w", ledgerID, err)
	}
	return nil
}
