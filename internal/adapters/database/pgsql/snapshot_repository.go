package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotRepository stores each ledger snapshot as one JSONB row.
type PgxSnapshotRepository struct {
	BaseRepository
}

// NewSnapshotRepository creates a new repository for ledger snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

// Load retrieves the snapshot of a ledger, or the empty snapshot if none was saved.
func (r *PgxSnapshotRepository) Load(ctx context.Context, ledgerID string) (domain.Snapshot, error) {
	query := `SELECT payload FROM ledger_snapshots WHERE ledger_id = $1;`

	var payload []byte
	err := r.Pool.QueryRow(ctx, query, ledgerID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to load snapshot of ledger "+ledgerID, err)
	}

	snapshot, err := domain.UnmarshalSnapshot(payload)
	if err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode snapshot of ledger "+ledgerID, err)
	}
	return snapshot, nil
}

// Save inserts or replaces the snapshot of a ledger.
func (r *PgxSnapshotRepository) Save(ctx context.Context, ledgerID string, snapshot domain.Snapshot) error {
	payload, err := domain.MarshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ledger_snapshots (ledger_id, payload, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (ledger_id) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.Pool.Exec(ctx, query, ledgerID, string(payload)); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save snapshot of ledger "+ledgerID, err)
	}
	return nil
}
