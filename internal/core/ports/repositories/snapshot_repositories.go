package repositories

import (
	"context"

	"github.com/SscSPs/fince/internal/core/domain"
)

// SnapshotReader defines read operations for ledger snapshots
type SnapshotReader interface {
	// Load retrieves the snapshot of a ledger.
	// A ledger that was never saved yields domain.EmptySnapshot and no error.
	Load(ctx context.Context, ledgerID string) (domain.Snapshot, error)
}

// SnapshotWriter defines write operations for ledger snapshots
type SnapshotWriter interface {
	// Save replaces the stored snapshot of a ledger as a whole.
	Save(ctx context.Context, ledgerID string, snapshot domain.Snapshot) error
}

// SnapshotRepositoryFacade combines all snapshot repository interfaces
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
