package repositories

import "context"

// RepositoryProvider holds all repository interfaces needed by services.
// Close releases whatever the selected backend holds open (pools, clients, files).
type RepositoryProvider struct {
	SnapshotRepo SnapshotRepositoryFacade
	Close        func(ctx context.Context) error
}
