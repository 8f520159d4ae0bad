// Package memory keeps ledger snapshots in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
)

type SnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot
	saveErr   error
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{snapshots: make(map[string]domain.Snapshot)}
}

func (r *SnapshotRepository) Load(_ context.Context, ledgerID string) (domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.snapshots[ledgerID]
	if !ok {
		return domain.EmptySnapshot(), nil
	}
	return s.Clone(), nil
}

func (r *SnapshotRepository) Save(_ context.Context, ledgerID string, snapshot domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snapshots[ledgerID] = snapshot.Clone()
	return nil
}

// FailSaves makes every following Save return err, or succeed again when err is nil.
func (r *SnapshotRepository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}
