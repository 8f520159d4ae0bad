// Package file stores one JSON snapshot document per ledger in a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
)

type SnapshotRepository struct {
	dir string
	mu  sync.Mutex
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates dir if needed.
func NewSnapshotRepository(dir string) (*SnapshotRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &SnapshotRepository{dir: dir}, nil
}

// path escapes the ledger id so it cannot leave the directory.
func (r *SnapshotRepository) path(ledgerID string) string {
	return filepath.Join(r.dir, url.PathEscape(ledgerID)+".json")
}

func (r *SnapshotRepository) Load(_ context.Context, ledgerID string) (domain.Snapshot, error) {
	data, err := os.ReadFile(r.path(ledgerID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot of ledger %s: %w", ledgerID, err)
	}
	return domain.UnmarshalSnapshot(data)
}

// Save writes to a temporary file and renames it over the previous snapshot.
func (r *SnapshotRepository) Save(_ context.Context, ledgerID string, snapshot domain.Snapshot) error {
	data, err := domain.MarshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot of ledger %s: %w", ledgerID, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot of ledger %s: %w", ledgerID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot of ledger %s: %w", ledgerID, err)
	}
	if err := os.Rename(tmp.Name(), r.path(ledgerID)); err != nil {
		return fmt.Errorf("replace snapshot of ledger %s: %w", ledgerID, err)
	}
	return nil
}
