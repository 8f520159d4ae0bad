// Package gcs stores ledger snapshots as objects in a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
	"google.golang.org/api/option"
)

type SnapshotRepository struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a storage client. An empty credentialsFile uses
// Application Default Credentials.
func NewSnapshotRepository(ctx context.Context, bucket, prefix, credentialsFile string) (*SnapshotRepository, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return NewSnapshotRepositoryWithClient(client, bucket, prefix), nil
}

// NewSnapshotRepositoryWithClient uses an existing client. Close closes it.
func NewSnapshotRepositoryWithClient(client *storage.Client, bucket, prefix string) *SnapshotRepository {
	return &SnapshotRepository{client: client, bucket: bucket, prefix: prefix}
}

func (r *SnapshotRepository) Close() error {
	return r.client.Close()
}

func (r *SnapshotRepository) object(ledgerID string) *storage.ObjectHandle {
	return r.client.Bucket(r.bucket).Object(ObjectName(r.prefix, ledgerID))
}

// ObjectName is the object holding the snapshot of ledgerID under prefix.
func ObjectName(prefix, ledgerID string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + url.PathEscape(ledgerID) + ".json"
}

func (r *SnapshotRepository) Load(ctx context.Context, ledgerID string) (domain.Snapshot, error) {
	reader, err := r.object(ledgerID).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, fmt.Errorf("open GCS object reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read GCS object: %w", err)
	}
	return domain.UnmarshalSnapshot(data)
}

// Save uploads the snapshot in one write; the object becomes visible only when Close succeeds.
func (r *SnapshotRepository) Save(ctx context.Context, ledgerID string, snapshot domain.Snapshot) error {
	data, err := domain.MarshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	writer := r.object(ledgerID).NewWriter(ctx)
	writer.ContentType = "application/json"
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("write GCS object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close GCS object writer: %w", err)
	}
	return nil
}
