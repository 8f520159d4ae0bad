// Package database selects and builds the snapshot storage backend.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fince/internal/adapters/database/dynamodb"
	"github.com/SscSPs/fince/internal/adapters/database/file"
	"github.com/SscSPs/fince/internal/adapters/database/gcs"
	"github.com/SscSPs/fince/internal/adapters/database/memory"
	"github.com/SscSPs/fince/internal/adapters/database/pgsql"
	"github.com/SscSPs/fince/internal/adapters/database/sqlite"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
	"github.com/SscSPs/fince/internal/platform/config"
	pgpool "github.com/SscSPs/fince/pkg/database"
)

func noopClose(context.Context) error { return nil }

// NewRepositoryProvider builds the repositories for cfg.StorageBackend.
// The caller must invoke Close on the returned provider.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	logger = logger.With(slog.String("storage_backend", cfg.StorageBackend))

	switch cfg.StorageBackend {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; ledgers are lost on restart")
		return portsrepo.RepositoryProvider{SnapshotRepo: memory.NewSnapshotRepository(), Close: noopClose}, nil

	case config.StorageFile:
		repo, err := file.NewSnapshotRepository(cfg.FileStoreDir)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("Using file storage", slog.String("dir", cfg.FileStoreDir))
		return portsrepo.RepositoryProvider{SnapshotRepo: repo, Close: noopClose}, nil

	case config.StoragePostgres:
		logger.Info("Running database migrations...")
		changed, err := pgsql.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to apply migrations: %w", err)
		}
		if changed {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}
		pool, err := pgpool.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return portsrepo.RepositoryProvider{
			SnapshotRepo: pgsql.NewSnapshotRepository(pool),
			Close: func(context.Context) error {
				pgpool.ClosePgxPool(pool)
				return nil
			},
		}, nil

	case config.StorageSQLite:
		repo, err := sqlite.NewSnapshotRepository(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("Using SQLite storage", slog.String("path", cfg.SQLitePath))
		return portsrepo.RepositoryProvider{SnapshotRepo: repo, Close: func(context.Context) error { return repo.Close() }}, nil

	case config.StorageGCS:
		repo, err := gcs.NewSnapshotRepository(ctx, cfg.GCSBucket, cfg.GCSPrefix, cfg.GCSCredentialsFile)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("Using GCS storage", slog.String("bucket", cfg.GCSBucket))
		return portsrepo.RepositoryProvider{SnapshotRepo: repo, Close: func(context.Context) error { return repo.Close() }}, nil

	case config.StorageDynamoDB:
		repo, err := dynamodb.NewSnapshotRepository(ctx, cfg.DynamoDBTable, cfg.AWSRegion, cfg.DynamoDBEndpoint)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("Using DynamoDB storage", slog.String("table", cfg.DynamoDBTable))
		return portsrepo.RepositoryProvider{SnapshotRepo: repo, Close: noopClose}, nil
	}
	return portsrepo.RepositoryProvider{}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
