package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/google/uuid"
)

type registryOptions struct {
	clock           func() time.Time
	newID           func() string
	undatedLabel    string
	defaultLanguage domain.Language
}

// language resolves a request language tag, falling back to the configured default.
func (o *registryOptions) language(tag string) domain.Language {
	if l, ok := domain.ParseLanguage(tag); ok {
		return l
	}
	return o.defaultLanguage
}

// RegistryOption configures a LedgerRegistry
type RegistryOption func(*registryOptions)

// WithClock sets the clock used to date new transactions.
func WithClock(clock func() time.Time) RegistryOption {
	return func(o *registryOptions) { o.clock = clock }
}

// WithIDGenerator sets the generator of transaction, goal and obligation ids.
func WithIDGenerator(newID func() string) RegistryOption {
	return func(o *registryOptions) { o.newID = newID }
}

// WithUndatedGroupLabel sets the label of the group holding undated transactions.
func WithUndatedGroupLabel(label string) RegistryOption {
	return func(o *registryOptions) {
		if label != "" {
			o.undatedLabel = label
		}
	}
}

// WithDefaultLanguage sets the language used when a request carries none or an unknown one.
func WithDefaultLanguage(tag string) RegistryOption {
	return func(o *registryOptions) { o.defaultLanguage = domain.NormalizeLanguage(tag) }
}

// LedgerRegistry owns the open ledgers of the process.
type LedgerRegistry struct {
	BaseService
	repo portsrepo.SnapshotRepositoryFacade
	ai   aiServices
	opts registryOptions

	mu      sync.Mutex
	ledgers map[string]*ledgerContext
}

var _ portssvc.LedgerRegistrySvc = (*LedgerRegistry)(nil)

// NewLedgerRegistry creates a registry backed by repo.
func NewLedgerRegistry(repo portsrepo.SnapshotRepositoryFacade, extractor portssvc.Extractor, advisor portssvc.Advisor, options ...RegistryOption) *LedgerRegistry {
	opts := registryOptions{
		clock:           time.Now,
		newID:           uuid.NewString,
		undatedLabel:    domain.DefaultUndatedGroupLabel,
		defaultLanguage: domain.DefaultLanguage,
	}
	for _, option := range options {
		option(&opts)
	}
	return &LedgerRegistry{
		repo:    repo,
		ai:      aiServices{extractor: extractor, advisor: advisor},
		opts:    opts,
		ledgers: make(map[string]*ledgerContext),
	}
}

// Open returns the ledger with ledgerID, loading its snapshot on first use.
func (r *LedgerRegistry) Open(ctx context.Context, ledgerID string) (portssvc.LedgerSvcFacade, error) {
	ledgerID = strings.TrimSpace(ledgerID)
	if ledgerID == "" {
		return nil, fmt.Errorf("%w: ledger id is required", apperrors.ErrValidation)
	}

	r.mu.Lock()
	if l, ok := r.ledgers[ledgerID]; ok {
		r.mu.Unlock()
		return l, nil
	}
	r.mu.Unlock()

	snapshot, err := r.repo.Load(ctx, ledgerID)
	if err != nil {
		r.LogError(ctx, err, "Failed to load ledger snapshot", slog.String("ledger_id", ledgerID))
		return nil, fmt.Errorf("failed to open ledger %s: %w", ledgerID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.ledgers[ledgerID]; ok {
		return l, nil
	}
	l := &ledgerContext{
		ledgerID: ledgerID,
		repo:     r.repo,
		ai:       r.ai,
		opts:     &r.opts,
		state:    newLedgerState(snapshot, r.opts.clock, r.opts.newID),
	}
	r.ledgers[ledgerID] = l
	r.LogInfo(ctx, "Ledger opened", slog.String("ledger_id", ledgerID), slog.Int("transactions", len(snapshot.Transactions)))
	return l, nil
}

// Close forgets the in-memory state of a ledger. The next Open reloads it.
// Handles obtained earlier fail with apperrors.ErrLedgerClosed on write.
// The registry lock is held until the running write is saved, so a
// concurrent Open cannot load a snapshot that is about to be replaced.
func (r *LedgerRegistry) Close(ledgerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.ledgers[ledgerID]
	if !ok {
		return
	}
	delete(r.ledgers, ledgerID)
	l.retire()
}
