package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	portsrepo "github.com/SscSPs/fince/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ledgerContext serializes every operation on one ledger.
// Mutations run lock, clone, apply, save, swap: a failed step leaves the
// in-memory state exactly as it was and nothing partial is persisted.
type ledgerContext struct {
	BaseService
	ledgerID string
	repo     portsrepo.SnapshotRepositoryFacade
	ai       aiServices
	opts     *registryOptions

	mu         sync.Mutex
	state      *ledgerState
	closed     bool
	extracting atomic.Bool
}

type aiServices struct {
	extractor portssvc.Extractor
	advisor   portssvc.Advisor
}

var _ portssvc.LedgerSvcFacade = (*ledgerContext)(nil)

func (l *ledgerContext) LedgerID() string {
	return l.ledgerID
}

// mutate applies fn to a copy of the state and persists it before making it current.
func (l *ledgerContext) mutate(ctx context.Context, op string, fn func(*ledgerState) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return fmt.Errorf("ledger %s: %w", l.ledgerID, apperrors.ErrLedgerClosed)
	}
	next := l.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := l.repo.Save(ctx, l.ledgerID, next.snapshot()); err != nil {
		l.LogError(ctx, err, "Failed to save ledger snapshot", slog.String("ledger_id", l.ledgerID), slog.String("operation", op))
		return fmt.Errorf("failed to save ledger %s after %s: %w", l.ledgerID, op, err)
	}
	l.state = next
	l.LogDebug(ctx, "Ledger updated", slog.String("ledger_id", l.ledgerID), slog.String("operation", op))
	return nil
}

// retire waits for the running mutation, if any, and rejects every later one.
func (l *ledgerContext) retire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
}

func (l *ledgerContext) view(fn func(*ledgerState)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.state)
}

func (l *ledgerContext) Summary(ctx context.Context) domain.LedgerSummary {
	var summary domain.LedgerSummary
	l.view(func(s *ledgerState) {
		summary = domain.LedgerSummary{
			InitialBalance: s.initialBalance,
			CurrentBalance: s.balance(),
			History:        s.transactions.history(s.initialBalance),
			Groups:         s.transactions.groupByDate(l.opts.undatedLabel),
			Goals:          s.goalStatuses(),
			Obligations:    s.obligations.list(),
			ObligationCost: s.obligations.monthlyTotal(),
		}
	})
	return summary
}

func (l *ledgerContext) History(ctx context.Context) []domain.BalancePoint {
	var points []domain.BalancePoint
	l.view(func(s *ledgerState) { points = s.transactions.history(s.initialBalance) })
	return points
}

func (l *ledgerContext) GroupByDate(ctx context.Context) []domain.TransactionGroup {
	var groups []domain.TransactionGroup
	l.view(func(s *ledgerState) { groups = s.transactions.groupByDate(l.opts.undatedLabel) })
	return groups
}

func (l *ledgerContext) GoalProgress(ctx context.Context, goalID string) (decimal.Decimal, error) {
	var (
		progress decimal.Decimal
		err      error
	)
	l.view(func(s *ledgerState) { progress, err = s.goals.progress(goalID, s.balance()) })
	return progress, err
}

func (l *ledgerContext) SetInitialBalance(ctx context.Context, amount decimal.Decimal) error {
	return l.mutate(ctx, "set initial balance", func(s *ledgerState) error {
		s.initialBalance = amount
		return nil
	})
}

// AddDrafts appends user supplied drafts. Goal links are dropped because only
// CompleteGoal may create a goal-linked transaction.
func (l *ledgerContext) AddDrafts(ctx context.Context, drafts []domain.TransactionDraft) ([]domain.Transaction, error) {
	if len(drafts) == 0 {
		return []domain.Transaction{}, nil
	}
	sanitized := make([]domain.TransactionDraft, len(drafts))
	for i, d := range drafts {
		d.LinkedGoalID = nil
		sanitized[i] = d
	}

	var added []domain.Transaction
	err := l.mutate(ctx, "add transactions", func(s *ledgerState) error {
		var err error
		added, err = s.appendDrafts(sanitized)
		return err
	})
	if err != nil {
		return nil, err
	}
	l.LogInfo(ctx, "Transactions added", slog.String("ledger_id", l.ledgerID), slog.Int("count", len(added)))
	return added, nil
}

// ExtractAndAdd calls the extractor without holding the ledger lock.
// Only one extraction per ledger may be in flight.
func (l *ledgerContext) ExtractAndAdd(ctx context.Context, text string, language string) ([]domain.Transaction, error) {
	if !l.extracting.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("ledger %s: %w", l.ledgerID, apperrors.ErrExtractionInProgress)
	}
	defer l.extracting.Store(false)

	drafts := l.ai.extractor.Extract(ctx, text, l.opts.language(language))
	l.LogDebug(ctx, "Extraction finished", slog.String("ledger_id", l.ledgerID), slog.Int("drafts", len(drafts)))
	return l.AddDrafts(ctx, drafts)
}

func (l *ledgerContext) RemoveTransaction(ctx context.Context, transactionID string) error {
	return l.mutate(ctx, "remove transaction", func(s *ledgerState) error {
		s.removeTransaction(transactionID)
		return nil
	})
}

func (l *ledgerContext) EditTransaction(ctx context.Context, cmd domain.EditTransactionCommand) (*domain.Transaction, error) {
	var edited domain.Transaction
	err := l.mutate(ctx, "edit transaction", func(s *ledgerState) error {
		var err error
		edited, err = s.transactions.edit(cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &edited, nil
}

func (l *ledgerContext) CreateGoal(ctx context.Context, name string, target decimal.Decimal) (*domain.Goal, error) {
	var goal domain.Goal
	err := l.mutate(ctx, "create goal", func(s *ledgerState) error {
		var err error
		goal, err = s.goals.create(name, target)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (l *ledgerContext) CompleteGoal(ctx context.Context, goalID string) (*domain.Goal, *domain.Transaction, error) {
	var (
		goal domain.Goal
		txn  domain.Transaction
	)
	err := l.mutate(ctx, "complete goal", func(s *ledgerState) error {
		g, draft, err := s.goals.complete(goalID, s.balance())
		if err != nil {
			return err
		}
		added, err := s.appendDrafts([]domain.TransactionDraft{draft})
		if err != nil {
			return err
		}
		goal, txn = g, added[0]
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	l.LogInfo(ctx, "Goal completed", slog.String("ledger_id", l.ledgerID), slog.String("goal_id", goalID))
	return &goal, &txn, nil
}

func (l *ledgerContext) RevertGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	var goal domain.Goal
	err := l.mutate(ctx, "revert goal", func(s *ledgerState) error {
		g, transactionID, err := s.goals.revert(goalID)
		if err != nil {
			return err
		}
		s.transactions.remove(transactionID)
		goal = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.LogInfo(ctx, "Goal reverted", slog.String("ledger_id", l.ledgerID), slog.String("goal_id", goalID))
	return &goal, nil
}

func (l *ledgerContext) DeleteGoal(ctx context.Context, goalID string) error {
	return l.mutate(ctx, "delete goal", func(s *ledgerState) error {
		if transactionID, linked := s.goals.delete(goalID); linked {
			s.transactions.remove(transactionID)
		}
		return nil
	})
}

func (l *ledgerContext) CreateObligation(ctx context.Context, name string, cost decimal.Decimal) (*domain.Obligation, error) {
	var obligation domain.Obligation
	err := l.mutate(ctx, "create obligation", func(s *ledgerState) error {
		var err error
		obligation, err = s.obligations.create(name, cost)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &obligation, nil
}

func (l *ledgerContext) UpdateObligation(ctx context.Context, obligationID string, name *string, cost *decimal.Decimal) (*domain.Obligation, error) {
	var obligation domain.Obligation
	err := l.mutate(ctx, "update obligation", func(s *ledgerState) error {
		var err error
		obligation, err = s.obligations.update(obligationID, name, cost)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &obligation, nil
}

func (l *ledgerContext) RemoveObligation(ctx context.Context, obligationID string) error {
	return l.mutate(ctx, "remove obligation", func(s *ledgerState) error {
		s.obligations.remove(obligationID)
		return nil
	})
}

func (l *ledgerContext) PayObligation(ctx context.Context, obligationID string) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := l.mutate(ctx, "pay obligation", func(s *ledgerState) error {
		draft, err := s.obligations.pay(obligationID)
		if err != nil {
			return err
		}
		added, err := s.appendDrafts([]domain.TransactionDraft{draft})
		if err != nil {
			return err
		}
		txn = added[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Advice reads the latest transactions under the lock and queries the advisor outside it.
func (l *ledgerContext) Advice(ctx context.Context, topic string, language string) string {
	req := domain.AdviceRequest{Topic: topic, Language: l.opts.language(language)}
	l.view(func(s *ledgerState) {
		req.Recent = s.transactions.recent(domain.AdviceRecentLimit)
		req.Balance = s.balance()
	})
	return l.ai.advisor.Advise(ctx, req)
}
