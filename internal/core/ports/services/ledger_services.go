package services

import (
	"context"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations over the derived ledger state
type LedgerReaderSvc interface {
	// Summary returns balances, history, groups, goals with progress and obligations.
	Summary(ctx context.Context) domain.LedgerSummary

	// History returns the running balance seeded with the initial balance.
	History(ctx context.Context) []domain.BalancePoint

	// GroupByDate returns transactions grouped by date, newest first, undated last.
	GroupByDate(ctx context.Context) []domain.TransactionGroup

	// GoalProgress returns min(balance/target, 1) clamped to [0,1].
	GoalProgress(ctx context.Context, goalID string) (decimal.Decimal, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	SetInitialBalance(ctx context.Context, amount decimal.Decimal) error

	// AddDrafts appends the drafts as one batch. A single invalid amount rejects the batch.
	AddDrafts(ctx context.Context, drafts []domain.TransactionDraft) ([]domain.Transaction, error)

	// ExtractAndAdd runs the extractor on text and appends whatever it returns.
	ExtractAndAdd(ctx context.Context, text string, language string) ([]domain.Transaction, error)

	// RemoveTransaction is idempotent. Removing a goal-generated transaction reopens the goal.
	RemoveTransaction(ctx context.Context, transactionID string) error

	EditTransaction(ctx context.Context, cmd domain.EditTransactionCommand) (*domain.Transaction, error)
}

// GoalSvc defines goal operations
type GoalSvc interface {
	CreateGoal(ctx context.Context, name string, target decimal.Decimal) (*domain.Goal, error)

	// CompleteGoal records a transaction debiting the target and marks the goal completed.
	CompleteGoal(ctx context.Context, goalID string) (*domain.Goal, *domain.Transaction, error)

	// RevertGoal removes the completion transaction and reopens the goal.
	RevertGoal(ctx context.Context, goalID string) (*domain.Goal, error)

	// DeleteGoal removes the goal and, if it was completed, its linked transaction.
	DeleteGoal(ctx context.Context, goalID string) error
}

// ObligationSvc defines recurring obligation operations
type ObligationSvc interface {
	CreateObligation(ctx context.Context, name string, cost decimal.Decimal) (*domain.Obligation, error)
	UpdateObligation(ctx context.Context, obligationID string, name *string, cost *decimal.Decimal) (*domain.Obligation, error)
	RemoveObligation(ctx context.Context, obligationID string) error

	// PayObligation records one payment of the obligation as an expense.
	PayObligation(ctx context.Context, obligationID string) (*domain.Transaction, error)
}

// AdvisorSvc defines the advice operation
type AdvisorSvc interface {
	// Advice asks the advisor about topic using the most recent transactions.
	Advice(ctx context.Context, topic string, language string) string
}

// LedgerSvcFacade combines all operations on a single opened ledger
type LedgerSvcFacade interface {
	LedgerReaderSvc
	TransactionWriterSvc
	GoalSvc
	ObligationSvc
	AdvisorSvc

	// LedgerID returns the id the ledger was opened with.
	LedgerID() string
}

// LedgerRegistrySvc opens and closes ledgers. Opening an already open ledger
// returns the same instance without reloading.
type LedgerRegistrySvc interface {
	Open(ctx context.Context, ledgerID string) (LedgerSvcFacade, error)
	Close(ledgerID string)
}
