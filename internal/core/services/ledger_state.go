package services

import (
	"time"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ledgerState is the complete in-memory state of one ledger.
// Mutations are applied to a clone and swapped in only after a successful save.
type ledgerState struct {
	initialBalance decimal.Decimal
	transactions   *transactionStore
	goals          *goalTracker
	obligations    *obligationRegistry
}

func newLedgerState(snapshot domain.Snapshot, clock func() time.Time, newID func() string) *ledgerState {
	snapshot = snapshot.Clone()
	return &ledgerState{
		initialBalance: snapshot.InitialBalance,
		transactions:   newTransactionStore(snapshot.Transactions, clock, newID),
		goals:          newGoalTracker(snapshot.Goals, snapshot.Transactions, newID),
		obligations:    newObligationRegistry(snapshot.Obligations, newID),
	}
}

func (s *ledgerState) clone() *ledgerState {
	return &ledgerState{
		initialBalance: s.initialBalance,
		transactions:   s.transactions.clone(),
		goals:          s.goals.clone(),
		obligations:    s.obligations.clone(),
	}
}

func (s *ledgerState) snapshot() domain.Snapshot {
	return domain.Snapshot{
		InitialBalance: s.initialBalance,
		Transactions:   s.transactions.list(),
		Goals:          s.goals.list(),
		Obligations:    s.obligations.list(),
	}.Clone()
}

func (s *ledgerState) balance() decimal.Decimal {
	return s.transactions.currentBalance(s.initialBalance)
}

// appendDrafts appends drafts and keeps the goal link index current.
func (s *ledgerState) appendDrafts(drafts []domain.TransactionDraft) ([]domain.Transaction, error) {
	added, err := s.transactions.append(drafts)
	if err != nil {
		return nil, err
	}
	for _, t := range added {
		if t.LinkedGoalID != nil {
			s.goals.link(*t.LinkedGoalID, t.TransactionID)
		}
	}
	return added, nil
}

// removeTransaction deletes a transaction and reopens the goal it completed, if any.
func (s *ledgerState) removeTransaction(id string) {
	removed, ok := s.transactions.remove(id)
	if ok && removed.LinkedGoalID != nil {
		s.goals.reopen(*removed.LinkedGoalID)
	}
}

func (s *ledgerState) goalStatuses() []domain.GoalStatus {
	balance := s.balance()
	goals := s.goals.list()
	statuses := make([]domain.GoalStatus, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, domain.GoalStatus{Goal: g, Progress: progressOf(g, balance)})
	}
	return statuses
}
