package services

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// transactionStore is the ordered list of transactions of one ledger.
// Insertion order is preserved and is the tie-breaker for every derived view.
type transactionStore struct {
	transactions []domain.Transaction
	clock        func() time.Time
	newID        func() string
}

func newTransactionStore(transactions []domain.Transaction, clock func() time.Time, newID func() string) *transactionStore {
	return &transactionStore{
		transactions: slices.Clone(transactions),
		clock:        clock,
		newID:        newID,
	}
}

func (s *transactionStore) clone() *transactionStore {
	return &transactionStore{
		transactions: domain.Snapshot{Transactions: s.transactions}.Clone().Transactions,
		clock:        s.clock,
		newID:        s.newID,
	}
}

// append validates every draft before storing any of them.
func (s *transactionStore) append(drafts []domain.TransactionDraft) ([]domain.Transaction, error) {
	amounts := make([]decimal.Decimal, len(drafts))
	for i, d := range drafts {
		amount, err := d.ParseAmount()
		if err != nil {
			return nil, fmt.Errorf("draft %d: %w", i, err)
		}
		amounts[i] = amount
	}

	today := domain.DateOf(s.clock())
	added := make([]domain.Transaction, 0, len(drafts))
	for i, d := range drafts {
		added = append(added, domain.Transaction{
			TransactionID:      s.newID(),
			Label:              strings.TrimSpace(d.Label),
			Category:           strings.TrimSpace(d.Category),
			Amount:             amounts[i],
			OccurredOn:         today,
			LinkedGoalID:       cloneID(d.LinkedGoalID),
			LinkedObligationID: cloneID(d.LinkedObligationID),
		})
	}
	s.transactions = append(s.transactions, added...)
	return added, nil
}

func (s *transactionStore) indexOf(id string) int {
	return slices.IndexFunc(s.transactions, func(t domain.Transaction) bool { return t.TransactionID == id })
}

// remove deletes the transaction with id and returns it. Unknown ids are a no-op.
func (s *transactionStore) remove(id string) (domain.Transaction, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Transaction{}, false
	}
	removed := s.transactions[i]
	s.transactions = slices.Delete(s.transactions, i, i+1)
	return removed, true
}

func (s *transactionStore) edit(cmd domain.EditTransactionCommand) (domain.Transaction, error) {
	newAmount, err := cmd.Validate()
	if err != nil {
		return domain.Transaction{}, err
	}
	i := s.indexOf(cmd.TransactionID)
	if i < 0 {
		return domain.Transaction{}, fmt.Errorf("transaction %s: %w", cmd.TransactionID, apperrors.ErrNotFound)
	}

	t := s.transactions[i]
	if newAmount != nil && t.LinkedGoalID != nil && !newAmount.Equal(t.Amount) {
		return domain.Transaction{}, fmt.Errorf("%w: amount of transaction %s is fixed by goal %s", apperrors.ErrValidation, t.TransactionID, *t.LinkedGoalID)
	}
	if cmd.NewLabel != nil {
		t.Label = strings.TrimSpace(*cmd.NewLabel)
	}
	if cmd.NewCategory != nil {
		t.Category = strings.TrimSpace(*cmd.NewCategory)
	}
	if newAmount != nil {
		t.Amount = *newAmount
	}
	s.transactions[i] = t
	return t, nil
}

func (s *transactionStore) list() []domain.Transaction {
	return slices.Clone(s.transactions)
}

// recent returns the last n transactions in insertion order.
func (s *transactionStore) recent(n int) []domain.Transaction {
	if n <= 0 {
		return []domain.Transaction{}
	}
	start := max(len(s.transactions)-n, 0)
	return slices.Clone(s.transactions[start:])
}

func (s *transactionStore) currentBalance(initialBalance decimal.Decimal) decimal.Decimal {
	balance := initialBalance
	for _, t := range s.transactions {
		balance = balance.Add(t.Amount)
	}
	return balance
}

// history returns the running balance over the transactions sorted by date.
// Undated transactions come first; ties keep insertion order.
func (s *transactionStore) history(initialBalance decimal.Decimal) []domain.BalancePoint {
	ordered := slices.Clone(s.transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OccurredOn.Before(ordered[j].OccurredOn)
	})

	points := make([]domain.BalancePoint, 0, len(ordered)+1)
	points = append(points, domain.BalancePoint{Label: domain.HistorySeedLabel, Balance: initialBalance})
	balance := initialBalance
	for _, t := range ordered {
		balance = balance.Add(t.Amount)
		points = append(points, domain.BalancePoint{
			Label:         domain.HistoryLabel(t.Label),
			Balance:       balance,
			TransactionID: t.TransactionID,
			OccurredOn:    t.OccurredOn,
		})
	}
	return points
}

// groupByDate groups transactions by calendar date, newest first.
// Transactions with an unknown date go to a last group labelled undatedLabel.
func (s *transactionStore) groupByDate(undatedLabel string) []domain.TransactionGroup {
	if undatedLabel == "" {
		undatedLabel = domain.DefaultUndatedGroupLabel
	}

	var groups []domain.TransactionGroup
	index := make(map[domain.Date]int)
	var undated []domain.Transaction
	for _, t := range s.transactions {
		if t.OccurredOn.IsZero() {
			undated = append(undated, t)
			continue
		}
		i, ok := index[t.OccurredOn]
		if !ok {
			i = len(groups)
			index[t.OccurredOn] = i
			groups = append(groups, domain.TransactionGroup{Label: t.OccurredOn.Label(), Date: t.OccurredOn})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[j].Date.Before(groups[i].Date)
	})
	if len(undated) > 0 {
		groups = append(groups, domain.TransactionGroup{Label: undatedLabel, Transactions: undated})
	}
	if groups == nil {
		return []domain.TransactionGroup{}
	}
	return groups
}

func cloneID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
