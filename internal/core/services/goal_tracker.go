package services

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// goalTracker holds the goals of a ledger and the index from completed goal
// to the transaction that records its completion.
type goalTracker struct {
	goals []domain.Goal
	links map[string]string
	newID func() string
}

func newGoalTracker(goals []domain.Goal, transactions []domain.Transaction, newID func() string) *goalTracker {
	t := &goalTracker{goals: slices.Clone(goals), links: make(map[string]string), newID: newID}
	for _, tx := range transactions {
		if tx.LinkedGoalID != nil {
			t.links[*tx.LinkedGoalID] = tx.TransactionID
		}
	}
	return t
}

func (t *goalTracker) clone() *goalTracker {
	return &goalTracker{goals: slices.Clone(t.goals), links: maps.Clone(t.links), newID: t.newID}
}

func (t *goalTracker) indexOf(id string) int {
	return slices.IndexFunc(t.goals, func(g domain.Goal) bool { return g.GoalID == id })
}

func (t *goalTracker) get(id string) (domain.Goal, bool) {
	i := t.indexOf(id)
	if i < 0 {
		return domain.Goal{}, false
	}
	return t.goals[i], true
}

func (t *goalTracker) list() []domain.Goal {
	return slices.Clone(t.goals)
}

func (t *goalTracker) create(name string, target decimal.Decimal) (domain.Goal, error) {
	g := domain.Goal{GoalID: t.newID(), Name: strings.TrimSpace(name), Target: target}
	if err := g.Validate(); err != nil {
		return domain.Goal{}, err
	}
	t.goals = append(t.goals, g)
	return g, nil
}

// complete marks the goal completed and returns the draft that must be appended
// to the store. Nothing changes when an error is returned.
func (t *goalTracker) complete(id string, balance decimal.Decimal) (domain.Goal, domain.TransactionDraft, error) {
	i := t.indexOf(id)
	if i < 0 {
		return domain.Goal{}, domain.TransactionDraft{}, fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
	}
	g := t.goals[i]
	if g.Completed {
		return domain.Goal{}, domain.TransactionDraft{}, fmt.Errorf("goal %s: %w", id, apperrors.ErrAlreadyCompleted)
	}
	if balance.LessThan(g.Target) {
		return domain.Goal{}, domain.TransactionDraft{}, &apperrors.InsufficientFundsError{
			GoalID:    id,
			Target:    g.Target,
			Balance:   balance,
			Shortfall: g.Target.Sub(balance),
		}
	}
	g.Completed = true
	t.goals[i] = g
	return g, g.CompletionDraft(), nil
}

// link records which transaction completed the goal.
func (t *goalTracker) link(goalID, transactionID string) {
	t.links[goalID] = transactionID
}

// revert reopens the goal and returns the id of the transaction to remove.
func (t *goalTracker) revert(id string) (domain.Goal, string, error) {
	i := t.indexOf(id)
	if i < 0 {
		return domain.Goal{}, "", fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
	}
	g := t.goals[i]
	if !g.Completed {
		return domain.Goal{}, "", fmt.Errorf("goal %s: %w", id, apperrors.ErrNotCompleted)
	}
	g.Completed = false
	t.goals[i] = g
	transactionID := t.links[id]
	delete(t.links, id)
	return g, transactionID, nil
}

// reopen clears the completion of a goal whose transaction was removed directly.
func (t *goalTracker) reopen(id string) {
	if i := t.indexOf(id); i >= 0 {
		t.goals[i].Completed = false
	}
	delete(t.links, id)
}

// delete removes the goal and returns the id of its completion transaction, if any.
func (t *goalTracker) delete(id string) (string, bool) {
	i := t.indexOf(id)
	if i < 0 {
		return "", false
	}
	t.goals = slices.Delete(t.goals, i, i+1)
	transactionID, linked := t.links[id]
	delete(t.links, id)
	return transactionID, linked
}

func (t *goalTracker) progress(id string, balance decimal.Decimal) (decimal.Decimal, error) {
	g, ok := t.get(id)
	if !ok {
		return decimal.Zero, fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
	}
	return progressOf(g, balance), nil
}

// progressOf is balance/target clamped to [0,1].
func progressOf(g domain.Goal, balance decimal.Decimal) decimal.Decimal {
	if !g.Target.IsPositive() || !balance.IsPositive() {
		return decimal.Zero
	}
	ratio := balance.DivRound(g.Target, 4)
	if ratio.GreaterThan(one) {
		return one
	}
	return ratio
}
