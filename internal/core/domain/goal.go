package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Goal is a savings objective. A completed goal is backed by exactly one
// transaction debiting its target, linked through Transaction.LinkedGoalID.
type Goal struct {
	GoalID    string          `json:"id"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `json:"target"`
	Completed bool            `json:"completed"`
}

// Validate checks the goal fields that do not depend on ledger state.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: goal name is required", apperrors.ErrValidation)
	}
	if !g.Target.IsPositive() {
		return fmt.Errorf("%w: %w: goal target must be positive, got %s", apperrors.ErrValidation, apperrors.ErrInvalidAmount, g.Target.String())
	}
	return nil
}

// CompletionDraft returns the transaction draft that records reaching the goal.
func (g Goal) CompletionDraft() TransactionDraft {
	goalID := g.GoalID
	return TransactionDraft{
		Label:        goalLabelPrefix + g.Name,
		Category:     GoalCategory,
		Amount:       AmountOf(g.Target.Neg()),
		LinkedGoalID: &goalID,
	}
}

// UnmarshalJSON tolerates numeric ids written by older clients.
func (g *Goal) UnmarshalJSON(data []byte) error {
	var doc struct {
		ID        json.RawMessage `json:"id"`
		Name      string          `json:"name"`
		Target    decimal.Decimal `json:"target"`
		Completed bool            `json:"completed"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*g = Goal{GoalID: flexibleID(doc.ID), Name: doc.Name, Target: doc.Target, Completed: doc.Completed}
	return nil
}

// GoalStatus is a goal together with its progress against the current balance.
type GoalStatus struct {
	Goal
	Progress decimal.Decimal `json:"progress"`
}
