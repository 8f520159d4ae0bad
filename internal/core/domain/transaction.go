package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// GoalCategory is the category of transactions generated by completing a goal.
	GoalCategory = "goals"
	// ObligationCategory is the category of transactions generated by paying an obligation.
	ObligationCategory = "subscriptions"

	goalLabelPrefix       = "Goal reached: "
	obligationLabelPrefix = "Payment: "
)

func init() {
	// Snapshot documents carry amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction represents a single signed monetary event recorded in the ledger.
// Positive amounts are income, negative amounts are expenses.
type Transaction struct {
	TransactionID      string          `json:"id"`
	Label              string          `json:"label"`
	Category           string          `json:"category"`
	Amount             decimal.Decimal `json:"amount"`
	OccurredOn         Date            `json:"occurredOn"`
	LinkedGoalID       *string         `json:"linkedGoalId,omitempty"`
	LinkedObligationID *string         `json:"linkedObligationId,omitempty"`
}

// IsIncome reports whether the transaction adds money to the balance.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsLinkedToGoal reports whether the transaction was generated by completing goalID.
func (t Transaction) IsLinkedToGoal(goalID string) bool {
	return t.LinkedGoalID != nil && *t.LinkedGoalID == goalID
}

// UnmarshalJSON accepts the current document shape as well as entries written by
// older clients: numeric ids and a free-text "date" field instead of "occurredOn".
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var doc struct {
		ID                 json.RawMessage `json:"id"`
		Label              string          `json:"label"`
		Category           string          `json:"category"`
		Amount             decimal.Decimal `json:"amount"`
		OccurredOn         *Date           `json:"occurredOn"`
		LegacyDate         *Date           `json:"date"`
		LinkedGoalID       *string         `json:"linkedGoalId"`
		LinkedObligationID *string         `json:"linkedObligationId"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	*t = Transaction{
		TransactionID:      flexibleID(doc.ID),
		Label:              doc.Label,
		Category:           doc.Category,
		Amount:             doc.Amount,
		LinkedGoalID:       doc.LinkedGoalID,
		LinkedObligationID: doc.LinkedObligationID,
	}
	switch {
	case doc.OccurredOn != nil:
		t.OccurredOn = *doc.OccurredOn
	case doc.LegacyDate != nil:
		t.OccurredOn = *doc.LegacyDate
	}
	return nil
}

// TransactionDraft is an unpersisted candidate transaction awaiting an id and a store append.
// Amount is kept as the undecoded numeric literal so that values coming from the
// extraction service are validated when the draft is appended, not when it is decoded.
type TransactionDraft struct {
	Label              string      `json:"label"`
	Category           string      `json:"category"`
	Amount             json.Number `json:"amount"`
	LinkedGoalID       *string     `json:"linkedGoalId,omitempty"`
	LinkedObligationID *string     `json:"linkedObligationId,omitempty"`
}

// ParseAmount returns the draft amount as a decimal.
// Empty, non-numeric and non-finite literals fail with apperrors.ErrInvalidAmount.
func (d TransactionDraft) ParseAmount() (decimal.Decimal, error) {
	return ParseAmount(d.Amount)
}

// ParseAmount converts a numeric literal into a decimal amount.
func ParseAmount(n json.Number) (decimal.Decimal, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is empty", apperrors.ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a finite number", apperrors.ErrInvalidAmount, s)
	}
	return amount, nil
}

// AmountOf renders a decimal as a draft amount literal.
func AmountOf(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// EditTransactionCommand describes a partial edit of a stored transaction.
// Nil fields are left unchanged.
type EditTransactionCommand struct {
	TransactionID string
	NewLabel      *string
	NewCategory   *string
	NewAmount     *json.Number
}

// Validate checks the command before it is applied and returns the parsed new amount, if any.
func (c EditTransactionCommand) Validate() (*decimal.Decimal, error) {
	if strings.TrimSpace(c.TransactionID) == "" {
		return nil, fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	if c.NewLabel == nil && c.NewCategory == nil && c.NewAmount == nil {
		return nil, fmt.Errorf("%w: nothing to edit", apperrors.ErrValidation)
	}
	if c.NewLabel != nil && strings.TrimSpace(*c.NewLabel) == "" {
		return nil, fmt.Errorf("%w: label must not be empty", apperrors.ErrValidation)
	}
	if c.NewAmount == nil {
		return nil, nil
	}
	amount, err := ParseAmount(*c.NewAmount)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// flexibleID turns a JSON string or number into an id string.
func flexibleID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
