package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Obligation is a named recurring-cost template, such as a subscription.
type Obligation struct {
	ObligationID string          `json:"id"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
}

// Validate checks the obligation name and cost.
func (o Obligation) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("%w: obligation name is required", apperrors.ErrValidation)
	}
	if !o.Cost.IsPositive() {
		return fmt.Errorf("%w: obligation cost must be positive, got %s", apperrors.ErrInvalidCost, o.Cost.String())
	}
	return nil
}

// PaymentDraft returns the transaction draft for one payment of the obligation.
func (o Obligation) PaymentDraft() TransactionDraft {
	obligationID := o.ObligationID
	return TransactionDraft{
		Label:              obligationLabelPrefix + o.Name,
		Category:           ObligationCategory,
		Amount:             AmountOf(o.Cost.Neg()),
		LinkedObligationID: &obligationID,
	}
}

// UnmarshalJSON also reads subscriptions stored by older clients, which kept a
// negative "amount" instead of a positive "cost".
func (o *Obligation) UnmarshalJSON(data []byte) error {
	var doc struct {
		ID           json.RawMessage  `json:"id"`
		Name         string           `json:"name"`
		Cost         *decimal.Decimal `json:"cost"`
		LegacyAmount *decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*o = Obligation{ObligationID: flexibleID(doc.ID), Name: doc.Name}
	switch {
	case doc.Cost != nil:
		o.Cost = *doc.Cost
	case doc.LegacyAmount != nil:
		o.Cost = doc.LegacyAmount.Abs()
	}
	return nil
}
