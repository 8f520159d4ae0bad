package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// obligationRegistry holds the recurring-cost templates of a ledger.
// Paying an obligation only produces a draft; it never touches the transaction store.
type obligationRegistry struct {
	obligations []domain.Obligation
	newID       func() string
}

func newObligationRegistry(obligations []domain.Obligation, newID func() string) *obligationRegistry {
	return &obligationRegistry{obligations: slices.Clone(obligations), newID: newID}
}

func (r *obligationRegistry) clone() *obligationRegistry {
	return newObligationRegistry(r.obligations, r.newID)
}

func (r *obligationRegistry) indexOf(id string) int {
	return slices.IndexFunc(r.obligations, func(o domain.Obligation) bool { return o.ObligationID == id })
}

func (r *obligationRegistry) create(name string, cost decimal.Decimal) (domain.Obligation, error) {
	o := domain.Obligation{ObligationID: r.newID(), Name: strings.TrimSpace(name), Cost: cost}
	if err := o.Validate(); err != nil {
		return domain.Obligation{}, err
	}
	r.obligations = append(r.obligations, o)
	return o, nil
}

func (r *obligationRegistry) update(id string, name *string, cost *decimal.Decimal) (domain.Obligation, error) {
	i := r.indexOf(id)
	if i < 0 {
		return domain.Obligation{}, fmt.Errorf("obligation %s: %w", id, apperrors.ErrNotFound)
	}
	o := r.obligations[i]
	if name != nil {
		o.Name = strings.TrimSpace(*name)
	}
	if cost != nil {
		o.Cost = *cost
	}
	if err := o.Validate(); err != nil {
		return domain.Obligation{}, err
	}
	r.obligations[i] = o
	return o, nil
}

func (r *obligationRegistry) remove(id string) {
	if i := r.indexOf(id); i >= 0 {
		r.obligations = slices.Delete(r.obligations, i, i+1)
	}
}

func (r *obligationRegistry) get(id string) (domain.Obligation, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return domain.Obligation{}, false
	}
	return r.obligations[i], true
}

func (r *obligationRegistry) pay(id string) (domain.TransactionDraft, error) {
	o, ok := r.get(id)
	if !ok {
		return domain.TransactionDraft{}, fmt.Errorf("obligation %s: %w", id, apperrors.ErrNotFound)
	}
	return o.PaymentDraft(), nil
}

func (r *obligationRegistry) list() []domain.Obligation {
	return slices.Clone(r.obligations)
}

// monthlyTotal is the sum of all obligation costs.
func (r *obligationRegistry) monthlyTotal() decimal.Decimal {
	total := decimal.Zero
	for _, o := range r.obligations {
		total = total.Add(o.Cost)
	}
	return total
}
