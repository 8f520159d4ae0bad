package dto

import (
	"encoding/json"

	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetInitialBalanceRequest sets the balance the ledger starts from.
type SetInitialBalanceRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
}

// TransactionDraftRequest is one transaction to append.
type TransactionDraftRequest struct {
	Label    string      `json:"label" binding:"required"`
	Category string      `json:"category"`
	Amount   json.Number `json:"amount" binding:"required" swaggertype:"number"`
}

// AddTransactionsRequest appends a batch of transactions. The batch is rejected as a whole
// if any amount is invalid.
type AddTransactionsRequest struct {
	Transactions []TransactionDraftRequest `json:"transactions" binding:"required,min=1,dive"`
}

// ToDrafts converts the request into domain drafts.
func (r AddTransactionsRequest) ToDrafts() []domain.TransactionDraft {
	drafts := make([]domain.TransactionDraft, len(r.Transactions))
	for i, t := range r.Transactions {
		drafts[i] = domain.TransactionDraft{Label: t.Label, Category: t.Category, Amount: t.Amount}
	}
	return drafts
}

// ExtractTransactionsRequest carries free text to turn into transactions.
type ExtractTransactionsRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language" binding:"omitempty,language"`
}

// EditTransactionRequest changes some fields of a transaction. Omitted fields are kept.
type EditTransactionRequest struct {
	Label    *string      `json:"label"`
	Category *string      `json:"category"`
	Amount   *json.Number `json:"amount" swaggertype:"number"`
}

// ToCommand builds the edit command for transactionID.
func (r EditTransactionRequest) ToCommand(transactionID string) domain.EditTransactionCommand {
	return domain.EditTransactionCommand{
		TransactionID: transactionID,
		NewLabel:      r.Label,
		NewCategory:   r.Category,
		NewAmount:     r.Amount,
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID      string          `json:"id"`
	Label              string          `json:"label"`
	Category           string          `json:"category"`
	Amount             decimal.Decimal `json:"amount" swaggertype:"number"`
	OccurredOn         string          `json:"occurredOn,omitempty"`
	LinkedGoalID       *string         `json:"linkedGoalId,omitempty"`
	LinkedObligationID *string         `json:"linkedObligationId,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID:      t.TransactionID,
		Label:              t.Label,
		Category:           t.Category,
		Amount:             t.Amount,
		LinkedGoalID:       t.LinkedGoalID,
		LinkedObligationID: t.LinkedObligationID,
	}
	if !t.OccurredOn.IsZero() {
		res.OccurredOn = t.OccurredOn.String()
	}
	return res
}

// ToTransactionResponses converts a slice of transactions
func ToTransactionResponses(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		res[i] = ToTransactionResponse(t)
	}
	return res
}
