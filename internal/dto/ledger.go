package dto

import (
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalancePointResponse is one step of the balance history.
type BalancePointResponse struct {
	Label         string          `json:"label"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"number"`
	TransactionID string          `json:"transactionId,omitempty"`
	OccurredOn    string          `json:"occurredOn,omitempty"`
}

// TransactionGroupResponse holds the transactions of one date.
type TransactionGroupResponse struct {
	Label        string                `json:"label"`
	Transactions []TransactionResponse `json:"transactions"`
}

// LedgerSummaryResponse is the full derived view of a ledger.
type LedgerSummaryResponse struct {
	LedgerID       string                     `json:"ledgerId"`
	InitialBalance decimal.Decimal            `json:"initialBalance" swaggertype:"number"`
	CurrentBalance decimal.Decimal            `json:"currentBalance" swaggertype:"number"`
	History        []BalancePointResponse     `json:"history"`
	Groups         []TransactionGroupResponse `json:"groups"`
	Goals          []GoalResponse             `json:"goals"`
	Obligations    []ObligationResponse       `json:"obligations"`
	ObligationCost decimal.Decimal            `json:"obligationCost" swaggertype:"number"`
}

// ToHistoryResponse converts balance points
func ToHistoryResponse(points []domain.BalancePoint) []BalancePointResponse {
	res := make([]BalancePointResponse, len(points))
	for i, p := range points {
		res[i] = BalancePointResponse{Label: p.Label, Balance: p.Balance, TransactionID: p.TransactionID}
		if !p.OccurredOn.IsZero() {
			res[i].OccurredOn = p.OccurredOn.String()
		}
	}
	return res
}

// ToGroupsResponse converts transaction groups
func ToGroupsResponse(groups []domain.TransactionGroup) []TransactionGroupResponse {
	res := make([]TransactionGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = TransactionGroupResponse{Label: g.Label, Transactions: ToTransactionResponses(g.Transactions)}
	}
	return res
}

// ToLedgerSummaryResponse converts a domain.LedgerSummary to its DTO
func ToLedgerSummaryResponse(ledgerID string, s domain.LedgerSummary) LedgerSummaryResponse {
	goals := make([]GoalResponse, len(s.Goals))
	for i, g := range s.Goals {
		goals[i] = ToGoalResponse(g.Goal)
		progress := g.Progress
		goals[i].Progress = &progress
	}
	return LedgerSummaryResponse{
		LedgerID:       ledgerID,
		InitialBalance: s.InitialBalance,
		CurrentBalance: s.CurrentBalance,
		History:        ToHistoryResponse(s.History),
		Groups:         ToGroupsResponse(s.Groups),
		Goals:          goals,
		Obligations:    ToObligationResponses(s.Obligations),
		ObligationCost: s.ObligationCost,
	}
}

// AdviceRequest asks the advisor about a topic.
type AdviceRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Language string `json:"language" binding:"omitempty,language"`
}

// AdviceResponse carries the advisor's reply.
type AdviceResponse struct {
	Advice string `json:"advice"`
}
