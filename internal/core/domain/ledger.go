package domain

import "github.com/shopspring/decimal"

const (
	// HistorySeedLabel labels the first point of a balance history.
	HistorySeedLabel = "start"
	// DefaultUndatedGroupLabel is used for transactions without a known date.
	DefaultUndatedGroupLabel = "Older"

	historyLabelLength = 10
)

// BalancePoint is one step of the running balance.
type BalancePoint struct {
	Label         string          `json:"label"`
	Balance       decimal.Decimal `json:"balance"`
	TransactionID string          `json:"transactionId,omitempty"`
	OccurredOn    Date            `json:"occurredOn"`
}

// HistoryLabel shortens a transaction label for display in a balance history.
func HistoryLabel(label string) string {
	r := []rune(label)
	if len(r) <= historyLabelLength {
		return label
	}
	return string(r[:historyLabelLength])
}

// TransactionGroup holds the transactions recorded on one date, in insertion order.
type TransactionGroup struct {
	Label        string        `json:"label"`
	Date         Date          `json:"date"`
	Transactions []Transaction `json:"transactions"`
}

// LedgerSummary is the derived view of a ledger at one point in time.
type LedgerSummary struct {
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
	History        []BalancePoint     `json:"history"`
	Groups         []TransactionGroup `json:"groups"`
	Goals          []GoalStatus       `json:"goals"`
	Obligations    []Obligation       `json:"obligations"`
	ObligationCost decimal.Decimal    `json:"obligationCost"`
}

// AdviceRecentLimit is how many of the latest transactions are sent with an advice request.
const AdviceRecentLimit = 10

// AdviceRequest is the context sent to the advisor.
type AdviceRequest struct {
	Recent   []Transaction
	Balance  decimal.Decimal
	Topic    string
	Language Language
}
