package domain

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Snapshot is the full serializable state of one ledger.
type Snapshot struct {
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Transactions   []Transaction   `json:"transactions"`
	Goals          []Goal          `json:"goals"`
	Obligations    []Obligation    `json:"obligations"`
}

// EmptySnapshot is the state of a ledger that was never saved.
func EmptySnapshot() Snapshot {
	return Snapshot{
		InitialBalance: decimal.Zero,
		Transactions:   []Transaction{},
		Goals:          []Goal{},
		Obligations:    []Obligation{},
	}
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		InitialBalance: s.InitialBalance,
		Transactions:   make([]Transaction, len(s.Transactions)),
		Goals:          slices.Clone(s.Goals),
		Obligations:    slices.Clone(s.Obligations),
	}
	for i, t := range s.Transactions {
		out.Transactions[i] = cloneTransaction(t)
	}
	if out.Goals == nil {
		out.Goals = []Goal{}
	}
	if out.Obligations == nil {
		out.Obligations = []Obligation{}
	}
	return out
}

// MarshalSnapshot encodes a snapshot document.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s.Clone())
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a snapshot document. Missing fields take their empty defaults.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	s := EmptySnapshot()
	if err := json.Unmarshal(data, &s); err != nil {
		return EmptySnapshot(), fmt.Errorf("decode snapshot: %w", err)
	}
	return s.Clone(), nil
}

func cloneTransaction(t Transaction) Transaction {
	if t.LinkedGoalID != nil {
		id := *t.LinkedGoalID
		t.LinkedGoalID = &id
	}
	if t.LinkedObligationID != nil {
		id := *t.LinkedObligationID
		t.LinkedObligationID = &id
	}
	return t
}
