package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a transaction amount that is not a finite decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidCost indicates an obligation cost that is not strictly positive.
var ErrInvalidCost = errors.New("invalid cost")

// ErrInsufficientFunds indicates the balance does not cover a goal target.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNotCompleted indicates a revert was requested for a goal that is still open.
var ErrNotCompleted = errors.New("goal is not completed")

// ErrAlreadyCompleted indicates a completion was requested for a goal that is already completed.
var ErrAlreadyCompleted = errors.New("goal is already completed")

// ErrExtractionInProgress is returned when a second extraction is started for a ledger
// while the previous one has not returned yet.
var ErrExtractionInProgress = errors.New("extraction already in progress")

// ErrLedgerClosed is returned by a ledger handle used after the ledger was closed.
// The caller must open the ledger again.
var ErrLedgerClosed = errors.New("ledger is closed")

// InsufficientFundsError carries the amount missing to complete a goal.
// It matches ErrInsufficientFunds with errors.Is.
type InsufficientFundsError struct {
	GoalID    string
	Target    decimal.Decimal
	Balance   decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: goal %s needs %s, balance is %s (short by %s)",
		ErrInsufficientFunds.Error(), e.GoalID, e.Target.String(), e.Balance.String(), e.Shortfall.String())
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// AppError wraps an infrastructure failure with a status code hint.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. err may be nil.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}
