package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInsufficientFundsError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("complete goal: %w", &apperrors.InsufficientFundsError{
		GoalID:    "g1",
		Target:    decimal.NewFromInt(50),
		Balance:   decimal.NewFromInt(30),
		Shortfall: decimal.NewFromInt(20),
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.NotErrorIs(t, err, apperrors.ErrNotCompleted)

	var funds *apperrors.InsufficientFundsError
	if assert.ErrorAs(t, err, &funds) {
		assert.True(t, funds.Shortfall.Equal(decimal.NewFromInt(20)))
	}
	assert.Contains(t, err.Error(), "short by 20")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewAppError(500, "failed to save snapshot", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save snapshot: connection refused", err.Error())
	assert.Equal(t, "no cause", apperrors.NewAppError(500, "no cause", nil).Error())
}
