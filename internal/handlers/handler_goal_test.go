package handlers_test

import (
	"net/http"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/SscSPs/fince/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *LedgerHandlerTestSuite) TestCreateGoal() {
	suite.ledger.On("CreateGoal", mock.Anything, "Bike", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(500))
	})).Return(&domain.Goal{GoalID: "g1", Name: "Bike", Target: decimal.NewFromInt(500)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledgers/family/goals", `{"name":"Bike","target":500}`)

	suite.Equal(http.StatusCreated, w.Code)
	res := decodeBody[dto.GoalResponse](suite, w)
	suite.Equal("g1", res.GoalID)
	suite.False(res.Completed)
}

func (suite *LedgerHandlerTestSuite) TestCreateGoal_NonPositiveTarget() {
	w := suite.do(http.MethodPost, "/api/v1/ledgers/family/goals", `{"name":"Bike","target":0}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "CreateGoal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestCompleteGoal_Success() {
	goalID := "g1"
	goal := &domain.Goal{GoalID: goalID, Name: "Bike", Target: decimal.NewFromInt(500), Completed: true}
	txn := &domain.Transaction{
		TransactionID: "t7", Label: "Goal reached: Bike", Category: domain.GoalCategory,
		Amount: decimal.NewFromInt(-500), LinkedGoalID: &goalID,
	}
	suite.ledger.On("CompleteGoal", mock.Anything, goalID).Return(goal, txn, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledgers/family/goals/g1/complete", nil)

	suite.Equal(http.StatusOK, w.Code)
	res := decodeBody[dto.CompleteGoalResponse](suite, w)
	suite.True(res.Goal.Completed)
	suite.Equal("t7", res.Transaction.TransactionID)
}

func (suite *LedgerHandlerTestSuite) TestCompleteGoal_InsufficientFunds() {
	suite.ledger.On("CompleteGoal", mock.Anything, "g1").Return(nil, nil, &apperrors.InsufficientFundsError{
		GoalID: "g1", Target: decimal.NewFromInt(500), Balance: decimal.NewFromInt(200), Shortfall: decimal.NewFromInt(300),
	}).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledgers/family/goals/g1/complete", nil)

	suite.Equal(http.StatusConflict, w.Code)
	res := decodeBody[map[string]any](suite, w)
	suite.EqualValues(300, res["shortfall"])
}

func (suite *LedgerHandlerTestSuite) TestCompleteGoal_Errors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown goal", apperrors.ErrNotFound, http.StatusNotFound},
		{"already completed", apperrors.ErrAlreadyCompleted, http.StatusConflict},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.ledger.On("CompleteGoal", mock.Anything, "g2").Return(nil, nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/ledgers/family/goals/g2/complete", nil)

			suite.Equal(tt.status, w.Code)
		})
	}
}

func (suite *LedgerHandlerTestSuite) TestRevertGoal_NotCompleted() {
	suite.ledger.On("RevertGoal", mock.Anything, "g1").Return(nil, apperrors.ErrNotCompleted).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledgers/family/goals/g1/revert", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestDeleteGoal() {
	suite.ledger.On("DeleteGoal", mock.Anything, "g1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/ledgers/family/goals/g1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestObligationLifecycle() {
	obligation := &domain.Obligation{ObligationID: "o1", Name: "Netflix", Cost: decimal.NewFromFloat(12.99)}
	suite.ledger.On("CreateObligation", mock.Anything, "Netflix", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromFloat(12.99))
	})).Return(obligation, nil).Once()
	suite.ledger.On("PayObligation", mock.Anything, "o1").Return(&domain.Transaction{
		TransactionID: "t3", Label: "Payment: Netflix", Category: domain.ObligationCategory,
		Amount: decimal.NewFromFloat(-12.99),
	}, nil).Once()
	suite.ledger.On("RemoveObligation", mock.Anything, "o1").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledgers/family/obligations", `{"name":"Netflix","cost":12.99}`)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/ledgers/family/obligations/o1/pay", nil)
	suite.Equal(http.StatusCreated, w.Code)
	txn := decodeBody[dto.TransactionResponse](suite, w)
	suite.Equal(domain.ObligationCategory, txn.Category)
	suite.True(decimal.NewFromFloat(-12.99).Equal(txn.Amount))

	w = suite.do(http.MethodDelete, "/api/v1/ledgers/family/obligations/o1", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestUpdateObligation_InvalidCost() {
	suite.ledger.On("UpdateObligation", mock.Anything, "o1", (*string)(nil), mock.AnythingOfType("*decimal.Decimal")).
		Return(nil, apperrors.ErrInvalidCost).Once()

	w := suite.do(http.MethodPatch, "/api/v1/ledgers/family/obligations/o1", `{"cost":-3}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestPayObligation_NotFound() {
	suite.ledger.On("PayObligation", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledgers/family/obligations/nope/pay", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
