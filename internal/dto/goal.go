package dto

import (
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name   string          `json:"name" binding:"required"`
	Target decimal.Decimal `json:"target" binding:"decimal_positive" swaggertype:"number"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID    string           `json:"id"`
	Name      string           `json:"name"`
	Target    decimal.Decimal  `json:"target" swaggertype:"number"`
	Completed bool             `json:"completed"`
	Progress  *decimal.Decimal `json:"progress,omitempty" swaggertype:"number"`
}

// CompleteGoalResponse is returned when a goal is completed.
type CompleteGoalResponse struct {
	Goal        GoalResponse        `json:"goal"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO
func ToGoalResponse(g domain.Goal) GoalResponse {
	return GoalResponse{GoalID: g.GoalID, Name: g.Name, Target: g.Target, Completed: g.Completed}
}
