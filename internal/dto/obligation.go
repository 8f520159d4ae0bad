package dto

import (
	"github.com/SscSPs/fince/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateObligationRequest defines the data needed to create a recurring obligation.
type CreateObligationRequest struct {
	Name string          `json:"name" binding:"required"`
	Cost decimal.Decimal `json:"cost" binding:"decimal_positive" swaggertype:"number"`
}

// UpdateObligationRequest changes the name and/or cost of an obligation.
type UpdateObligationRequest struct {
	Name *string          `json:"name"`
	Cost *decimal.Decimal `json:"cost" swaggertype:"number"`
}

// ObligationResponse defines the data returned for an obligation.
type ObligationResponse struct {
	ObligationID string          `json:"id"`
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost" swaggertype:"number"`
}

// ToObligationResponse converts a domain.Obligation to ObligationResponse DTO
func ToObligationResponse(o domain.Obligation) ObligationResponse {
	return ObligationResponse{ObligationID: o.ObligationID, Name: o.Name, Cost: o.Cost}
}

// ToObligationResponses converts a slice of obligations
func ToObligationResponses(obligations []domain.Obligation) []ObligationResponse {
	res := make([]ObligationResponse, len(obligations))
	for i, o := range obligations {
		res[i] = ToObligationResponse(o)
	}
	return res
}
