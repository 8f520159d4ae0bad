package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses.
// failureMsg is returned to the client for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	var insufficient *apperrors.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		logger.Warn("Insufficient funds", slog.String("goal_id", insufficient.GoalID), slog.String("shortfall", insufficient.Shortfall.String()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "shortfall": insufficient.Shortfall})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidCost):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotCompleted), errors.Is(err, apperrors.ErrAlreadyCompleted), errors.Is(err, apperrors.ErrExtractionInProgress),
		errors.Is(err, apperrors.ErrLedgerClosed):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}

// bindJSON binds the request body and answers 400 on failure.
func bindJSON(c *gin.Context, logger *slog.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
