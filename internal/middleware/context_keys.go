package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// ledgerKey is the key used to store the opened ledger in the Gin context.
const ledgerKey = contextKey("ledger")

// LedgerIDParam is the route parameter naming the ledger.
const LedgerIDParam = "ledgerID"

// LedgerMiddleware opens the ledger named by the route and stores it in the Gin context.
func LedgerMiddleware(registry portssvc.LedgerRegistrySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ledgerID := strings.TrimSpace(c.Param(LedgerIDParam))
		if ledgerID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ledger id is required"})
			return
		}

		ledger, err := registry.Open(c.Request.Context(), ledgerID)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to open ledger", slog.String("ledger_id", ledgerID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to open ledger"})
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("ledger_id", ledgerID))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), logger))
		c.Set(string(ledgerKey), ledger)
		c.Next()
	}
}

// GetLedgerFromContext retrieves the ledger opened by LedgerMiddleware.
func GetLedgerFromContext(c *gin.Context) (portssvc.LedgerSvcFacade, bool) {
	val, exists := c.Get(string(ledgerKey))
	if !exists {
		return nil, false
	}
	ledger, ok := val.(portssvc.LedgerSvcFacade)
	return ledger, ok
}
