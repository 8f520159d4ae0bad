package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/SscSPs/fince/internal/dto"
	"github.com/SscSPs/fince/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests on a single ledger and its transactions.
type ledgerHandler struct {
	registry portssvc.LedgerRegistrySvc
}

// RegisterLedgerRoutes registers all routes under /ledgers/:ledgerID.
func RegisterLedgerRoutes(rg *gin.RouterGroup, registry portssvc.LedgerRegistrySvc) {
	h := &ledgerHandler{registry: registry}
	gh := &goalHandler{}
	oh := &obligationHandler{}

	ledger := rg.Group("/ledgers/:"+middleware.LedgerIDParam, middleware.LedgerMiddleware(registry))
	{
		ledger.GET("", h.getSummary)
		ledger.POST("/close", h.closeLedger)
		ledger.PUT("/initial-balance", h.setInitialBalance)
		ledger.GET("/history", h.getHistory)
		ledger.GET("/groups", h.getGroups)
		ledger.POST("/advice", h.getAdvice)

		transactions := ledger.Group("/transactions")
		transactions.POST("", h.addTransactions)
		transactions.POST("/extract", h.extractTransactions)
		transactions.PATCH("/:transactionID", h.editTransaction)
		transactions.DELETE("/:transactionID", h.removeTransaction)

		goals := ledger.Group("/goals")
		goals.POST("", gh.createGoal)
		goals.POST("/:goalID/complete", gh.completeGoal)
		goals.POST("/:goalID/revert", gh.revertGoal)
		goals.DELETE("/:goalID", gh.deleteGoal)

		obligations := ledger.Group("/obligations")
		obligations.POST("", oh.createObligation)
		obligations.PATCH("/:obligationID", oh.updateObligation)
		obligations.DELETE("/:obligationID", oh.removeObligation)
		obligations.POST("/:obligationID/pay", oh.payObligation)
	}
}

// ledgerFromContext returns the ledger opened by the middleware, answering 500 if absent.
func ledgerFromContext(c *gin.Context, logger *slog.Logger) (portssvc.LedgerSvcFacade, bool) {
	ledger, ok := middleware.GetLedgerFromContext(c)
	if !ok {
		logger.Error("Ledger not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ledger not available"})
		return nil, false
	}
	return ledger, true
}

// getSummary godoc
// @Summary Get ledger summary
// @Description Returns balances, history, grouped transactions, goals with progress and obligations
// @Tags ledgers
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 500 {object} map[string]string "Failed to open ledger"
// @Router /ledgers/{ledgerID} [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(ledger.LedgerID(), ledger.Summary(c.Request.Context())))
}

// closeLedger godoc
// @Summary Close a ledger
// @Description Drops the in-memory state of the ledger; the next request reloads it from storage
// @Tags ledgers
// @Param ledgerID path string true "Ledger ID"
// @Success 204
// @Router /ledgers/{ledgerID}/close [post]
func (h *ledgerHandler) closeLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	h.registry.Close(ledger.LedgerID())
	logger.Info("Ledger closed")
	c.Status(http.StatusNoContent)
}

// setInitialBalance godoc
// @Summary Set the initial balance
// @Tags ledgers
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param request body dto.SetInitialBalanceRequest true "Initial balance"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save ledger"
// @Router /ledgers/{ledgerID}/initial-balance [put]
func (h *ledgerHandler) setInitialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.SetInitialBalanceRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	if err := ledger.SetInitialBalance(c.Request.Context(), *req.Amount); err != nil {
		respondError(c, logger, err, "Failed to set initial balance")
		return
	}
	logger.Info("Initial balance set", slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(ledger.LedgerID(), ledger.Summary(c.Request.Context())))
}

// getHistory godoc
// @Summary Get balance history
// @Description Running balance seeded with the initial balance, ordered by transaction date
// @Tags ledgers
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Success 200 {array} dto.BalancePointResponse
// @Router /ledgers/{ledgerID}/history [get]
func (h *ledgerHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToHistoryResponse(ledger.History(c.Request.Context())))
}

// getGroups godoc
// @Summary Get transactions grouped by date
// @Tags ledgers
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Success 200 {array} dto.TransactionGroupResponse
// @Router /ledgers/{ledgerID}/groups [get]
func (h *ledgerHandler) getGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupsResponse(ledger.GroupByDate(c.Request.Context())))
}

// addTransactions godoc
// @Summary Add transactions
// @Description Appends a batch of transactions; one invalid amount rejects the whole batch
// @Tags transactions
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param request body dto.AddTransactionsRequest true "Transactions"
// @Success 201 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to add transactions"
// @Router /ledgers/{ledgerID}/transactions [post]
func (h *ledgerHandler) addTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.AddTransactionsRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	added, err := ledger.AddDrafts(c.Request.Context(), req.ToDrafts())
	if err != nil {
		respondError(c, logger, err, "Failed to add transactions")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponses(added))
}

// extractTransactions godoc
// @Summary Extract transactions from text
// @Description Sends free text to the extraction model and appends whatever it returns
// @Tags transactions
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param request body dto.ExtractTransactionsRequest true "Text"
// @Success 201 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Extraction already in progress"
// @Failure 500 {object} map[string]string "Failed to add transactions"
// @Router /ledgers/{ledgerID}/transactions/extract [post]
func (h *ledgerHandler) extractTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.ExtractTransactionsRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	added, err := ledger.ExtractAndAdd(c.Request.Context(), req.Text, req.Language)
	if err != nil {
		respondError(c, logger, err, "Failed to add extracted transactions")
		return
	}
	logger.Info("Transactions extracted", slog.Int("count", len(added)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponses(added))
}

// editTransaction godoc
// @Summary Edit a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param transactionID path string true "Transaction ID"
// @Param request body dto.EditTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /ledgers/{ledgerID}/transactions/{transactionID} [patch]
func (h *ledgerHandler) editTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.EditTransactionRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	edited, err := ledger.EditTransaction(c.Request.Context(), req.ToCommand(c.Param("transactionID")))
	if err != nil {
		respondError(c, logger, err, "Failed to edit transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*edited))
}

// removeTransaction godoc
// @Summary Remove a transaction
// @Description Idempotent; removing a goal's completion transaction reopens the goal
// @Tags transactions
// @Param ledgerID path string true "Ledger ID"
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Failure 500 {object} map[string]string "Failed to remove transaction"
// @Router /ledgers/{ledgerID}/transactions/{transactionID} [delete]
func (h *ledgerHandler) removeTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	if err := ledger.RemoveTransaction(c.Request.Context(), c.Param("transactionID")); err != nil {
		respondError(c, logger, err, "Failed to remove transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// getAdvice godoc
// @Summary Ask the financial advisor
// @Tags ledgers
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param request body dto.AdviceRequest true "Topic"
// @Success 200 {object} dto.AdviceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /ledgers/{ledgerID}/advice [post]
func (h *ledgerHandler) getAdvice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.AdviceRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	c.JSON(http.StatusOK, dto.AdviceResponse{Advice: ledger.Advice(c.Request.Context(), req.Topic, req.Language)})
}
