package handlers

import (
	"net/http"

	"github.com/SscSPs/fince/internal/dto"
	"github.com/SscSPs/fince/internal/middleware"
	"github.com/gin-gonic/gin"
)

// obligationHandler handles HTTP requests related to recurring obligations.
type obligationHandler struct{}

// createObligation godoc
// @Summary Create a recurring obligation
// @Tags obligations
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param request body dto.CreateObligationRequest true "Obligation"
// @Success 201 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /ledgers/{ledgerID}/obligations [post]
func (h *obligationHandler) createObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.CreateObligationRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	obligation, err := ledger.CreateObligation(c.Request.Context(), req.Name, req.Cost)
	if err != nil {
		respondError(c, logger, err, "Failed to create obligation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToObligationResponse(*obligation))
}

// updateObligation godoc
// @Summary Update a recurring obligation
// @Tags obligations
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param obligationID path string true "Obligation ID"
// @Param request body dto.UpdateObligationRequest true "Fields to change"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Router /ledgers/{ledgerID}/obligations/{obligationID} [patch]
func (h *obligationHandler) updateObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateObligationRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	obligation, err := ledger.UpdateObligation(c.Request.Context(), c.Param("obligationID"), req.Name, req.Cost)
	if err != nil {
		respondError(c, logger, err, "Failed to update obligation")
		return
	}
	c.JSON(http.StatusOK, dto.ToObligationResponse(*obligation))
}

// removeObligation godoc
// @Summary Remove a recurring obligation
// @Description Idempotent; transactions already paid are kept
// @Tags obligations
// @Param ledgerID path string true "Ledger ID"
// @Param obligationID path string true "Obligation ID"
// @Success 204
// @Router /ledgers/{ledgerID}/obligations/{obligationID} [delete]
func (h *obligationHandler) removeObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	if err := ledger.RemoveObligation(c.Request.Context(), c.Param("obligationID")); err != nil {
		respondError(c, logger, err, "Failed to remove obligation")
		return
	}
	c.Status(http.StatusNoContent)
}

// payObligation godoc
// @Summary Pay a recurring obligation
// @Description Records one payment of the obligation as an expense
// @Tags obligations
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param obligationID path string true "Obligation ID"
// @Success 201 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Obligation not found"
// @Router /ledgers/{ledgerID}/obligations/{obligationID}/pay [post]
func (h *obligationHandler) payObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}

	txn, err := ledger.PayObligation(c.Request.Context(), c.Param("obligationID"))
	if err != nil {
		respondError(c, logger, err, "Failed to pay obligation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}
