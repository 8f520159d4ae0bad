package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fince/internal/dto"
	"github.com/SscSPs/fince/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct{}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param request body dto.CreateGoalRequest true "Goal"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /ledgers/{ledgerID}/goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	goal, err := ledger.CreateGoal(c.Request.Context(), req.Name, req.Target)
	if err != nil {
		respondError(c, logger, err, "Failed to create goal")
		return
	}
	logger.Info("Goal created", slog.String("goal_id", goal.GoalID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(*goal))
}

// completeGoal godoc
// @Summary Complete a goal
// @Description Records a transaction debiting the goal target; requires balance >= target
// @Tags goals
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param goalID path string true "Goal ID"
// @Success 200 {object} dto.CompleteGoalResponse
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 409 {object} map[string]interface{} "Insufficient funds or already completed"
// @Router /ledgers/{ledgerID}/goals/{goalID}/complete [post]
func (h *goalHandler) completeGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}

	goal, txn, err := ledger.CompleteGoal(c.Request.Context(), c.Param("goalID"))
	if err != nil {
		respondError(c, logger, err, "Failed to complete goal")
		return
	}
	c.JSON(http.StatusOK, dto.CompleteGoalResponse{
		Goal:        dto.ToGoalResponse(*goal),
		Transaction: dto.ToTransactionResponse(*txn),
	})
}

// revertGoal godoc
// @Summary Revert a completed goal
// @Description Deletes the completion transaction and reopens the goal
// @Tags goals
// @Produce json
// @Param ledgerID path string true "Ledger ID"
// @Param goalID path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 409 {object} map[string]string "Goal is not completed"
// @Router /ledgers/{ledgerID}/goals/{goalID}/revert [post]
func (h *goalHandler) revertGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}

	goal, err := ledger.RevertGoal(c.Request.Context(), c.Param("goalID"))
	if err != nil {
		respondError(c, logger, err, "Failed to revert goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(*goal))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Deleting a completed goal also deletes its completion transaction
// @Tags goals
// @Param ledgerID path string true "Ledger ID"
// @Param goalID path string true "Goal ID"
// @Success 204
// @Router /ledgers/{ledgerID}/goals/{goalID} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerFromContext(c, logger)
	if !ok {
		return
	}
	if err := ledger.DeleteGoal(c.Request.Context(), c.Param("goalID")); err != nil {
		respondError(c, logger, err, "Failed to delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}
