package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finmate/internal/errors"
	"finmate/internal/services"
)

// BudgetHandler handles budget ceiling endpoints.
type BudgetHandler struct {
	budgets services.BudgetServicer
}

// NewBudgetHandler creates a new budget handler.
func NewBudgetHandler(budgets services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// SetCeilingRequest is the payload for configuring a budget ceiling.
type SetCeilingRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// SetCeiling godoc
// @Summary Set or replace the budget ceiling for a category
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category"
// @Param request body SetCeilingRequest true "Ceiling amount in minor units"
// @Success 200 {object} models.BudgetCeiling
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/budgets/{category} [put]
func (h *BudgetHandler) SetCeiling(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	category, ok := categoryParam(c)
	if !ok {
		return
	}

	var req SetCeilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ceiling, err := h.budgets.SetCeiling(c.Request.Context(), userID, category, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ceiling)
}

// GetCeilings godoc
// @Summary List configured budget ceilings
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BudgetCeiling
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) GetCeilings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	ceilings, err := h.budgets.GetCeilings(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ceilings)
}

// GetCeiling godoc
// @Summary Get the budget ceiling for a category
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param category path string true "Category"
// @Success 200 {object} models.BudgetCeiling
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/budgets/{category} [get]
func (h *BudgetHandler) GetCeiling(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	category, ok := categoryParam(c)
	if !ok {
		return
	}

	ceiling, err := h.budgets.GetCeiling(c.Request.Context(), userID, category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ceiling)
}

// DeleteCeiling godoc
// @Summary Remove the budget ceiling for a category
// @Tags budgets
// @Security BearerAuth
// @Param category path string true "Category"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/budgets/{category} [delete]
func (h *BudgetHandler) DeleteCeiling(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	category, ok := categoryParam(c)
	if !ok {
		return
	}

	if err := h.budgets.DeleteCeiling(c.Request.Context(), userID, category); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
