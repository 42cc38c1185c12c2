package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finmate/internal/errors"
	"finmate/internal/services"
)

// InsightsHandler handles report endpoints.
type InsightsHandler struct {
	insights services.InsightsServicer
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(insights services.InsightsServicer) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Dashboard godoc
// @Summary Current-month dashboard snapshot
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.DashboardSummary
// @Router /api/v1/insights/dashboard [get]
func (h *InsightsHandler) Dashboard(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	summary, err := h.insights.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Breakdown godoc
// @Summary Per-category expense breakdown over an optional date window
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} services.Breakdown
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/insights/breakdown [get]
func (h *InsightsHandler) Breakdown(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be in YYYY-MM-DD format"))
			return
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be in YYYY-MM-DD format"))
			return
		}
		to = &t
	}

	breakdown, err := h.insights.Breakdown(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// Trends godoc
// @Summary Month-by-month history with trend statistics
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Trends
// @Router /api/v1/insights/trends [get]
func (h *InsightsHandler) Trends(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	trends, err := h.insights.Trends(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, trends)
}

// Budgets godoc
// @Summary Current-month budget evaluation for every configured ceiling
// @Tags insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.BudgetOverview
// @Router /api/v1/insights/budgets [get]
func (h *InsightsHandler) Budgets(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	overview, err := h.insights.Budgets(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
