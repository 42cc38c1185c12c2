package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
	"finmate/internal/pagination"
	"finmate/internal/services"
)

// TransactionHandler handles transaction CRUD endpoints.
type TransactionHandler struct {
	transactions services.TransactionServicer
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(transactions services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// CreateTransactionRequest is the payload for recording a transaction.
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,transaction_type"`
	Category    string `json:"category" binding:"required,category"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=500"`
	Date        string `json:"date" binding:"required"`
}

// UpdateTransactionRequest is the payload for updating a transaction.
// Omitted fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *string `json:"type" binding:"omitempty,transaction_type"`
	Category    *string `json:"category" binding:"omitempty,category"`
	Amount      *int64  `json:"amount" binding:"omitempty,gt=0"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Date        *string `json:"date"`
}

// listQuery holds the query parameters for listing transactions.
type listQuery struct {
	pagination.PageRequest
	From      string `form:"from"`
	To        string `form:"to"`
	Type      string `form:"type" binding:"omitempty,transaction_type"`
	Category  string `form:"category" binding:"omitempty,category"`
	MinAmount *int64 `form:"min_amount" binding:"omitempty,min=0"`
	MaxAmount *int64 `form:"max_amount" binding:"omitempty,min=0"`
}

// Create godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date must be in YYYY-MM-DD format"))
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), userID, services.CreateTransactionInput{
		Type:        models.TransactionType(req.Type),
		Category:    models.Category(req.Category),
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

// List godoc
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string false "End date (YYYY-MM-DD, inclusive)"
// @Param type query string false "Transaction type"
// @Param category query string false "Category"
// @Success 200 {object} pagination.PageResponse[models.Transaction]
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TransactionFilter{
		Type:      query.Type,
		Category:  query.Category,
		MinAmount: query.MinAmount,
		MaxAmount: query.MaxAmount,
	}
	if query.From != "" {
		from, err := parseDate(query.From)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be in YYYY-MM-DD format"))
			return
		}
		filter.FromDate = &from
	}
	if query.To != "" {
		to, err := parseDate(query.To)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be in YYYY-MM-DD format"))
			return
		}
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.ToDate = &end
	}

	page, err := h.transactions.List(c.Request.Context(), userID, filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	tx, err := h.transactions.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.UpdateTransactionInput{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Type != nil {
		typ := models.TransactionType(*req.Type)
		input.Type = &typ
	}
	if req.Category != nil {
		cat := models.Category(*req.Category)
		input.Category = &cat
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date must be in YYYY-MM-DD format"))
			return
		}
		input.Date = &date
	}

	tx, err := h.transactions.Update(c.Request.Context(), userID, c.Param("id"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseDate accepts YYYY-MM-DD or RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
