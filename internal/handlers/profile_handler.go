package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
	"finmate/internal/services"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profiles services.ProfileServicer
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles services.ProfileServicer) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// UpdateProfileRequest is the payload for updating profile settings.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	IncomeAmount *int64  `json:"income_amount" binding:"omitempty,min=0"`
	IncomeType   *string `json:"income_type" binding:"omitempty,income_type"`
	Currency     *string `json:"currency" binding:"omitempty,len=3"`
}

// Get godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary Update the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.UpdateProfileInput{
		Name:         req.Name,
		IncomeAmount: req.IncomeAmount,
		Currency:     req.Currency,
	}
	if req.IncomeType != nil {
		it := models.IncomeType(*req.IncomeType)
		input.IncomeType = &it
	}

	profile, err := h.profiles.Update(c.Request.Context(), userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
