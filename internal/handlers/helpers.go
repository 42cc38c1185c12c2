// Package handlers contains the HTTP layer. Handlers bind and validate
// requests, delegate to services, and shape responses; business rules live
// in the services package.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
)

// ErrorResponse is the standard error payload for swagger docs.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code and message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// getUserID extracts the authenticated user's ID from the Gin context.
func getUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("userID")
	if !exists {
		respondWithError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		respondWithError(c, apperrors.ErrUnauthorized)
		return "", false
	}
	return userID, true
}

// respondWithError writes a JSON error response for an AppError, or a
// generic internal error for anything else.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	_ = c.Error(appErr)
	c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{
		Error: ErrorBody{Code: appErr.Code, Message: appErr.Message},
	})
}

// categoryParam parses and validates the :category path parameter.
func categoryParam(c *gin.Context) (models.Category, bool) {
	category := models.Category(c.Param("category"))
	if !category.Known() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown category"))
		return "", false
	}
	return category, true
}
