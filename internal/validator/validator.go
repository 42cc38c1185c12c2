// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finmate/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("income_type", validateIncomeType)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

// validateCategory only accepts the known category set. Unknown categories
// stored historically still aggregate fine, but new writes are kept inside
// the closed enum.
func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Known()
}

func validateIncomeType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monthly", "yearly":
		return true
	}
	return false
}
