package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
)

type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new budget service.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetCeiling creates or replaces the ceiling for a category. A replaced
// ceiling keeps its original row, so GetCeilings ordering is stable across
// updates. Non-positive amounts are rejected; to remove a budget, delete it.
func (s *budgetService) SetCeiling(ctx context.Context, userID string, category models.Category, amount int64) (*models.BudgetCeiling, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidBudget
	}

	var ceiling models.BudgetCeiling
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&ceiling).Error
	switch {
	case err == nil:
		ceiling.Amount = amount
		if err := s.db.WithContext(ctx).Save(&ceiling).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &ceiling, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		ceiling = models.BudgetCeiling{
			UserID:   userID,
			Category: category,
			Amount:   amount,
		}
		if err := s.db.WithContext(ctx).Create(&ceiling).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &ceiling, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// GetCeiling fetches the ceiling for one category.
func (s *budgetService) GetCeiling(ctx context.Context, userID string, category models.Category) (*models.BudgetCeiling, error) {
	var ceiling models.BudgetCeiling
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&ceiling).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCeilingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &ceiling, nil
}

// GetCeilings returns all of the user's ceilings in configuration order
// (oldest first).
func (s *budgetService) GetCeilings(ctx context.Context, userID string) ([]models.BudgetCeiling, error) {
	var ceilings []models.BudgetCeiling
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ceilings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ceilings, nil
}

// DeleteCeiling removes the ceiling for a category. The delete is permanent:
// a soft-deleted row would keep holding the (user_id, category) unique index
// and block the category from ever being budgeted again.
func (s *budgetService) DeleteCeiling(ctx context.Context, userID string, category models.Category) error {
	result := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND category = ?", userID, category).
		Delete(&models.BudgetCeiling{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCeilingNotFound
	}
	return nil
}
