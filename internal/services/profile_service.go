package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
)

type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new profile service.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// Get fetches the user's profile.
func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// Update applies the non-nil fields of input to the user's profile.
func (s *profileService) Update(ctx context.Context, userID string, input UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.IncomeAmount != nil {
		if *input.IncomeAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Income amount cannot be negative")
		}
		profile.IncomeAmount = *input.IncomeAmount
	}
	if input.IncomeType != nil {
		switch *input.IncomeType {
		case models.IncomeTypeMonthly, models.IncomeTypeYearly:
		default:
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Income type must be monthly or yearly")
		}
		profile.IncomeType = *input.IncomeType
	}
	if input.Currency != nil {
		if len(*input.Currency) != 3 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Currency must be a 3-letter code")
		}
		profile.Currency = *input.Currency
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return profile, nil
}
