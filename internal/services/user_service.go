package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "finmate/internal/errors"
	"finmate/internal/logger"
	"finmate/internal/middleware"
	"finmate/internal/models"
)

type userService struct {
	db *gorm.DB
}

// NewUserService creates a new user service.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a new user with a hashed password and an empty profile.
func (s *userService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.Profile{
			UserID: user.ID,
			Name:   name,
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("user registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates a user and returns the user with fresh access and
// refresh tokens. The refresh token's hash is persisted for rotation.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", apperrors.ErrInvalidCredentials
		}
		return nil, "", "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !user.IsActive {
		return nil, "", "", apperrors.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, &user)
	if err != nil {
		return nil, "", "", err
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, "", "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, accessToken, refreshToken, nil
}

// Refresh validates a refresh token against the stored hash and rotates it,
// returning new access and refresh tokens.
func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := middleware.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", "", apperrors.ErrUnauthorized
	}

	var user models.User
	err = s.db.WithContext(ctx).Where("id = ?", claims.UserID).First(&user).Error
	if err != nil {
		return "", "", apperrors.ErrUnauthorized
	}

	if !user.IsActive {
		return "", "", apperrors.ErrForbidden
	}

	// Rotation: the presented token must match the last one issued.
	if user.RefreshTokenHash == "" || user.RefreshTokenHash != middleware.HashToken(refreshToken) {
		return "", "", apperrors.ErrUnauthorized
	}

	return s.issueTokens(ctx, &user)
}

// GetByID fetches a user by ID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

func (s *userService) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	accessToken, err := middleware.GenerateAccessToken(user)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	refreshToken, err := middleware.GenerateRefreshToken(user)
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	err = s.db.WithContext(ctx).Model(user).
		Update("refresh_token_hash", middleware.HashToken(refreshToken)).Error
	if err != nil {
		return "", "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return accessToken, refreshToken, nil
}
