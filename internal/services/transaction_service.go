package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
	"finmate/internal/pagination"
	"finmate/internal/uuid"
)

type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// Create records a new transaction for the user. Amounts must be positive;
// direction is carried by the type, never by a negative amount.
func (s *transactionService) Create(ctx context.Context, userID string, input CreateTransactionInput) (*models.Transaction, error) {
	switch input.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}
	if input.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	if input.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date is required")
	}

	tx := &models.Transaction{
		UserID:      userID,
		Type:        input.Type,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}
	if err := s.db.WithContext(ctx).Create(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// GetByID fetches a single transaction, scoped to the owning user.
func (s *transactionService) GetByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	if !uuid.IsValid(transactionID) {
		return nil, apperrors.ErrTransactionNotFound
	}

	var tx models.Transaction
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tx, nil
}

// List returns a page of the user's transactions matching the filter,
// newest first.
func (s *transactionService) List(ctx context.Context, userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	var total int64
	if err := s.filtered(ctx, userID, filter).Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	err := s.filtered(ctx, userID, filter).
		Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(transactions, page.Page, page.PageSize, total)
	return &resp, nil
}

// ListAll returns every transaction matching the filter, newest first.
// Used by the insights service, which needs the full history.
func (s *transactionService) ListAll(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.filtered(ctx, userID, filter).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// Update applies the non-nil fields of input to the user's transaction.
func (s *transactionService) Update(ctx context.Context, userID, transactionID string, input UpdateTransactionInput) (*models.Transaction, error) {
	tx, err := s.GetByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		switch *input.Type {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
		default:
			return nil, apperrors.ErrInvalidTransactionType
		}
		tx.Type = *input.Type
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
		}
		tx.Amount = *input.Amount
	}
	if input.Description != nil {
		tx.Description = *input.Description
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Date is required")
		}
		tx.Date = *input.Date
	}

	if err := s.db.WithContext(ctx).Save(tx).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

// Delete removes the user's transaction.
func (s *transactionService) Delete(ctx context.Context, userID, transactionID string) error {
	if !uuid.IsValid(transactionID) {
		return apperrors.ErrTransactionNotFound
	}

	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func (s *transactionService) filtered(ctx context.Context, userID string, filter TransactionFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.FromDate != nil {
		query = query.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}
	return query
}
