// Package services contains the business logic layer. Services accept a
// *gorm.DB and return interfaces so handlers can be tested against fakes.
package services

import (
	"context"
	"time"

	"finmate/internal/analytics"
	"finmate/internal/models"
	"finmate/internal/pagination"
)

// UserServicer handles user registration, authentication, and token refresh.
type UserServicer interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// TransactionFilter narrows transaction listings. Zero values mean
// unfiltered. FromDate and ToDate are inclusive.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Type      string
	Category  string
	MinAmount *int64
	MaxAmount *int64
}

// CreateTransactionInput carries the fields needed to record a transaction.
type CreateTransactionInput struct {
	Type        models.TransactionType
	Category    models.Category
	Amount      int64
	Description string
	Date        time.Time
}

// UpdateTransactionInput carries optional updates; nil fields are left
// unchanged.
type UpdateTransactionInput struct {
	Type        *models.TransactionType
	Category    *models.Category
	Amount      *int64
	Description *string
	Date        *time.Time
}

// TransactionServicer handles transaction CRUD scoped to a single user.
type TransactionServicer interface {
	Create(ctx context.Context, userID string, input CreateTransactionInput) (*models.Transaction, error)
	GetByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	ListAll(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error)
	Update(ctx context.Context, userID, transactionID string, input UpdateTransactionInput) (*models.Transaction, error)
	Delete(ctx context.Context, userID, transactionID string) error
}

// BudgetServicer manages per-category budget ceilings. GetCeilings returns
// ceilings in the order they were first configured.
type BudgetServicer interface {
	SetCeiling(ctx context.Context, userID string, category models.Category, amount int64) (*models.BudgetCeiling, error)
	GetCeiling(ctx context.Context, userID string, category models.Category) (*models.BudgetCeiling, error)
	GetCeilings(ctx context.Context, userID string) ([]models.BudgetCeiling, error)
	DeleteCeiling(ctx context.Context, userID string, category models.Category) error
}

// UpdateProfileInput carries optional profile updates; nil fields are left
// unchanged.
type UpdateProfileInput struct {
	Name         *string
	IncomeAmount *int64
	IncomeType   *models.IncomeType
	Currency     *string
}

// ProfileServicer manages per-user settings.
type ProfileServicer interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*models.Profile, error)
}

// DashboardSummary is the current-month snapshot shown on the dashboard.
// RecentTransactions spans the whole history, newest first, not just the
// current month.
type DashboardSummary struct {
	Month              time.Time                `json:"month"`
	Income             int64                    `json:"income"`
	Expense            int64                    `json:"expense"`
	Net                int64                    `json:"net"`
	TopCategories      []analytics.CategoryTotal `json:"top_categories"`
	BudgetStatuses     []analytics.BudgetStatus  `json:"budget_statuses"`
	RecentTransactions []models.Transaction     `json:"recent_transactions"`
	SkippedRecords     int                      `json:"skipped_records,omitempty"`
}

// Breakdown is per-category expense totals over an optional date window.
type Breakdown struct {
	Categories     []analytics.CategoryTotal `json:"categories"`
	Total          int64                     `json:"total"`
	SkippedRecords int                       `json:"skipped_records,omitempty"`
}

// Trends holds month-by-month history and derived statistics. Fields with
// an accompanying Defined flag are meaningless when the flag is false.
type Trends struct {
	Months                []analytics.MonthlyTotal `json:"months"`
	CumulativeBalance     []int64                  `json:"cumulative_balance"`
	MonthOverMonthChange  float64                  `json:"month_over_month_change"`
	MonthOverMonthDefined bool                     `json:"month_over_month_defined"`
	AverageSavingsRate    float64                  `json:"average_savings_rate"`
	SavingsRateDefined    bool                     `json:"savings_rate_defined"`
	SkippedRecords        int                      `json:"skipped_records,omitempty"`
}

// BudgetOverview is the current-month evaluation of every configured
// ceiling.
type BudgetOverview struct {
	Month          time.Time                `json:"month"`
	Statuses       []analytics.BudgetStatus `json:"statuses"`
	SkippedRecords int                      `json:"skipped_records,omitempty"`
}

// InsightsServicer composes transaction history, ceilings, and analytics
// into report payloads.
type InsightsServicer interface {
	Dashboard(ctx context.Context, userID string, now time.Time) (*DashboardSummary, error)
	Breakdown(ctx context.Context, userID string, from, to *time.Time) (*Breakdown, error)
	Trends(ctx context.Context, userID string) (*Trends, error)
	Budgets(ctx context.Context, userID string, now time.Time) (*BudgetOverview, error)
}
