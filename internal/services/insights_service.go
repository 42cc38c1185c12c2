package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"finmate/internal/analytics"
	"finmate/internal/logger"
	"finmate/internal/models"
	"finmate/internal/notify"
)

const (
	topCategoryCount       = 5
	recentTransactionCount = 5
)

type insightsService struct {
	db           *gorm.DB
	transactions TransactionServicer
	budgets      BudgetServicer
	notifier     notify.Notifier
}

// NewInsightsService creates an insights service composing the transaction
// and budget services with the analytics package. The notifier receives
// breach events; pass notify.Noop{} to disable publishing.
func NewInsightsService(db *gorm.DB, transactions TransactionServicer, budgets BudgetServicer, notifier notify.Notifier) InsightsServicer {
	return &insightsService{
		db:           db,
		transactions: transactions,
		budgets:      budgets,
		notifier:     notifier,
	}
}

// Dashboard builds the current-month snapshot: income, expense, net, the
// top expense categories, and budget statuses. Malformed records are
// skipped and counted rather than failing the whole report.
func (s *insightsService) Dashboard(ctx context.Context, userID string, now time.Time) (*DashboardSummary, error) {
	records, ceilings, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	valid, skipped := s.sanitize(userID, records)
	window := analytics.CurrentMonth(now)

	var income, expense int64
	monthly := make([]models.Transaction, 0, len(valid))
	for _, r := range valid {
		if !window.Contains(r.Date) {
			continue
		}
		monthly = append(monthly, r)
		if r.Type == models.TransactionTypeIncome {
			income += r.Amount
		} else {
			expense += r.Amount
		}
	}

	top, err := analytics.TopCategories(monthly, topCategoryCount)
	if err != nil {
		return nil, err
	}

	statuses, err := s.evaluate(ctx, userID, valid, ceilings, window, now)
	if err != nil {
		return nil, err
	}

	// valid is newest first, so the head is the recent activity.
	recent := valid
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	return &DashboardSummary{
		Month:              monthStart(now),
		Income:             income,
		Expense:            expense,
		Net:                income - expense,
		TopCategories:      top,
		BudgetStatuses:     statuses,
		RecentTransactions: recent,
		SkippedRecords:     skipped,
	}, nil
}

// Breakdown sums expenses per category over an optional inclusive date
// window, sorted largest first.
func (s *insightsService) Breakdown(ctx context.Context, userID string, from, to *time.Time) (*Breakdown, error) {
	records, err := s.transactions.ListAll(ctx, userID, TransactionFilter{})
	if err != nil {
		return nil, err
	}

	valid, skipped := s.sanitize(userID, records)
	window := analytics.NewWindow(from, to)

	windowed := make([]models.Transaction, 0, len(valid))
	for _, r := range valid {
		if window.Contains(r.Date) {
			windowed = append(windowed, r)
		}
	}

	categories, err := analytics.TopCategories(windowed, len(windowed))
	if err != nil {
		return nil, err
	}

	var total int64
	for _, c := range categories {
		total += c.Total
	}

	return &Breakdown{
		Categories:     categories,
		Total:          total,
		SkippedRecords: skipped,
	}, nil
}

// Trends builds the full month-by-month history with cumulative balance,
// month-over-month expense change, and average savings rate.
func (s *insightsService) Trends(ctx context.Context, userID string) (*Trends, error) {
	records, err := s.transactions.ListAll(ctx, userID, TransactionFilter{})
	if err != nil {
		return nil, err
	}

	valid, skipped := s.sanitize(userID, records)

	months, err := analytics.MonthlyTotals(valid)
	if err != nil {
		return nil, err
	}

	change, changeOK := analytics.MonthOverMonthChange(months)
	rate, rateOK := analytics.AverageSavingsRate(months)

	return &Trends{
		Months:                months,
		CumulativeBalance:     analytics.CumulativeBalance(months),
		MonthOverMonthChange:  change,
		MonthOverMonthDefined: changeOK,
		AverageSavingsRate:    rate,
		SavingsRateDefined:    rateOK,
		SkippedRecords:        skipped,
	}, nil
}

// Budgets evaluates every configured ceiling against current-month
// spending.
func (s *insightsService) Budgets(ctx context.Context, userID string, now time.Time) (*BudgetOverview, error) {
	records, ceilings, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	valid, skipped := s.sanitize(userID, records)
	window := analytics.CurrentMonth(now)

	statuses, err := s.evaluate(ctx, userID, valid, ceilings, window, now)
	if err != nil {
		return nil, err
	}

	return &BudgetOverview{
		Month:          monthStart(now),
		Statuses:       statuses,
		SkippedRecords: skipped,
	}, nil
}

// fetch loads the transaction history and ceilings concurrently.
func (s *insightsService) fetch(ctx context.Context, userID string) ([]models.Transaction, []models.BudgetCeiling, error) {
	var (
		records  []models.Transaction
		ceilings []models.BudgetCeiling
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.transactions.ListAll(gctx, userID, TransactionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		ceilings, err = s.budgets.GetCeilings(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, ceilings, nil
}

// sanitize drops malformed records, logging each one.
func (s *insightsService) sanitize(userID string, records []models.Transaction) ([]models.Transaction, int) {
	valid, malformed := analytics.Sanitize(records)
	for _, err := range malformed {
		logger.Get().Warnw("skipping malformed transaction record",
			"user_id", userID,
			"reason", err.Error(),
		)
	}
	return valid, len(malformed)
}

// evaluate runs budget evaluation over the window and publishes breach
// events. Publishing failures are logged but never fail the report.
func (s *insightsService) evaluate(ctx context.Context, userID string, records []models.Transaction, ceilings []models.BudgetCeiling, window analytics.Window, now time.Time) ([]analytics.BudgetStatus, error) {
	spent, err := analytics.CategoryTotals(records, window)
	if err != nil {
		return nil, err
	}

	ordered := make([]analytics.Ceiling, len(ceilings))
	for i, c := range ceilings {
		ordered[i] = analytics.Ceiling{Category: c.Category, Amount: c.Amount}
	}

	statuses, err := analytics.EvaluateBudgets(spent, ordered)
	if err != nil {
		return nil, err
	}

	if breaches := analytics.Breaches(statuses); len(breaches) > 0 {
		event := notify.BreachEvent{
			UserID:     userID,
			OccurredAt: now.UTC().Format(time.RFC3339),
			Breaches:   breaches,
		}
		if err := s.notifier.PublishBreaches(ctx, event); err != nil {
			logger.Get().Errorw("failed to publish breach event",
				"user_id", userID,
				"error", err.Error(),
			)
		}
	}

	return statuses, nil
}

func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
