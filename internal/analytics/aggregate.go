package analytics

import (
	"sort"
	"time"

	"finmate/internal/models"
)

// CategoryTotal is an expense total for one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    int64           `json:"total"`
}

// MonthlyTotal holds income and expense sums for one calendar month.
// Month is the first instant of the month in UTC.
type MonthlyTotal struct {
	Month   time.Time `json:"month"`
	Income  int64     `json:"income"`
	Expense int64     `json:"expense"`
}

// CategoryTotals sums expense amounts per category over records falling
// inside the window. Income records never contribute. Records carrying a
// category outside the known set aggregate under that category verbatim.
// Input order is irrelevant; the result depends only on the record multiset.
func CategoryTotals(records []models.Transaction, window Window) (map[models.Category]int64, error) {
	totals := make(map[models.Category]int64)
	for _, r := range records {
		if err := Validate(r); err != nil {
			return nil, err
		}
		if r.Type != models.TransactionTypeExpense || !window.Contains(r.Date) {
			continue
		}
		totals[r.Category] += r.Amount
	}
	return totals, nil
}

// MonthlyTotals groups records by calendar month and sums income and
// expense per month. The result is sorted chronologically ascending by the
// month's actual time value, not by any string label, so year boundaries
// order correctly.
func MonthlyTotals(records []models.Transaction) ([]MonthlyTotal, error) {
	byMonth := make(map[time.Time]*MonthlyTotal)
	for _, r := range records {
		if err := Validate(r); err != nil {
			return nil, err
		}
		key := monthOf(r.Date)
		mt, ok := byMonth[key]
		if !ok {
			mt = &MonthlyTotal{Month: key}
			byMonth[key] = mt
		}
		if r.Type == models.TransactionTypeIncome {
			mt.Income += r.Amount
		} else {
			mt.Expense += r.Amount
		}
	}

	months := make([]MonthlyTotal, 0, len(byMonth))
	for _, mt := range byMonth {
		months = append(months, *mt)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month.Before(months[j].Month)
	})
	return months, nil
}

// TopCategories returns the n largest expense categories, sorted descending
// by total. Ties keep the category encountered first in the input.
func TopCategories(records []models.Transaction, n int) ([]CategoryTotal, error) {
	totals := make(map[models.Category]int64)
	firstSeen := make(map[models.Category]int)
	order := 0
	for _, r := range records {
		if err := Validate(r); err != nil {
			return nil, err
		}
		if r.Type != models.TransactionTypeExpense {
			continue
		}
		if _, ok := totals[r.Category]; !ok {
			firstSeen[r.Category] = order
			order++
		}
		totals[r.Category] += r.Amount
	}

	ranked := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		ranked = append(ranked, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return firstSeen[ranked[i].Category] < firstSeen[ranked[j].Category]
	})

	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// monthOf normalizes a date to the first instant of its calendar month in
// UTC, using the date's own calendar fields.
func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
