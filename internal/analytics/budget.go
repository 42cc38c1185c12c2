package analytics

import (
	"fmt"

	apperrors "finmate/internal/errors"
	"finmate/internal/models"
)

// Severity classifies how close spending is to a budget ceiling.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityDanger   Severity = "danger"
	SeverityExceeded Severity = "exceeded"
)

// Ceiling is a configured monthly spending limit for one category.
// Ceilings are passed as an ordered slice rather than a map so evaluation
// output follows the caller's configured order.
type Ceiling struct {
	Category models.Category `json:"category"`
	Amount   int64           `json:"amount"`
}

// BudgetStatus is the evaluation of one category's spending against its
// ceiling.
type BudgetStatus struct {
	Category   models.Category `json:"category"`
	Spent      int64           `json:"spent"`
	Ceiling    int64           `json:"ceiling"`
	Percentage float64         `json:"percentage"`
	Severity   Severity        `json:"severity"`
}

// EvaluateBudgets produces one BudgetStatus per configured ceiling, in
// ceiling order. Categories with spending but no ceiling are omitted:
// absence of a budget is not a breach. Spending defaults to zero for
// ceilings with no expense total. A non-positive ceiling is a
// configuration error, never silently coerced.
func EvaluateBudgets(spent map[models.Category]int64, ceilings []Ceiling) ([]BudgetStatus, error) {
	statuses := make([]BudgetStatus, 0, len(ceilings))
	for _, c := range ceilings {
		if c.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidBudget,
				fmt.Sprintf("ceiling for category %q must be greater than zero, got %d", c.Category, c.Amount))
		}
		spentAmount := spent[c.Category]
		percentage := float64(spentAmount) / float64(c.Amount) * 100
		statuses = append(statuses, BudgetStatus{
			Category:   c.Category,
			Spent:      spentAmount,
			Ceiling:    c.Amount,
			Percentage: percentage,
			Severity:   severityFor(percentage),
		})
	}
	return statuses, nil
}

// Breaches filters statuses down to exceeded budgets, preserving order.
func Breaches(statuses []BudgetStatus) []BudgetStatus {
	breached := make([]BudgetStatus, 0)
	for _, s := range statuses {
		if s.Severity == SeverityExceeded {
			breached = append(breached, s)
		}
	}
	return breached
}

// severityFor applies the threshold ladder. First match wins: spending at
// exactly 100% is danger, not exceeded.
func severityFor(percentage float64) Severity {
	switch {
	case percentage > 100:
		return SeverityExceeded
	case percentage >= 90:
		return SeverityDanger
	case percentage >= 75:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}
