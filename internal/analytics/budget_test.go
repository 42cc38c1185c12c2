package analytics

import (
	"testing"
	"time"

	"finmate/internal/models"
	"finmate/internal/testutil"
)

func TestEvaluateBudgets(t *testing.T) {
	t.Run("severity_thresholds", func(t *testing.T) {
		cases := []struct {
			name     string
			spent    int64
			ceiling  int64
			severity Severity
			pct      float64
		}{
			{"well_under", 500, 1000, SeverityNormal, 50},
			{"just_below_warning", 749, 1000, SeverityNormal, 74.9},
			{"warning", 750, 1000, SeverityWarning, 75},
			{"danger", 950, 1000, SeverityDanger, 95},
			{"exactly_at_ceiling", 1000, 1000, SeverityDanger, 100},
			{"exceeded", 1100, 1000, SeverityExceeded, 110},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				spent := map[models.Category]int64{models.CategoryFood: tc.spent}
				ceilings := []Ceiling{{Category: models.CategoryFood, Amount: tc.ceiling}}

				statuses, err := EvaluateBudgets(spent, ceilings)
				testutil.AssertNoError(t, err)

				if len(statuses) != 1 {
					t.Fatalf("expected 1 status, got %d", len(statuses))
				}
				if statuses[0].Severity != tc.severity {
					t.Errorf("expected severity %s, got %s", tc.severity, statuses[0].Severity)
				}
				if statuses[0].Percentage != tc.pct {
					t.Errorf("expected percentage %f, got %f", tc.pct, statuses[0].Percentage)
				}
			})
		}
	})

	t.Run("unbudgeted_spending_omitted", func(t *testing.T) {
		spent := map[models.Category]int64{
			models.CategoryFood:   100,
			models.CategoryTravel: 99999,
		}
		ceilings := []Ceiling{{Category: models.CategoryFood, Amount: 1000}}

		statuses, err := EvaluateBudgets(spent, ceilings)
		testutil.AssertNoError(t, err)

		if len(statuses) != 1 {
			t.Fatalf("expected 1 status (Travel has no ceiling), got %d", len(statuses))
		}
		if statuses[0].Category != models.CategoryFood {
			t.Errorf("expected Food status, got %s", statuses[0].Category)
		}
	})

	t.Run("ceiling_without_spending_defaults_to_zero", func(t *testing.T) {
		ceilings := []Ceiling{{Category: models.CategoryHousing, Amount: 5000}}

		statuses, err := EvaluateBudgets(map[models.Category]int64{}, ceilings)
		testutil.AssertNoError(t, err)

		if statuses[0].Spent != 0 {
			t.Errorf("expected spent 0, got %d", statuses[0].Spent)
		}
		if statuses[0].Severity != SeverityNormal {
			t.Errorf("expected normal severity, got %s", statuses[0].Severity)
		}
	})

	t.Run("preserves_ceiling_order", func(t *testing.T) {
		ceilings := []Ceiling{
			{Category: models.CategoryTravel, Amount: 100},
			{Category: models.CategoryFood, Amount: 100},
			{Category: models.CategoryShopping, Amount: 100},
		}

		statuses, err := EvaluateBudgets(nil, ceilings)
		testutil.AssertNoError(t, err)

		for i, c := range ceilings {
			if statuses[i].Category != c.Category {
				t.Errorf("status %d: expected %s, got %s", i, c.Category, statuses[i].Category)
			}
		}
	})

	t.Run("zero_ceiling_rejected", func(t *testing.T) {
		ceilings := []Ceiling{{Category: models.CategoryFood, Amount: 0}}

		_, err := EvaluateBudgets(nil, ceilings)
		testutil.AssertAppError(t, err, "INVALID_BUDGET")
	})

	t.Run("negative_ceiling_rejected", func(t *testing.T) {
		ceilings := []Ceiling{{Category: models.CategoryFood, Amount: -100}}

		_, err := EvaluateBudgets(nil, ceilings)
		testutil.AssertAppError(t, err, "INVALID_BUDGET")
	})
}

func TestBreaches(t *testing.T) {
	t.Run("only_exceeded", func(t *testing.T) {
		statuses := []BudgetStatus{
			{Category: models.CategoryFood, Severity: SeverityExceeded},
			{Category: models.CategoryTravel, Severity: SeverityDanger},
			{Category: models.CategoryShopping, Severity: SeverityExceeded},
			{Category: models.CategoryHousing, Severity: SeverityNormal},
		}

		breached := Breaches(statuses)

		if len(breached) != 2 {
			t.Fatalf("expected 2 breaches, got %d", len(breached))
		}
		if breached[0].Category != models.CategoryFood || breached[1].Category != models.CategoryShopping {
			t.Error("breaches must preserve input order")
		}
	})

	t.Run("empty_when_none_exceeded", func(t *testing.T) {
		statuses := []BudgetStatus{
			{Category: models.CategoryFood, Severity: SeverityDanger},
		}

		if got := Breaches(statuses); len(got) != 0 {
			t.Errorf("expected no breaches, got %d", len(got))
		}
	})
}

func TestSanitize(t *testing.T) {
	t.Run("splits_valid_and_malformed", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 100, date(2024, time.June, 1)),
			{Type: "transfer", Category: models.CategoryFood, Amount: 100, Date: date(2024, time.June, 2)},
			record(models.TransactionTypeIncome, models.CategorySalary, 500, date(2024, time.June, 3)),
			record(models.TransactionTypeExpense, models.CategoryFood, -5, date(2024, time.June, 4)),
		}

		valid, malformed := Sanitize(records)

		if len(valid) != 2 {
			t.Errorf("expected 2 valid records, got %d", len(valid))
		}
		if len(malformed) != 2 {
			t.Errorf("expected 2 malformed records, got %d", len(malformed))
		}
	})
}
