package analytics

import (
	"testing"
	"time"

	"finmate/internal/models"
	"finmate/internal/testutil"
)

func record(typ models.TransactionType, cat models.Category, amount int64, date time.Time) models.Transaction {
	return models.Transaction{
		Type:     typ,
		Category: cat,
		Amount:   amount,
		Date:     date,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestCategoryTotals(t *testing.T) {
	t.Run("sums_expenses_only", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 5000, date(2024, time.March, 3)),
			record(models.TransactionTypeExpense, models.CategoryFood, 2500, date(2024, time.March, 10)),
			record(models.TransactionTypeIncome, models.CategorySalary, 100000, date(2024, time.March, 1)),
			record(models.TransactionTypeExpense, models.CategoryTravel, 8000, date(2024, time.March, 15)),
		}

		totals, err := CategoryTotals(records, Window{})
		testutil.AssertNoError(t, err)

		if totals[models.CategoryFood] != 7500 {
			t.Errorf("expected Food total 7500, got %d", totals[models.CategoryFood])
		}
		if totals[models.CategoryTravel] != 8000 {
			t.Errorf("expected Travel total 8000, got %d", totals[models.CategoryTravel])
		}
		if _, ok := totals[models.CategorySalary]; ok {
			t.Error("income categories must not appear in expense totals")
		}
	})

	t.Run("conservation_of_total", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 123, date(2024, time.January, 1)),
			record(models.TransactionTypeExpense, models.CategoryShopping, 456, date(2024, time.February, 2)),
			record(models.TransactionTypeExpense, models.CategoryOther, 789, date(2024, time.March, 3)),
			record(models.TransactionTypeIncome, models.CategorySalary, 9999, date(2024, time.March, 4)),
		}

		totals, err := CategoryTotals(records, Window{})
		testutil.AssertNoError(t, err)

		var sum, expenseTotal int64
		for _, v := range totals {
			sum += v
		}
		for _, r := range records {
			if r.Type == models.TransactionTypeExpense {
				expenseTotal += r.Amount
			}
		}
		if sum != expenseTotal {
			t.Errorf("category totals sum to %d, expense total is %d", sum, expenseTotal)
		}
	})

	t.Run("window_bounds_inclusive", func(t *testing.T) {
		from := time.Date(2024, time.March, 1, 18, 45, 0, 0, time.UTC) // widened down to 00:00
		to := time.Date(2024, time.March, 31, 6, 0, 0, 0, time.UTC)    // widened up to 23:59:59.999...
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 100, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
			record(models.TransactionTypeExpense, models.CategoryFood, 200, time.Date(2024, time.March, 31, 23, 59, 59, 999000000, time.UTC)),
			record(models.TransactionTypeExpense, models.CategoryFood, 400, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)),
			record(models.TransactionTypeExpense, models.CategoryFood, 800, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
		}

		totals, err := CategoryTotals(records, NewWindow(&from, &to))
		testutil.AssertNoError(t, err)

		if totals[models.CategoryFood] != 300 {
			t.Errorf("expected only boundary records (300) inside window, got %d", totals[models.CategoryFood])
		}
	})

	t.Run("unknown_category_preserved", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.Category("Cryptocurrency"), 4200, date(2024, time.May, 5)),
		}

		totals, err := CategoryTotals(records, Window{})
		testutil.AssertNoError(t, err)

		if totals[models.Category("Cryptocurrency")] != 4200 {
			t.Error("unknown categories must aggregate under their verbatim name")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 100, date(2024, time.June, 1)),
			record(models.TransactionTypeExpense, models.CategoryTravel, 200, date(2024, time.June, 2)),
		}

		first, err := CategoryTotals(records, Window{})
		testutil.AssertNoError(t, err)
		second, err := CategoryTotals(records, Window{})
		testutil.AssertNoError(t, err)

		if len(first) != len(second) {
			t.Fatalf("expected identical results, got %d and %d entries", len(first), len(second))
		}
		for cat, v := range first {
			if second[cat] != v {
				t.Errorf("category %s: first run %d, second run %d", cat, v, second[cat])
			}
		}
	})

	t.Run("malformed_record_fails_fast", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 100, date(2024, time.June, 1)),
			{Type: models.TransactionTypeExpense, Category: models.CategoryFood, Amount: 100}, // no date
		}

		_, err := CategoryTotals(records, Window{})
		testutil.AssertAppError(t, err, "MALFORMED_RECORD")
	})
}

func TestMonthlyTotals(t *testing.T) {
	t.Run("groups_and_sorts_chronologically", func(t *testing.T) {
		// Dec 2023 must sort before Jan 2024 even though "Dec" > "Jan" lexically.
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 300, date(2024, time.January, 10)),
			record(models.TransactionTypeIncome, models.CategorySalary, 1000, date(2023, time.December, 28)),
			record(models.TransactionTypeExpense, models.CategoryTravel, 150, date(2023, time.December, 5)),
			record(models.TransactionTypeExpense, models.CategoryFood, 50, date(2024, time.January, 20)),
		}

		months, err := MonthlyTotals(records)
		testutil.AssertNoError(t, err)

		if len(months) != 2 {
			t.Fatalf("expected 2 months, got %d", len(months))
		}
		if months[0].Month.Year() != 2023 || months[0].Month.Month() != time.December {
			t.Errorf("expected December 2023 first, got %v", months[0].Month)
		}
		if months[0].Income != 1000 || months[0].Expense != 150 {
			t.Errorf("December totals wrong: income=%d expense=%d", months[0].Income, months[0].Expense)
		}
		if months[1].Expense != 350 {
			t.Errorf("expected January expense 350, got %d", months[1].Expense)
		}
	})

	t.Run("order_independent", func(t *testing.T) {
		a := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 100, date(2024, time.January, 1)),
			record(models.TransactionTypeExpense, models.CategoryFood, 200, date(2024, time.February, 1)),
		}
		b := []models.Transaction{a[1], a[0]}

		ma, err := MonthlyTotals(a)
		testutil.AssertNoError(t, err)
		mb, err := MonthlyTotals(b)
		testutil.AssertNoError(t, err)

		if len(ma) != len(mb) {
			t.Fatalf("expected same month count, got %d and %d", len(ma), len(mb))
		}
		for i := range ma {
			if ma[i] != mb[i] {
				t.Errorf("month %d differs across input orderings: %+v vs %+v", i, ma[i], mb[i])
			}
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		months, err := MonthlyTotals(nil)
		testutil.AssertNoError(t, err)
		if len(months) != 0 {
			t.Errorf("expected no months, got %d", len(months))
		}
	})
}

func TestTopCategories(t *testing.T) {
	t.Run("sorted_descending_and_truncated", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 500, date(2024, time.March, 1)),
			record(models.TransactionTypeExpense, models.CategoryTravel, 900, date(2024, time.March, 2)),
			record(models.TransactionTypeExpense, models.CategoryShopping, 700, date(2024, time.March, 3)),
			record(models.TransactionTypeExpense, models.CategoryUtilities, 100, date(2024, time.March, 4)),
			record(models.TransactionTypeIncome, models.CategorySalary, 9000, date(2024, time.March, 5)),
		}

		top, err := TopCategories(records, 3)
		testutil.AssertNoError(t, err)

		if len(top) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(top))
		}
		for i := 1; i < len(top); i++ {
			if top[i].Total > top[i-1].Total {
				t.Errorf("totals not non-increasing at index %d", i)
			}
		}
		if top[0].Category != models.CategoryTravel {
			t.Errorf("expected Travel on top, got %s", top[0].Category)
		}
	})

	t.Run("tie_broken_by_input_order", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryShopping, 500, date(2024, time.March, 1)),
			record(models.TransactionTypeExpense, models.CategoryFood, 500, date(2024, time.March, 2)),
		}

		top, err := TopCategories(records, 2)
		testutil.AssertNoError(t, err)

		if top[0].Category != models.CategoryShopping {
			t.Errorf("expected first-encountered Shopping to win the tie, got %s", top[0].Category)
		}
	})

	t.Run("fewer_categories_than_n", func(t *testing.T) {
		records := []models.Transaction{
			record(models.TransactionTypeExpense, models.CategoryFood, 500, date(2024, time.March, 1)),
		}

		top, err := TopCategories(records, 5)
		testutil.AssertNoError(t, err)

		if len(top) != 1 {
			t.Errorf("expected 1 category, got %d", len(top))
		}
	})
}

func TestWindowContains(t *testing.T) {
	t.Run("unbounded_contains_everything", func(t *testing.T) {
		w := Window{}
		if !w.Contains(date(1970, time.January, 1)) || !w.Contains(date(2100, time.December, 31)) {
			t.Error("zero-value window must contain all dates")
		}
	})

	t.Run("single_bound", func(t *testing.T) {
		from := date(2024, time.March, 15)
		w := NewWindow(&from, nil)
		if w.Contains(date(2024, time.March, 14)) {
			t.Error("date before from must be excluded")
		}
		if !w.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)) {
			t.Error("midnight on the from day must be included")
		}
	})
}
