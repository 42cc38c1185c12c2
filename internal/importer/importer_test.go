package importer

import (
	"context"
	"strings"
	"testing"

	"finmate/internal/models"
	"finmate/internal/testutil"
)

func TestImporter_Run(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	im := New(db)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, db)

	t.Run("imports_valid_rows", func(t *testing.T) {
		csv := strings.Join([]string{
			"date,type,category,amount,description",
			"2026-01-05,expense,Food,45000,groceries",
			"2026-01-01,income,Salary,5000000,january pay",
		}, "\n")

		result, err := im.Run(ctx, user.ID, strings.NewReader(csv))
		testutil.AssertNoError(t, err)

		if result.Imported != 2 {
			t.Errorf("expected 2 imported, got %d", result.Imported)
		}
		if len(result.Skipped) != 0 {
			t.Errorf("expected no skipped rows, got %v", result.Skipped)
		}

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count).Error)
		if count != 2 {
			t.Errorf("expected 2 rows persisted, got %d", count)
		}
	})

	t.Run("skips_and_reports_bad_rows", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		csv := strings.Join([]string{
			"date,type,category,amount,description",
			"2026-02-01,expense,Food,30000,ok",
			"not-a-date,expense,Food,30000,bad date",
			"2026-02-03,transfer,Food,30000,bad type",
			"2026-02-04,expense,Food,-5,bad amount",
		}, "\n")

		result, err := im.Run(ctx, other.ID, strings.NewReader(csv))
		testutil.AssertNoError(t, err)

		if result.Imported != 1 {
			t.Errorf("expected 1 imported, got %d", result.Imported)
		}
		if len(result.Skipped) != 3 {
			t.Fatalf("expected 3 skipped rows, got %d", len(result.Skipped))
		}
		if result.Skipped[0].Line != 3 {
			t.Errorf("expected first skip at line 3, got %d", result.Skipped[0].Line)
		}
	})

	t.Run("rejects_wrong_header", func(t *testing.T) {
		csv := "when,what,how much\n2026-01-01,expense,100\n"
		_, err := im.Run(ctx, user.ID, strings.NewReader(csv))
		if err == nil {
			t.Fatal("expected header error")
		}
	})

	t.Run("empty_file_after_header", func(t *testing.T) {
		result, err := im.Run(ctx, user.ID, strings.NewReader("date,type,category,amount,description\n"))
		testutil.AssertNoError(t, err)
		if result.Imported != 0 {
			t.Errorf("expected nothing imported, got %d", result.Imported)
		}
	})
}
