package services

import (
	"context"
	"testing"

	"finmate/internal/models"
	"finmate/internal/testutil"
)

func TestBudgetService_SetCeiling(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewBudgetService(db)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, db)

	t.Run("creates_new_ceiling", func(t *testing.T) {
		ceiling, err := svc.SetCeiling(ctx, user.ID, models.CategoryFood, 500000)
		testutil.AssertNoError(t, err)
		if ceiling.Amount != 500000 {
			t.Errorf("expected amount 500000, got %d", ceiling.Amount)
		}
		if ceiling.Category != models.CategoryFood {
			t.Errorf("expected category Food, got %s", ceiling.Category)
		}
	})

	t.Run("replaces_existing_ceiling_in_place", func(t *testing.T) {
		first, err := svc.SetCeiling(ctx, user.ID, models.CategoryTravel, 100000)
		testutil.AssertNoError(t, err)

		second, err := svc.SetCeiling(ctx, user.ID, models.CategoryTravel, 250000)
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected update to keep the same row, got new ID %s", second.ID)
		}
		if second.Amount != 250000 {
			t.Errorf("expected amount 250000, got %d", second.Amount)
		}
	})

	t.Run("rejects_zero_amount", func(t *testing.T) {
		_, err := svc.SetCeiling(ctx, user.ID, models.CategoryShopping, 0)
		testutil.AssertAppError(t, err, "INVALID_BUDGET")
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := svc.SetCeiling(ctx, user.ID, models.CategoryShopping, -100)
		testutil.AssertAppError(t, err, "INVALID_BUDGET")
	})
}

func TestBudgetService_GetCeilings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewBudgetService(db)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, db)

	t.Run("returns_ceilings_in_configuration_order", func(t *testing.T) {
		for _, cat := range []models.Category{models.CategoryHousing, models.CategoryFood, models.CategoryEntertainment} {
			_, err := svc.SetCeiling(ctx, user.ID, cat, 100000)
			testutil.AssertNoError(t, err)
		}

		// Updating an earlier ceiling must not move it to the back.
		_, err := svc.SetCeiling(ctx, user.ID, models.CategoryHousing, 200000)
		testutil.AssertNoError(t, err)

		ceilings, err := svc.GetCeilings(ctx, user.ID)
		testutil.AssertNoError(t, err)

		want := []models.Category{models.CategoryHousing, models.CategoryFood, models.CategoryEntertainment}
		if len(ceilings) != len(want) {
			t.Fatalf("expected %d ceilings, got %d", len(want), len(ceilings))
		}
		for i, cat := range want {
			if ceilings[i].Category != cat {
				t.Errorf("position %d: expected %s, got %s", i, cat, ceilings[i].Category)
			}
		}
	})

	t.Run("empty_for_user_without_ceilings", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		ceilings, err := svc.GetCeilings(ctx, other.ID)
		testutil.AssertNoError(t, err)
		if len(ceilings) != 0 {
			t.Errorf("expected no ceilings, got %d", len(ceilings))
		}
	})
}

func TestBudgetService_GetCeiling(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewBudgetService(db)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, db)

	t.Run("returns_configured_ceiling", func(t *testing.T) {
		testutil.CreateTestCeiling(t, db, user.ID, models.CategoryUtilities, 75000)

		ceiling, err := svc.GetCeiling(ctx, user.ID, models.CategoryUtilities)
		testutil.AssertNoError(t, err)
		if ceiling.Amount != 75000 {
			t.Errorf("expected amount 75000, got %d", ceiling.Amount)
		}
	})

	t.Run("not_found_for_unconfigured_category", func(t *testing.T) {
		_, err := svc.GetCeiling(ctx, user.ID, models.CategoryHealthcare)
		testutil.AssertAppError(t, err, "CEILING_NOT_FOUND")
	})
}

func TestBudgetService_DeleteCeiling(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewBudgetService(db)
	ctx := context.Background()
	user := testutil.CreateTestUser(t, db)

	t.Run("deletes_existing_ceiling", func(t *testing.T) {
		testutil.CreateTestCeiling(t, db, user.ID, models.CategoryEducation, 120000)

		err := svc.DeleteCeiling(ctx, user.ID, models.CategoryEducation)
		testutil.AssertNoError(t, err)

		_, err = svc.GetCeiling(ctx, user.ID, models.CategoryEducation)
		testutil.AssertAppError(t, err, "CEILING_NOT_FOUND")
	})

	t.Run("not_found_when_nothing_to_delete", func(t *testing.T) {
		err := svc.DeleteCeiling(ctx, user.ID, models.CategoryGift)
		testutil.AssertAppError(t, err, "CEILING_NOT_FOUND")
	})

	t.Run("category_can_be_budgeted_again_after_delete", func(t *testing.T) {
		_, err := svc.SetCeiling(ctx, user.ID, models.CategoryInvestment, 100000)
		testutil.AssertNoError(t, err)

		err = svc.DeleteCeiling(ctx, user.ID, models.CategoryInvestment)
		testutil.AssertNoError(t, err)

		ceiling, err := svc.SetCeiling(ctx, user.ID, models.CategoryInvestment, 200000)
		testutil.AssertNoError(t, err)
		if ceiling.Amount != 200000 {
			t.Errorf("expected amount 200000, got %d", ceiling.Amount)
		}
	})

	t.Run("scoped_to_owning_user", func(t *testing.T) {
		testutil.CreateTestCeiling(t, db, user.ID, models.CategoryPersonal, 50000)
		other := testutil.CreateTestUser(t, db)

		err := svc.DeleteCeiling(ctx, other.ID, models.CategoryPersonal)
		testutil.AssertAppError(t, err, "CEILING_NOT_FOUND")

		_, err = svc.GetCeiling(ctx, user.ID, models.CategoryPersonal)
		testutil.AssertNoError(t, err)
	})
}
