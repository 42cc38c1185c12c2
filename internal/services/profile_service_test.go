package services

import (
	"context"
	"testing"

	"finmate/internal/models"
	"finmate/internal/testutil"
)

func TestProfileService_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewProfileService(db)
	ctx := context.Background()

	t.Run("returns_profile", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID)

		profile, err := svc.Get(ctx, user.ID)
		testutil.AssertNoError(t, err)
		if profile.Currency != "INR" {
			t.Errorf("expected currency INR, got %s", profile.Currency)
		}
	})

	t.Run("not_found_without_profile", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		_, err := svc.Get(ctx, user.ID)
		testutil.AssertAppError(t, err, "PROFILE_NOT_FOUND")
	})
}

func TestProfileService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewProfileService(db)
	ctx := context.Background()

	t.Run("updates_provided_fields_only", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID)

		income := int64(7500000)
		incomeType := models.IncomeTypeYearly
		updated, err := svc.Update(ctx, user.ID, UpdateProfileInput{
			IncomeAmount: &income,
			IncomeType:   &incomeType,
		})
		testutil.AssertNoError(t, err)

		if updated.IncomeAmount != 7500000 {
			t.Errorf("expected income 7500000, got %d", updated.IncomeAmount)
		}
		if updated.IncomeType != models.IncomeTypeYearly {
			t.Errorf("expected yearly income type, got %s", updated.IncomeType)
		}
		if updated.Currency != "INR" {
			t.Errorf("expected currency unchanged, got %s", updated.Currency)
		}
	})

	t.Run("rejects_negative_income", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID)

		income := int64(-1)
		_, err := svc.Update(ctx, user.ID, UpdateProfileInput{IncomeAmount: &income})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_bad_income_type", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID)

		incomeType := models.IncomeType("weekly")
		_, err := svc.Update(ctx, user.ID, UpdateProfileInput{IncomeType: &incomeType})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_bad_currency", func(t *testing.T) {
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID)

		currency := "RUPEES"
		_, err := svc.Update(ctx, user.ID, UpdateProfileInput{Currency: &currency})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
