package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"finmate/internal/models"
)

var fixtureCounter int64

func nextID() int64 {
	return atomic.AddInt64(&fixtureCounter, 1)
}

// CreateTestUser creates and persists a user with a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", nextID()),
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTransaction creates and persists a transaction for the given user.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID string, typ models.TransactionType, category models.Category, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Type:        typ,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("test transaction %d", nextID()),
		Date:        date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestCeiling creates and persists a budget ceiling for the given user.
func CreateTestCeiling(t *testing.T, db *gorm.DB, userID string, category models.Category, amount int64) *models.BudgetCeiling {
	t.Helper()

	ceiling := &models.BudgetCeiling{
		UserID:   userID,
		Category: category,
		Amount:   amount,
	}
	if err := db.Create(ceiling).Error; err != nil {
		t.Fatalf("failed to create test ceiling: %v", err)
	}
	return ceiling
}

// CreateTestProfile creates and persists a profile for the given user.
func CreateTestProfile(t *testing.T, db *gorm.DB, userID string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		UserID:       userID,
		Name:         fmt.Sprintf("Test User %d", nextID()),
		IncomeAmount: 5000000,
		IncomeType:   models.IncomeTypeMonthly,
		Currency:     "INR",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}
