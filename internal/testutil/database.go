// Package testutil provides shared helpers for service and handler tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"finmate/internal/models"
)

// SetupTestDB creates an in-memory SQLite database with all models migrated.
// Each call returns a fresh database so tests stay independent.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Transaction{},
		&models.BudgetCeiling{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TeardownTestDB drops all tables and closes the connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.Migrator().DropTable(
		&models.BudgetCeiling{},
		&models.Transaction{},
		&models.Profile{},
		&models.User{},
	)
	if err != nil {
		t.Fatalf("failed to drop tables: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}
