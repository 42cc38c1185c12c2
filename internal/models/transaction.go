package models

import "time"

// TransactionType represents the direction of a transaction. Amounts are
// always non-negative; the type carries the sign.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
// Amount is stored in minor currency units (paise).
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Category    Category        `gorm:"not null" json:"category"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
}
