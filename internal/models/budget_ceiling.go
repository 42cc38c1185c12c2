package models

// BudgetCeiling is a user-configured monthly spending limit for one
// category. Absence of a row means no budget is set for that category,
// which is distinct from a ceiling of zero (zero is rejected at the
// boundary).
type BudgetCeiling struct {
	Base
	UserID   string   `gorm:"type:uuid;not null;uniqueIndex:idx_ceiling_user_category" json:"user_id"`
	Category Category `gorm:"not null;uniqueIndex:idx_ceiling_user_category" json:"category"`
	Amount   int64    `gorm:"type:bigint;not null" json:"amount"`
}
