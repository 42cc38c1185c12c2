package models

// IncomeType represents how the configured income figure is quoted.
type IncomeType string

const (
	IncomeTypeMonthly IncomeType = "monthly"
	IncomeTypeYearly  IncomeType = "yearly"
)

// Profile holds per-user settings: display name and configured income.
// IncomeAmount is in minor currency units (paise).
type Profile struct {
	Base
	UserID       string     `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name         string     `json:"name"`
	IncomeAmount int64      `gorm:"type:bigint;default:0" json:"income_amount"`
	IncomeType   IncomeType `gorm:"default:monthly" json:"income_type"`
	Currency     string     `gorm:"size:3;default:INR" json:"currency"`
}
