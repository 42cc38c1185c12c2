package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	Profile      *Profile        `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Transactions []Transaction   `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Ceilings     []BudgetCeiling `gorm:"foreignKey:UserID" json:"ceilings,omitempty"`
}
