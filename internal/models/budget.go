package models

import "time"

// Budget holds one amount per (user, category, month). The composite unique
// index backs the upsert: concurrent writers to the same key are serialized by
// the constraint and the last write wins on amount.
type Budget struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_budget_key;not null" json:"userId"`
	Category  string    `gorm:"size:32;uniqueIndex:idx_budget_key;not null" json:"category"`
	Month     string    `gorm:"size:7;uniqueIndex:idx_budget_key;not null" json:"month"` // YYYY-MM
	Amount    float64   `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
