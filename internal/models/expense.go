package models

import "time"

// Expense is a single dated, categorized record owned by one user.
// UserID never changes after creation.
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Category  string    `gorm:"size:32;index;not null" json:"category"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Notes     string    `gorm:"size:200" json:"notes"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
