package database

import (
	"fmt"

	"github.com/tsakshay01/expense-tracker/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Expense{},
		&models.Budget{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
