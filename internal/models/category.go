package models

// Categories is the fixed set of expense/budget categories. Both expense and
// budget validation reference this list so the two cannot drift apart.
var Categories = []string{
	"Food",
	"Rent",
	"Travel",
	"Entertainment",
	"Shopping",
	"Utilities",
	"Healthcare",
	"Education",
	"Transport",
	"Salary",
	"Other Income",
	"Other Expense",
}

// DefaultCategory is used when an expense is created without a category.
const DefaultCategory = "Other Expense"

// IsValidCategory reports whether name is one of the known categories.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
