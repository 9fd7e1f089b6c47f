// Package summary derives aggregate views over expenses and budgets. All
// functions take time explicitly instead of reading the clock, so the same
// inputs always produce the same output.
package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tsakshay01/expense-tracker/internal/models"
)

// Alert statuses for budget utilization.
const (
	AlertGreen  = "green"
	AlertYellow = "yellow"
	AlertRed    = "red"
)

// CategoryTotal is one spend-by-category row.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// DayTotal is one per-day spend row. Date is a YYYY-MM-DD key.
type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// BudgetRow is one budget-vs-actual row for a single category and month.
type BudgetRow struct {
	Category       string  `json:"category"`
	Budgeted       float64 `json:"budgeted"`
	ActualSpend    float64 `json:"actualSpend"`
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentageUsed"`
	AlertStatus    string  `json:"alertStatus"`
}

// Spending is the full spending summary for one user.
type Spending struct {
	TotalSpendThisMonth float64         `json:"totalSpendThisMonth"`
	SpendByCategory     []CategoryTotal `json:"spendByCategory"`
	SpendingTrends      []DayTotal      `json:"spendingTrends"`
	TopExpenseDays      []DayTotal      `json:"topExpenseDays"`
}

// MonthKey formats now as a YYYY-MM month key.
func MonthKey(now time.Time) string {
	return now.Format("2006-01")
}

// MonthBounds returns the half-open interval [start of month, start of next
// month) for a YYYY-MM key, in loc.
func MonthBounds(monthKey string, loc *time.Location) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01", monthKey, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse month %q: %w", monthKey, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0), nil
}

// TrailingWindow returns the half-open interval covering the trailing `days`
// days plus today, aligned to day boundaries: [today-days 00:00, tomorrow 00:00).
func TrailingWindow(now time.Time, days int) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -days), today.AddDate(0, 0, 1)
}

// PercentageUsed computes budget utilization as a percentage, rounded to two
// decimals. A zero budget counts as fully used when anything was spent at all
// (product policy: 100 if actual > 0, else 0).
func PercentageUsed(budgeted, actual float64) float64 {
	if budgeted <= 0 {
		if actual > 0 {
			return 100
		}
		return 0
	}
	return math.Round(actual/budgeted*100*100) / 100
}

// AlertStatus classifies a utilization percentage: green below 80, yellow in
// [80, 100), red at or above 100.
func AlertStatus(pct float64) string {
	switch {
	case pct >= 100:
		return AlertRed
	case pct >= 80:
		return AlertYellow
	default:
		return AlertGreen
	}
}

// BuildBudgetRows combines the month's budgets with actual spend per category.
// Categories that were spent on but never budgeted produce no row, matching
// the budget-driven shape of the report.
func BuildBudgetRows(budgets []models.Budget, spentByCategory map[string]float64) []BudgetRow {
	rows := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		actual := spentByCategory[b.Category]
		pct := PercentageUsed(b.Amount, actual)
		rows = append(rows, BudgetRow{
			Category:       b.Category,
			Budgeted:       b.Amount,
			ActualSpend:    actual,
			Remaining:      b.Amount - actual,
			PercentageUsed: pct,
			AlertStatus:    AlertStatus(pct),
		})
	}
	return rows
}

// TopDays returns the n highest-spend days, total descending. The input is
// not modified.
func TopDays(days []DayTotal, n int) []DayTotal {
	top := make([]DayTotal, len(days))
	copy(top, days)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Total > top[j].Total })
	if len(top) > n {
		top = top[:n]
	}
	return top
}
