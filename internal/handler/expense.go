package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tsakshay01/expense-tracker/internal/models"
	"github.com/tsakshay01/expense-tracker/internal/summary"
	"github.com/tsakshay01/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// trendDays is the size of the trailing window used by the spending summary.
const trendDays = 30

// ExpenseHandler serves the expense ledger endpoints.
type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db}
}

type createExpenseReq struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes"`
}

// updateExpenseReq uses pointers so absent fields stay untouched.
type updateExpenseReq struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
	Notes    *string  `json:"notes"`
}

// List returns all of the caller's expenses, newest first.
func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		util.ServerError(c, "list expenses", err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// Create records a new expense for the caller.
func (h *ExpenseHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please enter all required fields: amount, category, and date.")
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	req.Notes = strings.TrimSpace(req.Notes)

	if req.Amount == 0 || req.Category == "" || req.Date == "" {
		util.Error(c, http.StatusBadRequest, "Please enter all required fields: amount, category, and date.")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "Amount must be a positive number.")
		return
	}
	if !models.IsValidCategory(req.Category) {
		util.Error(c, http.StatusBadRequest, "Invalid category.")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid date format.")
		return
	}
	if len(req.Notes) > 200 {
		util.Error(c, http.StatusBadRequest, "Notes must be at most 200 characters.")
		return
	}

	expense := models.Expense{
		UserID:   user.ID,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
		Notes:    req.Notes,
	}
	if err := h.DB.Create(&expense).Error; err != nil {
		util.ServerError(c, "create expense", err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// Update applies the supplied fields to one of the caller's expenses.
// Unknown id answers 404, someone else's expense 403.
func (h *ExpenseHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var req updateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	var expense models.Expense
	if err := h.DB.First(&expense, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Expense not found")
		} else {
			util.ServerError(c, "load expense", err)
		}
		return
	}

	if expense.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "User not authorized to update this expense")
		return
	}

	if req.Amount != nil {
		if err := util.ValidateAmount(*req.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, "Amount must be a positive number.")
			return
		}
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		cat := strings.TrimSpace(*req.Category)
		if !models.IsValidCategory(cat) {
			util.Error(c, http.StatusBadRequest, "Invalid category.")
			return
		}
		expense.Category = cat
	}
	if req.Date != nil {
		date, err := util.ParseDate(*req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid date format.")
			return
		}
		expense.Date = date
	}
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if len(notes) > 200 {
			util.Error(c, http.StatusBadRequest, "Notes must be at most 200 characters.")
			return
		}
		expense.Notes = notes
	}

	if err := h.DB.Save(&expense).Error; err != nil {
		util.ServerError(c, "save expense", err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete removes one of the caller's expenses, with the same 404/403
// distinction as Update.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	var expense models.Expense
	if err := h.DB.First(&expense, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, "Expense not found")
		} else {
			util.ServerError(c, "load expense", err)
		}
		return
	}

	if expense.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "User not authorized to delete this expense")
		return
	}

	if err := h.DB.Delete(&expense).Error; err != nil {
		util.ServerError(c, "delete expense", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense removed successfully"})
}

// SpendingSummary aggregates the caller's spending: total and per-category for
// the current calendar month, plus a daily trend and the five highest-spend
// days over the trailing 30 days.
func (h *ExpenseHandler) SpendingSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	monthStart, monthEnd, err := summary.MonthBounds(summary.MonthKey(now), now.Location())
	if err != nil {
		util.ServerError(c, "month bounds", err)
		return
	}

	monthScope := func() *gorm.DB {
		return h.DB.Model(&models.Expense{}).
			Where("user_id = ? AND date >= ? AND date < ?", user.ID, monthStart, monthEnd)
	}

	var total float64
	if err := monthScope().
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		util.ServerError(c, "sum month spend", err)
		return
	}

	byCategory := make([]summary.CategoryTotal, 0)
	if err := monthScope().
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("total DESC").
		Scan(&byCategory).Error; err != nil {
		util.ServerError(c, "sum spend by category", err)
		return
	}

	windowStart, windowEnd := summary.TrailingWindow(now, trendDays)
	trends := make([]summary.DayTotal, 0)
	if err := h.DB.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", user.ID, windowStart, windowEnd).
		Select("DATE(date) AS date, SUM(amount) AS total").
		Group("DATE(date)").
		Order("date ASC").
		Scan(&trends).Error; err != nil {
		util.ServerError(c, "sum daily trend", err)
		return
	}

	c.JSON(http.StatusOK, summary.Spending{
		TotalSpendThisMonth: total,
		SpendByCategory:     byCategory,
		SpendingTrends:      trends,
		TopExpenseDays:      summary.TopDays(trends, 5),
	})
}
