package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tsakshay01/expense-tracker/internal/models"
	"github.com/tsakshay01/expense-tracker/internal/summary"
	"github.com/tsakshay01/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetHandler serves the budget endpoints.
type BudgetHandler struct {
	DB *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{DB: db}
}

type setBudgetReq struct {
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
	Month    string   `json:"month"`
}

// Set upserts the budget for (caller, category, month). The month defaults to
// the current one; a second write to the same key replaces the amount.
func (h *BudgetHandler) Set(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req setBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Category and a non-negative amount are required.")
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" || req.Amount == nil || *req.Amount < 0 {
		util.Error(c, http.StatusBadRequest, "Category and a non-negative amount are required.")
		return
	}
	if !models.IsValidCategory(req.Category) {
		util.Error(c, http.StatusBadRequest, "Invalid category.")
		return
	}

	month := req.Month
	if month == "" {
		month = summary.MonthKey(time.Now())
	}
	if err := util.ValidateMonth(month); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid month format. Use YYYY-MM.")
		return
	}

	budget := models.Budget{
		UserID:   user.ID,
		Category: req.Category,
		Month:    month,
		Amount:   *req.Amount,
	}
	if err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"amount": *req.Amount}),
	}).Create(&budget).Error; err != nil {
		util.ServerError(c, "upsert budget", err)
		return
	}

	// on conflict the insert id is not populated; reload the row
	if err := h.DB.Where("user_id = ? AND category = ? AND month = ?",
		user.ID, req.Category, month).First(&budget).Error; err != nil {
		util.ServerError(c, fmt.Sprintf("load budget for %s %s", req.Category, month), err)
		return
	}

	c.JSON(http.StatusOK, budget)
}

// List returns the caller's budgets for the given or current month.
func (h *BudgetHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month := c.Query("month")
	if month == "" {
		month = summary.MonthKey(time.Now())
	}
	if err := util.ValidateMonth(month); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid month format. Use YYYY-MM.")
		return
	}

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ? AND month = ?", user.ID, month).
		Find(&budgets).Error; err != nil {
		util.ServerError(c, "list budgets", err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// Summary returns budget-vs-actual rows for the current month: per budgeted
// category the amount spent, the remainder, utilization percentage and a
// traffic-light alert status.
func (h *BudgetHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	month := summary.MonthKey(now)
	monthStart, monthEnd, err := summary.MonthBounds(month, now.Location())
	if err != nil {
		util.ServerError(c, "month bounds", err)
		return
	}

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ? AND month = ?", user.ID, month).
		Find(&budgets).Error; err != nil {
		util.ServerError(c, "list budgets", err)
		return
	}

	var spent []summary.CategoryTotal
	if err := h.DB.Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", user.ID, monthStart, monthEnd).
		Select("category, SUM(amount) AS total").
		Group("category").
		Scan(&spent).Error; err != nil {
		util.ServerError(c, "sum spend by category", err)
		return
	}

	spentByCategory := make(map[string]float64, len(spent))
	for _, s := range spent {
		spentByCategory[s.Category] = s.Total
	}

	c.JSON(http.StatusOK, summary.BuildBudgetRows(budgets, spentByCategory))
}
