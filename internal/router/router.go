package router

import (
	"net/http"

	"github.com/tsakshay01/expense-tracker/internal/config"
	"github.com/tsakshay01/expense-tracker/internal/handler"
	"github.com/tsakshay01/expense-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the gin engine and mounts all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Expense Planner API is running...")
	})

	api := r.Group("/api")

	// registration and login are the only unauthenticated routes
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, db))

	expenseHandler := handler.NewExpenseHandler(db)
	protected.GET("/expenses", expenseHandler.List)
	protected.POST("/expenses", expenseHandler.Create)
	protected.GET("/expenses/summary", expenseHandler.SpendingSummary)
	protected.PUT("/expenses/:id", expenseHandler.Update)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)

	budgetHandler := handler.NewBudgetHandler(db)
	protected.POST("/budgets", budgetHandler.Set)
	protected.GET("/budgets", budgetHandler.List)
	protected.GET("/budgets/summary", budgetHandler.Summary)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/expenses/export", exportHandler.Export)

	return r
}
