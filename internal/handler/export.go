package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tsakshay01/expense-tracker/internal/models"
	"github.com/tsakshay01/expense-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var exportHeader = []string{"Date", "Category", "Amount", "Notes"}

// ExportHandler streams the caller's ledger as a CSV or XLSX attachment.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

// Export writes the caller's expenses in the requested format
// (?format=csv|xlsx, csv by default), newest first.
func (h *ExportHandler) Export(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		util.ServerError(c, "list expenses for export", err)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		h.exportCSV(c, expenses)
	case "xlsx":
		h.exportXLSX(c, expenses)
	default:
		util.Error(c, http.StatusBadRequest, "Unknown export format. Use csv or xlsx.")
	}
}

func (h *ExportHandler) exportCSV(c *gin.Context, expenses []models.Expense) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, e := range expenses {
		writer.Write([]string{
			e.Date.Format("2006-01-02"),
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Notes,
		})
	}
}

func (h *ExportHandler) exportXLSX(c *gin.Context, expenses []models.Expense) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	f.SetSheetName("Sheet1", sheet)

	headerRow := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		headerRow[i] = h
	}
	f.SetSheetRow(sheet, "A1", &headerRow)

	for i, e := range expenses {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(sheet, cell, &[]interface{}{
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Amount,
			e.Notes,
		})
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.ServerError(c, "write xlsx", err)
	}
}
