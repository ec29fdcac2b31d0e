package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"taxi_admin/internal/config"
	"taxi_admin/internal/models"
)

// expenseInput accepts the amount either as a number or as a string with a
// Norwegian decimal comma ("123,45").
type expenseInput struct {
	Date        *string `json:"date"`
	Category    string  `json:"category"`
	Amount      any     `json:"amount"`
	Description string  `json:"description"`
	DriverID    *uint   `json:"driverId"`
	CarID       *uint   `json:"carId"`
}

func parseAmount(v any) (float64, bool) {
	switch amount := v.(type) {
	case float64:
		return amount, true
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(amount, ",", "."), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func ListExpenses(c *gin.Context) {
	var expenses []models.Expense
	err := config.DB.Preload("Driver").Preload("Car").Order("date DESC").Find(&expenses).Error
	if err != nil {
		logrus.WithError(err).Error("Error listing expenses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, expenseRecords(expenses))
}

func expenseRecords(expenses []models.Expense) []map[string]any {
	out := make([]map[string]any, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, e.Record())
	}
	return out
}

func ListExpensesByCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car ID format"})
		return
	}

	var expenses []models.Expense
	if err := config.DB.Where("car_id = ?", uint(id)).Order("date DESC").Find(&expenses).Error; err != nil {
		logrus.WithError(err).Error("Error listing expenses by car")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, expenseRecords(expenses))
}

func ListExpensesByDriver(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID format"})
		return
	}

	var expenses []models.Expense
	if err := config.DB.Where("driver_id = ?", uint(id)).Order("date DESC").Find(&expenses).Error; err != nil {
		logrus.WithError(err).Error("Error listing expenses by driver")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, expenseRecords(expenses))
}

func CreateExpense(c *gin.Context) {
	var input expenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortValidation(c, err)
		return
	}

	amount, ok := parseAmount(input.Amount)
	if input.Category == "" || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and amount are required"})
		return
	}

	date := time.Now()
	if input.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valideringsfeil", "details": []string{"Field 'date' must be an RFC 3339 datetime"}})
			return
		}
		date = parsed
	}

	expense := models.Expense{
		Date:        date,
		Category:    input.Category,
		Amount:      amount,
		Description: input.Description,
		DriverID:    input.DriverID,
		CarID:       input.CarID,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		logrus.WithError(err).Error("Expense creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, expense.Record())
}

// DeleteExpenses clears the expense table. Admin only.
func DeleteExpenses(c *gin.Context) {
	res := config.DB.Where("1 = 1").Delete(&models.Expense{})
	if res.Error != nil {
		logrus.WithError(res.Error).Error("Expense deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
