package controllers

import (
	"net/http"

	"carwash-backend/config"
	"carwash-backend/models"
	"carwash-backend/services"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns the landing-page numbers: today's takings,
// outstanding account balances and the latest recorded services.
func GetDashboardOverview(c *gin.Context) {
	today := utils.TodayStr()

	// Today's sales, bucketed by payment type
	var todaySales []models.Sale
	if err := config.DB.Where("service_date = ?", today).Find(&todaySales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve today's sales")
		return
	}
	todaySummary := services.SummarizeDay(todaySales)

	// Outstanding across all unpaid account entries
	var unpaidAccounts []models.Account
	if err := config.DB.Where("is_paid = ?", false).Find(&unpaidAccounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve accounts")
		return
	}
	accountSummary := services.SummarizeAccounts(unpaidAccounts)

	// Overdue count
	var overdueCount int64
	config.DB.Model(&models.Account{}).
		Where("is_paid = ? AND due_date <> '' AND due_date < ?", false, today).
		Count(&overdueCount)

	// Pay-later sales still awaiting settlement
	var payLaterCount int64
	config.DB.Model(&models.Sale{}).
		Where("payment_type = ? AND is_paid = ?", models.PaymentPayLater, false).
		Count(&payLaterCount)

	// Total customers
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).Count(&totalCustomers)

	// Recent services (most recent first)
	var allSales []models.Sale
	if err := config.DB.Find(&allSales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}
	recent := services.FilterSales(allSales, services.RecordFilter{})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"date":           today,
		"todaySummary":   todaySummary,
		"outstanding":    accountSummary.Outstanding,
		"unpaidAccounts": accountSummary.UnpaidCount,
		"overdueCount":   overdueCount,
		"payLaterCount":  payLaterCount,
		"totalCustomers": totalCustomers,
		"recentSales":    recent,
	})
}
