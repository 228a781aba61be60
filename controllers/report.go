// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"carwash-backend/config"
	"carwash-backend/models"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// RevenueReport represents the revenue analytics data
type RevenueReport struct {
	CurrentMonthRevenue   float64           `json:"currentMonthRevenue"`
	MonthGrowth           float64           `json:"monthGrowth"`
	CurrentQuarterRevenue float64           `json:"currentQuarterRevenue"`
	QuarterGrowth         float64           `json:"quarterGrowth"`
	CurrentYearRevenue    float64           `json:"currentYearRevenue"`
	YearGrowth            float64           `json:"yearGrowth"`
	TopServices           []ServiceSummary  `json:"topServices"`
	TopCustomers          []CustomerSummary `json:"topCustomers"`
	QuickStats            QuickStatistics   `json:"quickStats"`
}

type ServiceSummary struct {
	Service string  `json:"service"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type CustomerSummary struct {
	Name   string  `json:"name"`
	Visits int     `json:"visits"`
	Spent  float64 `json:"spent"`
}

type QuickStatistics struct {
	TotalSales    int     `json:"totalSales"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	AccountShare  float64 `json:"accountShare"` // % of revenue on 30-day account
}

// GetRevenueReport returns the revenue analytics summary
func (rc *ReportController) GetRevenueReport(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	currentMonthRevenue, err := rc.getRevenue(firstOfMonth, lastOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getRevenue(
		firstOfMonth.AddDate(0, -1, 0),
		lastOfMonth.AddDate(0, -1, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	currentQuarterRevenue, err := rc.getRevenue(rc.getQuarterStart(now), rc.getQuarterEnd(now))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quarterly revenue")
		return
	}

	lastQuarterRevenue, err := rc.getRevenue(
		rc.getQuarterStart(now).AddDate(0, -3, 0),
		rc.getQuarterEnd(now).AddDate(0, -3, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last quarter revenue")
		return
	}

	currentYearRevenue, err := rc.getRevenue(
		time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation),
		time.Date(currentYear, 12, 31, 0, 0, 0, 0, currentLocation))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	lastYearRevenue, err := rc.getRevenue(
		time.Date(currentYear-1, 1, 1, 0, 0, 0, 0, currentLocation),
		time.Date(currentYear-1, 12, 31, 0, 0, 0, 0, currentLocation))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year revenue")
		return
	}

	topServices, err := rc.getTopServices(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top services")
		return
	}

	topCustomers, err := rc.getTopCustomers(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top customers")
		return
	}

	quickStats, err := rc.getQuickStatistics()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quick statistics")
		return
	}

	report := RevenueReport{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           rc.calculateGrowthPercentage(currentMonthRevenue, lastMonthRevenue),
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         rc.calculateGrowthPercentage(currentQuarterRevenue, lastQuarterRevenue),
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            rc.calculateGrowthPercentage(currentYearRevenue, lastYearRevenue),
		TopServices:           topServices,
		TopCustomers:          topCustomers,
		QuickStats:            quickStats,
	}

	c.JSON(http.StatusOK, report)
}

// Helper functions for reports

func (rc *ReportController) getRevenue(start, end time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.Sale{}).
		Where("service_date BETWEEN ? AND ?",
			start.Format(utils.DateLayout), end.Format(utils.DateLayout)).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (rc *ReportController) getQuarterStart(date time.Time) time.Time {
	quarter := (int(date.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	return time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
}

func (rc *ReportController) getQuarterEnd(date time.Time) time.Time {
	return rc.getQuarterStart(date).AddDate(0, 3, -1)
}

func (rc *ReportController) calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}

func (rc *ReportController) getTopServices(start, end time.Time, limit int) ([]ServiceSummary, error) {
	var summaries []ServiceSummary

	err := config.DB.Table("sales").
		Select("service_description as service, COUNT(*) as count, SUM(final_amount) as revenue").
		Where("service_date BETWEEN ? AND ? AND deleted_at IS NULL",
			start.Format(utils.DateLayout), end.Format(utils.DateLayout)).
		Group("service_description").
		Order("revenue DESC").
		Limit(limit).
		Scan(&summaries).Error

	return summaries, err
}

func (rc *ReportController) getTopCustomers(start, end time.Time, limit int) ([]CustomerSummary, error) {
	var summaries []CustomerSummary

	err := config.DB.Table("sales").
		Select("customer_name as name, COUNT(*) as visits, SUM(final_amount) as spent").
		Where("service_date BETWEEN ? AND ? AND deleted_at IS NULL",
			start.Format(utils.DateLayout), end.Format(utils.DateLayout)).
		Group("customer_name").
		Order("spent DESC").
		Limit(limit).
		Scan(&summaries).Error

	return summaries, err
}

func (rc *ReportController) getQuickStatistics() (QuickStatistics, error) {
	var stats QuickStatistics

	var totalSales int64
	if err := config.DB.Model(&models.Sale{}).Count(&totalSales).Error; err != nil {
		return stats, err
	}
	stats.TotalSales = int(totalSales)

	var totalRevenue float64
	if err := config.DB.Model(&models.Sale{}).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return stats, err
	}

	if stats.TotalSales > 0 {
		stats.AvgOrderValue = totalRevenue / float64(stats.TotalSales)
	}

	var accountRevenue float64
	if err := config.DB.Model(&models.Sale{}).
		Where("payment_type = ?", models.PaymentAccount).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&accountRevenue).Error; err != nil {
		return stats, err
	}

	if totalRevenue > 0 {
		stats.AccountShare = (accountRevenue / totalRevenue) * 100
	}

	return stats, nil
}
