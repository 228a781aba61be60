// controllers/sale.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"carwash-backend/config"
	"carwash-backend/models"
	"carwash-backend/services"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateSaleInput defines the expected JSON structure for recording a service
type CreateSaleInput struct {
	Date                string          `json:"date" binding:"required"`
	Time                string          `json:"time"`
	CustomerName        string          `json:"customerName" binding:"required"`
	VehicleRegistration string          `json:"vehicleRegistration"`
	VehicleDescription  string          `json:"vehicleDescription"`
	ServiceDescription  string          `json:"serviceDescription" binding:"required"`
	BaseAmount          decimal.Decimal `json:"baseAmount"`
	Discount            decimal.Decimal `json:"discount"`
	PaymentType         string          `json:"paymentType" binding:"required"`
	Notes               string          `json:"notes"`
}

// UpdateSaleInput allows changing only the payment fields of a recorded sale
type UpdateSaleInput struct {
	PaymentType *string `json:"paymentType"`
	IsPaid      *bool   `json:"isPaid"`
}

var salesSnapshot = services.NewSnapshotStore(snapshotPath())

func snapshotPath() string {
	if p := os.Getenv("SALES_SNAPSHOT_PATH"); p != "" {
		return p
	}
	return "carwash_sales_snapshot.json"
}

// CreateSale records a new service. A 30-day-account sale also opens an
// account entry for the customer inside the same transaction.
func CreateSale(c *gin.Context) {
	var input CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate locally before any write
	if !utils.ValidDateStr(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidatePaymentType(input.PaymentType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment type")
		return
	}
	if input.BaseAmount.LessThanOrEqual(decimal.Zero) {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
		return
	}
	if input.Discount.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Discount cannot be negative")
		return
	}
	if input.Discount.GreaterThan(input.BaseAmount) {
		utils.RespondWithError(c, http.StatusBadRequest, "Discount cannot be more than the amount")
		return
	}

	finalAmount := input.BaseAmount.Sub(input.Discount)

	sale := models.Sale{
		ServiceDate:         input.Date,
		ServiceTime:         input.Time,
		CustomerName:        input.CustomerName,
		VehicleRegistration: input.VehicleRegistration,
		VehicleDescription:  input.VehicleDescription,
		ServiceDescription:  input.ServiceDescription,
		BaseAmount:          input.BaseAmount,
		Discount:            input.Discount,
		FinalAmount:         finalAmount,
		PaymentType:         input.PaymentType,
		IsPaid:              input.PaymentType != models.PaymentAccount && input.PaymentType != models.PaymentPayLater,
		Notes:               input.Notes,
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if sale.PaymentType == models.PaymentAccount {
		customer, err := getOrCreateAccountCustomer(tx, input.CustomerName)
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve account customer")
			return
		}
		sale.CustomerID = &customer.ID

		if err := tx.Create(&sale).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save sale")
			return
		}

		dueDate := time.Now().AddDate(0, 0, 30).Format(utils.DateLayout)
		account := models.Account{
			CustomerID: customer.ID,
			SaleID:     &sale.ID,
			AmountDue:  finalAmount,
			AmountPaid: decimal.Zero,
			IsPaid:     false,
			DueDate:    dueDate,
		}
		if err := tx.Create(&account).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to open account entry")
			return
		}
	} else {
		if err := tx.Create(&sale).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save sale")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusCreated, sale)
}

func getOrCreateAccountCustomer(tx *gorm.DB, name string) (models.Customer, error) {
	var customer models.Customer
	err := tx.Where("name = ?", name).First(&customer).Error
	if err == nil {
		if !customer.IsAccountCustomer {
			err = tx.Model(&customer).Update("is_account_customer", true).Error
		}
		return customer, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return customer, err
	}

	customer = models.Customer{Name: name, IsAccountCustomer: true}
	err = tx.Create(&customer).Error
	return customer, err
}

// GetSales retrieves service records, most recent first, with optional
// date / payment type / free-text filters. When the database is unreachable
// the last saved snapshot is served instead.
func GetSales(c *gin.Context) {
	filter := services.RecordFilter{
		Query:       c.Query("q"),
		PaymentType: c.Query("payment_type"),
		Date:        c.Query("date"),
	}

	query := config.DB.Model(&models.Sale{})
	if isPaid := c.Query("is_paid"); isPaid != "" {
		query = query.Where("is_paid = ?", isPaid == "true")
	}

	var sales []models.Sale
	if err := query.Find(&sales).Error; err != nil {
		// Offline fallback: serve the cached list rather than failing
		sales = salesSnapshot.Load()
		c.Header("X-Data-Source", "snapshot")
		c.JSON(http.StatusOK, services.FilterSales(sales, filter))
		return
	}

	if err := salesSnapshot.Save(sales); err != nil {
		// A stale snapshot is acceptable; the response is authoritative
		c.Header("X-Snapshot-Stale", "true")
	}

	c.JSON(http.StatusOK, services.FilterSales(sales, filter))
}

// GetSale retrieves a specific sale by ID
func GetSale(c *gin.Context) {
	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var sale models.Sale
	if err := config.DB.First(&sale, "id = ?", saleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, sale)
}

// UpdateSale changes the payment method or paid flag of a sale. Other fields
// of a recorded service are never edited.
func UpdateSale(c *gin.Context) {
	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var input UpdateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.PaymentType != nil && *input.PaymentType != models.PaymentPaid &&
		!utils.ValidatePaymentType(*input.PaymentType) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment type")
		return
	}

	var sale models.Sale
	if err := config.DB.First(&sale, "id = ?", saleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.PaymentType != nil {
		sale.PaymentType = *input.PaymentType
	}
	if input.IsPaid != nil {
		sale.IsPaid = *input.IsPaid
	}

	if err := config.DB.Save(&sale).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}

// MarkSalePaid settles a pay-later sale
func MarkSalePaid(c *gin.Context) {
	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var sale models.Sale
	if err := config.DB.First(&sale, "id = ?", saleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	sale.PaymentType = models.PaymentPaid
	sale.IsPaid = true

	if err := config.DB.Save(&sale).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}

// DeleteSale removes a single sale
func DeleteSale(c *gin.Context) {
	saleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var sale models.Sale
	if err := config.DB.First(&sale, "id = ?", saleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&sale).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete sale")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}

// DeleteAllSales removes every sale record. The caller must confirm
// explicitly; partial failure is reported as a single aggregate failure.
func DeleteAllSales(c *gin.Context) {
	if c.Query("confirm") != "true" {
		utils.RespondWithError(c, http.StatusBadRequest, "Bulk delete requires confirm=true")
		return
	}

	var ids []uuid.UUID
	if err := config.DB.Model(&models.Sale{}).Pluck("id", &ids).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch sales")
		return
	}
	if len(ids) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No sales found for delete")
		return
	}

	if err := config.DB.Where("id IN ?", ids).Delete(&models.Sale{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete sales")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All sales deleted successfully", "deleted": len(ids)})
}

// GetDailySummary returns the daily totals bucketed by payment type
func GetDailySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = utils.TodayStr()
	}
	if !utils.ValidDateStr(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var sales []models.Sale
	if err := config.DB.Where("service_date = ?", date).Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date,
		"summary": services.SummarizeDay(sales),
		"sales":   services.FilterSales(sales, services.RecordFilter{}),
	})
}

// ExportSales streams the current (filtered) record view as a CSV attachment
func ExportSales(c *gin.Context) {
	filter := services.RecordFilter{
		Query:       c.Query("q"),
		PaymentType: c.Query("payment_type"),
		Date:        c.Query("date"),
	}

	var sales []models.Sale
	if err := config.DB.Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	csvText, err := services.ExportCSV(services.FilterSales(sales, filter))
	if err != nil {
		if errors.Is(err, services.ErrNothingToExport) {
			utils.RespondWithError(c, http.StatusNotFound, "No records to export yet")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export sales")
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="carwash_records.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}

// GetPayLaterSales lists pay-later records, most recent first
func GetPayLaterSales(c *gin.Context) {
	var sales []models.Sale
	if err := config.DB.Where("payment_type = ?", models.PaymentPayLater).Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve pay-later records")
		return
	}

	c.JSON(http.StatusOK, services.FilterSales(sales, services.RecordFilter{}))
}
