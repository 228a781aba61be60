// controllers/account.go
package controllers

import (
	"errors"
	"net/http"

	"carwash-backend/config"
	"carwash-backend/models"
	"carwash-backend/services"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerBalance is one row of the per-customer account balances view
type CustomerBalance struct {
	CustomerID   uuid.UUID               `json:"customerId"`
	CustomerName string                  `json:"customerName"`
	Phone        string                  `json:"phone"`
	Email        string                  `json:"email"`
	Summary      services.AccountSummary `json:"summary"`
}

// GetAccounts retrieves account entries with optional is_paid / customer filters
func GetAccounts(c *gin.Context) {
	query := config.DB.Preload("Customer").Preload("Sale").Order("created_at DESC")

	if isPaid := c.Query("is_paid"); isPaid != "" {
		query = query.Where("is_paid = ?", isPaid == "true")
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		customerUUID, err := uuid.Parse(customerID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		query = query.Where("customer_id = ?", customerUUID)
	}

	var accounts []models.Account
	if err := query.Find(&accounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve accounts")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// GetAccountCustomerNames lists the names of customers that actually have
// account entries, sorted alphabetically
func GetAccountCustomerNames(c *gin.Context) {
	var names []string
	err := config.DB.Table("accounts").
		Joins("JOIN customers ON customers.id = accounts.customer_id").
		Where("accounts.deleted_at IS NULL AND customers.deleted_at IS NULL").
		Distinct().
		Order("customers.name").
		Pluck("customers.name", &names).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customer names")
		return
	}

	c.JSON(http.StatusOK, names)
}

// GetCustomerAccounts returns one customer's account entries plus their
// balance summary
func GetCustomerAccounts(c *gin.Context) {
	name := c.Param("name")

	var customer models.Customer
	if err := config.DB.Where("name = ?", name).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var accounts []models.Account
	if err := config.DB.Preload("Sale").
		Where("customer_id = ?", customer.ID).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve accounts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accounts": accounts,
		"summary":  services.SummarizeAccounts(accounts),
	})
}

// GetAccountBalances returns the balance position of every account customer
func GetAccountBalances(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Preload("Accounts").
		Where("is_account_customer = ?", true).
		Order("name").
		Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve balances")
		return
	}

	balances := make([]CustomerBalance, 0, len(customers))
	for _, customer := range customers {
		balances = append(balances, CustomerBalance{
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Phone:        customer.Phone,
			Email:        customer.Email,
			Summary:      services.SummarizeAccounts(customer.Accounts),
		})
	}

	c.JSON(http.StatusOK, balances)
}

// GetOverdueAccounts lists unpaid entries past their due date
func GetOverdueAccounts(c *gin.Context) {
	today := utils.TodayStr()

	var accounts []models.Account
	if err := config.DB.Preload("Customer").Preload("Sale").
		Where("is_paid = ? AND due_date <> '' AND due_date < ?", false, today).
		Order("due_date").
		Find(&accounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve overdue accounts")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// MarkAccountPaid settles an account entry and its originating sale in one
// transaction, so the two writes cannot diverge
func MarkAccountPaid(c *gin.Context) {
	accountUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	// Start transaction
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var account models.Account
	if err := tx.First(&account, "id = ?", accountUUID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Account entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if account.IsPaid {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusBadRequest, "Account entry is already paid")
		return
	}

	account.MarkPaid(utils.TodayStr())

	if err := tx.Save(&account).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update account entry")
		return
	}

	if account.SaleID != nil {
		if err := tx.Model(&models.Sale{}).
			Where("id = ?", *account.SaleID).
			Update("is_paid", true).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update originating sale")
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, account)
}

// DeleteAccount removes a single account entry, independently of the
// originating sale
func DeleteAccount(c *gin.Context) {
	accountUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	var account models.Account
	if err := config.DB.First(&account, "id = ?", accountUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Account entry not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&account).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account entry deleted successfully"})
}
