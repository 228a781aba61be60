// controllers/pricelist.go
package controllers

import (
	"errors"
	"net/http"

	"carwash-backend/config"
	"carwash-backend/models"
	"carwash-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreatePriceListItemInput defines the expected JSON structure for a catalog entry
type CreatePriceListItemInput struct {
	Category    string          `json:"category" binding:"required"`
	Vehicle     string          `json:"vehicle" binding:"required"`
	Price       decimal.Decimal `json:"price"` // zero means "quote on arrival"
	Description string          `json:"description"`
}

// UpdatePriceListItemInput defines the expected JSON structure for updating a catalog entry
type UpdatePriceListItemInput struct {
	Category    *string          `json:"category"`
	Vehicle     *string          `json:"vehicle"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"isActive"`
}

// GetPriceList retrieves catalog entries, active only unless all=true
func GetPriceList(c *gin.Context) {
	query := config.DB.Order("category").Order("vehicle")

	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.PriceListItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve price list")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetPriceListCategories lists the distinct active categories
func GetPriceListCategories(c *gin.Context) {
	var categories []string
	if err := config.DB.Model(&models.PriceListItem{}).
		Where("is_active = ?", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreatePriceListItem adds a catalog entry
func CreatePriceListItem(c *gin.Context) {
	var input CreatePriceListItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	item := models.PriceListItem{
		Category:    input.Category,
		Vehicle:     input.Vehicle,
		Price:       input.Price,
		Description: input.Description,
		IsActive:    true,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create price list item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdatePriceListItem updates an existing catalog entry
func UpdatePriceListItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price list item ID format")
		return
	}

	var input UpdatePriceListItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price cannot be negative")
		return
	}

	var item models.PriceListItem
	if err := config.DB.First(&item, "id = ?", itemUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Price list item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Vehicle != nil {
		item.Vehicle = *input.Vehicle
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update price list item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeactivatePriceListItem soft-hides a catalog entry from the new-service form
func DeactivatePriceListItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price list item ID format")
		return
	}

	result := config.DB.Model(&models.PriceListItem{}).
		Where("id = ?", itemUUID).
		Update("is_active", false)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate price list item")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Price list item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price list item deactivated"})
}

// DeletePriceListItem removes a catalog entry
func DeletePriceListItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price list item ID format")
		return
	}

	var item models.PriceListItem
	if err := config.DB.First(&item, "id = ?", itemUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Price list item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete price list item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price list item deleted successfully"})
}
