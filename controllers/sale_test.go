package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Validation failures must be rejected locally, before any storage call, so
// these cases run without a database.

func postSale(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/sales", CreateSale)

	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSaleRejectsMissingRequiredFields(t *testing.T) {
	w := postSale(t, `{"date":"2024-01-01"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input")
}

func TestCreateSaleRejectsBadDate(t *testing.T) {
	w := postSale(t, `{
		"date": "01/01/2024",
		"customerName": "Jones",
		"serviceDescription": "Full Wash",
		"baseAmount": 100,
		"paymentType": "cash"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid service date")
}

func TestCreateSaleRejectsUnknownPaymentType(t *testing.T) {
	w := postSale(t, `{
		"date": "2024-01-01",
		"customerName": "Jones",
		"serviceDescription": "Full Wash",
		"baseAmount": 100,
		"paymentType": "voucher"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment type")
}

func TestCreateSaleRejectsZeroAmount(t *testing.T) {
	w := postSale(t, `{
		"date": "2024-01-01",
		"customerName": "Jones",
		"serviceDescription": "Full Wash",
		"baseAmount": 0,
		"paymentType": "cash"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Amount must be greater than zero")
}

func TestCreateSaleRejectsDiscountExceedingAmount(t *testing.T) {
	w := postSale(t, `{
		"date": "2024-01-01",
		"customerName": "Jones",
		"serviceDescription": "Full Wash",
		"baseAmount": 100,
		"discount": 150,
		"paymentType": "cash"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Discount cannot be more than the amount")
}

func TestCreateSaleRejectsNegativeDiscount(t *testing.T) {
	w := postSale(t, `{
		"date": "2024-01-01",
		"customerName": "Jones",
		"serviceDescription": "Full Wash",
		"baseAmount": 100,
		"discount": -5,
		"paymentType": "cash"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Discount cannot be negative")
}
