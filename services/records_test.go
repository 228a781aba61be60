package services

import (
	"testing"

	"carwash-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(date, serviceTime, customer, reg, desc, paymentType string) models.Sale {
	return models.Sale{
		ServiceDate:         date,
		ServiceTime:         serviceTime,
		CustomerName:        customer,
		VehicleRegistration: reg,
		VehicleDescription:  desc,
		PaymentType:         paymentType,
	}
}

func TestFilterSalesSortsMostRecentFirst(t *testing.T) {
	sales := []models.Sale{
		record("2024-01-01", "09:00", "Alice", "", "", models.PaymentCash),
		record("2024-01-03", "", "Bob", "", "", models.PaymentCard),
		record("2024-01-02", "15:30", "Carol", "", "", models.PaymentCash),
		record("2024-01-02", "08:00", "Dave", "", "", models.PaymentCash),
	}

	out := FilterSales(sales, RecordFilter{})

	require.Len(t, out, 4)
	assert.Equal(t, "Bob", out[0].CustomerName)
	assert.Equal(t, "Carol", out[1].CustomerName)
	assert.Equal(t, "Dave", out[2].CustomerName)
	assert.Equal(t, "Alice", out[3].CustomerName)
}

func TestFilterSalesMissingTimeSortsAfterTimedSameDate(t *testing.T) {
	sales := []models.Sale{
		record("2024-01-02", "", "NoTime", "", "", models.PaymentCash),
		record("2024-01-02", "10:00", "Timed", "", "", models.PaymentCash),
	}

	out := FilterSales(sales, RecordFilter{})

	require.Len(t, out, 2)
	// Missing time concatenates to the bare date, which compares lower
	assert.Equal(t, "Timed", out[0].CustomerName)
	assert.Equal(t, "NoTime", out[1].CustomerName)
}

func TestFilterSalesPaymentTypeExactMatch(t *testing.T) {
	sales := []models.Sale{
		record("2024-01-01", "", "Alice", "", "", models.PaymentCash),
		record("2024-01-02", "", "Bob", "", "", models.PaymentCard),
		record("2024-01-03", "", "Carol", "", "", models.PaymentAccount),
	}

	out := FilterSales(sales, RecordFilter{PaymentType: models.PaymentCard})

	require.Len(t, out, 1)
	assert.Equal(t, "Bob", out[0].CustomerName)
}

func TestFilterSalesQueryMatchesCustomerAndVehicle(t *testing.T) {
	sales := []models.Sale{
		record("2024-01-01", "", "Acme Mining", "ABC 123 GP", "", models.PaymentAccount),
		record("2024-01-02", "", "Walk-in", "", "White bakkie", models.PaymentCash),
		record("2024-01-03", "", "Jones", "XYZ 987 NW", "", models.PaymentCard),
	}

	out := FilterSales(sales, RecordFilter{Query: "  BAKKIE "})
	require.Len(t, out, 1)
	assert.Equal(t, "Walk-in", out[0].CustomerName)

	out = FilterSales(sales, RecordFilter{Query: "abc 123"})
	require.Len(t, out, 1)
	assert.Equal(t, "Acme Mining", out[0].CustomerName)

	out = FilterSales(sales, RecordFilter{Query: "nothing"})
	assert.Empty(t, out)
}

func TestFilterSalesComposesFilters(t *testing.T) {
	sales := []models.Sale{
		record("2024-01-01", "", "Jones", "", "", models.PaymentCash),
		record("2024-01-01", "", "Jones", "", "", models.PaymentCard),
		record("2024-01-02", "", "Jones", "", "", models.PaymentCash),
	}

	out := FilterSales(sales, RecordFilter{
		Query:       "jones",
		PaymentType: models.PaymentCash,
		Date:        "2024-01-01",
	})

	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-01", out[0].ServiceDate)
	assert.Equal(t, models.PaymentCash, out[0].PaymentType)
}

func TestFilterSalesIdempotent(t *testing.T) {
	sales := []models.Sale{
		record("2024-01-01", "09:00", "Alice", "", "", models.PaymentCash),
		record("2024-01-03", "", "Bob", "", "", models.PaymentCard),
		record("2024-01-02", "15:30", "Carol", "", "", models.PaymentCash),
	}
	filter := RecordFilter{Query: "a", PaymentType: models.PaymentCash}

	once := FilterSales(sales, filter)
	twice := FilterSales(once, filter)

	assert.Equal(t, once, twice)
}

func TestFilterSalesDoesNotMutateInput(t *testing.T) {
	sales := []models.Sale{
		record("2024-01-01", "", "Alice", "", "", models.PaymentCash),
		record("2024-01-03", "", "Bob", "", "", models.PaymentCard),
	}

	FilterSales(sales, RecordFilter{PaymentType: models.PaymentCash})

	assert.Equal(t, "Alice", sales[0].CustomerName)
	assert.Equal(t, "Bob", sales[1].CustomerName)
}
