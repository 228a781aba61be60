package services

import (
	"encoding/csv"
	"strings"
	"testing"

	"carwash-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportSale() models.Sale {
	return models.Sale{
		ServiceDate:         "2024-01-05",
		ServiceTime:         "10:30",
		CustomerName:        "Jones",
		VehicleRegistration: "ABC 123 GP",
		ServiceDescription:  "Full Wash – Car",
		PaymentType:         models.PaymentCash,
		BaseAmount:          decimal.NewFromInt(110),
		Discount:            decimal.NewFromInt(10),
		FinalAmount:         decimal.NewFromInt(100),
		IsPaid:              true,
	}
}

func TestExportCSVEmptyList(t *testing.T) {
	out, err := ExportCSV(nil)

	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Empty(t, out)
}

func TestExportCSVHeaderAndRow(t *testing.T) {
	out, err := ExportCSV([]models.Sale{exportSale()})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Time,Customer,Vehicle,Service,PaymentType,Amount,BaseAmount,Discount,Notes,Paid", lines[0])
	assert.Equal(t, "2024-01-05,10:30,Jones,ABC 123 GP,Full Wash – Car,cash,100.00,110.00,10.00,,Yes", lines[1])
}

func TestExportCSVQuotesSpecialFields(t *testing.T) {
	s := exportSale()
	s.Notes = `wash, wax`
	s.ServiceDescription = `He said "ok"`

	out, err := ExportCSV([]models.Sale{s})
	require.NoError(t, err)

	assert.Contains(t, out, `"wash, wax"`)
	assert.Contains(t, out, `"He said ""ok"""`)
}

func TestExportCSVRoundTrip(t *testing.T) {
	s := exportSale()
	s.Notes = `wash, wax`
	s.ServiceDescription = `He said "ok"`

	out, err := ExportCSV([]models.Sale{s})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "2024-01-05", row[0])
	assert.Equal(t, "Jones", row[2])
	assert.Equal(t, "ABC 123 GP", row[3])
	assert.Equal(t, `He said "ok"`, row[4])
	assert.Equal(t, "100.00", row[6])
	assert.Equal(t, "110.00", row[7])
	assert.Equal(t, "10.00", row[8])
	assert.Equal(t, `wash, wax`, row[9])
	assert.Equal(t, "Yes", row[10])
}

func TestExportCSVCollapsesNewlinesInNotes(t *testing.T) {
	s := exportSale()
	s.Notes = "interior only\r\nno polish\nvacuum boot"

	out, err := ExportCSV([]models.Sale{s})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "interior only no polish vacuum boot", records[1][9])

	// One header line and one record line, nothing multi-line
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
}

func TestExportCSVVehicleFallsBackToDescription(t *testing.T) {
	s := exportSale()
	s.VehicleRegistration = ""
	s.VehicleDescription = "White bakkie"

	out, err := ExportCSV([]models.Sale{s})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "White bakkie", records[1][3])
}
