// services/export.go
package services

import (
	"encoding/csv"
	"errors"
	"strings"

	"carwash-backend/models"
)

// ErrNothingToExport is returned when an export is requested for an empty
// record list; callers surface it as a notice instead of producing a file.
var ErrNothingToExport = errors.New("no records to export yet")

var exportHeader = []string{
	"Date",
	"Time",
	"Customer",
	"Vehicle",
	"Service",
	"PaymentType",
	"Amount",
	"BaseAmount",
	"Discount",
	"Notes",
	"Paid",
}

var noteNewlines = strings.NewReplacer("\r\n", " ", "\n", " ")

// ExportCSV serializes an ordered list of sales to a complete CSV document.
// Fields containing a comma, double quote or newline are quoted with internal
// quotes doubled; newlines inside notes are collapsed to a single space
// before serialization so every record stays on one line.
func ExportCSV(sales []models.Sale) (string, error) {
	if len(sales) == 0 {
		return "", ErrNothingToExport
	}

	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write(exportHeader); err != nil {
		return "", err
	}

	for _, s := range sales {
		vehicle := s.VehicleRegistration
		if vehicle == "" {
			vehicle = s.VehicleDescription
		}

		paid := "No"
		if s.IsPaid {
			paid = "Yes"
		}

		row := []string{
			s.ServiceDate,
			s.ServiceTime,
			s.CustomerName,
			vehicle,
			s.ServiceDescription,
			s.PaymentType,
			s.FinalAmount.StringFixed(2),
			s.BaseAmount.StringFixed(2),
			s.Discount.StringFixed(2),
			noteNewlines.Replace(s.Notes),
			paid,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return b.String(), nil
}
