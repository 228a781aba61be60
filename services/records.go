// services/records.go
package services

import (
	"sort"
	"strings"

	"carwash-backend/models"
)

// RecordFilter describes the independent, composable view parameters of the
// records screen. Zero values mean "no filter".
type RecordFilter struct {
	Query       string // free text over customer name and vehicle fields
	PaymentType string // exact match
	Date        string // exact service date, YYYY-MM-DD
}

// FilterSales produces the derived record view: sorted most recent first by
// service date plus time (missing time treated as empty string), then
// narrowed by payment type, date and free-text query. The input slice is not
// modified; the view is recomputed in full on every call.
func FilterSales(sales []models.Sale, filter RecordFilter) []models.Sale {
	out := make([]models.Sale, len(sales))
	copy(out, sales)

	sort.SliceStable(out, func(i, j int) bool {
		return recencyKey(out[i]) > recencyKey(out[j])
	})

	if filter.Date != "" {
		out = keep(out, func(s models.Sale) bool {
			return s.ServiceDate == filter.Date
		})
	}

	if filter.PaymentType != "" {
		out = keep(out, func(s models.Sale) bool {
			return s.PaymentType == filter.PaymentType
		})
	}

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		out = keep(out, func(s models.Sale) bool {
			haystack := strings.ToLower(
				s.CustomerName + " " + s.VehicleRegistration + " " + s.VehicleDescription)
			return strings.Contains(haystack, q)
		})
	}

	return out
}

func recencyKey(s models.Sale) string {
	return s.ServiceDate + s.ServiceTime
}

func keep(sales []models.Sale, pred func(models.Sale) bool) []models.Sale {
	filtered := sales[:0]
	for _, s := range sales {
		if pred(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
