// services/aggregate.go
package services

import (
	"carwash-backend/models"

	"github.com/shopspring/decimal"
)

// DailySummary holds the totals for one calendar date, bucketed by payment
// type. Sales with an unrecognized payment type count toward Total and Count
// but no named bucket.
type DailySummary struct {
	Total   decimal.Decimal `json:"total"`
	Cash    decimal.Decimal `json:"cash"`
	Card    decimal.Decimal `json:"card"`
	Account decimal.Decimal `json:"account"`
	Count   int             `json:"count"`
}

// SummarizeDay aggregates final amounts for a list of sales restricted to a
// single service date.
func SummarizeDay(sales []models.Sale) DailySummary {
	summary := DailySummary{
		Total:   decimal.Zero,
		Cash:    decimal.Zero,
		Card:    decimal.Zero,
		Account: decimal.Zero,
	}

	for _, sale := range sales {
		amount := sale.FinalAmount
		summary.Total = summary.Total.Add(amount)
		summary.Count++

		switch sale.PaymentType {
		case models.PaymentCash:
			summary.Cash = summary.Cash.Add(amount)
		case models.PaymentCard:
			summary.Card = summary.Card.Add(amount)
		case models.PaymentAccount:
			summary.Account = summary.Account.Add(amount)
		}
	}

	return summary
}

// AccountSummary holds the balance position of one customer's account entries.
type AccountSummary struct {
	TotalDue    decimal.Decimal `json:"totalDue"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	UnpaidCount int             `json:"unpaidCount"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// SummarizeAccounts aggregates a customer's account entries. An empty list
// yields an all-zero summary.
func SummarizeAccounts(accounts []models.Account) AccountSummary {
	summary := AccountSummary{
		TotalDue:    decimal.Zero,
		TotalPaid:   decimal.Zero,
		Outstanding: decimal.Zero,
	}

	for _, account := range accounts {
		summary.TotalDue = summary.TotalDue.Add(account.AmountDue)
		summary.TotalPaid = summary.TotalPaid.Add(account.AmountPaid)
		if !account.IsPaid {
			summary.UnpaidCount++
		}
	}

	summary.Outstanding = summary.TotalDue.Sub(summary.TotalPaid)
	return summary
}
