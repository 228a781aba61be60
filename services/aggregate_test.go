package services

import (
	"testing"

	"carwash-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sale(paymentType string, amount int64) models.Sale {
	return models.Sale{
		ServiceDate: "2024-01-01",
		PaymentType: paymentType,
		FinalAmount: decimal.NewFromInt(amount),
	}
}

func TestSummarizeDay(t *testing.T) {
	sales := []models.Sale{
		sale(models.PaymentCash, 100),
		sale(models.PaymentCard, 50),
		sale(models.PaymentAccount, 200),
	}

	summary := SummarizeDay(sales)

	assert.True(t, summary.Total.Equal(decimal.NewFromInt(350)), "total = %s", summary.Total)
	assert.True(t, summary.Cash.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.Card.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.Account.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 3, summary.Count)
}

func TestSummarizeDayUnknownPaymentType(t *testing.T) {
	sales := []models.Sale{
		sale(models.PaymentCash, 100),
		sale("voucher", 40), // not a named bucket
		sale("", 10),
	}

	summary := SummarizeDay(sales)

	// Unrecognized payment types contribute to total and count only
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 3, summary.Count)

	buckets := summary.Cash.Add(summary.Card).Add(summary.Account)
	assert.True(t, buckets.LessThan(summary.Total))
	assert.True(t, buckets.Equal(decimal.NewFromInt(100)))
}

func TestSummarizeDayBucketsMatchTotalWhenAllRecognized(t *testing.T) {
	sales := []models.Sale{
		sale(models.PaymentCash, 110),
		sale(models.PaymentCash, 60),
		sale(models.PaymentCard, 150),
		sale(models.PaymentAccount, 80),
	}

	summary := SummarizeDay(sales)

	buckets := summary.Cash.Add(summary.Card).Add(summary.Account)
	assert.True(t, buckets.Equal(summary.Total))
	assert.Equal(t, 4, summary.Count)
}

func TestSummarizeDayEmpty(t *testing.T) {
	summary := SummarizeDay(nil)

	assert.True(t, summary.Total.IsZero())
	assert.True(t, summary.Cash.IsZero())
	assert.True(t, summary.Card.IsZero())
	assert.True(t, summary.Account.IsZero())
	assert.Equal(t, 0, summary.Count)
}

func account(due, paid int64, isPaid bool) models.Account {
	return models.Account{
		AmountDue:  decimal.NewFromInt(due),
		AmountPaid: decimal.NewFromInt(paid),
		IsPaid:     isPaid,
	}
}

func TestSummarizeAccounts(t *testing.T) {
	accounts := []models.Account{
		account(500, 0, false),
		account(300, 300, true),
		account(150, 50, false),
	}

	summary := SummarizeAccounts(accounts)

	assert.True(t, summary.TotalDue.Equal(decimal.NewFromInt(950)))
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(350)))
	assert.True(t, summary.Outstanding.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 2, summary.UnpaidCount)

	// Identity: outstanding = totalDue - totalPaid
	assert.True(t, summary.Outstanding.Equal(summary.TotalDue.Sub(summary.TotalPaid)))
}

func TestSummarizeAccountsEmpty(t *testing.T) {
	summary := SummarizeAccounts([]models.Account{})

	assert.True(t, summary.TotalDue.IsZero())
	assert.True(t, summary.TotalPaid.IsZero())
	assert.True(t, summary.Outstanding.IsZero())
	assert.Equal(t, 0, summary.UnpaidCount)
}
