package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountOutstanding(t *testing.T) {
	account := Account{
		AmountDue:  decimal.NewFromInt(500),
		AmountPaid: decimal.NewFromInt(150),
	}

	assert.True(t, account.Outstanding().Equal(decimal.NewFromInt(350)))
}

func TestAccountMarkPaid(t *testing.T) {
	account := Account{
		AmountDue:  decimal.NewFromInt(500),
		AmountPaid: decimal.Zero,
	}

	account.MarkPaid("2024-02-01")

	assert.True(t, account.IsPaid)
	assert.True(t, account.AmountPaid.Equal(account.AmountDue))
	assert.True(t, account.Outstanding().IsZero())
	assert.Equal(t, "2024-02-01", account.PaidDate)
}
