package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is one 30-day-account obligation. Once IsPaid is set,
// AmountPaid equals AmountDue.
type Account struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null"`
	SaleID     *uuid.UUID `gorm:"type:uuid;index"` // originating sale, if any

	AmountDue  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	AmountPaid decimal.Decimal `gorm:"type:decimal(10,2);default:0.0"`
	IsPaid     bool            `gorm:"default:false;index"`
	PaidDate   string          `gorm:"size:10"` // YYYY-MM-DD
	DueDate    string          `gorm:"size:10;index"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Sale     *Sale     `gorm:"foreignKey:SaleID"`

	gorm.Model
}

func (a *Account) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Outstanding is AmountDue minus AmountPaid.
func (a *Account) Outstanding() decimal.Decimal {
	return a.AmountDue.Sub(a.AmountPaid)
}

// MarkPaid settles the entry in full on the given date.
func (a *Account) MarkPaid(paidDate string) {
	a.AmountPaid = a.AmountDue
	a.IsPaid = true
	a.PaidDate = paidDate
}
