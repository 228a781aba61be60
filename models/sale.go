package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment types recorded against a sale. A 'paylater' sale becomes 'paid'
// once the customer settles; a '30-day account' sale stays 'account' and is
// tracked through its Account entry.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentAccount  = "account"
	PaymentPayLater = "paylater"
	PaymentPaid     = "paid"
)

type Sale struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	ServiceDate string `gorm:"size:10;not null;index"` // YYYY-MM-DD
	ServiceTime string `gorm:"size:8"`                 // HH:MM, optional

	CustomerName        string `gorm:"not null;index"`
	VehicleRegistration string
	VehicleDescription  string
	CustomerID          *uuid.UUID `gorm:"type:uuid;index"`

	ServiceDescription string          `gorm:"not null"`
	BaseAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount           decimal.Decimal `gorm:"type:decimal(10,2);default:0.0"`
	FinalAmount        decimal.Decimal `gorm:"type:decimal(10,2);not null"` // base - discount, never negative

	PaymentType string `gorm:"type:varchar(20);not null;index"`
	IsPaid      bool   `gorm:"default:true"`
	Notes       string `gorm:"type:text"`

	gorm.Model
}

func (s *Sale) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
