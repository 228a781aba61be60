package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceListItem is a catalog entry used to prefill the new-service form.
// A zero price means "quote on arrival".
type PriceListItem struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`

	Category    string          `gorm:"not null;index"`
	Vehicle     string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string
	IsActive    bool `gorm:"default:true"`

	gorm.Model
}

func (p *PriceListItem) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
