package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a cash (or equivalent) settlement event against a dealer.
type Payment struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	DealerID uint            `gorm:"index;not null" json:"dealer_id"`
	OrderID  *uint           `json:"order_id,omitempty"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Date     time.Time       `json:"date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
