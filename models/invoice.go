package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is an append-only snapshot of an order at generation time.
// Customer and billing fields are duplicated on purpose so the invoice
// stays correct even if the customer record changes later.
type Invoice struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	InvoiceNumber string          `gorm:"size:64;uniqueIndex;not null" json:"invoice_number"`
	OrderID       uint            `gorm:"index;not null" json:"order_id"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Tax           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`
	Shipping      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shipping"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"discount"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Currency      string          `gorm:"size:3;default:'CAD'" json:"currency"`

	CustomerName  string  `gorm:"size:120" json:"customer_name"`
	CustomerPhone *string `gorm:"size:30" json:"customer_phone,omitempty"`
	Address       *string `gorm:"size:255" json:"address,omitempty"`
	City          *string `gorm:"size:80" json:"city,omitempty"`
	PostalCode    *string `gorm:"size:20" json:"postal_code,omitempty"`
	TaxNumber     *string `gorm:"size:40" json:"tax_number,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
