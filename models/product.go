package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product supplies the price and SKU that get snapshotted onto order
// items. Catalog management itself lives outside this service.
type Product struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:120;not null" json:"name"`
	SKU   *string         `gorm:"size:64" json:"sku,omitempty"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
