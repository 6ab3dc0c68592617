package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNumber string          `gorm:"size:64;uniqueIndex;not null" json:"order_number"`
	Status      string          `gorm:"size:20;default:'pending'" json:"status"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Tax         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`
	Shipping    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shipping"`
	Discount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"discount"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Currency    string          `gorm:"size:3;default:'CAD'" json:"currency"`
	UserID      *uint           `json:"user_id,omitempty"`
	DealerID    *uint           `gorm:"index" json:"dealer_id,omitempty"`
	Items       []OrderItem     `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrderItem is a price snapshot: later product price changes never
// touch a placed order.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	SKU       *string         `gorm:"size:64" json:"sku,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
