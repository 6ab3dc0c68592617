package dtos

import "github.com/shopspring/decimal"

type OrderItemInput struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	SKU       *string         `json:"sku,omitempty"`
}

type CreateOrderInput struct {
	Channel  string           `json:"channel"`
	DealerID *uint            `json:"dealer_id,omitempty"`
	UserID   *uint            `json:"user_id,omitempty"`
	Currency string           `json:"currency"`
	Discount decimal.Decimal  `json:"discount"`
	Shipping decimal.Decimal  `json:"shipping"`
	Items    []OrderItemInput `json:"items"`
}

// CustomerSnapshotInput carries the billing identity frozen onto a
// generated invoice.
type CustomerSnapshotInput struct {
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	PostalCode    *string `json:"postal_code,omitempty"`
	TaxNumber     *string `json:"tax_number,omitempty"`
}
