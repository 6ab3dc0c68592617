package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordPaymentInput struct {
	DealerID uint            `json:"dealer_id"`
	OrderID  *uint           `json:"order_id,omitempty"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     time.Time       `json:"date"`
}

type CreateCheckInput struct {
	DealerID    uint            `json:"dealer_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CheckNumber string          `json:"check_number" binding:"required"`
	BankName    string          `json:"bank_name" binding:"required"`
	IssueDate   time.Time       `json:"issue_date" binding:"required"`
	DueDate     time.Time       `json:"due_date" binding:"required"`
	Notes       *string         `json:"notes,omitempty"`
}
