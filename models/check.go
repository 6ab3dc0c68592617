package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckStatus string

const (
	CheckStatusPending   CheckStatus = "pending"
	CheckStatusDeposited CheckStatus = "deposited"
	CheckStatusCleared   CheckStatus = "cleared"
	CheckStatusBounced   CheckStatus = "bounced"
	CheckStatusCancelled CheckStatus = "cancelled"
)

type CheckAction string

const (
	CheckActionDeposit CheckAction = "deposit"
	CheckActionClear   CheckAction = "clear"
	CheckActionBounce  CheckAction = "bounce"
	CheckActionCancel  CheckAction = "cancel"
)

// checkTransitions is the full status state machine. Anything not listed
// here is an invalid transition; cleared, bounced and cancelled are terminal.
var checkTransitions = map[CheckStatus]map[CheckAction]CheckStatus{
	CheckStatusPending: {
		CheckActionDeposit: CheckStatusDeposited,
		CheckActionBounce:  CheckStatusBounced,
		CheckActionCancel:  CheckStatusCancelled,
	},
	CheckStatusDeposited: {
		CheckActionClear:  CheckStatusCleared,
		CheckActionBounce: CheckStatusBounced,
	},
}

// NextCheckStatus returns the status an action leads to from the current
// status, or false when the pair is not allowed.
func NextCheckStatus(current CheckStatus, action CheckAction) (CheckStatus, bool) {
	next, ok := checkTransitions[current][action]
	return next, ok
}

// IsBankable reports whether a check in this status counts toward the
// dealer balance. Pending checks are not yet bankable; bounced and
// cancelled ones never settled.
func (s CheckStatus) IsBankable() bool {
	return s == CheckStatusDeposited || s == CheckStatusCleared
}

type Check struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	DealerID    uint            `gorm:"index;not null" json:"dealer_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	CheckNumber string          `gorm:"size:64;not null" json:"check_number"`
	BankName    string          `gorm:"size:120;not null" json:"bank_name"`
	IssueDate   time.Time       `json:"issue_date"`
	DueDate     time.Time       `json:"due_date"`
	Status      CheckStatus     `gorm:"size:20;default:'pending'" json:"status"`
	Notes       *string         `gorm:"type:text" json:"notes,omitempty"`
	// Version is bumped on every status transition; concurrent updates
	// race on it and the stale one loses.
	Version int `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
