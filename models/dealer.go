package models

import "time"

type Dealer struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:120;not null" json:"name"`
	Phone *string `gorm:"size:30" json:"phone,omitempty"`
	Email *string `gorm:"size:120" json:"email,omitempty"`

	Checks   []Check   `gorm:"constraint:OnDelete:CASCADE" json:"checks,omitempty"`
	Payments []Payment `gorm:"constraint:OnDelete:CASCADE" json:"payments,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
