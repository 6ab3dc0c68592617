package models

import "time"

const (
	SettingFederalTaxRate    = "federal_tax_rate"
	SettingProvincialTaxRate = "provincial_tax_rate"
)

type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"size:64;uniqueIndex;not null" json:"key"`
	Value string `gorm:"size:255" json:"value"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
