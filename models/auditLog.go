package models

import "time"

type AuditLog struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	EntityType  string  `gorm:"size:32;index;not null" json:"entity_type"`
	EntityID    uint    `gorm:"index" json:"entity_id"`
	Action      string  `gorm:"size:32;not null" json:"action"`
	UserID      *uint   `json:"user_id,omitempty"`
	OldValue    *string `gorm:"type:text" json:"old_value,omitempty"`
	NewValue    *string `gorm:"type:text" json:"new_value,omitempty"`
	Changes     *string `gorm:"type:text" json:"changes,omitempty"`
	IPAddress   *string `gorm:"size:45" json:"ip_address,omitempty"`
	Description string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
