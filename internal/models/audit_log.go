package models

import "time"

// AuditLog is one mutation applied to the spreadsheet.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action string `gorm:"size:50;not null;index" json:"action"`
	Entity string `gorm:"size:50;index" json:"entity"`
	// Business key of the touched row, e.g. "2024-05-02|09:00".
	Key      string `gorm:"size:255" json:"key"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
