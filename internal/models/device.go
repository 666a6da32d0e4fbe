package models

import (
	"time"

	"github.com/google/uuid"
)

// Device is the single registered device owning the profile and logs. The
// backend serves one user; device rows exist only to anchor session tokens.
type Device struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Label      string    `gorm:"size:100" json:"label"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

func (Device) TableName() string {
	return "devices"
}
