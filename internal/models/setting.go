package models

import "time"

// Setting is one persisted onboarding answer, stored as a key-value pair
// mirroring the client's storage schema (userHeight, userWeight, ...).
type Setting struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
