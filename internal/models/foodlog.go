package models

import (
	"time"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
)

// FoodLogEntry is one logged food item, keyed by the calendar date it was
// logged to. Entries are append-only; Seq preserves insertion order so reads
// can return newest-first even when time-derived entry ids collide.
type FoodLogEntry struct {
	Seq              uint      `gorm:"primarykey" json:"-"`
	EntryID          string    `gorm:"size:32;uniqueIndex;not null" json:"id"`
	LogDate          string    `gorm:"size:10;index;not null" json:"log_date"`
	Description      string    `json:"description"`
	HealthSuggestion string    `json:"health_suggestion"`
	Calories         float64   `json:"calories"`
	CarbsG           float64   `json:"carbs"`
	ProteinG         float64   `json:"protein"`
	FatsG            float64   `json:"fats"`
	Timestamp        string    `gorm:"size:8" json:"timestamp"`
	ImageRef         string    `json:"image_ref"`
	CreatedAt        time.Time `json:"created_at"`
}

func (FoodLogEntry) TableName() string {
	return "food_log_entries"
}

// NewFoodLogEntry converts an engine entry into its persisted form.
func NewFoodLogEntry(day nutrition.Day, entry nutrition.LogEntry) *FoodLogEntry {
	return &FoodLogEntry{
		EntryID:          entry.ID,
		LogDate:          day.String(),
		Description:      entry.Description,
		HealthSuggestion: entry.HealthSuggestion,
		Calories:         entry.Calories,
		CarbsG:           entry.CarbsG,
		ProteinG:         entry.ProteinG,
		FatsG:            entry.FatsG,
		Timestamp:        entry.Timestamp,
		ImageRef:         entry.ImageRef,
	}
}

// Entry converts the persisted row back into the engine's entry type.
func (e *FoodLogEntry) Entry() nutrition.LogEntry {
	return nutrition.LogEntry{
		ID:               e.EntryID,
		Description:      e.Description,
		HealthSuggestion: e.HealthSuggestion,
		Calories:         e.Calories,
		CarbsG:           e.CarbsG,
		ProteinG:         e.ProteinG,
		FatsG:            e.FatsG,
		Timestamp:        e.Timestamp,
		ImageRef:         e.ImageRef,
	}
}
