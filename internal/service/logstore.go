package service

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/models"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
)

// LogStore is the append-only store of daily food logs. Reads return entries
// newest-first; existing entries are never reordered or mutated.
type LogStore struct {
	db *gorm.DB

	// Serializes appends so insertion order (and with it the newest-first
	// read order) survives concurrent writers.
	mu sync.Mutex
}

var _ ILogStore = (*LogStore)(nil)

// NewLogStore creates a new LogStore instance.
func NewLogStore(db *gorm.DB) *LogStore {
	return &LogStore{db: db}
}

// Append inserts entry at the front of day's log, creating the day's log if
// absent.
func (s *LogStore) Append(ctx context.Context, day nutrition.Day, entry nutrition.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := models.NewFoodLogEntry(day, entry)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	return nil
}

// LogsFor returns day's entries newest-first. A day with no entries yields an
// empty slice, never nil.
func (s *LogStore) LogsFor(ctx context.Context, day nutrition.Day) ([]nutrition.LogEntry, error) {
	var rows []models.FoodLogEntry
	err := s.db.WithContext(ctx).
		Where("log_date = ?", day.String()).
		Order("seq DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load logs for %s: %w", day, err)
	}

	entries := make([]nutrition.LogEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].Entry())
	}
	return entries, nil
}

// All returns the full log snapshot as an ISO-date keyed mapping, the shape
// the client persists locally. Days with no entries have no key.
func (s *LogStore) All(ctx context.Context) (map[string][]nutrition.LogEntry, error) {
	var rows []models.FoodLogEntry
	err := s.db.WithContext(ctx).Order("seq DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load logs: %w", err)
	}

	logs := make(map[string][]nutrition.LogEntry)
	for i := range rows {
		logs[rows[i].LogDate] = append(logs[rows[i].LogDate], rows[i].Entry())
	}
	return logs, nil
}
