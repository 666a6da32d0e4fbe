package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/models"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
)

// ErrUnknownAnswerKey is returned for writes outside the onboarding schema.
var ErrUnknownAnswerKey = errors.New("unknown onboarding answer key")

var answerKeys = map[string]bool{
	nutrition.KeyHeight:           true,
	nutrition.KeyWeight:           true,
	nutrition.KeyGender:           true,
	nutrition.KeyGoal:             true,
	nutrition.KeyWorkoutFrequency: true,
	nutrition.KeyBirthYear:        true,
	nutrition.KeyBirthMonth:       true,
	nutrition.KeyBirthDay:         true,
}

// SettingsService persists onboarding answers as key-value rows.
type SettingsService struct {
	db *gorm.DB
}

var _ ISettingsService = (*SettingsService)(nil)

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// Put upserts one onboarding answer. Keys outside the schema are rejected so
// the settings table cannot turn into a junk drawer.
func (s *SettingsService) Put(ctx context.Context, key, value string) error {
	if !answerKeys[key] {
		return fmt.Errorf("%w: %q", ErrUnknownAnswerKey, key)
	}
	row := models.Setting{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to store answer %s: %w", key, err)
	}
	return nil
}

// PutAll upserts a batch of answers in one transaction, so a rejected or
// failing key leaves no partial answer set behind.
func (s *SettingsService) PutAll(ctx context.Context, answers map[string]string) error {
	for key := range answers {
		if !answerKeys[key] {
			return fmt.Errorf("%w: %q", ErrUnknownAnswerKey, key)
		}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range answers {
			row := models.Setting{Key: key, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("failed to store answer %s: %w", key, err)
			}
		}
		return nil
	})
}

// Get reads one stored answer. The second return is false when the key was
// never written.
func (s *SettingsService) Get(ctx context.Context, key string) (string, bool, error) {
	var row models.Setting
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read answer %s: %w", key, err)
	}
	return row.Value, true, nil
}

// Snapshot loads all stored answers at once, for profile assembly.
func (s *SettingsService) Snapshot(ctx context.Context) (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	snapshot := make(map[string]string, len(rows))
	for _, row := range rows {
		snapshot[row.Key] = row.Value
	}
	return snapshot, nil
}

// answerMap adapts a settings snapshot to the profile reader's interface.
type answerMap map[string]string

func (m answerMap) Answer(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
