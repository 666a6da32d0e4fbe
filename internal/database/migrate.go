package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/models"
)

// Migrate brings the schema up to date. The schema is small enough that
// gorm's auto-migration covers both Postgres and the in-memory SQLite used
// by tests.
func Migrate(db *gorm.DB) error {
	log.Info().Str("dialect", db.Dialector.Name()).Msg("running schema migration")
	return db.AutoMigrate(
		&models.Device{},
		&models.Setting{},
		&models.NutritionPlan{},
		&models.FoodLogEntry{},
	)
}
