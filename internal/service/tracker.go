package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/models"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

const (
	planCacheKey = "plan:current"
	planCacheTTL = 24 * time.Hour
)

// LogItemInput is everything needed to construct one food log entry. The
// entry id and timestamp are derived from the clock at append time, and the
// entry always lands on the current calendar date, not the date the user
// happens to be viewing.
type LogItemInput struct {
	Description      string
	HealthSuggestion string
	Calories         float64
	CarbsG           float64
	ProteinG         float64
	FatsG            float64
	ImageRef         string
}

// TrackerService wires the profile reader, plan calculator, log store and
// aggregator to persisted state. It is the only component that touches
// storage; the calculation and aggregation stay pure.
type TrackerService struct {
	db       *gorm.DB
	settings ISettingsService
	logs     ILogStore
	cache    *redis.Client // optional; nil disables plan caching

	now func() time.Time
}

var _ ITrackerService = (*TrackerService)(nil)

// NewTrackerService creates a new TrackerService instance. cache may be nil.
func NewTrackerService(db *gorm.DB, settings ISettingsService, logs ILogStore, cache *redis.Client) *TrackerService {
	return &TrackerService{
		db:       db,
		settings: settings,
		logs:     logs,
		cache:    cache,
		now:      time.Now,
	}
}

// CurrentPlan returns the persisted plan, computing and persisting one from
// the stored onboarding answers when none exists yet. A persisted plan that
// fails to deserialize is discarded and recomputed.
func (s *TrackerService) CurrentPlan(ctx context.Context) (nutrition.Plan, error) {
	if plan, ok := s.cachedPlan(ctx); ok {
		return plan, nil
	}

	var row models.NutritionPlan
	err := s.db.WithContext(ctx).Order("id DESC").First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.RecomputePlan(ctx)
	case err != nil:
		return nutrition.Plan{}, fmt.Errorf("failed to load plan: %w", err)
	}

	plan, err := row.Plan()
	if err != nil {
		// Malformed persisted state: drop the row and start over.
		log.Warn().Err(err).Msg("persisted plan is malformed, recomputing")
		if delErr := s.db.WithContext(ctx).Unscoped().Delete(&row).Error; delErr != nil {
			return nutrition.Plan{}, fmt.Errorf("failed to discard malformed plan: %w", delErr)
		}
		return s.RecomputePlan(ctx)
	}

	s.cachePlan(ctx, plan)
	return plan, nil
}

// RecomputePlan derives a fresh plan from the stored answers and replaces the
// persisted one. When the calculation fails on unparseable height/weight the
// fixed fallback plan is substituted, per the documented recovery.
func (s *TrackerService) RecomputePlan(ctx context.Context) (nutrition.Plan, error) {
	snapshot, err := s.settings.Snapshot(ctx)
	if err != nil {
		return nutrition.Plan{}, err
	}

	read := nutrition.ReadProfile(answerMap(snapshot))
	if len(read.Defaulted) > 0 {
		log.Debug().Strs("keys", read.Defaulted).Msg("onboarding answers defaulted")
	}

	plan, err := nutrition.ComputePlan(read.Profile, s.now())
	if errors.Is(err, nutrition.ErrCalculation) {
		log.Error().Err(err).
			Float64("height_cm", read.Profile.HeightCm).
			Float64("weight_kg", read.Profile.WeightKg).
			Msg("plan calculation failed, substituting fallback plan")
		plan = nutrition.FallbackPlan()
	} else if err != nil {
		return nutrition.Plan{}, err
	}

	if err := s.persistPlan(ctx, plan); err != nil {
		return nutrition.Plan{}, err
	}

	s.cachePlan(ctx, plan)
	return plan, nil
}

func (s *TrackerService) persistPlan(ctx context.Context, plan nutrition.Plan) error {
	row, err := models.NewNutritionPlan(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Only the current plan is kept; no revision history.
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.NutritionPlan{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous plan: %w", err)
		}
		if err := tx.Create(row).Error; err != nil {
			return fmt.Errorf("failed to persist plan: %w", err)
		}
		return nil
	})
}

// Summary assembles the dashboard payload for one selected day: the current
// plan, the day's consumed totals, and the remaining budget per macro.
func (s *TrackerService) Summary(ctx context.Context, day nutrition.Day) (*types.SummaryResponse, error) {
	plan, err := s.CurrentPlan(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.logs.LogsFor(ctx, day)
	if err != nil {
		return nil, err
	}

	consumed := nutrition.Aggregate(entries)
	return &types.SummaryResponse{
		Date:      day.String(),
		Plan:      plan,
		Consumed:  consumed,
		Remaining: nutrition.Remaining(plan, consumed),
		Entries:   entries,
	}, nil
}

// LogItem constructs an entry from the input and appends it to today's log.
func (s *TrackerService) LogItem(ctx context.Context, item LogItemInput) (nutrition.LogEntry, error) {
	now := s.now()
	entry := nutrition.LogEntry{
		ID:               strconv.FormatInt(now.UnixMilli(), 10),
		Description:      item.Description,
		HealthSuggestion: item.HealthSuggestion,
		Calories:         item.Calories,
		CarbsG:           item.CarbsG,
		ProteinG:         item.ProteinG,
		FatsG:            item.FatsG,
		Timestamp:        now.Format("15:04"),
		ImageRef:         item.ImageRef,
	}

	if err := s.logs.Append(ctx, nutrition.DayOf(now), entry); err != nil {
		return nutrition.LogEntry{}, err
	}
	return entry, nil
}

// SetClock overrides the service clock, for tests.
func (s *TrackerService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *TrackerService) cachedPlan(ctx context.Context) (nutrition.Plan, bool) {
	if s.cache == nil {
		return nutrition.Plan{}, false
	}
	data, err := s.cache.Get(ctx, planCacheKey).Bytes()
	if err != nil {
		return nutrition.Plan{}, false
	}
	var plan nutrition.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		// Malformed cache entry; drop it and fall through to the database.
		s.cache.Del(ctx, planCacheKey)
		return nutrition.Plan{}, false
	}
	return plan, true
}

func (s *TrackerService) cachePlan(ctx context.Context, plan nutrition.Plan) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(plan)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, planCacheKey, data, planCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to cache plan")
	}
}
