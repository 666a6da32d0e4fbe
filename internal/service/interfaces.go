package service

import (
	"context"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

// ISettingsService defines the persisted onboarding-answer store.
type ISettingsService interface {
	Put(ctx context.Context, key, value string) error
	PutAll(ctx context.Context, answers map[string]string) error
	Get(ctx context.Context, key string) (string, bool, error)
	Snapshot(ctx context.Context) (map[string]string, error)
}

// ILogStore defines the append-only daily food log store.
type ILogStore interface {
	Append(ctx context.Context, day nutrition.Day, entry nutrition.LogEntry) error
	LogsFor(ctx context.Context, day nutrition.Day) ([]nutrition.LogEntry, error)
	All(ctx context.Context) (map[string][]nutrition.LogEntry, error)
}

// IAnalysisService defines the external image-analysis client.
type IAnalysisService interface {
	Analyze(ctx context.Context, sessionID string, image []byte, contentType string) (*AnalysisResult, error)
	FallbackResult() *AnalysisResult
	StoreImage(ctx context.Context, image []byte, contentType string) (string, error)
}

// ITrackerService defines the plan/log orchestrator.
type ITrackerService interface {
	CurrentPlan(ctx context.Context) (nutrition.Plan, error)
	RecomputePlan(ctx context.Context) (nutrition.Plan, error)
	Summary(ctx context.Context, day nutrition.Day) (*types.SummaryResponse, error)
	LogItem(ctx context.Context, item LogItemInput) (nutrition.LogEntry, error)
}

// ISessionService defines device session token handling.
type ISessionService interface {
	IssueToken(ctx context.Context, label string) (token string, deviceID string, err error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
