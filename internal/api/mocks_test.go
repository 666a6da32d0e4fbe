package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

type mockTrackerService struct {
	mock.Mock
}

func (m *mockTrackerService) CurrentPlan(ctx context.Context) (nutrition.Plan, error) {
	args := m.Called(ctx)
	return args.Get(0).(nutrition.Plan), args.Error(1)
}

func (m *mockTrackerService) RecomputePlan(ctx context.Context) (nutrition.Plan, error) {
	args := m.Called(ctx)
	return args.Get(0).(nutrition.Plan), args.Error(1)
}

func (m *mockTrackerService) Summary(ctx context.Context, day nutrition.Day) (*types.SummaryResponse, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SummaryResponse), args.Error(1)
}

func (m *mockTrackerService) LogItem(ctx context.Context, item service.LogItemInput) (nutrition.LogEntry, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(nutrition.LogEntry), args.Error(1)
}

type mockLogStore struct {
	mock.Mock
}

func (m *mockLogStore) Append(ctx context.Context, day nutrition.Day, entry nutrition.LogEntry) error {
	args := m.Called(ctx, day, entry)
	return args.Error(0)
}

func (m *mockLogStore) LogsFor(ctx context.Context, day nutrition.Day) ([]nutrition.LogEntry, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nutrition.LogEntry), args.Error(1)
}

func (m *mockLogStore) All(ctx context.Context) (map[string][]nutrition.LogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]nutrition.LogEntry), args.Error(1)
}

type mockSettingsService struct {
	mock.Mock
}

func (m *mockSettingsService) Put(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *mockSettingsService) PutAll(ctx context.Context, answers map[string]string) error {
	args := m.Called(ctx, answers)
	return args.Error(0)
}

func (m *mockSettingsService) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockSettingsService) Snapshot(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

type mockAnalysisService struct {
	mock.Mock
}

func (m *mockAnalysisService) Analyze(ctx context.Context, sessionID string, image []byte, contentType string) (*service.AnalysisResult, error) {
	args := m.Called(ctx, sessionID, image, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisResult), args.Error(1)
}

func (m *mockAnalysisService) FallbackResult() *service.AnalysisResult {
	args := m.Called()
	return args.Get(0).(*service.AnalysisResult)
}

func (m *mockAnalysisService) StoreImage(ctx context.Context, image []byte, contentType string) (string, error) {
	args := m.Called(ctx, image, contentType)
	return args.String(0), args.Error(1)
}

type mockSessionService struct {
	mock.Mock
}

func (m *mockSessionService) IssueToken(ctx context.Context, label string) (string, string, error) {
	args := m.Called(ctx, label)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockSessionService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
