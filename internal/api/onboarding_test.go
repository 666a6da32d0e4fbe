package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
)

func TestPutAnswers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	settings := new(mockSettingsService)
	tracker := new(mockTrackerService)
	settings.On("PutAll", mock.Anything, map[string]string{"userGoal": "lose weight"}).Return(nil)
	tracker.On("RecomputePlan", mock.Anything).Return(testPlan(), nil)

	body := bytes.NewBufferString(`{"answers":{"userGoal":"lose weight"}}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/onboarding/answers", body)
	c.Request.Header.Set("Content-Type", "application/json")

	NewOnboardingHandler(settings, tracker).PutAnswers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	settings.AssertExpectations(t)
	tracker.AssertExpectations(t)
}

func TestPutAnswersUnknownKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	settings := new(mockSettingsService)
	tracker := new(mockTrackerService)
	settings.On("PutAll", mock.Anything, map[string]string{"favoriteColor": "blue"}).Return(service.ErrUnknownAnswerKey)

	body := bytes.NewBufferString(`{"answers":{"favoriteColor":"blue"}}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/onboarding/answers", body)
	c.Request.Header.Set("Content-Type", "application/json")

	NewOnboardingHandler(settings, tracker).PutAnswers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tracker.AssertNotCalled(t, "RecomputePlan", mock.Anything)
}

func TestPutAnswersEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	settings := new(mockSettingsService)
	tracker := new(mockTrackerService)

	body := bytes.NewBufferString(`{"answers":{}}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/onboarding/answers", body)
	c.Request.Header.Set("Content-Type", "application/json")

	NewOnboardingHandler(settings, tracker).PutAnswers(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAnswers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	settings := new(mockSettingsService)
	tracker := new(mockTrackerService)
	settings.On("Snapshot", mock.Anything).Return(map[string]string{"userGoal": "gain"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/onboarding/answers", nil)

	NewOnboardingHandler(settings, tracker).GetAnswers(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userGoal":"gain"`)
}
