package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
)

func TestGetLogsForDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := new(mockTrackerService)
	logs := new(mockLogStore)
	day, err := nutrition.ParseDay("2024-06-14")
	require.NoError(t, err)
	entries := []nutrition.LogEntry{
		{ID: "1718357400000", Description: "Oatmeal", Calories: 300},
	}
	logs.On("LogsFor", mock.Anything, day).Return(entries, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs?date=2024-06-14", nil)

	NewLogsHandler(tracker, logs).GetLogs(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Date    string               `json:"date"`
		Entries []nutrition.LogEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-14", resp.Date)
	assert.Equal(t, entries, resp.Entries)
}

func TestGetLogsBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := new(mockTrackerService)
	logs := new(mockLogStore)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs?date=06-14-2024", nil)

	NewLogsHandler(tracker, logs).GetLogs(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	logs.AssertNotCalled(t, "LogsFor", mock.Anything, mock.Anything)
}

func TestAppendLog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := new(mockTrackerService)
	logs := new(mockLogStore)
	entry := nutrition.LogEntry{
		ID:          "1718357400000",
		Description: "Greek salad",
		Calories:    420,
		Timestamp:   "12:15",
	}
	tracker.On("LogItem", mock.Anything, service.LogItemInput{
		Description: "Greek salad",
		Calories:    420,
	}).Return(entry, nil)

	body := bytes.NewBufferString(`{"description":"Greek salad","calories":420}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logs", body)
	c.Request.Header.Set("Content-Type", "application/json")

	NewLogsHandler(tracker, logs).AppendLog(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var got nutrition.LogEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, entry, got)
}

func TestAppendLogMissingDescription(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := new(mockTrackerService)
	logs := new(mockLogStore)

	body := bytes.NewBufferString(`{"calories":420}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logs", body)
	c.Request.Header.Set("Content-Type", "application/json")

	NewLogsHandler(tracker, logs).AppendLog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tracker.AssertNotCalled(t, "LogItem", mock.Anything, mock.Anything)
}

func TestExportLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := new(mockTrackerService)
	logs := new(mockLogStore)
	logs.On("All", mock.Anything).Return(map[string][]nutrition.LogEntry{
		"2024-06-14": {{ID: "2", Description: "Dinner"}, {ID: "1", Description: "Lunch"}},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs/export", nil)

	NewLogsHandler(tracker, logs).ExportLogs(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		FoodLogs map[string][]nutrition.LogEntry `json:"foodLogs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.FoodLogs["2024-06-14"], 2)
	assert.Equal(t, "Dinner", resp.FoodLogs["2024-06-14"][0].Description)
}
