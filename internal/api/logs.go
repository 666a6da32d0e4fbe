package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

// LogsHandler reads and appends daily food log entries.
type LogsHandler struct {
	tracker service.ITrackerService
	logs    service.ILogStore
}

func NewLogsHandler(tracker service.ITrackerService, logs service.ILogStore) *LogsHandler {
	return &LogsHandler{tracker: tracker, logs: logs}
}

func (h *LogsHandler) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/logs")
	{
		logs.GET("", h.GetLogs)
		logs.POST("", h.AppendLog)
		logs.GET("/export", h.ExportLogs)
	}
}

// GetLogs returns the entries for one date, newest first. Without a date
// parameter it serves the current day.
func (h *LogsHandler) GetLogs(c *gin.Context) {
	day := nutrition.DayOf(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := nutrition.ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	entries, err := h.logs.LogsFor(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": day.String(), "entries": entries})
}

// AppendLog records a manually entered entry. It always lands on the current
// calendar date regardless of which date the client is viewing.
func (h *LogsHandler) AppendLog(c *gin.Context) {
	var req types.LogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}

	entry, err := h.tracker.LogItem(c.Request.Context(), service.LogItemInput{
		Description:      req.Description,
		HealthSuggestion: req.HealthSuggestion,
		Calories:         req.Calories,
		CarbsG:           req.CarbsG,
		ProteinG:         req.ProteinG,
		FatsG:            req.FatsG,
		ImageRef:         req.ImageRef,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to append log entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ExportLogs dumps the full history keyed by date, for client-side backup.
func (h *LogsHandler) ExportLogs(c *gin.Context) {
	all, err := h.logs.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"foodLogs": all})
}
