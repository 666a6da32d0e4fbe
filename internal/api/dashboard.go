package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
)

// DashboardHandler serves the per-day summary the home screen renders: the
// plan, the day's entries and the consumed/remaining totals.
type DashboardHandler struct {
	tracker service.ITrackerService
}

func NewDashboardHandler(tracker service.ITrackerService) *DashboardHandler {
	return &DashboardHandler{tracker: tracker}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/summary", h.GetSummary)
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	day := nutrition.DayOf(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := nutrition.ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	summary, err := h.tracker.Summary(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
