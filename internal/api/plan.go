package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
)

// PlanHandler serves the current nutrition plan.
type PlanHandler struct {
	tracker service.ITrackerService
}

func NewPlanHandler(tracker service.ITrackerService) *PlanHandler {
	return &PlanHandler{tracker: tracker}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/plan")
	{
		plan.GET("", h.GetPlan)
		plan.POST("/recompute", h.RecomputePlan)
	}
}

// GetPlan returns the stored plan, computing one first if none exists yet.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.tracker.CurrentPlan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// RecomputePlan rebuilds the plan from the stored answers and persists it.
func (h *PlanHandler) RecomputePlan(c *gin.Context) {
	plan, err := h.tracker.RecomputePlan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recompute plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}
