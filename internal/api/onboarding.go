package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

// OnboardingHandler stores the questionnaire answers a plan is derived from.
type OnboardingHandler struct {
	settings service.ISettingsService
	tracker  service.ITrackerService
}

func NewOnboardingHandler(settings service.ISettingsService, tracker service.ITrackerService) *OnboardingHandler {
	return &OnboardingHandler{settings: settings, tracker: tracker}
}

func (h *OnboardingHandler) RegisterRoutes(router *gin.RouterGroup) {
	onboarding := router.Group("/onboarding")
	{
		onboarding.PUT("/answers", h.PutAnswers)
		onboarding.GET("/answers", h.GetAnswers)
	}
}

// PutAnswers upserts the answers atomically and recomputes the plan so the
// next read already reflects them.
func (h *OnboardingHandler) PutAnswers(c *gin.Context) {
	var req types.AnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no answers provided"})
		return
	}

	if err := h.settings.PutAll(c.Request.Context(), req.Answers); err != nil {
		if errors.Is(err, service.ErrUnknownAnswerKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store answers"})
		return
	}

	plan, err := h.tracker.RecomputePlan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recompute plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *OnboardingHandler) GetAnswers(c *gin.Context) {
	answers, err := h.settings.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load answers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers})
}
