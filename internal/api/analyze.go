package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

// maxImageSize caps uploaded captures at 10MB.
const maxImageSize = 10 << 20

// AnalyzeHandler accepts a food photo, runs it through the analysis service
// and appends the resulting entry to today's log. When analysis fails nothing
// is logged; the response carries a fallback estimate the user may accept by
// re-submitting it through POST /logs.
type AnalyzeHandler struct {
	analysis service.IAnalysisService
	tracker  service.ITrackerService
}

func NewAnalyzeHandler(analysis service.IAnalysisService, tracker service.ITrackerService) *AnalyzeHandler {
	return &AnalyzeHandler{analysis: analysis, tracker: tracker}
}

func (h *AnalyzeHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	if rateLimit != nil {
		router.POST("/analyze", rateLimit, h.Analyze)
	} else {
		router.POST("/analyze", h.Analyze)
	}
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds 10MB limit"})
		return
	}

	image, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	// One in-flight analysis per capture session; retries from the same
	// camera screen reuse the session id.
	sessionID := c.GetHeader("X-Capture-Session")
	if sessionID == "" {
		sessionID = c.GetString("device_id")
	}

	result, analyzeErr := h.analysis.Analyze(c.Request.Context(), sessionID, image, contentType)
	if analyzeErr != nil && !errors.Is(analyzeErr, service.ErrAnalysisRequest) {
		if errors.Is(analyzeErr, service.ErrAnalysisInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": analyzeErr.Error()})
			return
		}
		// Context cancellation or another transport-level failure where the
		// client is already gone.
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis unavailable"})
		return
	}

	// The capture is only uploaded once analysis has resolved, so a rejected
	// duplicate request leaves nothing behind in storage.
	imageRef, err := h.analysis.StoreImage(c.Request.Context(), image, contentType)
	if err != nil {
		log.Warn().Err(err).Msg("failed to store capture, continuing without image reference")
		imageRef = ""
	}

	if analyzeErr != nil {
		// Nothing is appended on failure; the user decides whether to log
		// the fallback estimate.
		log.Error().Err(analyzeErr).Msg("image analysis failed, offering fallback estimate")
		fallback := h.analysis.FallbackResult()
		c.JSON(http.StatusBadGateway, types.AnalyzeFailureResponse{
			Error: "image analysis failed",
			Fallback: types.LogEntryRequest{
				Description:      fallback.Description,
				HealthSuggestion: fallback.HealthSuggestion,
				Calories:         fallback.Calories,
				CarbsG:           fallback.CarbsG,
				ProteinG:         fallback.ProteinG,
				FatsG:            fallback.FatsG,
				ImageRef:         imageRef,
			},
		})
		return
	}

	entry, err := h.tracker.LogItem(c.Request.Context(), service.LogItemInput{
		Description:      result.Description,
		HealthSuggestion: result.HealthSuggestion,
		Calories:         result.Calories,
		CarbsG:           result.CarbsG,
		ProteinG:         result.ProteinG,
		FatsG:            result.FatsG,
		ImageRef:         imageRef,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to append log entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
