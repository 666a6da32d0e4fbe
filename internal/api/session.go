package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/service"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/types"
)

// SessionHandler issues device session tokens. The app is single-user; a
// session only identifies which device is talking.
type SessionHandler struct {
	sessions service.ISessionService
}

func NewSessionHandler(sessions service.ISessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/session", h.CreateSession)
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req types.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Label == "" {
		req.Label = "unnamed device"
	}

	token, deviceID, err := h.sessions.IssueToken(c.Request.Context(), req.Label)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, types.SessionResponse{Token: token, DeviceID: deviceID})
}
