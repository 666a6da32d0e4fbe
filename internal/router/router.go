package router

import (
	"github.com/gin-gonic/gin"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/api"
	"github.com/PiovisDevelopment/calorie-flow/backend/internal/middleware"
)

// SetupRouter builds the gin engine with CORS applied and the full API
// surface registered.
func SetupRouter(deps api.Dependencies, allowedOrigins []string) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(allowedOrigins))

	api.SetupAPI(router, deps)

	return router
}
