package api

import (
	routes "geosupport/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, config map[string]string) {
	// API group
	api := r.Group("/api")

	// Setup main handlers
	routes.SetupMainHandlers(r.Group(""), config)

	// Setup feature query handlers
	routes.SetupFeatureHandlers(api)

	// Setup geometry operation handlers
	routes.SetupGeometryHandlers(api)

	// Setup quality report handlers
	routes.SetupQualityHandlers(api)
}
