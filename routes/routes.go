package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	favoritecontroller "github.com/kiwicar-nz/marketplace-api/controllers/favorite"
	"github.com/kiwicar-nz/marketplace-api/pricing"
	"github.com/kiwicar-nz/marketplace-api/response"
	"github.com/kiwicar-nz/marketplace-api/vehiclelookup"
	"gorm.io/gorm"
)

// Deps carries the shared collaborators handlers close over.
type Deps struct {
	DB            *gorm.DB
	Vehicles      *vehiclelookup.Service
	Estimator     pricing.Estimator
	Describer     pricing.Describer
	Alerts        *favoritecontroller.AlertHub
	UploadDir     string
	PublicBaseURL string
}

// SetupRoutes is the single entry-point wiring every route group under
// the /api/v1 prefix.
func SetupRoutes(r *gin.Engine, deps Deps) {
	r.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	SetupListingRoutes(api, deps)
	SetupFavoriteRoutes(api, deps)
	SetupVehicleRoutes(api, deps)
	SetupDraftRoutes(api, deps)
	SetupImageRoutes(api, deps)
	SetupAIRoutes(api, deps)
	SetupUserRoutes(api, deps)
	SetupMessageRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, response.CodeNotFound,
			"Route not found: "+c.Request.Method+" "+c.Request.URL.Path)
	})
}
