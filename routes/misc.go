package routes

import (
	"github.com/gin-gonic/gin"
	aicontroller "github.com/kiwicar-nz/marketplace-api/controllers/ai"
	draftcontroller "github.com/kiwicar-nz/marketplace-api/controllers/draftctl"
	imagecontroller "github.com/kiwicar-nz/marketplace-api/controllers/image"
	messagecontroller "github.com/kiwicar-nz/marketplace-api/controllers/message"
	usercontroller "github.com/kiwicar-nz/marketplace-api/controllers/user"
	vehiclecontroller "github.com/kiwicar-nz/marketplace-api/controllers/vehicle"
	"github.com/kiwicar-nz/marketplace-api/middleware"
)

// SetupVehicleRoutes registers the cache-first plate lookup.
func SetupVehicleRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/vehicles/:plateNumber", vehiclecontroller.GetVehicle(deps.Vehicles))
}

// SetupDraftRoutes registers the sell-wizard draft endpoints.
func SetupDraftRoutes(api *gin.RouterGroup, deps Deps) {
	drafts := api.Group("/drafts", middleware.RequireAuth)
	{
		drafts.GET("/me", draftcontroller.GetDraft(deps.DB))
		drafts.PUT("/me", draftcontroller.ApplyDraftAction(deps.DB))
		drafts.DELETE("/me", draftcontroller.ResetDraft(deps.DB))
		drafts.POST("/me/publish", draftcontroller.PublishDraft(deps.DB))
	}
}

// SetupImageRoutes registers the multipart upload endpoint.
func SetupImageRoutes(api *gin.RouterGroup, deps Deps) {
	api.POST("/images/upload", middleware.RequireAuth,
		imagecontroller.UploadImages(deps.UploadDir, deps.PublicBaseURL))
}

// SetupAIRoutes registers the valuation and description endpoints.
func SetupAIRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/ai/pricing", aicontroller.GetPricing(deps.Estimator))
	api.POST("/ai/generate-description", middleware.RequireAuth,
		aicontroller.GenerateDescription(deps.Describer))
}

// SetupUserRoutes registers the profile endpoints.
func SetupUserRoutes(api *gin.RouterGroup, deps Deps) {
	users := api.Group("/users", middleware.RequireAuth)
	{
		users.GET("/me", usercontroller.GetMe(deps.DB))
		users.PUT("/me", usercontroller.UpdateMe(deps.DB))
	}
}

// SetupMessageRoutes registers the post-MVP messaging stubs.
func SetupMessageRoutes(api *gin.RouterGroup) {
	messages := api.Group("/messages", middleware.RequireAuth)
	{
		messages.GET("/conversations", messagecontroller.GetConversations())
		messages.GET("/conversations/:id", messagecontroller.GetConversation())
	}
}
