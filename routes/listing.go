package routes

import (
	"github.com/gin-gonic/gin"
	listingcontroller "github.com/kiwicar-nz/marketplace-api/controllers/listing"
	"github.com/kiwicar-nz/marketplace-api/middleware"
)

// SetupListingRoutes registers the /listings and /luxury-vehicles endpoints.
// Search and view counting are public; detail is personalized when a token
// is present; every mutation is owner-gated behind auth.
func SetupListingRoutes(api *gin.RouterGroup, deps Deps) {
	listings := api.Group("/listings")
	{
		listings.GET("", listingcontroller.GetListings(deps.DB))
		listings.GET("/mine", middleware.RequireAuth, listingcontroller.GetMyListings(deps.DB))
		listings.GET("/mine/export", middleware.RequireAuth, listingcontroller.ExportMyListings(deps.DB))
		listings.GET("/:id", middleware.OptionalAuth, listingcontroller.GetListingByID(deps.DB))
		listings.POST("", middleware.RequireAuth, listingcontroller.CreateListing(deps.DB))
		listings.PUT("/:id", middleware.RequireAuth, listingcontroller.UpdateListing(deps.DB, deps.Alerts))
		listings.DELETE("/:id", middleware.RequireAuth, listingcontroller.DeleteListing(deps.DB))
		listings.PUT("/:id/status", middleware.RequireAuth, listingcontroller.UpdateListingStatus(deps.DB))
		listings.POST("/:id/view", listingcontroller.IncrementViewCount(deps.DB))
	}

	api.GET("/luxury-vehicles", listingcontroller.GetLuxuryListings(deps.DB))
}
