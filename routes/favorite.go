package routes

import (
	"github.com/gin-gonic/gin"
	favoritecontroller "github.com/kiwicar-nz/marketplace-api/controllers/favorite"
	"github.com/kiwicar-nz/marketplace-api/middleware"
)

// SetupFavoriteRoutes registers the owner-scoped /favorites endpoints.
func SetupFavoriteRoutes(api *gin.RouterGroup, deps Deps) {
	favorites := api.Group("/favorites")
	{
		favorites.GET("", middleware.RequireAuth, favoritecontroller.GetFavorites(deps.DB))
		favorites.POST("", middleware.RequireAuth, favoritecontroller.AddFavorite(deps.DB))
		favorites.PUT("/:id", middleware.RequireAuth, favoritecontroller.UpdateFavorite(deps.DB))
		favorites.DELETE("/:id", middleware.RequireAuth, favoritecontroller.DeleteFavorite(deps.DB))
		favorites.DELETE("/listing/:listingId", middleware.RequireAuth, favoritecontroller.UnfavoriteByListing(deps.DB))
		favorites.GET("/check/:listingId", middleware.OptionalAuth, favoritecontroller.CheckFavorite(deps.DB))

		// Token rides the query string; websocket clients cannot set headers.
		favorites.GET("/ws/alerts", deps.Alerts.ServeAlerts())
	}
}
