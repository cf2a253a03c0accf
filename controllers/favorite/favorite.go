package favoritecontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiwicar-nz/marketplace-api/middleware"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

type AddFavoriteRequest struct {
	ListingID string `json:"listingId" binding:"required"`
}

type UpdateFavoriteRequest struct {
	PriceAlertEnabled *bool `json:"priceAlertEnabled"`
	TargetPrice       *int  `json:"targetPrice"`
}

// GetFavorites lists the caller's favorites with their listings.
// GET /api/v1/favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var favorites []models.Favorite
		if err := db.
			Preload("Listing").
			Preload("Listing.Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("display_order ASC")
			}).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&favorites).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to fetch favorites")
			return
		}

		response.OK(c, http.StatusOK, favorites)
	}
}

// AddFavorite favorites a listing. The insert goes straight at the unique
// (user, listing) index, so a double-add, concurrent or not, resolves to
// the row that won instead of an error.
// POST /api/v1/favorites
func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req AddFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}

		var listing models.Listing
		if err := db.First(&listing, "id = ?", req.ListingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, response.CodeNotFound, "Listing not found")
			} else {
				response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			}
			return
		}

		favorite := models.Favorite{
			ID:        uuid.NewString(),
			UserID:    userID,
			ListingID: req.ListingID,
		}
		if err := db.Create(&favorite).Error; err != nil {
			// The unique (user, listing) index rejects double-adds,
			// including concurrent ones; return the row that won.
			var existing models.Favorite
			if db.Where("user_id = ? AND listing_id = ?", userID, req.ListingID).
				First(&existing).Error == nil {
				response.OK(c, http.StatusOK, existing)
				return
			}
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to add favorite")
			return
		}

		response.OK(c, http.StatusCreated, favorite)
	}
}

// UpdateFavorite toggles the price alert or sets the target price.
// Enabling an alert without a target defaults it to 90% of the listing's
// current price, decided here at the call site rather than in the store.
// PUT /api/v1/favorites/:id
func UpdateFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		var favorite models.Favorite
		if err := db.Preload("Listing").Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, response.CodeNotFound, "Favorite not found")
			} else {
				response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			}
			return
		}

		var req UpdateFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}

		if req.TargetPrice != nil {
			favorite.TargetPrice = req.TargetPrice
		}
		if req.PriceAlertEnabled != nil {
			favorite.PriceAlertEnabled = *req.PriceAlertEnabled
			if favorite.PriceAlertEnabled && favorite.TargetPrice == nil && favorite.Listing != nil {
				target := favorite.Listing.Price * 90 / 100
				favorite.TargetPrice = &target
			}
		}

		if err := db.Save(&favorite).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to update favorite")
			return
		}

		response.OK(c, http.StatusOK, favorite)
	}
}

// DeleteFavorite removes a favorite by its ID.
// DELETE /api/v1/favorites/:id
func DeleteFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		id := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Favorite{})
		if result.Error != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to delete favorite")
			return
		}
		if result.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Favorite not found")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// UnfavoriteByListing removes the caller's favorite for a listing. Removing
// one that does not exist is a no-op, matching the client's idempotent
// heart toggle.
// DELETE /api/v1/favorites/listing/:listingId
func UnfavoriteByListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		listingID := c.Param("listingId")

		if err := db.Where("user_id = ? AND listing_id = ?", userID, listingID).
			Delete(&models.Favorite{}).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to delete favorite")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// CheckFavorite reports whether the caller has favorited a listing; false
// for anonymous callers. Listing cards use this for the heart state.
// GET /api/v1/favorites/check/:listingId
func CheckFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		listingID := c.Param("listingId")

		userID, ok := middleware.CallerID(c)
		if !ok {
			response.OK(c, http.StatusOK, gin.H{"isFavorited": false})
			return
		}

		var n int64
		if err := db.Model(&models.Favorite{}).
			Where("user_id = ? AND listing_id = ?", userID, listingID).
			Count(&n).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		response.OK(c, http.StatusOK, gin.H{"isFavorited": n > 0})
	}
}
