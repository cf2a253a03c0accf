package listingcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

// PriceAlertNotifier receives price drops so favorite price alerts can fire.
// Nil disables notifications.
type PriceAlertNotifier interface {
	NotifyPriceDrop(db *gorm.DB, listing *models.Listing)
}

type UpdateListingRequest struct {
	Title           *string `json:"title"`
	Variant         *string `json:"variant"`
	Mileage         *int    `json:"mileage"`
	Price           *int    `json:"price"`
	PriceNegotiable *bool   `json:"priceNegotiable"`
	Description     *string `json:"description"`
	Color           *string `json:"color"`
	Region          *string `json:"region"`
	WOFExpiry       *string `json:"wofExpiry"`
	RegoExpiry      *string `json:"regoExpiry"`
}

// fetchOwned loads a listing and enforces that the caller owns it.
func fetchOwned(c *gin.Context, db *gorm.DB) (*models.Listing, bool) {
	id := c.Param("id")
	userID := c.GetString("user_id")

	var listing models.Listing
	if err := db.First(&listing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Listing not found")
		} else {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
		}
		return nil, false
	}
	if listing.SellerID != userID {
		response.Error(c, http.StatusForbidden, response.CodeForbidden, "You do not own this listing")
		return nil, false
	}
	return &listing, true
}

// UpdateListing applies a partial update. A price change appends a price
// history row in the same transaction; history is never rewritten.
// PUT /api/v1/listings/:id
func UpdateListing(db *gorm.DB, alerts PriceAlertNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, ok := fetchOwned(c, db)
		if !ok {
			return
		}

		var req UpdateListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}

		oldPrice := listing.Price
		if req.Title != nil {
			listing.Title = *req.Title
		}
		if req.Variant != nil {
			listing.Variant = *req.Variant
		}
		if req.Mileage != nil {
			listing.Mileage = *req.Mileage
		}
		if req.Price != nil {
			listing.Price = *req.Price
		}
		if req.PriceNegotiable != nil {
			listing.PriceNegotiable = *req.PriceNegotiable
		}
		if req.Description != nil {
			listing.Description = *req.Description
		}
		if req.Color != nil {
			listing.Color = *req.Color
		}
		if req.Region != nil {
			listing.Region = *req.Region
		}
		if req.WOFExpiry != nil {
			listing.WOFExpiry = *req.WOFExpiry
		}
		if req.RegoExpiry != nil {
			listing.RegoExpiry = *req.RegoExpiry
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(listing).Error; err != nil {
				return err
			}
			if listing.Price != oldPrice {
				return tx.Create(&models.PriceHistory{
					ListingID:  listing.ID,
					Price:      listing.Price,
					RecordedAt: time.Now(),
				}).Error
			}
			return nil
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to update listing")
			return
		}

		if alerts != nil && listing.Price < oldPrice {
			alerts.NotifyPriceDrop(db, listing)
		}

		response.OK(c, http.StatusOK, listing)
	}
}
