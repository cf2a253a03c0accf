package listingcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/middleware"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ListingDetail is the single aggregate shape assembled for a detail view,
// instead of ad hoc merging at the response site.
type ListingDetail struct {
	models.Listing
	Seller        *models.SellerProfile `json:"seller,omitempty"`
	FavoriteCount int64                 `json:"favoriteCount"`
	IsFavorited   bool                  `json:"isFavorited"`
}

// GetListingByID assembles the full detail aggregate.
// GET /api/v1/listings/:id (OptionalAuth)
//
// Non-active listings are only visible to their owner; everyone else gets
// FORBIDDEN.
func GetListingByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		callerID, hasCaller := middleware.CallerID(c)

		var listing models.Listing
		if err := db.First(&listing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, response.CodeNotFound, "Listing not found")
			} else {
				response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			}
			return
		}

		if listing.Status != models.ListingStatusActive && listing.SellerID != callerID {
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "This listing is no longer available")
			return
		}

		detail := ListingDetail{Listing: listing}

		// The sub-fetches are independent reads; only the existence check
		// above had to come first.
		g, ctx := errgroup.WithContext(c.Request.Context())

		g.Go(func() error {
			return db.WithContext(ctx).
				Where("listing_id = ?", id).
				Order("display_order ASC").
				Find(&detail.Images).Error
		})
		g.Go(func() error {
			return db.WithContext(ctx).
				Where("listing_id = ?", id).
				Order("recorded_at ASC").
				Find(&detail.PriceHistory).Error
		})
		g.Go(func() error {
			var seller models.User
			err := db.WithContext(ctx).First(&seller, "id = ?", listing.SellerID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // profile row may not exist yet
			}
			if err != nil {
				return err
			}
			profile := seller.PublicProfile()
			detail.Seller = &profile
			return nil
		})
		g.Go(func() error {
			return db.WithContext(ctx).Model(&models.Favorite{}).
				Where("listing_id = ?", id).
				Count(&detail.FavoriteCount).Error
		})
		if hasCaller {
			g.Go(func() error {
				var n int64
				err := db.WithContext(ctx).Model(&models.Favorite{}).
					Where("user_id = ? AND listing_id = ?", callerID, id).
					Count(&n).Error
				detail.IsFavorited = n > 0
				return err
			})
		}

		if err := g.Wait(); err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		response.OK(c, http.StatusOK, detail)
	}
}
