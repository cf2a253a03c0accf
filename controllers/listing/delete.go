package listingcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

// DeleteListing removes a listing plus its images, price history and
// favorites in one transaction.
// DELETE /api/v1/listings/:id
func DeleteListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, ok := fetchOwned(c, db)
		if !ok {
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("listing_id = ?", listing.ID).Delete(&models.ListingImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id = ?", listing.ID).Delete(&models.PriceHistory{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id = ?", listing.ID).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			return tx.Delete(listing).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to delete listing")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
