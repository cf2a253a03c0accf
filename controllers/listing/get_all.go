package listingcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/pagination"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

// GetListings is the public search endpoint.
// GET /api/v1/listings?search=&make=&model=&minPrice=&...&sort=&page=&limit=
func GetListings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := parseSearchQuery(c)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			return
		}
		page := pagination.Parse(c.Query("page"), c.Query("limit"))

		base := q.apply(db.Model(&models.Listing{}))

		var total int64
		if err := base.Count(&total).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		// Ordering before windowing keeps page boundaries stable for a
		// fixed filter+sort combination.
		var listings []models.Listing
		if err := base.
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("display_order ASC")
			}).
			Order(q.orderClause()).
			Offset(page.Offset()).
			Limit(page.Limit).
			Find(&listings).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		response.OKWithMeta(c, http.StatusOK, listings, page.Meta(total))
	}
}

// GetMyListings returns the caller's own listings regardless of status.
// GET /api/v1/listings/mine
func GetMyListings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var listings []models.Listing
		if err := db.
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("display_order ASC")
			}).
			Where("seller_id = ?", userID).
			Order("created_at DESC").
			Find(&listings).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		response.OK(c, http.StatusOK, listings)
	}
}

// GetLuxuryListings is the premium showcase: active listings above $100k,
// highest price first, capped at 200 rows.
// GET /api/v1/luxury-vehicles
func GetLuxuryListings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listings []models.Listing
		if err := db.
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("display_order ASC")
			}).
			Where("status = ? AND price > ?", models.ListingStatusActive, 100000).
			Order("price DESC").
			Limit(200).
			Find(&listings).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		response.OK(c, http.StatusOK, listings)
	}
}
