package listingcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateListingStatus moves a listing between active, sold and removed.
// PUT /api/v1/listings/:id/status
func UpdateListingStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing, ok := fetchOwned(c, db)
		if !ok {
			return
		}

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}
		status, valid := models.ValidListingStatus(req.Status)
		if !valid {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid status: "+req.Status)
			return
		}

		listing.Status = status
		if err := db.Save(listing).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to update status")
			return
		}

		response.OK(c, http.StatusOK, listing)
	}
}
