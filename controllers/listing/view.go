package listingcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

// IncrementViewCount bumps the view counter. Open to any caller. The
// increment runs in the database so concurrent views never lose updates.
// POST /api/v1/listings/:id/view
func IncrementViewCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Model(&models.Listing{}).
			Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + 1"))
		if result.Error != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, result.Error.Error())
			return
		}
		if result.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Listing not found")
			return
		}

		response.OK(c, http.StatusOK, gin.H{"counted": true})
	}
}
