package listingcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportMyListings downloads the caller's listings as a spreadsheet.
// GET /api/v1/listings/mine/export
func ExportMyListings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var listings []models.Listing
		if err := db.Where("seller_id = ?", userID).Order("created_at DESC").Find(&listings).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to fetch listings")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Listings")
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create sheet")
			return
		}

		headers := []string{
			"ID", "Title", "Make", "Model", "Variant", "Year", "Mileage",
			"Price", "Negotiable", "FuelType", "Transmission", "BodyType",
			"Region", "Status", "Views", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, l := range listings {
			row := sheet.AddRow()
			row.AddCell().SetValue(l.ID)
			row.AddCell().SetValue(l.Title)
			row.AddCell().SetValue(l.Make)
			row.AddCell().SetValue(l.Model)
			row.AddCell().SetValue(l.Variant)
			row.AddCell().SetValue(l.Year)
			row.AddCell().SetValue(l.Mileage)
			row.AddCell().SetValue(l.Price)
			row.AddCell().SetValue(l.PriceNegotiable)
			row.AddCell().SetValue(string(l.FuelType))
			row.AddCell().SetValue(string(l.Transmission))
			row.AddCell().SetValue(string(l.BodyType))
			row.AddCell().SetValue(l.Region)
			row.AddCell().SetValue(string(l.Status))
			row.AddCell().SetValue(l.ViewCount)
			row.AddCell().SetValue(l.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=my-listings.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to write spreadsheet")
			return
		}
	}
}
