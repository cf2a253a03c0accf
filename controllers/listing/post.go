package listingcontroller

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"github.com/kiwicar-nz/marketplace-api/sell"
	"gorm.io/gorm"
)

type CreateListingRequest struct {
	Make            string              `json:"make" binding:"required"`
	Model           string              `json:"model" binding:"required"`
	Variant         string              `json:"variant"`
	Year            int                 `json:"year" binding:"required"`
	Mileage         int                 `json:"mileage"`
	Price           int                 `json:"price" binding:"required"`
	PriceNegotiable bool                `json:"priceNegotiable"`
	Description     string              `json:"description" binding:"required"`
	FuelType        models.FuelType     `json:"fuelType"`
	Transmission    models.Transmission `json:"transmission"`
	BodyType        models.BodyType     `json:"bodyType"`
	Color           string              `json:"color"`
	EngineSize      string              `json:"engineSize"`
	Region          string              `json:"region"`
	PlateNumber     string              `json:"plateNumber"`
	WOFExpiry       string              `json:"wofExpiry"`
	RegoExpiry      string              `json:"regoExpiry"`
	Images          []string            `json:"images" binding:"required"`
}

func (r CreateListingRequest) validate() []response.FieldError {
	var details []response.FieldError
	if len(r.Images) < sell.MinImages || len(r.Images) > sell.MaxImages {
		details = append(details, response.FieldError{
			Field:   "images",
			Message: fmt.Sprintf("between %d and %d images are required", sell.MinImages, sell.MaxImages),
		})
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(r.Description)); n < sell.MinDescription || n > sell.MaxDescription {
		details = append(details, response.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description must be %d-%d characters", sell.MinDescription, sell.MaxDescription),
		})
	}
	if r.Price < sell.MinPrice {
		details = append(details, response.FieldError{
			Field:   "price",
			Message: fmt.Sprintf("minimum price is $%d", sell.MinPrice),
		})
	}
	return details
}

// BuildTitle composes the display title shown on cards and detail pages.
func BuildTitle(year int, make, model, variant string) string {
	return strings.TrimSpace(fmt.Sprintf("%d %s %s %s", year, make, model, variant))
}

// CreateListing publishes a new listing. Images are stored in input order
// (position 0 is the cover) and the opening price seeds the price history,
// all in one transaction.
// POST /api/v1/listings
func CreateListing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req CreateListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}
		if details := req.validate(); len(details) > 0 {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Listing validation failed", details...)
			return
		}

		now := time.Now()
		listing := models.Listing{
			ID:              uuid.NewString(),
			SellerID:        userID,
			Title:           BuildTitle(req.Year, req.Make, req.Model, req.Variant),
			Make:            req.Make,
			Model:           req.Model,
			Variant:         req.Variant,
			Year:            req.Year,
			Mileage:         req.Mileage,
			Price:           req.Price,
			PriceNegotiable: req.PriceNegotiable,
			Description:     req.Description,
			FuelType:        req.FuelType,
			Transmission:    req.Transmission,
			BodyType:        req.BodyType,
			Color:           req.Color,
			EngineSize:      req.EngineSize,
			Region:          req.Region,
			PlateNumber:     req.PlateNumber,
			WOFExpiry:       req.WOFExpiry,
			RegoExpiry:      req.RegoExpiry,
			Status:          models.ListingStatusActive,
		}
		for i, url := range req.Images {
			listing.Images = append(listing.Images, models.ListingImage{
				ID:           uuid.NewString(),
				URL:          url,
				DisplayOrder: i,
			})
		}
		listing.PriceHistory = []models.PriceHistory{{Price: req.Price, RecordedAt: now}}

		if err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&listing).Error
		}); err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to create listing")
			return
		}

		response.OK(c, http.StatusCreated, listing)
	}
}
