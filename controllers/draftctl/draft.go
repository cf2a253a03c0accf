package draftcontroller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	listingcontroller "github.com/kiwicar-nz/marketplace-api/controllers/listing"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"github.com/kiwicar-nz/marketplace-api/sell"
	"gorm.io/gorm"
)

// DraftActionRequest names one wizard transition plus its arguments. The
// handler applies it to the stored draft and persists the result, so the
// wizard survives reloads and device switches.
type DraftActionRequest struct {
	Action      string                   `json:"action" binding:"required"`
	Step        *int                     `json:"step"`
	PlateNumber *string                  `json:"plateNumber"`
	VehicleInfo *models.DraftVehicleInfo `json:"vehicleInfo"`
	ImageURL    *string                  `json:"imageUrl"`
	Index       *int                     `json:"index"`
	From        *int                     `json:"from"`
	To          *int                     `json:"to"`
	Description *string                  `json:"description"`
	Price       *int                     `json:"price"`
	Negotiable  *bool                    `json:"negotiable"`
}

func loadOrCreateDraft(db *gorm.DB, userID string) (models.SellDraft, error) {
	var draft models.SellDraft
	err := db.Where("user_id = ?", userID).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		draft = sell.NewDraft(userID)
		err = db.Create(&draft).Error
	}
	return draft, err
}

// GetDraft returns the caller's draft, creating a fresh step-1 draft on
// first use.
// GET /api/v1/drafts/me
func GetDraft(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := loadOrCreateDraft(db, c.GetString("user_id"))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}
		response.OK(c, http.StatusOK, draft)
	}
}

// ApplyDraftAction runs one transition. Blocked gates come back as 400
// with the user-facing message; the draft is left untouched in that case.
// PUT /api/v1/drafts/me
func ApplyDraftAction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DraftActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}

		draft, err := loadOrCreateDraft(db, c.GetString("user_id"))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		if err := applyAction(&draft, req); err != nil {
			var blockedErr *sell.BlockedError
			if errors.As(err, &blockedErr) {
				response.Error(c, http.StatusBadRequest, response.CodeValidation, blockedErr.Message)
			} else {
				response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			}
			return
		}

		if err := db.Save(&draft).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to save draft")
			return
		}
		response.OK(c, http.StatusOK, draft)
	}
}

func applyAction(draft *models.SellDraft, req DraftActionRequest) error {
	switch req.Action {
	case "set_step":
		if req.Step == nil {
			return errors.New("step is required")
		}
		return sell.SetStep(draft, *req.Step)
	case "set_plate":
		if req.PlateNumber == nil {
			return errors.New("plateNumber is required")
		}
		sell.SetPlate(draft, *req.PlateNumber)
	case "set_vehicle_info":
		if req.VehicleInfo == nil {
			return errors.New("vehicleInfo is required")
		}
		sell.MergeVehicleInfo(draft, *req.VehicleInfo)
	case "add_image":
		if req.ImageURL == nil {
			return errors.New("imageUrl is required")
		}
		return sell.AddImage(draft, *req.ImageURL)
	case "remove_image":
		if req.Index == nil {
			return errors.New("index is required")
		}
		return sell.RemoveImage(draft, *req.Index)
	case "reorder_images":
		if req.From == nil || req.To == nil {
			return errors.New("from and to are required")
		}
		return sell.ReorderImages(draft, *req.From, *req.To)
	case "set_description":
		if req.Description == nil {
			return errors.New("description is required")
		}
		return sell.SetDescription(draft, *req.Description)
	case "set_price":
		if req.Price == nil {
			return errors.New("price is required")
		}
		sell.SetPrice(draft, *req.Price)
	case "set_negotiable":
		if req.Negotiable == nil {
			return errors.New("negotiable is required")
		}
		sell.SetNegotiable(draft, *req.Negotiable)
	default:
		return errors.New("unknown action: " + req.Action)
	}
	return nil
}

// ResetDraft clears every field and returns to step 1.
// DELETE /api/v1/drafts/me
func ResetDraft(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := loadOrCreateDraft(db, c.GetString("user_id"))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}
		sell.Reset(&draft)
		if err := db.Save(&draft).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to reset draft")
			return
		}
		response.OK(c, http.StatusOK, draft)
	}
}

// PublishDraft re-validates every gate, creates the listing and discards
// the draft, all in one transaction.
// POST /api/v1/drafts/me/publish
func PublishDraft(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var draft models.SellDraft
		if err := db.Where("user_id = ?", userID).First(&draft).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, response.CodeNotFound, "No draft to publish")
			} else {
				response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			}
			return
		}

		if err := sell.ValidateForPublish(&draft); err != nil {
			var blockedErr *sell.BlockedError
			if errors.As(err, &blockedErr) {
				response.Error(c, http.StatusBadRequest, response.CodeValidation, blockedErr.Message)
			} else {
				response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			}
			return
		}

		info := draft.VehicleInfo.Data()
		now := time.Now()
		listing := models.Listing{
			ID:              uuid.NewString(),
			SellerID:        userID,
			Title:           listingcontroller.BuildTitle(info.Year, info.Make, info.Model, info.Variant),
			Make:            info.Make,
			Model:           info.Model,
			Variant:         info.Variant,
			Year:            info.Year,
			Mileage:         info.Mileage,
			Price:           draft.Price,
			PriceNegotiable: draft.PriceNegotiable,
			Description:     draft.Description,
			FuelType:        info.FuelType,
			Transmission:    info.Transmission,
			BodyType:        info.BodyType,
			Color:           info.Color,
			EngineSize:      info.EngineSize,
			Region:          info.Region,
			PlateNumber:     draft.PlateNumber,
			WOFExpiry:       info.WOFExpiry,
			RegoExpiry:      info.RegoExpiry,
			Status:          models.ListingStatusActive,
			PriceHistory:    []models.PriceHistory{{Price: draft.Price, RecordedAt: now}},
		}
		for i, url := range draft.Images {
			listing.Images = append(listing.Images, models.ListingImage{
				ID:           uuid.NewString(),
				URL:          url,
				DisplayOrder: i,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&listing).Error; err != nil {
				return err
			}
			return tx.Delete(&draft).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to publish listing")
			return
		}

		response.OK(c, http.StatusCreated, listing)
	}
}
