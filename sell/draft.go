// Package sell holds the sell-wizard state machine: pure transition
// functions over a draft snapshot. Persistence happens at the handler
// boundary, never in here.
package sell

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/plates"
	"gorm.io/datatypes"
)

const (
	MinImages      = 3
	MaxImages      = 10
	MinDescription = 50
	MaxDescription = 1000
	MinPrice       = 1000
)

// BlockedError is a step gate that failed. It carries the user-facing
// message; advancing is blocked, never reverted, and nothing panics.
type BlockedError struct {
	Step    int
	Message string
}

func (e *BlockedError) Error() string { return e.Message }

func blocked(step int, format string, args ...interface{}) error {
	return &BlockedError{Step: step, Message: fmt.Sprintf(format, args...)}
}

// NewDraft returns a fresh step-1 draft for a user.
func NewDraft(userID string) models.SellDraft {
	return models.SellDraft{UserID: userID, Step: models.StepVehicleInfo}
}

// SetStep moves the wizard to any step. Backward jumps (edit from preview)
// are always allowed and never re-validate; moving forward re-checks the
// gate of every step being skipped over.
func SetStep(d *models.SellDraft, step int) error {
	if step < models.StepVehicleInfo || step > models.StepPreview {
		return blocked(d.Step, "unknown step %d", step)
	}
	for s := d.Step; s < step; s++ {
		if err := canAdvanceFrom(d, s); err != nil {
			return err
		}
	}
	d.Step = step
	return nil
}

// canAdvanceFrom checks the gate for leaving a step in the forward direction.
func canAdvanceFrom(d *models.SellDraft, step int) error {
	switch step {
	case models.StepVehicleInfo:
		// Lookup failure falls back to manual entry, so step 1 never blocks.
		return nil
	case models.StepPhotos:
		if len(d.Images) < MinImages {
			return blocked(step, "Please upload at least %d photos", MinImages)
		}
		if len(d.Images) > MaxImages {
			return blocked(step, "Maximum %d images allowed", MaxImages)
		}
		return nil
	case models.StepDescription:
		if utf8.RuneCountInString(strings.TrimSpace(d.Description)) < MinDescription {
			return blocked(step, "Description must be at least %d characters", MinDescription)
		}
		return nil
	case models.StepPricing:
		if d.Price < MinPrice {
			return blocked(step, "Please enter a valid price (minimum $%d)", MinPrice)
		}
		return nil
	default:
		return nil
	}
}

// SetPlate stores the canonical form of the plate so lookups and the
// published listing agree on it.
func SetPlate(d *models.SellDraft, plate string) {
	d.PlateNumber = plates.Normalize(plate)
}

// MergeVehicleInfo overlays the non-zero fields of info onto the draft's
// partial record, so a lookup result and manual corrections can coexist.
func MergeVehicleInfo(d *models.SellDraft, info models.DraftVehicleInfo) {
	cur := d.VehicleInfo.Data()
	if info.Make != "" {
		cur.Make = info.Make
	}
	if info.Model != "" {
		cur.Model = info.Model
	}
	if info.Variant != "" {
		cur.Variant = info.Variant
	}
	if info.Year != 0 {
		cur.Year = info.Year
	}
	if info.Mileage != 0 {
		cur.Mileage = info.Mileage
	}
	if info.EngineSize != "" {
		cur.EngineSize = info.EngineSize
	}
	if info.FuelType != "" {
		cur.FuelType = info.FuelType
	}
	if info.Transmission != "" {
		cur.Transmission = info.Transmission
	}
	if info.BodyType != "" {
		cur.BodyType = info.BodyType
	}
	if info.Color != "" {
		cur.Color = info.Color
	}
	if info.Region != "" {
		cur.Region = info.Region
	}
	if info.WOFExpiry != "" {
		cur.WOFExpiry = info.WOFExpiry
	}
	if info.RegoExpiry != "" {
		cur.RegoExpiry = info.RegoExpiry
	}
	if info.FirstRegistered != "" {
		cur.FirstRegistered = info.FirstRegistered
	}
	d.VehicleInfo = datatypes.NewJSONType(cur)
}

// AddImage appends an image reference. Position 0 is the cover image.
func AddImage(d *models.SellDraft, url string) error {
	if len(d.Images) >= MaxImages {
		return blocked(models.StepPhotos, "Maximum %d images allowed", MaxImages)
	}
	d.Images = append(d.Images, url)
	return nil
}

// RemoveImage deletes by index. Dropping below the minimum does not
// retroactively change the current step; it only blocks re-advancing.
func RemoveImage(d *models.SellDraft, index int) error {
	if index < 0 || index >= len(d.Images) {
		return blocked(models.StepPhotos, "No image at position %d", index)
	}
	d.Images = append(d.Images[:index], d.Images[index+1:]...)
	return nil
}

// ReorderImages swaps two positions.
func ReorderImages(d *models.SellDraft, from, to int) error {
	n := len(d.Images)
	if from < 0 || from >= n || to < 0 || to >= n {
		return blocked(models.StepPhotos, "Invalid image positions %d, %d", from, to)
	}
	d.Images[from], d.Images[to] = d.Images[to], d.Images[from]
	return nil
}

// SetDescription applies the hard input cap; the minimum is only checked
// when advancing past step 3.
func SetDescription(d *models.SellDraft, text string) error {
	if utf8.RuneCountInString(text) > MaxDescription {
		return blocked(models.StepDescription, "Description cannot exceed %d characters", MaxDescription)
	}
	d.Description = text
	return nil
}

func SetPrice(d *models.SellDraft, price int) {
	d.Price = price
}

func SetNegotiable(d *models.SellDraft, negotiable bool) {
	d.PriceNegotiable = negotiable
}

// Reset clears every field and returns to step 1.
func Reset(d *models.SellDraft) {
	*d = models.SellDraft{ID: d.ID, UserID: d.UserID, Step: models.StepVehicleInfo}
}

// ValidateForPublish re-runs every gate before the draft becomes a listing.
func ValidateForPublish(d *models.SellDraft) error {
	for s := models.StepVehicleInfo; s < models.StepPreview; s++ {
		if err := canAdvanceFrom(d, s); err != nil {
			return err
		}
	}
	info := d.VehicleInfo.Data()
	if info.Make == "" || info.Model == "" || info.Year == 0 {
		return blocked(models.StepVehicleInfo, "Vehicle make, model and year are required")
	}
	return nil
}
