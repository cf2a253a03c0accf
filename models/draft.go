package models

import (
	"time"

	"gorm.io/datatypes"
)

// Draft wizard steps.
const (
	StepVehicleInfo = 1
	StepPhotos      = 2
	StepDescription = 3
	StepPricing     = 4
	StepPreview     = 5
)

// DraftVehicleInfo is the partial plate-lookup result accumulated at step 1.
// Fields stay optional because the user may fall back to manual entry.
type DraftVehicleInfo struct {
	Make            string       `json:"make,omitempty"`
	Model           string       `json:"model,omitempty"`
	Variant         string       `json:"variant,omitempty"`
	Year            int          `json:"year,omitempty"`
	Mileage         int          `json:"mileage,omitempty"`
	EngineSize      string       `json:"engineSize,omitempty"`
	FuelType        FuelType     `json:"fuelType,omitempty"`
	Transmission    Transmission `json:"transmission,omitempty"`
	BodyType        BodyType     `json:"bodyType,omitempty"`
	Color           string       `json:"color,omitempty"`
	Region          string       `json:"region,omitempty"`
	WOFExpiry       string       `json:"wofExpiry,omitempty"`
	RegoExpiry      string       `json:"regoExpiry,omitempty"`
	FirstRegistered string       `json:"firstRegistered,omitempty"`
}

// SellDraft is the server-persisted state of the sell wizard, one row per
// user, so a reload or another device resumes where the seller left off.
// Discarded on publish or reset.
type SellDraft struct {
	ID              uint                                   `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID          string                                 `gorm:"uniqueIndex;not null" json:"-"`
	Step            int                                    `gorm:"default:1" json:"step"`
	PlateNumber     string                                 `json:"plateNumber,omitempty"`
	VehicleInfo     datatypes.JSONType[DraftVehicleInfo]   `json:"vehicleInfo"`
	Images          datatypes.JSONSlice[string]            `json:"images"`
	Description     string                                 `json:"description,omitempty"`
	Price           int                                    `json:"price,omitempty"`
	PriceNegotiable bool                                   `json:"priceNegotiable"`
	UpdatedAt       time.Time                              `json:"updatedAt"`
}
