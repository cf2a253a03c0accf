package models

import (
	"time"

	"gorm.io/gorm"
)

type ListingStatus string
type FuelType string
type Transmission string
type BodyType string

const (
	// Listing lifecycle
	ListingStatusActive  ListingStatus = "active"  // Publicly searchable
	ListingStatusSold    ListingStatus = "sold"    // Kept for the seller's records
	ListingStatusRemoved ListingStatus = "removed" // Taken down by the seller

	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"

	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

// Body types as used by the NZ market listings.
const (
	BodySedan       BodyType = "sedan"
	BodySUV         BodyType = "suv"
	BodyHatchback   BodyType = "hatchback"
	BodyWagon       BodyType = "wagon"
	BodyUte         BodyType = "ute"
	BodyVan         BodyType = "van"
	BodyCoupe       BodyType = "coupe"
	BodyConvertible BodyType = "convertible"
)

type Listing struct {
	ID              string         `gorm:"primaryKey" json:"id"`
	SellerID        string         `gorm:"index;not null" json:"sellerId"`
	Title           string         `json:"title"`
	Make            string         `gorm:"not null;index" json:"make"`
	Model           string         `gorm:"not null;index" json:"model"`
	Variant         string         `json:"variant,omitempty"`
	Year            int            `gorm:"not null" json:"year"`
	Mileage         int            `json:"mileage"`
	Price           int            `gorm:"not null" json:"price"` // NZD, whole dollars
	PriceNegotiable bool           `json:"priceNegotiable"`
	Description     string         `json:"description"`
	FuelType        FuelType       `gorm:"type:VARCHAR(20)" json:"fuelType"`
	Transmission    Transmission   `gorm:"type:VARCHAR(20)" json:"transmission"`
	BodyType        BodyType       `gorm:"type:VARCHAR(20)" json:"bodyType"`
	Color           string         `json:"color"`
	EngineSize      string         `json:"engineSize"`
	Region          string         `gorm:"index" json:"region"`
	PlateNumber     string         `json:"plateNumber,omitempty"`
	WOFExpiry       string         `json:"wofExpiry,omitempty"`
	RegoExpiry      string         `json:"regoExpiry,omitempty"`
	Status          ListingStatus  `gorm:"type:VARCHAR(20);default:'active';index" json:"status"`
	ViewCount       int            `json:"viewCount"`
	Images          []ListingImage `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	PriceHistory    []PriceHistory `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"priceHistory,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

type ListingImage struct {
	ID           string `gorm:"primaryKey" json:"id"`
	ListingID    string `gorm:"index;not null" json:"listingId"`
	URL          string `gorm:"not null" json:"url"`
	DisplayOrder int    `json:"displayOrder"` // 0 is the cover image; ties keep input order
}

// PriceHistory is append-only: a price change adds a row, never rewrites one.
type PriceHistory struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ListingID  string    `gorm:"index;not null" json:"listingId"`
	Price      int       `gorm:"not null" json:"price"`
	RecordedAt time.Time `json:"recordedAt"`
}

func ValidListingStatus(s string) (ListingStatus, bool) {
	switch ListingStatus(s) {
	case ListingStatusActive, ListingStatusSold, ListingStatusRemoved:
		return ListingStatus(s), true
	default:
		return "", false
	}
}
