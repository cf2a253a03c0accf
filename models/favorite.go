package models

import "time"

// Favorite links a user to a listing. The composite unique index enforces
// at most one favorite per (user, listing) pair.
type Favorite struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"uniqueIndex:idx_user_listing;not null" json:"userId"`
	ListingID         string    `gorm:"uniqueIndex:idx_user_listing;not null" json:"listingId"`
	Listing           *Listing  `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
	PriceAlertEnabled bool      `json:"priceAlertEnabled"`
	TargetPrice       *int      `json:"targetPrice,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
