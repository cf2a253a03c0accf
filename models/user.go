package models

import "time"

// User carries the public seller profile. The ID is the auth provider's
// subject; identity issuance happens outside this service.
type User struct {
	ID                  string    `gorm:"primaryKey" json:"id"`
	Email               string    `gorm:"unique" json:"email"`
	Nickname            string    `json:"nickname"`
	Phone               string    `json:"phone,omitempty"`
	Avatar              string    `json:"avatar,omitempty"`
	Region              string    `json:"region"`
	ShowPhoneOnListings bool      `json:"showPhoneOnListings"`
	CreatedAt           time.Time `json:"createdAt"`
}

// SellerProfile is the subset of User exposed on listing detail pages.
// Phone is included only when the seller opted in.
type SellerProfile struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar,omitempty"`
	Region   string `json:"region"`
	Phone    string `json:"phone,omitempty"`
}

func (u User) PublicProfile() SellerProfile {
	p := SellerProfile{
		ID:       u.ID,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Region:   u.Region,
	}
	if u.ShowPhoneOnListings {
		p.Phone = u.Phone
	}
	return p
}
