package usercontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

type UpdateProfileRequest struct {
	Email               *string `json:"email"`
	Nickname            *string `json:"nickname"`
	Phone               *string `json:"phone"`
	Avatar              *string `json:"avatar"`
	Region              *string `json:"region"`
	ShowPhoneOnListings *bool   `json:"showPhoneOnListings"`
}

// GetMe returns the caller's profile.
// GET /api/v1/users/me
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusNotFound, response.CodeNotFound, "Profile not set up yet")
			} else {
				response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			}
			return
		}

		response.OK(c, http.StatusOK, user)
	}
}

// UpdateMe upserts the caller's profile row, keyed by the auth subject.
// PUT /api/v1/users/me
func UpdateMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}

		var user models.User
		err := db.First(&user, "id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{ID: userID}
			err = nil
		}
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			return
		}

		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.Nickname != nil {
			user.Nickname = *req.Nickname
		}
		if req.Phone != nil {
			user.Phone = *req.Phone
		}
		if req.Avatar != nil {
			user.Avatar = *req.Avatar
		}
		if req.Region != nil {
			user.Region = *req.Region
		}
		if req.ShowPhoneOnListings != nil {
			user.ShowPhoneOnListings = *req.ShowPhoneOnListings
		}

		if err := db.Save(&user).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeDBError, "Failed to save profile")
			return
		}

		response.OK(c, http.StatusOK, user)
	}
}
