package aicontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/pricing"
	"github.com/kiwicar-nz/marketplace-api/response"
)

// GetPricing estimates a market price band for a vehicle.
// GET /api/v1/ai/pricing?make=&model=&year=&mileage=
func GetPricing(estimator pricing.Estimator) gin.HandlerFunc {
	return func(c *gin.Context) {
		carMake := c.Query("make")
		carModel := c.Query("model")
		if carMake == "" || carModel == "" {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "make and model are required")
			return
		}
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid year")
			return
		}
		mileage, err := strconv.Atoi(c.DefaultQuery("mileage", "0"))
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid mileage")
			return
		}

		estimate, err := estimator.EstimatePrice(carMake, carModel, year, mileage)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Pricing service unavailable")
			return
		}

		response.OK(c, http.StatusOK, estimate)
	}
}

// GenerateDescription produces listing copy from vehicle facts.
// POST /api/v1/ai/generate-description
func GenerateDescription(describer pricing.Describer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info models.DraftVehicleInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid input: "+err.Error())
			return
		}
		if info.Make == "" || info.Model == "" {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "make and model are required")
			return
		}

		text, err := describer.GenerateDescription(info)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Description service unavailable")
			return
		}

		response.OK(c, http.StatusOK, gin.H{"description": text})
	}
}
