package vehiclecontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/plates"
	"github.com/kiwicar-nz/marketplace-api/response"
	"github.com/kiwicar-nz/marketplace-api/vehiclelookup"
)

// GetVehicle is the cache-first plate lookup.
// GET /api/v1/vehicles/:plateNumber
func GetVehicle(svc *vehiclelookup.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		plate := plates.Normalize(c.Param("plateNumber"))
		if !plates.Valid(plate) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid plate number format")
			return
		}

		record, cached, err := svc.Lookup(plate)
		if err != nil {
			if errors.Is(err, vehiclelookup.ErrNotFound) {
				response.Error(c, http.StatusNotFound, response.CodeNotFound,
					"Vehicle not found. Please check the plate number and try again.")
			} else {
				response.Error(c, http.StatusInternalServerError, response.CodeDBError, err.Error())
			}
			return
		}

		response.OK(c, http.StatusOK, gin.H{"vehicle": record, "cached": cached})
	}
}
