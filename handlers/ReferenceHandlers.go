package handlers

import (
	"net/http"

	"citylockers/models"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler godoc
// @Summary      Get reference data
// @Description  Returns the static lookup tables: locations, property types, transfer periods, airports, locker specs and market pricing.
// @Tags         reference
// @Produce      json
// @Success      200  {object}  models.ReferenceResponse
// @Router       /api/reference [get]
func ReferenceHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.ReferenceResponse{
		Currency:         models.Currency,
		Locations:        models.Locations,
		PropertyTypes:    models.PropertyTypes,
		TransferPeriods:  models.TransferPeriods,
		Airports:         models.UAEAirports,
		LockerSpecs:      models.LockerSpecs,
		PricingReference: models.PricingReference,
	})
}
