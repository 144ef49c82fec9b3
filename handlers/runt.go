package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrikiApp/briki-api/services"
	"github.com/BrikiApp/briki-api/utils"
)

type RuntHandler struct {
	Runt *services.RuntService
}

// GetVehicle handles GET /runt/vehicle/:plate.
func (h *RuntHandler) GetVehicle(c *gin.Context) {
	plate := c.Param("plate")

	vehicle, err := h.Runt.Lookup(c.Request.Context(), plate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPlate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plate format"})
		case errors.Is(err, services.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		default:
			utils.LogError("RUNT lookup for %s failed: %v", utils.MaskPlate(plate), err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Vehicle registry is unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
