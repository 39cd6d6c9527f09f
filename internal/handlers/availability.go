// internal/handlers/availability.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HamzaJabari/craftopia-backend/internal/middleware"
	"github.com/HamzaJabari/craftopia-backend/internal/services"
	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

type AvailabilityHandler struct {
	availabilityService *services.AvailabilityService
}

func NewAvailabilityHandler(availabilityService *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// POST /availability
func (h *AvailabilityHandler) SetAvailability(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	slot, err := h.availabilityService.SetSlot(actor.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"availability": slot})
}

// GET /availability/:artisanId
func (h *AvailabilityHandler) GetSchedule(c *gin.Context) {
	artisanID, err := uuid.Parse(c.Param("artisanId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid artisan ID", nil)
		return
	}

	schedule, err := h.availabilityService.GetSchedule(artisanID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"schedule": schedule})
}

// DELETE /availability/slots/:id
func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid slot ID", nil)
		return
	}

	if err := h.availabilityService.DeleteSlot(actor.ID, slotID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Availability slot deleted"})
}
