// internal/handlers/artisan.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HamzaJabari/craftopia-backend/internal/middleware"
	"github.com/HamzaJabari/craftopia-backend/internal/services"
	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

type ArtisanHandler struct {
	catalogService *services.CatalogService
}

func NewArtisanHandler(catalogService *services.CatalogService) *ArtisanHandler {
	return &ArtisanHandler{catalogService: catalogService}
}

// GET /artisans?craft_type=&location=
func (h *ArtisanHandler) ListArtisans(c *gin.Context) {
	artisans, err := h.catalogService.ListArtisans(c.Query("craft_type"), c.Query("location"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"artisans": artisans})
}

// GET /artisans/:id
func (h *ArtisanHandler) GetArtisan(c *gin.Context) {
	artisanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid artisan ID", nil)
		return
	}

	artisan, err := h.catalogService.GetArtisan(artisanID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"artisan": artisan})
}

// GET /artisans/:id/portfolio
func (h *ArtisanHandler) ListPortfolio(c *gin.Context) {
	artisanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid artisan ID", nil)
		return
	}

	items, err := h.catalogService.ListItems(artisanID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"items": items})
}

// POST /portfolio
func (h *ArtisanHandler) CreatePortfolioItem(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	item, err := h.catalogService.CreateItem(actor.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"item": item})
}

// DELETE /portfolio/:id
func (h *ArtisanHandler) DeletePortfolioItem(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid item ID", nil)
		return
	}

	if err := h.catalogService.DeleteItem(actor.ID, itemID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Portfolio item deleted"})
}
