// internal/handlers/gallery.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HamzaJabari/craftopia-backend/internal/middleware"
	"github.com/HamzaJabari/craftopia-backend/internal/services"
	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

type GalleryHandler struct {
	galleryService *services.GalleryService
}

func NewGalleryHandler(galleryService *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// GET /portfolio/feed
func (h *GalleryHandler) GetFeed(c *gin.Context) {
	feed, err := h.galleryService.Feed()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"feed": feed})
}

// POST /portfolio/comment
func (h *GalleryHandler) CreateComment(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	comment, err := h.galleryService.CreateComment(actor.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"comment": comment})
}

// GET /portfolio/comments?image_url=...
func (h *GalleryHandler) ListComments(c *gin.Context) {
	comments, err := h.galleryService.ListComments(c.Query("image_url"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"comments": comments})
}
