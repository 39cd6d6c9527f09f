// internal/services/gallery_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

const feedLimit = 50

type GalleryService struct {
	db            *gorm.DB
	catalog       *CatalogService
	notifications *NotificationService
}

// GalleryEntry is one card of the public discovery feed: a portfolio
// image with just enough artisan context to render it.
type GalleryEntry struct {
	ImageURL    string    `json:"image_url"`
	ItemID      uuid.UUID `json:"item_id" gorm:"column:item_id"`
	Title       string    `json:"title"`
	ArtisanID   uuid.UUID `json:"artisan_id" gorm:"column:artisan_id"`
	ArtisanName string    `json:"artisan_name" gorm:"column:artisan_name"`
	CraftType   string    `json:"craft_type"`
}

type CreateCommentRequest struct {
	ArtisanID uuid.UUID `json:"artisan_id" validate:"required"`
	ImageURL  string    `json:"image_url" validate:"required,max=512"`
	Comment   string    `json:"comment" validate:"required,max=500"`
}

func NewGalleryService(db *gorm.DB, catalog *CatalogService, notifications *NotificationService) *GalleryService {
	return &GalleryService{
		db:            db,
		catalog:       catalog,
		notifications: notifications,
	}
}

// Feed returns a shuffled sample of portfolio images across all
// artisans for the gallery page.
func (s *GalleryService) Feed() ([]GalleryEntry, error) {
	var entries []GalleryEntry
	err := s.db.Model(&models.PortfolioItem{}).
		Select("portfolio_items.cover_image AS image_url, portfolio_items.id AS item_id, portfolio_items.title, "+
			"users.id AS artisan_id, users.name AS artisan_name, users.craft_type").
		Joins("JOIN users ON users.id = portfolio_items.artisan_id AND users.deleted_at IS NULL").
		Where("portfolio_items.cover_image <> ''").
		Order("RANDOM()").
		Limit(feedLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery feed: %w", err)
	}
	return entries, nil
}

// CreateComment stores customer feedback on a portfolio image and
// notifies the artisan.
func (s *GalleryService) CreateComment(customerID uuid.UUID, req *CreateCommentRequest) (*models.PortfolioComment, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetArtisan(req.ArtisanID); err != nil {
		return nil, err
	}

	comment := &models.PortfolioComment{
		ArtisanID:  req.ArtisanID,
		CustomerID: customerID,
		ImageURL:   req.ImageURL,
		Comment:    req.Comment,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.notifications.Deliver(&models.Notification{
		RecipientID:   req.ArtisanID,
		RecipientRole: models.RoleArtisan,
		SenderID:      customerID,
		SenderRole:    models.RoleCustomer,
		Message:       fmt.Sprintf("New comment on your portfolio: %q", truncate(req.Comment, 20)),
		Type:          models.NotificationTypeComment,
	})

	return comment, nil
}

// ListComments returns the comments on one image, newest first.
func (s *GalleryService) ListComments(imageURL string) ([]models.PortfolioComment, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrInvalidInput)
	}

	var comments []models.PortfolioComment
	err := s.db.Where("image_url = ?", imageURL).
		Preload("Customer").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	return comments, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
