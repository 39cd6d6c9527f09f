// internal/services/review_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
	"github.com/HamzaJabari/craftopia-backend/internal/utils"
)

type ReviewService struct {
	db            *gorm.DB
	catalog       *CatalogService
	notifications *NotificationService
}

type CreateReviewRequest struct {
	ArtisanID uuid.UUID `json:"artisan_id" validate:"required"`
	Stars     int       `json:"stars" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment,omitempty" validate:"max=1000"`
}

func NewReviewService(db *gorm.DB, catalog *CatalogService, notifications *NotificationService) *ReviewService {
	return &ReviewService{
		db:            db,
		catalog:       catalog,
		notifications: notifications,
	}
}

func (s *ReviewService) CreateReview(customerID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	var customer models.User
	if err := s.db.First(&customer, "id = ?", customerID).Error; err != nil {
		return nil, fmt.Errorf("%w: customer", ErrNotFound)
	}

	if _, err := s.catalog.GetArtisan(req.ArtisanID); err != nil {
		return nil, err
	}

	review := &models.Review{
		CustomerID: customerID,
		ArtisanID:  req.ArtisanID,
		Stars:      req.Stars,
		Comment:    req.Comment,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeAverageRating(req.ArtisanID); err != nil {
		return nil, err
	}

	s.notifications.Deliver(&models.Notification{
		RecipientID:   req.ArtisanID,
		RecipientRole: models.RoleArtisan,
		SenderID:      customerID,
		SenderRole:    models.RoleCustomer,
		Message:       fmt.Sprintf("You received a new %d-star review from %s", req.Stars, customer.Name),
		Type:          models.NotificationTypeReview,
	})

	return review, nil
}

var reviewSortFields = []string{"created_at", "stars"}

func (s *ReviewService) ListForArtisan(artisanID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error) {
	var total int64
	err := s.db.Model(&models.Review{}).
		Where("artisan_id = ?", artisanID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := s.db.Where("artisan_id = ?", artisanID).Preload("Customer")
	query = utils.ApplyPagination(utils.ApplySort(query, params, reviewSortFields), params)

	var reviews []models.Review
	err = query.Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, total, nil
}

func (s *ReviewService) recomputeAverageRating(artisanID uuid.UUID) error {
	var avg float64
	err := s.db.Model(&models.Review{}).
		Where("artisan_id = ?", artisanID).
		Select("COALESCE(AVG(stars), 0)").
		Scan(&avg).Error
	if err != nil {
		return fmt.Errorf("failed to compute average rating: %w", err)
	}

	err = s.db.Model(&models.User{}).
		Where("id = ?", artisanID).
		Update("average_rating", avg).Error
	if err != nil {
		return fmt.Errorf("failed to update average rating: %w", err)
	}
	return nil
}
