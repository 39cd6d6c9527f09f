// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

type CatalogService struct {
	db *gorm.DB
}

// CatalogItemSnapshot is the priced, titled view of a portfolio item
// captured at order time.
type CatalogItemSnapshot struct {
	ItemID     uuid.UUID
	Title      string
	Price      decimal.Decimal
	CoverImage string
}

type CreatePortfolioItemRequest struct {
	Title       string          `json:"title" validate:"required,max=255"`
	Description string          `json:"description,omitempty" validate:"max=1000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	CoverImage  string          `json:"cover_image,omitempty" validate:"max=512"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// GetArtisan resolves an id to an existing, active artisan account.
func (s *CatalogService) GetArtisan(artisanID uuid.UUID) (*models.User, error) {
	var artisan models.User
	err := s.db.Where("id = ? AND role = ?", artisanID, models.RoleArtisan).First(&artisan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: artisan", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &artisan, nil
}

// ListArtisans is the public directory, optionally filtered by craft
// type and a case-insensitive location substring.
func (s *CatalogService) ListArtisans(craftType, location string) ([]models.User, error) {
	query := s.db.Where("role = ? AND status = ?", models.RoleArtisan, models.UserStatusActive)
	if craftType != "" {
		query = query.Where("craft_type = ?", craftType)
	}
	if location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var artisans []models.User
	if err := query.Order("average_rating DESC").Find(&artisans).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch artisans: %w", err)
	}
	return artisans, nil
}

// GetItem resolves a portfolio item in the given artisan's catalog to
// a priced snapshot.
func (s *CatalogService) GetItem(artisanID, itemID uuid.UUID) (*CatalogItemSnapshot, error) {
	var item models.PortfolioItem
	err := s.db.Where("id = ? AND artisan_id = ?", itemID, artisanID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: catalog item", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &CatalogItemSnapshot{
		ItemID:     item.ID,
		Title:      item.Title,
		Price:      item.Price,
		CoverImage: item.CoverImage,
	}, nil
}

func (s *CatalogService) CreateItem(artisanID uuid.UUID, req *CreatePortfolioItemRequest) (*models.PortfolioItem, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	item := &models.PortfolioItem{
		ArtisanID:   artisanID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CoverImage:  req.CoverImage,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return item, nil
}

func (s *CatalogService) ListItems(artisanID uuid.UUID) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := s.db.Where("artisan_id = ?", artisanID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch portfolio items: %w", err)
	}
	return items, nil
}

func (s *CatalogService) DeleteItem(artisanID, itemID uuid.UUID) error {
	res := s.db.Where("id = ? AND artisan_id = ?", itemID, artisanID).
		Delete(&models.PortfolioItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: catalog item", ErrNotFound)
	}
	return nil
}
