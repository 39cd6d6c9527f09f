// internal/models/portfolio.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PortfolioItem is a priced, titled unit of an artisan's published
// portfolio, orderable by customers.
type PortfolioItem struct {
	BaseModel
	ArtisanID   uuid.UUID       `json:"artisan_id" gorm:"type:uuid;not null;index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"size:1000"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CoverImage  string          `json:"cover_image" gorm:"size:512"`

	Artisan *User `json:"artisan,omitempty" gorm:"foreignKey:ArtisanID"`
}
