// internal/models/comment.go
package models

import (
	"github.com/google/uuid"
)

// PortfolioComment is customer feedback left on a single portfolio
// image. Images are identified by their URL so comments survive the
// item being re-listed.
type PortfolioComment struct {
	BaseModel
	ArtisanID  uuid.UUID `json:"artisan_id" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null"`
	ImageURL   string    `json:"image_url" gorm:"size:512;not null;index"`
	Comment    string    `json:"comment" gorm:"size:500;not null"`

	Customer *User `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
