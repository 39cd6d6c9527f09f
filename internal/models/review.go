// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	ArtisanID  uuid.UUID `json:"artisan_id" gorm:"type:uuid;not null;index"`
	Stars      int       `json:"stars" gorm:"not null"`
	Comment    string    `json:"comment" gorm:"size:1000"`

	Customer *User `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
