// internal/models/availability.go
package models

import (
	"github.com/google/uuid"
)

// Availability is a weekly working slot published by an artisan.
type Availability struct {
	BaseModel
	ArtisanID uuid.UUID `json:"artisan_id" gorm:"type:uuid;not null;index"`
	Day       string    `json:"day" gorm:"size:20;not null"`
	StartTime string    `json:"start_time" gorm:"size:10;not null"`
	EndTime   string    `json:"end_time" gorm:"size:10;not null"`
}
