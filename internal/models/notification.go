// internal/models/notification.go
package models

import (
	"github.com/google/uuid"
)

// Notification is a one-way message to a recipient. Recipient and
// sender are (id, role) pairs so the inbox never needs to resolve
// which account table an id lives in.
type Notification struct {
	BaseModel
	RecipientID   uuid.UUID        `json:"recipient_id" gorm:"type:uuid;not null;index"`
	RecipientRole UserRole         `json:"recipient_role" gorm:"type:varchar(20);not null"`
	SenderID      uuid.UUID        `json:"sender_id" gorm:"type:uuid;not null"`
	SenderRole    UserRole         `json:"sender_role" gorm:"type:varchar(20);not null"`
	Message       string           `json:"message" gorm:"size:500;not null"`
	Type          NotificationType `json:"type" gorm:"type:varchar(20);not null"`
	IsRead        bool             `json:"is_read" gorm:"default:false"`
}
