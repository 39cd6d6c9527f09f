// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleArtisan  UserRole = "artisan"
	RoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type OrderKind string

const (
	OrderKindPortfolio OrderKind = "portfolio_order"
	OrderKindCustom    OrderKind = "custom_request"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusOfferMade OrderStatus = "offer_made"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether the negotiation is settled. A terminal
// order cannot be cancelled or re-priced; the artisan may still move
// an accepted order to completed.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusAccepted, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationTypeBooking      NotificationType = "booking"
	NotificationTypeStatusUpdate NotificationType = "status_update"
	NotificationTypeOffer        NotificationType = "offer"
	NotificationTypeReview       NotificationType = "review"
	NotificationTypeComment      NotificationType = "comment"
	NotificationTypeSystemAlert  NotificationType = "system_alert"
)
