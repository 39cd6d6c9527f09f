// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the central negotiation entity between a customer and an
// artisan. Prices are always computed server-side; after any committed
// write, TotalPrice == UnitPrice * Quantity.
type Order struct {
	BaseModel
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	ArtisanID  uuid.UUID `json:"artisan_id" gorm:"type:uuid;not null;index"`
	Kind       OrderKind `json:"kind" gorm:"type:varchar(20);not null"`

	// Set iff Kind == portfolio_order. Snapshot reference into the
	// artisan's catalog at order time.
	CatalogItemID *uuid.UUID `json:"catalog_item_id,omitempty" gorm:"type:uuid"`

	// Denormalized display data, survives later catalog edits/deletes.
	Title      string `json:"title" gorm:"size:255;not null"`
	CoverImage string `json:"cover_image" gorm:"size:512"`

	Quantity   int             `json:"quantity" gorm:"not null;default:1"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`

	Note         string      `json:"note" gorm:"type:text"`
	Status       OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	DeliveryDate *time.Time  `json:"delivery_date,omitempty"`

	Customer *User `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Artisan  *User `json:"artisan,omitempty" gorm:"foreignKey:ArtisanID"`
}
