// internal/services/order_service.go
//
// OrderService owns the order negotiation state machine. It is the
// only writer of an order's status and price fields; the catalog is
// read-only and notifications are write-only from its point of view.
//
// Status transitions:
//
//	pending ──(artisan sets price, custom request)──> offer_made
//	offer_made ──(customer accept)──> accepted
//	offer_made ──(customer reject)──> cancelled
//	offer_made ──(customer negotiate)──> pending       (note appended)
//	pending ──(artisan, portfolio order)──> accepted
//	pending/offer_made ──(artisan)──> completed | cancelled
//	accepted ──(artisan)──> completed
//	pending/offer_made ──(customer cancel)──> cancelled
//
// completed and cancelled are final. accepted is final for the
// customer; the artisan can still complete it.
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

type OrderService struct {
	db            *gorm.DB
	catalog       *CatalogService
	notifications *NotificationService
}

type CreateOrderRequest struct {
	ArtisanID uuid.UUID `json:"artisan_id" validate:"required"`

	// Portfolio order fields
	CatalogItemID *uuid.UUID `json:"catalog_item_id,omitempty"`
	Quantity      int        `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Note          string     `json:"note,omitempty" validate:"max=500"`

	// Custom request fields
	Title          string     `json:"title,omitempty" validate:"max=255"`
	ReferenceImage string     `json:"reference_image,omitempty" validate:"max=512"`
	DeliveryDate   *time.Time `json:"delivery_date,omitempty"`
}

type ArtisanUpdateRequest struct {
	Status string           `json:"status,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
}

type CustomerResponseRequest struct {
	Action string `json:"action" validate:"required,oneof=accept reject negotiate"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

func NewOrderService(db *gorm.DB, catalog *CatalogService, notifications *NotificationService) *OrderService {
	return &OrderService{
		db:            db,
		catalog:       catalog,
		notifications: notifications,
	}
}

// CreateOrder creates a pending order for a customer: either a
// portfolio order priced from the current catalog item, or a custom
// request whose price is negotiated later. Client-supplied prices are
// always ignored.
func (s *OrderService) CreateOrder(customerID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetArtisan(req.ArtisanID); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order := &models.Order{
		CustomerID:   customerID,
		ArtisanID:    req.ArtisanID,
		Quantity:     quantity,
		Note:         req.Note,
		Status:       models.OrderStatusPending,
		DeliveryDate: req.DeliveryDate,
	}

	var message string
	if req.CatalogItemID != nil {
		snapshot, err := s.catalog.GetItem(req.ArtisanID, *req.CatalogItemID)
		if err != nil {
			return nil, err
		}

		order.Kind = models.OrderKindPortfolio
		order.CatalogItemID = &snapshot.ItemID
		order.Title = snapshot.Title
		order.CoverImage = snapshot.CoverImage
		order.UnitPrice = snapshot.Price
		order.TotalPrice = snapshot.Price.Mul(decimal.NewFromInt(int64(quantity)))

		message = fmt.Sprintf("New order: %dx %s", quantity, snapshot.Title)
	} else {
		if req.Title == "" {
			return nil, fmt.Errorf("%w: title is required for a custom request", ErrInvalidInput)
		}
		if req.DeliveryDate == nil {
			return nil, fmt.Errorf("%w: delivery date is required for a custom request", ErrInvalidInput)
		}

		order.Kind = models.OrderKindCustom
		order.Title = req.Title
		order.CoverImage = req.ReferenceImage
		order.UnitPrice = decimal.Zero
		order.TotalPrice = decimal.Zero

		message = fmt.Sprintf("New custom request: %s", req.Title)
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.notifyArtisan(order, message, models.NotificationTypeBooking)
	return order, nil
}

// ArtisanUpdate handles the artisan side of the protocol: pricing a
// custom request (pending -> offer_made) or directly advancing the
// status. A custom request can only reach accepted through the
// customer's response to an offer.
func (s *OrderService) ArtisanUpdate(artisanID, orderID uuid.UUID, req *ArtisanUpdateRequest) (*models.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.ArtisanID != artisanID {
		return nil, fmt.Errorf("%w: not a party to this order", ErrForbidden)
	}
	if order.Status == models.OrderStatusCompleted || order.Status == models.OrderStatusCancelled {
		return nil, fmt.Errorf("%w: order is %s", ErrInvalidState, order.Status)
	}

	switch {
	case req.Price != nil:
		return s.makeOffer(order, *req.Price)
	case req.Status != "":
		return s.advanceStatus(order, models.OrderStatus(req.Status))
	default:
		return nil, fmt.Errorf("%w: status or price is required", ErrInvalidInput)
	}
}

func (s *OrderService) makeOffer(order *models.Order, price decimal.Decimal) (*models.Order, error) {
	if order.Kind != models.OrderKindCustom {
		return nil, fmt.Errorf("%w: price offers apply to custom requests only", ErrInvalidInput)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: offer price must be positive", ErrInvalidInput)
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: an offer requires a pending request", ErrInvalidState)
	}

	total := price.Mul(decimal.NewFromInt(int64(order.Quantity)))
	err := s.commitTransition(order, models.OrderStatusPending, map[string]interface{}{
		"status":      models.OrderStatusOfferMade,
		"unit_price":  price,
		"total_price": total,
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Artisan sent an offer of $%s for '%s'", price.StringFixed(2), order.Title)
	s.notifyCustomer(order, message, models.NotificationTypeOffer)
	return order, nil
}

func (s *OrderService) advanceStatus(order *models.Order, target models.OrderStatus) (*models.Order, error) {
	switch target {
	case models.OrderStatusAccepted, models.OrderStatusCompleted, models.OrderStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: status must be accepted, completed or cancelled", ErrInvalidInput)
	}

	// A custom request is accepted by the customer responding to an
	// offer, never by the artisan directly.
	if target == models.OrderStatusAccepted && order.Kind == models.OrderKindCustom {
		return nil, fmt.Errorf("%w: a custom request is accepted through the offer cycle", ErrInvalidState)
	}

	// Once accepted the artisan is committed: finishing the work is the
	// only way forward.
	if order.Status == models.OrderStatusAccepted && target != models.OrderStatusCompleted {
		return nil, fmt.Errorf("%w: an accepted order can only be completed", ErrInvalidState)
	}

	err := s.commitTransition(order, order.Status, map[string]interface{}{"status": target})
	if err != nil {
		return nil, err
	}

	var message string
	switch target {
	case models.OrderStatusAccepted:
		message = fmt.Sprintf("Artisan accepted your order '%s'", order.Title)
	case models.OrderStatusCompleted:
		message = fmt.Sprintf("Your order '%s' is ready!", order.Title)
	case models.OrderStatusCancelled:
		message = fmt.Sprintf("Your order '%s' was cancelled.", order.Title)
	}
	s.notifyCustomer(order, message, models.NotificationTypeStatusUpdate)
	return order, nil
}

// CustomerRespond handles the customer's reply to an open offer:
// accept, reject, or negotiate. Negotiate sends the order back to
// pending with the feedback appended to the note, restarting the offer
// cycle.
func (s *OrderService) CustomerRespond(customerID, orderID uuid.UUID, req *CustomerResponseRequest) (*models.Order, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, fmt.Errorf("%w: not a party to this order", ErrForbidden)
	}
	if order.Status != models.OrderStatusOfferMade {
		return nil, fmt.Errorf("%w: no pending offer to respond to", ErrInvalidState)
	}

	var (
		updates map[string]interface{}
		message string
	)

	switch req.Action {
	case "accept":
		updates = map[string]interface{}{"status": models.OrderStatusAccepted}
		message = fmt.Sprintf("Customer accepted your price for '%s'!", order.Title)
	case "reject":
		updates = map[string]interface{}{"status": models.OrderStatusCancelled}
		message = fmt.Sprintf("Customer rejected the offer for '%s'.", order.Title)
	case "negotiate":
		if req.Note == "" {
			return nil, fmt.Errorf("%w: note is required to negotiate", ErrInvalidInput)
		}
		updates = map[string]interface{}{
			"status": models.OrderStatusPending,
			"note":   appendNote(order.Note, req.Note),
		}
		message = fmt.Sprintf("Customer wants to negotiate on '%s'.", order.Title)
	}

	if err := s.commitTransition(order, models.OrderStatusOfferMade, updates); err != nil {
		return nil, err
	}

	s.notifyArtisan(order, message, models.NotificationTypeStatusUpdate)
	return order, nil
}

// CancelByCustomer cancels an order before the artisan has committed
// to it. Once the order reaches accepted the customer can no longer
// pull out.
func (s *OrderService) CancelByCustomer(customerID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, fmt.Errorf("%w: not a party to this order", ErrForbidden)
	}
	if order.Status.Terminal() {
		return nil, fmt.Errorf("%w: the artisan has already accepted or completed this order", ErrInvalidState)
	}

	err = s.commitTransition(order, order.Status, map[string]interface{}{
		"status": models.OrderStatusCancelled,
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Customer cancelled the request for '%s'.", order.Title)
	s.notifyArtisan(order, message, models.NotificationTypeStatusUpdate)
	return order, nil
}

// ListOrders returns the orders the actor is a party to, newest first.
func (s *OrderService) ListOrders(userID uuid.UUID, role models.UserRole) ([]models.Order, error) {
	query := s.db.Model(&models.Order{}).Order("created_at DESC")

	switch role {
	case models.RoleCustomer:
		query = query.Where("customer_id = ?", userID).Preload("Artisan")
	case models.RoleArtisan:
		query = query.Where("artisan_id = ?", userID).Preload("Customer")
	default:
		return nil, fmt.Errorf("%w: role must be customer or artisan", ErrForbidden)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != userID && order.ArtisanID != userID {
		return nil, fmt.Errorf("%w: not a party to this order", ErrForbidden)
	}
	return order, nil
}

func (s *OrderService) getOrder(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// commitTransition performs the compare-and-swap write for a status
// transition: one conditional UPDATE guarded by the status the
// decision was made against. Zero affected rows means a concurrent
// transition won the race; the order is left unchanged.
func (s *OrderService) commitTransition(order *models.Order, from models.OrderStatus, updates map[string]interface{}) error {
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, from).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: order status changed concurrently", ErrInvalidState)
	}

	if err := s.db.First(order, "id = ?", order.ID).Error; err != nil {
		return fmt.Errorf("failed to reload order: %w", err)
	}
	return nil
}

// Each committed transition emits exactly one notification, addressed
// to the counter-party, never the actor. Delivery is best effort and
// runs after the order write has committed.

func (s *OrderService) notifyArtisan(order *models.Order, message string, t models.NotificationType) {
	s.notifications.Deliver(&models.Notification{
		RecipientID:   order.ArtisanID,
		RecipientRole: models.RoleArtisan,
		SenderID:      order.CustomerID,
		SenderRole:    models.RoleCustomer,
		Message:       message,
		Type:          t,
	})
}

func (s *OrderService) notifyCustomer(order *models.Order, message string, t models.NotificationType) {
	s.notifications.Deliver(&models.Notification{
		RecipientID:   order.CustomerID,
		RecipientRole: models.RoleCustomer,
		SenderID:      order.ArtisanID,
		SenderRole:    models.RoleArtisan,
		Message:       message,
		Type:          t,
	})
}

func appendNote(existing, feedback string) string {
	entry := "[customer feedback]: " + feedback
	if existing == "" {
		return entry
	}
	return existing + "\n" + entry
}
