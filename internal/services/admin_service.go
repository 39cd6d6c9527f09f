// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/database"
	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

type AdminService struct {
	db            *gorm.DB
	notifications *NotificationService
}

type DashboardStats struct {
	TotalCustomers  int64 `json:"total_customers"`
	TotalArtisans   int64 `json:"total_artisans"`
	TotalOrders     int64 `json:"total_orders"`
	PendingOrders   int64 `json:"pending_orders"`
	AcceptedOrders  int64 `json:"accepted_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	CancelledOrders int64 `json:"cancelled_orders"`
	TotalReviews    int64 `json:"total_reviews"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

type BroadcastRequest struct {
	Role    string `json:"role" validate:"required,oneof=customer artisan"`
	Message string `json:"message" validate:"required,max=500"`
}

func NewAdminService(db *gorm.DB, notifications *NotificationService) *AdminService {
	return &AdminService{db: db, notifications: notifications}
}

func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dest  *int64
		model interface{}
		where []interface{}
	}{
		{&stats.TotalCustomers, &models.User{}, []interface{}{"role = ?", models.RoleCustomer}},
		{&stats.TotalArtisans, &models.User{}, []interface{}{"role = ?", models.RoleArtisan}},
		{&stats.TotalOrders, &models.Order{}, nil},
		{&stats.PendingOrders, &models.Order{}, []interface{}{"status = ?", models.OrderStatusPending}},
		{&stats.AcceptedOrders, &models.Order{}, []interface{}{"status = ?", models.OrderStatusAccepted}},
		{&stats.CompletedOrders, &models.Order{}, []interface{}{"status = ?", models.OrderStatusCompleted}},
		{&stats.CancelledOrders, &models.Order{}, []interface{}{"status = ?", models.OrderStatusCancelled}},
		{&stats.TotalReviews, &models.Review{}, nil},
	}

	for _, c := range counts {
		query := s.db.Model(c.model)
		if c.where != nil {
			query = query.Where(c.where[0], c.where[1:]...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
		}
	}

	return stats, nil
}

func (s *AdminService) UpdateUserStatus(userID uuid.UUID, req *UpdateUserStatusRequest) (*models.User, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	user.Status = models.UserStatus(req.Status)
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	return &user, nil
}

// RemovePortfolioItem takes down any artisan's portfolio item. Unlike
// the owner path this is not scoped to an artisan id.
func (s *AdminService) RemovePortfolioItem(itemID uuid.UUID) error {
	res := s.db.Where("id = ?", itemID).Delete(&models.PortfolioItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove portfolio item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: portfolio item", ErrNotFound)
	}
	return nil
}

// Broadcast sends a system alert to every user of the given role. All
// notification rows are written in one transaction.
func (s *AdminService) Broadcast(adminID uuid.UUID, req *BroadcastRequest) (int, error) {
	if err := ValidateRequest(req); err != nil {
		return 0, err
	}

	var recipients []models.User
	err := s.db.Where("role = ? AND status = ?", models.UserRole(req.Role), models.UserStatusActive).
		Find(&recipients).Error
	if err != nil {
		return 0, fmt.Errorf("failed to fetch recipients: %w", err)
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		for _, recipient := range recipients {
			notification := &models.Notification{
				RecipientID:   recipient.ID,
				RecipientRole: recipient.Role,
				SenderID:      adminID,
				SenderRole:    models.RoleAdmin,
				Message:       req.Message,
				Type:          models.NotificationTypeSystemAlert,
			}
			if err := tx.Create(notification).Error; err != nil {
				return fmt.Errorf("failed to create broadcast notification: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(recipients), nil
}
