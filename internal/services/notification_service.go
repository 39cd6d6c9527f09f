// internal/services/notification_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

// Cap on how long a single delivery may hold up the caller.
const deliveryTimeout = 5 * time.Second

const inboxLimit = 50

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Deliver records a one-way message to a recipient. Delivery is best
// effort: failures are logged and swallowed so a committed order write
// is never rolled back by a notification outage.
func (s *NotificationService) Deliver(n *models.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"recipient_id": n.RecipientID,
			"type":         n.Type,
		}).Error("Notification delivery failed")
	}
}

func (s *NotificationService) ListForRecipient(recipientID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(inboxLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

// DeleteForRecipient removes a single notification. Scoping the delete
// to the recipient keeps one user from deleting another's inbox rows.
func (s *NotificationService) DeleteForRecipient(recipientID, notificationID uuid.UUID) error {
	res := s.db.Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: notification", ErrNotFound)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(recipientID uuid.UUID) error {
	err := s.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to update notifications: %w", err)
	}
	return nil
}
