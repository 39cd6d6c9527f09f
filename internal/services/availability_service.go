// internal/services/availability_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

type AvailabilityService struct {
	db *gorm.DB
}

type SetAvailabilityRequest struct {
	Day       string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required,max=10"`
	EndTime   string `json:"end_time" validate:"required,max=10"`
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

func (s *AvailabilityService) SetSlot(artisanID uuid.UUID, req *SetAvailabilityRequest) (*models.Availability, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	slot := &models.Availability{
		ArtisanID: artisanID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.db.Create(slot).Error; err != nil {
		return nil, fmt.Errorf("failed to set availability: %w", err)
	}
	return slot, nil
}

func (s *AvailabilityService) GetSchedule(artisanID uuid.UUID) ([]models.Availability, error) {
	var schedule []models.Availability
	if err := s.db.Where("artisan_id = ?", artisanID).Find(&schedule).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	return schedule, nil
}

func (s *AvailabilityService) DeleteSlot(artisanID, slotID uuid.UUID) error {
	res := s.db.Where("id = ? AND artisan_id = ?", slotID, artisanID).
		Delete(&models.Availability{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete availability: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: availability slot", ErrNotFound)
	}
	return nil
}
