// internal/services/availability_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

type AvailabilityServiceTestSuite struct {
	suite.Suite
	db           *gorm.DB
	availability *AvailabilityService
	artisanID    uuid.UUID
}

func (suite *AvailabilityServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.Availability{}))

	suite.db = db
	suite.availability = NewAvailabilityService(db)
	suite.artisanID = uuid.New()
}

func (suite *AvailabilityServiceTestSuite) TestSetAndGetSchedule() {
	slot, err := suite.availability.SetSlot(suite.artisanID, &SetAvailabilityRequest{
		Day:       "monday",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "monday", slot.Day)

	schedule, err := suite.availability.GetSchedule(suite.artisanID)
	suite.Require().NoError(err)
	suite.Require().Len(schedule, 1)
	assert.Equal(suite.T(), "09:00", schedule[0].StartTime)
}

func (suite *AvailabilityServiceTestSuite) TestSetSlotRejectsBadDay() {
	_, err := suite.availability.SetSlot(suite.artisanID, &SetAvailabilityRequest{
		Day:       "someday",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *AvailabilityServiceTestSuite) TestGetScheduleEmpty() {
	schedule, err := suite.availability.GetSchedule(uuid.New())
	suite.Require().NoError(err)
	assert.Empty(suite.T(), schedule)
}

func (suite *AvailabilityServiceTestSuite) TestDeleteSlotScopedToOwner() {
	slot, err := suite.availability.SetSlot(suite.artisanID, &SetAvailabilityRequest{
		Day:       "friday",
		StartTime: "10:00",
		EndTime:   "14:00",
	})
	suite.Require().NoError(err)

	err = suite.availability.DeleteSlot(uuid.New(), slot.ID)
	assert.ErrorIs(suite.T(), err, ErrNotFound)

	suite.Require().NoError(suite.availability.DeleteSlot(suite.artisanID, slot.ID))

	schedule, err := suite.availability.GetSchedule(suite.artisanID)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), schedule)
}

func TestAvailabilityServiceSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
