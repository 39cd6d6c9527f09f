// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/HamzaJabari/craftopia-backend/internal/models"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db            *gorm.DB
	orders        *OrderService
	notifications *NotificationService

	customer *models.User
	artisan  *models.User
	item     *models.PortfolioItem
}

func (suite *OrderServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	err = db.AutoMigrate(
		&models.User{},
		&models.PortfolioItem{},
		&models.Order{},
		&models.Notification{},
	)
	suite.Require().NoError(err)

	suite.db = db
	suite.notifications = NewNotificationService(db)
	suite.orders = NewOrderService(db, NewCatalogService(db), suite.notifications)

	suite.customer = suite.createUser("Lina", "lina@example.com", models.RoleCustomer)
	suite.artisan = suite.createUser("Omar", "omar@example.com", models.RoleArtisan)
	suite.item = suite.createItem(suite.artisan.ID, "Walnut Bowl", 50)
}

func (suite *OrderServiceTestSuite) createUser(name, email string, role models.UserRole) *models.User {
	user := &models.User{
		Name:   name,
		Email:  email,
		Role:   role,
		Status: models.UserStatusActive,
	}
	suite.Require().NoError(user.SetPassword("Sup3rSecret!"))
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *OrderServiceTestSuite) createItem(artisanID uuid.UUID, title string, price int64) *models.PortfolioItem {
	item := &models.PortfolioItem{
		ArtisanID: artisanID,
		Title:     title,
		Price:     decimal.NewFromInt(price),
	}
	suite.Require().NoError(suite.db.Create(item).Error)
	return item
}

func (suite *OrderServiceTestSuite) createCustomRequest() *models.Order {
	delivery := time.Now().AddDate(0, 1, 0)
	order, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:    suite.artisan.ID,
		Title:        "Engraved Box",
		DeliveryDate: &delivery,
	})
	suite.Require().NoError(err)
	return order
}

func (suite *OrderServiceTestSuite) notificationsFor(recipientID uuid.UUID) []models.Notification {
	list, err := suite.notifications.ListForRecipient(recipientID)
	suite.Require().NoError(err)
	return list
}

func (suite *OrderServiceTestSuite) TestPortfolioOrderPricedFromCatalog() {
	order, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     suite.artisan.ID,
		CatalogItemID: &suite.item.ID,
		Quantity:      3,
	})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), models.OrderKindPortfolio, order.Kind)
	assert.Equal(suite.T(), models.OrderStatusPending, order.Status)
	assert.Equal(suite.T(), "Walnut Bowl", order.Title)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(order.UnitPrice), "unit price %s", order.UnitPrice)
	assert.True(suite.T(), decimal.NewFromInt(150).Equal(order.TotalPrice), "total price %s", order.TotalPrice)

	inbox := suite.notificationsFor(suite.artisan.ID)
	suite.Require().Len(inbox, 1)
	assert.Equal(suite.T(), models.NotificationTypeBooking, inbox[0].Type)
	assert.Equal(suite.T(), suite.customer.ID, inbox[0].SenderID)
}

func (suite *OrderServiceTestSuite) TestPortfolioOrderDefaultsQuantityToOne() {
	order, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     suite.artisan.ID,
		CatalogItemID: &suite.item.ID,
	})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 1, order.Quantity)
	assert.True(suite.T(), order.UnitPrice.Equal(order.TotalPrice))
}

func (suite *OrderServiceTestSuite) TestCreateOrderUnknownArtisan() {
	_, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     uuid.New(),
		CatalogItemID: &suite.item.ID,
	})
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestCreateOrderUnknownCatalogItem() {
	missing := uuid.New()
	_, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     suite.artisan.ID,
		CatalogItemID: &missing,
	})
	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestCustomRequestRequiresTitleAndDeliveryDate() {
	delivery := time.Now().AddDate(0, 1, 0)

	_, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:    suite.artisan.ID,
		DeliveryDate: &delivery,
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)

	_, err = suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID: suite.artisan.ID,
		Title:     "Engraved Box",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *OrderServiceTestSuite) TestCustomRequestSeedsZeroPrice() {
	order := suite.createCustomRequest()

	assert.Equal(suite.T(), models.OrderKindCustom, order.Kind)
	assert.Nil(suite.T(), order.CatalogItemID)
	assert.True(suite.T(), order.UnitPrice.IsZero())
	assert.True(suite.T(), order.TotalPrice.IsZero())
}

func (suite *OrderServiceTestSuite) TestNegotiationCycle() {
	order := suite.createCustomRequest()

	// Artisan offers 80.
	price := decimal.NewFromInt(80)
	order, err := suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusOfferMade, order.Status)
	assert.True(suite.T(), decimal.NewFromInt(80).Equal(order.UnitPrice))

	customerInbox := suite.notificationsFor(suite.customer.ID)
	suite.Require().Len(customerInbox, 1)
	assert.Equal(suite.T(), models.NotificationTypeOffer, customerInbox[0].Type)

	// Customer pushes back; the order returns to pending with the
	// feedback appended.
	order, err = suite.orders.CustomerRespond(suite.customer.ID, order.ID, &CustomerResponseRequest{
		Action: "negotiate",
		Note:   "too high",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusPending, order.Status)
	assert.Contains(suite.T(), order.Note, "too high")

	// Artisan re-offers 60.
	price = decimal.NewFromInt(60)
	order, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusOfferMade, order.Status)
	assert.True(suite.T(), decimal.NewFromInt(60).Equal(order.UnitPrice))

	// Customer accepts.
	order, err = suite.orders.CustomerRespond(suite.customer.ID, order.ID, &CustomerResponseRequest{Action: "accept"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusAccepted, order.Status)

	// Accepted is terminal for the customer: no cancel.
	_, err = suite.orders.CancelByCustomer(suite.customer.ID, order.ID)
	assert.ErrorIs(suite.T(), err, ErrInvalidState)
}

func (suite *OrderServiceTestSuite) TestNegotiateAppendsToExistingNote() {
	delivery := time.Now().AddDate(0, 1, 0)
	order, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:    suite.artisan.ID,
		Title:        "Engraved Box",
		DeliveryDate: &delivery,
		Note:         "wrap it in blue",
	})
	suite.Require().NoError(err)

	price := decimal.NewFromInt(80)
	_, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)

	order, err = suite.orders.CustomerRespond(suite.customer.ID, order.ID, &CustomerResponseRequest{
		Action: "negotiate",
		Note:   "too high",
	})
	suite.Require().NoError(err)

	assert.Contains(suite.T(), order.Note, "wrap it in blue")
	assert.Contains(suite.T(), order.Note, "too high")
}

func (suite *OrderServiceTestSuite) TestNegotiateRequiresNote() {
	order := suite.createCustomRequest()

	price := decimal.NewFromInt(80)
	_, err := suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)

	_, err = suite.orders.CustomerRespond(suite.customer.ID, order.ID, &CustomerResponseRequest{Action: "negotiate"})
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *OrderServiceTestSuite) TestOfferByWrongArtisan() {
	order := suite.createCustomRequest()
	other := suite.createUser("Sami", "sami@example.com", models.RoleArtisan)

	price := decimal.NewFromInt(80)
	_, err := suite.orders.ArtisanUpdate(other.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	assert.ErrorIs(suite.T(), err, ErrForbidden)

	reloaded, err := suite.orders.GetOrder(suite.customer.ID, order.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusPending, reloaded.Status)
	assert.True(suite.T(), reloaded.UnitPrice.IsZero())
}

func (suite *OrderServiceTestSuite) TestOfferOnPortfolioOrderRejected() {
	order, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     suite.artisan.ID,
		CatalogItemID: &suite.item.ID,
	})
	suite.Require().NoError(err)

	price := decimal.NewFromInt(80)
	_, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	assert.ErrorIs(suite.T(), err, ErrInvalidInput)
}

func (suite *OrderServiceTestSuite) TestArtisanCannotAcceptCustomRequestDirectly() {
	order := suite.createCustomRequest()

	_, err := suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Status: "accepted"})
	assert.ErrorIs(suite.T(), err, ErrInvalidState)
}

func (suite *OrderServiceTestSuite) TestArtisanDirectTransitionsOnPortfolioOrder() {
	order, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     suite.artisan.ID,
		CatalogItemID: &suite.item.ID,
	})
	suite.Require().NoError(err)

	order, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Status: "accepted"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusAccepted, order.Status)

	inbox := suite.notificationsFor(suite.customer.ID)
	suite.Require().Len(inbox, 1)
	assert.Equal(suite.T(), models.NotificationTypeStatusUpdate, inbox[0].Type)
}

func (suite *OrderServiceTestSuite) TestArtisanCompletesAcceptedOrder() {
	order := suite.createCustomRequest()

	price := decimal.NewFromInt(80)
	_, err := suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)

	order, err = suite.orders.CustomerRespond(suite.customer.ID, order.ID, &CustomerResponseRequest{Action: "accept"})
	suite.Require().NoError(err)
	suite.Require().Equal(models.OrderStatusAccepted, order.Status)

	order, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Status: "completed"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusCompleted, order.Status)

	// Completing is the only move left once the customer has accepted.
	order2 := suite.createCustomRequest()
	_, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order2.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)
	_, err = suite.orders.CustomerRespond(suite.customer.ID, order2.ID, &CustomerResponseRequest{Action: "accept"})
	suite.Require().NoError(err)

	_, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order2.ID, &ArtisanUpdateRequest{Status: "cancelled"})
	assert.ErrorIs(suite.T(), err, ErrInvalidState)
}

func (suite *OrderServiceTestSuite) TestTerminalStateRejectsFurtherTransitions() {
	order, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     suite.artisan.ID,
		CatalogItemID: &suite.item.ID,
		Quantity:      2,
	})
	suite.Require().NoError(err)

	order, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Status: "completed"})
	suite.Require().NoError(err)
	suite.Require().Equal(models.OrderStatusCompleted, order.Status)

	_, err = suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Status: "cancelled"})
	assert.ErrorIs(suite.T(), err, ErrInvalidState)

	_, err = suite.orders.CancelByCustomer(suite.customer.ID, order.ID)
	assert.ErrorIs(suite.T(), err, ErrInvalidState)

	reloaded, err := suite.orders.GetOrder(suite.customer.ID, order.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusCompleted, reloaded.Status)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(reloaded.TotalPrice))
}

func (suite *OrderServiceTestSuite) TestConcurrentTransitionLosesRace() {
	order := suite.createCustomRequest()

	// Another request commits a cancel after this one loaded the order
	// but before it writes.
	stale := *order
	err := suite.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("status", models.OrderStatusCancelled).Error
	suite.Require().NoError(err)

	err = suite.orders.commitTransition(&stale, models.OrderStatusPending, map[string]interface{}{
		"status": models.OrderStatusOfferMade,
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidState)

	var reloaded models.Order
	suite.Require().NoError(suite.db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(suite.T(), models.OrderStatusCancelled, reloaded.Status)
	assert.True(suite.T(), reloaded.UnitPrice.IsZero())
}

func (suite *OrderServiceTestSuite) TestOfferAfterConcurrentCancel() {
	order := suite.createCustomRequest()

	loaded, err := suite.orders.getOrder(order.ID)
	suite.Require().NoError(err)

	// The customer cancels between this artisan's read and write.
	_, err = suite.orders.CancelByCustomer(suite.customer.ID, order.ID)
	suite.Require().NoError(err)

	_, err = suite.orders.makeOffer(loaded, decimal.NewFromInt(80))
	assert.ErrorIs(suite.T(), err, ErrInvalidState)

	reloaded, err := suite.orders.getOrder(order.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusCancelled, reloaded.Status)
	assert.True(suite.T(), reloaded.UnitPrice.IsZero())
}

func (suite *OrderServiceTestSuite) TestCustomerCancelFromPending() {
	order := suite.createCustomRequest()

	order, err := suite.orders.CancelByCustomer(suite.customer.ID, order.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusCancelled, order.Status)

	inbox := suite.notificationsFor(suite.artisan.ID)
	// Creation plus cancellation.
	suite.Require().Len(inbox, 2)
}

func (suite *OrderServiceTestSuite) TestCustomerCancelFromOfferMade() {
	order := suite.createCustomRequest()

	price := decimal.NewFromInt(80)
	_, err := suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)

	order, err = suite.orders.CancelByCustomer(suite.customer.ID, order.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusCancelled, order.Status)
}

func (suite *OrderServiceTestSuite) TestRespondWithoutOpenOffer() {
	order := suite.createCustomRequest()

	_, err := suite.orders.CustomerRespond(suite.customer.ID, order.ID, &CustomerResponseRequest{Action: "accept"})
	assert.ErrorIs(suite.T(), err, ErrInvalidState)
}

func (suite *OrderServiceTestSuite) TestRejectCancelsOrder() {
	order := suite.createCustomRequest()

	price := decimal.NewFromInt(80)
	_, err := suite.orders.ArtisanUpdate(suite.artisan.ID, order.ID, &ArtisanUpdateRequest{Price: &price})
	suite.Require().NoError(err)

	order, err = suite.orders.CustomerRespond(suite.customer.ID, order.ID, &CustomerResponseRequest{Action: "reject"})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.OrderStatusCancelled, order.Status)
}

func (suite *OrderServiceTestSuite) TestListOrdersByRole() {
	suite.createCustomRequest()
	_, err := suite.orders.CreateOrder(suite.customer.ID, &CreateOrderRequest{
		ArtisanID:     suite.artisan.ID,
		CatalogItemID: &suite.item.ID,
	})
	suite.Require().NoError(err)

	customerOrders, err := suite.orders.ListOrders(suite.customer.ID, models.RoleCustomer)
	suite.Require().NoError(err)
	assert.Len(suite.T(), customerOrders, 2)

	artisanOrders, err := suite.orders.ListOrders(suite.artisan.ID, models.RoleArtisan)
	suite.Require().NoError(err)
	assert.Len(suite.T(), artisanOrders, 2)

	stranger := suite.createUser("Nour", "nour@example.com", models.RoleCustomer)
	none, err := suite.orders.ListOrders(stranger.ID, models.RoleCustomer)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), none)
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
