package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
)

func newOrderService(orders *MockOrderRepository, courses *MockCourseRepository, carts *MockCartRepository) *OrderService {
	return NewOrderService(orders, courses, carts)
}

func TestCreateOrderFromCart(t *testing.T) {
	orders := new(MockOrderRepository)
	courses := new(MockCourseRepository)
	carts := new(MockCartRepository)
	svc := newOrderService(orders, courses, carts)

	userID := uuid.New()
	courseA := models.Course{ID: uuid.New(), Title: "Go Basics", Price: 500000, Status: models.CourseStatusPublished}
	courseB := models.Course{ID: uuid.New(), Title: "Advanced Go", Price: 900000, Status: models.CourseStatusPublished}

	carts.On("GetCart", mock.Anything, userID.String()).Return(&models.Cart{
		UserID: userID.String(),
		Items: []models.CartItem{
			{CourseID: courseA.ID, AddedAt: time.Now()},
			{CourseID: courseB.ID, AddedAt: time.Now()},
		},
	}, nil)
	courses.On("FindByIDs", mock.Anything, []uuid.UUID{courseA.ID, courseB.ID}).
		Return([]models.Course{courseA, courseB}, nil)
	orders.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil)

	order, svcErr := svc.CreateOrder(context.Background(), userID, &CreateOrderRequest{PaymentMethod: "vnpay"})

	assert.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, int64(1400000), order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, courseA.Price, order.Items[0].Price)
	assert.Equal(t, courseB.Price, order.Items[1].Price)

	// The cart survives order creation; it is only cleaned up once payment
	// succeeds.
	carts.AssertNotCalled(t, "DeleteCart", mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	orders := new(MockOrderRepository)
	courses := new(MockCourseRepository)
	carts := new(MockCartRepository)
	svc := newOrderService(orders, courses, carts)

	userID := uuid.New()
	carts.On("GetCart", mock.Anything, userID.String()).Return(nil, nil)

	_, svcErr := svc.CreateOrder(context.Background(), userID, &CreateOrderRequest{PaymentMethod: "vnpay"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderMissingCourse(t *testing.T) {
	orders := new(MockOrderRepository)
	courses := new(MockCourseRepository)
	carts := new(MockCartRepository)
	svc := newOrderService(orders, courses, carts)

	userID := uuid.New()
	knownID, removedID := uuid.New(), uuid.New()

	carts.On("GetCart", mock.Anything, userID.String()).Return(&models.Cart{
		UserID: userID.String(),
		Items: []models.CartItem{
			{CourseID: knownID},
			{CourseID: removedID},
		},
	}, nil)
	courses.On("FindByIDs", mock.Anything, []uuid.UUID{knownID, removedID}).
		Return([]models.Course{{ID: knownID, Price: 500000}}, nil)

	_, svcErr := svc.CreateOrder(context.Background(), userID, &CreateOrderRequest{PaymentMethod: "vnpay"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCancelOrderPending(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newOrderService(orders, new(MockCourseRepository), new(MockCartRepository))

	userID, orderID := uuid.New(), uuid.New()
	orders.On("Cancel", mock.Anything, orderID, userID).Return(true, nil)

	svcErr := svc.CancelOrder(context.Background(), userID, orderID)
	assert.Nil(t, svcErr)
}

func TestCancelOrderNotFound(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newOrderService(orders, new(MockCourseRepository), new(MockCartRepository))

	userID, orderID := uuid.New(), uuid.New()
	orders.On("Cancel", mock.Anything, orderID, userID).Return(false, nil)
	orders.On("FindByIDAndUserID", mock.Anything, orderID, userID).Return(nil, gorm.ErrRecordNotFound)

	svcErr := svc.CancelOrder(context.Background(), userID, orderID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestCancelOrderAlreadySettled(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newOrderService(orders, new(MockCourseRepository), new(MockCartRepository))

	userID, orderID := uuid.New(), uuid.New()
	orders.On("Cancel", mock.Anything, orderID, userID).Return(false, nil)
	orders.On("FindByIDAndUserID", mock.Anything, orderID, userID).
		Return(&models.Order{ID: orderID, UserID: userID, Status: models.OrderStatusCompleted}, nil)

	svcErr := svc.CancelOrder(context.Background(), userID, orderID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestGetOrdersPagination(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newOrderService(orders, new(MockCourseRepository), new(MockCartRepository))

	userID := uuid.New()
	orders.On("FindByUserID", mock.Anything, userID, "", 2, 10).
		Return([]models.Order{{ID: uuid.New(), UserID: userID}}, int64(21), nil)

	resp, svcErr := svc.GetOrders(context.Background(), userID, "", 2, 10)

	assert.Nil(t, svcErr)
	assert.Len(t, resp.Orders, 1)
	assert.Equal(t, int64(21), resp.Meta.Total)
	assert.Equal(t, int64(3), resp.Meta.TotalPages)
	assert.True(t, resp.Meta.HasMore)
}
