package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/logger"
	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
	"github.com/TrungQuaan22/ProjectIII-Elearning/repository"
)

type CreateOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

type OrderService struct {
	orders  repository.OrderRepository
	courses repository.CourseRepository
	carts   repository.CartRepository
}

func NewOrderService(orders repository.OrderRepository, courses repository.CourseRepository, carts repository.CartRepository) *OrderService {
	return &OrderService{orders: orders, courses: courses, carts: carts}
}

// CreateOrder turns the user's cart into a pending order. Every referenced
// course must exist; a single missing course aborts the whole operation. The
// cart itself is kept until payment succeeds.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID.String())
	if err != nil {
		return nil, errInternal("Failed to fetch cart")
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, errBadRequest("Cart is empty")
	}

	courseIDs := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		courseIDs = append(courseIDs, item.CourseID)
	}

	courses, err := s.courses.FindByIDs(ctx, courseIDs)
	if err != nil {
		return nil, errInternal("Failed to fetch courses")
	}
	if len(courses) != len(courseIDs) {
		return nil, errNotFound("Some courses not found")
	}

	priceByID := make(map[uuid.UUID]int64, len(courses))
	var total int64
	for _, course := range courses {
		priceByID[course.ID] = course.Price
		total += course.Price
	}

	order := &models.Order{
		UserID:        userID,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
	}
	for _, id := range courseIDs {
		order.Items = append(order.Items, models.OrderItem{CourseID: id, Price: priceByID[id]})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		logger.Log.Error("Order creation failed", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errInternal("Failed to create order")
	}

	return order, nil
}

// GetOrders retrieves paginated orders for a user, optionally filtered by status.
func (s *OrderService) GetOrders(ctx context.Context, userID uuid.UUID, status string, page, limit int) (*OrderListResponse, *ServiceError) {
	orders, total, err := s.orders.FindByUserID(ctx, userID, status, page, limit)
	if err != nil {
		return nil, errInternal("Failed to fetch orders")
	}
	return &OrderListResponse{Orders: orders, Meta: buildMeta(total, page, limit)}, nil
}

// GetAllOrders retrieves paginated orders across all users (admin only).
func (s *OrderService) GetAllOrders(ctx context.Context, page, limit int) (*OrderListResponse, *ServiceError) {
	orders, total, err := s.orders.FindAll(ctx, page, limit)
	if err != nil {
		return nil, errInternal("Failed to fetch orders")
	}
	return &OrderListResponse{Orders: orders, Meta: buildMeta(total, page, limit)}, nil
}

// GetOrderByID retrieves a specific order owned by the user.
func (s *OrderService) GetOrderByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByIDAndUserID(ctx, orderID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Order not found")
		}
		return nil, errInternal("Failed to fetch order")
	}
	return order, nil
}

// CancelOrder moves a pending order to cancelled. Orders that already left
// pending cannot be cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) *ServiceError {
	cancelled, err := s.orders.Cancel(ctx, orderID, userID)
	if err != nil {
		return errInternal("Failed to cancel order")
	}
	if !cancelled {
		// Either the order does not exist for this user or it is no longer
		// pending; distinguish for the caller.
		if _, err := s.orders.FindByIDAndUserID(ctx, orderID, userID); err != nil {
			return errNotFound("Order not found")
		}
		return errBadRequest("Cannot cancel order that is not pending")
	}
	return nil
}

func buildMeta(total int64, page, limit int) MetaData {
	return MetaData{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: calculateTotalPages(total, limit),
		HasMore:    total > int64(page*limit),
	}
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
