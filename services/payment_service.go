package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/logger"
	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
	"github.com/TrungQuaan22/ProjectIII-Elearning/repository"
	"github.com/TrungQuaan22/ProjectIII-Elearning/vnpay"
)

// PaymentEventPublisher publishes terminal payment outcomes to downstream
// consumers. Publishing is best-effort; failures are logged, never surfaced.
type PaymentEventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event models.PaymentEvent) error
}

// CallbackResult is the JSON payload rendered to the frontend after the
// browser returns from the gateway.
type CallbackResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// Gateway abstracts the signed-URL / signature operations of the payment
// gateway client.
type Gateway interface {
	BuildPaymentURL(req vnpay.PaymentRequest) string
	Verify(params map[string]string) bool
}

type PaymentService struct {
	orders     repository.OrderRepository
	carts      repository.CartRepository
	gateway    Gateway
	publishers []PaymentEventPublisher
	now        func() time.Time
}

func NewPaymentService(orders repository.OrderRepository, carts repository.CartRepository, gateway Gateway, publishers ...PaymentEventPublisher) *PaymentService {
	return &PaymentService{
		orders:     orders,
		carts:      carts,
		gateway:    gateway,
		publishers: publishers,
		now:        time.Now,
	}
}

// CreatePaymentURL builds the gateway redirect URL for a pending order owned
// by the given user.
func (s *PaymentService) CreatePaymentURL(ctx context.Context, userID, orderID uuid.UUID, clientIP string) (string, *ServiceError) {
	order, err := s.orders.FindByIDAndUserID(ctx, orderID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", errNotFound("Order not found")
		}
		return "", errInternal("Failed to fetch order")
	}

	if order.Status != models.OrderStatusPending {
		return "", errBadRequest("Order is not pending")
	}

	url := s.gateway.BuildPaymentURL(vnpay.PaymentRequest{
		OrderID:   order.ID.String(),
		Amount:    order.TotalAmount,
		OrderInfo: fmt.Sprintf("Thanh toan don hang %s", order.ID),
		IPAddr:    clientIP,
	})
	return url, nil
}

// HandleReturn processes the synchronous browser-redirect callback. The
// signature gate runs before any state is read; a verified notification is
// settled through the same idempotent path as the IPN, so a refreshed callback
// page reports the stored outcome instead of re-processing.
func (s *PaymentService) HandleReturn(ctx context.Context, params map[string]string) (*CallbackResult, *ServiceError) {
	if !s.gateway.Verify(params) {
		return nil, errBadRequest("Invalid payment signature")
	}

	orderID, err := uuid.Parse(params[vnpay.ParamTxnRef])
	if err != nil {
		return nil, errBadRequest("Invalid transaction reference")
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Order not found")
		}
		return nil, errInternal("Failed to fetch order")
	}

	applied, status, svcErr := s.settle(ctx, order, params)
	if svcErr != nil {
		return nil, svcErr
	}
	if !applied {
		// Already settled (by the IPN or an earlier redirect); report the
		// recorded outcome.
		settled, err := s.orders.FindByID(ctx, orderID)
		if err != nil {
			return nil, errInternal("Failed to fetch order")
		}
		status = settled.Status
	}

	if status == models.OrderStatusCompleted {
		return &CallbackResult{Success: true, Message: "Payment successful", OrderID: order.ID.String()}, nil
	}
	return &CallbackResult{Success: false, Message: "Payment failed", OrderID: order.ID.String()}, nil
}

// HandleIPN processes the gateway's asynchronous server-to-server
// notification. Returns one of the gateway's fixed acknowledgment codes; the
// gateway keeps retrying until it receives code 00.
func (s *PaymentService) HandleIPN(ctx context.Context, params map[string]string) vnpay.IPNResponse {
	if !s.gateway.Verify(params) {
		return vnpay.IPNChecksumFailed
	}

	orderID, err := uuid.Parse(params[vnpay.ParamTxnRef])
	if err != nil {
		return vnpay.IPNOrderNotFound
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return vnpay.IPNOrderNotFound
		}
		logger.Log.Error("IPN order lookup failed", zap.String("order_id", orderID.String()), zap.Error(err))
		return vnpay.IPNUnknownError
	}

	if order.IsTerminal() {
		return vnpay.IPNAlreadyConfirmed
	}

	applied, _, svcErr := s.settle(ctx, order, params)
	if svcErr != nil {
		return vnpay.IPNUnknownError
	}
	if !applied {
		// Lost the race against a concurrent notification.
		return vnpay.IPNAlreadyConfirmed
	}
	return vnpay.IPNSuccess
}

// settle flips the order to its terminal status and, on success, creates the
// enrollments in the same transaction. Cart cleanup and event publication run
// after commit: both are idempotent or best-effort and must not hold the
// transaction open.
func (s *PaymentService) settle(ctx context.Context, order *models.Order, params map[string]string) (bool, string, *ServiceError) {
	responseCode := params[vnpay.ParamResponseCode]
	transactionNo := params[vnpay.ParamTransactionNo]

	status := models.OrderStatusFailed
	var enrollments []models.Enrollment
	if responseCode == vnpay.ResponseCodeSuccess {
		status = models.OrderStatusCompleted
		enrollments = models.EnrollmentsForOrder(order, s.now())
	}

	applied, err := s.orders.Settle(ctx, order.ID, status, transactionNo, enrollments)
	if err != nil {
		logger.Log.Error("Order settlement failed",
			zap.String("order_id", order.ID.String()),
			zap.String("status", status),
			zap.Error(err),
		)
		return false, "", errInternal("Failed to update order")
	}
	if !applied {
		return false, status, nil
	}

	logger.Log.Info("Order settled",
		zap.String("order_id", order.ID.String()),
		zap.String("status", status),
		zap.String("transaction_no", transactionNo),
	)

	if status == models.OrderStatusCompleted {
		courseIDs := make([]uuid.UUID, 0, len(order.Items))
		for _, item := range order.Items {
			courseIDs = append(courseIDs, item.CourseID)
		}
		if err := s.carts.RemoveCourses(ctx, order.UserID.String(), courseIDs); err != nil {
			// The cart is a convenience view; a stale entry is harmless and the
			// removal is retried on the next purchase of the same course.
			logger.Log.Warn("Failed to remove purchased courses from cart",
				zap.String("user_id", order.UserID.String()),
				zap.Error(err),
			)
		}
	}

	s.publishEvent(ctx, order, status, transactionNo)
	return true, status, nil
}

func (s *PaymentService) publishEvent(ctx context.Context, order *models.Order, status, transactionNo string) {
	eventType := "payment_failed"
	if status == models.OrderStatusCompleted {
		eventType = "payment_succeeded"
	}
	event := models.PaymentEvent{
		Type:      eventType,
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		PaymentID: transactionNo,
		Amount:    order.TotalAmount,
		Currency:  "VND",
		Timestamp: s.now().UTC(),
	}

	for _, pub := range s.publishers {
		if pub == nil {
			continue
		}
		if err := pub.PublishPaymentEvent(ctx, event); err != nil {
			logger.Log.Warn("Payment event publish failed",
				zap.String("order_id", event.OrderID),
				zap.Error(err),
			)
		}
	}
}
