package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusFailed     = "failed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	TotalAmount   int64       `gorm:"not null" json:"total_amount"` // VND
	Status        string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentMethod string      `gorm:"type:varchar(20)" json:"payment_method"`
	PaymentID     string      `gorm:"type:varchar(64)" json:"payment_id"` // gateway transaction reference
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`
	Price    int64     `gorm:"not null" json:"price"`
}

// IsTerminal reports whether the order has reached a final status. Terminal
// orders are never mutated again.
func (o *Order) IsTerminal() bool {
	switch o.Status {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled:
		return true
	}
	return false
}
