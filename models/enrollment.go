package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusDropped   = "dropped"
)

// UUIDList stores a set of lesson references as a jsonb column.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		l = UUIDList{}
	}
	return json.Marshal(l)
}

func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = UUIDList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for UUIDList: %T", value)
	}
	return json.Unmarshal(data, l)
}

// EnrollmentsForOrder constructs one active enrollment per order line item,
// with an empty progress cursor. Called by payment reconciliation once the
// order is paid.
func EnrollmentsForOrder(order *Order, now time.Time) []Enrollment {
	enrollments := make([]Enrollment, 0, len(order.Items))
	for _, item := range order.Items {
		enrollments = append(enrollments, Enrollment{
			UserID:           order.UserID,
			CourseID:         item.CourseID,
			OrderID:          order.ID,
			CompletedLessons: UUIDList{},
			CurrentLesson:    nil,
			LastAccessedAt:   now,
			Status:           EnrollmentStatusActive,
		})
	}
	return enrollments
}

type Enrollment struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	CompletedLessons UUIDList   `gorm:"type:jsonb;not null;default:'[]'" json:"completed_lessons"`
	CurrentLesson    *uuid.UUID `gorm:"type:uuid" json:"current_lesson"`
	LastAccessedAt   time.Time  `json:"last_accessed_at"`
	Status           string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
