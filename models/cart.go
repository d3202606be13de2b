package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	CourseID uuid.UUID `json:"course_id"`
	AddedAt  time.Time `json:"added_at"`
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Contains reports whether the cart already holds the given course.
func (c *Cart) Contains(courseID uuid.UUID) bool {
	for _, item := range c.Items {
		if item.CourseID == courseID {
			return true
		}
	}
	return false
}
