package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	AuthorID    uuid.UUID `gorm:"type:uuid;index" json:"author_id"`
	Price       int64     `gorm:"not null" json:"price"` // VND
	Status      string    `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CourseSummary is the denormalized course shape embedded in cart and
// enrollment responses.
type CourseSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	Price     int64     `json:"price"`
}

func (c *Course) Summary() CourseSummary {
	return CourseSummary{ID: c.ID, Title: c.Title, Thumbnail: c.Thumbnail, Price: c.Price}
}
