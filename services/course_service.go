package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
	"github.com/TrungQuaan22/ProjectIII-Elearning/repository"
)

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Price       int64  `json:"price" binding:"min=0"`
	Status      string `json:"status"`
}

type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
	Meta    MetaData        `json:"meta"`
}

type CourseService struct {
	courses repository.CourseRepository
}

func NewCourseService(courses repository.CourseRepository) *CourseService {
	return &CourseService{courses: courses}
}

// ListPublished returns the public catalog with optional title search.
func (s *CourseService) ListPublished(ctx context.Context, search string, page, limit int) (*CourseListResponse, *ServiceError) {
	courses, total, err := s.courses.FindPublished(ctx, search, page, limit)
	if err != nil {
		return nil, errInternal("Failed to fetch courses")
	}
	return &CourseListResponse{Courses: courses, Meta: buildMeta(total, page, limit)}, nil
}

// GetBySlug fetches a single course by its URL slug.
func (s *CourseService) GetBySlug(ctx context.Context, slug string) (*models.Course, *ServiceError) {
	course, err := s.courses.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Course not found")
		}
		return nil, errInternal("Failed to fetch course")
	}
	return course, nil
}

// Create adds a course to the catalog (admin).
func (s *CourseService) Create(ctx context.Context, authorID uuid.UUID, req *CreateCourseRequest) (*models.Course, *ServiceError) {
	status := req.Status
	if status == "" {
		status = models.CourseStatusDraft
	}

	course := &models.Course{
		Title:       req.Title,
		Slug:        Slugify(req.Title),
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		AuthorID:    authorID,
		Price:       req.Price,
		Status:      status,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, errInternal("Failed to create course")
	}
	return course, nil
}

// Update overwrites the mutable fields of a course (admin).
func (s *CourseService) Update(ctx context.Context, courseID uuid.UUID, req *CreateCourseRequest) (*models.Course, *ServiceError) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Course not found")
		}
		return nil, errInternal("Failed to fetch course")
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Thumbnail = req.Thumbnail
	course.Price = req.Price
	if req.Status != "" {
		course.Status = req.Status
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, errInternal("Failed to update course")
	}
	return course, nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title and collapses non-alphanumeric runs into
// single dashes.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
