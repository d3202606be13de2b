package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
	"github.com/TrungQuaan22/ProjectIII-Elearning/repository"
)

type EnrollmentDetail struct {
	models.Enrollment
	Course *models.CourseSummary `json:"course,omitempty"`
}

type EnrollmentListResponse struct {
	Enrollments []EnrollmentDetail `json:"enrollments"`
	Meta        MetaData           `json:"meta"`
}

type UpdateProgressRequest struct {
	CompletedLessons []uuid.UUID `json:"completed_lessons" binding:"required"`
	CurrentLesson    *uuid.UUID  `json:"current_lesson"`
}

type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	courses     repository.CourseRepository
}

func NewEnrollmentService(enrollments repository.EnrollmentRepository, courses repository.CourseRepository) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, courses: courses}
}

// GetUserEnrollments returns the user's enrollments with course summaries.
func (s *EnrollmentService) GetUserEnrollments(ctx context.Context, userID uuid.UUID, status string, page, limit int) (*EnrollmentListResponse, *ServiceError) {
	enrollments, total, err := s.enrollments.FindByUserID(ctx, userID, status, page, limit)
	if err != nil {
		return nil, errInternal("Failed to fetch enrollments")
	}

	courseIDs := make([]uuid.UUID, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}
	courses, err := s.courses.FindByIDs(ctx, courseIDs)
	if err != nil {
		return nil, errInternal("Failed to fetch courses")
	}
	byID := make(map[uuid.UUID]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	resp := &EnrollmentListResponse{
		Enrollments: make([]EnrollmentDetail, 0, len(enrollments)),
		Meta:        buildMeta(total, page, limit),
	}
	for _, e := range enrollments {
		detail := EnrollmentDetail{Enrollment: e}
		if course, ok := byID[e.CourseID]; ok {
			summary := course.Summary()
			detail.Course = &summary
		}
		resp.Enrollments = append(resp.Enrollments, detail)
	}
	return resp, nil
}

// GetEnrollment returns one enrollment owned by the user.
func (s *EnrollmentService) GetEnrollment(ctx context.Context, userID, enrollmentID uuid.UUID) (*models.Enrollment, *ServiceError) {
	enrollment, err := s.enrollments.FindByIDAndUserID(ctx, enrollmentID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Enrollment not found")
		}
		return nil, errInternal("Failed to fetch enrollment")
	}
	return enrollment, nil
}

// UpdateProgress replaces the completed-lesson set, moves the current-lesson
// cursor and bumps the last-accessed timestamp.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, userID, enrollmentID uuid.UUID, req *UpdateProgressRequest) (*models.Enrollment, *ServiceError) {
	if _, err := s.enrollments.FindByIDAndUserID(ctx, enrollmentID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Enrollment not found")
		}
		return nil, errInternal("Failed to fetch enrollment")
	}

	enrollment, err := s.enrollments.UpdateProgress(ctx, enrollmentID, models.UUIDList(req.CompletedLessons), req.CurrentLesson, time.Now())
	if err != nil {
		return nil, errInternal("Failed to update progress")
	}
	return enrollment, nil
}

// UpdateStatus moves the enrollment lifecycle between active, completed and
// dropped.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, userID, enrollmentID uuid.UUID, status string) (*models.Enrollment, *ServiceError) {
	switch status {
	case models.EnrollmentStatusActive, models.EnrollmentStatusCompleted, models.EnrollmentStatusDropped:
	default:
		return nil, errBadRequest("Invalid enrollment status")
	}

	if _, err := s.enrollments.FindByIDAndUserID(ctx, enrollmentID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errNotFound("Enrollment not found")
		}
		return nil, errInternal("Failed to fetch enrollment")
	}

	enrollment, err := s.enrollments.UpdateStatus(ctx, enrollmentID, status)
	if err != nil {
		return nil, errInternal("Failed to update status")
	}
	return enrollment, nil
}
