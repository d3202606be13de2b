package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
)

// EnrollmentRepository defines the interface for enrollment data access.
type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]models.Enrollment, int64, error)
	FindByIDAndUserID(ctx context.Context, enrollmentID, userID uuid.UUID) (*models.Enrollment, error)
	ExistsByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	UpdateProgress(ctx context.Context, enrollmentID uuid.UUID, completed models.UUIDList, current *uuid.UUID, accessedAt time.Time) (*models.Enrollment, error)
	UpdateStatus(ctx context.Context, enrollmentID uuid.UUID, status string) (*models.Enrollment, error)
}

type GormEnrollmentRepository struct {
	db *gorm.DB
}

func NewGormEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

func (r *GormEnrollmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status string, page, limit int) ([]models.Enrollment, int64, error) {
	var enrollments []models.Enrollment
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&enrollments).Error; err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

func (r *GormEnrollmentRepository) FindByIDAndUserID(ctx context.Context, enrollmentID, userID uuid.UUID) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", enrollmentID, userID).
		First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *GormEnrollmentRepository) ExistsByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormEnrollmentRepository) UpdateProgress(ctx context.Context, enrollmentID uuid.UUID, completed models.UUIDList, current *uuid.UUID, accessedAt time.Time) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.WithContext(ctx).
		Where("id = ?", enrollmentID).
		First(&enrollment).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&enrollment).Updates(map[string]interface{}{
		"completed_lessons": completed,
		"current_lesson":    current,
		"last_accessed_at":  accessedAt,
	}).Error; err != nil {
		return nil, err
	}

	enrollment.CompletedLessons = completed
	enrollment.CurrentLesson = current
	enrollment.LastAccessedAt = accessedAt
	return &enrollment, nil
}

func (r *GormEnrollmentRepository) UpdateStatus(ctx context.Context, enrollmentID uuid.UUID, status string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := r.db.WithContext(ctx).
		Where("id = ?", enrollmentID).
		First(&enrollment).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&enrollment).Update("status", status).Error; err != nil {
		return nil, err
	}

	enrollment.Status = status
	return &enrollment, nil
}
