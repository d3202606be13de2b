package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
)

// CourseRepository defines the interface for course data access.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, courseID uuid.UUID) (*models.Course, error)
	FindBySlug(ctx context.Context, slug string) (*models.Course, error)
	FindByIDs(ctx context.Context, courseIDs []uuid.UUID) ([]models.Course, error)
	FindPublished(ctx context.Context, search string, page, limit int) ([]models.Course, int64, error)
}

type GormCourseRepository struct {
	db *gorm.DB
}

func NewGormCourseRepository(db *gorm.DB) CourseRepository {
	return &GormCourseRepository{db: db}
}

func (r *GormCourseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *GormCourseRepository) Update(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *GormCourseRepository) FindByID(ctx context.Context, courseID uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *GormCourseRepository) FindBySlug(ctx context.Context, slug string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *GormCourseRepository) FindByIDs(ctx context.Context, courseIDs []uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	if len(courseIDs) == 0 {
		return courses, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *GormCourseRepository) FindPublished(ctx context.Context, search string, page, limit int) ([]models.Course, int64, error) {
	var courses []models.Course
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("status = ?", models.CourseStatusPublished)
	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}
