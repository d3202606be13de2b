package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
	"github.com/TrungQuaan22/ProjectIII-Elearning/repository"
)

type CartItemDetail struct {
	Course  models.CourseSummary `json:"course"`
	AddedAt time.Time            `json:"added_at"`
}

type CartResponse struct {
	Items       []CartItemDetail `json:"items"`
	TotalAmount int64            `json:"total_amount"`
}

type CartService struct {
	carts   repository.CartRepository
	courses repository.CourseRepository
}

func NewCartService(carts repository.CartRepository, courses repository.CourseRepository) *CartService {
	return &CartService{carts: carts, courses: courses}
}

// AddToCart appends a published course to the user's cart. A course can
// appear at most once.
func (s *CartService) AddToCart(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) *ServiceError {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errNotFound("Course not found")
		}
		return errInternal("Failed to fetch course")
	}
	if course.Status != models.CourseStatusPublished {
		return errBadRequest("Course is not available for purchase")
	}

	cart, err := s.carts.GetCart(ctx, userID.String())
	if err != nil {
		return errInternal("Failed to fetch cart")
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID.String()}
	}
	if cart.Contains(courseID) {
		return errBadRequest("Course already in cart")
	}

	cart.Items = append(cart.Items, models.CartItem{CourseID: courseID, AddedAt: time.Now()})
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return errInternal("Failed to save cart")
	}
	return nil
}

// GetCart returns the cart hydrated with course details and the running total.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, *ServiceError) {
	cart, err := s.carts.GetCart(ctx, userID.String())
	if err != nil {
		return nil, errInternal("Failed to fetch cart")
	}
	resp := &CartResponse{Items: []CartItemDetail{}}
	if cart == nil || len(cart.Items) == 0 {
		return resp, nil
	}

	courseIDs := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		courseIDs = append(courseIDs, item.CourseID)
	}
	courses, err := s.courses.FindByIDs(ctx, courseIDs)
	if err != nil {
		return nil, errInternal("Failed to fetch courses")
	}
	byID := make(map[uuid.UUID]models.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	for _, item := range cart.Items {
		course, ok := byID[item.CourseID]
		if !ok {
			// Course removed from the catalog since it was added; skip it.
			continue
		}
		resp.Items = append(resp.Items, CartItemDetail{Course: course.Summary(), AddedAt: item.AddedAt})
		resp.TotalAmount += course.Price
	}
	return resp, nil
}

// RemoveFromCart deletes a single course from the cart.
func (s *CartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, courseID uuid.UUID) *ServiceError {
	cart, err := s.carts.GetCart(ctx, userID.String())
	if err != nil {
		return errInternal("Failed to fetch cart")
	}
	if cart == nil || !cart.Contains(courseID) {
		return errNotFound("Course not in cart")
	}

	if err := s.carts.RemoveCourses(ctx, userID.String(), []uuid.UUID{courseID}); err != nil {
		return errInternal("Failed to update cart")
	}
	return nil
}

// ClearCart drops the whole cart.
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) *ServiceError {
	if err := s.carts.DeleteCart(ctx, userID.String()); err != nil {
		return errInternal("Failed to clear cart")
	}
	return nil
}
