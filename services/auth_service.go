package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
	"github.com/TrungQuaan22/ProjectIII-Elearning/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

type AuthService struct {
	users  repository.UserRepository
	tokens *TokenService
}

func NewAuthService(users repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, *ServiceError) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, errBadRequest("Email already registered")
	} else if err != gorm.ErrRecordNotFound {
		return nil, errInternal("Failed to check existing user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errInternal("Failed to hash password")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errInternal("Failed to create user")
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*AuthResponse, *ServiceError) {
	token, err := s.tokens.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, errInternal("Failed to issue token")
	}
	return &AuthResponse{AccessToken: token, User: *user}, nil
}
