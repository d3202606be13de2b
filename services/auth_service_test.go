package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TrungQuaan22/ProjectIII-Elearning/models"
)

func newAuthService(users *MockUserRepository) *AuthService {
	return NewAuthService(users, NewTokenService("jwt-test-secret"))
}

func TestRegisterNewUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		if u.Email != "alice@example.com" || u.Role != models.RoleUser {
			return false
		}
		// The stored hash must verify against the plaintext password.
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cureP@ss")) == nil
	})).Return(nil)

	resp, svcErr := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cureP@ss",
	})

	assert.Nil(t, svcErr)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&models.User{ID: uuid.New(), Email: "alice@example.com"}, nil)

	_, svcErr := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cureP@ss",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginIssuesValidToken(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cureP@ss"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hash), Role: models.RoleAdmin}
	users.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	resp, svcErr := svc.Login(context.Background(), &LoginRequest{Email: "alice@example.com", Password: "s3cureP@ss"})
	assert.Nil(t, svcErr)

	claims, err := svc.tokens.ValidateToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cureP@ss"), bcrypt.MinCost)
	users.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&models.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hash)}, nil)

	_, svcErr := svc.Login(context.Background(), &LoginRequest{Email: "alice@example.com", Password: "wrong"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAuthService(users)

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, svcErr := svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	tokens := NewTokenService("jwt-test-secret")
	other := NewTokenService("different-secret")

	token, err := other.GenerateToken(uuid.NewString(), "alice@example.com", models.RoleUser)
	assert.NoError(t, err)

	_, err = tokens.ValidateToken(token)
	assert.Error(t, err)
}
