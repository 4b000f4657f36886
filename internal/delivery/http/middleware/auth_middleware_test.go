package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-ats-backend/internal/delivery/http/middleware"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/auth"
	"go-ats-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}
func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return m.Called(ctx, userID, currentPassword, newPassword).Error(0)
}

func newProtectedRouter(tokens *auth.TokenManager, authUC domain.AuthUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.AuthMiddleware(tokens, authUC))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(string(domain.KeyUserID))})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue("u1", "alice@example.com", "Alice", domain.RoleUser)
	assert.NoError(t, err)

	t.Run("Missing token is unauthorized", func(t *testing.T) {
		r := newProtectedRouter(tokens, new(MockAuthUsecase))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token loads the user", func(t *testing.T) {
		authUC := new(MockAuthUsecase)
		authUC.On("GetCurrentUser", mock.Anything, "u1").
			Return(&domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser}, nil)
		r := newProtectedRouter(tokens, authUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u1")
	})

	t.Run("Deleted user is unauthorized", func(t *testing.T) {
		authUC := new(MockAuthUsecase)
		authUC.On("GetCurrentUser", mock.Anything, "u1").Return(nil, domain.ErrNotFound)
		r := newProtectedRouter(tokens, authUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Database failure is a server error, not a bad credential", func(t *testing.T) {
		authUC := new(MockAuthUsecase)
		authUC.On("GetCurrentUser", mock.Anything, "u1").Return(nil, errors.New("connection refused"))
		r := newProtectedRouter(tokens, authUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
