package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ats-backend/internal/delivery/http/middleware"
	v1 "go-ats-backend/internal/delivery/http/v1"
	"go-ats-backend/internal/domain"
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

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileUsecase) UpdateMyProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func newMeRouter(authUC domain.AuthUsecase, profileUC domain.ProfileUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	protected := r.Group("/v1")
	protected.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), "u1")
	})
	v1.NewMeHandler(protected, authUC, profileUC)
	return r
}

func TestChangePasswordEndpoint(t *testing.T) {
	t.Run("Confirmation mismatch is a conflict", func(t *testing.T) {
		authUC := new(MockAuthUsecase)
		r := newMeRouter(authUC, new(MockProfileUsecase))

		body := `{"current_password":"old-password","new_password":"new-password","confirm_password":"different"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/me/password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		authUC.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Matching confirmation reaches the usecase", func(t *testing.T) {
		authUC := new(MockAuthUsecase)
		authUC.On("ChangePassword", mock.Anything, "u1", "old-password", "new-password").Return(nil)
		r := newMeRouter(authUC, new(MockProfileUsecase))

		body := `{"current_password":"old-password","new_password":"new-password","confirm_password":"new-password"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/me/password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		authUC.AssertExpectations(t)
	})
}
