package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetWithProfile(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockDepartmentRepo struct {
	mock.Mock
}

func (m *MockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	return m.Called(ctx, dept).Error(0)
}
func (m *MockDepartmentRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Department, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}
func (m *MockDepartmentRepo) GetWithJobs(ctx context.Context, id, ownerID string) (*domain.Department, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}
func (m *MockDepartmentRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Department, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}
func (m *MockDepartmentRepo) FetchAll(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}
func (m *MockDepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	return m.Called(ctx, dept).Error(0)
}
func (m *MockDepartmentRepo) SoftDelete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*domain.Job, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FetchByOwner(ctx context.Context, ownerID string) ([]domain.Job, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) GetWithResumes(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Candidate, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Candidate), args.Get(1).(int64), args.Error(2)
}
func (m *MockCandidateRepo) FetchByJobID(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}
func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}
func (m *MockCandidateRepo) SetActiveResume(ctx context.Context, id, resumeID string) error {
	return m.Called(ctx, id, resumeID).Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) FetchByCandidateID(ctx context.Context, candidateID string) ([]domain.Resume, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) LinkToJob(ctx context.Context, jobID, resumeID string) error {
	return m.Called(ctx, jobID, resumeID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application, activeResumeID string) error {
	return m.Called(ctx, app, activeResumeID).Error(0)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, candidateID, jobID string) (bool, error) {
	args := m.Called(ctx, candidateID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockShortListRepo struct {
	mock.Mock
}

func (m *MockShortListRepo) Create(ctx context.Context, entry *domain.ShortListed) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockShortListRepo) CheckExists(ctx context.Context, userID, candidateID, jobID string) (bool, error) {
	args := m.Called(ctx, userID, candidateID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockShortListRepo) FetchByUser(ctx context.Context, userID string) ([]domain.ShortListed, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShortListed), args.Error(1)
}
func (m *MockShortListRepo) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, data []byte) (*storage.ObjectDescriptor, error) {
	args := m.Called(ctx, key, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.ObjectDescriptor), args.Error(1)
}
func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(userID, email, name, role string) (string, error) {
	return s.token, s.err
}

func strPtr(s string) *string { return &s }

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestRegister(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{token: "tok"})
	ctx := context.Background()

	t.Run("Should hash password and default role", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once().
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*domain.User)
				assert.NotEmpty(t, u.ID)
				assert.NotEqual(t, "s3cretpass", u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cretpass")))
				assert.Equal(t, domain.RoleUser, u.Role)
			})

		user := &domain.User{Name: "Alice", Email: "alice@example.com"}
		created, err := uc.Register(ctx, user, "s3cretpass")
		assert.NoError(t, err)
		assert.NotNil(t, created)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should surface repository conflict", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(apperror.Conflict("Email already registered")).Once()

		_, err := uc.Register(ctx, &domain.User{Email: "dup@example.com"}, "s3cretpass")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash := mustHash(t, "correct-horse")

	t.Run("Unknown email and wrong password look identical", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{token: "tok"})

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", ctx, "real@example.com").
			Return(&domain.User{ID: "u1", Email: "real@example.com", Password: hash}, nil)

		_, _, errUnknown := uc.Login(ctx, "ghost@example.com", "whatever")
		_, _, errWrongPass := uc.Login(ctx, "real@example.com", "not-the-password")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())

		var appErr *apperror.AppError
		assert.ErrorAs(t, errUnknown, &appErr)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("Valid credentials return a token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{token: "session-token"})

		mockRepo.On("GetByEmail", ctx, "real@example.com").
			Return(&domain.User{ID: "u1", Email: "real@example.com", Password: hash, Role: domain.RoleUser}, nil)

		token, user, err := uc.Login(ctx, "real@example.com", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, "session-token", token)
		assert.Equal(t, "u1", user.ID)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	hash := mustHash(t, "old-password")

	t.Run("Wrong current password is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Password: hash}, nil)

		err := uc.ChangePassword(ctx, "u1", "guess", "new-password")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 401, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reusing the current password is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Password: hash}, nil)

		err := uc.ChangePassword(ctx, "u1", "old-password", "old-password")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("New password is stored as a fresh hash", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, stubIssuer{})
		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Password: hash}, nil)
		mockRepo.On("UpdatePassword", ctx, "u1", mock.AnythingOfType("string")).Return(nil).
			Run(func(args mock.Arguments) {
				stored := args.String(2)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-password")))
			})

		err := uc.ChangePassword(ctx, "u1", "old-password", "new-password")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestProfileUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("First update creates the profile row", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.Profile)
				assert.NotEmpty(t, p.ID)
				assert.Equal(t, "u1", p.UserID)
			})

		saved, err := uc.UpdateMyProfile(ctx, "u1", &domain.Profile{FirstName: "Alice"})
		assert.NoError(t, err)
		assert.NotNil(t, saved)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Later updates keep the existing row identity", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		existing := &domain.Profile{ID: "p1", UserID: "u1", FirstName: "Alice"}
		mockRepo.On("GetByUserID", ctx, "u1").Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.Profile)
				assert.Equal(t, "p1", p.ID)
				assert.Equal(t, "u1", p.UserID)
			})

		saved, err := uc.UpdateMyProfile(ctx, "u1", &domain.Profile{UserID: "someone-else", FirstName: "Alicia"})
		assert.NoError(t, err)
		assert.Equal(t, "p1", saved.ID)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestJobOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Reads are always scoped to the actor", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByIDForOwner", ctx, "job1", "owner1").Return(nil, domain.ErrNotFound)

		_, err := uc.GetJob(ctx, "owner1", "job1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Create stamps the actor as owner", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).
			Run(func(args mock.Arguments) {
				j := args.Get(1).(*domain.Job)
				assert.Equal(t, "owner1", j.CreatedByID)
				assert.NotEmpty(t, j.ID)
			})

		job := &domain.Job{Title: "Backend Engineer", DepartmentID: "d1", CreatedByID: "spoofed"}
		err := uc.CreateJob(ctx, "owner1", job)
		assert.NoError(t, err)
	})

	t.Run("Create rejects a missing title", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		err := uc.CreateJob(ctx, "owner1", &domain.Job{DepartmentID: "d1"})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDepartmentPartialUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Title-only update keeps the stored description", func(t *testing.T) {
		mockRepo := new(MockDepartmentRepo)
		uc := usecase.NewDepartmentUsecase(mockRepo)

		stored := &domain.Department{
			ID: "d1", Title: "Eng", Description: strPtr("Builds the product"),
			CreatedByID: "u1",
		}
		mockRepo.On("GetByIDForOwner", ctx, "d1", "u1").Return(stored, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Department")).Return(nil).
			Run(func(args mock.Arguments) {
				d := args.Get(1).(*domain.Department)
				assert.Equal(t, "Engineering", d.Title)
				assert.NotNil(t, d.Description)
				assert.Equal(t, "Builds the product", *d.Description)
			})

		updated, err := uc.UpdateDepartment(ctx, "u1", "d1", &domain.DepartmentUpdate{Title: strPtr("Engineering")})
		assert.NoError(t, err)
		assert.Equal(t, "Engineering", updated.Title)
		assert.Equal(t, "Builds the product", *updated.Description)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit description change is applied", func(t *testing.T) {
		mockRepo := new(MockDepartmentRepo)
		uc := usecase.NewDepartmentUsecase(mockRepo)

		stored := &domain.Department{ID: "d1", Title: "Eng", Description: strPtr("Old"), CreatedByID: "u1"}
		mockRepo.On("GetByIDForOwner", ctx, "d1", "u1").Return(stored, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Department")).Return(nil)

		updated, err := uc.UpdateDepartment(ctx, "u1", "d1", &domain.DepartmentUpdate{Description: strPtr("New")})
		assert.NoError(t, err)
		assert.Equal(t, "Eng", updated.Title)
		assert.Equal(t, "New", *updated.Description)
	})

	t.Run("Empty title is rejected before the write", func(t *testing.T) {
		mockRepo := new(MockDepartmentRepo)
		uc := usecase.NewDepartmentUsecase(mockRepo)

		mockRepo.On("GetByIDForOwner", ctx, "d1", "u1").
			Return(&domain.Department{ID: "d1", Title: "Eng", CreatedByID: "u1"}, nil)

		_, err := uc.UpdateDepartment(ctx, "u1", "d1", &domain.DepartmentUpdate{Title: strPtr("")})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unowned department is invisible", func(t *testing.T) {
		mockRepo := new(MockDepartmentRepo)
		uc := usecase.NewDepartmentUsecase(mockRepo)

		mockRepo.On("GetByIDForOwner", ctx, "d1", "intruder").Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateDepartment(ctx, "intruder", "d1", &domain.DepartmentUpdate{Title: strPtr("Taken over")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestJobPartialUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Expiry-only update keeps every other field", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		stored := &domain.Job{
			ID: "j1", Title: "Backend Engineer", Description: strPtr("Go services"),
			Type: domain.JobTypeFullTime, ShiftType: domain.ShiftTypeDay,
			DepartmentID: "d1", Location: strPtr("Jakarta"), CreatedByID: "u1",
		}
		mockRepo.On("GetByIDForOwner", ctx, "j1", "u1").Return(stored, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		newExpiry := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		updated, err := uc.UpdateJob(ctx, "u1", "j1", &domain.JobUpdate{ExpiryDate: &newExpiry})
		assert.NoError(t, err)
		assert.Equal(t, newExpiry, updated.ExpiryDate)
		assert.Equal(t, "Backend Engineer", updated.Title)
		assert.Equal(t, "Go services", *updated.Description)
		assert.Equal(t, domain.JobTypeFullTime, updated.Type)
		assert.Equal(t, domain.ShiftTypeDay, updated.ShiftType)
		assert.Equal(t, "Jakarta", *updated.Location)
	})

	t.Run("Empty title is rejected", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByIDForOwner", ctx, "j1", "u1").
			Return(&domain.Job{ID: "j1", Title: "Backend Engineer", CreatedByID: "u1"}, nil)

		_, err := uc.UpdateJob(ctx, "u1", "j1", &domain.JobUpdate{Title: strPtr("")})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCandidatePartialUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Score-only update keeps identity fields", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		stored := &domain.Candidate{
			ID: "c1", Name: "Jane Doe", Email: strPtr("jane@example.com"),
			Phone: strPtr("+6281234567890"),
		}
		mockRepo.On("GetByID", ctx, "c1").Return(stored, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		score := 87.5
		updated, err := uc.UpdateCandidate(ctx, "c1", &domain.CandidateUpdate{Score: &score})
		assert.NoError(t, err)
		assert.Equal(t, 87.5, *updated.Score)
		assert.Equal(t, "Jane Doe", updated.Name)
		assert.Equal(t, "jane@example.com", *updated.Email)
		assert.Equal(t, "+6281234567890", *updated.Phone)
	})

	t.Run("Invalid patch fields fail before the read", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(mockRepo)

		badAge := -1
		_, err := uc.UpdateCandidate(ctx, "c1", &domain.CandidateUpdate{Age: &badAge})
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestUploadResume(t *testing.T) {
	ctx := context.Background()
	pdf := []byte("%PDF-1.7 fake body")

	t.Run("Rejects non-PDF payloads", func(t *testing.T) {
		uc := usecase.NewResumeUsecase(new(MockResumeRepo), new(MockCandidateRepo), new(MockJobRepo), new(MockObjectStore))

		_, err := uc.UploadResume(ctx, "c1", []byte("plain text"))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Storage failure maps to upstream error", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		store := new(MockObjectStore)
		uc := usecase.NewResumeUsecase(new(MockResumeRepo), candidateRepo, new(MockJobRepo), store)

		candidateRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		store.On("Upload", ctx, mock.AnythingOfType("string"), pdf).Return(nil, errors.New("connection refused"))

		_, err := uc.UploadResume(ctx, "c1", pdf)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 502, appErr.Code)
	})

	t.Run("Failed row write deletes the uploaded object", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		resumeRepo := new(MockResumeRepo)
		store := new(MockObjectStore)
		uc := usecase.NewResumeUsecase(resumeRepo, candidateRepo, new(MockJobRepo), store)

		var uploadedKey string
		candidateRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		store.On("Upload", ctx, mock.AnythingOfType("string"), pdf).
			Return(&storage.ObjectDescriptor{Key: "k", Path: "p", FullPath: "https://cdn/p"}, nil).
			Run(func(args mock.Arguments) {
				uploadedKey = args.String(1)
			})
		resumeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(errors.New("insert failed"))
		store.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil).
			Run(func(args mock.Arguments) {
				assert.Equal(t, uploadedKey, args.String(1))
			})

		_, err := uc.UploadResume(ctx, "c1", pdf)
		assert.Error(t, err)
		store.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("string"))
	})

	t.Run("Fresh upload becomes the active resume", func(t *testing.T) {
		candidateRepo := new(MockCandidateRepo)
		resumeRepo := new(MockResumeRepo)
		store := new(MockObjectStore)
		uc := usecase.NewResumeUsecase(resumeRepo, candidateRepo, new(MockJobRepo), store)

		candidateRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		store.On("Upload", ctx, mock.AnythingOfType("string"), pdf).
			Return(&storage.ObjectDescriptor{Key: "k", Path: "p", FullPath: "https://cdn/p"}, nil)
		resumeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil)
		candidateRepo.On("SetActiveResume", ctx, "c1", mock.AnythingOfType("string")).Return(nil)

		resume, err := uc.UploadResume(ctx, "c1", pdf)
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/p", resume.URL)
		assert.Equal(t, "c1", resume.CandidateID)
		candidateRepo.AssertCalled(t, "SetActiveResume", ctx, "c1", resume.ID)
	})
}

func TestApplyToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate application is a conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candidateRepo)

		jobRepo.On("GetByIDForOwner", ctx, "j1", "owner1").Return(&domain.Job{ID: "j1"}, nil)
		candidateRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		appRepo.On("CheckExists", ctx, "c1", "j1").Return(true, nil)

		_, err := uc.ApplyToJob(ctx, "owner1", "j1", "c1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Active resume travels with the application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candidateRepo)

		resumeID := "r1"
		jobRepo.On("GetByIDForOwner", ctx, "j1", "owner1").Return(&domain.Job{ID: "j1"}, nil)
		candidateRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1", ActiveResumeID: &resumeID}, nil)
		appRepo.On("CheckExists", ctx, "c1", "j1").Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application"), "r1").Return(nil)

		app, err := uc.ApplyToJob(ctx, "owner1", "j1", "c1")
		assert.NoError(t, err)
		assert.Equal(t, "c1", app.CandidateID)
		assert.Equal(t, "j1", app.JobID)
		appRepo.AssertExpectations(t)
	})

	t.Run("Foreign job is invisible to the actor", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candidateRepo)

		jobRepo.On("GetByIDForOwner", ctx, "j1", "intruder").Return(nil, domain.ErrNotFound)

		_, err := uc.ApplyToJob(ctx, "intruder", "j1", "c1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestShortListCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate shortlist entry is a conflict", func(t *testing.T) {
		shortListRepo := new(MockShortListRepo)
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewShortListUsecase(shortListRepo, jobRepo, candidateRepo)

		jobRepo.On("GetByIDForOwner", ctx, "j1", "u1").Return(&domain.Job{ID: "j1"}, nil)
		candidateRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		shortListRepo.On("CheckExists", ctx, "u1", "c1", "j1").Return(true, nil)

		_, err := uc.ShortListCandidate(ctx, "u1", "c1", "j1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Entry is stamped with the actor", func(t *testing.T) {
		shortListRepo := new(MockShortListRepo)
		jobRepo := new(MockJobRepo)
		candidateRepo := new(MockCandidateRepo)
		uc := usecase.NewShortListUsecase(shortListRepo, jobRepo, candidateRepo)

		jobRepo.On("GetByIDForOwner", ctx, "j1", "u1").Return(&domain.Job{ID: "j1"}, nil)
		candidateRepo.On("GetByID", ctx, "c1").Return(&domain.Candidate{ID: "c1"}, nil)
		shortListRepo.On("CheckExists", ctx, "u1", "c1", "j1").Return(false, nil)
		shortListRepo.On("Create", ctx, mock.AnythingOfType("*domain.ShortListed")).Return(nil)

		entry, err := uc.ShortListCandidate(ctx, "u1", "c1", "j1")
		assert.NoError(t, err)
		assert.Equal(t, "u1", entry.UserID)
		assert.NotEmpty(t, entry.ID)
	})
}
