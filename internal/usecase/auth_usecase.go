package usecase

import (
	"context"
	"errors"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer abstracts session issuance so tests can stub it.
type TokenIssuer interface {
	Issue(userID, email, name, role string) (string, error)
}

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   TokenIssuer
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens TokenIssuer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user.ID = uuid.NewString()
	user.Password = string(hash)
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same failure as a wrong password; never reveal which
			// part of the credential was wrong.
			return "", nil, apperror.Unauthorized(domain.ErrInvalidCredentials.Error())
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized(domain.ErrInvalidCredentials.Error())
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	return token, user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetWithProfile(ctx, id)
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}
	if newPassword == currentPassword {
		return apperror.Conflict("New password must be different from the current password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.UpdatePassword(ctx, userID, string(hash))
}
