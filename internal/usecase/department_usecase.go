package usecase

import (
	"context"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"

	"github.com/google/uuid"
)

type departmentUsecase struct {
	deptRepo domain.DepartmentRepository
}

func NewDepartmentUsecase(deptRepo domain.DepartmentRepository) domain.DepartmentUsecase {
	return &departmentUsecase{deptRepo: deptRepo}
}

func (u *departmentUsecase) CreateDepartment(ctx context.Context, actorID string, dept *domain.Department) error {
	if dept.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	dept.ID = uuid.NewString()
	dept.IsDeleted = false
	dept.CreatedByID = actorID
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt

	return u.deptRepo.Create(ctx, dept)
}

func (u *departmentUsecase) GetDepartment(ctx context.Context, actorID, id string) (*domain.Department, error) {
	return u.deptRepo.GetWithJobs(ctx, id, actorID)
}

func (u *departmentUsecase) ListMyDepartments(ctx context.Context, actorID string) ([]domain.Department, error) {
	return u.deptRepo.FetchByOwner(ctx, actorID)
}

func (u *departmentUsecase) ListAllDepartments(ctx context.Context) ([]domain.Department, error) {
	return u.deptRepo.FetchAll(ctx)
}

// UpdateDepartment merges the patch over the stored row so that omitted
// fields survive the write untouched.
func (u *departmentUsecase) UpdateDepartment(ctx context.Context, actorID, id string, patch *domain.DepartmentUpdate) (*domain.Department, error) {
	dept, err := u.deptRepo.GetByIDForOwner(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, apperror.BadRequest("Title cannot be empty")
		}
		dept.Title = *patch.Title
	}
	if patch.Description != nil {
		dept.Description = patch.Description
	}

	dept.UpdatedAt = time.Now()
	if err := u.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// DeleteDepartment marks the department deleted. Jobs created under it
// keep their reference; only the department disappears from listings.
func (u *departmentUsecase) DeleteDepartment(ctx context.Context, actorID, id string) error {
	return u.deptRepo.SoftDelete(ctx, id, actorID)
}
