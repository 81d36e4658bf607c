package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
)

type departmentService struct {
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates a new instance of departmentService.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error) {
	now := time.Now()
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create department in service: %w", err)
	}
	return &department, nil
}

func (s *departmentService) GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get department by name in service: %w", err)
	}
	return department, nil
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.FindDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments in service: %w", err)
	}
	if departments == nil {
		return []domain.Department{}, nil
	}
	return departments, nil
}
