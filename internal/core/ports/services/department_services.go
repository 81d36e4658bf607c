package services

import (
	"context"

	"github.com/leavehq/leave_management_app/internal/core/domain"
	"github.com/leavehq/leave_management_app/internal/dto"
)

// DepartmentSvcFacade defines the admin-facing department reference operations.
type DepartmentSvcFacade interface {
	// CreateDepartment persists a new department.
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error)

	// GetDepartmentByName retrieves a department by its unique name.
	GetDepartmentByName(ctx context.Context, name string) (*domain.Department, error)

	// ListDepartments retrieves all departments ordered by name.
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}
