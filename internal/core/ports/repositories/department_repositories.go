package repositories

import (
	"context"

	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// DepartmentRepositoryFacade defines operations for department reference data.
type DepartmentRepositoryFacade interface {
	// SaveDepartment persists a new department.
	SaveDepartment(ctx context.Context, department domain.Department) error

	// FindDepartmentByName retrieves a department by its unique name.
	FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error)

	// FindDepartments retrieves all departments ordered by name.
	FindDepartments(ctx context.Context) ([]domain.Department, error)
}
