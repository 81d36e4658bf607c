package repositories

import (
	"context"
	"time"

	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries backing the
// dashboard and statistics endpoints. All methods are idempotent.
type ReportingRepository interface {
	// CountLeavesByStatus groups leave requests by status, optionally scoped by filter.
	CountLeavesByStatus(ctx context.Context, filter LeaveRequestFilter) ([]domain.StatusCount, error)

	// CountLeavesByType groups leave requests by leave type, optionally scoped by filter.
	CountLeavesByType(ctx context.Context, filter LeaveRequestFilter) ([]domain.TypeCount, error)

	// MonthlyLeaveTrends buckets leave requests created since the given instant by
	// (year, month), ordered ascending. Approved/rejected sub-counts are included.
	MonthlyLeaveTrends(ctx context.Context, filter LeaveRequestFilter, since time.Time) ([]domain.MonthlyTrendRow, error)

	// DepartmentLeaveBreakdown returns per-department request counts by outcome.
	DepartmentLeaveBreakdown(ctx context.Context) ([]domain.DepartmentLeaveStats, error)

	// CountUsersByRole groups active users by role.
	CountUsersByRole(ctx context.Context) ([]domain.RoleCount, error)

	// CountUsersByRoleAndDepartment groups active users by (role, department).
	CountUsersByRoleAndDepartment(ctx context.Context) ([]domain.RoleDepartmentCount, error)

	// CountUsers returns the number of active users.
	CountUsers(ctx context.Context) (int, error)

	// CountLeaves returns the number of leave requests, optionally restricted to one status.
	CountLeaves(ctx context.Context, status *domain.LeaveStatus) (int, error)

	// CountDistinctDepartments returns the number of distinct non-empty user departments.
	CountDistinctDepartments(ctx context.Context) (int, error)

	// CountHolidays returns the number of holidays, optionally restricted to a date range.
	CountHolidays(ctx context.Context, from, to *time.Time) (int, error)
}
