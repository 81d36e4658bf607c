package services

import (
	"context"

	"github.com/leavehq/leave_management_app/internal/core/domain"
	"github.com/leavehq/leave_management_app/internal/dto"
)

// ReportingSvcFacade defines the read-only statistics aggregations.
type ReportingSvcFacade interface {
	// GetManagerStats aggregates leave statistics for the manager's department
	// over the last three months.
	GetManagerStats(ctx context.Context, actor domain.User) (*dto.ManagerStatsResponse, error)

	// GetEmployeeStats aggregates the actor's own leave statistics over the last
	// twelve months.
	GetEmployeeStats(ctx context.Context, actor domain.User) (*dto.EmployeeStatsResponse, error)

	// GetAdminDashboard aggregates the org-wide dashboard counters.
	GetAdminDashboard(ctx context.Context) (*dto.DashboardResponse, error)

	// GetAdminStats aggregates org-wide totals.
	GetAdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)

	// GetDetailedStats aggregates org-wide distributions and six-month trends.
	GetDetailedStats(ctx context.Context) (*dto.DetailedStatsResponse, error)
}
