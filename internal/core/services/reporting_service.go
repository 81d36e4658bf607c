package services

import (
	"context"
	"fmt"
	"time"

	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
)

// Trend window lengths, in months, for the different statistics views.
const (
	managerTrendMonths  = 3
	detailedTrendMonths = 6
	employeeTrendMonths = 12
)

// recentRequestsLimit caps the recent-requests list on the manager view.
const recentRequestsLimit = 10

// employeeHistoryLimit caps the leave history list on the employee view.
const employeeHistoryLimit = 50

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	leaveRepo     portsrepo.LeaveRepositoryFacade
}

// NewReportingService creates a new instance of reportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, leaveRepo portsrepo.LeaveRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		leaveRepo:     leaveRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func monthsAgo(n int) time.Time {
	return time.Now().AddDate(0, -n, 0)
}

func (s *reportingService) GetManagerStats(ctx context.Context, actor domain.User) (*dto.ManagerStatsResponse, error) {
	if actor.Role != domain.RoleManager {
		return nil, fmt.Errorf("manager statistics require the manager role: %w", apperrors.ErrForbidden)
	}

	dept := actor.Department
	filter := portsrepo.LeaveRequestFilter{Department: &dept}

	statusStats, err := s.reportingRepo.CountLeavesByStatus(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department status stats: %w", err)
	}

	recent, err := s.leaveRepo.FindRecentLeaveRequests(ctx, filter, recentRequestsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent department requests: %w", err)
	}

	trends, err := s.reportingRepo.MonthlyLeaveTrends(ctx, filter, monthsAgo(managerTrendMonths))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department monthly trends: %w", err)
	}

	return &dto.ManagerStatsResponse{
		DepartmentStats:   emptyIfNilStatus(statusStats),
		RecentRequests:    dto.ToLeaveResponseSlice(recent),
		MonthlyDeptTrends: emptyIfNilTrends(trends),
		Department:        dept,
	}, nil
}

func (s *reportingService) GetEmployeeStats(ctx context.Context, actor domain.User) (*dto.EmployeeStatsResponse, error) {
	employeeID := actor.UserID
	filter := portsrepo.LeaveRequestFilter{EmployeeID: &employeeID}

	history, err := s.leaveRepo.FindRecentLeaveRequests(ctx, filter, employeeHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee leave history: %w", err)
	}

	statusStats, err := s.reportingRepo.CountLeavesByStatus(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate employee status stats: %w", err)
	}

	typeStats, err := s.reportingRepo.CountLeavesByType(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate employee type stats: %w", err)
	}

	trends, err := s.reportingRepo.MonthlyLeaveTrends(ctx, filter, monthsAgo(employeeTrendMonths))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate employee monthly trends: %w", err)
	}

	return &dto.EmployeeStatsResponse{
		LeaveHistory:     dto.ToLeaveResponseSlice(history),
		LeaveStatusStats: emptyIfNilStatus(statusStats),
		LeaveTypeStats:   emptyIfNilTypes(typeStats),
		MonthlyTrends:    emptyIfNilTrends(trends),
	}, nil
}

func (s *reportingService) GetAdminDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalUsers, err := s.reportingRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users for dashboard: %w", err)
	}

	pending := domain.LeavePending
	pendingCount, err := s.reportingRepo.CountLeaves(ctx, &pending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending requests for dashboard: %w", err)
	}

	departments, err := s.reportingRepo.CountDistinctDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count departments for dashboard: %w", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	holidaysThisMonth, err := s.reportingRepo.CountHolidays(ctx, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count holidays for dashboard: %w", err)
	}

	roleCounts, err := s.reportingRepo.CountUsersByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users by role for dashboard: %w", err)
	}

	var roles dto.RoleSummary
	for _, rc := range roleCounts {
		switch rc.Role {
		case domain.RoleEmployee:
			roles.Employee = rc.Count
		case domain.RoleManager:
			roles.Manager = rc.Count
		case domain.RoleAdmin:
			roles.Admin = rc.Count
		}
	}

	return &dto.DashboardResponse{
		TotalUsers:        totalUsers,
		PendingRequests:   pendingCount,
		Departments:       departments,
		HolidaysThisMonth: holidaysThisMonth,
		UserRoles:         roles,
	}, nil
}

func (s *reportingService) GetAdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totalUsers, err := s.reportingRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users for admin stats: %w", err)
	}

	totalLeaves, err := s.reportingRepo.CountLeaves(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests for admin stats: %w", err)
	}

	counts := map[domain.LeaveStatus]int{}
	for _, status := range []domain.LeaveStatus{domain.LeavePending, domain.LeaveApproved, domain.LeaveRejected} {
		st := status
		n, err := s.reportingRepo.CountLeaves(ctx, &st)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s requests for admin stats: %w", status, err)
		}
		counts[status] = n
	}

	totalHolidays, err := s.reportingRepo.CountHolidays(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count holidays for admin stats: %w", err)
	}

	return &dto.AdminStatsResponse{
		TotalUsers:     totalUsers,
		TotalLeaves:    totalLeaves,
		PendingLeaves:  counts[domain.LeavePending],
		ApprovedLeaves: counts[domain.LeaveApproved],
		RejectedLeaves: counts[domain.LeaveRejected],
		TotalHolidays:  totalHolidays,
	}, nil
}

func (s *reportingService) GetDetailedStats(ctx context.Context) (*dto.DetailedStatsResponse, error) {
	noFilter := portsrepo.LeaveRequestFilter{}

	statusStats, err := s.reportingRepo.CountLeavesByStatus(ctx, noFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate status stats: %w", err)
	}

	typeStats, err := s.reportingRepo.CountLeavesByType(ctx, noFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate type stats: %w", err)
	}

	deptStats, err := s.reportingRepo.DepartmentLeaveBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department breakdown: %w", err)
	}

	trends, err := s.reportingRepo.MonthlyLeaveTrends(ctx, noFilter, monthsAgo(detailedTrendMonths))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly trends: %w", err)
	}

	roleDeptStats, err := s.reportingRepo.CountUsersByRoleAndDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate role distribution: %w", err)
	}

	if deptStats == nil {
		deptStats = []domain.DepartmentLeaveStats{}
	}
	if roleDeptStats == nil {
		roleDeptStats = []domain.RoleDepartmentCount{}
	}

	return &dto.DetailedStatsResponse{
		LeaveStatusStats:  emptyIfNilStatus(statusStats),
		LeaveTypeStats:    emptyIfNilTypes(typeStats),
		DepartmentStats:   deptStats,
		MonthlyTrends:     emptyIfNilTrends(trends),
		UserRoleDeptStats: roleDeptStats,
	}, nil
}

func emptyIfNilStatus(in []domain.StatusCount) []domain.StatusCount {
	if in == nil {
		return []domain.StatusCount{}
	}
	return in
}

func emptyIfNilTypes(in []domain.TypeCount) []domain.TypeCount {
	if in == nil {
		return []domain.TypeCount{}
	}
	return in
}

func emptyIfNilTrends(in []domain.MonthlyTrendRow) []domain.MonthlyTrendRow {
	if in == nil {
		return []domain.MonthlyTrendRow{}
	}
	return in
}
