package dto

import (
	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// ManagerStatsResponse aggregates leave statistics for one department.
type ManagerStatsResponse struct {
	DepartmentStats   []domain.StatusCount     `json:"departmentStats"`
	RecentRequests    []LeaveResponse          `json:"recentRequests"`
	MonthlyDeptTrends []domain.MonthlyTrendRow `json:"monthlyDeptTrends"`
	Department        string                   `json:"department"`
}

// EmployeeStatsResponse aggregates one employee's leave statistics.
type EmployeeStatsResponse struct {
	LeaveHistory     []LeaveResponse          `json:"leaveHistory"`
	LeaveStatusStats []domain.StatusCount     `json:"leaveStatusStats"`
	LeaveTypeStats   []domain.TypeCount       `json:"leaveTypeStats"`
	MonthlyTrends    []domain.MonthlyTrendRow `json:"monthlyTrends"`
}

// RoleSummary is the flattened role distribution shown on the admin dashboard.
type RoleSummary struct {
	Employee int `json:"employee"`
	Manager  int `json:"manager"`
	Admin    int `json:"admin"`
}

// DashboardResponse carries the org-wide dashboard counters.
type DashboardResponse struct {
	TotalUsers        int         `json:"totalUsers"`
	PendingRequests   int         `json:"pendingRequests"`
	Departments       int         `json:"departments"`
	HolidaysThisMonth int         `json:"holidaysThisMonth"`
	UserRoles         RoleSummary `json:"userRoles"`
}

// AdminStatsResponse carries org-wide totals.
type AdminStatsResponse struct {
	TotalUsers     int `json:"totalUsers"`
	TotalLeaves    int `json:"totalLeaves"`
	PendingLeaves  int `json:"pendingLeaves"`
	ApprovedLeaves int `json:"approvedLeaves"`
	RejectedLeaves int `json:"rejectedLeaves"`
	TotalHolidays  int `json:"totalHolidays"`
}

// DetailedStatsResponse carries the org-wide distributions used by the admin charts.
type DetailedStatsResponse struct {
	LeaveStatusStats  []domain.StatusCount          `json:"leaveStatusStats"`
	LeaveTypeStats    []domain.TypeCount            `json:"leaveTypeStats"`
	DepartmentStats   []domain.DepartmentLeaveStats `json:"departmentStats"`
	MonthlyTrends     []domain.MonthlyTrendRow      `json:"monthlyTrends"`
	UserRoleDeptStats []domain.RoleDepartmentCount  `json:"userRoleDeptStats"`
}
