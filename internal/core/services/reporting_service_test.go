package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CountLeavesByStatus(ctx context.Context, filter portsrepo.LeaveRequestFilter) ([]domain.StatusCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockReportingRepository) CountLeavesByType(ctx context.Context, filter portsrepo.LeaveRequestFilter) ([]domain.TypeCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeCount), args.Error(1)
}

func (m *MockReportingRepository) MonthlyLeaveTrends(ctx context.Context, filter portsrepo.LeaveRequestFilter, since time.Time) ([]domain.MonthlyTrendRow, error) {
	args := m.Called(ctx, filter, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTrendRow), args.Error(1)
}

func (m *MockReportingRepository) DepartmentLeaveBreakdown(ctx context.Context) ([]domain.DepartmentLeaveStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentLeaveStats), args.Error(1)
}

func (m *MockReportingRepository) CountUsersByRole(ctx context.Context) ([]domain.RoleCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleCount), args.Error(1)
}

func (m *MockReportingRepository) CountUsersByRoleAndDepartment(ctx context.Context) ([]domain.RoleDepartmentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleDepartmentCount), args.Error(1)
}

func (m *MockReportingRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountLeaves(ctx context.Context, status *domain.LeaveStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountDistinctDepartments(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountHolidays(ctx context.Context, from, to *time.Time) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

// withinMonthsAgo reports whether ts sits close to n months before now.
func withinMonthsAgo(ts time.Time, n int) bool {
	expected := time.Now().AddDate(0, -n, 0)
	diff := ts.Sub(expected)
	if diff < 0 {
		diff = -diff
	}
	return diff < time.Minute
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockLeaveRepo     *MockLeaveRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockLeaveRepo = new(MockLeaveRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockLeaveRepo)
}

func (suite *ReportingServiceTestSuite) TestGetManagerStats_NonManagerForbidden() {
	_, err := suite.service.GetManagerStats(context.Background(), employeeActor())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReportingServiceTestSuite) TestGetManagerStats_ScopesToDepartmentAndWindow() {
	ctx := context.Background()
	manager := managerActor("engineering")

	deptFilter := mock.MatchedBy(func(f portsrepo.LeaveRequestFilter) bool {
		return f.Department != nil && *f.Department == "engineering" && f.EmployeeID == nil
	})

	suite.mockReportingRepo.On("CountLeavesByStatus", ctx, deptFilter).
		Return([]domain.StatusCount{{Status: domain.LeavePending, Count: 4}}, nil).Once()
	suite.mockLeaveRepo.On("FindRecentLeaveRequests", ctx, mock.Anything, 10).
		Return([]domain.LeaveRequest{}, nil).Once()
	suite.mockReportingRepo.On("MonthlyLeaveTrends", ctx, deptFilter, mock.MatchedBy(func(since time.Time) bool {
		return withinMonthsAgo(since, 3)
	})).Return([]domain.MonthlyTrendRow{}, nil).Once()

	stats, err := suite.service.GetManagerStats(ctx, manager)

	suite.Require().NoError(err)
	suite.Equal("engineering", stats.Department)
	suite.Len(stats.DepartmentStats, 1)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetEmployeeStats_TwelveMonthWindow() {
	ctx := context.Background()
	actor := employeeActor()

	ownFilter := mock.MatchedBy(func(f portsrepo.LeaveRequestFilter) bool {
		return f.EmployeeID != nil && *f.EmployeeID == actor.UserID
	})

	suite.mockLeaveRepo.On("FindRecentLeaveRequests", ctx, mock.Anything, 50).
		Return([]domain.LeaveRequest{}, nil).Once()
	suite.mockReportingRepo.On("CountLeavesByStatus", ctx, ownFilter).
		Return(nil, nil).Once()
	suite.mockReportingRepo.On("CountLeavesByType", ctx, ownFilter).
		Return(nil, nil).Once()
	suite.mockReportingRepo.On("MonthlyLeaveTrends", ctx, ownFilter, mock.MatchedBy(func(since time.Time) bool {
		return withinMonthsAgo(since, 12)
	})).Return(nil, nil).Once()

	stats, err := suite.service.GetEmployeeStats(ctx, actor)

	suite.Require().NoError(err)
	suite.NotNil(stats.LeaveStatusStats)
	suite.NotNil(stats.LeaveTypeStats)
	suite.NotNil(stats.MonthlyTrends)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetAdminDashboard() {
	ctx := context.Background()
	pending := domain.LeavePending

	suite.mockReportingRepo.On("CountUsers", ctx).Return(42, nil).Once()
	suite.mockReportingRepo.On("CountLeaves", ctx, &pending).Return(7, nil).Once()
	suite.mockReportingRepo.On("CountDistinctDepartments", ctx).Return(5, nil).Once()
	suite.mockReportingRepo.On("CountHolidays", ctx, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return(2, nil).Once()
	suite.mockReportingRepo.On("CountUsersByRole", ctx).Return([]domain.RoleCount{
		{Role: domain.RoleEmployee, Count: 35},
		{Role: domain.RoleManager, Count: 6},
		{Role: domain.RoleAdmin, Count: 1},
	}, nil).Once()

	dashboard, err := suite.service.GetAdminDashboard(ctx)

	suite.Require().NoError(err)
	suite.Equal(42, dashboard.TotalUsers)
	suite.Equal(7, dashboard.PendingRequests)
	suite.Equal(5, dashboard.Departments)
	suite.Equal(2, dashboard.HolidaysThisMonth)
	suite.Equal(35, dashboard.UserRoles.Employee)
	suite.Equal(6, dashboard.UserRoles.Manager)
	suite.Equal(1, dashboard.UserRoles.Admin)
}

func (suite *ReportingServiceTestSuite) TestGetAdminStats() {
	ctx := context.Background()
	pending := domain.LeavePending
	approved := domain.LeaveApproved
	rejected := domain.LeaveRejected

	suite.mockReportingRepo.On("CountUsers", ctx).Return(42, nil).Once()
	suite.mockReportingRepo.On("CountLeaves", ctx, (*domain.LeaveStatus)(nil)).Return(100, nil).Once()
	suite.mockReportingRepo.On("CountLeaves", ctx, &pending).Return(10, nil).Once()
	suite.mockReportingRepo.On("CountLeaves", ctx, &approved).Return(70, nil).Once()
	suite.mockReportingRepo.On("CountLeaves", ctx, &rejected).Return(20, nil).Once()
	suite.mockReportingRepo.On("CountHolidays", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(12, nil).Once()

	stats, err := suite.service.GetAdminStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(100, stats.TotalLeaves)
	suite.Equal(10, stats.PendingLeaves)
	suite.Equal(70, stats.ApprovedLeaves)
	suite.Equal(20, stats.RejectedLeaves)
	suite.Equal(12, stats.TotalHolidays)
}

func (suite *ReportingServiceTestSuite) TestGetDetailedStats_SixMonthWindow() {
	ctx := context.Background()
	noFilter := portsrepo.LeaveRequestFilter{}

	suite.mockReportingRepo.On("CountLeavesByStatus", ctx, noFilter).Return(nil, nil).Once()
	suite.mockReportingRepo.On("CountLeavesByType", ctx, noFilter).Return(nil, nil).Once()
	suite.mockReportingRepo.On("DepartmentLeaveBreakdown", ctx).
		Return([]domain.DepartmentLeaveStats{{Department: "engineering", TotalRequests: 9}}, nil).Once()
	suite.mockReportingRepo.On("MonthlyLeaveTrends", ctx, noFilter, mock.MatchedBy(func(since time.Time) bool {
		return withinMonthsAgo(since, 6)
	})).Return(nil, nil).Once()
	suite.mockReportingRepo.On("CountUsersByRoleAndDepartment", ctx).Return(nil, nil).Once()

	stats, err := suite.service.GetDetailedStats(ctx)

	suite.Require().NoError(err)
	suite.Len(stats.DepartmentStats, 1)
	suite.NotNil(stats.UserRoleDeptStats)
	suite.NotNil(stats.MonthlyTrends)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetAdminDashboard_PropagatesCountError() {
	ctx := context.Background()

	suite.mockReportingRepo.On("CountUsers", ctx).Return(0, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAdminDashboard(ctx)

	suite.Require().Error(err)
}

func (suite *ReportingServiceTestSuite) TestGetManagerStats_RecentRequestsPassedThrough() {
	ctx := context.Background()
	manager := managerActor("sales")
	leave := pendingLeave(uuid.NewString(), "sales")

	suite.mockReportingRepo.On("CountLeavesByStatus", ctx, mock.Anything).Return(nil, nil).Once()
	suite.mockLeaveRepo.On("FindRecentLeaveRequests", ctx, mock.Anything, 10).
		Return([]domain.LeaveRequest{*leave}, nil).Once()
	suite.mockReportingRepo.On("MonthlyLeaveTrends", ctx, mock.Anything, mock.Anything).
		Return(nil, nil).Once()

	stats, err := suite.service.GetManagerStats(ctx, manager)

	suite.Require().NoError(err)
	suite.Require().Len(stats.RecentRequests, 1)
	suite.Equal(leave.LeaveRequestID, stats.RecentRequests[0].LeaveRequestID)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
