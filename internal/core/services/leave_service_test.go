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
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeaveRepository ---
type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leaveRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) ListLeaveRequests(ctx context.Context, filter portsrepo.LeaveRequestFilter, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var leaves []domain.LeaveRequest
	if args.Get(0) != nil {
		leaves = args.Get(0).([]domain.LeaveRequest)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return leaves, token, args.Error(2)
}

func (m *MockLeaveRepository) FindRecentLeaveRequests(ctx context.Context, filter portsrepo.LeaveRequestFilter, limit int) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) SaveLeaveRequest(ctx context.Context, leave domain.LeaveRequest) error {
	args := m.Called(ctx, leave)
	return args.Error(0)
}

func (m *MockLeaveRepository) ApproveLeaveRequest(ctx context.Context, leave domain.LeaveRequest, managerID string, managerNote *string, decidedAt time.Time) error {
	args := m.Called(ctx, leave, managerID, managerNote, decidedAt)
	return args.Error(0)
}

func (m *MockLeaveRepository) RejectLeaveRequest(ctx context.Context, leaveRequestID string, managerID string, managerNote *string, decidedAt time.Time) error {
	args := m.Called(ctx, leaveRequestID, managerID, managerNote, decidedAt)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindManagerIDsByDepartment(ctx context.Context, department string) ([]string, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, role, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error {
	args := m.Called(ctx, userID, loginAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock HolidayRepository ---
type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	args := m.Called(ctx, holidayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) FindHolidays(ctx context.Context) ([]domain.Holiday, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) FindHolidaysInRange(ctx context.Context, start, end time.Time) ([]domain.Holiday, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Holiday), args.Error(1)
}

func (m *MockHolidayRepository) SaveHoliday(ctx context.Context, holiday domain.Holiday) error {
	args := m.Called(ctx, holiday)
	return args.Error(0)
}

func (m *MockHolidayRepository) UpdateHoliday(ctx context.Context, holiday domain.Holiday) error {
	args := m.Called(ctx, holiday)
	return args.Error(0)
}

func (m *MockHolidayRepository) DeleteHoliday(ctx context.Context, holidayID string) error {
	args := m.Called(ctx, holidayID)
	return args.Error(0)
}

// --- Mock publisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishLeaveStatus(ctx context.Context, event domain.LeaveStatusEvent) {
	m.Called(ctx, event)
}

// --- Test Suite ---
type LeaveServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo   *MockLeaveRepository
	mockUserRepo    *MockUserRepository
	mockHolidayRepo *MockHolidayRepository
	mockPublisher   *MockPublisher
	service         portssvc.LeaveSvcFacade
}

func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.mockLeaveRepo = new(MockLeaveRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockHolidayRepo = new(MockHolidayRepository)
	suite.mockPublisher = new(MockPublisher)
	suite.service = services.NewLeaveService(suite.mockLeaveRepo, suite.mockUserRepo, suite.mockHolidayRepo, suite.mockPublisher)
}

func employeeActor() domain.User {
	return domain.User{
		UserID:       uuid.NewString(),
		Name:         "Alice Example",
		Email:        "alice@example.com",
		Role:         domain.RoleEmployee,
		Department:   "engineering",
		LeaveBalance: domain.DefaultLeaveBalance(),
	}
}

func managerActor(department string) domain.User {
	return domain.User{
		UserID:     uuid.NewString(),
		Name:       "Mark Manager",
		Role:       domain.RoleManager,
		Department: department,
	}
}

func pendingLeave(employeeID, department string) *domain.LeaveRequest {
	return &domain.LeaveRequest{
		LeaveRequestID: uuid.NewString(),
		EmployeeID:     employeeID,
		EmployeeName:   "Alice Example",
		Department:     department,
		LeaveType:      domain.LeaveAnnual,
		StartDate:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		TotalDays:      3,
		Reason:         "vacation",
		Status:         domain.LeavePending,
	}
}

// --- CreateLeaveRequest ---

func (suite *LeaveServiceTestSuite) TestCreateLeaveRequest_Success() {
	ctx := context.Background()
	actor := employeeActor()
	req := dto.CreateLeaveRequest{
		StartDate: "2026-09-07",
		EndDate:   "2026-09-09",
		LeaveType: "annual",
		Reason:    "vacation",
		TotalDays: 3,
	}

	suite.mockHolidayRepo.On("FindHolidaysInRange", ctx, mock.Anything, mock.Anything).
		Return([]domain.Holiday{}, nil).Once()
	suite.mockLeaveRepo.On("SaveLeaveRequest", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.EmployeeID == actor.UserID &&
			l.Department == actor.Department &&
			l.Status == domain.LeavePending &&
			l.LeaveType == domain.LeaveAnnual &&
			l.TotalDays == 3 &&
			l.LeaveRequestID != ""
	})).Return(nil).Once()

	leave, err := suite.service.CreateLeaveRequest(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(leave)
	suite.Equal(domain.LeavePending, leave.Status)
	suite.Equal(actor.Department, leave.Department)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestCreateLeaveRequest_NonEmployeeForbidden() {
	ctx := context.Background()
	actor := managerActor("engineering")

	_, err := suite.service.CreateLeaveRequest(ctx, actor, dto.CreateLeaveRequest{
		StartDate: "2026-09-07",
		EndDate:   "2026-09-09",
		LeaveType: "annual",
		Reason:    "vacation",
		TotalDays: 3,
	})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestCreateLeaveRequest_EndBeforeStart() {
	ctx := context.Background()
	actor := employeeActor()

	_, err := suite.service.CreateLeaveRequest(ctx, actor, dto.CreateLeaveRequest{
		StartDate: "2026-09-09",
		EndDate:   "2026-09-07",
		LeaveType: "annual",
		Reason:    "vacation",
		TotalDays: 3,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LeaveServiceTestSuite) TestCreateLeaveRequest_InsufficientBalance() {
	ctx := context.Background()
	actor := employeeActor()
	actor.LeaveBalance.Casual = 2

	suite.mockHolidayRepo.On("FindHolidaysInRange", ctx, mock.Anything, mock.Anything).
		Return([]domain.Holiday{}, nil).Once()

	_, err := suite.service.CreateLeaveRequest(ctx, actor, dto.CreateLeaveRequest{
		StartDate: "2026-09-07",
		EndDate:   "2026-09-11",
		LeaveType: "casual",
		Reason:    "family",
		TotalDays: 5,
	})

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestCreateLeaveRequest_HolidayOverlap() {
	ctx := context.Background()
	actor := employeeActor()
	// Balance is also short; the overlap is still reported first.
	actor.LeaveBalance.Annual = 1

	suite.mockHolidayRepo.On("FindHolidaysInRange", ctx, mock.Anything, mock.Anything).
		Return([]domain.Holiday{
			{
				HolidayID: uuid.NewString(),
				Date:      time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
				Name:      "Founders Day",
			},
			{
				HolidayID: uuid.NewString(),
				Date:      time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
				Name:      "Harvest Festival",
			},
		}, nil).Once()

	_, err := suite.service.CreateLeaveRequest(ctx, actor, dto.CreateLeaveRequest{
		StartDate: "2026-09-07",
		EndDate:   "2026-09-09",
		LeaveType: "annual",
		Reason:    "vacation",
		TotalDays: 3,
	})

	suite.Require().ErrorIs(err, apperrors.ErrHolidayOverlap)
	suite.Contains(err.Error(), "Founders Day")
	suite.Contains(err.Error(), "Harvest Festival")
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest", mock.Anything, mock.Anything)
}

// --- DecideLeaveRequest ---

func (suite *LeaveServiceTestSuite) TestDecideLeaveRequest_ApprovePublishesEvent() {
	ctx := context.Background()
	manager := managerActor("engineering")
	leave := pendingLeave(uuid.NewString(), "engineering")

	approved := *leave
	approved.Status = domain.LeaveApproved
	approved.ManagerID = &manager.UserID

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, leave.LeaveRequestID).
		Return(leave, nil).Once()
	suite.mockLeaveRepo.On("ApproveLeaveRequest", ctx, *leave, manager.UserID, (*string)(nil), mock.Anything).
		Return(nil).Once()
	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, leave.LeaveRequestID).
		Return(&approved, nil).Once()
	suite.mockUserRepo.On("FindManagerIDsByDepartment", ctx, "engineering").
		Return([]string{manager.UserID}, nil).Once()
	suite.mockPublisher.On("PublishLeaveStatus", ctx, mock.MatchedBy(func(e domain.LeaveStatusEvent) bool {
		return e.Status == domain.LeaveApproved &&
			e.EmployeeID == leave.EmployeeID &&
			len(e.ManagerIDs) == 1 &&
			e.LeaveRequest.LeaveRequestID == leave.LeaveRequestID
	})).Once()

	got, err := suite.service.DecideLeaveRequest(ctx, manager, leave.LeaveRequestID, dto.DecideLeaveRequest{Status: "approved"})

	suite.Require().NoError(err)
	suite.Equal(domain.LeaveApproved, got.Status)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestDecideLeaveRequest_RejectLeavesBalanceAlone() {
	ctx := context.Background()
	manager := managerActor("engineering")
	leave := pendingLeave(uuid.NewString(), "engineering")
	note := "coverage gap"

	rejected := *leave
	rejected.Status = domain.LeaveRejected
	rejected.ManagerNote = &note

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, leave.LeaveRequestID).
		Return(leave, nil).Once()
	suite.mockLeaveRepo.On("RejectLeaveRequest", ctx, leave.LeaveRequestID, manager.UserID, &note, mock.Anything).
		Return(nil).Once()
	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, leave.LeaveRequestID).
		Return(&rejected, nil).Once()
	suite.mockUserRepo.On("FindManagerIDsByDepartment", ctx, "engineering").
		Return([]string{manager.UserID}, nil).Once()
	suite.mockPublisher.On("PublishLeaveStatus", ctx, mock.Anything).Once()

	got, err := suite.service.DecideLeaveRequest(ctx, manager, leave.LeaveRequestID, dto.DecideLeaveRequest{Status: "rejected", ManagerNote: &note})

	suite.Require().NoError(err)
	suite.Equal(domain.LeaveRejected, got.Status)
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "ApproveLeaveRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestDecideLeaveRequest_InsufficientBalanceAtDecision() {
	ctx := context.Background()
	manager := managerActor("engineering")
	leave := pendingLeave(uuid.NewString(), "engineering")

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, leave.LeaveRequestID).
		Return(leave, nil).Once()
	suite.mockLeaveRepo.On("ApproveLeaveRequest", ctx, *leave, manager.UserID, (*string)(nil), mock.Anything).
		Return(apperrors.ErrInsufficientBalance).Once()

	_, err := suite.service.DecideLeaveRequest(ctx, manager, leave.LeaveRequestID, dto.DecideLeaveRequest{Status: "approved"})

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishLeaveStatus", mock.Anything, mock.Anything)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestDecideLeaveRequest_WrongDepartmentForbidden() {
	ctx := context.Background()
	manager := managerActor("sales")
	leave := pendingLeave(uuid.NewString(), "engineering")

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, leave.LeaveRequestID).
		Return(leave, nil).Once()

	_, err := suite.service.DecideLeaveRequest(ctx, manager, leave.LeaveRequestID, dto.DecideLeaveRequest{Status: "approved"})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishLeaveStatus", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestDecideLeaveRequest_AlreadyProcessed() {
	ctx := context.Background()
	manager := managerActor("engineering")
	leave := pendingLeave(uuid.NewString(), "engineering")
	leave.Status = domain.LeaveApproved

	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, leave.LeaveRequestID).
		Return(leave, nil).Once()

	_, err := suite.service.DecideLeaveRequest(ctx, manager, leave.LeaveRequestID, dto.DecideLeaveRequest{Status: "rejected"})

	suite.Require().ErrorIs(err, apperrors.ErrAlreadyProcessed)
}

func (suite *LeaveServiceTestSuite) TestDecideLeaveRequest_NonManagerForbidden() {
	ctx := context.Background()
	actor := employeeActor()

	_, err := suite.service.DecideLeaveRequest(ctx, actor, uuid.NewString(), dto.DecideLeaveRequest{Status: "approved"})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

// --- Listings ---

func (suite *LeaveServiceTestSuite) TestListLeaveRequests_AdminSeesAll() {
	ctx := context.Background()
	admin := domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockLeaveRepo.On("ListLeaveRequests", ctx, mock.MatchedBy(func(f portsrepo.LeaveRequestFilter) bool {
		return f.EmployeeID == nil && f.Department == nil
	}), 20, (*string)(nil)).Return([]domain.LeaveRequest{}, nil, nil).Once()

	_, _, err := suite.service.ListLeaveRequests(ctx, admin, dto.ListLeavesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestListLeaveRequests_ManagerScopedToDepartment() {
	ctx := context.Background()
	manager := managerActor("engineering")

	suite.mockLeaveRepo.On("ListLeaveRequests", ctx, mock.MatchedBy(func(f portsrepo.LeaveRequestFilter) bool {
		return f.Department != nil && *f.Department == "engineering" && f.EmployeeID == nil
	}), 20, (*string)(nil)).Return([]domain.LeaveRequest{}, nil, nil).Once()

	_, _, err := suite.service.ListLeaveRequests(ctx, manager, dto.ListLeavesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestListLeaveRequests_EmployeeScopedToSelf() {
	ctx := context.Background()
	actor := employeeActor()

	suite.mockLeaveRepo.On("ListLeaveRequests", ctx, mock.MatchedBy(func(f portsrepo.LeaveRequestFilter) bool {
		return f.EmployeeID != nil && *f.EmployeeID == actor.UserID && f.Department == nil
	}), 20, (*string)(nil)).Return([]domain.LeaveRequest{}, nil, nil).Once()

	_, _, err := suite.service.ListLeaveRequests(ctx, actor, dto.ListLeavesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestListDepartmentLeaveRequests_NonManagerForbidden() {
	ctx := context.Background()
	actor := employeeActor()

	_, err := suite.service.ListDepartmentLeaveRequests(ctx, actor)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}
