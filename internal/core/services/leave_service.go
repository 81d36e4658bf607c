package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
)

const leaveDateLayout = "2006-01-02"

// departmentListLimit caps the non-paginated department and own-history listings.
const departmentListLimit = 100

type leaveService struct {
	leaveRepo   portsrepo.LeaveRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
	holidayRepo portsrepo.HolidayRepositoryFacade
	publisher   portssvc.LeaveEventPublisher
}

// NewLeaveService creates a new instance of leaveService.
func NewLeaveService(
	leaveRepo portsrepo.LeaveRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	holidayRepo portsrepo.HolidayRepositoryFacade,
	publisher portssvc.LeaveEventPublisher,
) portssvc.LeaveSvcFacade {
	return &leaveService{
		leaveRepo:   leaveRepo,
		userRepo:    userRepo,
		holidayRepo: holidayRepo,
		publisher:   publisher,
	}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func (s *leaveService) CreateLeaveRequest(ctx context.Context, actor domain.User, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	if actor.Role != domain.RoleEmployee {
		return nil, fmt.Errorf("only employees may submit leave requests: %w", apperrors.ErrForbidden)
	}

	startDate, err := time.Parse(leaveDateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", apperrors.ErrValidation)
	}
	endDate, err := time.Parse(leaveDateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", apperrors.ErrValidation)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperrors.ErrValidation)
	}
	if req.TotalDays < 1 {
		return nil, fmt.Errorf("%w: total days must be at least 1", apperrors.ErrValidation)
	}

	holidays, err := s.holidayRepo.FindHolidaysInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check holidays for leave request: %w", err)
	}
	if len(holidays) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrHolidayOverlap, describeHolidays(holidays))
	}

	leaveType := domain.LeaveType(req.LeaveType)
	if !actor.LeaveBalance.CanCover(leaveType, req.TotalDays) {
		return nil, apperrors.ErrInsufficientBalance
	}

	now := time.Now()
	leave := domain.LeaveRequest{
		LeaveRequestID: uuid.NewString(),
		EmployeeID:     actor.UserID,
		Department:     actor.Department,
		LeaveType:      leaveType,
		StartDate:      startDate,
		EndDate:        endDate,
		TotalDays:      req.TotalDays,
		Reason:         req.Reason,
		Status:         domain.LeavePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
		EmployeeName:  actor.Name,
		EmployeeEmail: actor.Email,
	}

	if err := s.leaveRepo.SaveLeaveRequest(ctx, leave); err != nil {
		return nil, fmt.Errorf("failed to create leave request in service: %w", err)
	}
	return &leave, nil
}

// describeHolidays renders every conflicting holiday for the overlap error.
func describeHolidays(holidays []domain.Holiday) string {
	parts := make([]string, len(holidays))
	for i, h := range holidays {
		parts[i] = fmt.Sprintf("%s falls on %s", h.Date.Format(leaveDateLayout), h.Name)
	}
	return strings.Join(parts, "; ")
}

func (s *leaveService) DecideLeaveRequest(ctx context.Context, actor domain.User, leaveRequestID string, req dto.DecideLeaveRequest) (*domain.LeaveRequest, error) {
	if actor.Role != domain.RoleManager {
		return nil, fmt.Errorf("only managers may decide leave requests: %w", apperrors.ErrForbidden)
	}

	leave, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}
	if leave.Department != actor.Department {
		return nil, fmt.Errorf("request belongs to another department: %w", apperrors.ErrForbidden)
	}
	if leave.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyProcessed
	}

	decidedAt := time.Now()
	status := domain.LeaveStatus(req.Status)
	switch status {
	case domain.LeaveApproved:
		err = s.leaveRepo.ApproveLeaveRequest(ctx, *leave, actor.UserID, req.ManagerNote, decidedAt)
	case domain.LeaveRejected:
		err = s.leaveRepo.RejectLeaveRequest(ctx, leaveRequestID, actor.UserID, req.ManagerNote, decidedAt)
	default:
		return nil, fmt.Errorf("%w: unknown decision %q", apperrors.ErrValidation, req.Status)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.leaveRepo.FindLeaveRequestByID(ctx, leaveRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload decided leave request: %w", err)
	}

	s.publishStatusEvent(ctx, updated)

	return updated, nil
}

// publishStatusEvent notifies the employee and the department's managers.
// Failures never surface to the decision flow.
func (s *leaveService) publishStatusEvent(ctx context.Context, leave *domain.LeaveRequest) {
	managerIDs, err := s.userRepo.FindManagerIDsByDepartment(ctx, leave.Department)
	if err != nil {
		managerIDs = nil
	}

	s.publisher.PublishLeaveStatus(ctx, domain.LeaveStatusEvent{
		EmployeeID:   leave.EmployeeID,
		EmployeeName: leave.EmployeeName,
		Department:   leave.Department,
		Status:       leave.Status,
		ManagerIDs:   managerIDs,
		LeaveRequest: domain.LeaveStatusEntry{
			LeaveRequestID: leave.LeaveRequestID,
			Status:         leave.Status,
			StartDate:      leave.StartDate,
			EndDate:        leave.EndDate,
			LeaveType:      leave.LeaveType,
			ManagerNote:    leave.ManagerNote,
		},
	})
}

func (s *leaveService) ListLeaveRequests(ctx context.Context, actor domain.User, params dto.ListLeavesParams) ([]domain.LeaveRequest, *string, error) {
	filter := portsrepo.LeaveRequestFilter{}
	switch actor.Role {
	case domain.RoleAdmin:
		// Admins see everything.
	case domain.RoleManager:
		dept := actor.Department
		filter.Department = &dept
	default:
		employeeID := actor.UserID
		filter.EmployeeID = &employeeID
	}

	leaves, nextToken, err := s.leaveRepo.ListLeaveRequests(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list leave requests in service: %w", err)
	}
	if leaves == nil {
		leaves = []domain.LeaveRequest{}
	}
	return leaves, nextToken, nil
}

func (s *leaveService) ListDepartmentLeaveRequests(ctx context.Context, actor domain.User) ([]domain.LeaveRequest, error) {
	if actor.Role != domain.RoleManager {
		return nil, fmt.Errorf("only managers may list department requests: %w", apperrors.ErrForbidden)
	}

	dept := actor.Department
	leaves, err := s.leaveRepo.FindRecentLeaveRequests(ctx, portsrepo.LeaveRequestFilter{Department: &dept}, departmentListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list department leave requests in service: %w", err)
	}
	if leaves == nil {
		leaves = []domain.LeaveRequest{}
	}
	return leaves, nil
}

func (s *leaveService) ListOwnLeaveRequests(ctx context.Context, actor domain.User) ([]domain.LeaveRequest, error) {
	employeeID := actor.UserID
	leaves, err := s.leaveRepo.FindRecentLeaveRequests(ctx, portsrepo.LeaveRequestFilter{EmployeeID: &employeeID}, departmentListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list own leave requests in service: %w", err)
	}
	if leaves == nil {
		leaves = []domain.LeaveRequest{}
	}
	return leaves, nil
}
