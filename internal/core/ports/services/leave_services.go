package services

import (
	"context"

	"github.com/leavehq/leave_management_app/internal/core/domain"
	"github.com/leavehq/leave_management_app/internal/dto"
)

// LeaveReaderSvc defines read operations over leave requests
type LeaveReaderSvc interface {
	// ListLeaveRequests returns requests visible to the actor: admins see all,
	// managers their department, employees their own. Newest first, token paginated.
	ListLeaveRequests(ctx context.Context, actor domain.User, params dto.ListLeavesParams) ([]domain.LeaveRequest, *string, error)

	// ListDepartmentLeaveRequests returns all requests for a manager's department.
	ListDepartmentLeaveRequests(ctx context.Context, actor domain.User) ([]domain.LeaveRequest, error)

	// ListOwnLeaveRequests returns the actor's own requests.
	ListOwnLeaveRequests(ctx context.Context, actor domain.User) ([]domain.LeaveRequest, error)
}

// LeaveWriterSvc defines the leave request lifecycle operations
type LeaveWriterSvc interface {
	// CreateLeaveRequest validates and persists a new pending request for the actor.
	// The actor must hold the employee role, the range must be holiday free and
	// the actor's balance must cover totalDays.
	CreateLeaveRequest(ctx context.Context, actor domain.User, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error)

	// DecideLeaveRequest approves or rejects a pending request. The actor must be
	// a manager of the request's department. Approval debits the employee's
	// balance; a status-change event is published on success.
	DecideLeaveRequest(ctx context.Context, actor domain.User, leaveRequestID string, req dto.DecideLeaveRequest) (*domain.LeaveRequest, error)
}

// LeaveSvcFacade combines all leave-related service interfaces
type LeaveSvcFacade interface {
	LeaveReaderSvc
	LeaveWriterSvc
}
