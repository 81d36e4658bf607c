package repositories

import (
	"context"
	"time"

	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// LeaveRequestFilter narrows a leave request listing. Nil fields are ignored.
type LeaveRequestFilter struct {
	EmployeeID *string
	Department *string
}

// LeaveReader defines read operations for leave request data
type LeaveReader interface {
	// FindLeaveRequestByID retrieves a specific leave request by its ID.
	FindLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error)

	// ListLeaveRequests retrieves leave requests matching the filter, newest first,
	// using token-based pagination. It returns the requests, a token for the next
	// page (nil when exhausted), and an error.
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error)

	// FindRecentLeaveRequests retrieves the most recent requests matching the filter.
	FindRecentLeaveRequests(ctx context.Context, filter LeaveRequestFilter, limit int) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write operations for leave request data
type LeaveWriter interface {
	// SaveLeaveRequest persists a new leave request.
	SaveLeaveRequest(ctx context.Context, leave domain.LeaveRequest) error

	// ApproveLeaveRequest flips a pending request to approved and debits the
	// employee's balance for the request's leave type, both inside a single
	// database transaction. The debit is conditional on sufficient balance.
	// Returns apperrors.ErrAlreadyProcessed if the request is no longer pending
	// and apperrors.ErrInsufficientBalance if the conditional debit matches no row.
	ApproveLeaveRequest(ctx context.Context, leave domain.LeaveRequest, managerID string, managerNote *string, decidedAt time.Time) error

	// RejectLeaveRequest flips a pending request to rejected. Balances are untouched.
	// Returns apperrors.ErrAlreadyProcessed if the request is no longer pending.
	RejectLeaveRequest(ctx context.Context, leaveRequestID string, managerID string, managerNote *string, decidedAt time.Time) error
}

// LeaveRepositoryFacade combines all leave-related repository interfaces
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}

// LeaveRepositoryWithTx extends LeaveRepositoryFacade with transaction capabilities
type LeaveRepositoryWithTx interface {
	LeaveRepositoryFacade
	TransactionManager
}
