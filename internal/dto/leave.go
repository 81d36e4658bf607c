package dto

import (
	"time"

	"github.com/leavehq/leave_management_app/internal/core/domain"
)

const dateLayout = "2006-01-02"

// CreateLeaveRequest defines the payload for submitting a leave request.
// TotalDays is caller-computed; the server validates it is positive.
type CreateLeaveRequest struct {
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	LeaveType string `json:"leaveType" binding:"required,oneof=annual sick casual"`
	Reason    string `json:"reason" binding:"required"`
	TotalDays int    `json:"totalDays" binding:"required,min=1"`
}

// DecideLeaveRequest defines the manager decision payload.
type DecideLeaveRequest struct {
	Status      string  `json:"status" binding:"required,oneof=approved rejected"`
	ManagerNote *string `json:"managerNote"`
}

// ListLeavesParams defines query parameters for listing leave requests.
type ListLeavesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// LeaveResponse is the API representation of a leave request.
type LeaveResponse struct {
	LeaveRequestID string             `json:"id"`
	EmployeeID     string             `json:"employeeID"`
	EmployeeName   string             `json:"employeeName,omitempty"`
	EmployeeEmail  string             `json:"employeeEmail,omitempty"`
	Department     string             `json:"department"`
	LeaveType      domain.LeaveType   `json:"leaveType"`
	StartDate      string             `json:"startDate"`
	EndDate        string             `json:"endDate"`
	TotalDays      int                `json:"totalDays"`
	Reason         string             `json:"reason"`
	Status         domain.LeaveStatus `json:"status"`
	ManagerID      *string            `json:"managerID,omitempty"`
	ManagerName    string             `json:"managerName,omitempty"`
	ManagerNote    *string            `json:"managerNote,omitempty"`
	CreatedAt      string             `json:"createdAt"`
}

// ListLeavesResponse wraps a page of leave requests.
type ListLeavesResponse struct {
	Leaves    []LeaveResponse `json:"leaves"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToLeaveResponse converts a domain.LeaveRequest to a LeaveResponse DTO
func ToLeaveResponse(leave *domain.LeaveRequest) LeaveResponse {
	return LeaveResponse{
		LeaveRequestID: leave.LeaveRequestID,
		EmployeeID:     leave.EmployeeID,
		EmployeeName:   leave.EmployeeName,
		EmployeeEmail:  leave.EmployeeEmail,
		Department:     leave.Department,
		LeaveType:      leave.LeaveType,
		StartDate:      leave.StartDate.Format(dateLayout),
		EndDate:        leave.EndDate.Format(dateLayout),
		TotalDays:      leave.TotalDays,
		Reason:         leave.Reason,
		Status:         leave.Status,
		ManagerID:      leave.ManagerID,
		ManagerName:    leave.ManagerName,
		ManagerNote:    leave.ManagerNote,
		CreatedAt:      leave.CreatedAt.Format(time.RFC3339),
	}
}

// ToLeaveResponseSlice converts a slice of domain.LeaveRequest to LeaveResponse DTOs
func ToLeaveResponseSlice(leaves []domain.LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, len(leaves))
	for i := range leaves {
		out[i] = ToLeaveResponse(&leaves[i])
	}
	return out
}
