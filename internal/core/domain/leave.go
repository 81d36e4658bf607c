package domain

import "time"

// LeaveStatus is the lifecycle state of a leave request.
// The only permitted transition is pending -> approved|rejected; both are terminal.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// IsTerminal reports whether the status permits no further transitions.
func (s LeaveStatus) IsTerminal() bool {
	return s == LeaveApproved || s == LeaveRejected
}

// LeaveRequest represents a single request for time off.
// Department is a snapshot of the employee's department at submission time and is
// intentionally not re-synced if the employee later moves departments.
type LeaveRequest struct {
	LeaveRequestID string      `json:"leaveRequestID"`
	EmployeeID     string      `json:"employeeID"`
	Department     string      `json:"department"`
	LeaveType      LeaveType   `json:"leaveType"`
	StartDate      time.Time   `json:"startDate"`
	EndDate        time.Time   `json:"endDate"`
	TotalDays      int         `json:"totalDays"`
	Reason         string      `json:"reason"`
	Status         LeaveStatus `json:"status"`
	ManagerID      *string     `json:"managerID,omitempty"`
	ManagerNote    *string     `json:"managerNote,omitempty"`
	AuditFields

	// Denormalized display fields, populated on reads that join the users table.
	EmployeeName  string `json:"employeeName,omitempty"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
	ManagerName   string `json:"managerName,omitempty"`
}
