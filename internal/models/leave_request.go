package models

import "time"

// LeaveRequest is the database row shape for the leave_requests table.
type LeaveRequest struct {
	LeaveRequestID string    `db:"leave_request_id"`
	EmployeeID     string    `db:"employee_id"`
	Department     string    `db:"department"`
	LeaveType      string    `db:"leave_type"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	TotalDays      int       `db:"total_days"`
	Reason         string    `db:"reason"`
	Status         string    `db:"status"`
	ManagerID      *string   `db:"manager_id"`
	ManagerNote    *string   `db:"manager_note"`
	AuditFields
}
