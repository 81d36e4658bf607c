package domain

// StatusCount is an aggregate count of leave requests in one status.
type StatusCount struct {
	Status LeaveStatus `json:"status"`
	Count  int         `json:"count"`
}

// TypeCount is an aggregate count of leave requests of one leave type.
type TypeCount struct {
	LeaveType LeaveType `json:"leaveType"`
	Count     int       `json:"count"`
}

// MonthlyTrendRow is one bucket of a month-over-month leave trend series.
// Rows are ordered by (Year, Month) ascending.
type MonthlyTrendRow struct {
	Year     int `json:"year"`
	Month    int `json:"month"`
	Count    int `json:"count"`
	Approved int `json:"approved,omitempty"`
	Rejected int `json:"rejected,omitempty"`
}

// DepartmentLeaveStats is the per-department breakdown of leave requests by outcome.
type DepartmentLeaveStats struct {
	Department       string `json:"department"`
	TotalRequests    int    `json:"totalRequests"`
	ApprovedRequests int    `json:"approvedRequests"`
	PendingRequests  int    `json:"pendingRequests"`
	RejectedRequests int    `json:"rejectedRequests"`
}

// RoleCount is an aggregate count of users holding one role.
type RoleCount struct {
	Role  Role `json:"role"`
	Count int  `json:"count"`
}

// RoleDepartmentCount is an aggregate count of users per (role, department) pair.
type RoleDepartmentCount struct {
	Role       Role   `json:"role"`
	Department string `json:"department"`
	Count      int    `json:"count"`
}
