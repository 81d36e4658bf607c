package domain

import "time"

// Role identifies what a user is allowed to do in the system.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// LeaveType is the category a leave request draws its balance from.
type LeaveType string

const (
	LeaveAnnual LeaveType = "annual"
	LeaveSick   LeaveType = "sick"
	LeaveCasual LeaveType = "casual"
)

// Default balances granted to a new employee, in days.
const (
	DefaultAnnualBalance = 20
	DefaultSickBalance   = 10
	DefaultCasualBalance = 5
)

// LeaveBalance holds the remaining day counts per leave type for an employee.
type LeaveBalance struct {
	Annual int `json:"annual"`
	Sick   int `json:"sick"`
	Casual int `json:"casual"`
}

// DefaultLeaveBalance returns the balance assigned to a freshly registered user.
func DefaultLeaveBalance() LeaveBalance {
	return LeaveBalance{
		Annual: DefaultAnnualBalance,
		Sick:   DefaultSickBalance,
		Casual: DefaultCasualBalance,
	}
}

// Remaining returns the remaining days for the given leave type.
func (b LeaveBalance) Remaining(t LeaveType) int {
	switch t {
	case LeaveAnnual:
		return b.Annual
	case LeaveSick:
		return b.Sick
	case LeaveCasual:
		return b.Casual
	}
	return 0
}

// CanCover reports whether the balance has at least totalDays left for the given type.
func (b LeaveBalance) CanCover(t LeaveType, totalDays int) bool {
	return b.Remaining(t) >= totalDays
}

// User represents an employee, manager or administrator of the application.
type User struct {
	UserID       string       `json:"userID"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Department   string       `json:"department"`
	Position     string       `json:"position,omitempty"`
	LeaveBalance LeaveBalance `json:"leaveBalance"`
	JoiningDate  *time.Time   `json:"joiningDate,omitempty"`
	LastLogin    *time.Time   `json:"lastLogin,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
