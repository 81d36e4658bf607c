package models

import (
	"time"
)

// User is the database row shape for the users table.
type User struct {
	UserID             string     `db:"user_id"`
	Name               string     `db:"name"`
	Email              string     `db:"email"`
	PasswordHash       string     `db:"password_hash"`
	Role               string     `db:"role"`
	Department         string     `db:"department"`
	Position           *string    `db:"position"`
	LeaveBalanceAnnual int        `db:"leave_balance_annual"`
	LeaveBalanceSick   int        `db:"leave_balance_sick"`
	LeaveBalanceCasual int        `db:"leave_balance_casual"`
	JoiningDate        *time.Time `db:"joining_date"`
	LastLogin          *time.Time `db:"last_login"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
