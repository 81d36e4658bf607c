package models

// Department is the database row shape for the departments table.
type Department struct {
	DepartmentID string `db:"department_id"`
	Name         string `db:"name"`
	AuditFields
}
