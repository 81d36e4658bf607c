package domain

// Department is a named organizational unit users belong to.
type Department struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
	AuditFields
}
