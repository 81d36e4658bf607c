package dto

import (
	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// CreateDepartmentRequest defines the payload for creating a department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// DepartmentResponse is the API representation of a department.
type DepartmentResponse struct {
	DepartmentID string `json:"id"`
	Name         string `json:"name"`
}

// ToDepartmentResponse converts a domain.Department to a DepartmentResponse DTO
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
	}
}

// ToDepartmentResponseSlice converts a slice of domain.Department to DepartmentResponse DTOs
func ToDepartmentResponseSlice(departments []domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, len(departments))
	for i := range departments {
		out[i] = ToDepartmentResponse(&departments[i])
	}
	return out
}
