package mapping

import (
	"github.com/leavehq/leave_management_app/internal/core/domain"
	"github.com/leavehq/leave_management_app/internal/models"
)

// ToModelLeaveRequest converts a domain LeaveRequest to a model LeaveRequest
func ToModelLeaveRequest(d domain.LeaveRequest) models.LeaveRequest {
	return models.LeaveRequest{
		LeaveRequestID: d.LeaveRequestID,
		EmployeeID:     d.EmployeeID,
		Department:     d.Department,
		LeaveType:      string(d.LeaveType),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		TotalDays:      d.TotalDays,
		Reason:         d.Reason,
		Status:         string(d.Status),
		ManagerID:      d.ManagerID,
		ManagerNote:    d.ManagerNote,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveRequest converts a model LeaveRequest to a domain LeaveRequest
func ToDomainLeaveRequest(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		LeaveRequestID: m.LeaveRequestID,
		EmployeeID:     m.EmployeeID,
		Department:     m.Department,
		LeaveType:      domain.LeaveType(m.LeaveType),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		TotalDays:      m.TotalDays,
		Reason:         m.Reason,
		Status:         domain.LeaveStatus(m.Status),
		ManagerID:      m.ManagerID,
		ManagerNote:    m.ManagerNote,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
