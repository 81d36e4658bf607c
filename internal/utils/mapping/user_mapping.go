package mapping

import (
	"github.com/leavehq/leave_management_app/internal/core/domain"
	"github.com/leavehq/leave_management_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	var position *string
	if d.Position != "" {
		position = &d.Position
	}
	return models.User{
		UserID:             d.UserID,
		Name:               d.Name,
		Email:              d.Email,
		PasswordHash:       d.PasswordHash,
		Role:               string(d.Role),
		Department:         d.Department,
		Position:           position,
		LeaveBalanceAnnual: d.LeaveBalance.Annual,
		LeaveBalanceSick:   d.LeaveBalance.Sick,
		LeaveBalanceCasual: d.LeaveBalance.Casual,
		JoiningDate:        d.JoiningDate,
		LastLogin:          d.LastLogin,
		AuditFields:        ToModelAuditFields(d.AuditFields),
		DeletedAt:          d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	var position string
	if m.Position != nil {
		position = *m.Position
	}
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		Department:   m.Department,
		Position:     position,
		LeaveBalance: domain.LeaveBalance{
			Annual: m.LeaveBalanceAnnual,
			Sick:   m.LeaveBalanceSick,
			Casual: m.LeaveBalanceCasual,
		},
		JoiningDate: m.JoiningDate,
		LastLogin:   m.LastLogin,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
