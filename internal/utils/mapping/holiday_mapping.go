package mapping

import (
	"github.com/leavehq/leave_management_app/internal/core/domain"
	"github.com/leavehq/leave_management_app/internal/models"
)

// ToModelHoliday converts a domain Holiday to a model Holiday
func ToModelHoliday(d domain.Holiday) models.Holiday {
	var description *string
	if d.Description != "" {
		description = &d.Description
	}
	return models.Holiday{
		HolidayID:   d.HolidayID,
		HolidayDate: d.Date,
		Name:        d.Name,
		Description: description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainHoliday converts a model Holiday to a domain Holiday
func ToDomainHoliday(m models.Holiday) domain.Holiday {
	var description string
	if m.Description != nil {
		description = *m.Description
	}
	return domain.Holiday{
		HolidayID:   m.HolidayID,
		Date:        m.HolidayDate,
		Name:        m.Name,
		Description: description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainHolidaySlice converts a slice of model Holidays to a slice of domain Holidays
func ToDomainHolidaySlice(ms []models.Holiday) []domain.Holiday {
	ds := make([]domain.Holiday, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHoliday(m)
	}
	return ds
}
