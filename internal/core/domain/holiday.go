package domain

import "time"

// Holiday is a company-wide non-working day. Leave requests may not overlap one.
type Holiday struct {
	HolidayID   string    `json:"holidayID"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AuditFields
}
