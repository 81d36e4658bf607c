package models

import "time"

// Holiday is the database row shape for the holidays table.
type Holiday struct {
	HolidayID   string    `db:"holiday_id"`
	HolidayDate time.Time `db:"holiday_date"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	AuditFields
}
