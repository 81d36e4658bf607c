package repositories

import (
	"context"
	"time"

	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// HolidayReader defines read operations for holiday data
type HolidayReader interface {
	// FindHolidayByID retrieves a specific holiday by its ID.
	FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error)

	// FindHolidays retrieves all holidays ordered by date.
	FindHolidays(ctx context.Context) ([]domain.Holiday, error)

	// FindHolidaysInRange retrieves holidays whose date falls within [start, end].
	FindHolidaysInRange(ctx context.Context, start, end time.Time) ([]domain.Holiday, error)
}

// HolidayWriter defines write operations for holiday data
type HolidayWriter interface {
	// SaveHoliday persists a new holiday.
	SaveHoliday(ctx context.Context, holiday domain.Holiday) error

	// UpdateHoliday updates an existing holiday.
	UpdateHoliday(ctx context.Context, holiday domain.Holiday) error

	// DeleteHoliday removes a holiday.
	DeleteHoliday(ctx context.Context, holidayID string) error
}

// HolidayRepositoryFacade combines all holiday-related repository interfaces
type HolidayRepositoryFacade interface {
	HolidayReader
	HolidayWriter
}
