package services

import (
	"context"

	"github.com/leavehq/leave_management_app/internal/core/domain"
	"github.com/leavehq/leave_management_app/internal/dto"
)

// HolidaySvcFacade defines the admin-facing holiday management operations.
type HolidaySvcFacade interface {
	// CreateHoliday persists a new holiday.
	CreateHoliday(ctx context.Context, req dto.CreateHolidayRequest, creatorUserID string) (*domain.Holiday, error)

	// GetHolidayByID retrieves a holiday by ID.
	GetHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error)

	// ListHolidays retrieves all holidays ordered by date.
	ListHolidays(ctx context.Context) ([]domain.Holiday, error)

	// UpdateHoliday updates an existing holiday.
	UpdateHoliday(ctx context.Context, holidayID string, req dto.UpdateHolidayRequest, requestingUserID string) (*domain.Holiday, error)

	// DeleteHoliday removes a holiday.
	DeleteHoliday(ctx context.Context, holidayID string) error
}
