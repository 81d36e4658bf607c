package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
)

const holidayDateLayout = "2006-01-02"

type holidayService struct {
	holidayRepo portsrepo.HolidayRepositoryFacade
}

// NewHolidayService creates a new instance of holidayService.
func NewHolidayService(holidayRepo portsrepo.HolidayRepositoryFacade) portssvc.HolidaySvcFacade {
	return &holidayService{holidayRepo: holidayRepo}
}

var _ portssvc.HolidaySvcFacade = (*holidayService)(nil)

func (s *holidayService) CreateHoliday(ctx context.Context, req dto.CreateHolidayRequest, creatorUserID string) (*domain.Holiday, error) {
	date, err := time.Parse(holidayDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid holiday date", apperrors.ErrValidation)
	}

	now := time.Now()
	holiday := domain.Holiday{
		HolidayID:   uuid.NewString(),
		Date:        date,
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.holidayRepo.SaveHoliday(ctx, holiday); err != nil {
		return nil, fmt.Errorf("failed to create holiday in service: %w", err)
	}
	return &holiday, nil
}

func (s *holidayService) GetHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	holiday, err := s.holidayRepo.FindHolidayByID(ctx, holidayID)
	if err != nil {
		return nil, err
	}
	return holiday, nil
}

func (s *holidayService) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	holidays, err := s.holidayRepo.FindHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays in service: %w", err)
	}
	if holidays == nil {
		return []domain.Holiday{}, nil
	}
	return holidays, nil
}

func (s *holidayService) UpdateHoliday(ctx context.Context, holidayID string, req dto.UpdateHolidayRequest, requestingUserID string) (*domain.Holiday, error) {
	holiday, err := s.holidayRepo.FindHolidayByID(ctx, holidayID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse(holidayDateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid holiday date", apperrors.ErrValidation)
		}
		holiday.Date = date
	}
	if req.Name != nil {
		holiday.Name = *req.Name
	}
	if req.Description != nil {
		holiday.Description = *req.Description
	}
	holiday.LastUpdatedAt = time.Now()
	holiday.LastUpdatedBy = requestingUserID

	if err := s.holidayRepo.UpdateHoliday(ctx, *holiday); err != nil {
		return nil, fmt.Errorf("failed to update holiday in service: %w", err)
	}
	return holiday, nil
}

func (s *holidayService) DeleteHoliday(ctx context.Context, holidayID string) error {
	if err := s.holidayRepo.DeleteHoliday(ctx, holidayID); err != nil {
		return err
	}
	return nil
}
