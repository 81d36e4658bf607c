package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/core/services"
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HolidayServiceTestSuite struct {
	suite.Suite
	mockHolidayRepo *MockHolidayRepository
	service         portssvc.HolidaySvcFacade
}

func (suite *HolidayServiceTestSuite) SetupTest() {
	suite.mockHolidayRepo = new(MockHolidayRepository)
	suite.service = services.NewHolidayService(suite.mockHolidayRepo)
}

func (suite *HolidayServiceTestSuite) TestCreateHoliday_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()

	suite.mockHolidayRepo.On("SaveHoliday", ctx, mock.MatchedBy(func(h domain.Holiday) bool {
		return h.Name == "Founders Day" &&
			h.Date.Equal(time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)) &&
			h.CreatedBy == adminID &&
			h.HolidayID != ""
	})).Return(nil).Once()

	holiday, err := suite.service.CreateHoliday(ctx, dto.CreateHolidayRequest{
		Date: "2026-09-08",
		Name: "Founders Day",
	}, adminID)

	suite.Require().NoError(err)
	suite.Equal("Founders Day", holiday.Name)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *HolidayServiceTestSuite) TestCreateHoliday_DuplicateDate() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("SaveHoliday", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateHoliday(ctx, dto.CreateHolidayRequest{
		Date: "2026-09-08",
		Name: "Founders Day",
	}, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *HolidayServiceTestSuite) TestUpdateHoliday_MergesOnlyProvidedFields() {
	ctx := context.Background()
	adminID := uuid.NewString()
	stored := &domain.Holiday{
		HolidayID:   uuid.NewString(),
		Date:        time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		Name:        "Founders Day",
		Description: "office closed",
	}
	newName := "Founders Day (observed)"

	suite.mockHolidayRepo.On("FindHolidayByID", ctx, stored.HolidayID).
		Return(stored, nil).Once()
	suite.mockHolidayRepo.On("UpdateHoliday", ctx, mock.MatchedBy(func(h domain.Holiday) bool {
		return h.Name == newName &&
			h.Description == "office closed" &&
			h.Date.Equal(stored.Date) &&
			h.LastUpdatedBy == adminID
	})).Return(nil).Once()

	holiday, err := suite.service.UpdateHoliday(ctx, stored.HolidayID, dto.UpdateHolidayRequest{Name: &newName}, adminID)

	suite.Require().NoError(err)
	suite.Equal(newName, holiday.Name)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *HolidayServiceTestSuite) TestUpdateHoliday_NotFound() {
	ctx := context.Background()
	holidayID := uuid.NewString()

	suite.mockHolidayRepo.On("FindHolidayByID", ctx, holidayID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateHoliday(ctx, holidayID, dto.UpdateHolidayRequest{}, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *HolidayServiceTestSuite) TestListHolidays_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("FindHolidays", ctx).Return(nil, nil).Once()

	holidays, err := suite.service.ListHolidays(ctx)

	suite.Require().NoError(err)
	suite.NotNil(holidays)
	suite.Empty(holidays)
}

func TestHolidayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HolidayServiceTestSuite))
}
