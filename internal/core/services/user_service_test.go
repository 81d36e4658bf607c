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
	"github.com/leavehq/leave_management_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_SelfRegistration() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:       "Alice Example",
		Email:      "alice@example.com",
		Password:   "hunter22",
		Department: "engineering",
		Role:       "employee",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleEmployee &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			u.LeaveBalance == domain.DefaultLeaveBalance() &&
			u.CreatedBy == u.UserID
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_AdminCreateKeepsCreator() {
	ctx := context.Background()
	adminID := uuid.NewString()
	joining := "2026-01-05"
	req := dto.CreateUserRequest{
		Name:        "Bob Example",
		Email:       "bob@example.com",
		Password:    "hunter22",
		Department:  "sales",
		Role:        "manager",
		JoiningDate: &joining,
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.CreatedBy == adminID &&
			u.JoiningDate != nil &&
			u.JoiningDate.Format("2006-01-02") == joining
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:       "Alice Example",
		Email:      "alice@example.com",
		Password:   "hunter22",
		Department: "engineering",
		Role:       "employee",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req, "")

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter22")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").
		Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "alice@example.com", "hunter22")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter22")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").
		Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "alice@example.com", "not-the-password")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "whatever")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestUpdateUser_MergesOnlyProvidedFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()
	stored := &domain.User{
		UserID:     userID,
		Name:       "Old Name",
		Department: "engineering",
		Position:   "developer",
	}
	newName := "New Name"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName &&
			u.Department == "engineering" &&
			u.Position == "developer" &&
			u.LastUpdatedBy == adminID
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Name: &newName}, adminID)

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_ReturnsRefreshedUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()
	refreshed := &domain.User{UserID: userID, Role: domain.RoleManager}

	suite.mockUserRepo.On("UpdateUserRole", ctx, userID, domain.RoleManager, adminID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(refreshed, nil).Once()

	user, err := suite.service.UpdateUserRole(ctx, userID, domain.RoleManager, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, user.Role)
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), mock.Anything).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestRecordLogin() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("UpdateLastLogin", ctx, userID, mock.MatchedBy(func(t time.Time) bool {
		return time.Since(t) < time.Minute
	})).Return(nil).Once()

	err := suite.service.RecordLogin(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
