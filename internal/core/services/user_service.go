package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portsrepo "github.com/leavehq/leave_management_app/internal/core/ports/repositories"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/leavehq/leave_management_app/internal/utils"
)

const joiningDateLayout = "2006-01-02"

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	now := time.Now()
	newUserID := uuid.NewString()

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var joiningDate *time.Time
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		parsed, err := time.Parse(joiningDateLayout, *req.JoiningDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid joining date", apperrors.ErrValidation)
		}
		joiningDate = &parsed
	}

	var position string
	if req.Position != nil {
		position = *req.Position
	}

	// Self registration passes an empty creator; the new user owns its audit trail.
	if creatorUserID == "" {
		creatorUserID = newUserID
	}

	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.Role(req.Role),
		Department:   req.Department,
		Position:     position,
		LeaveBalance: domain.DefaultLeaveBalance(),
		JoiningDate:  joiningDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email in service: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in service: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Position != nil {
		user.Position = *req.Position
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user in service: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, userID string, role domain.Role, requestingUserID string) (*domain.User, error) {
	now := time.Now()
	if err := s.userRepo.UpdateUserRole(ctx, userID, role, requestingUserID, now); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user role in service: %w", err)
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) RecordLogin(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateLastLogin(ctx, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to record login in service: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete user in service: %w", err)
	}
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a bad password so enumeration attempts learn nothing.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to fetch user for authentication: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
