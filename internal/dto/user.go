package dto

import (
	"time"

	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user (registration or admin create).
type CreateUserRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Department  string  `json:"department" binding:"required"`
	Role        string  `json:"role" binding:"required,oneof=employee manager admin"`
	Position    *string `json:"position"`
	JoiningDate *string `json:"joiningDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

// UpdateUserRoleRequest defines the admin role-change payload.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=employee manager admin"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the API representation of a user. The password hash never leaves the server.
type UserResponse struct {
	UserID       string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Role         domain.Role         `json:"role"`
	Department   string              `json:"department"`
	Position     string              `json:"position,omitempty"`
	LeaveBalance domain.LeaveBalance `json:"leaveBalance"`
	JoiningDate  *string             `json:"joiningDate,omitempty"`
	LastLogin    *time.Time          `json:"lastLogin,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	var joining *string
	if user.JoiningDate != nil {
		s := user.JoiningDate.Format("2006-01-02")
		joining = &s
	}
	return UserResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Department:   user.Department,
		Position:     user.Position,
		LeaveBalance: user.LeaveBalance,
		JoiningDate:  joining,
		LastLogin:    user.LastLogin,
		CreatedAt:    user.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
