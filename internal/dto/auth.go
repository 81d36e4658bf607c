package dto

// LoginRequest defines the login credentials payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// GoogleCallbackParams defines the query parameters Google sends to the callback URL.
type GoogleCallbackParams struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}
