package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")

	// currentUserKey is the key used to store the loaded domain user.
	currentUserKey = contextKey("currentUser")

	// loggerCtxKey is the key used to store the request-scoped logger.
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetCurrentUserFromContext retrieves the loaded domain user placed in the
// Gin context by LoadCurrentUser.
func GetCurrentUserFromContext(c *gin.Context) (*domain.User, bool) {
	userVal, exists := c.Get(string(currentUserKey))
	if !exists {
		return nil, false
	}
	user, ok := userVal.(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}
