package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
)

// LoadCurrentUser fetches the authenticated user's record and stores it in the
// Gin context. Must run after AuthMiddleware.
func LoadCurrentUser(userService portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Error("LoadCurrentUser ran without an authenticated user ID")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Token is valid but the account no longer exists.
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
				return
			}
			logger.Error("Failed to load current user", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		c.Set(string(currentUserKey), user)
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the loaded user holds one of the given
// roles. Must run after LoadCurrentUser.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		GetLoggerFromCtx(c.Request.Context()).Warn("Role check failed",
			"role", string(user.Role), "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
