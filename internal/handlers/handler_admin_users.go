package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/leavehq/leave_management_app/internal/middleware"
)

// adminUserHandler handles the admin user management endpoints.
type adminUserHandler struct {
	userService portssvc.UserSvcFacade
}

func newAdminUserHandler(us portssvc.UserSvcFacade) *adminUserHandler {
	return &adminUserHandler{userService: us}
}

// registerAdminUserRoutes registers user CRUD on the admin group.
func registerAdminUserRoutes(admin *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAdminUserHandler(userService)

	users := admin.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// listUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminUserHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// createUser godoc
// @Summary Create a user
// @Description Creates an account on behalf of someone else, with default leave balances.
// @Tags admin
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [post]
func (h *adminUserHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User already exists"})
			return
		}
		respondWithError(c, logger, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [put]
func (h *adminUserHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft deletes the account; its leave history is retained.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *adminUserHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, _ := middleware.GetUserIDFromContext(c)
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondWithError(c, logger, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
