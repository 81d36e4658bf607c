package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/internal/apperrors"
	"github.com/leavehq/leave_management_app/internal/core/domain"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/dto"
	"github.com/leavehq/leave_management_app/internal/middleware"
	"github.com/leavehq/leave_management_app/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	mailer       portssvc.Mailer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, mailer portssvc.Mailer) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		mailer:       mailer,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, services.Mailer)

	// Login rate limit: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), h.Me)
		auth.PATCH("/users/:id/role",
			middleware.AuthMiddleware(cfg.JWTSecret),
			middleware.LoadCurrentUser(services.User),
			middleware.RequireRoles(domain.RoleAdmin),
			h.UpdateUserRole,
		)
	}

	registerGoogleOAuthRoutes(auth, cfg, services)
}

// Register godoc
// @Summary Register new user
// @Description Creates a new account with default leave balances and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, "")
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User already exists"})
			return
		}
		respondWithError(c, logger, err, "Failed to register user")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate token after registration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User registered", slog.String("new_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondWithError(c, logger, err, "Failed to authenticate user")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	if err := h.userService.RecordLogin(c.Request.Context(), user.UserID); err != nil {
		logger.Warn("Failed to record login time", slog.String("error", err.Error()))
	}

	// Fire and forget: the login notification must never delay the response.
	meta := portssvc.LoginMetadata{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Timestamp: time.Now(),
	}
	go func(email, name string) {
		// Detached context: the send outlives this request.
		if err := h.mailer.SendLoginNotification(context.Background(), email, name, meta); err != nil {
			logger.Warn("Failed to send login notification", slog.String("error", err.Error()))
		}
	}(user.Email, user.Name)

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Me godoc
// @Summary Current user
// @Description Returns the authenticated user's profile.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUserRole godoc
// @Summary Change a user's role
// @Description Admin-only role assignment.
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param role body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/users/{id}/role [patch]
func (h *AuthHandler) UpdateUserRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetUserID := c.Param("id")

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.UpdateUserRole(c.Request.Context(), targetUserID, domain.Role(req.Role), actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update user role")
		return
	}

	logger.Info("User role updated",
		slog.String("target_user_id", targetUserID),
		slog.String("new_role", req.Role))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
