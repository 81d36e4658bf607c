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
	"github.com/leavehq/leave_management_app/internal/platform/config"
	"github.com/leavehq/leave_management_app/internal/utils"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler handles Google SSO requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	frontendBaseURL    string
	secureCookies      bool
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		frontendBaseURL:    cfg.FrontendBaseURL,
		secureCookies:      cfg.IsProduction,
	}
}

// registerGoogleOAuthRoutes sets up the Google SSO routes on the auth group.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(cfg, services)

	auth.GET("/google/login", h.GoogleLogin)
	auth.GET("/google/callback", h.GoogleCallback)
}

// GoogleLogin godoc
// @Summary Start Google SSO
// @Description Redirects the browser to the Google consent page.
// @Tags auth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) GoogleLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	// The state round-trips via cookie so the callback can reject forgeries.
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetAuthURL(state))
}

// GoogleCallback godoc
// @Summary Google SSO callback
// @Description Exchanges the authorization code, verifies the ID token and logs the user in.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Opaque state"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var params dto.GoogleCallbackParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing code or state"})
		return
	}

	storedState, err := c.Cookie(oauthStateCookie)
	if err != nil || storedState == "" || storedState != params.State {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, params.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to exchange authorization code"})
		return
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		logger.Error("Google token response missing id_token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Google login failed"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, rawIDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Google account has no email"})
		return
	}

	// Accounts are provisioned by registration or an admin; SSO only signs in.
	user, err := h.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Google SSO attempt for unknown account")
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "No account for this Google identity"})
			return
		}
		respondWithError(c, logger, err, "Failed to look up user")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate token after Google login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	if err := h.userService.RecordLogin(ctx, user.UserID); err != nil {
		logger.Warn("Failed to record login time", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}
