package services

import (
	"context"
	"time"

	"github.com/leavehq/leave_management_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines JWT issuance for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user and
	// returns it along with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade defines the Google SSO login flow.
type GoogleOAuthSvcFacade interface {
	// GetAuthURL builds the Google consent page URL carrying the given state.
	GetAuthURL(state string) string

	// ExchangeCodeForToken swaps an authorization code for an OAuth2 token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token signature and audience and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
