package usecase

import (
	"context"

	"github.com/kimkuhyun/JH0103/internal/domain/entity"
)

// --- Input DTOs ---

// OAuthCallbackInput carries the authorization code returned by the provider.
type OAuthCallbackInput struct {
	Provider string
	Code     string
	State    string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for the social login flow.
type AuthUsecase interface {
	// LoginURL builds the provider consent page URL for the given state.
	LoginURL(ctx context.Context, provider, state string) (string, error)

	// HandleCallback completes the login: exchanges the code, normalizes the
	// provider profile into a canonical identity, finds or creates the local
	// user, and issues tokens.
	HandleCallback(ctx context.Context, input OAuthCallbackInput) (*LoginOutput, error)

	// CurrentUser loads the user for an authenticated request identity.
	CurrentUser(ctx context.Context, userID int64) (*entity.User, error)
}
