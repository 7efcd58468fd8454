package service

import "context"

// OAuthProfile is the raw profile fetched from a provider's userinfo endpoint.
// Attributes is the decoded JSON body as-is; normalization into a canonical
// identity happens in the domain layer, not here.
type OAuthProfile struct {
	Provider            string
	PrimaryAttributeKey string
	Attributes          map[string]any
}

// OAuthService defines the interface for the provider-side half of the login
// flow: building the consent URL, exchanging the authorization code, and
// fetching the raw user profile.
type OAuthService interface {
	// AuthCodeURL returns the provider consent page URL for the given state.
	AuthCodeURL(provider, state string) (string, error)

	// FetchProfile exchanges the authorization code and retrieves the raw
	// userinfo payload from the provider.
	FetchProfile(ctx context.Context, provider, code string) (*OAuthProfile, error)
}
