// Package oauth implements the provider-side half of the social login flow
// using the standard authorization code grant.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/kimkuhyun/JH0103/config"
	domainerrors "github.com/kimkuhyun/JH0103/internal/domain/errors"
	"github.com/kimkuhyun/JH0103/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const maxUserInfoBodySize = 1 << 20 // 1 MiB

// providerService implements service.OAuthService on top of golang.org/x/oauth2.
type providerService struct {
	providers map[string]config.OAuthProvider
	logger    *slog.Logger
}

// NewProviderService builds the OAuth service from the configured providers.
func NewProviderService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	return &providerService{
		providers: cfg.OAuth.Providers,
		logger:    logger,
	}
}

// AuthCodeURL returns the provider consent page URL for the given state.
func (s *providerService) AuthCodeURL(provider, state string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", domainerrors.ErrUnknownProvider.WrapMessage("no oauth config for " + provider)
	}

	return s.oauthConfig(p).AuthCodeURL(state), nil
}

// FetchProfile exchanges the authorization code and retrieves the raw
// userinfo payload from the provider.
func (s *providerService) FetchProfile(ctx context.Context, provider, code string) (*service.OAuthProfile, error) {
	p, ok := s.providers[provider]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider.WrapMessage("no oauth config for " + provider)
	}

	token, err := s.oauthConfig(p).Exchange(ctx, code)
	if err != nil {
		s.logger.ErrorContext(ctx, "OAuth code exchange failed",
			slog.String("provider", provider),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("code exchange failed")
	}

	attributes, err := s.fetchUserInfo(ctx, p, token)
	if err != nil {
		s.logger.ErrorContext(ctx, "OAuth userinfo fetch failed",
			slog.String("provider", provider),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrOAuthFailed.WrapMessage("userinfo fetch failed")
	}

	return &service.OAuthProfile{
		Provider:            provider,
		PrimaryAttributeKey: p.UserNameAttribute,
		Attributes:          attributes,
	}, nil
}

func (s *providerService) oauthConfig(p config.OAuthProvider) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		RedirectURL:  p.RedirectURL,
		Scopes:       p.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  p.AuthURL,
			TokenURL: p.TokenURL,
		},
	}
}

func (s *providerService) fetchUserInfo(ctx context.Context, p config.OAuthProvider, token *oauth2.Token) (map[string]any, error) {
	client := s.oauthConfig(p).Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build userinfo request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "userinfo request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	// UseNumber keeps large numeric IDs intact instead of flattening them to float64.
	decoder := json.NewDecoder(io.LimitReader(resp.Body, maxUserInfoBodySize))
	decoder.UseNumber()

	var attributes map[string]any
	if err := decoder.Decode(&attributes); err != nil {
		return nil, errors.Wrap(err, "failed to decode userinfo payload")
	}

	return attributes, nil
}
